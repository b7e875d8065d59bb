package validate

import (
	"math"

	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
)

// analyticTrajectory samples the closed-form solution of
// m*x'' + b*x' + k*x = 0 so tests have trajectories that honor the
// physics exactly, without running an integrator.
func analyticTrajectory(cfg *config.Config, b float64, n int, dt float64) *dataset.Trajectory {
	m, k := cfg.Mass, cfg.Spring
	x0, v0 := cfg.X0, cfg.V0
	gamma := b / (2 * m)
	w02 := k / m

	tr := &dataset.Trajectory{B: b, CommentLines: 3}
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		var x, v float64

		switch {
		case gamma*gamma < w02: // underdamped
			wd := math.Sqrt(w02 - gamma*gamma)
			a := x0
			bb := (v0 + gamma*x0) / wd
			decay := math.Exp(-gamma * t)
			cos, sin := math.Cos(wd*t), math.Sin(wd*t)
			x = decay * (a*cos + bb*sin)
			v = decay * ((-gamma*a+bb*wd)*cos + (-gamma*bb-a*wd)*sin)
		case gamma*gamma > w02: // overdamped
			s := math.Sqrt(gamma*gamma - w02)
			r1, r2 := -gamma+s, -gamma-s
			c1 := (v0 - r2*x0) / (r1 - r2)
			c2 := x0 - c1
			x = c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
			v = c1*r1*math.Exp(r1*t) + c2*r2*math.Exp(r2*t)
		default: // critically damped
			decay := math.Exp(-gamma * t)
			x = (x0 + (v0+gamma*x0)*t) * decay
			v = (v0 - gamma*(v0+gamma*x0)*t) * decay
		}

		tr.T = append(tr.T, t)
		tr.X = append(tr.X, x)
		tr.V = append(tr.V, v)
		tr.E = append(tr.E, 0.5*m*v*v+0.5*k*x*x)
	}
	return tr
}

func resultByCheck(results []Result, check string) (Result, bool) {
	for _, r := range results {
		if r.Check == check {
			return r, true
		}
	}
	return Result{}, false
}
