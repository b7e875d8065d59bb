package validate

import (
	"math"

	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
	"github.com/san-kum/oscheck/internal/oscillator"
)

// PhysicsValidator checks a trajectory's initial state and the system's
// theoretical constants against the configured parameters.
type PhysicsValidator struct {
	cfg *config.Config
}

func NewPhysicsValidator(cfg *config.Config) *PhysicsValidator {
	return &PhysicsValidator{cfg: cfg}
}

func (pv *PhysicsValidator) params(b float64) oscillator.Parameters {
	return oscillator.Parameters{
		Mass:            pv.cfg.Mass,
		SpringConstant:  pv.cfg.Spring,
		Damping:         b,
		InitialPosition: pv.cfg.X0,
		InitialVelocity: pv.cfg.V0,
	}
}

// Constants verifies the coefficient-independent identities: w0^2*m == k,
// b_c^2 == 4*m*k, and E0 against the declared theoretical value.
func (pv *PhysicsValidator) Constants() []Result {
	p := pv.params(0)
	tol := pv.cfg.Tolerances.Constant
	var results []Result

	w0 := p.NaturalFrequency()
	if delta := math.Abs(w0*w0*p.Mass - p.SpringConstant); delta < tol {
		results = append(results, pass(CategoryPhysics, "natural_frequency", 0,
			"w0 = %.4f rad/s, period %.4f s", w0, p.Period()))
	} else {
		results = append(results, fail(CategoryPhysics, "natural_frequency", 0, delta,
			"w0^2*m differs from k by %.3g", delta))
	}

	bc := p.CriticalDamping()
	if delta := math.Abs(bc*bc - 4*p.Mass*p.SpringConstant); delta < tol {
		results = append(results, pass(CategoryPhysics, "critical_damping", 0,
			"b_c = %.4f kg/s", bc))
	} else {
		results = append(results, fail(CategoryPhysics, "critical_damping", 0, delta,
			"b_c^2 differs from 4*m*k by %.3g", delta))
	}

	e0 := p.InitialEnergy()
	if delta := math.Abs(e0 - pv.cfg.TheoreticalEnergy); delta < tol {
		results = append(results, pass(CategoryPhysics, "initial_energy", 0,
			"E0 = %.4f J", e0))
	} else {
		results = append(results, fail(CategoryPhysics, "initial_energy", 0, delta,
			"computed E0 %.6f differs from declared %.6f", e0, pv.cfg.TheoreticalEnergy))
	}

	return results
}

// NearCriticalRatio checks that the configured near-critical coefficient
// sits within 10% of b_c. This is a calibration constraint of the
// reference dataset, not a law.
func (pv *PhysicsValidator) NearCriticalRatio() Result {
	p := pv.params(pv.cfg.NearCritical)
	ratio := p.DampingRatio()
	if ratio > 0.9 && ratio < 1.1 {
		return pass(CategoryPhysics, "near_critical_ratio", p.Damping,
			"b/b_c = %.3f", ratio)
	}
	return fail(CategoryPhysics, "near_critical_ratio", p.Damping, math.Abs(ratio-1),
		"b=%.2f is not near critical: b/b_c = %.3f", p.Damping, ratio)
}

// InitialConditions verifies the trajectory starts at the configured
// state within the initial-condition tolerance.
func (pv *PhysicsValidator) InitialConditions(tr *dataset.Trajectory) []Result {
	p := pv.params(tr.B)
	tol := pv.cfg.Tolerances.Initial
	var results []Result

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"initial_position", tr.X[0], p.InitialPosition},
		{"initial_velocity", tr.V[0], p.InitialVelocity},
		{"initial_energy_sample", tr.E[0], p.InitialEnergy()},
	}

	for _, c := range checks {
		delta := math.Abs(c.got - c.expected)
		if delta < tol {
			results = append(results, pass(CategoryPhysics, c.name, tr.B,
				"%.6f matches %.6f", c.got, c.expected))
		} else {
			results = append(results, fail(CategoryPhysics, c.name, tr.B, delta,
				"got %.10f, expected %.10f (delta %.3g)", c.got, c.expected, delta))
		}
	}

	return results
}
