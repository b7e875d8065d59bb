package validate

import (
	"github.com/san-kum/oscheck/internal/analysis"
	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
)

// EnergyAnalyzer does the quadrature-based energy bookkeeping: the
// dissipation law b*integral(v^2)dt == E0, monotonic decay of E, and
// asymptotic convergence toward equilibrium.
type EnergyAnalyzer struct {
	cfg *config.Config
}

func NewEnergyAnalyzer(cfg *config.Config) *EnergyAnalyzer {
	return &EnergyAnalyzer{cfg: cfg}
}

func (ea *EnergyAnalyzer) Analyze(tr *dataset.Trajectory) []Result {
	var results []Result
	results = append(results, ea.dissipation(tr)...)
	results = append(results, ea.monotonicity(tr))
	results = append(results, ea.asymptotic(tr)...)
	return results
}

// dissipation integrates v^2 with the trapezoid rule (reference) and
// cross-checks Simpson and rectangle rules before applying the damping
// work law. Quadrature disagreement is a warning, not a failure.
func (ea *EnergyAnalyzer) dissipation(tr *dataset.Trajectory) []Result {
	v2 := analysis.Square(tr.V)
	trap := analysis.Trapezoid(tr.T, v2)
	simp := analysis.Simpson(tr.T, v2)
	rect := analysis.Rectangle(tr.T, v2)

	var results []Result

	if diff := analysis.RelativeDifference(trap, simp); diff < ea.cfg.Tolerances.Quadrature {
		results = append(results, pass(CategoryEnergy, "quadrature_convergence", tr.B,
			"trapezoid %.6f vs simpson %.6f (%.3f%%)", trap, simp, diff*100))
	} else {
		results = append(results, warn(CategoryEnergy, "quadrature_convergence", tr.B, diff,
			"trapezoid %.6f and simpson %.6f disagree by %.2f%%", trap, simp, diff*100))
	}

	if diff := analysis.RelativeDifference(trap, rect); diff >= ea.cfg.Tolerances.Rectangle {
		results = append(results, warn(CategoryEnergy, "rectangle_convergence", tr.B, diff,
			"trapezoid %.6f and rectangle %.6f disagree by %.2f%%", trap, rect, diff*100))
	}

	e0 := ea.cfg.TheoreticalEnergy
	dissipated := tr.B * trap
	relErr := analysis.RelativeDifference(e0, dissipated)
	if relErr < ea.cfg.Tolerances.Dissipation {
		results = append(results, pass(CategoryEnergy, "dissipated_energy", tr.B,
			"b*integral(v^2) = %.6f J vs E0 = %.4f J (%.3f%%)", dissipated, e0, relErr*100))
	} else {
		results = append(results, fail(CategoryEnergy, "dissipated_energy", tr.B, relErr,
			"dissipated %.6f J differs from E0 %.4f J by %.2f%%", dissipated, e0, relErr*100))
	}

	return results
}

// monotonicity rejects any energy increase above the noise floor. Zero
// violations are allowed.
func (ea *EnergyAnalyzer) monotonicity(tr *dataset.Trajectory) Result {
	floor := ea.cfg.Tolerances.NoiseFloor
	violations := 0
	worst := 0.0
	for i := 1; i < len(tr.E); i++ {
		if inc := tr.E[i] - tr.E[i-1]; inc > floor {
			violations++
			if inc > worst {
				worst = inc
			}
		}
	}

	if violations == 0 {
		return pass(CategoryEnergy, "energy_monotonicity", tr.B,
			"no increase above %.0e over %d samples", floor, tr.Len())
	}
	return fail(CategoryEnergy, "energy_monotonicity", tr.B, worst,
		"energy increases %d times, worst +%.3g", violations, worst)
}

// asymptotic requires the final quarter of samples to sit near
// equilibrium: bounded energy, position and velocity.
func (ea *EnergyAnalyzer) asymptotic(tr *dataset.Trajectory) []Result {
	x, v, e := tr.Tail(ea.cfg.Asymptotic.TailFraction)
	e0 := ea.cfg.TheoreticalEnergy
	var results []Result

	maxE := analysis.Max(e)
	bound := ea.cfg.Asymptotic.EnergyFraction * e0
	if maxE < bound {
		results = append(results, pass(CategoryEnergy, "asymptotic_energy", tr.B,
			"tail max E = %.4g J < %.4g J", maxE, bound))
	} else {
		results = append(results, fail(CategoryEnergy, "asymptotic_energy", tr.B, maxE,
			"tail max E = %.4g J exceeds %.4g J", maxE, bound))
	}

	maxX := analysis.MaxAbs(x)
	if maxX < ea.cfg.Asymptotic.PositionBound {
		results = append(results, pass(CategoryEnergy, "asymptotic_position", tr.B,
			"tail max |x| = %.4g", maxX))
	} else {
		results = append(results, fail(CategoryEnergy, "asymptotic_position", tr.B, maxX,
			"tail max |x| = %.4g exceeds %.2g", maxX, ea.cfg.Asymptotic.PositionBound))
	}

	maxV := analysis.MaxAbs(v)
	if maxV < ea.cfg.Asymptotic.VelocityBound {
		results = append(results, pass(CategoryEnergy, "asymptotic_velocity", tr.B,
			"tail max |v| = %.4g", maxV))
	} else {
		results = append(results, fail(CategoryEnergy, "asymptotic_velocity", tr.B, maxV,
			"tail max |v| = %.4g exceeds %.2g", maxV, ea.cfg.Asymptotic.VelocityBound))
	}

	return results
}
