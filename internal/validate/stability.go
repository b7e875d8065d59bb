package validate

import (
	"github.com/san-kum/oscheck/internal/analysis"
	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
)

// StabilityChecker flags the failure modes of a blown-up integration:
// non-finite samples and systematically negative energy.
type StabilityChecker struct {
	cfg *config.Config
}

func NewStabilityChecker(cfg *config.Config) *StabilityChecker {
	return &StabilityChecker{cfg: cfg}
}

func (sc *StabilityChecker) Check(tr *dataset.Trajectory) []Result {
	var results []Result

	series := []struct {
		name string
		data []float64
	}{
		{"finite_position", tr.X},
		{"finite_velocity", tr.V},
	}
	for _, s := range series {
		if analysis.HasNonFinite(s.data) {
			results = append(results, fail(CategoryStability, s.name, tr.B, 0,
				"series contains NaN or Inf"))
		} else {
			results = append(results, pass(CategoryStability, s.name, tr.B,
				"all %d samples finite", tr.Len()))
		}
	}

	// tiny negative noise is tolerated, systematic negative energy is not
	floor := -sc.cfg.Tolerances.NoiseFloor
	worst := 0.0
	for _, e := range tr.E {
		if e < floor && e < worst {
			worst = e
		}
	}
	if worst < 0 {
		results = append(results, fail(CategoryStability, "energy_sign", tr.B, -worst,
			"energy drops to %.3g below the noise floor", worst))
	} else {
		results = append(results, pass(CategoryStability, "energy_sign", tr.B,
			"no energy sample below %.0e", floor))
	}

	return results
}
