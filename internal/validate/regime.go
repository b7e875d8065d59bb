package validate

import (
	"github.com/san-kum/oscheck/internal/analysis"
	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
)

// DampingRegime is the qualitative decay behavior read off a trajectory.
type DampingRegime int

const (
	Underdamped DampingRegime = iota
	NearCritical
	OverdampedOrCritical
)

func (r DampingRegime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case NearCritical:
		return "near-critical"
	default:
		return "overdamped/critical"
	}
}

// RegimeClassifier labels a trajectory by counting zero crossings of the
// position. Two crossings make one oscillation. This is a shape
// heuristic with tunable thresholds, not a solution of the
// characteristic equation.
type RegimeClassifier struct {
	cfg *config.Config
}

func NewRegimeClassifier(cfg *config.Config) *RegimeClassifier {
	return &RegimeClassifier{cfg: cfg}
}

// Classify returns the regime and the oscillation count for x.
func (rc *RegimeClassifier) Classify(x []float64) (DampingRegime, int) {
	oscillations := analysis.ZeroCrossings(x) / 2
	switch {
	case oscillations > rc.cfg.Regime.UnderdampedMin:
		return Underdamped, oscillations
	case oscillations > 0:
		return NearCritical, oscillations
	default:
		return OverdampedOrCritical, oscillations
	}
}

// Check classifies the trajectory and records the label as an
// informational Result. Classification never fails on its own.
func (rc *RegimeClassifier) Check(tr *dataset.Trajectory) Result {
	regime, oscillations := rc.Classify(tr.X)
	return pass(CategoryRegime, "regime", tr.B,
		"%d oscillations -> %s", oscillations, regime)
}
