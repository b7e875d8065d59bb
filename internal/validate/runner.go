package validate

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
)

// Runner executes every check against each trajectory. Checks never
// short-circuit: a failing Result is collected and its siblings still run.
type Runner struct {
	cfg       *config.Config
	physics   *PhysicsValidator
	energy    *EnergyAnalyzer
	stability *StabilityChecker
	regime    *RegimeClassifier
}

func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		cfg:       cfg,
		physics:   NewPhysicsValidator(cfg),
		energy:    NewEnergyAnalyzer(cfg),
		stability: NewStabilityChecker(cfg),
		regime:    NewRegimeClassifier(cfg),
	}
}

// Constants runs the coefficient-independent checks once per session.
func (r *Runner) Constants() []Result {
	results := r.physics.Constants()
	results = append(results, r.physics.NearCriticalRatio())
	return results
}

// Trajectory runs the full per-trajectory pipeline.
func (r *Runner) Trajectory(tr *dataset.Trajectory) []Result {
	var results []Result
	results = append(results, r.shape(tr)...)
	results = append(results, r.physics.InitialConditions(tr)...)
	results = append(results, r.energy.Analyze(tr)...)
	results = append(results, r.stability.Check(tr)...)
	results = append(results, r.regime.Check(tr))
	return results
}

// shape checks the file-level expectations: a commented header and a
// sample count within the configured band around nominal.
func (r *Runner) shape(tr *dataset.Trajectory) []Result {
	var results []Result

	if tr.CommentLines >= r.cfg.Samples.MinComment {
		results = append(results, pass(CategoryDataset, "header", tr.B,
			"%d comment lines", tr.CommentLines))
	} else {
		results = append(results, fail(CategoryDataset, "header", tr.B,
			float64(tr.CommentLines),
			"expected at least %d comment lines, got %d", r.cfg.Samples.MinComment, tr.CommentLines))
	}

	lo := int(float64(r.cfg.Samples.Nominal) * (1 - r.cfg.Samples.Band))
	hi := int(float64(r.cfg.Samples.Nominal) * (1 + r.cfg.Samples.Band))
	if n := tr.Len(); n >= lo && n <= hi {
		results = append(results, pass(CategoryDataset, "sample_count", tr.B,
			"%d samples within [%d, %d]", n, lo, hi))
	} else {
		results = append(results, fail(CategoryDataset, "sample_count", tr.B, float64(n),
			"%d samples outside [%d, %d]", n, lo, hi))
	}

	return results
}

// SweepOutcome is the result of validating one coefficient in a sweep.
type SweepOutcome struct {
	B       float64
	Skipped bool   // file missing, coefficient skipped
	Reason  string // populated when skipped
	Results []Result
}

// Sweep validates every configured coefficient. A missing file skips
// that coefficient and the rest proceed; a malformed file is fatal.
func (r *Runner) Sweep() ([]SweepOutcome, error) {
	outcomes := make([]SweepOutcome, 0, len(r.cfg.Coefficients))
	for _, b := range r.cfg.Coefficients {
		tr, err := dataset.LoadCoefficient(r.cfg.DataDir, r.cfg.FilePattern, b)
		if err != nil {
			var nf *dataset.NotFoundError
			if errors.As(err, &nf) {
				outcomes = append(outcomes, SweepOutcome{B: b, Skipped: true, Reason: nf.Error()})
				continue
			}
			return nil, err
		}
		outcomes = append(outcomes, SweepOutcome{B: b, Results: r.Trajectory(tr)})
	}
	return outcomes, nil
}

// CheckFilesExist is the strict existence check: the first missing
// coefficient file is fatal.
func CheckFilesExist(cfg *config.Config) error {
	for _, b := range cfg.Coefficients {
		path := dataset.Filename(cfg.DataDir, cfg.FilePattern, b)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("missing data file for b=%.2f: %w", b, &dataset.NotFoundError{Path: path})
			}
			return err
		}
	}
	return nil
}
