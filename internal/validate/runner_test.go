package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
)

func writeTrajectoryFile(t *testing.T, cfg *config.Config, b float64) {
	t.Helper()

	tr := analyticTrajectory(cfg, b, 5000, 0.001)

	var sb strings.Builder
	sb.WriteString("# damped oscillator run\n")
	fmt.Fprintf(&sb, "# m=%.2f k=%.2f b=%.2f\n", cfg.Mass, cfg.Spring, b)
	sb.WriteString("# t x v E\n")
	for i := 0; i < tr.Len(); i++ {
		fmt.Fprintf(&sb, "%.6f %.12e %.12e %.12e\n", tr.T[i], tr.X[i], tr.V[i], tr.E[i])
	}

	path := dataset.Filename(cfg.DataDir, cfg.FilePattern, b)
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestTrajectoryPipeline(t *testing.T) {
	cfg := config.Default()
	runner := NewRunner(cfg)

	tr := analyticTrajectory(cfg, 2.0, 5000, 0.001)
	results := runner.Trajectory(tr)

	if len(results) == 0 {
		t.Fatal("expected results")
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("%s failed on exact near-critical data: %s", r.Check, r.Message)
		}
	}

	categories := map[Category]bool{}
	for _, r := range results {
		categories[r.Category] = true
	}
	for _, want := range []Category{CategoryDataset, CategoryPhysics, CategoryEnergy, CategoryStability, CategoryRegime} {
		if !categories[want] {
			t.Errorf("no results in category %s", want)
		}
	}
}

func TestTrajectoryNoShortCircuit(t *testing.T) {
	cfg := config.Default()
	runner := NewRunner(cfg)

	// break the initial condition; every other check must still report
	tr := analyticTrajectory(cfg, 3.0, 5000, 0.001)
	tr.X[0] += 1e-6
	tr.E[0] = 0.5*cfg.Mass*tr.V[0]*tr.V[0] + 0.5*cfg.Spring*tr.X[0]*tr.X[0]

	results := runner.Trajectory(tr)

	failed := 0
	for _, r := range results {
		if !r.Passed {
			failed++
		}
	}
	if failed == 0 {
		t.Fatal("expected at least one failing check")
	}

	if r, ok := resultByCheck(results, "regime"); !ok || !r.Passed {
		t.Error("regime check should still run and pass")
	}
	if _, ok := resultByCheck(results, "dissipated_energy"); !ok {
		t.Error("dissipated_energy should still run")
	}
}

func TestSweepSkipsMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	// b=0.5 file absent; the other two coefficients must still be judged
	writeTrajectoryFile(t, cfg, 2.0)
	writeTrajectoryFile(t, cfg, 3.0)

	outcomes, err := NewRunner(cfg).Sweep()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}

	if !outcomes[0].Skipped {
		t.Error("b=0.5 should be skipped")
	}
	if outcomes[0].Reason == "" {
		t.Error("skip should carry a reason")
	}
	for _, o := range outcomes[1:] {
		if o.Skipped {
			t.Errorf("b=%.2f should not be skipped", o.B)
		}
		if len(o.Results) == 0 {
			t.Errorf("b=%.2f produced no results", o.B)
		}
	}
}

func TestSweepFatalOnFormatError(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	path := filepath.Join(cfg.DataDir, "resultados_b0.50.dat")
	if err := os.WriteFile(path, []byte("# h\n0.0 1.0 0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewRunner(cfg).Sweep(); err == nil {
		t.Fatal("expected format error to abort the sweep")
	}
}

func TestCheckFilesExist(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	writeTrajectoryFile(t, cfg, 0.5)
	writeTrajectoryFile(t, cfg, 2.0)
	writeTrajectoryFile(t, cfg, 3.0)

	if err := CheckFilesExist(cfg); err != nil {
		t.Errorf("all files present, got %v", err)
	}

	os.Remove(dataset.Filename(cfg.DataDir, cfg.FilePattern, 0.5))
	if err := CheckFilesExist(cfg); err == nil {
		t.Error("expected fatal error for missing file")
	}
}
