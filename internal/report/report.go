// Package report turns collected check results into the terminal
// report: one status line per check, then pass/fail counts grouped by
// category and by damping coefficient. It never stops early; every
// result it is handed gets printed.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/oscillator"
	"github.com/san-kum/oscheck/internal/validate"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	headStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)

type Writer struct {
	out io.Writer
}

func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Header prints the theoretical constants the checks are judged against.
func (w *Writer) Header(cfg *config.Config) {
	p := oscillator.Parameters{
		Mass:            cfg.Mass,
		SpringConstant:  cfg.Spring,
		InitialPosition: cfg.X0,
		InitialVelocity: cfg.V0,
	}

	fmt.Fprintln(w.out, headStyle.Render("damped oscillator validation"))
	fmt.Fprintf(w.out, "m=%.2f kg  k=%.2f N/m  x0=%.2f m  v0=%.2f m/s\n", cfg.Mass, cfg.Spring, cfg.X0, cfg.V0)
	fmt.Fprintf(w.out, "w0=%.4f rad/s  period=%.4f s  b_c=%.4f kg/s  E0=%.4f J\n\n",
		p.NaturalFrequency(), p.Period(), p.CriticalDamping(), p.InitialEnergy())
}

// Skip prints the non-fatal notice for a coefficient missing its file.
func (w *Writer) Skip(b float64, reason string) {
	fmt.Fprintf(w.out, "%s b=%.2f: %s\n", warnStyle.Render("skip"), b, reason)
}

// Results prints one status line per result, in order.
func (w *Writer) Results(results []validate.Result) {
	for _, r := range results {
		label := w.label(r)
		if r.Err != 0 {
			fmt.Fprintf(w.out, "%s %-24s %s %s\n", label, r.Check, r.Message,
				dimStyle.Render(fmt.Sprintf("(err=%.3g)", r.Err)))
		} else {
			fmt.Fprintf(w.out, "%s %-24s %s\n", label, r.Check, r.Message)
		}
	}
}

func (w *Writer) label(r validate.Result) string {
	switch {
	case !r.Passed:
		return failStyle.Render("FAIL")
	case r.Warning:
		return warnStyle.Render("warn")
	default:
		return passStyle.Render("pass")
	}
}

type tally struct {
	passed int
	failed int
	warned int
}

func (t tally) total() int { return t.passed + t.failed }

// Summary prints pass/fail counts grouped by category and by damping
// coefficient, followed by the overall verdict line.
func (w *Writer) Summary(results []validate.Result) {
	byCategory := map[validate.Category]*tally{}
	byCoefficient := map[float64]*tally{}
	overall := &tally{}

	for _, r := range results {
		add := func(t *tally) {
			if r.Passed {
				t.passed++
			} else {
				t.failed++
			}
			if r.Warning {
				t.warned++
			}
		}
		if byCategory[r.Category] == nil {
			byCategory[r.Category] = &tally{}
		}
		if byCoefficient[r.B] == nil {
			byCoefficient[r.B] = &tally{}
		}
		add(byCategory[r.Category])
		add(byCoefficient[r.B])
		add(overall)
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, headStyle.Render("summary"))

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "CATEGORY\tPASS\tFAIL\tWARN")
	for _, cat := range sortedCategories(byCategory) {
		t := byCategory[cat]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", cat, t.passed, t.failed, t.warned)
	}
	fmt.Fprintln(tw, "\t\t\t")

	fmt.Fprintln(tw, "COEFFICIENT\tPASS\tFAIL\tWARN")
	for _, b := range sortedCoefficients(byCoefficient) {
		t := byCoefficient[b]
		name := fmt.Sprintf("b=%.2f", b)
		if b == 0 {
			name = "constants"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", name, t.passed, t.failed, t.warned)
	}
	tw.Flush()

	fmt.Fprintln(w.out)
	if overall.failed == 0 {
		fmt.Fprintf(w.out, "%s %d/%d checks passed\n",
			passStyle.Render("ok"), overall.passed, overall.total())
	} else {
		fmt.Fprintf(w.out, "%s %d/%d checks failed\n",
			failStyle.Render("not ok"), overall.failed, overall.total())
	}
}

// Failed reports whether any result in the list failed.
func Failed(results []validate.Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}

func sortedCategories(m map[validate.Category]*tally) []validate.Category {
	cats := make([]validate.Category, 0, len(m))
	for c := range m {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

func sortedCoefficients(m map[float64]*tally) []float64 {
	bs := make([]float64, 0, len(m))
	for b := range m {
		bs = append(bs, b)
	}
	sort.Float64s(bs)
	return bs
}
