// Package tui is the interactive results browser: pick a damping
// coefficient, page through its check results and flip between the
// plotted series.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
	"github.com/san-kum/oscheck/internal/validate"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	bold   = lipgloss.NewStyle().Bold(true)
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type entry struct {
	b          float64
	skipped    bool
	reason     string
	trajectory *dataset.Trajectory
	results    []validate.Result
}

type model struct {
	screen  screen
	cursor  int
	entries []entry
	series  int // 0 x, 1 v, 2 E
	width   int
	height  int
}

var seriesNames = []string{"position x(t)", "velocity v(t)", "energy E(t)"}

// Run loads every configured coefficient, validates it and opens the
// browser. Missing files show up as skipped entries.
func Run(cfg *config.Config) error {
	runner := validate.NewRunner(cfg)

	entries := make([]entry, 0, len(cfg.Coefficients))
	for _, b := range cfg.Coefficients {
		tr, err := dataset.LoadCoefficient(cfg.DataDir, cfg.FilePattern, b)
		if err != nil {
			entries = append(entries, entry{b: b, skipped: true, reason: err.Error()})
			continue
		}
		entries = append(entries, entry{b: b, trajectory: tr, results: runner.Trajectory(tr)})
	}

	m := model{entries: entries, width: 80, height: 24}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.screen == screenDetail {
			m.screen = screenList
			return m, nil
		}
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.screen == screenList && !m.entries[m.cursor].skipped {
			m.screen = screenDetail
		}
	case "tab":
		if m.screen == screenDetail {
			m.series = (m.series + 1) % len(seriesNames)
		}
	case "esc":
		m.screen = screenList
	}
	return m, nil
}

func (m model) View() string {
	if m.screen == screenDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m model) listView() string {
	var sb strings.Builder
	sb.WriteString(bold.Render("oscheck — trajectory validation") + "\n\n")

	for i, e := range m.entries {
		marker := "  "
		if i == m.cursor {
			marker = cyan.Render("> ")
		}
		if e.skipped {
			sb.WriteString(fmt.Sprintf("%sb=%.2f  %s\n", marker, e.b, yellow.Render("skipped: "+e.reason)))
			continue
		}

		passed, failed := 0, 0
		for _, r := range e.results {
			if r.Passed {
				passed++
			} else {
				failed++
			}
		}
		status := green.Render(fmt.Sprintf("%d passed", passed))
		if failed > 0 {
			status += "  " + red.Render(fmt.Sprintf("%d failed", failed))
		}
		sb.WriteString(fmt.Sprintf("%sb=%.2f  %d samples  %s\n", marker, e.b, e.trajectory.Len(), status))
	}

	sb.WriteString("\n" + dim.Render("enter view  j/k move  q quit"))
	return sb.String()
}

func (m model) detailView() string {
	e := m.entries[m.cursor]
	var sb strings.Builder

	sb.WriteString(bold.Render(fmt.Sprintf("b=%.2f", e.b)) + "\n\n")

	data := [][]float64{e.trajectory.X, e.trajectory.V, e.trajectory.E}[m.series]
	width := m.width - 12
	if width < 20 {
		width = 20
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Caption(seriesNames[m.series]),
	)
	sb.WriteString(graph + "\n\n")

	for _, r := range e.results {
		label := green.Render("pass")
		if !r.Passed {
			label = red.Render("FAIL")
		} else if r.Warning {
			label = yellow.Render("warn")
		}
		sb.WriteString(fmt.Sprintf("%s %-24s %s\n", label, r.Check, dim.Render(r.Message)))
	}

	sb.WriteString("\n" + dim.Render("tab series  q back"))
	return sb.String()
}
