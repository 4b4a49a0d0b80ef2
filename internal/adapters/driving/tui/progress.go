// Package tui renders live batch progress for interactive terminals.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driving"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E63B14"))
	subjectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
)

// rowMsg wraps a batch row event for the update loop.
type rowMsg driving.RowEvent

// doneMsg signals the event stream ended.
type doneMsg struct{}

// Model is the batch progress view.
type Model struct {
	events <-chan driving.RowEvent

	bar     progress.Model
	total   int
	done    int
	lastRow string

	sourced   int
	generated int
	failed    int
	skipped   int
}

// NewModel creates the progress view over an event stream. The stream
// must be closed by the producer when the batch finishes.
func NewModel(total int, events <-chan driving.RowEvent) Model {
	bar := progress.New(progress.WithGradient("#E63B14", "#F9E2AF"))
	return Model{events: events, bar: bar, total: total}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent reads the next row event off the stream.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return rowMsg(ev)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 64 {
			m.bar.Width = 64
		}
	case rowMsg:
		m.done++
		if msg.Total > 0 {
			m.total = msg.Total
		}
		m.track(msg.Result)
		m.lastRow = renderRow(msg.Result)
		return m, m.waitForEvent()
	case doneMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) track(result domain.RowResult) {
	switch result.Status {
	case domain.RowFailed:
		m.failed++
	case domain.RowSkipped:
		m.skipped++
	default:
		if result.Decision.Path == domain.DecisionSourced {
			m.sourced++
		} else {
			m.generated++
		}
	}
}

func renderRow(result domain.RowResult) string {
	switch result.Status {
	case domain.RowFailed:
		return failStyle.Render("✗ ") + subjectStyle.Render(result.Catid+" "+result.Subject)
	case domain.RowSkipped:
		return skipStyle.Render("- ") + subjectStyle.Render(result.Catid) + mutedStyle.Render(" (no subject)")
	default:
		marker := okStyle.Render("✓ ")
		origin := mutedStyle.Render(" [" + string(result.Decision.Path) + "]")
		return marker + subjectStyle.Render(result.Catid+" "+result.Subject) + origin
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("iconsmith"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d rows", m.done, m.total)))
	b.WriteString("\n\n")

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.done) / float64(m.total)
	}
	b.WriteString(m.bar.ViewAs(ratio))
	b.WriteString("\n\n")

	if m.lastRow != "" {
		b.WriteString(m.lastRow)
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"sourced %d · generated %d · failed %d · skipped %d",
		m.sourced, m.generated, m.failed, m.skipped)))
	b.WriteString("\n")
	return b.String()
}

// Run displays the progress view until the event stream closes.
func Run(total int, events <-chan driving.RowEvent) error {
	p := tea.NewProgram(NewModel(total, events))
	_, err := p.Run()
	return err
}
