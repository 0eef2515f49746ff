package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amkisko/sex-cli/internal/sentry"
)

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Viewer shows the details of a single issue in a scrollable pane.
type Viewer struct {
	issue    sentry.Issue
	viewport viewport.Model
}

// NewViewer builds a detail pane for the issue.
func NewViewer(issue sentry.Issue, width int) Viewer {
	if width <= 0 {
		width = 80
	}
	vp := viewport.New(width-4, 16)
	viewer := Viewer{issue: issue, viewport: vp}
	viewer.viewport.SetContent(viewer.content())
	return viewer
}

// Run shows the viewer standalone (outside the monitor) until dismissed.
func (v Viewer) Run() error {
	_, err := tea.NewProgram(standalone{viewer: v}, tea.WithAltScreen()).Run()
	return err
}

func (v Viewer) Update(msg tea.Msg) (Viewer, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.viewport.Width = msg.Width - 4
		v.viewport.SetContent(v.content())
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v Viewer) View() string {
	title := labelStyle.Render("Issue Details")
	footer := footerStyle.Render("j/k scroll · esc back · q quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		boxStyle.Render(v.viewport.View()),
		footer,
	)
}

func (v Viewer) content() string {
	rows := []struct {
		label string
		value string
	}{
		{"ID", v.issue.ID},
		{"Title", v.issue.Title},
		{"Status", v.issue.Status},
		{"Level", v.issue.Level},
		{"Culprit", v.issue.Culprit},
		{"Last Seen", v.issue.LastSeen},
		{"Events", fmt.Sprintf("%d", v.issue.Count)},
		{"Users Affected", fmt.Sprintf("%d", v.issue.UserCount)},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, labelStyle.Render(row.label+": ")+row.value)
	}
	return strings.Join(lines, "\n")
}

// standalone adapts a Viewer into a root bubbletea model.
type standalone struct {
	viewer Viewer
}

func (s standalone) Init() tea.Cmd { return nil }

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "esc", "ctrl+c":
			return s, tea.Quit
		}
	}
	var cmd tea.Cmd
	s.viewer, cmd = s.viewer.Update(msg)
	return s, cmd
}

func (s standalone) View() string { return s.viewer.View() }
