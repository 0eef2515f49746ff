package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amkisko/sex-cli/internal/sentry"
	"github.com/amkisko/sex-cli/internal/ui"
)

// maxIssues is how many issues the dashboard keeps, ordered by event count.
const maxIssues = 10

// IssueLister is the slice of the API client the dashboard needs.
type IssueLister interface {
	ListIssues(orgSlug, projectSlug string) ([]sentry.Issue, error)
}

type issuesMsg struct {
	issues []sentry.Issue
	err    error
}

type tickMsg time.Time

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	columnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Monitor is the live issue dashboard. It polls the project's unresolved
// issues on an interval and shows the top ten by event count.
type Monitor struct {
	client      IssueLister
	orgSlug     string
	projectSlug string
	refresh     time.Duration

	keys     keyMap
	issues   []sentry.Issue
	selected int
	fetchErr error
	width    int
	viewer   *Viewer
}

// NewMonitor builds a dashboard for one project.
func NewMonitor(client IssueLister, orgSlug, projectSlug string, refresh time.Duration) Monitor {
	return Monitor{
		client:      client,
		orgSlug:     orgSlug,
		projectSlug: projectSlug,
		refresh:     refresh,
		keys:        defaultKeyMap(),
		width:       80,
	}
}

// Run executes the dashboard loop in the alternate screen until the user
// quits.
func (m Monitor) Run() error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Monitor) Init() tea.Cmd {
	return tea.Batch(m.fetchIssues, m.scheduleTick())
}

func (m Monitor) fetchIssues() tea.Msg {
	issues, err := m.client.ListIssues(m.orgSlug, m.projectSlug)
	return issuesMsg{issues: issues, err: err}
}

func (m Monitor) scheduleTick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// While an issue is open, the viewer owns all input except its exit.
	if m.viewer != nil {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			if key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Back) {
				m.viewer = nil
				return m, nil
			}
		}
		viewer, cmd := m.viewer.Update(msg)
		m.viewer = &viewer
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		return m, tea.Batch(m.fetchIssues, m.scheduleTick())

	case issuesMsg:
		if msg.err != nil {
			m.fetchErr = msg.err
			return m, nil
		}
		m.fetchErr = nil
		m.issues = topIssues(msg.issues)
		if m.selected >= len(m.issues) {
			m.selected = max(0, len(m.issues)-1)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.issues)-1 {
				m.selected++
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, m.fetchIssues
		case key.Matches(msg, m.keys.Open):
			if m.selected < len(m.issues) {
				viewer := NewViewer(m.issues[m.selected], m.width)
				m.viewer = &viewer
			}
		}
	}
	return m, nil
}

func (m Monitor) View() string {
	if m.viewer != nil {
		return m.viewer.View()
	}

	header := headerStyle.Render(fmt.Sprintf("Issue Monitor: %s/%s", m.orgSlug, m.projectSlug))
	columns := columnStyle.Render(fmt.Sprintf("%-10s %-40s %-12s %8s %8s",
		"ID", "Title", "Status", "Events", "Users"))

	rows := make([]string, 0, len(m.issues)+4)
	rows = append(rows, header, "", columns)

	for i, issue := range m.issues {
		line := fmt.Sprintf("%-10s %-40s %-12s %8d %8d",
			ui.Truncate(issue.ID, 10),
			ui.Truncate(issue.Title, 40),
			issue.Status,
			issue.Count,
			issue.UserCount,
		)
		if i == m.selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	if len(m.issues) == 0 && m.fetchErr == nil {
		rows = append(rows, footerStyle.Render("  no unresolved issues"))
	}
	if m.fetchErr != nil {
		rows = append(rows, errorStyle.Render("  "+m.fetchErr.Error()))
	}

	rows = append(rows, "", footerStyle.Render("↑/↓ select · enter open · r refresh · q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// topIssues sorts by event count descending and keeps the busiest ten.
func topIssues(issues []sentry.Issue) []sentry.Issue {
	sorted := make([]sentry.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if len(sorted) > maxIssues {
		sorted = sorted[:maxIssues]
	}
	return sorted
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
