// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Interactive console for post-production, team, and salary views
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiokit/studioctl/api"
	"github.com/studiokit/studioctl/models"
	"github.com/studiokit/studioctl/postprod"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewStreams ViewMode = iota
	ViewForm
	ViewReview
	ViewActivity
	ViewTeam
	ViewSalary
)

// formKind selects which request the shared form builds on submit.
type formKind int

const (
	formAssign formKind = iota
	formReassign
	formSubmit
	formExtend
)

// Model is the main bubbletea model
type Model struct {
	client  *api.Client
	eventID string
	viewer  postprod.Viewer

	viewMode ViewMode

	// Streams view state
	job            *models.PostProdJob
	selectedStream models.StreamKind
	loading        bool

	// Form state, shared by the assign, submit, and extend forms
	formKind    formKind
	formInputs  []textinput.Model
	focusIndex  int
	formErr     string
	suggestions []models.Suggestion

	// Review form state
	approving  bool
	changeText textarea.Model
	nextDue    textinput.Model

	// Activity view state
	timeline []models.TimelineEntry

	// Team and salary view state
	team []models.TeamMember
	runs []models.SalaryRun

	// UI state
	width  int
	height int
	err    error
}

// NewModel creates a new TUI model for one event.
func NewModel(client *api.Client, eventID string, viewer postprod.Viewer) Model {
	return Model{
		client:         client,
		eventID:        eventID,
		viewer:         viewer,
		viewMode:       ViewStreams,
		selectedStream: models.StreamPhoto,
		width:          80,
		height:         24,
	}
}

// Messages carrying fetch results back into Update.
type jobLoadedMsg struct{ job *models.PostProdJob }
type activityLoadedMsg struct{ entries []models.TimelineEntry }
type teamLoadedMsg struct{ members []models.TeamMember }
type runsLoadedMsg struct{ runs []models.SalaryRun }
type suggestionsLoadedMsg struct{ suggestions []models.Suggestion }
type actionDoneMsg struct{}
type errMsg struct{ err error }

func (m Model) Init() tea.Cmd {
	return m.loadJob()
}

func (m Model) loadJob() tea.Cmd {
	return func() tea.Msg {
		job, err := m.client.Overview(context.Background(), m.eventID)
		if err != nil {
			return errMsg{err}
		}
		return jobLoadedMsg{job}
	}
}

func (m Model) loadActivity() tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.Activity(context.Background(), m.eventID)
		if err != nil {
			return errMsg{err}
		}
		return activityLoadedMsg{models.NormalizeActivity(items)}
	}
}

func (m Model) loadTeam() tea.Cmd {
	return func() tea.Msg {
		members, err := m.client.ListTeam(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return teamLoadedMsg{members}
	}
}

func (m Model) loadRuns() tea.Cmd {
	return func() tea.Msg {
		runs, err := m.client.ListSalaryRuns(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return runsLoadedMsg{runs}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case jobLoadedMsg:
		m.job = msg.job
		m.loading = false
		m.err = nil
		return m, nil
	case activityLoadedMsg:
		m.timeline = msg.entries
		m.loading = false
		return m, nil
	case teamLoadedMsg:
		m.team = msg.members
		m.loading = false
		return m, nil
	case runsLoadedMsg:
		m.runs = msg.runs
		m.loading = false
		return m, nil
	case suggestionsLoadedMsg:
		m.suggestions = msg.suggestions
		return m, nil
	case actionDoneMsg:
		m.viewMode = ViewStreams
		m.loading = true
		return m, m.loadJob()
	case errMsg:
		if m.viewMode == ViewForm || m.viewMode == ViewReview {
			m.formErr = msg.err.Error()
		} else {
			m.err = msg.err
		}
		m.loading = false
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewStreams:
		return m.renderStreamsView()
	case ViewForm:
		return m.renderFormView()
	case ViewReview:
		return m.renderReviewView()
	case ViewActivity:
		return m.renderActivityView()
	case ViewTeam:
		return m.renderTeamView()
	case ViewSalary:
		return m.renderSalaryView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Forms own their keys, including q.
	switch m.viewMode {
	case ViewForm:
		return m.handleFormKeys(msg)
	case ViewReview:
		return m.handleReviewKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewStreams:
		return m.handleStreamsKeys(msg)
	case ViewActivity, ViewTeam, ViewSalary:
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewStreams
	}
	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(38)

	cardSelectedStyle = cardStyle.
				BorderForeground(lipgloss.Color("170"))

	riskStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
