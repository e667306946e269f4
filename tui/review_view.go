package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiokit/studioctl/api"
)

func (m *Model) initReviewForm() {
	m.approving = true
	m.formErr = ""
	m.focusIndex = 0
	m.changeText = textarea.New()
	m.changeText.Placeholder = "Requested changes, one per line"
	m.changeText.SetHeight(6)
	m.nextDue = textinput.New()
	m.nextDue.Placeholder = "Next due (YYYY-MM-DD, optional)"
	m.nextDue.CharLimit = 25
}

func (m Model) renderReviewView() string {
	var s strings.Builder

	stream := strings.ToUpper(string(m.selectedStream))
	s.WriteString(titleStyle.Render("REVIEW " + stream))
	s.WriteString("\n\n")

	if summary := m.job.Stream(m.selectedStream); summary != nil {
		s.WriteString(fmt.Sprintf("Submission v%d, %d deliverable(s)\n\n",
			summary.Version, len(summary.Deliverables)))
	}

	if m.approving {
		s.WriteString("Decision: [Approve final]  Request changes\n")
	} else {
		s.WriteString("Decision:  Approve final  [Request changes]\n\n")
		s.WriteString(m.changeText.View())
		s.WriteString("\n\n")
		s.WriteString(m.nextDue.View())
		s.WriteString("\n")
	}

	if m.formErr != "" {
		s.WriteString("\n")
		s.WriteString(errStyle.Render(m.formErr))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	help := "Tab: Toggle decision • Enter: Submit • Esc: Cancel"
	if !m.approving {
		help = "Tab: Next • Ctrl+S: Submit • Esc: Cancel"
	}
	s.WriteString(helpStyle.Render(help))
	return s.String()
}

func (m Model) handleReviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewStreams
		return m, nil
	case "tab":
		// Tab walks decision toggle -> change list -> next due.
		switch {
		case m.approving:
			m.approving = false
			m.focusIndex = 0
			m.changeText.Focus()
			m.nextDue.Blur()
		case m.focusIndex == 0:
			m.focusIndex = 1
			m.changeText.Blur()
			m.nextDue.Focus()
		default:
			m.approving = true
			m.nextDue.Blur()
		}
		return m, nil
	case "enter":
		// The textarea needs enter for newlines; ctrl+s submits the
		// changes path instead.
		if !m.approving && m.focusIndex == 0 {
			break
		}
		return m.submitReview()
	case "ctrl+s":
		return m.submitReview()
	}

	if !m.approving {
		var cmd tea.Cmd
		if m.focusIndex == 0 {
			m.changeText, cmd = m.changeText.Update(msg)
		} else {
			m.nextDue, cmd = m.nextDue.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) submitReview() (tea.Model, tea.Cmd) {
	req, err := m.reviewRequest()
	if err != nil {
		m.formErr = err.Error()
		return m, nil
	}
	return m, func() tea.Msg {
		if err := m.client.Review(context.Background(), m.eventID, m.selectedStream, req); err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{}
	}
}

// reviewRequest translates the form into the console review vocabulary.
func (m *Model) reviewRequest() (*api.ReviewRequest, error) {
	if m.approving {
		return &api.ReviewRequest{Decision: api.DecisionApproveFinal}, nil
	}
	changes := api.ParseChangeList(m.changeText.Value())
	if len(changes) == 0 {
		return nil, fmt.Errorf("at least one requested change is required")
	}
	nextDue, err := formDate(m.nextDue.Value())
	if err != nil {
		return nil, err
	}
	return &api.ReviewRequest{
		Decision:   api.DecisionRequestChanges,
		ChangeList: changes,
		NextDueAt:  nextDue,
	}, nil
}
