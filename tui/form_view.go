package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiokit/studioctl/api"
)

func (m *Model) initForm(kind formKind) {
	m.formKind = kind
	m.formErr = ""
	m.suggestions = nil
	m.viewMode = ViewForm

	switch kind {
	case formAssign, formReassign:
		m.formInputs = newInputs(
			field{"Lead editor UID", 50},
			field{"Assistant UIDs (comma-separated)", 200},
			field{"Draft due (YYYY-MM-DD)", 25},
			field{"Final due (YYYY-MM-DD)", 25},
			field{"Note", 200},
		)
		if kind == formReassign {
			if s := m.job.Stream(m.selectedStream); s != nil {
				if lead, ok := s.Lead(); ok {
					m.formInputs[0].SetValue(lead.UID)
				}
			}
		}
	case formSubmit:
		m.formInputs = newInputs(
			field{"Deliverables (name=url, comma-separated)", 500},
			field{"Change note", 200},
		)
	case formExtend:
		m.formInputs = newInputs(
			field{"New draft due (YYYY-MM-DD)", 25},
			field{"New final due (YYYY-MM-DD)", 25},
			field{"Reason", 200},
		)
	}

	m.focusIndex = 0
	m.updateFormFocus()
}

type field struct {
	placeholder string
	limit       int
}

func newInputs(fields ...field) []textinput.Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = f.limit
	}
	return inputs
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m Model) formTitle() string {
	stream := strings.ToUpper(string(m.selectedStream))
	switch m.formKind {
	case formAssign:
		return "ASSIGN " + stream
	case formReassign:
		return "REASSIGN " + stream
	case formSubmit:
		return "SUBMIT " + stream + " DRAFT"
	case formExtend:
		return "EXTEND " + stream + " DUE DATES"
	}
	return ""
}

func (m Model) renderFormView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(m.formTitle()))
	s.WriteString("\n\n")

	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	if m.formErr != "" {
		s.WriteString("\n")
		s.WriteString(errStyle.Render(m.formErr))
		s.WriteString("\n")
	}

	if len(m.suggestions) > 0 {
		s.WriteString("\nSuggested assignees:\n")
		for _, sug := range m.suggestions {
			name := sug.DisplayName
			if name == "" {
				name = sug.UID
			}
			s.WriteString(fmt.Sprintf("  %s (%s, %.2f)", name, sug.UID, sug.Score))
			if sug.Reason != "" {
				s.WriteString("  " + sug.Reason)
			}
			s.WriteString("\n")
		}
	}

	help := "Tab: Next field • Enter: Save • Esc: Cancel"
	if m.formKind == formAssign || m.formKind == formReassign {
		help = "Tab: Next field • Ctrl+G: Suggest • Enter: Save • Esc: Cancel"
	}
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(help))
	return s.String()
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewStreams
		return m, nil
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "ctrl+g":
		if m.formKind == formAssign || m.formKind == formReassign {
			return m, m.fetchSuggestions()
		}
		return m, nil
	case "enter":
		cmd, err := m.submitForm()
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m Model) fetchSuggestions() tea.Cmd {
	return func() tea.Msg {
		suggestions, err := m.client.SuggestAssignees(context.Background(), m.eventID, m.selectedStream)
		if err != nil {
			return errMsg{err}
		}
		return suggestionsLoadedMsg{suggestions}
	}
}

// submitForm validates locally and returns the network command. A
// validation failure keeps the form open with the error inline.
func (m *Model) submitForm() (tea.Cmd, error) {
	switch m.formKind {
	case formAssign, formReassign:
		req, err := m.assignRequest()
		if err != nil {
			return nil, err
		}
		reassign := m.formKind == formReassign
		return func() tea.Msg {
			var err error
			if reassign {
				err = m.client.Reassign(context.Background(), m.eventID, m.selectedStream, req)
			} else {
				err = m.client.Assign(context.Background(), m.eventID, m.selectedStream, req)
			}
			if err != nil {
				return errMsg{err}
			}
			return actionDoneMsg{}
		}, nil
	case formSubmit:
		req, err := m.submitRequest()
		if err != nil {
			return nil, err
		}
		return func() tea.Msg {
			if err := m.client.SubmitDraft(context.Background(), m.eventID, m.selectedStream, req); err != nil {
				return errMsg{err}
			}
			return actionDoneMsg{}
		}, nil
	case formExtend:
		req, err := m.extendRequest()
		if err != nil {
			return nil, err
		}
		return func() tea.Msg {
			if err := m.client.ExtendDue(context.Background(), m.eventID, m.selectedStream, req); err != nil {
				return errMsg{err}
			}
			return actionDoneMsg{}
		}, nil
	}
	return nil, fmt.Errorf("unknown form")
}

// assignRequest builds the request from the form fields and runs the
// same validation the API client applies.
func (m *Model) assignRequest() (*api.AssignRequest, error) {
	draft, err := formDate(m.formInputs[2].Value())
	if err != nil {
		return nil, err
	}
	final, err := formDate(m.formInputs[3].Value())
	if err != nil {
		return nil, err
	}

	req := &api.AssignRequest{
		LeadUID:    strings.TrimSpace(m.formInputs[0].Value()),
		DraftDueAt: draft,
		FinalDueAt: final,
		Note:       m.formInputs[4].Value(),
	}
	for _, uid := range strings.Split(m.formInputs[1].Value(), ",") {
		if uid = strings.TrimSpace(uid); uid != "" {
			req.AssistUIDs = append(req.AssistUIDs, uid)
		}
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func (m *Model) submitRequest() (*api.SubmitRequest, error) {
	deliverables := map[string]string{}
	for _, pair := range strings.Split(m.formInputs[0].Value(), ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, url, ok := strings.Cut(pair, "=")
		if !ok || name == "" || url == "" {
			return nil, fmt.Errorf("invalid deliverable %q (want name=url)", pair)
		}
		deliverables[name] = url
	}
	if len(deliverables) == 0 {
		return nil, fmt.Errorf("at least one deliverable is required")
	}
	return &api.SubmitRequest{
		Deliverables: deliverables,
		ChangeNote:   m.formInputs[1].Value(),
	}, nil
}

func (m *Model) extendRequest() (*api.ExtendDueRequest, error) {
	draft, err := formDate(m.formInputs[0].Value())
	if err != nil {
		return nil, err
	}
	final, err := formDate(m.formInputs[1].Value())
	if err != nil {
		return nil, err
	}
	if draft == nil && final == nil {
		return nil, fmt.Errorf("at least one due date is required")
	}
	return &api.ExtendDueRequest{
		DraftDueAt: draft,
		FinalDueAt: final,
		Reason:     m.formInputs[2].Value(),
	}, nil
}

func formDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return &t, nil
}
