package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiokit/studioctl/models"
	"github.com/studiokit/studioctl/postprod"
)

func (m Model) renderStreamsView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("STUDIOCTL  " + m.eventID))
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString("Loading...\n")
		return s.String()
	}
	if m.err != nil {
		s.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\n")
	}
	if m.job == nil {
		s.WriteString("No post-production job for this event\n\n")
		s.WriteString(m.renderStreamsHelp())
		return s.String()
	}

	photo := m.renderStreamCard(models.StreamPhoto, m.job.Photo)
	video := m.renderStreamCard(models.StreamVideo, m.job.Video)
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, photo, " ", video))
	s.WriteString("\n\n")

	s.WriteString(m.renderStreamsHelp())
	return s.String()
}

func (m Model) renderStreamCard(kind models.StreamKind, stream *models.StreamSummary) string {
	style := cardStyle
	if kind == m.selectedStream {
		style = cardSelectedStyle
	}

	var b strings.Builder
	b.WriteString(strings.ToUpper(string(kind)))
	b.WriteString("\n\n")

	if stream == nil {
		b.WriteString("(no job)\n")
		return style.Render(b.String())
	}

	b.WriteString(fmt.Sprintf("State:   %s\n", stream.RawState))
	b.WriteString(fmt.Sprintf("Version: v%d\n", stream.Version))

	lead := "-"
	if l, ok := stream.Lead(); ok {
		lead = l.DisplayName
		if lead == "" {
			lead = l.UID
		}
	}
	b.WriteString(fmt.Sprintf("Lead:    %s\n", lead))

	if stream.DraftDueAt != nil {
		b.WriteString(fmt.Sprintf("Draft:   %s\n", stream.DraftDueAt.Local().Format("Jan 2 15:04")))
	}
	if stream.FinalDueAt != nil {
		b.WriteString(fmt.Sprintf("Final:   %s\n", stream.FinalDueAt.Local().Format("Jan 2 15:04")))
	}
	if stream.Risk != nil && stream.Risk.AtRisk {
		reason := stream.Risk.Reason
		if reason == "" {
			reason = "AT RISK"
		}
		b.WriteString(riskStyle.Render(reason))
		b.WriteString("\n")
	}

	if actions := postprod.VisibleActions(m.viewer, stream); len(actions) > 0 {
		b.WriteString("\n")
		for _, a := range actions {
			marker := "•"
			if !a.Enabled() {
				marker = "·"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", marker, actionLabel(a)))
		}
	}

	return style.Render(b.String())
}

func actionLabel(a postprod.Action) string {
	switch a {
	case postprod.ActionAssign:
		return "a: Assign editors"
	case postprod.ActionReassign:
		return "e: Reassign editors"
	case postprod.ActionStart:
		return "s: Start"
	case postprod.ActionSubmitDraft:
		return "u: Submit draft"
	case postprod.ActionReview:
		return "v: Review"
	case postprod.ActionAwaitSubmission:
		return "Awaiting submission"
	case postprod.ActionWaive:
		return "w: Waive"
	case postprod.ActionExtendDue:
		return "x: Extend due dates"
	}
	return string(a)
}

func (m Model) renderStreamsHelp() string {
	help := []string{
		"Tab: Switch stream",
		"g: Activity",
		"t: Team",
		"p: Salary",
		"r: Refresh",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

// streamActions returns the gated actions for the selected stream.
func (m Model) streamActions() []postprod.Action {
	if m.job == nil {
		return nil
	}
	return postprod.VisibleActions(m.viewer, m.job.Stream(m.selectedStream))
}

func (m Model) handleStreamsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions := m.streamActions()

	switch msg.String() {
	case "tab":
		if m.selectedStream == models.StreamPhoto {
			m.selectedStream = models.StreamVideo
		} else {
			m.selectedStream = models.StreamPhoto
		}
	case "r":
		m.loading = true
		return m, m.loadJob()
	case "g":
		m.viewMode = ViewActivity
		m.loading = true
		return m, m.loadActivity()
	case "t":
		m.viewMode = ViewTeam
		m.loading = true
		return m, m.loadTeam()
	case "p":
		m.viewMode = ViewSalary
		m.loading = true
		return m, m.loadRuns()
	case "a":
		if postprod.Has(actions, postprod.ActionAssign) {
			m.initForm(formAssign)
		}
	case "e":
		if postprod.Has(actions, postprod.ActionReassign) {
			m.initForm(formReassign)
		}
	case "u":
		if postprod.Has(actions, postprod.ActionSubmitDraft) {
			m.initForm(formSubmit)
		}
	case "x":
		if postprod.Has(actions, postprod.ActionExtendDue) {
			m.initForm(formExtend)
		}
	case "s":
		if postprod.Has(actions, postprod.ActionStart) {
			return m, m.startStream()
		}
	case "v":
		if postprod.Has(actions, postprod.ActionReview) {
			m.initReviewForm()
			m.viewMode = ViewReview
		}
	case "w":
		if postprod.Has(actions, postprod.ActionWaive) {
			return m, m.waiveStream()
		}
	}
	return m, nil
}
