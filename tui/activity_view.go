package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderActivityView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("ACTIVITY  " + m.eventID))
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString("Loading...\n")
		return s.String()
	}
	if m.err != nil {
		s.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}
	if len(m.timeline) == 0 {
		s.WriteString("No activity yet\n")
	}

	max := m.height - 8
	for i, e := range m.timeline {
		if max > 0 && i >= max {
			s.WriteString(fmt.Sprintf("  ... %d more\n", len(m.timeline)-i))
			break
		}
		stream := ""
		if e.Stream != "" {
			stream = fmt.Sprintf(" [%s]", e.Stream)
		}
		s.WriteString(fmt.Sprintf("%s%s  %s\n",
			e.At.Local().Format("Jan 2 15:04"), stream, e.Label))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("Esc: Back • q: Quit"))
	return s.String()
}
