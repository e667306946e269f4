package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

func (m Model) renderTeamView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TEAM"))
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString("Loading...\n")
		return s.String()
	}
	if m.err != nil {
		s.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}

	columns := []table.Column{
		{Title: "UID", Width: 14},
		{Title: "Name", Width: 24},
		{Title: "Role", Width: 16},
		{Title: "Skills", Width: 30},
	}

	var rows []table.Row
	for _, member := range m.team {
		rows = append(rows, table.Row{
			member.UID,
			member.Name,
			member.Role,
			strings.Join(member.Skills, ", "),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
	)
	s.WriteString(t.View())

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Esc: Back • q: Quit"))
	return s.String()
}

func (m Model) renderSalaryView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SALARY RUNS"))
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString("Loading...\n")
		return s.String()
	}
	if m.err != nil {
		s.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}

	columns := []table.Column{
		{Title: "Period", Width: 12},
		{Title: "Status", Width: 12},
		{Title: "Total", Width: 16},
	}

	var rows []table.Row
	for _, run := range m.runs {
		rows = append(rows, table.Row{
			run.Period,
			run.RawStatus,
			fmt.Sprintf("%s %.2f", run.Currency, float64(run.TotalCents)/100),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
	)
	s.WriteString(t.View())

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Esc: Back • q: Quit"))
	return s.String()
}
