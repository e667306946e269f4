package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) startStream() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Start(context.Background(), m.eventID, m.selectedStream); err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{}
	}
}

func (m Model) waiveStream() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Waive(context.Background(), m.eventID, m.selectedStream, ""); err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{}
	}
}
