// ABOUTME: TUI launch command
// ABOUTME: Resolves viewer identity and runs the full-screen console
package cli

import (
	"flag"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiokit/studioctl/db"
	"github.com/studiokit/studioctl/postprod"
	"github.com/studiokit/studioctl/tui"
)

// TuiCommand runs the interactive console for one event.
func TuiCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	uid := fs.String("uid", "", "Viewer member UID (default: stored preference)")
	admin := fs.Bool("admin", false, "View with admin actions")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}

	viewerUID := *uid
	if viewerUID == "" && app.DB != nil {
		viewerUID, err = db.GetPreference(app.DB, db.PrefMemberUID)
		if err != nil {
			return err
		}
	}
	if viewerUID != "" && *uid != "" && app.DB != nil {
		// Remember an explicitly passed UID for next time.
		if err := db.SetPreference(app.DB, db.PrefMemberUID, viewerUID); err != nil {
			return err
		}
	}

	model := tui.NewModel(app.Client, eventID, postprod.Viewer{UID: viewerUID, Admin: *admin})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}
