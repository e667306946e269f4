// ABOUTME: Shared command context: config, local store, API client
// ABOUTME: Builds the authenticated client commands run against
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studiokit/studioctl/api"
	"github.com/studiokit/studioctl/config"
)

// App bundles what every command needs. DB may be nil for commands
// that never touch the local store.
type App struct {
	Config *config.Config
	DB     *sql.DB
	Client *api.Client
}

// NewApp loads config and builds an authenticated API client.
func NewApp(ctx context.Context, cfg *config.Config, database *sql.DB) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	creds, err := cfg.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return &App{
		Config: cfg,
		DB:     database,
		Client: api.NewClient(cfg.APIBase, creds),
	}, nil
}

// parseDate accepts RFC3339 or a bare YYYY-MM-DD date.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD or RFC3339)", s)
	}
	return &t, nil
}

// eventID resolves the event from a flag value or the configured default.
func (a *App) eventID(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if a.Config.DefaultEvent != "" {
		return a.Config.DefaultEvent, nil
	}
	return "", fmt.Errorf("--event is required (or set default_event in %s)", config.Path())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func fmtCents(cents int64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, float64(cents)/100)
}
