// ABOUTME: Dev proxy command
// ABOUTME: Serves a local /api reverse proxy against the configured backend
package cli

import (
	"flag"
	"fmt"
	"log"

	"github.com/studiokit/studioctl/web"
)

// ProxyCommand runs the local development proxy in the foreground.
func ProxyCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("proxy", flag.ExitOnError)
	port := fs.Int("port", 8787, "Port to listen on")
	origin := fs.String("origin", "", "Backend origin (default: configured api_base)")
	_ = fs.Parse(args)

	target := *origin
	if target == "" {
		target = app.Config.APIBase
	}
	if target == "" {
		return fmt.Errorf("no backend origin configured")
	}

	proxy, err := web.NewProxy(target)
	if err != nil {
		return err
	}

	log.Printf("Proxying /api on :%d to %s", *port, target)
	return proxy.Serve(*port)
}
