// ABOUTME: Pipeline graph command
// ABOUTME: Renders an event's post-production pipeline as DOT or PNG
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/studiokit/studioctl/viz"
)

// GraphCommand renders the pipeline of an event's two streams. Output
// format follows the file extension: .png renders via graphviz,
// anything else writes DOT.
func GraphCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	output := fs.String("output", "", "Output file (default: DOT to stdout)")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}

	ctx := context.Background()
	job, err := app.Client.Overview(ctx, eventID)
	if err != nil {
		return err
	}

	if strings.HasSuffix(*output, ".png") {
		if err := viz.RenderPipelinePNG(ctx, eventID, job, *output); err != nil {
			return fmt.Errorf("failed to render graph: %w", err)
		}
		fmt.Printf("✓ Graph written to %s\n", *output)
		return nil
	}

	dot := viz.GeneratePipelineDOT(eventID, job)
	if *output == "" {
		fmt.Print(dot)
		return nil
	}
	if err := os.WriteFile(*output, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	fmt.Printf("✓ Graph written to %s\n", *output)
	return nil
}
