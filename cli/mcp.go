// ABOUTME: MCP server subcommand
// ABOUTME: Exposes studio operations as tools over stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiokit/studioctl/handlers"
)

// MCPCommand starts the MCP server on stdio.
func MCPCommand(app *App) error {
	log.Println("Starting studioctl MCP server...")

	postprodHandlers := handlers.NewPostProdHandlers(app.Client)
	teamHandlers := handlers.NewTeamHandlers(app.Client)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "studioctl",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_postprod_overview",
		Description: "Get the post-production overview for an event: both streams with state, editors, versions, and due dates",
	}, postprodHandlers.GetOverview)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "assign_editors",
		Description: "Assign or reassign editors to an event's photo or video stream with draft and final due dates",
	}, postprodHandlers.AssignEditors)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "review_submission",
		Description: "Approve a stream's current submission or request changes with a change list",
	}, postprodHandlers.ReviewSubmission)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_team",
		Description: "List the studio's team roster, optionally filtered by role",
	}, teamHandlers.ListTeam)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_salary_runs",
		Description: "List salary runs with period, status, and total",
	}, teamHandlers.ListSalaryRuns)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
