// ABOUTME: Entry point for the studioctl console
// ABOUTME: Routes to post-production, team, salary, equipment, and MCP commands
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/studiokit/studioctl/cli"
	"github.com/studiokit/studioctl/config"
	"github.com/studiokit/studioctl/db"
)

const version = "0.1.0"

func main() {
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Local store path (default: ~/.local/share/studioctl/studioctl.db)")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("studioctl version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Login and logout work without a valid backend config.
	switch command {
	case "login":
		if err := cli.LoginCommand(cfg, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	case "logout":
		if err := cli.LogoutCommand(commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	app, err := newApp(cfg, *dbPath, command)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	switch command {
	case "mcp":
		if err := cli.MCPCommand(app); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "tui":
		if err := cli.TuiCommand(app, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "postprod":
		runSub(command, commandArgs, map[string]func([]string) error{
			"overview":   func(a []string) error { return cli.OverviewCommand(app, a) },
			"init":       func(a []string) error { return cli.InitJobCommand(app, a) },
			"activity":   func(a []string) error { return cli.ActivityCommand(app, a) },
			"assign":     func(a []string) error { return cli.AssignCommand(app, a, false) },
			"reassign":   func(a []string) error { return cli.AssignCommand(app, a, true) },
			"suggest":    func(a []string) error { return cli.SuggestCommand(app, a) },
			"start":      func(a []string) error { return cli.StartCommand(app, a) },
			"submit":     func(a []string) error { return cli.SubmitCommand(app, a) },
			"review":     func(a []string) error { return cli.ReviewCommand(app, a) },
			"waive":      func(a []string) error { return cli.WaiveCommand(app, a) },
			"extend-due": func(a []string) error { return cli.ExtendDueCommand(app, a) },
			"watch":      func(a []string) error { return cli.WatchCommand(app, a) },
		})

	case "team":
		runSub(command, commandArgs, map[string]func([]string) error{
			"list":          func(a []string) error { return cli.ListTeamCommand(app, a) },
			"add":           func(a []string) error { return cli.AddMemberCommand(app, a) },
			"update":        func(a []string) error { return cli.UpdateMemberCommand(app, a) },
			"remove":        func(a []string) error { return cli.RemoveMemberCommand(app, a) },
			"invite":        func(a []string) error { return cli.InviteCommand(app, a) },
			"invites":       func(a []string) error { return cli.ListInvitesCommand(app, a) },
			"revoke-invite": func(a []string) error { return cli.RevokeInviteCommand(app, a) },
		})

	case "leave":
		runSub(command, commandArgs, map[string]func([]string) error{
			"list":    func(a []string) error { return cli.ListLeaveCommand(app, a) },
			"decide":  func(a []string) error { return cli.DecideLeaveCommand(app, a) },
			"approve": func(a []string) error { return cli.DecideLeaveCommand(app, append([]string{"--approve"}, a...)) },
			"reject":  func(a []string) error { return cli.DecideLeaveCommand(app, append([]string{"--reject"}, a...)) },
		})

	case "salary":
		runSub(command, commandArgs, map[string]func([]string) error{
			"list":      func(a []string) error { return cli.ListSalaryRunsCommand(app, a) },
			"show":      func(a []string) error { return cli.ShowSalaryRunCommand(app, a) },
			"payslips":  func(a []string) error { return cli.ShowSalaryRunCommand(app, a) },
			"publish":   func(a []string) error { return cli.SalaryTransitionCommand(app, "publish", a) },
			"mark-paid": func(a []string) error { return cli.SalaryTransitionCommand(app, "mark-paid", a) },
			"close":     func(a []string) error { return cli.SalaryTransitionCommand(app, "close", a) },
			"void":      func(a []string) error { return cli.SalaryTransitionCommand(app, "void", a) },
		})

	case "equipment":
		runSub(command, commandArgs, map[string]func([]string) error{
			"list":     func(a []string) error { return cli.ListEquipmentCommand(app, a) },
			"checkout": func(a []string) error { return cli.CheckoutCommand(app, a) },
			"checkin":  func(a []string) error { return cli.CheckinCommand(app, a) },
			"scan":     func(a []string) error { return cli.ScanCommand(app, a) },
			"queue":    func(a []string) error { return cli.QueueCommand(app, a) },
			"flush":    func(a []string) error { return cli.FlushCommand(app, a) },
		})

	case "intake":
		runSub(command, commandArgs, map[string]func([]string) error{
			"submissions": func(a []string) error { return cli.ListSubmissionsCommand(app, a) },
			"list":        func(a []string) error { return cli.ListSubmissionsCommand(app, a) },
			"decide":      func(a []string) error { return cli.DecideSubmissionCommand(app, a) },
			"approve":     func(a []string) error { return cli.DecideSubmissionCommand(app, append([]string{"--approve"}, a...)) },
			"reject":      func(a []string) error { return cli.DecideSubmissionCommand(app, append([]string{"--reject"}, a...)) },
			"receipts":    func(a []string) error { return cli.ListReceiptsCommand(app, a) },
			"verify":      func(a []string) error { return cli.VerifyReceiptCommand(app, a) },
		})

	case "graph":
		if err := cli.GraphCommand(app, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "proxy":
		if err := cli.ProxyCommand(app, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// newApp builds the command context. Commands that use the offline queue
// or stored preferences get the local store opened too.
func newApp(cfg *config.Config, dbPath, command string) (*cli.App, error) {
	var database *sql.DB
	switch command {
	case "equipment", "tui":
		path := dbPath
		if path == "" {
			path = db.DefaultPath()
		}
		var err error
		database, err = db.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open local store: %w", err)
		}
	}
	return cli.NewApp(context.Background(), cfg, database)
}

func runSub(command string, args []string, subs map[string]func([]string) error) {
	if len(args) == 0 {
		fmt.Printf("Error: %s requires a subcommand\n\n", command)
		printUsage()
		os.Exit(1)
	}
	run, ok := subs[args[0]]
	if !ok {
		fmt.Printf("Unknown %s command: %s\n\n", command, args[0])
		printUsage()
		os.Exit(1)
	}
	if err := run(args[1:]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func printUsage() {
	fmt.Printf(`studioctl v%s - Production studio console

USAGE:
  studioctl [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Local store path (default: ~/.local/share/studioctl/studioctl.db)

COMMANDS:
  login                  Store an API token
  logout                 Remove the stored token
  tui                    Interactive console for one event
  mcp                    Start MCP server on stdio
  postprod               Post-production workflow commands
  team                   Roster and invite commands
  leave                  Leave request commands
  salary                 Salary run commands
  equipment              Gear checkout and check-in commands
  intake                 Data submission and receipt commands
  graph                  Render an event's pipeline graph
  proxy                  Run the local development proxy

POSTPROD COMMANDS:
  studioctl postprod overview --event <id>        Show both streams
  studioctl postprod init --event <id>            Create the post-production job
  studioctl postprod activity --event <id>        Show the activity timeline
  studioctl postprod assign --event <id> --stream photo|video
    --lead <uid>            Lead editor (required)
    --assists <uids>        Comma-separated assistants
    --draft-due <date>      Draft due date (required)
    --final-due <date>      Final due date (required)
  studioctl postprod reassign                     Same flags as assign
  studioctl postprod suggest --stream photo|video Suggested assignees
  studioctl postprod start --stream photo|video   Mark in progress (lead)
  studioctl postprod submit --stream photo|video [name=url ...]
  studioctl postprod review --stream photo|video --approve | --changes <text|->
  studioctl postprod waive --stream photo|video [--reason <text>]
  studioctl postprod extend-due --stream photo|video [--draft-due <date>] [--final-due <date>]
  studioctl postprod watch --stream photo|video   Follow the live channel

TEAM COMMANDS:
  studioctl team list [--role <role>]
  studioctl team add --name <name> --role <role> [--email <email>] [--skills <a,b>]
  studioctl team update [flags] <uid>
  studioctl team remove <uid>
  studioctl team invite --email <email> --role <role>
  studioctl team invites
  studioctl team revoke-invite <id>
  studioctl leave list [--status <status>]
  studioctl leave approve|reject [--note <text>] <id>

SALARY COMMANDS:
  studioctl salary list [--status <status>]
  studioctl salary show <run-id>
  studioctl salary publish|mark-paid|close|void <run-id>

EQUIPMENT COMMANDS:
  studioctl equipment list [--status <status>]
  studioctl equipment checkout --tag <tag> --member <uid>
  studioctl equipment checkin --tag <tag> [--member <uid>] [--condition <note>] [--queue]
  studioctl equipment scan [--member <uid>]      Queue check-ins from a scanner
  studioctl equipment queue                      Show the offline queue
  studioctl equipment flush                      Deliver queued check-ins

INTAKE COMMANDS:
  studioctl intake submissions [--status <status>]
  studioctl intake decide --approve|--reject <id>
  studioctl intake receipts [--status <status>]
  studioctl intake verify [--dispute] <id>

EXAMPLES:
  # Store a token
  studioctl login

  # Assign the photo stream
  studioctl postprod assign --event evt_42 --stream photo --lead u_ana \
    --draft-due 2026-09-10 --final-due 2026-09-20

  # Request changes from a file
  cat changes.txt | studioctl postprod review --event evt_42 --stream video --changes -

  # Flush offline check-ins after a shoot
  studioctl equipment flush

`, version)
}
