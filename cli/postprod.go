// ABOUTME: Post-production CLI commands
// ABOUTME: Overview, editor assignment, submission, review, and live watch
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/studiokit/studioctl/api"
	"github.com/studiokit/studioctl/live"
	"github.com/studiokit/studioctl/models"
	"github.com/studiokit/studioctl/postprod"
)

func parseStreamKind(raw string) (models.StreamKind, error) {
	switch raw {
	case "photo":
		return models.StreamPhoto, nil
	case "video":
		return models.StreamVideo, nil
	}
	return "", fmt.Errorf("invalid stream %q (want photo or video)", raw)
}

// OverviewCommand prints both streams of an event's post-production job.
func OverviewCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("overview", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}

	job, err := app.Client.Overview(context.Background(), eventID)
	if err != nil {
		return err
	}

	printOverview(os.Stdout, eventID, job)
	return nil
}

func printOverview(w io.Writer, eventID string, job *models.PostProdJob) {
	fmt.Fprintf(w, "Event %s\n\n", eventID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "STREAM\tSTATE\tVERSION\tLEAD\tDRAFT DUE\tFINAL DUE\tRISK")
	_, _ = fmt.Fprintln(tw, "------\t-----\t-------\t----\t---------\t---------\t----")
	writeStreamRow(tw, models.StreamPhoto, job.Photo)
	writeStreamRow(tw, models.StreamVideo, job.Video)
	_ = tw.Flush()
}

func writeStreamRow(w io.Writer, kind models.StreamKind, s *models.StreamSummary) {
	if s == nil {
		_, _ = fmt.Fprintf(w, "%s\t(no job)\t-\t-\t-\t-\t-\n", kind)
		return
	}
	leadName := "-"
	if lead, ok := s.Lead(); ok {
		leadName = lead.DisplayName
		if leadName == "" {
			leadName = lead.UID
		}
	}
	risk := "-"
	if s.Risk != nil && s.Risk.AtRisk {
		risk = "AT RISK"
		if s.Risk.Reason != "" {
			risk = s.Risk.Reason
		}
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
		kind, s.RawState, s.Version, leadName, fmtTime(s.DraftDueAt), fmtTime(s.FinalDueAt), risk)
}

// InitJobCommand creates the post-production job for an event.
func InitJobCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("init-job", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	if err := app.Client.InitJob(context.Background(), eventID); err != nil {
		return err
	}
	fmt.Printf("✓ Post-production job created for event %s\n", eventID)
	return nil
}

// ActivityCommand prints the event's activity timeline, newest first.
func ActivityCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("activity", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	limit := fs.Int("limit", 30, "Maximum entries")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	items, err := app.Client.Activity(context.Background(), eventID)
	if err != nil {
		return err
	}

	entries := models.NormalizeActivity(items)
	if len(entries) == 0 {
		fmt.Println("No activity yet")
		return nil
	}
	if *limit > 0 && len(entries) > *limit {
		entries = entries[:*limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WHEN\tSTREAM\tWHAT")
	_, _ = fmt.Fprintln(w, "----\t------\t----")
	for _, e := range entries {
		stream := "-"
		if e.Stream != "" {
			stream = string(e.Stream)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.At.Local().Format("2006-01-02 15:04"), stream, e.Label)
	}
	_ = w.Flush()
	return nil
}

// AssignCommand assigns or reassigns editors on a stream.
func AssignCommand(app *App, args []string, reassign bool) error {
	name := "assign"
	if reassign {
		name = "reassign"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	streamFlag := fs.String("stream", "", "Stream: photo or video (required)")
	lead := fs.String("lead", "", "Lead editor UID (required)")
	assists := fs.String("assists", "", "Comma-separated assistant UIDs")
	draftDue := fs.String("draft-due", "", "Draft due date (required)")
	finalDue := fs.String("final-due", "", "Final due date (required)")
	note := fs.String("note", "", "Note for the editors")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	stream, err := parseStreamKind(*streamFlag)
	if err != nil {
		return err
	}
	draft, err := parseDate(*draftDue)
	if err != nil {
		return err
	}
	final, err := parseDate(*finalDue)
	if err != nil {
		return err
	}

	req := &api.AssignRequest{
		LeadUID:    *lead,
		DraftDueAt: draft,
		FinalDueAt: final,
		Note:       *note,
	}
	for _, uid := range strings.Split(*assists, ",") {
		if uid = strings.TrimSpace(uid); uid != "" {
			req.AssistUIDs = append(req.AssistUIDs, uid)
		}
	}

	ctx := context.Background()
	if reassign {
		err = app.Client.Reassign(ctx, eventID, stream, req)
	} else {
		err = app.Client.Assign(ctx, eventID, stream, req)
	}
	if err != nil {
		return err
	}

	verb := "assigned"
	if reassign {
		verb = "reassigned"
	}
	fmt.Printf("✓ Editors %s on %s/%s (lead: %s)\n", verb, eventID, stream, *lead)
	return nil
}

// SuggestCommand prints suggested assignees for a stream.
func SuggestCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	streamFlag := fs.String("stream", "", "Stream: photo or video (required)")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	stream, err := parseStreamKind(*streamFlag)
	if err != nil {
		return err
	}

	suggestions, err := app.Client.SuggestAssignees(context.Background(), eventID, stream)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		fmt.Println("No suggestions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "UID\tNAME\tSCORE\tREASON")
	_, _ = fmt.Fprintln(w, "---\t----\t-----\t------")
	for _, s := range suggestions {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", s.UID, orDash(s.DisplayName), s.Score, orDash(s.Reason))
	}
	_ = w.Flush()
	return nil
}

// StartCommand marks a stream in progress.
func StartCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	streamFlag := fs.String("stream", "", "Stream: photo or video (required)")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	stream, err := parseStreamKind(*streamFlag)
	if err != nil {
		return err
	}
	if err := app.Client.Start(context.Background(), eventID, stream); err != nil {
		return err
	}
	fmt.Printf("✓ Stream %s/%s started\n", eventID, stream)
	return nil
}

// SubmitCommand submits a draft. Deliverables are positional name=url
// pairs after the flags.
func SubmitCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	streamFlag := fs.String("stream", "", "Stream: photo or video (required)")
	note := fs.String("note", "", "What changed since the previous version")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	stream, err := parseStreamKind(*streamFlag)
	if err != nil {
		return err
	}

	deliverables := map[string]string{}
	for _, pair := range fs.Args() {
		name, url, ok := strings.Cut(pair, "=")
		if !ok || name == "" || url == "" {
			return fmt.Errorf("invalid deliverable %q (want name=url)", pair)
		}
		deliverables[name] = url
	}

	req := &api.SubmitRequest{Deliverables: deliverables, ChangeNote: *note}
	if err := app.Client.SubmitDraft(context.Background(), eventID, stream, req); err != nil {
		return err
	}
	fmt.Printf("✓ Draft submitted on %s/%s (%d deliverable(s))\n", eventID, stream, len(deliverables))
	return nil
}

// ReviewCommand approves a submission or requests changes. With
// --changes -, the change list is read from stdin, one change per line.
func ReviewCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("review", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	streamFlag := fs.String("stream", "", "Stream: photo or video (required)")
	approve := fs.Bool("approve", false, "Approve the final version")
	changes := fs.String("changes", "", "Requested changes, one per line (- to read stdin)")
	nextDue := fs.String("next-due", "", "New due date for the revision")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	stream, err := parseStreamKind(*streamFlag)
	if err != nil {
		return err
	}
	due, err := parseDate(*nextDue)
	if err != nil {
		return err
	}

	req := &api.ReviewRequest{NextDueAt: due}
	switch {
	case *approve && *changes != "":
		return fmt.Errorf("--approve and --changes are mutually exclusive")
	case *approve:
		req.Decision = api.DecisionApproveFinal
	case *changes != "":
		text := *changes
		if text == "-" {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read changes from stdin: %w", err)
			}
			text = string(raw)
		}
		req.Decision = api.DecisionRequestChanges
		req.ChangeList = api.ParseChangeList(text)
	default:
		return fmt.Errorf("one of --approve or --changes is required")
	}

	if err := app.Client.Review(context.Background(), eventID, stream, req); err != nil {
		return err
	}
	if *approve {
		fmt.Printf("✓ Final approved on %s/%s\n", eventID, stream)
	} else {
		fmt.Printf("✓ Changes requested on %s/%s (%d item(s))\n", eventID, stream, len(req.ChangeList))
	}
	return nil
}

// WaiveCommand closes a stream without deliverables.
func WaiveCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("waive", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	streamFlag := fs.String("stream", "", "Stream: photo or video (required)")
	reason := fs.String("reason", "", "Why the stream is waived")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	stream, err := parseStreamKind(*streamFlag)
	if err != nil {
		return err
	}
	if err := app.Client.Waive(context.Background(), eventID, stream, *reason); err != nil {
		return err
	}
	fmt.Printf("✓ Stream %s/%s waived\n", eventID, stream)
	return nil
}

// ExtendDueCommand pushes a stream's due dates out.
func ExtendDueCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("extend-due", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	streamFlag := fs.String("stream", "", "Stream: photo or video (required)")
	draftDue := fs.String("draft-due", "", "New draft due date")
	finalDue := fs.String("final-due", "", "New final due date")
	reason := fs.String("reason", "", "Why the dates moved")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	stream, err := parseStreamKind(*streamFlag)
	if err != nil {
		return err
	}
	draft, err := parseDate(*draftDue)
	if err != nil {
		return err
	}
	final, err := parseDate(*finalDue)
	if err != nil {
		return err
	}

	req := &api.ExtendDueRequest{DraftDueAt: draft, FinalDueAt: final, Reason: *reason}
	if err := app.Client.ExtendDue(context.Background(), eventID, stream, req); err != nil {
		return err
	}
	fmt.Printf("✓ Due dates extended on %s/%s\n", eventID, stream)
	return nil
}

// WatchCommand follows a stream's live channel and refreshes the
// overview whenever a new submission version lands.
func WatchCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	event := fs.String("event", "", "Event ID")
	streamFlag := fs.String("stream", "", "Stream: photo or video (required)")
	_ = fs.Parse(args)

	eventID, err := app.eventID(*event)
	if err != nil {
		return err
	}
	stream, err := parseStreamKind(*streamFlag)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	creds, err := app.Config.TokenSource(ctx)
	if err != nil {
		return err
	}

	cache := postprod.NewOverviewCache(func(ctx context.Context) (*models.PostProdJob, error) {
		return app.Client.Overview(ctx, eventID)
	})

	fmt.Printf("Watching %s/%s (Ctrl-C to stop)\n\n", eventID, stream)

	sub := live.Subscribe(ctx, live.Options{
		BaseURL: app.Config.LiveBase,
		OrgID:   app.Config.OrgID,
		EventID: eventID,
		Stream:  stream,
		Creds:   creds,
		OnSnapshot: func(snap models.StreamSnapshot) {
			if snap.LastAction != "" {
				fmt.Printf("  %s  state=%s v%d active=%d\n",
					snap.LastAction, snap.State, snap.Version, len(snap.ActiveUsers))
			}
		},
		OnVersion: func(version int) {
			fmt.Printf("New submission: v%d\n", version)
			job, err := cache.ForceRefresh(ctx)
			if err != nil {
				fmt.Printf("  overview refresh failed: %v\n", err)
				return
			}
			printOverview(os.Stdout, eventID, job)
		},
	})

	<-sub.Done()
	return nil
}
