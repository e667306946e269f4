// ABOUTME: Equipment checkout and check-in CLI commands
// ABOUTME: Check-ins fall back to the local queue when the backend is down
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/studiokit/studioctl/api"
	"github.com/studiokit/studioctl/db"
	"github.com/studiokit/studioctl/scan"
)

// ListEquipmentCommand prints the gear inventory.
func ListEquipmentCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-equipment", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status")
	_ = fs.Parse(args)

	items, err := app.Client.ListEquipment(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TAG\tNAME\tCATEGORY\tSTATUS\tHELD BY")
	_, _ = fmt.Fprintln(w, "---\t----\t--------\t------\t-------")
	count := 0
	for _, item := range items {
		if *status != "" && item.Status != *status {
			continue
		}
		count++
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			item.AssetTag, item.Name, orDash(item.Category), item.Status, orDash(item.HeldBy))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d item(s)\n", count)
	return nil
}

// CheckoutCommand records a checkout of one item to a member.
func CheckoutCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	tag := fs.String("tag", "", "Asset tag (required)")
	member := fs.String("member", "", "Member UID (required)")
	_ = fs.Parse(args)

	if err := app.Client.CheckoutEquipment(context.Background(), *tag, *member); err != nil {
		return err
	}
	fmt.Printf("✓ Checked out %s to %s\n", *tag, *member)
	return nil
}

// CheckinCommand records one return. If the backend is unreachable the
// scan lands in the local queue for a later flush.
func CheckinCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("checkin", flag.ExitOnError)
	tag := fs.String("tag", "", "Asset tag (required)")
	member := fs.String("member", "", "Member UID returning the item")
	condition := fs.String("condition", "", "Condition note")
	queueOnly := fs.Bool("queue", false, "Queue locally without trying the backend")
	_ = fs.Parse(args)

	if *tag == "" {
		return fmt.Errorf("--tag is required")
	}

	rec := api.CheckinRecord{
		AssetTag:  *tag,
		MemberUID: *member,
		Condition: *condition,
		ScannedAt: time.Now().UTC(),
	}

	if !*queueOnly {
		err := app.Client.CheckinEquipment(context.Background(), rec)
		if err == nil {
			fmt.Printf("✓ Checked in %s\n", *tag)
			return nil
		}
		// A backend rejection is definitive; only transport failures
		// fall back to the queue.
		var fieldErr *api.FieldError
		var apiErr *api.Error
		if errors.As(err, &fieldErr) || errors.As(err, &apiErr) {
			return err
		}
		fmt.Printf("Backend unreachable (%v), queueing locally\n", err)
	}

	queued := &db.QueuedCheckin{
		AssetTag:  rec.AssetTag,
		MemberUID: rec.MemberUID,
		Condition: rec.Condition,
		ScannedAt: rec.ScannedAt,
	}
	if err := db.EnqueueCheckin(app.DB, queued); err != nil {
		return err
	}
	fmt.Printf("✓ Queued check-in %s (ID: %s), run 'studioctl equipment flush' when online\n", *tag, queued.ID[:8])
	return nil
}

// ScanCommand reads scanner-wedge payloads from stdin and queues a
// check-in per readable tag.
func ScanCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	member := fs.String("member", "", "Member UID returning the items")
	_ = fs.Parse(args)

	fmt.Println("Scanning (one tag per line, Ctrl-D to finish)")

	queued := 0
	err := scan.ReadAll(os.Stdin, func(r scan.Result) {
		if r.Err != nil {
			fmt.Printf("  ✗ unreadable: %q\n", r.Raw)
			return
		}
		c := &db.QueuedCheckin{
			AssetTag:  r.Tag.AssetTag,
			MemberUID: *member,
		}
		if err := db.EnqueueCheckin(app.DB, c); err != nil {
			fmt.Printf("  ✗ %s: %v\n", r.Tag.AssetTag, err)
			return
		}
		queued++
		name := r.Tag.Name
		if name == "" {
			name = r.Tag.AssetTag
		}
		fmt.Printf("  ✓ %s\n", name)
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nQueued %d check-in(s)\n", queued)
	return nil
}

// QueueCommand lists pending check-ins and the last flush outcome.
func QueueCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("queue", flag.ExitOnError)
	_ = fs.Parse(args)

	pending, err := db.PendingCheckins(app.DB)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		fmt.Println("Queue is empty")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "TAG\tMEMBER\tSCANNED\tSTATUS\tERROR")
		_, _ = fmt.Fprintln(w, "---\t------\t-------\t------\t-----")
		for _, c := range pending {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				c.AssetTag, orDash(c.MemberUID),
				c.ScannedAt.Local().Format("2006-01-02 15:04"),
				c.Status, orDash(c.Error))
		}
		_ = w.Flush()
		fmt.Printf("\nPending: %d\n", len(pending))
	}

	state, err := db.GetFlushState(app.DB, "checkins")
	if err != nil {
		return err
	}
	if state != nil && state.LastFlushAt != nil {
		fmt.Printf("Last flush: %s (%s)\n", fmtTime(state.LastFlushAt), state.Status)
	}
	return nil
}

// FlushCommand delivers the queued check-ins in one batch. Records the
// backend rejects stay in the queue marked failed.
func FlushCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("flush", flag.ExitOnError)
	prune := fs.Duration("prune-after", 30*24*time.Hour, "Delete flushed entries older than this")
	_ = fs.Parse(args)

	pending, err := db.PendingCheckins(app.DB)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("Nothing to flush")
		return nil
	}

	records := make([]api.CheckinRecord, len(pending))
	for i, c := range pending {
		records[i] = api.CheckinRecord{
			AssetTag:  c.AssetTag,
			MemberUID: c.MemberUID,
			Condition: c.Condition,
			ScannedAt: c.ScannedAt,
		}
	}

	result, err := app.Client.CheckinBatch(context.Background(), records)
	if err != nil {
		_ = db.UpdateFlushState(app.DB, "checkins", "failed", err.Error())
		return fmt.Errorf("flush failed, queue kept: %w", err)
	}

	rejected := map[string]string{}
	for _, e := range result.Errors {
		rejected[e.AssetTag] = e.Detail
	}

	flushed := 0
	for _, c := range pending {
		if detail, bad := rejected[c.AssetTag]; bad {
			if err := db.MarkCheckinFailed(app.DB, c.ID, detail); err != nil {
				return err
			}
			fmt.Printf("  ✗ %s: %s\n", c.AssetTag, detail)
			continue
		}
		if err := db.MarkCheckinFlushed(app.DB, c.ID); err != nil {
			return err
		}
		flushed++
	}

	status := "ok"
	if len(rejected) > 0 {
		status = "partial"
	}
	if err := db.UpdateFlushState(app.DB, "checkins", status, ""); err != nil {
		return err
	}

	if pruned, err := db.PruneFlushedCheckins(app.DB, time.Now().Add(-*prune)); err == nil && pruned > 0 {
		fmt.Printf("Pruned %d old flushed entr(ies)\n", pruned)
	}

	fmt.Printf("✓ Flushed %d check-in(s), %d rejected\n", flushed, len(rejected))
	return nil
}
