// ABOUTME: Salary run CLI commands
// ABOUTME: Run lifecycle transitions and payslip listing
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
)

// ListSalaryRunsCommand lists salary runs.
func ListSalaryRunsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-runs", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status (DRAFT, PUBLISHED, PAID, CLOSED, VOID)")
	_ = fs.Parse(args)

	runs, err := app.Client.ListSalaryRuns(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PERIOD\tSTATUS\tTOTAL\tID")
	_, _ = fmt.Fprintln(w, "------\t------\t-----\t--")
	count := 0
	for _, r := range runs {
		if *status != "" && r.RawStatus != *status {
			continue
		}
		count++
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Period, r.RawStatus, fmtCents(r.TotalCents, r.Currency), r.ID.String()[:8])
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d run(s)\n", count)
	return nil
}

// ShowSalaryRunCommand prints one run and its payslips.
func ShowSalaryRunCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("show-run", flag.ExitOnError)
	_ = fs.Parse(args)

	id, err := runID(fs.Args())
	if err != nil {
		return err
	}

	ctx := context.Background()
	run, err := app.Client.GetSalaryRun(ctx, id)
	if err != nil {
		return err
	}
	slips, err := app.Client.ListPayslips(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s  period=%s  status=%s  total=%s\n\n",
		run.ID.String()[:8], run.Period, run.RawStatus, fmtCents(run.TotalCents, run.Currency))

	if len(slips) == 0 {
		fmt.Println("No payslips")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "MEMBER\tGROSS\tNET\tSTATUS")
	_, _ = fmt.Fprintln(w, "------\t-----\t---\t------")
	for _, s := range slips {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.MemberUID, fmtCents(s.GrossCents, s.Currency), fmtCents(s.NetCents, s.Currency), s.Status)
	}
	_ = w.Flush()
	return nil
}

// SalaryTransitionCommand moves a run through its lifecycle: publish,
// mark-paid, close, or void.
func SalaryTransitionCommand(app *App, verb string, args []string) error {
	fs := flag.NewFlagSet(verb, flag.ExitOnError)
	_ = fs.Parse(args)

	id, err := runID(fs.Args())
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch verb {
	case "publish":
		err = app.Client.PublishSalaryRun(ctx, id)
	case "mark-paid":
		err = app.Client.MarkSalaryRunPaid(ctx, id)
	case "close":
		err = app.Client.CloseSalaryRun(ctx, id)
	case "void":
		err = app.Client.VoidSalaryRun(ctx, id)
	default:
		return fmt.Errorf("unknown transition %q", verb)
	}
	if err != nil {
		return err
	}
	fmt.Printf("✓ Run %s: %s\n", id.String()[:8], verb)
	return nil
}

func runID(args []string) (uuid.UUID, error) {
	if len(args) < 1 {
		return uuid.Nil, fmt.Errorf("run ID is required")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid run ID: %w", err)
	}
	return id, nil
}
