// ABOUTME: Data-submission and receipt review CLI commands
// ABOUTME: Intake batches and expense receipts awaiting admin decision
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
)

// ListSubmissionsCommand lists uploaded intake batches.
func ListSubmissionsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-submissions", flag.ExitOnError)
	status := fs.String("status", "pending", "Filter by status (empty for all)")
	_ = fs.Parse(args)

	subs, err := app.Client.ListDataSubmissions(context.Background(), *status)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Println("No data submissions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "EVENT\tMEMBER\tFILES\tSTATUS\tSUBMITTED\tID")
	_, _ = fmt.Fprintln(w, "-----\t------\t-----\t------\t---------\t--")
	for _, s := range subs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			s.EventID, s.MemberUID, s.FileCount, s.Status,
			s.SubmittedAt.Local().Format("2006-01-02 15:04"), s.ID.String()[:8])
	}
	_ = w.Flush()
	return nil
}

// DecideSubmissionCommand approves or rejects an intake batch.
func DecideSubmissionCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("decide-submission", flag.ExitOnError)
	approve := fs.Bool("approve", false, "Approve the submission")
	reject := fs.Bool("reject", false, "Reject the submission")
	note := fs.String("note", "", "Note to the submitter")
	_ = fs.Parse(args)

	if *approve == *reject {
		return fmt.Errorf("exactly one of --approve or --reject is required")
	}
	if len(fs.Args()) < 1 {
		return fmt.Errorf("submission ID is required")
	}
	id, err := uuid.Parse(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("invalid submission ID: %w", err)
	}

	if err := app.Client.DecideDataSubmission(context.Background(), id, *approve, *note); err != nil {
		return err
	}
	if *approve {
		fmt.Printf("✓ Submission approved: %s\n", id)
	} else {
		fmt.Printf("✓ Submission rejected: %s\n", id)
	}
	return nil
}

// ListReceiptsCommand lists expense receipts awaiting verification.
func ListReceiptsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-receipts", flag.ExitOnError)
	status := fs.String("status", "pending", "Filter by status (empty for all)")
	_ = fs.Parse(args)

	receipts, err := app.Client.ListReceiptReviews(context.Background(), *status)
	if err != nil {
		return err
	}
	if len(receipts) == 0 {
		fmt.Println("No receipts")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "MEMBER\tAMOUNT\tPURPOSE\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "------\t------\t-------\t------\t--")
	for _, r := range receipts {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.MemberUID, fmtCents(r.AmountCents, r.Currency),
			orDash(r.Purpose), r.Status, r.ID.String()[:8])
	}
	_ = w.Flush()
	return nil
}

// VerifyReceiptCommand marks a receipt verified or disputed.
func VerifyReceiptCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("verify-receipt", flag.ExitOnError)
	dispute := fs.Bool("dispute", false, "Dispute instead of verifying")
	note := fs.String("note", "", "Note to the submitter")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("receipt ID is required")
	}
	id, err := uuid.Parse(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("invalid receipt ID: %w", err)
	}

	if err := app.Client.VerifyReceipt(context.Background(), id, !*dispute, *note); err != nil {
		return err
	}
	if *dispute {
		fmt.Printf("✓ Receipt disputed: %s\n", id)
	} else {
		fmt.Printf("✓ Receipt verified: %s\n", id)
	}
	return nil
}
