// ABOUTME: Team roster, invite, and leave-request CLI commands
// ABOUTME: Roster lifecycle stays server-owned; these are thin views
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/studiokit/studioctl/models"
)

// ListTeamCommand prints the roster.
func ListTeamCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-team", flag.ExitOnError)
	role := fs.String("role", "", "Filter by role")
	_ = fs.Parse(args)

	members, err := app.Client.ListTeam(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "UID\tNAME\tROLE\tEMAIL\tSKILLS")
	_, _ = fmt.Fprintln(w, "---\t----\t----\t-----\t------")

	count := 0
	for _, m := range members {
		if *role != "" && m.Role != *role {
			continue
		}
		count++
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.UID, m.Name, m.Role, orDash(m.Email), orDash(strings.Join(m.Skills, ", ")))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d member(s)\n", count)
	return nil
}

// AddMemberCommand adds a roster record directly.
func AddMemberCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add-member", flag.ExitOnError)
	name := fs.String("name", "", "Member name (required)")
	role := fs.String("role", "", "Role (required)")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	skills := fs.String("skills", "", "Comma-separated skills")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if *role == "" {
		return fmt.Errorf("--role is required")
	}

	member := &models.TeamMember{
		Name:  *name,
		Role:  *role,
		Email: *email,
		Phone: *phone,
	}
	for _, s := range strings.Split(*skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			member.Skills = append(member.Skills, s)
		}
	}

	created, err := app.Client.AddTeamMember(context.Background(), member)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Member added: %s (UID: %s)\n", created.Name, created.UID)
	return nil
}

// UpdateMemberCommand updates a roster record in place. Flags must come
// before the member UID.
func UpdateMemberCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("update-member", flag.ExitOnError)
	name := fs.String("name", "", "Member name")
	role := fs.String("role", "", "Role")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	skills := fs.String("skills", "", "Comma-separated skills (replaces the set)")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("member UID is required")
	}
	uid := fs.Args()[0]

	ctx := context.Background()
	members, err := app.Client.ListTeam(ctx)
	if err != nil {
		return err
	}
	var existing *models.TeamMember
	for i := range members {
		if members[i].UID == uid {
			existing = &members[i]
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("member not found: %s", uid)
	}

	if *name != "" {
		existing.Name = *name
	}
	if *role != "" {
		existing.Role = *role
	}
	if *email != "" {
		existing.Email = *email
	}
	if *phone != "" {
		existing.Phone = *phone
	}
	if *skills != "" {
		existing.Skills = nil
		for _, s := range strings.Split(*skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				existing.Skills = append(existing.Skills, s)
			}
		}
	}

	if err := app.Client.UpdateTeamMember(ctx, existing); err != nil {
		return err
	}
	fmt.Printf("✓ Member updated: %s (UID: %s)\n", existing.Name, uid)
	return nil
}

// RemoveMemberCommand removes a roster record.
func RemoveMemberCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("remove-member", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("member UID is required")
	}
	uid := fs.Args()[0]

	if err := app.Client.RemoveTeamMember(context.Background(), uid); err != nil {
		return err
	}
	fmt.Printf("✓ Member removed: %s\n", uid)
	return nil
}

// InviteCommand creates an invite and prints the shareable link.
func InviteCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("invite", flag.ExitOnError)
	email := fs.String("email", "", "Invitee email (required)")
	role := fs.String("role", "", "Role the invitee joins as (required)")
	_ = fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	if *role == "" {
		return fmt.Errorf("--role is required")
	}

	invite, err := app.Client.CreateInvite(context.Background(), *email, *role)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Invite created for %s (%s)\n", invite.Email, invite.Role)
	if invite.Link != "" {
		fmt.Printf("  Link: %s\n", invite.Link)
	}
	if invite.ExpiresAt != nil {
		fmt.Printf("  Expires: %s\n", fmtTime(invite.ExpiresAt))
	}
	return nil
}

// ListInvitesCommand lists pending invites.
func ListInvitesCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-invites", flag.ExitOnError)
	_ = fs.Parse(args)

	invites, err := app.Client.ListInvites(context.Background())
	if err != nil {
		return err
	}
	if len(invites) == 0 {
		fmt.Println("No pending invites")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "EMAIL\tROLE\tEXPIRES\tID")
	_, _ = fmt.Fprintln(w, "-----\t----\t-------\t--")
	for _, inv := range invites {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			inv.Email, inv.Role, fmtTime(inv.ExpiresAt), inv.ID.String()[:8])
	}
	_ = w.Flush()
	return nil
}

// RevokeInviteCommand revokes a pending invite.
func RevokeInviteCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("revoke-invite", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("invite ID is required")
	}
	id, err := uuid.Parse(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("invalid invite ID: %w", err)
	}

	if err := app.Client.RevokeInvite(context.Background(), id); err != nil {
		return err
	}
	fmt.Printf("✓ Invite revoked: %s\n", id)
	return nil
}

// ListLeaveCommand lists leave requests.
func ListLeaveCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-leave", flag.ExitOnError)
	status := fs.String("status", "pending", "Filter by status (empty for all)")
	_ = fs.Parse(args)

	requests, err := app.Client.ListLeaveRequests(context.Background(), *status)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		fmt.Println("No leave requests")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "MEMBER\tFROM\tTO\tSTATUS\tREASON\tID")
	_, _ = fmt.Fprintln(w, "------\t----\t--\t------\t------\t--")
	for _, r := range requests {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.MemberUID,
			r.From.Local().Format("2006-01-02"),
			r.To.Local().Format("2006-01-02"),
			r.Status, orDash(r.Reason), r.ID.String()[:8])
	}
	_ = w.Flush()
	return nil
}

// DecideLeaveCommand approves or rejects a leave request.
func DecideLeaveCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("decide-leave", flag.ExitOnError)
	approve := fs.Bool("approve", false, "Approve the request")
	reject := fs.Bool("reject", false, "Reject the request")
	note := fs.String("note", "", "Note to the requester")
	_ = fs.Parse(args)

	if *approve == *reject {
		return fmt.Errorf("exactly one of --approve or --reject is required")
	}
	if len(fs.Args()) < 1 {
		return fmt.Errorf("leave request ID is required")
	}
	id, err := uuid.Parse(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("invalid leave request ID: %w", err)
	}

	if err := app.Client.DecideLeave(context.Background(), id, *approve, *note); err != nil {
		return err
	}
	if *approve {
		fmt.Printf("✓ Leave approved: %s\n", id)
	} else {
		fmt.Printf("✓ Leave rejected: %s\n", id)
	}
	return nil
}
