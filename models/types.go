// ABOUTME: Data models for studio console entities
// ABOUTME: Defines post-production, team, salary, and equipment record shapes
package models

import (
	"time"

	"github.com/google/uuid"
)

// StreamKind names one of the two parallel production pipelines per event.
type StreamKind string

const (
	StreamPhoto StreamKind = "photo"
	StreamVideo StreamKind = "video"
)

// EditorRole is an editor's role within a stream. LEAD may start work and
// submit; ASSIST is informational.
type EditorRole string

const (
	RoleLead   EditorRole = "LEAD"
	RoleAssist EditorRole = "ASSIST"
)

// Editor is one member assigned to a stream.
type Editor struct {
	UID         string     `json:"uid"`
	DisplayName string     `json:"display_name,omitempty"`
	Role        EditorRole `json:"role"`
}

// Risk is a backend-computed deadline warning surfaced verbatim.
type Risk struct {
	AtRisk bool   `json:"at_risk"`
	Reason string `json:"reason,omitempty"`
}

// StreamSummary is the read model of one stream within the overview.
// RawState keeps the backend's exact string for display; State is the
// parsed variant everything else switches on.
type StreamSummary struct {
	RawState         string            `json:"state"`
	State            StreamState       `json:"-"`
	Editors          []Editor          `json:"editors"`
	DraftDueAt       *time.Time        `json:"draft_due_at,omitempty"`
	FinalDueAt       *time.Time        `json:"final_due_at,omitempty"`
	Version          int               `json:"version"`
	Deliverables     map[string]string `json:"deliverables,omitempty"`
	LastSubmissionAt *time.Time        `json:"last_submission_at,omitempty"`
	Risk             *Risk             `json:"risk,omitempty"`
}

// Lead returns the stream's LEAD editor, if any.
func (s *StreamSummary) Lead() (Editor, bool) {
	for _, e := range s.Editors {
		if e.Role == RoleLead {
			return e, true
		}
	}
	return Editor{}, false
}

// IsLead reports whether uid is assigned as this stream's LEAD.
func (s *StreamSummary) IsLead(uid string) bool {
	for _, e := range s.Editors {
		if e.Role == RoleLead && e.UID == uid {
			return true
		}
	}
	return false
}

// HasSubmission reports whether the lead has submitted at least one
// manifest: any positive version, recorded deliverables, or a submission
// timestamp counts.
func (s *StreamSummary) HasSubmission() bool {
	return s.Version > 0 || len(s.Deliverables) > 0 || s.LastSubmissionAt != nil
}

// PostProdJob is the aggregated overview of one event's two streams plus
// its activity feed.
type PostProdJob struct {
	Photo    *StreamSummary `json:"photo,omitempty"`
	Video    *StreamSummary `json:"video,omitempty"`
	Activity []ActivityItem `json:"activity,omitempty"`
}

// Stream returns the summary for the named stream kind.
func (j *PostProdJob) Stream(kind StreamKind) *StreamSummary {
	switch kind {
	case StreamPhoto:
		return j.Photo
	case StreamVideo:
		return j.Video
	}
	return nil
}

// StreamSnapshot is one live-channel update for a single stream.
type StreamSnapshot struct {
	State       string   `json:"state"`
	Version     int      `json:"version"`
	ActiveUsers []string `json:"activeUsers"`
	LastAction  string   `json:"lastAction"`
}

// TeamMember is a roster record. Lifecycle is server-owned.
type TeamMember struct {
	UID       string     `json:"uid"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role"`
	Skills    []string   `json:"skills,omitempty"`
	JoinedAt  *time.Time `json:"joined_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Invite is a pending team invitation with a shareable link.
type Invite struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Link      string     `json:"link,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// LeaveRequest is a member's time-off request awaiting admin decision.
type LeaveRequest struct {
	ID        uuid.UUID `json:"id"`
	MemberUID string    `json:"member_uid"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SalaryRun is one pay-period run; RawStatus keeps the wire string.
type SalaryRun struct {
	ID         uuid.UUID    `json:"id"`
	Period     string       `json:"period"`
	RawStatus  string       `json:"status"`
	Status     SalaryStatus `json:"-"`
	TotalCents int64        `json:"total_cents"`
	Currency   string       `json:"currency"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Payslip is one member's slip within a salary run.
type Payslip struct {
	ID         uuid.UUID `json:"id"`
	RunID      uuid.UUID `json:"run_id"`
	MemberUID  string    `json:"member_uid"`
	GrossCents int64     `json:"gross_cents"`
	NetCents   int64     `json:"net_cents"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
}

// EquipmentItem is a piece of gear tracked by asset tag.
type EquipmentItem struct {
	AssetTag  string    `json:"asset_tag"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Status    string    `json:"status"`
	HeldBy    string    `json:"held_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Checkout is one checkout/check-in pairing for an equipment item.
type Checkout struct {
	ID         uuid.UUID  `json:"id"`
	AssetTag   string     `json:"asset_tag"`
	MemberUID  string     `json:"member_uid"`
	CheckedOut time.Time  `json:"checked_out"`
	CheckedIn  *time.Time `json:"checked_in,omitempty"`
	Condition  string     `json:"condition,omitempty"`
}

// DataSubmission is an uploaded intake batch awaiting review.
type DataSubmission struct {
	ID          uuid.UUID `json:"id"`
	EventID     string    `json:"event_id"`
	MemberUID   string    `json:"member_uid"`
	Description string    `json:"description,omitempty"`
	FileCount   int       `json:"file_count"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ReceiptReview is an expense receipt awaiting verification.
type ReceiptReview struct {
	ID          uuid.UUID `json:"id"`
	MemberUID   string    `json:"member_uid"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Purpose     string    `json:"purpose,omitempty"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Suggestion is an AI-suggested assignee for a stream.
type Suggestion struct {
	UID         string  `json:"uid"`
	DisplayName string  `json:"display_name,omitempty"`
	Score       float64 `json:"score"`
	Reason      string  `json:"reason,omitempty"`
}
