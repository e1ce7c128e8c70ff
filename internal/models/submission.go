package models

import "time"

// SubmissionStatus is the lead follow-up lifecycle.
type SubmissionStatus string

const (
	SubmissionStatusNew         SubmissionStatus = "new"
	SubmissionStatusContacted   SubmissionStatus = "contacted"
	SubmissionStatusFollowingUp SubmissionStatus = "following-up"
	SubmissionStatusConverted   SubmissionStatus = "converted"
	SubmissionStatusDiscarded   SubmissionStatus = "discarded"
)

// ValidSubmissionStatus reports whether the value belongs to the fixed set.
func ValidSubmissionStatus(s string) bool {
	switch SubmissionStatus(s) {
	case SubmissionStatusNew, SubmissionStatusContacted, SubmissionStatusFollowingUp,
		SubmissionStatusConverted, SubmissionStatusDiscarded:
		return true
	default:
		return false
	}
}

// Submission is a captured lead from the public contact form or a property
// inquiry widget.
type Submission struct {
	ID         string           `db:"id" json:"id"`
	TenantID   string           `db:"tenant_id" json:"tenant_id"`
	PropertyID *string          `db:"property_id" json:"property_id,omitempty"`
	FirstName  string           `db:"first_name" json:"first_name"`
	LastName   string           `db:"last_name" json:"last_name"`
	Email      string           `db:"email" json:"email"`
	Phone      string           `db:"phone" json:"phone"`
	Message    string           `db:"message" json:"message"`
	Status     SubmissionStatus `db:"status" json:"status"`
	Notes      *string          `db:"notes" json:"notes,omitempty"`
	AgentID    *string          `db:"agent_id" json:"agent_id,omitempty"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updated_at"`
}

// SubmissionFilter narrows lead exports and listings.
type SubmissionFilter struct {
	Status *SubmissionStatus
	From   *time.Time
	To     *time.Time
}
