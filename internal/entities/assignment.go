// Package entities contains core business entities.
package entities

import "time"

// Status enumerates transaction lifecycle states as reported by the store.
// This core does not enforce a transition table; it accepts statuses as given.
type Status string

const (
	// StatusPending marks a transaction awaiting processing.
	StatusPending Status = "pending"
	// StatusInProgress marks a transaction being worked on.
	StatusInProgress Status = "in_progress"
	// StatusReview marks a transaction awaiting review.
	StatusReview Status = "review"
	// StatusCompleted marks a finished transaction.
	StatusCompleted Status = "completed"
	// StatusOnHold marks a paused transaction.
	StatusOnHold Status = "on_hold"
	// StatusCancelled marks an abandoned transaction.
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether the status ends the transaction's life for
// statistics purposes. Terminal records are excluded from overdue and
// due-today counts.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Priority enumerates transaction urgency levels.
type Priority string

const (
	// PriorityUrgent is the highest urgency.
	PriorityUrgent Priority = "urgent"
	// PriorityHigh is above-normal urgency.
	PriorityHigh Priority = "high"
	// PriorityMedium is normal urgency.
	PriorityMedium Priority = "medium"
	// PriorityLow is the lowest urgency.
	PriorityLow Priority = "low"
)

// Rank returns the ordinal position of the priority, highest first.
// Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// AssignmentRecord is the normalized shape of a transaction as seen by the
// assignment core. Records are snapshots owned by the upstream store; this
// core never mutates them locally.
type AssignmentRecord struct {
	ID                   string
	TransactionReference string
	ClientID             int64
	ClientName           string
	Type                 string
	Status               Status
	Priority             Priority
	Assignee             *AssignedUser
	AssignedDate         time.Time
	DueDate              time.Time // zero means no due date
	CreatedAt            time.Time
	UpdatedAt            time.Time
	CompletedAt          *time.Time
	CommentsCount        int
	AttachmentsCount     int
}

// Assigned reports whether the record currently has an assignee.
func (r AssignmentRecord) Assigned() bool {
	return r.Assignee != nil
}

// HasDueDate reports whether a due date is set. An absent due date must be an
// explicit skip in date arithmetic, never a comparison against a zero value.
func (r AssignmentRecord) HasDueDate() bool {
	return !r.DueDate.IsZero()
}

// AssignmentFilter narrows an assignment listing request.
type AssignmentFilter struct {
	Status     *Status
	Priority   *Priority
	AssigneeID *int64
	Search     string
}

// AssignmentPage is one page of normalized records plus paging info reported
// by the store.
type AssignmentPage struct {
	Records  []AssignmentRecord
	Total    int
	Page     int
	PageSize int
}
