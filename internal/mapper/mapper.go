// Package mapper normalizes raw transaction store records into domain models.
package mapper

import (
	"strings"
	"time"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
)

// RawUser is the wire shape of a user as returned by the store.
type RawUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

// RawTransaction is the wire shape of a transaction record as returned by the
// store. Timestamps are ISO-8601 strings; due_date may be empty, meaning no
// due date.
type RawTransaction struct {
	ID                   string   `json:"id"`
	TransactionReference string   `json:"transaction_reference"`
	ClientID             int64    `json:"client_id"`
	ClientName           string   `json:"client_name"`
	Type                 string   `json:"type"`
	Status               string   `json:"status"`
	Priority             string   `json:"priority"`
	AssignedTo           *RawUser `json:"assigned_to"`
	AssignedDate         string   `json:"assigned_date"`
	DueDate              string   `json:"due_date"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
	CompletedAt          string   `json:"completed_at"`
	CommentsCount        int      `json:"comments_count"`
	AttachmentsCount     int      `json:"attachments_count"`
}

// FromRawUser maps a wire user to the domain model.
func FromRawUser(src RawUser) entities.AssignedUser {
	return entities.AssignedUser{
		ID:        src.ID,
		Username:  src.Username,
		FirstName: src.FirstName,
		LastName:  src.LastName,
		Email:     src.Email,
		Role:      entities.Role(strings.ToLower(strings.TrimSpace(src.Role))),
		IsActive:  src.IsActive,
	}
}

// FromRawUserList maps a slice of wire users to domain models.
func FromRawUserList(src []RawUser) []entities.AssignedUser {
	users := make([]entities.AssignedUser, 0, len(src))
	for _, u := range src {
		users = append(users, FromRawUser(u))
	}
	return users
}

// FromRawTransaction normalizes a wire record into an AssignmentRecord.
// An empty due_date stays a zero time so date arithmetic skips it explicitly.
// An assignee whose role is not admin or editor violates the assignment
// invariant and is dropped, leaving the record unassigned.
func FromRawTransaction(src RawTransaction) entities.AssignmentRecord {
	rec := entities.AssignmentRecord{
		ID:                   src.ID,
		TransactionReference: src.TransactionReference,
		ClientID:             src.ClientID,
		ClientName:           src.ClientName,
		Type:                 src.Type,
		Status:               entities.Status(strings.ToLower(strings.TrimSpace(src.Status))),
		Priority:             entities.Priority(strings.ToLower(strings.TrimSpace(src.Priority))),
		AssignedDate:         parseTime(src.AssignedDate),
		DueDate:              parseTime(src.DueDate),
		CreatedAt:            parseTime(src.CreatedAt),
		UpdatedAt:            parseTime(src.UpdatedAt),
		CommentsCount:        clampCount(src.CommentsCount),
		AttachmentsCount:     clampCount(src.AttachmentsCount),
	}

	if src.AssignedTo != nil {
		u := FromRawUser(*src.AssignedTo)
		if u.AssignableRole() {
			rec.Assignee = &u
		}
	}

	if t := parseTime(src.CompletedAt); !t.IsZero() {
		rec.CompletedAt = &t
	}

	return rec
}

// FromRawTransactionList normalizes a slice of wire records.
func FromRawTransactionList(src []RawTransaction) []entities.AssignmentRecord {
	records := make([]entities.AssignmentRecord, 0, len(src))
	for _, raw := range src {
		records = append(records, FromRawTransaction(raw))
	}
	return records
}

// parseTime accepts RFC3339 with or without fractional seconds, plus bare
// dates. Empty or unparseable input yields a zero time.
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
