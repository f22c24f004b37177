package handlers_fiber

import (
	"time"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
)

// AssigneeDTO is the transport shape of an assignable user.
type AssigneeDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

// AssignmentDTO is the transport shape of a normalized assignment record.
// due_date stays an empty string when no due date is set.
type AssignmentDTO struct {
	ID                   string       `json:"id"`
	TransactionReference string       `json:"transaction_reference"`
	ClientID             int64        `json:"client_id"`
	ClientName           string       `json:"client_name"`
	Type                 string       `json:"type"`
	Status               string       `json:"status"`
	Priority             string       `json:"priority"`
	Assignee             *AssigneeDTO `json:"assigned_to"`
	AssignedDate         string       `json:"assigned_date,omitempty"`
	DueDate              string       `json:"due_date"`
	CreatedAt            string       `json:"created_at,omitempty"`
	UpdatedAt            string       `json:"updated_at,omitempty"`
	CompletedAt          string       `json:"completed_at,omitempty"`
	CommentsCount        int          `json:"comments_count"`
	AttachmentsCount     int          `json:"attachments_count"`
}

func toAssigneeDTO(u entities.AssignedUser) AssigneeDTO {
	return AssigneeDTO{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
	}
}

func toAssigneeDTOList(users []entities.AssignedUser) []AssigneeDTO {
	out := make([]AssigneeDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toAssigneeDTO(u))
	}
	return out
}

func toAssignmentDTO(rec entities.AssignmentRecord) AssignmentDTO {
	dto := AssignmentDTO{
		ID:                   rec.ID,
		TransactionReference: rec.TransactionReference,
		ClientID:             rec.ClientID,
		ClientName:           rec.ClientName,
		Type:                 rec.Type,
		Status:               string(rec.Status),
		Priority:             string(rec.Priority),
		AssignedDate:         formatTime(rec.AssignedDate),
		DueDate:              formatTime(rec.DueDate),
		CreatedAt:            formatTime(rec.CreatedAt),
		UpdatedAt:            formatTime(rec.UpdatedAt),
		CommentsCount:        rec.CommentsCount,
		AttachmentsCount:     rec.AttachmentsCount,
	}
	if rec.Assignee != nil {
		a := toAssigneeDTO(*rec.Assignee)
		dto.Assignee = &a
	}
	if rec.CompletedAt != nil {
		dto.CompletedAt = formatTime(*rec.CompletedAt)
	}
	return dto
}

func toAssignmentDTOList(records []entities.AssignmentRecord) []AssignmentDTO {
	out := make([]AssignmentDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, toAssignmentDTO(rec))
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
