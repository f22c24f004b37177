package mapper

import (
	"testing"
	"time"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestFromRawTransaction_Normalizes(t *testing.T) {
	raw := RawTransaction{
		ID:                   "tx-1",
		TransactionReference: "TRX-2025-0001",
		ClientID:             12,
		ClientName:           "Acme Ltd",
		Type:                 "registration",
		Status:               " In_Progress ",
		Priority:             "URGENT",
		AssignedTo: &RawUser{
			ID:       7,
			Username: "editor1",
			Role:     "Editor",
			IsActive: true,
		},
		DueDate:          "2025-06-20",
		CreatedAt:        "2025-06-01T09:00:00Z",
		UpdatedAt:        "2025-06-10T17:30:00.123Z",
		CompletedAt:      "",
		CommentsCount:    3,
		AttachmentsCount: 1,
	}

	rec := FromRawTransaction(raw)
	require.Equal(t, "tx-1", rec.ID)
	require.Equal(t, entities.StatusInProgress, rec.Status)
	require.Equal(t, entities.PriorityUrgent, rec.Priority)
	require.NotNil(t, rec.Assignee)
	require.Equal(t, entities.RoleEditor, rec.Assignee.Role)
	require.True(t, rec.HasDueDate())
	require.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), rec.DueDate)
	require.False(t, rec.CreatedAt.IsZero())
	require.False(t, rec.UpdatedAt.IsZero())
	require.Nil(t, rec.CompletedAt)
}

func TestFromRawTransaction_EmptyDueDateMeansNone(t *testing.T) {
	rec := FromRawTransaction(RawTransaction{ID: "tx-1", DueDate: ""})
	require.False(t, rec.HasDueDate())
	require.True(t, rec.DueDate.IsZero())
}

func TestFromRawTransaction_DropsClientAssignee(t *testing.T) {
	rec := FromRawTransaction(RawTransaction{
		ID: "tx-1",
		AssignedTo: &RawUser{
			ID:       42,
			Username: "client-user",
			Role:     "client",
			IsActive: true,
		},
	})
	require.Nil(t, rec.Assignee)
	require.False(t, rec.Assigned())
}

func TestFromRawTransaction_KeepsInactiveEditorAssignee(t *testing.T) {
	// An assignee who went inactive still holds the record; only the role
	// constraint drops the reference.
	rec := FromRawTransaction(RawTransaction{
		ID: "tx-1",
		AssignedTo: &RawUser{
			ID:       7,
			Role:     "editor",
			IsActive: false,
		},
	})
	require.NotNil(t, rec.Assignee)
	require.False(t, rec.Assignee.IsActive)
}

func TestFromRawTransaction_ClampsNegativeCounts(t *testing.T) {
	rec := FromRawTransaction(RawTransaction{
		ID:               "tx-1",
		CommentsCount:    -4,
		AttachmentsCount: -1,
	})
	require.Zero(t, rec.CommentsCount)
	require.Zero(t, rec.AttachmentsCount)
}

func TestFromRawTransaction_UnparseableTimestampsStayZero(t *testing.T) {
	rec := FromRawTransaction(RawTransaction{
		ID:        "tx-1",
		DueDate:   "next tuesday",
		CreatedAt: "20/06/2025",
	})
	require.True(t, rec.DueDate.IsZero())
	require.True(t, rec.CreatedAt.IsZero())
}

func TestFromRawTransaction_CompletedAt(t *testing.T) {
	rec := FromRawTransaction(RawTransaction{
		ID:          "tx-1",
		Status:      "completed",
		CompletedAt: "2025-06-12T08:00:00Z",
	})
	require.NotNil(t, rec.CompletedAt)
	require.Equal(t, 2025, rec.CompletedAt.Year())
}

func TestFromRawUser_NormalizesRole(t *testing.T) {
	u := FromRawUser(RawUser{ID: 1, Role: " Admin ", IsActive: true})
	require.Equal(t, entities.RoleAdmin, u.Role)
	require.True(t, u.EligibleAssignee())
}

func TestFromRawTransactionList_PreservesOrder(t *testing.T) {
	recs := FromRawTransactionList([]RawTransaction{{ID: "a"}, {ID: "b"}})
	require.Len(t, recs, 2)
	require.Equal(t, "a", recs[0].ID)
	require.Equal(t, "b", recs[1].ID)
}
