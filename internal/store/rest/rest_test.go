package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lodi2001/mdc-v2-sub001/config"
	"github.com/lodi2001/mdc-v2-sub001/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Store: config.StoreConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 2 * time.Second,
		HealthTimeout:  time.Second,
		PageSize:       100,
	}}
	return New(context.Background(), zap.NewNop().Sugar(), cfg)
}

func TestOnStart_HealthCheck(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	require.NoError(t, c.OnStart(context.Background()))
	require.NoError(t, c.OnStop(context.Background()))
}

func TestOnStart_HealthCheckFails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	require.Error(t, c.OnStart(context.Background()))
}

func TestListEligibleAssignees_SendsBothConstraints(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/eligible-assignees", r.URL.Path)
		q := r.URL.Query()
		require.ElementsMatch(t, []string{"admin", "editor"}, q["role"])
		require.Equal(t, "true", q.Get("is_active"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{
				{"id": 1, "username": "admin1", "role": "admin", "is_active": true},
				{"id": 2, "username": "editor1", "role": "editor", "is_active": true},
			},
		})
	}))

	users, err := c.ListEligibleAssignees(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, entities.RoleAdmin, users[0].Role)
	require.True(t, users[1].EligibleAssignee())
}

func TestReassign_PostsCommand(t *testing.T) {
	var got reassignRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transactions/reassign", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	assignee := int64(7)
	err := c.Reassign(context.Background(), entities.ReassignCommand{
		TransactionID: "tx-1",
		NewAssigneeID: &assignee,
		Reason:        "handover",
	})
	require.NoError(t, err)
	require.Equal(t, "tx-1", got.TransactionID)
	require.NotNil(t, got.AssignedTo)
	require.Equal(t, int64(7), *got.AssignedTo)
	require.NotEmpty(t, got.CommandID)
}

func TestReassign_UnassignSendsNull(t *testing.T) {
	var raw map[string]json.RawMessage
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	require.NoError(t, c.Reassign(context.Background(), entities.ReassignCommand{TransactionID: "tx-1"}))
	require.Equal(t, "null", string(raw["assigned_to"]))
}

func TestReassign_ValidationRejectionVerbatim(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"errors": map[string][]string{
				"assigned_to": {"only admin or editor users can be assigned"},
			},
		})
	}))

	clientID := int64(42)
	err := c.Reassign(context.Background(), entities.ReassignCommand{
		TransactionID: "tx-5",
		NewAssigneeID: &clientID,
	})

	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, []string{"only admin or editor users can be assigned"}, vErr.Field("assigned_to"))
}

func TestReassign_RejectionInSuccessEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"errors":  map[string][]string{"assigned_to": {"user does not exist"}},
		})
	}))

	err := c.Reassign(context.Background(), entities.ReassignCommand{TransactionID: "tx-1"})

	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestReassign_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "no such transaction"})
	}))

	err := c.Reassign(context.Background(), entities.ReassignCommand{TransactionID: "missing"})
	require.ErrorIs(t, err, entities.ErrTransactionNotFound)
}

func TestReassign_ServerErrorIsRetryable(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := c.Reassign(context.Background(), entities.ReassignCommand{TransactionID: "tx-1"})
	require.ErrorIs(t, err, entities.ErrStoreUnavailable)
}

func TestReassign_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	cfg := &config.Config{Store: config.StoreConfig{
		BaseURL:        srv.URL,
		RequestTimeout: time.Second,
		HealthTimeout:  time.Second,
		PageSize:       100,
	}}
	c := New(context.Background(), zap.NewNop().Sugar(), cfg)
	srv.Close()

	err := c.Reassign(context.Background(), entities.ReassignCommand{TransactionID: "tx-1"})
	require.ErrorIs(t, err, entities.ErrStoreUnavailable)
}

func TestBulkReassign_OneBatchCall(t *testing.T) {
	calls := 0
	var got bulkReassignRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "/transactions/bulk-reassign", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "updated": 3})
	}))

	res, err := c.BulkReassign(context.Background(), entities.BulkAction{
		TransactionIDs: []string{"1", "2", "3"},
		Reason:         "cleanup",
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, 3, res.Requested)
	require.Equal(t, 3, res.Updated)
	require.Equal(t, "null", mustJSON(t, got.AssignedTo))
	require.NotEmpty(t, got.CommandID)
}

func TestBulkReassign_PartialCountAsIs(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "updated": 2})
	}))

	res, err := c.BulkReassign(context.Background(), entities.BulkAction{
		TransactionIDs: []string{"1", "2", "3"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, res.Requested)
	require.Equal(t, 2, res.Updated)
}

func TestBulkReassign_RejectionInSuccessEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"updated": 0,
			"errors": map[string][]string{
				"assigned_to": {"only admin or editor users can be assigned"},
			},
		})
	}))

	clientID := int64(42)
	_, err := c.BulkReassign(context.Background(), entities.BulkAction{
		TransactionIDs: []string{"1", "2"},
		NewAssigneeID:  &clientID,
	})

	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, []string{"only admin or editor users can be assigned"}, vErr.Field("assigned_to"))
}

func TestBulkReassign_RejectionWithoutFieldErrors(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"updated": 0,
			"message": "batch rejected",
		})
	}))

	_, err := c.BulkReassign(context.Background(), entities.BulkAction{
		TransactionIDs: []string{"1"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "batch rejected")
}

func TestListEligibleAssignees_NotFoundStaysNeutral(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.ListEligibleAssignees(context.Background())
	require.ErrorIs(t, err, entities.ErrNotFound)
	require.NotErrorIs(t, err, entities.ErrTransactionNotFound)
}

func TestListAssignments_NormalizesRecords(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transactions", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "50", q.Get("page_size"))
		require.Equal(t, "pending", q.Get("status"))
		require.Equal(t, "9", q.Get("assigned_to"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"id":       "tx-1",
					"status":   "pending",
					"priority": "high",
					"due_date": "",
					"assigned_to": map[string]any{
						"id": 9, "username": "editor1", "role": "editor", "is_active": true,
					},
				},
			},
			"total":     120,
			"page":      2,
			"page_size": 50,
		})
	}))

	status := entities.StatusPending
	assignee := int64(9)
	page, err := c.ListAssignments(context.Background(), entities.AssignmentFilter{
		Status:     &status,
		AssigneeID: &assignee,
	}, 2, 50)
	require.NoError(t, err)
	require.Equal(t, 120, page.Total)
	require.Len(t, page.Records, 1)
	require.False(t, page.Records[0].HasDueDate())
	require.NotNil(t, page.Records[0].Assignee)
	require.Equal(t, int64(9), page.Records[0].Assignee.ID)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	buf, err := json.Marshal(v)
	require.NoError(t, err)
	return string(buf)
}
