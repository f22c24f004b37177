package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
	"github.com/lodi2001/mdc-v2-sub001/internal/mapper"

	"github.com/google/uuid"
)

type reassignRequest struct {
	TransactionID string `json:"transaction_id"`
	AssignedTo    *int64 `json:"assigned_to"`
	Reason        string `json:"reason,omitempty"`
	CommandID     string `json:"command_id"`
}

type reassignResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type bulkReassignRequest struct {
	TransactionIDs []string `json:"transaction_ids"`
	AssignedTo     *int64   `json:"assigned_to"`
	Reason         string   `json:"reason,omitempty"`
	CommandID      string   `json:"command_id"`
}

type bulkReassignResponse struct {
	Success bool                `json:"success"`
	Updated int                 `json:"updated"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// asTransactionErr narrows the shared client's neutral not-found: on these
// endpoints a 404 can only mean a missing transaction.
func asTransactionErr(err error) error {
	if errors.Is(err, entities.ErrNotFound) {
		return fmt.Errorf("%w: %v", entities.ErrTransactionNotFound, err)
	}
	return err
}

type transactionsEnvelope struct {
	Results  []mapper.RawTransaction `json:"results"`
	Total    int                     `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Reassign issues a single reassignment command. A nil AssignedTo clears the
// assignee. The command id ties the audit trail upstream to this request.
func (c *Client) Reassign(ctx context.Context, cmd entities.ReassignCommand) error {
	body := reassignRequest{
		TransactionID: cmd.TransactionID,
		AssignedTo:    cmd.NewAssigneeID,
		Reason:        cmd.Reason,
		CommandID:     uuid.NewString(),
	}

	var resp reassignResponse
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/transactions/reassign", body, &resp); err != nil {
		err = asTransactionErr(err)
		c.log.Errorw("reassign failed", "error", err, "transaction_id", cmd.TransactionID, "command_id", body.CommandID)
		return err
	}
	if !resp.Success {
		if len(resp.Errors) > 0 {
			return &entities.ValidationError{Fields: resp.Errors}
		}
		return fmt.Errorf("reassign rejected: %s", resp.Message)
	}

	c.log.Infow("reassigned",
		"transaction_id", cmd.TransactionID,
		"assigned_to", cmd.NewAssigneeID,
		"command_id", body.CommandID,
	)
	return nil
}

// BulkReassign issues exactly one batch request for the whole id set. The
// store's updated count is returned as-is; no per-id retries happen here.
func (c *Client) BulkReassign(ctx context.Context, action entities.BulkAction) (entities.BulkResult, error) {
	body := bulkReassignRequest{
		TransactionIDs: action.TransactionIDs,
		AssignedTo:     action.NewAssigneeID,
		Reason:         action.Reason,
		CommandID:      uuid.NewString(),
	}

	var resp bulkReassignResponse
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/transactions/bulk-reassign", body, &resp); err != nil {
		err = asTransactionErr(err)
		c.log.Errorw("bulk reassign failed", "error", err, "requested", len(action.TransactionIDs), "command_id", body.CommandID)
		return entities.BulkResult{}, err
	}
	if !resp.Success {
		if len(resp.Errors) > 0 {
			return entities.BulkResult{}, &entities.ValidationError{Fields: resp.Errors}
		}
		return entities.BulkResult{}, fmt.Errorf("bulk reassign rejected: %s", resp.Message)
	}

	res := entities.BulkResult{
		Requested: len(action.TransactionIDs),
		Updated:   resp.Updated,
	}

	c.log.Infow("bulk reassigned",
		"requested", res.Requested,
		"updated", res.Updated,
		"assigned_to", action.NewAssigneeID,
		"command_id", body.CommandID,
	)
	return res, nil
}

// ListAssignments fetches one page of transaction records and normalizes them
// before they leave the store layer.
func (c *Client) ListAssignments(ctx context.Context, filter entities.AssignmentFilter, page, pageSize int) (entities.AssignmentPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}
	if filter.Priority != nil {
		q.Set("priority", string(*filter.Priority))
	}
	if filter.AssigneeID != nil {
		q.Set("assigned_to", strconv.FormatInt(*filter.AssigneeID, 10))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	var env transactionsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/transactions?"+q.Encode(), nil, &env); err != nil {
		return entities.AssignmentPage{}, asTransactionErr(err)
	}

	return entities.AssignmentPage{
		Records:  mapper.FromRawTransactionList(env.Results),
		Total:    env.Total,
		Page:     env.Page,
		PageSize: env.PageSize,
	}, nil
}
