// Package domain contains application usecases orchestrating reassignment.
package domain

import (
	"context"
	"fmt"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
)

// Reassign changes or clears a transaction's assignee with a single store
// call. A nil newAssigneeID unassigns. The store's validation rejection, if
// any, propagates verbatim; there is no local retry.
func (u *Usecase) Reassign(ctx context.Context, transactionID string, newAssigneeID *int64, reason string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if transactionID == "" {
		return fmt.Errorf("%w: transaction_id is required", entities.ErrInvalidArgument)
	}

	return u.store.Reassign(ctx, entities.ReassignCommand{
		TransactionID: transactionID,
		NewAssigneeID: newAssigneeID,
		Reason:        reason,
	})
}

// BulkReassign applies one reassignment to a set of transactions as a single
// batch request. Ids are deduplicated preserving first occurrence; an empty
// set after dedup is invalid. The store's updated count returns as-is, so a
// partial batch is visible to the caller as updated < requested.
func (u *Usecase) BulkReassign(ctx context.Context, transactionIDs []string, newAssigneeID *int64, reason string) (entities.BulkResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ids := dedupeIDs(transactionIDs)
	if len(ids) == 0 {
		return entities.BulkResult{}, fmt.Errorf("%w: transaction_ids are required", entities.ErrInvalidArgument)
	}

	return u.store.BulkReassign(ctx, entities.BulkAction{
		TransactionIDs: ids,
		NewAssigneeID:  newAssigneeID,
		Reason:         reason,
	})
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
