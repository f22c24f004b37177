// Package store contains interfaces for the upstream transaction/user store.
package store

import (
	"context"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
)

// LifecycleInterface describes store client startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// DirectoryInterface exposes the user directory.
type DirectoryInterface interface {
	// ListEligibleAssignees requests users filtered server-side by role AND
	// is_active together. The two constraints must always travel in the same
	// request; filtering by activity alone silently widens the pool.
	ListEligibleAssignees(ctx context.Context) ([]entities.AssignedUser, error)
}

// TransactionInterface exposes assignment-mutating and listing operations.
type TransactionInterface interface {
	Reassign(ctx context.Context, cmd entities.ReassignCommand) error
	BulkReassign(ctx context.Context, action entities.BulkAction) (entities.BulkResult, error)
	ListAssignments(ctx context.Context, filter entities.AssignmentFilter, page, pageSize int) (entities.AssignmentPage, error)
}

// Store aggregates all upstream store interfaces.
type Store interface {
	LifecycleInterface
	DirectoryInterface
	TransactionInterface
}
