package usecase

import (
	"context"
	"time"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
)

// AssigneeUsecaseInterface abstracts eligible-assignee resolution.
type AssigneeUsecaseInterface interface {
	// GetAvailableAssignees soft-fails: on store failure it returns an empty
	// list. Callers must treat an empty list as "eligibility unknown" and
	// disable reassignment, never as permission to pick anyone.
	GetAvailableAssignees(ctx context.Context) []entities.AssignedUser
	// EligibleAssignees is the strict variant: store failures propagate.
	// Reporting reads use it so a degraded pool is never mistaken for an
	// empty one.
	EligibleAssignees(ctx context.Context) ([]entities.AssignedUser, error)
}

// ReassignmentUsecaseInterface abstracts single and bulk reassignment.
type ReassignmentUsecaseInterface interface {
	Reassign(ctx context.Context, transactionID string, newAssigneeID *int64, reason string) error
	BulkReassign(ctx context.Context, transactionIDs []string, newAssigneeID *int64, reason string) (entities.BulkResult, error)
}

// AssignmentQueryUsecaseInterface abstracts snapshot reads of assignment records.
type AssignmentQueryUsecaseInterface interface {
	ListAssignments(ctx context.Context, filter entities.AssignmentFilter, page, pageSize int) (entities.AssignmentPage, error)
	SnapshotAssignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.AssignmentRecord, error)
}

// StatsUsecaseInterface abstracts derived-statistics computation. Both
// operations are pure functions over already-materialized snapshots and
// perform no I/O.
type StatsUsecaseInterface interface {
	ComputeStats(records []entities.AssignmentRecord, asOf time.Time) entities.AssignmentStats
	ComputeDistribution(records []entities.AssignmentRecord, assignees []entities.AssignedUser, asOf time.Time) []entities.WorkloadDistribution
}
