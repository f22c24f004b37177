package domain

import (
	"context"
	"fmt"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
)

// ListAssignments returns one page of normalized assignment records.
func (u *Usecase) ListAssignments(ctx context.Context, filter entities.AssignmentFilter, page, pageSize int) (entities.AssignmentPage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = u.pageSize
	}

	return u.store.ListAssignments(ctx, filter, page, pageSize)
}

// SnapshotAssignments pages through the full filtered record set so the
// stats and workload computations run over one point-in-time snapshot.
// The page count is capped; a snapshot larger than the cap fails loudly
// rather than silently truncating the statistics.
func (u *Usecase) SnapshotAssignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.AssignmentRecord, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	records := make([]entities.AssignmentRecord, 0, u.pageSize)
	for page := 1; ; page++ {
		if page > u.maxPages {
			return nil, fmt.Errorf("assignment snapshot exceeds %d pages of %d", u.maxPages, u.pageSize)
		}

		res, err := u.store.ListAssignments(ctx, filter, page, u.pageSize)
		if err != nil {
			return nil, err
		}
		records = append(records, res.Records...)

		if len(res.Records) < u.pageSize || (res.Total > 0 && len(records) >= res.Total) {
			return records, nil
		}
	}
}
