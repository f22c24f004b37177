package domain

import (
	"context"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
)

// EligibleAssignees resolves the users who may legally receive a transaction:
// role admin or editor, account active. Duplicates by id are removed keeping
// the first occurrence. Store failures propagate so callers can tell a
// degraded pool from a genuinely empty one.
func (u *Usecase) EligibleAssignees(ctx context.Context) ([]entities.AssignedUser, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, err := u.store.ListEligibleAssignees(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(users))
	eligible := make([]entities.AssignedUser, 0, len(users))
	for _, usr := range users {
		// The store filters server-side; re-check here so the eligibility
		// rule has exactly one definition on this side of the wire.
		if !usr.EligibleAssignee() {
			u.log.Warnw("store returned ineligible assignee candidate",
				"user_id", usr.ID, "role", usr.Role, "is_active", usr.IsActive)
			continue
		}
		if _, dup := seen[usr.ID]; dup {
			continue
		}
		seen[usr.ID] = struct{}{}
		eligible = append(eligible, usr)
	}

	return eligible, nil
}

// GetAvailableAssignees is the reassignment-control view of the pool. On store
// failure it logs and returns an empty list so the rest of the UI keeps
// working; an empty list means "eligibility unknown", never an implicit bypass
// of the role check.
func (u *Usecase) GetAvailableAssignees(ctx context.Context) []entities.AssignedUser {
	eligible, err := u.EligibleAssignees(ctx)
	if err != nil {
		u.log.Errorw("failed to list eligible assignees", "error", err)
		return []entities.AssignedUser{}
	}
	return eligible
}
