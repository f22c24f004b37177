package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
	"github.com/lodi2001/mdc-v2-sub001/internal/mapper"
)

// usersEnvelope is the wire shape of the eligible-assignee listing.
type usersEnvelope struct {
	Users []mapper.RawUser `json:"users"`
}

// ListEligibleAssignees requests reassignment candidates. The role and
// is_active constraints are always sent together in one query; the check is
// on is_active, never on a generic status field.
func (c *Client) ListEligibleAssignees(ctx context.Context) ([]entities.AssignedUser, error) {
	q := url.Values{}
	q.Add("role", string(entities.RoleAdmin))
	q.Add("role", string(entities.RoleEditor))
	q.Set("is_active", "true")

	var env usersEnvelope
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/users/eligible-assignees?"+q.Encode(), nil, &env); err != nil {
		return nil, err
	}

	return mapper.FromRawUserList(env.Users), nil
}
