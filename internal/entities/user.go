// Package entities contains core business entities.
package entities

// Role enumerates user roles known to the transaction store.
type Role string

const (
	// RoleAdmin marks an administrator.
	RoleAdmin Role = "admin"
	// RoleEditor marks a transaction editor.
	RoleEditor Role = "editor"
	// RoleClient marks a requesting party; clients are never assignees.
	RoleClient Role = "client"
)

// AssignedUser is a domain representation of a user who may hold transactions.
type AssignedUser struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Role      Role
	IsActive  bool
}

// AssignableRole reports whether the user's role permits holding a
// transaction at all. Activity is checked separately: an assignee may go
// inactive while still holding work, but an inactive user must never be
// offered as a new assignee.
func (u AssignedUser) AssignableRole() bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor
}

// EligibleAssignee is the single authoritative eligibility predicate for
// offering a user as a reassignment candidate. The check is on is_active,
// not on any generic account-status field.
func (u AssignedUser) EligibleAssignee() bool {
	return u.AssignableRole() && u.IsActive
}

// FullName joins first and last name for display.
func (u AssignedUser) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
