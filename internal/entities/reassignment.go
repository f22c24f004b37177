// Package entities contains core business entities.
package entities

// ReassignCommand describes a single-transaction reassignment. A nil
// NewAssigneeID clears the assignee; unassignment is a first-class operation,
// not an error state.
type ReassignCommand struct {
	TransactionID string
	NewAssigneeID *int64
	Reason        string
}

// BulkAction applies one reassignment to many transactions as a single
// logical request. Duplicate ids are removed before submission.
type BulkAction struct {
	TransactionIDs []string
	NewAssigneeID  *int64
	Reason         string
}

// BulkResult reports the outcome of a bulk reassignment. Updated carries the
// store's count as-is; fewer updated than requested is a normal result the
// caller must surface, not an error.
type BulkResult struct {
	Requested int `json:"requested"`
	Updated   int `json:"updated"`
}
