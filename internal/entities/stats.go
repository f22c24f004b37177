// Package entities contains core business entities.
package entities

// AssignmentStats is a derived snapshot over a set of assignment records.
// It is recomputed per call and never persisted.
type AssignmentStats struct {
	TotalAssigned         int     `json:"total_assigned"`
	Urgent                int     `json:"urgent"`
	PendingReview         int     `json:"pending_review"`
	InProgress            int     `json:"in_progress"`
	Completed             int     `json:"completed"`
	Overdue               int     `json:"overdue"`
	DueToday              int     `json:"due_today"`
	AverageCompletionTime float64 `json:"average_completion_time"`
}

// WorkloadDistribution is the derived per-assignee load profile.
type WorkloadDistribution struct {
	AssigneeID int64  `json:"assignee_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`

	TotalTasks int `json:"total_tasks"`

	Urgent int `json:"urgent"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`

	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Review     int `json:"review"`
	Completed  int `json:"completed"`
	OnHold     int `json:"on_hold"`

	Overdue     int     `json:"overdue"`
	AverageTime float64 `json:"average_time"`
	Efficiency  int     `json:"efficiency"`
}
