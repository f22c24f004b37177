// Package domain contains application usecases orchestrating workload distribution.
package domain

import (
	"math"
	"sort"
	"time"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
)

// ComputeDistribution derives per-assignee load and efficiency metrics from a
// record snapshot. One entry is produced for every assignee in the pool, in
// order of total tasks descending with ties broken by assignee id ascending.
// Assignees with no records get zeroed metrics, never NaN and never omitted.
func (u *Usecase) ComputeDistribution(records []entities.AssignmentRecord, assignees []entities.AssignedUser, asOf time.Time) []entities.WorkloadDistribution {
	entries := make([]entities.WorkloadDistribution, 0, len(assignees))
	index := make(map[int64]int, len(assignees))
	completionDays := make(map[int64]float64, len(assignees))
	completionCount := make(map[int64]int, len(assignees))

	for _, a := range assignees {
		if _, dup := index[a.ID]; dup {
			continue
		}
		index[a.ID] = len(entries)
		entries = append(entries, entities.WorkloadDistribution{
			AssigneeID: a.ID,
			Username:   a.Username,
			FullName:   a.FullName(),
		})
	}

	for _, rec := range records {
		if rec.Assignee == nil {
			continue
		}
		i, ok := index[rec.Assignee.ID]
		if !ok {
			continue
		}
		e := &entries[i]
		e.TotalTasks++

		switch rec.Priority {
		case entities.PriorityUrgent:
			e.Urgent++
		case entities.PriorityHigh:
			e.High++
		case entities.PriorityMedium:
			e.Medium++
		case entities.PriorityLow:
			e.Low++
		}

		switch rec.Status {
		case entities.StatusPending:
			e.Pending++
		case entities.StatusInProgress:
			e.InProgress++
		case entities.StatusReview:
			e.Review++
		case entities.StatusCompleted:
			e.Completed++
			if days, ok := completionTimeDays(rec); ok {
				completionDays[rec.Assignee.ID] += days
				completionCount[rec.Assignee.ID]++
			}
		case entities.StatusOnHold:
			e.OnHold++
		}

		if dueState(rec, asOf) == dueOverdue {
			e.Overdue++
		}
	}

	for i := range entries {
		e := &entries[i]
		if n := completionCount[e.AssigneeID]; n > 0 {
			e.AverageTime = round1(completionDays[e.AssigneeID] / float64(n))
		}
		if e.TotalTasks > 0 {
			e.Efficiency = int(math.Round(float64(e.Completed) / float64(e.TotalTasks) * 100))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalTasks != entries[j].TotalTasks {
			return entries[i].TotalTasks > entries[j].TotalTasks
		}
		return entries[i].AssigneeID < entries[j].AssigneeID
	})

	return entries
}
