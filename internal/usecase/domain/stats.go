// Package domain contains application usecases orchestrating statistics.
package domain

import (
	"math"
	"time"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"
)

// ComputeStats derives assignment statistics from a record snapshot. It is a
// pure function of its inputs: the records are whatever the caller fetched,
// and asOf fixes "today" so results are reproducible.
func (u *Usecase) ComputeStats(records []entities.AssignmentRecord, asOf time.Time) entities.AssignmentStats {
	stats := entities.AssignmentStats{
		TotalAssigned: len(records),
	}

	var completionDays float64
	var completionCount int

	for _, rec := range records {
		if rec.Priority == entities.PriorityUrgent {
			stats.Urgent++
		}

		switch rec.Status {
		case entities.StatusPending, entities.StatusReview:
			stats.PendingReview++
		case entities.StatusInProgress:
			stats.InProgress++
		case entities.StatusCompleted:
			stats.Completed++
			if days, ok := completionTimeDays(rec); ok {
				completionDays += days
				completionCount++
			}
		}

		switch dueState(rec, asOf) {
		case dueOverdue:
			stats.Overdue++
		case dueToday:
			stats.DueToday++
		}
	}

	if completionCount > 0 {
		stats.AverageCompletionTime = round1(completionDays / float64(completionCount))
	}

	return stats
}

type dueStatus int

const (
	dueNone dueStatus = iota
	dueOverdue
	dueToday
)

// dueState classifies a record against asOf using date-only comparison.
// Records without a due date are skipped explicitly, never matched against a
// zero value; terminal records are excluded from both buckets.
func dueState(rec entities.AssignmentRecord, asOf time.Time) dueStatus {
	if !rec.HasDueDate() || rec.Status.Terminal() {
		return dueNone
	}

	due := dayOf(rec.DueDate)
	today := dayOf(asOf)
	switch {
	case due.Before(today):
		return dueOverdue
	case due.Equal(today):
		return dueToday
	default:
		return dueNone
	}
}

// completionTimeDays returns the record's completion time in days. Records
// missing either timestamp cannot contribute to the average.
func completionTimeDays(rec entities.AssignmentRecord) (float64, bool) {
	if rec.CreatedAt.IsZero() || rec.UpdatedAt.IsZero() || rec.UpdatedAt.Before(rec.CreatedAt) {
		return 0, false
	}
	return rec.UpdatedAt.Sub(rec.CreatedAt).Hours() / 24, true
}

// dayOf truncates a timestamp to its calendar date, ignoring time of day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
