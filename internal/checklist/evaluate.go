// Package checklist derives a task's progress percentage and status
// from its todo checklist. It is the single source of truth for both
// values: every write that touches a checklist re-runs Evaluate, and
// client-supplied progress/status are ignored while a checklist exists.
package checklist

import "github.com/Amitkumarsahu1/Task-Management-System/internal/models"

// CompletedCount returns how many items in the checklist are done.
func CompletedCount(items []models.ChecklistItem) int {
	count := 0
	for _, item := range items {
		if item.Completed {
			count++
		}
	}
	return count
}

// Evaluate computes the progress percentage (0-100, truncating
// division) and the status implied by the checklist:
//
//	no completed items        -> Pending (including an empty checklist)
//	all items completed (>0)  -> Completed
//	anything in between       -> In Progress
func Evaluate(items []models.ChecklistItem) (progress int, status string) {
	total := len(items)
	if total == 0 {
		return 0, models.StatusPending
	}

	completed := CompletedCount(items)
	progress = 100 * completed / total

	switch {
	case completed == 0:
		status = models.StatusPending
	case completed == total:
		status = models.StatusCompleted
	default:
		status = models.StatusInProgress
	}
	return progress, status
}
