package usecase

import (
	"context"
	"time"

	"prosync/internal/model"
)

// Summary recomputes the dashboard counters from the full collection.
// Overdue requires dueDate strictly before now; a task due exactly at
// now counts as upcoming.
func (uc *implUseCase) Summary(ctx context.Context, now time.Time) (model.SummaryData, error) {
	tasks := uc.store.Snapshot()

	summary := model.SummaryData{Total: len(tasks)}
	for _, t := range tasks {
		switch {
		case t.IsCompleted:
			summary.Completed++
		case t.DueDate.Before(now):
			summary.Overdue++
		default:
			summary.Upcoming++
		}
	}

	return summary, nil
}
