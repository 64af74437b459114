package usecase

import (
	"context"
	"time"

	"prosync/internal/model"
	"prosync/internal/task"
)

// Calendar buckets tasks by the calendar day their due date falls on
// within the displayed month. Both the due instant and the month are
// resolved in the configured timezone; tasks due outside the month are
// excluded entirely.
func (uc *implUseCase) Calendar(ctx context.Context, input task.CalendarInput) (task.CalendarOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return task.CalendarOutput{}, task.ErrInvalidMonth
	}

	tasks := uc.store.Snapshot()

	days := make(map[int][]model.Task)
	for _, t := range tasks {
		due := t.DueDate.In(uc.loc)
		if due.Year() != input.Year || due.Month() != input.Month {
			continue
		}
		days[due.Day()] = append(days[due.Day()], t)
	}

	return task.CalendarOutput{
		Year:  input.Year,
		Month: input.Month,
		Days:  days,
	}, nil
}
