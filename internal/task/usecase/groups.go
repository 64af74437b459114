package usecase

import (
	"context"

	"prosync/internal/model"
	"prosync/internal/task"
)

// Groups tallies incomplete tasks per category and per priority. Every
// fixed enum value appears in the output, zero or not, so the dashboard
// cards always render a full set.
func (uc *implUseCase) Groups(ctx context.Context) (task.GroupsOutput, error) {
	tasks := uc.store.Snapshot()

	out := task.GroupsOutput{
		Categories: make(map[model.Category]int, len(model.Categories)),
		Priorities: make(map[model.Priority]int, len(model.Priorities)),
	}
	for _, c := range model.Categories {
		out.Categories[c] = 0
	}
	for _, p := range model.Priorities {
		out.Priorities[p] = 0
	}

	for _, t := range tasks {
		if t.IsCompleted {
			continue
		}
		out.Categories[t.Category]++
		out.Priorities[t.Priority]++
	}

	return out, nil
}
