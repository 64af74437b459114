package file

import (
	"time"

	"github.com/google/uuid"

	"prosync/internal/model"
)

// seedTasks returns the two sample tasks shown on first launch: an
// upcoming tax filing and a bill due today.
func seedTasks() []model.Task {
	now := time.Now()
	return []model.Task{
		{
			ID:        uuid.NewString(),
			Title:     "Q1 BIR Tax Filing",
			Category:  model.CategoryTaxes,
			SubType:   model.TaxTypeBIR,
			Priority:  model.PriorityHigh,
			DueDate:   now.Add(48 * time.Hour),
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Title:     "Electricity Bill Payment",
			Category:  model.CategoryBills,
			SubType:   model.BillTypeElectricity,
			Priority:  model.PriorityMedium,
			DueDate:   now,
			CreatedAt: now,
		},
	}
}
