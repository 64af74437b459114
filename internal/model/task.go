package model

import "time"

// Category is the fixed top-level classification of a task.
type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryBusiness Category = "Business"
	CategoryBills    Category = "Bills"
	CategoryTaxes    Category = "Taxes"
	CategoryCustom   Category = "Custom"
)

// Categories lists every category in dashboard display order.
var Categories = []Category{
	CategoryBusiness,
	CategoryTaxes,
	CategoryBills,
	CategoryPersonal,
	CategoryCustom,
}

// Valid reports whether c is one of the fixed category values.
func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryBusiness, CategoryBills, CategoryTaxes, CategoryCustom:
		return true
	}
	return false
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every priority from highest to lowest.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Rank maps a priority to its numeric order: High=3, Medium=2, Low=1.
// Unknown priorities rank 0 and sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether p is one of the fixed priority values.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Recurrence marks how often a task repeats. It is stored as metadata
// only; no future instances are generated from it.
type Recurrence string

const (
	RecurrenceNone      Recurrence = ""
	RecurrenceDaily     Recurrence = "Daily"
	RecurrenceWeekly    Recurrence = "Weekly"
	RecurrenceMonthly   Recurrence = "Monthly"
	RecurrenceQuarterly Recurrence = "Quarterly"
	RecurrenceYearly    Recurrence = "Yearly"
)

// Valid reports whether r is empty or one of the fixed recurrence values.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly,
		RecurrenceQuarterly, RecurrenceYearly:
		return true
	}
	return false
}

// Named sub-types for Bills tasks.
const (
	BillTypeElectricity = "Electricity"
	BillTypeWater       = "Water"
	BillTypeInternet    = "Internet"
	BillTypeCreditCard  = "Credit Card"
	BillTypeOther       = "Other"
)

// Named sub-types for Taxes tasks.
const (
	TaxTypeBIR       = "BIR Deadline"
	TaxTypeQuarterly = "Quarterly Tax"
	TaxTypeAnnual    = "Annual Tax"
	TaxTypeLGU       = "LGU Payment"
	TaxTypeOther     = "Other"
)

// Task is the sole persisted entity: a single trackable obligation.
// JSON tags match the stored snapshot document shape.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Notes       string     `json:"notes,omitempty"`
	Category    Category   `json:"category"`
	SubType     string     `json:"subType,omitempty"` // meaningful for Bills/Taxes only
	Priority    Priority   `json:"priority"`
	DueDate     time.Time  `json:"dueDate"`
	IsCompleted bool       `json:"isCompleted"`
	Recurring   Recurrence `json:"recurring,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// SummaryData holds the dashboard counters. Overdue and Upcoming are
// computed over incomplete tasks only, so Completed+Overdue+Upcoming
// always equals Total.
type SummaryData struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	Upcoming  int `json:"upcoming"`
}

// Suggestion is an ephemeral AI-generated task recommendation. It is
// never persisted.
type Suggestion struct {
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
	Reason   string   `json:"reason"`
}
