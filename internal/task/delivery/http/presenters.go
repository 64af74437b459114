package http

import (
	"time"

	"prosync/internal/model"
	"prosync/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string    `json:"title"        binding:"required,min=1,max=255"`
	Notes       string    `json:"notes"        binding:"max=2000"`
	Category    string    `json:"category"     binding:"required,oneof=Personal Business Bills Taxes Custom"`
	SubType     string    `json:"sub_type"     binding:"max=100"`
	Priority    string    `json:"priority"     binding:"required,oneof=Low Medium High"`
	DueDate     time.Time `json:"due_date"     binding:"required"`
	IsCompleted bool      `json:"is_completed"`
	Recurring   string    `json:"recurring"    binding:"omitempty,oneof=Daily Weekly Monthly Quarterly Yearly"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Notes:       r.Notes,
		Category:    model.Category(r.Category),
		SubType:     r.SubType,
		Priority:    model.Priority(r.Priority),
		DueDate:     r.DueDate,
		IsCompleted: r.IsCompleted,
		Recurring:   model.Recurrence(r.Recurring),
	}
}

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"        binding:"omitempty,min=1,max=255"`
	Notes       *string    `json:"notes"        binding:"omitempty,max=2000"`
	Category    *string    `json:"category"     binding:"omitempty,oneof=Personal Business Bills Taxes Custom"`
	SubType     *string    `json:"sub_type"     binding:"omitempty,max=100"`
	Priority    *string    `json:"priority"     binding:"omitempty,oneof=Low Medium High"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted *bool      `json:"is_completed"`
	Recurring   *string    `json:"recurring"    binding:"omitempty,oneof=Daily Weekly Monthly Quarterly Yearly"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	input := task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Notes:       r.Notes,
		SubType:     r.SubType,
		DueDate:     r.DueDate,
		IsCompleted: r.IsCompleted,
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		input.Category = &c
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		input.Priority = &p
	}
	if r.Recurring != nil {
		rec := model.Recurrence(*r.Recurring)
		input.Recurring = &rec
	}
	return input
}

type listReq struct {
	Category string `form:"category" binding:"omitempty,oneof=All Personal Business Bills Taxes Custom"`
	SortBy   string `form:"sort_by"  binding:"omitempty,oneof=due_date priority created_at"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Category: r.Category,
		SortBy:   task.SortKey(r.SortBy),
	}
}

type calendarReq struct {
	Year  int `form:"year"  binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

func (r calendarReq) toInput() task.CalendarInput {
	return task.CalendarInput{
		Year:  r.Year,
		Month: time.Month(r.Month),
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Notes       string    `json:"notes,omitempty"`
	Category    string    `json:"category"`
	SubType     string    `json:"sub_type,omitempty"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	Recurring   string    `json:"recurring,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Notes:       t.Notes,
		Category:    string(t.Category),
		SubType:     t.SubType,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
		Recurring:   string(t.Recurring),
		CreatedAt:   t.CreatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type taskDetailResp struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	return listResp{
		Tasks: newTaskResps(out.Tasks),
		Total: out.Total,
	}
}

type summaryResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	Upcoming  int `json:"upcoming"`
}

func newSummaryResp(s model.SummaryData) summaryResp {
	return summaryResp(s)
}

type groupsResp struct {
	Categories map[string]int `json:"categories"`
	Priorities map[string]int `json:"priorities"`
}

func (h *handler) newGroupsResp(out task.GroupsOutput) groupsResp {
	resp := groupsResp{
		Categories: make(map[string]int, len(out.Categories)),
		Priorities: make(map[string]int, len(out.Priorities)),
	}
	for c, n := range out.Categories {
		resp.Categories[string(c)] = n
	}
	for p, n := range out.Priorities {
		resp.Priorities[string(p)] = n
	}
	return resp
}

type calendarResp struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Days  map[int][]taskResp `json:"days"`
}

func (h *handler) newCalendarResp(out task.CalendarOutput) calendarResp {
	days := make(map[int][]taskResp, len(out.Days))
	for day, bucket := range out.Days {
		days[day] = newTaskResps(bucket)
	}
	return calendarResp{
		Year:  out.Year,
		Month: int(out.Month),
		Days:  days,
	}
}
