package domain

import (
	"errors"
	"time"
)

// WorkflowStatus is a display tag, not a state machine: the backend never
// transitions workflows between statuses.
type WorkflowStatus string

const (
	WorkflowActive    WorkflowStatus = "active"
	WorkflowCompleted WorkflowStatus = "completed"
	WorkflowOnHold    WorkflowStatus = "on_hold"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
)

var ErrWorkflowNotFound = errors.New("workflow not found")

// Task is a single unit of work inside a workflow.
type Task struct {
	ID         int64      `json:"id"`
	WorkflowID int64      `json:"workflow_id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Assignee   string     `json:"assignee,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

// Workflow is a tracked process owned by one company.
type Workflow struct {
	ID             int64          `json:"id"`
	CompanyID      int64          `json:"-"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Status         WorkflowStatus `json:"status"`
	Priority       string         `json:"priority"`
	Category       string         `json:"category"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
	TasksCompleted int            `json:"tasks_completed"`
	TasksTotal     int            `json:"tasks_total"`
	CreatedAt      time.Time      `json:"created_at"`
	Tasks          []Task         `json:"tasks,omitempty"`
}

// DashboardSummary aggregates the numbers shown on the dashboard landing page.
type DashboardSummary struct {
	ActiveWorkflows    int `json:"active_workflows"`
	CompletedWorkflows int `json:"completed_workflows"`
	OnHoldWorkflows    int `json:"on_hold_workflows"`
	DelayedTasks       int `json:"delayed_tasks"`
}
