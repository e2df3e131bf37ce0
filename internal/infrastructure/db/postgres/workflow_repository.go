package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

type WorkflowRepository struct {
	db *sql.DB
}

func NewWorkflowRepository(db *sql.DB) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

const listWorkflows = `
	SELECT w.id, w.company_id, w.title, w.description, w.status, w.priority, w.category,
	       w.due_date, w.created_at,
	       COUNT(t.id) FILTER (WHERE t.status = 'done') AS tasks_completed,
	       COUNT(t.id) AS tasks_total
	FROM workflows w
	LEFT JOIN tasks t ON t.workflow_id = w.id
	WHERE w.company_id = $1 AND ($2 = '' OR w.status = $2)
	GROUP BY w.id
	ORDER BY w.created_at DESC, w.id DESC`

func (r *WorkflowRepository) ListByCompany(ctx context.Context, companyID int64, status domain.WorkflowStatus) ([]domain.Workflow, error) {
	rows, err := r.db.QueryContext(ctx, listWorkflows, companyID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	defer rows.Close()

	var workflows []domain.Workflow
	for rows.Next() {
		w, err := scanWorkflow(rows)
		if err != nil {
			return nil, err
		}
		workflows = append(workflows, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return workflows, nil
}

const findWorkflow = `
	SELECT w.id, w.company_id, w.title, w.description, w.status, w.priority, w.category,
	       w.due_date, w.created_at,
	       COUNT(t.id) FILTER (WHERE t.status = 'done') AS tasks_completed,
	       COUNT(t.id) AS tasks_total
	FROM workflows w
	LEFT JOIN tasks t ON t.workflow_id = w.id
	WHERE w.company_id = $1 AND w.id = $2
	GROUP BY w.id`

const listTasks = `
	SELECT id, workflow_id, title, status, assignee, due_date
	FROM tasks
	WHERE workflow_id = $1
	ORDER BY id`

// FindByID loads one workflow and its tasks. A workflow owned by another
// company yields domain.ErrWorkflowNotFound, not a forbidden error, so the
// response does not reveal that the id exists.
func (r *WorkflowRepository) FindByID(ctx context.Context, companyID, workflowID int64) (*domain.Workflow, error) {
	row := r.db.QueryRowContext(ctx, findWorkflow, companyID, workflowID)
	workflow, err := scanWorkflow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorkflowNotFound
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, listTasks, workflowID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Task
		var due sql.NullTime
		if err := rows.Scan(&t.ID, &t.WorkflowID, &t.Title, &t.Status, &t.Assignee, &due); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if due.Valid {
			t.DueDate = &due.Time
		}
		workflow.Tasks = append(workflow.Tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return workflow, nil
}

const workflowCounts = `
	SELECT
	    COUNT(*) FILTER (WHERE status = 'active'),
	    COUNT(*) FILTER (WHERE status = 'completed'),
	    COUNT(*) FILTER (WHERE status = 'on_hold')
	FROM workflows
	WHERE company_id = $1`

const delayedTasks = `
	SELECT COUNT(*)
	FROM tasks t
	JOIN workflows w ON w.id = t.workflow_id
	WHERE w.company_id = $1
	  AND t.status <> 'done'
	  AND t.due_date IS NOT NULL
	  AND t.due_date < now()`

func (r *WorkflowRepository) Summary(ctx context.Context, companyID int64) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{}

	err := r.db.QueryRowContext(ctx, workflowCounts, companyID).Scan(
		&summary.ActiveWorkflows,
		&summary.CompletedWorkflows,
		&summary.OnHoldWorkflows,
	)
	if err != nil {
		return nil, fmt.Errorf("workflow counts: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, delayedTasks, companyID).Scan(&summary.DelayedTasks); err != nil {
		return nil, fmt.Errorf("delayed tasks: %w", err)
	}
	return summary, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWorkflow(row scanner) (*domain.Workflow, error) {
	w := &domain.Workflow{}
	var due sql.NullTime
	err := row.Scan(
		&w.ID,
		&w.CompanyID,
		&w.Title,
		&w.Description,
		&w.Status,
		&w.Priority,
		&w.Category,
		&due,
		&w.CreatedAt,
		&w.TasksCompleted,
		&w.TasksTotal,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan workflow: %w", err)
	}
	if due.Valid {
		w.DueDate = &due.Time
	}
	return w, nil
}
