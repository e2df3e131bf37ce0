package ports

import (
	"context"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

// WorkflowRepository provides read access to workflows, tasks and the
// dashboard aggregates. All queries are scoped to a single company.
type WorkflowRepository interface {
	ListByCompany(ctx context.Context, companyID int64, status domain.WorkflowStatus) ([]domain.Workflow, error)
	FindByID(ctx context.Context, companyID, workflowID int64) (*domain.Workflow, error)
	Summary(ctx context.Context, companyID int64) (*domain.DashboardSummary, error)
}
