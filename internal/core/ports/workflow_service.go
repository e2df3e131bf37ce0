package ports

import (
	"context"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

type WorkflowService interface {
	List(ctx context.Context, companyID int64, status domain.WorkflowStatus) ([]domain.Workflow, error)
	Get(ctx context.Context, companyID, workflowID int64) (*domain.Workflow, error)
	Summary(ctx context.Context, companyID int64) (*domain.DashboardSummary, error)
}

// SummaryCache is a short-lived cache for dashboard summaries.
// Get returns (nil, nil) on a miss.
type SummaryCache interface {
	Get(ctx context.Context, companyID int64) (*domain.DashboardSummary, error)
	Set(ctx context.Context, companyID int64, summary *domain.DashboardSummary) error
}
