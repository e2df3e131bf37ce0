package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/flowboard/workflow-api/internal/core/domain"
	"github.com/flowboard/workflow-api/internal/core/ports"
)

// WorkflowService serves the read-only workflow and dashboard views.
type WorkflowService struct {
	repo  ports.WorkflowRepository
	cache ports.SummaryCache
	log   zerolog.Logger
}

func NewWorkflowService(repo ports.WorkflowRepository, cache ports.SummaryCache, log zerolog.Logger) *WorkflowService {
	return &WorkflowService{repo: repo, cache: cache, log: log}
}

func (s *WorkflowService) List(ctx context.Context, companyID int64, status domain.WorkflowStatus) ([]domain.Workflow, error) {
	workflows, err := s.repo.ListByCompany(ctx, companyID, status)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return workflows, nil
}

func (s *WorkflowService) Get(ctx context.Context, companyID, workflowID int64) (*domain.Workflow, error) {
	return s.repo.FindByID(ctx, companyID, workflowID)
}

// Summary returns the dashboard aggregates, cache-aside. A cache read fault
// falls through to the repository; a cache write fault is logged and ignored
// since the summary itself is already in hand.
func (s *WorkflowService) Summary(ctx context.Context, companyID int64) (*domain.DashboardSummary, error) {
	cached, err := s.cache.Get(ctx, companyID)
	if err != nil {
		s.log.Warn().Err(err).Int64("company_id", companyID).Msg("summary cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	summary, err := s.repo.Summary(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	if err := s.cache.Set(ctx, companyID, summary); err != nil {
		s.log.Warn().Err(err).Int64("company_id", companyID).Msg("summary cache write failed")
	}
	return summary, nil
}
