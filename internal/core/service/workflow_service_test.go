package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

type stubWorkflowRepo struct {
	workflows    []domain.Workflow
	summary      *domain.DashboardSummary
	summaryCalls int
	lastCompany  int64
	lastStatus   domain.WorkflowStatus
}

func (r *stubWorkflowRepo) ListByCompany(_ context.Context, companyID int64, status domain.WorkflowStatus) ([]domain.Workflow, error) {
	r.lastCompany = companyID
	r.lastStatus = status
	return r.workflows, nil
}

func (r *stubWorkflowRepo) FindByID(_ context.Context, companyID, workflowID int64) (*domain.Workflow, error) {
	for i := range r.workflows {
		if r.workflows[i].ID == workflowID && r.workflows[i].CompanyID == companyID {
			return &r.workflows[i], nil
		}
	}
	return nil, domain.ErrWorkflowNotFound
}

func (r *stubWorkflowRepo) Summary(_ context.Context, companyID int64) (*domain.DashboardSummary, error) {
	r.summaryCalls++
	r.lastCompany = companyID
	return r.summary, nil
}

type stubSummaryCache struct {
	entries map[int64]*domain.DashboardSummary
	getErr  error
	setErr  error
}

func newStubSummaryCache() *stubSummaryCache {
	return &stubSummaryCache{entries: make(map[int64]*domain.DashboardSummary)}
}

func (c *stubSummaryCache) Get(_ context.Context, companyID int64) (*domain.DashboardSummary, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[companyID], nil
}

func (c *stubSummaryCache) Set(_ context.Context, companyID int64, summary *domain.DashboardSummary) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[companyID] = summary
	return nil
}

func TestWorkflowService_List_ScopesByCompany(t *testing.T) {
	repo := &stubWorkflowRepo{workflows: []domain.Workflow{{ID: 1, CompanyID: 9, Title: "Employee Onboarding"}}}
	svc := NewWorkflowService(repo, newStubSummaryCache(), zerolog.Nop())

	workflows, err := svc.List(context.Background(), 9, domain.WorkflowActive)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(workflows) != 1 || workflows[0].Title != "Employee Onboarding" {
		t.Fatalf("unexpected workflows: %+v", workflows)
	}
	if repo.lastCompany != 9 || repo.lastStatus != domain.WorkflowActive {
		t.Fatalf("query not scoped: company=%d status=%q", repo.lastCompany, repo.lastStatus)
	}
}

func TestWorkflowService_Get_NotFound(t *testing.T) {
	repo := &stubWorkflowRepo{workflows: []domain.Workflow{{ID: 1, CompanyID: 9}}}
	svc := NewWorkflowService(repo, newStubSummaryCache(), zerolog.Nop())

	// right id, wrong company
	if _, err := svc.Get(context.Background(), 8, 1); !errors.Is(err, domain.ErrWorkflowNotFound) {
		t.Fatalf("expected ErrWorkflowNotFound, got %v", err)
	}
}

func TestWorkflowService_Summary_CacheMissThenHit(t *testing.T) {
	repo := &stubWorkflowRepo{summary: &domain.DashboardSummary{ActiveWorkflows: 12, DelayedTasks: 3}}
	cache := newStubSummaryCache()
	svc := NewWorkflowService(repo, cache, zerolog.Nop())

	first, err := svc.Summary(context.Background(), 9)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if first.ActiveWorkflows != 12 {
		t.Fatalf("unexpected summary: %+v", first)
	}
	if repo.summaryCalls != 1 {
		t.Fatalf("expected one repo call, got %d", repo.summaryCalls)
	}

	// second call is served from the cache
	second, err := svc.Summary(context.Background(), 9)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if repo.summaryCalls != 1 {
		t.Fatalf("cache hit still reached the repository (%d calls)", repo.summaryCalls)
	}
	if *second != *first {
		t.Fatalf("cached summary differs: %+v vs %+v", second, first)
	}
}

func TestWorkflowService_Summary_CacheFaultFallsThrough(t *testing.T) {
	repo := &stubWorkflowRepo{summary: &domain.DashboardSummary{ActiveWorkflows: 4}}
	cache := newStubSummaryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewWorkflowService(repo, cache, zerolog.Nop())

	summary, err := svc.Summary(context.Background(), 9)
	if err != nil {
		t.Fatalf("Summary should survive cache faults: %v", err)
	}
	if summary.ActiveWorkflows != 4 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
