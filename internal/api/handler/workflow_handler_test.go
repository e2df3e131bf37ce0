package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

type stubWorkflowService struct {
	workflows []domain.Workflow
	summary   *domain.DashboardSummary

	lastCompany int64
	lastStatus  domain.WorkflowStatus
}

func (s *stubWorkflowService) List(_ context.Context, companyID int64, status domain.WorkflowStatus) ([]domain.Workflow, error) {
	s.lastCompany = companyID
	s.lastStatus = status
	return s.workflows, nil
}

func (s *stubWorkflowService) Get(_ context.Context, companyID, workflowID int64) (*domain.Workflow, error) {
	for i := range s.workflows {
		if s.workflows[i].ID == workflowID && s.workflows[i].CompanyID == companyID {
			return &s.workflows[i], nil
		}
	}
	return nil, domain.ErrWorkflowNotFound
}

func (s *stubWorkflowService) Summary(_ context.Context, companyID int64) (*domain.DashboardSummary, error) {
	s.lastCompany = companyID
	return s.summary, nil
}

func newWorkflowContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", domain.Identity{UserID: 1, Role: domain.RoleMember, CompanyID: 9})
	return c, rec
}

func TestWorkflowHandler_List(t *testing.T) {
	stub := &stubWorkflowService{workflows: []domain.Workflow{
		{ID: 1, CompanyID: 9, Title: "Employee Onboarding", Status: domain.WorkflowActive},
	}}
	handler := NewWorkflowHandler(stub)

	c, rec := newWorkflowContext(t, "/api/workflows?status=active")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastCompany != 9 || stub.lastStatus != domain.WorkflowActive {
		t.Fatalf("service call not scoped: company=%d status=%q", stub.lastCompany, stub.lastStatus)
	}

	var resp listWorkflowsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Workflows) != 1 || resp.Workflows[0].Title != "Employee Onboarding" {
		t.Fatalf("unexpected workflows: %+v", resp.Workflows)
	}
}

func TestWorkflowHandler_List_EmptyIsArray(t *testing.T) {
	handler := NewWorkflowHandler(&stubWorkflowService{})

	c, rec := newWorkflowContext(t, "/api/workflows")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if string(resp["workflows"]) != "[]" {
		t.Fatalf("expected empty array, got %s", resp["workflows"])
	}
}

func TestWorkflowHandler_List_BadStatus(t *testing.T) {
	handler := NewWorkflowHandler(&stubWorkflowService{})

	c, _ := newWorkflowContext(t, "/api/workflows?status=bogus")
	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestWorkflowHandler_Get_NotFound(t *testing.T) {
	stub := &stubWorkflowService{workflows: []domain.Workflow{{ID: 1, CompanyID: 2}}}
	handler := NewWorkflowHandler(stub)

	// workflow 1 belongs to company 2; the caller is in company 9
	c, _ := newWorkflowContext(t, "/api/workflows/1")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.Get(c); !errors.Is(err, domain.ErrWorkflowNotFound) {
		t.Fatalf("expected ErrWorkflowNotFound, got %v", err)
	}
}

func TestWorkflowHandler_Get_NonNumericID(t *testing.T) {
	handler := NewWorkflowHandler(&stubWorkflowService{})

	c, _ := newWorkflowContext(t, "/api/workflows/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.Get(c); !errors.Is(err, domain.ErrWorkflowNotFound) {
		t.Fatalf("expected ErrWorkflowNotFound, got %v", err)
	}
}

func TestWorkflowHandler_Summary(t *testing.T) {
	stub := &stubWorkflowService{summary: &domain.DashboardSummary{ActiveWorkflows: 12, DelayedTasks: 3}}
	handler := NewWorkflowHandler(stub)

	c, rec := newWorkflowContext(t, "/api/dashboard/summary")
	if err := handler.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastCompany != 9 {
		t.Fatalf("summary not scoped to caller company: %d", stub.lastCompany)
	}

	var resp domain.DashboardSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ActiveWorkflows != 12 || resp.DelayedTasks != 3 {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}
