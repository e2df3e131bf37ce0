package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flowboard/workflow-api/internal/core/domain"
	"github.com/flowboard/workflow-api/internal/core/ports"
)

type WorkflowHandler struct {
	workflowService ports.WorkflowService
}

func NewWorkflowHandler(workflowService ports.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

type listWorkflowsRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=active completed on_hold"`
}

type listWorkflowsResponse struct {
	Workflows []domain.Workflow `json:"workflows"`
}

// List returns the caller's company workflows, optionally filtered by status.
//
// @Summary      List workflows
// @Tags         workflows
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"  Enums(active, completed, on_hold)
// @Success      200     {object}  listWorkflowsResponse
// @Failure      401     {object}  messageResponse
// @Router       /api/workflows [get]
func (h *WorkflowHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req listWorkflowsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	workflows, err := h.workflowService.List(c.Request().Context(), ident.CompanyID, domain.WorkflowStatus(req.Status))
	if err != nil {
		return err
	}
	if workflows == nil {
		workflows = []domain.Workflow{}
	}

	return c.JSON(http.StatusOK, listWorkflowsResponse{Workflows: workflows})
}

// Get returns one workflow with its tasks. Workflows belonging to another
// company are reported as not found, not forbidden.
//
// @Summary      Workflow detail
// @Tags         workflows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Workflow ID"
// @Success      200  {object}  domain.Workflow
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/workflows/{id} [get]
func (h *WorkflowHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrWorkflowNotFound
	}

	workflow, err := h.workflowService.Get(c.Request().Context(), ident.CompanyID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, workflow)
}

// Summary returns the dashboard aggregates for the caller's company.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardSummary
// @Failure      401  {object}  messageResponse
// @Router       /api/dashboard/summary [get]
func (h *WorkflowHandler) Summary(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summary, err := h.workflowService.Summary(c.Request().Context(), ident.CompanyID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}
