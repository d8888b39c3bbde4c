package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/service"
	"github.com/MarioCasanovacf/chambometro/internal/planner/views"
)

// ViewsHandler serves read-only projections of a project's roadmap. Each
// endpoint loads the current document and derives the view on the fly, so
// views are always consistent with the last write.
type ViewsHandler struct {
	svc *service.ProjectService
}

func NewViewsHandler(svc *service.ProjectService) *ViewsHandler {
	return &ViewsHandler{svc: svc}
}

func (h *ViewsHandler) load(c *gin.Context) (*entity.Project, bool) {
	project, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return nil, false
	}
	return project, true
}

// Eisenhower GET /projects/:id/views/eisenhower?assignee=
func (h *ViewsHandler) Eisenhower(c *gin.Context) {
	project, ok := h.load(c)
	if !ok {
		return
	}
	assignee := c.DefaultQuery("assignee", entity.AssigneeAll)
	Success(c, views.Eisenhower(entity.Roadmap(project.Roadmap), assignee))
}

// Kanban GET /projects/:id/views/kanban
func (h *ViewsHandler) Kanban(c *gin.Context) {
	project, ok := h.load(c)
	if !ok {
		return
	}
	Success(c, views.Kanban(entity.Roadmap(project.Roadmap)))
}

// Gantt GET /projects/:id/views/gantt
func (h *ViewsHandler) Gantt(c *gin.Context) {
	project, ok := h.load(c)
	if !ok {
		return
	}
	Success(c, views.Gantt(entity.Roadmap(project.Roadmap), time.Now()))
}

// Capacity GET /projects/:id/views/capacity
func (h *ViewsHandler) Capacity(c *gin.Context) {
	project, ok := h.load(c)
	if !ok {
		return
	}
	Success(c, views.Capacity(entity.Roadmap(project.Roadmap)))
}

// Assignees GET /projects/:id/views/assignees
func (h *ViewsHandler) Assignees(c *gin.Context) {
	project, ok := h.load(c)
	if !ok {
		return
	}
	Success(c, views.Assignees(entity.Roadmap(project.Roadmap)))
}

// Financials GET /projects/:id/features/:featureId/financials
// Looks the feature up across all versions.
func (h *ViewsHandler) Financials(c *gin.Context) {
	project, ok := h.load(c)
	if !ok {
		return
	}
	roadmap := entity.Roadmap(project.Roadmap)
	vi, feature, found := roadmap.FindFeature(c.Param("featureId"))
	if !found {
		RespondError(c, entity.ErrFeatureNotFound)
		return
	}
	Success(c, featureFinancials{
		Feature:    views.PlacedFeature{Feature: feature, VersionIndex: vi, VersionName: roadmap[vi].Name},
		Financials: entity.ComputeFinancials(feature.EffortMin, feature.EffortMax, feature.Complexity, entity.Settings(project.Settings)),
	})
}

type featureFinancials struct {
	Feature    views.PlacedFeature `json:"feature"`
	Financials entity.Financials   `json:"financials"`
}

// Matrix GET /projects/:id/views/matrix
// Every feature with its computed financials, for the value matrix.
func (h *ViewsHandler) Matrix(c *gin.Context) {
	project, ok := h.load(c)
	if !ok {
		return
	}
	settings := entity.Settings(project.Settings)
	placed := views.Flatten(entity.Roadmap(project.Roadmap))
	out := make([]featureFinancials, 0, len(placed))
	for _, p := range placed {
		out = append(out, featureFinancials{
			Feature:    p,
			Financials: entity.ComputeFinancials(p.EffortMin, p.EffortMax, p.Complexity, settings),
		})
	}
	Success(c, out)
}
