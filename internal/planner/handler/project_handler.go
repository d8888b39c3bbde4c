package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MarioCasanovacf/chambometro/internal/planner/service"
)

// ProjectHandler serves the portfolio registry.
type ProjectHandler struct {
	svc *service.ProjectService
}

func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"projects": projects})
}

// Get GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}

type createProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "name is required")
		return
	}
	project, err := h.svc.Create(c.Request.Context(), CurrentActor(c), req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, project)
}

// Delete DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), CurrentActor(c), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}

// SelectActive PUT /projects/:id/active
func (h *ProjectHandler) SelectActive(c *gin.Context) {
	if err := h.svc.SelectActive(c.Request.Context(), CurrentActor(c), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"active_project_id": c.Param("id")})
}

// ActiveProject GET /projects/active
func (h *ProjectHandler) ActiveProject(c *gin.Context) {
	project, err := h.svc.ActiveProject(c.Request.Context(), CurrentActor(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}
