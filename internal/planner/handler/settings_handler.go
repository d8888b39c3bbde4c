package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/service"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get GET /projects/:id/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	computed, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, computed)
}

type addCategoryRequest struct {
	Name     string  `json:"name" binding:"required"`
	Amount   float64 `json:"amount"`
	Revision int64   `json:"revision"`
}

// AddCategory POST /projects/:id/settings/categories/:kind
func (h *SettingsHandler) AddCategory(c *gin.Context) {
	var req addCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.AddCategory(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, c.Param("kind"), req.Name, req.Amount)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, project)
}

type updateCategoryRequest struct {
	Name     *string  `json:"name"`
	Amount   *float64 `json:"amount"`
	Revision int64    `json:"revision"`
}

// UpdateCategory PATCH /projects/:id/settings/categories/:kind/:categoryId
func (h *SettingsHandler) UpdateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.UpdateCategory(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, c.Param("kind"), c.Param("categoryId"),
		entity.CategoryPatch{Name: req.Name, Amount: req.Amount})
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}

// RemoveCategory DELETE /projects/:id/settings/categories/:kind/:categoryId
func (h *SettingsHandler) RemoveCategory(c *gin.Context) {
	project, err := h.svc.RemoveCategory(c.Request.Context(), CurrentActor(c), c.Param("id"),
		0, c.Param("kind"), c.Param("categoryId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}

type multiplierRequest struct {
	Value    float64 `json:"value" binding:"required"`
	Revision int64   `json:"revision"`
}

// SetCogsMultiplier PUT /projects/:id/settings/cogs-multiplier
func (h *SettingsHandler) SetCogsMultiplier(c *gin.Context) {
	var req multiplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.SetCogsMultiplier(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, req.Value)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}
