package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/service"
)

// RoadmapHandler serves the structural mutations of a project's roadmap.
// Every request body may carry `revision`: the document revision the client
// last read. 0 skips the optimistic check.
type RoadmapHandler struct {
	svc *service.RoadmapService
}

func NewRoadmapHandler(svc *service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{svc: svc}
}

type moveFeatureRequest struct {
	FromVersion int    `json:"from_version"`
	FeatureID   string `json:"feature_id" binding:"required"`
	ToVersion   int    `json:"to_version"`
	Revision    int64  `json:"revision"`
}

// MoveFeature POST /projects/:id/features/move
func (h *RoadmapHandler) MoveFeature(c *gin.Context) {
	var req moveFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.MoveFeature(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, req.FromVersion, req.FeatureID, req.ToVersion)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}

type addIdeaRequest struct {
	Title      string `json:"title" binding:"required"`
	EffortMin  int    `json:"effortMin"`
	EffortMax  int    `json:"effortMax"`
	Impact     int    `json:"impact"`
	Complexity int    `json:"complexity"`
	Revision   int64  `json:"revision"`
}

// AddIdea POST /projects/:id/ideas
func (h *RoadmapHandler) AddIdea(c *gin.Context) {
	var req addIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.AddIdea(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, entity.IdeaInput{
			Title:      req.Title,
			EffortMin:  req.EffortMin,
			EffortMax:  req.EffortMax,
			Impact:     req.Impact,
			Complexity: req.Complexity,
		})
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, project)
}

type statusRequest struct {
	Status   string `json:"status" binding:"required"`
	Revision int64  `json:"revision"`
}

// UpdateStatus PUT /projects/:id/versions/:index/features/:featureId/status
func (h *RoadmapHandler) UpdateStatus(c *gin.Context) {
	idx, ok := VersionIndex(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.UpdateFeatureStatus(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, idx, c.Param("featureId"), req.Status)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}

type eisenhowerRequest struct {
	Quadrant *int  `json:"quadrant"`
	Revision int64 `json:"revision"`
}

// UpdateEisenhower PUT /projects/:id/features/:featureId/eisenhower
func (h *RoadmapHandler) UpdateEisenhower(c *gin.Context) {
	var req eisenhowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.UpdateFeatureEisenhower(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, c.Param("featureId"), req.Quadrant)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}

type datesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Revision  int64  `json:"revision"`
}

// UpdateDates PUT /projects/:id/versions/:index/features/:featureId/dates
func (h *RoadmapHandler) UpdateDates(c *gin.Context) {
	idx, ok := VersionIndex(c)
	if !ok {
		return
	}
	var req datesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.UpdateFeatureDates(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, idx, c.Param("featureId"), req.StartDate, req.EndDate)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}

// DeleteFeature DELETE /projects/:id/versions/:index/features/:featureId
func (h *RoadmapHandler) DeleteFeature(c *gin.Context) {
	idx, ok := VersionIndex(c)
	if !ok {
		return
	}
	project, err := h.svc.DeleteFeature(c.Request.Context(), CurrentActor(c), c.Param("id"),
		0, idx, c.Param("featureId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}

type addVersionRequest struct {
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color"`
	Limit    int    `json:"limit"`
	Revision int64  `json:"revision"`
}

// AddVersion POST /projects/:id/versions
func (h *RoadmapHandler) AddVersion(c *gin.Context) {
	var req addVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.AddVersion(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, req.Name, req.Color, req.Limit)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, project)
}

type editVersionRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Limit    *int    `json:"limit"`
	Revision int64   `json:"revision"`
}

// EditVersion PATCH /projects/:id/versions/:index
func (h *RoadmapHandler) EditVersion(c *gin.Context) {
	idx, ok := VersionIndex(c)
	if !ok {
		return
	}
	var req editVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	project, err := h.svc.EditVersion(c.Request.Context(), CurrentActor(c), c.Param("id"),
		req.Revision, idx, entity.VersionPatch{Name: req.Name, Color: req.Color, Limit: req.Limit})
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}

// DeleteVersion DELETE /projects/:id/versions/:index
func (h *RoadmapHandler) DeleteVersion(c *gin.Context) {
	idx, ok := VersionIndex(c)
	if !ok {
		return
	}
	project, err := h.svc.DeleteVersion(c.Request.Context(), CurrentActor(c), c.Param("id"), 0, idx)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, project)
}
