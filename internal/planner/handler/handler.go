package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MarioCasanovacf/chambometro/internal/config"
	"github.com/MarioCasanovacf/chambometro/internal/middleware"
	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/repository"
	"github.com/MarioCasanovacf/chambometro/internal/planner/service"
	"github.com/MarioCasanovacf/chambometro/internal/planner/sse"
)

// Handlers bundles the HTTP layer.
type Handlers struct {
	Auth     *AuthHandler
	Project  *ProjectHandler
	Roadmap  *RoadmapHandler
	Settings *SettingsHandler
	Views    *ViewsHandler
	Export   *ExportHandler
	SSE      *SSEHandler
}

// NewHandlers wires the handlers onto the services.
func NewHandlers(svc *service.Services, hub *sse.Hub, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(cfg),
		Project:  NewProjectHandler(svc.Project),
		Roadmap:  NewRoadmapHandler(svc.Roadmap),
		Settings: NewSettingsHandler(svc.Settings),
		Views:    NewViewsHandler(svc.Project),
		Export:   NewExportHandler(svc.Export),
		SSE:      NewSSEHandler(hub),
	}
}

// Response is the envelope of every JSON reply.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error envelope; the HTTP status is the leading three
// digits of the application code.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// RespondError maps domain errors onto the envelope.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, entity.ErrFeatureNotFound),
		errors.Is(err, entity.ErrCategoryNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, entity.ErrVersionIndex),
		errors.Is(err, entity.ErrBlankTitle),
		errors.Is(err, entity.ErrBadQuadrant),
		errors.Is(err, entity.ErrBadCategoryKind):
		BadRequest(c, err.Error())
	case errors.Is(err, entity.ErrLastVersion),
		errors.Is(err, repository.ErrRevisionConflict):
		Conflict(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		Forbidden(c, err.Error())
	case errors.Is(err, service.ErrArchiveDisabled):
		Error(c, 50300, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// CurrentActor builds the service-layer actor from the JWT context.
func CurrentActor(c *gin.Context) service.Actor {
	userID, _ := c.Get("user_id")
	id, _ := userID.(string)
	return service.Actor{
		UserID: id,
		Admin:  middleware.HasRole(c, middleware.RoleAdmin),
	}
}

// VersionIndex parses the :index route param.
func VersionIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		BadRequest(c, "version index must be an integer")
		return 0, false
	}
	return idx, true
}
