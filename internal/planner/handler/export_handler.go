package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MarioCasanovacf/chambometro/internal/planner/service"
)

type ExportHandler struct {
	svc *service.ExportService
}

func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Download GET /projects/:id/export
// Streams the roadmap workbook, one sheet per version.
func (h *ExportHandler) Download(c *gin.Context) {
	f, filename, err := h.svc.Workbook(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}

// Archive POST /projects/:id/export/archive
// Uploads the current workbook to object storage and returns its path.
func (h *ExportHandler) Archive(c *gin.Context) {
	objectName, err := h.svc.Archive(c.Request.Context(), CurrentActor(c), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, gin.H{"object": objectName})
}
