package service

import (
	"errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/MarioCasanovacf/chambometro/internal/config"
	"github.com/MarioCasanovacf/chambometro/internal/planner/repository"
	"github.com/MarioCasanovacf/chambometro/internal/planner/sse"
)

// ErrForbidden is returned when a non-admin actor invokes an admin-only
// operation. Role checks live here, not only in the route layer, so a future
// transport cannot bypass them.
var ErrForbidden = errors.New("operation requires the admin role")

// Actor is the authenticated caller as the services see it.
type Actor struct {
	UserID string
	Admin  bool
}

// Services bundles the business layer.
type Services struct {
	Project  *ProjectService
	Roadmap  *RoadmapService
	Settings *SettingsService
	Export   *ExportService
}

// NewServices wires the services onto repositories, the SSE hub and the
// optional MinIO archive client.
func NewServices(repos *repository.Repositories, hub *sse.Hub, cfg *config.Config, logger *zap.Logger) *Services {
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("minio client init failed, export archive disabled", zap.Error(err))
			minioClient = nil
		}
	}

	projectSvc := NewProjectService(repos.Project, repos.Selection, hub, cfg, logger)
	return &Services{
		Project:  projectSvc,
		Roadmap:  NewRoadmapService(repos.Project, hub, logger),
		Settings: NewSettingsService(repos.Project, hub, logger),
		Export:   NewExportService(repos.Project, minioClient, cfg.MinIO.Bucket),
	}
}
