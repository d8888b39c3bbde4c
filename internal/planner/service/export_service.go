package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/repository"
	"github.com/MarioCasanovacf/chambometro/internal/planner/views"
)

// ErrArchiveDisabled is returned when no object store is configured.
var ErrArchiveDisabled = errors.New("export archive storage is not configured")

// ExportService renders a project's roadmap as an Excel workbook: one sheet
// per version with per-feature financials and a capacity footer, plus an
// optional archival copy in the object store.
type ExportService struct {
	projects    *repository.ProjectRepository
	minioClient *minio.Client
	bucket      string
}

func NewExportService(projects *repository.ProjectRepository, minioClient *minio.Client, bucket string) *ExportService {
	return &ExportService{projects: projects, minioClient: minioClient, bucket: bucket}
}

var exportHeader = []string{
	"Título", "Categoría", "Estado", "Responsable",
	"Esfuerzo Mín (d)", "Esfuerzo Máx (d)", "Impacto", "Complejidad",
	"OPEX Mín", "OPEX Máx", "COGS/mes", "Inicio", "Fin",
}

// Workbook builds the roadmap workbook for one project.
func (s *ExportService) Workbook(ctx context.Context, projectID string) (*excelize.File, string, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	settings := entity.Settings(project.Settings)
	roadmap := entity.Roadmap(project.Roadmap)
	loads := views.Capacity(roadmap)

	f := excelize.NewFile()
	for vi, version := range roadmap {
		sheet := sheetName(vi, version.Name)
		if vi == 0 {
			f.SetSheetName(f.GetSheetName(0), sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, "", fmt.Errorf("create sheet: %w", err)
			}
		}

		if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
			return nil, "", err
		}
		row := 2
		for _, feature := range version.Features {
			fin := entity.ComputeFinancials(feature.EffortMin, feature.EffortMax, feature.Complexity, settings)
			values := []interface{}{
				feature.Title, feature.Category, feature.DevStatus, feature.Assignee,
				feature.EffortMin, feature.EffortMax, feature.Impact, feature.Complexity,
				fin.OpexMin, fin.OpexMax, fin.Cogs, feature.StartDate, feature.EndDate,
			}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, "", err
			}
			row++
		}

		load := loads[vi]
		footer := []interface{}{
			fmt.Sprintf("Capacidad: %d / %d días", load.UsedEffort, load.Limit),
		}
		if load.Overloaded {
			footer = append(footer, fmt.Sprintf("SOBRECARGA: +%d días", load.OverloadAmount))
		}
		cell, _ := excelize.CoordinatesToCellName(1, row+1)
		if err := f.SetSheetRow(sheet, cell, &footer); err != nil {
			return nil, "", err
		}
	}

	filename := fmt.Sprintf("roadmap-%s-%s.xlsx", project.ID[:8], time.Now().Format("20060102"))
	return f, filename, nil
}

// Archive writes the workbook to the object store and returns the object
// name. Admin only.
func (s *ExportService) Archive(ctx context.Context, actor Actor, projectID string) (string, error) {
	if !actor.Admin {
		return "", ErrForbidden
	}
	if s.minioClient == nil {
		return "", ErrArchiveDisabled
	}
	f, filename, err := s.Workbook(ctx, projectID)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", fmt.Errorf("render workbook: %w", err)
	}
	objectName := fmt.Sprintf("exports/%s/%s", projectID, filename)
	_, err = s.minioClient.PutObject(ctx, s.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		return "", fmt.Errorf("archive workbook: %w", err)
	}
	return objectName, nil
}

// sheetName fits a version name into Excel's 31-char sheet name limit and
// keeps it unique by index.
func sheetName(idx int, name string) string {
	base := fmt.Sprintf("%d %s", idx+1, name)
	runes := []rune(base)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
