package handler

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/MarioCasanovacf/chambometro/internal/planner/testutil"
)

func TestExportDownload(t *testing.T) {
	r, db := setupAPITest(t)
	demo := seedDemo(t, db)

	w := testutil.DoRequest(r, "GET", "/api/v1/projects/"+demo.ID+"/export", nil, testutil.ViewerToken())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("no content disposition header")
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if n := len(f.GetSheetList()); n != 3 {
		t.Errorf("sheets = %d, want one per version (3)", n)
	}
}

func TestExportUnknownProject(t *testing.T) {
	r, _ := setupAPITest(t)
	w := testutil.DoRequest(r, "GET", "/api/v1/projects/nope/export", nil, testutil.ViewerToken())
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestExportArchiveWithoutStore(t *testing.T) {
	r, db := setupAPITest(t)
	demo := seedDemo(t, db)

	w := testutil.DoRequest(r, "POST", "/api/v1/projects/"+demo.ID+"/export/archive", nil, testutil.ViewerToken())
	if w.Code != http.StatusForbidden {
		t.Errorf("viewer status = %d, want 403", w.Code)
	}

	// no MinIO configured in tests
	w = testutil.DoRequest(r, "POST", "/api/v1/projects/"+demo.ID+"/export/archive", nil, testutil.AdminToken())
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503; body = %s", w.Code, w.Body.String())
	}
}
