package handler

import (
	"net/http"
	"testing"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/testutil"
)

func TestSettingsGetComputesTotals(t *testing.T) {
	r, db := setupAPITest(t)
	demo := seedDemo(t, db)

	w := testutil.DoRequest(r, "GET", "/api/v1/projects/"+demo.ID+"/settings", nil, testutil.ViewerToken())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["costPerDay"].(float64) != 500 {
		t.Errorf("costPerDay = %v, want 500", data["costPerDay"])
	}
	if data["baseCogs"].(float64) != 100 {
		t.Errorf("baseCogs = %v, want 100", data["baseCogs"])
	}
}

func TestSettingsCategoryCRUD(t *testing.T) {
	r, db := setupAPITest(t)
	demo := seedDemo(t, db)
	base := "/api/v1/projects/" + demo.ID + "/settings/categories/opex"

	// viewers cannot touch settings
	w := testutil.DoRequest(r, "POST", base,
		map[string]interface{}{"name": "QA externo", "amount": 200}, testutil.ViewerToken())
	if w.Code != http.StatusForbidden {
		t.Errorf("viewer add status = %d, want 403", w.Code)
	}

	w = testutil.DoRequest(r, "POST", base,
		map[string]interface{}{"name": "QA externo", "amount": 200}, testutil.AdminToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body = %s", w.Code, w.Body.String())
	}

	var stored entity.Project
	db.First(&stored, "id = ?", demo.ID)
	cats := entity.Settings(stored.Settings).OpexCategories
	if len(cats) != 2 {
		t.Fatalf("opex categories = %d, want 2", len(cats))
	}
	catID := cats[1].ID

	// daily rate now includes the new pool entry
	w = testutil.DoRequest(r, "GET", "/api/v1/projects/"+demo.ID+"/settings", nil, testutil.ViewerToken())
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["costPerDay"].(float64) != 700 {
		t.Errorf("costPerDay = %v, want 700", data["costPerDay"])
	}

	w = testutil.DoRequest(r, "PATCH", base+"/"+catID,
		map[string]interface{}{"amount": 300}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	db.First(&stored, "id = ?", demo.ID)
	if got := entity.Settings(stored.Settings).OpexCategories[1].Amount; got != 300 {
		t.Errorf("amount = %v, want 300", got)
	}

	w = testutil.DoRequest(r, "DELETE", base+"/"+catID, nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("remove status = %d, body = %s", w.Code, w.Body.String())
	}
	db.First(&stored, "id = ?", demo.ID)
	if got := len(entity.Settings(stored.Settings).OpexCategories); got != 1 {
		t.Errorf("opex categories = %d, want 1", got)
	}

	w = testutil.DoRequest(r, "DELETE", base+"/"+catID, nil, testutil.AdminToken())
	if w.Code != http.StatusNotFound {
		t.Errorf("remove again status = %d, want 404", w.Code)
	}
}

func TestSettingsBadCategoryKind(t *testing.T) {
	r, db := setupAPITest(t)
	demo := seedDemo(t, db)

	w := testutil.DoRequest(r, "POST", "/api/v1/projects/"+demo.ID+"/settings/categories/capex",
		map[string]interface{}{"name": "x", "amount": 1}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSetCogsMultiplier(t *testing.T) {
	r, db := setupAPITest(t)
	demo := seedDemo(t, db)
	path := "/api/v1/projects/" + demo.ID + "/settings/cogs-multiplier"

	w := testutil.DoRequest(r, "PUT", path,
		map[string]interface{}{"value": 2.0}, testutil.ViewerToken())
	if w.Code != http.StatusForbidden {
		t.Errorf("viewer status = %d, want 403", w.Code)
	}

	w = testutil.DoRequest(r, "PUT", path,
		map[string]interface{}{"value": 2.0}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var stored entity.Project
	db.First(&stored, "id = ?", demo.ID)
	if got := entity.Settings(stored.Settings).CogsMultiplier; got != 2.0 {
		t.Errorf("multiplier = %v, want 2.0", got)
	}
}
