package handler

import (
	"net/http"
	"testing"

	"github.com/MarioCasanovacf/chambometro/internal/planner/testutil"
)

func TestViewsEndpoints(t *testing.T) {
	r, db := setupAPITest(t)
	demo := seedDemo(t, db)
	base := "/api/v1/projects/" + demo.ID + "/views"

	t.Run("eisenhower", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", base+"/eisenhower", nil, testutil.ViewerToken())
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		data := testutil.ParseResponse(w)["data"].(map[string]interface{})
		// demo features all start unclassified
		if n := len(data["unclassified"].([]interface{})); n != 7 {
			t.Errorf("unclassified = %d, want 7", n)
		}
		if data["assignee"] != "Todos" {
			t.Errorf("assignee = %v", data["assignee"])
		}
	})

	t.Run("eisenhower filtered", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", base+"/eisenhower?assignee=Jorge", nil, testutil.ViewerToken())
		data := testutil.ParseResponse(w)["data"].(map[string]interface{})
		if n := len(data["unclassified"].([]interface{})); n != 2 {
			t.Errorf("Jorge's features = %d, want 2", n)
		}
	})

	t.Run("kanban", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", base+"/kanban", nil, testutil.ViewerToken())
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		lanes := testutil.ParseResponse(w)["data"].([]interface{})
		if len(lanes) != 7 {
			t.Errorf("lanes = %d, want 7", len(lanes))
		}
	})

	t.Run("gantt", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", base+"/gantt", nil, testutil.ViewerToken())
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		data := testutil.ParseResponse(w)["data"].(map[string]interface{})
		if n := len(data["bars"].([]interface{})); n != 7 {
			t.Errorf("bars = %d, want 7", n)
		}
	})

	t.Run("capacity", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", base+"/capacity", nil, testutil.ViewerToken())
		loads := testutil.ParseResponse(w)["data"].([]interface{})
		if len(loads) != 3 {
			t.Fatalf("loads = %d, want 3", len(loads))
		}
		// v2.0 carries 130 min days against a 150 limit
		v2 := loads[2].(map[string]interface{})
		if v2["overloaded"].(bool) {
			t.Errorf("v2.0 marked overloaded: %+v", v2)
		}
	})

	t.Run("assignees", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", base+"/assignees", nil, testutil.ViewerToken())
		names := testutil.ParseResponse(w)["data"].([]interface{})
		if names[0] != "Todos" {
			t.Errorf("first assignee = %v, want Todos", names[0])
		}
		if len(names) != 7 {
			t.Errorf("assignees = %d, want 7", len(names))
		}
	})

	t.Run("matrix", func(t *testing.T) {
		w := testutil.DoRequest(r, "GET", base+"/matrix", nil, testutil.ViewerToken())
		rows := testutil.ParseResponse(w)["data"].([]interface{})
		if len(rows) != 7 {
			t.Fatalf("rows = %d, want 7", len(rows))
		}
		first := rows[0].(map[string]interface{})
		fin := first["financials"].(map[string]interface{})
		// OAuth2 card: 15-30 days at 500/day, cogs 100 * 1.5^6
		if fin["opex_min"].(float64) != 7500 || fin["opex_max"].(float64) != 15000 {
			t.Errorf("opex = %v-%v, want 7500-15000", fin["opex_min"], fin["opex_max"])
		}
		if fin["cogs"].(float64) != 1139 {
			t.Errorf("cogs = %v, want 1139", fin["cogs"])
		}
	})
}

func TestFeatureFinancials(t *testing.T) {
	r, db := setupAPITest(t)
	demo := seedDemo(t, db)
	fid := demo.Roadmap[0].Features[0].ID

	w := testutil.DoRequest(r, "GET",
		"/api/v1/projects/"+demo.ID+"/features/"+fid+"/financials", nil, testutil.ViewerToken())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	feature := data["feature"].(map[string]interface{})
	if feature["id"] != fid || feature["version_index"].(float64) != 0 {
		t.Errorf("feature = %+v", feature)
	}
	fin := data["financials"].(map[string]interface{})
	if fin["opex_min"].(float64) != 7500 || fin["opex_max"].(float64) != 15000 {
		t.Errorf("opex = %v-%v, want 7500-15000", fin["opex_min"], fin["opex_max"])
	}
	if fin["cogs"].(float64) != 1139 {
		t.Errorf("cogs = %v, want 1139", fin["cogs"])
	}

	w = testutil.DoRequest(r, "GET",
		"/api/v1/projects/"+demo.ID+"/features/nope/financials", nil, testutil.ViewerToken())
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown feature status = %d, want 404", w.Code)
	}
}

func TestViewsUnknownProject(t *testing.T) {
	r, _ := setupAPITest(t)
	w := testutil.DoRequest(r, "GET", "/api/v1/projects/nope/views/kanban", nil, testutil.ViewerToken())
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
