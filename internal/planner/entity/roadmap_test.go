package entity

import (
	"errors"
	"testing"
	"time"
)

func testRoadmap() Roadmap {
	return Roadmap{
		{
			ID: "v1", Name: "v1.0", Color: "#0073ea", Limit: 100,
			Features: []Feature{
				{ID: "f1", Title: "Login", EffortMin: 5, EffortMax: 10, DevStatus: StatusDone, Assignee: "Ana"},
				{ID: "f2", Title: "Signup", EffortMin: 3, EffortMax: 6, DevStatus: StatusWorking, Assignee: "Luis"},
			},
		},
		{
			ID: "v2", Name: "v2.0", Color: "#00c875", Limit: 50,
			Features: []Feature{
				{ID: "f3", Title: "Reports", EffortMin: 8, EffortMax: 12, DevStatus: StatusNotStarted, Assignee: AssigneeNone},
			},
		},
	}
}

func TestMoveFeatureBetweenVersions(t *testing.T) {
	r := testRoadmap()
	out, err := r.MoveFeature(0, "f1", 1)
	if err != nil {
		t.Fatalf("MoveFeature: %v", err)
	}

	if len(out[0].Features) != 1 || out[0].Features[0].ID != "f2" {
		t.Errorf("source version = %v, want only f2", out[0].Features)
	}
	if len(out[1].Features) != 2 || out[1].Features[1].ID != "f1" {
		t.Errorf("target version = %v, want f3 then f1", out[1].Features)
	}
	// moved card keeps its fields
	if out[1].Features[1].Title != "Login" || out[1].Features[1].DevStatus != StatusDone {
		t.Errorf("moved feature lost fields: %+v", out[1].Features[1])
	}

	// original roadmap untouched
	if len(r[0].Features) != 2 || len(r[1].Features) != 1 {
		t.Errorf("original roadmap mutated: %v / %v", r[0].Features, r[1].Features)
	}
}

func TestMoveFeatureSameVersionReordersToEnd(t *testing.T) {
	r := testRoadmap()
	out, err := r.MoveFeature(0, "f1", 0)
	if err != nil {
		t.Fatalf("MoveFeature: %v", err)
	}
	if out[0].Features[0].ID != "f2" || out[0].Features[1].ID != "f1" {
		t.Errorf("order = [%s %s], want [f2 f1]", out[0].Features[0].ID, out[0].Features[1].ID)
	}
}

func TestMoveFeatureErrors(t *testing.T) {
	r := testRoadmap()
	if _, err := r.MoveFeature(5, "f1", 0); !errors.Is(err, ErrVersionIndex) {
		t.Errorf("bad source index: err = %v, want ErrVersionIndex", err)
	}
	if _, err := r.MoveFeature(0, "f1", -1); !errors.Is(err, ErrVersionIndex) {
		t.Errorf("bad target index: err = %v, want ErrVersionIndex", err)
	}
	if _, err := r.MoveFeature(1, "f1", 0); !errors.Is(err, ErrFeatureNotFound) {
		t.Errorf("feature in other version: err = %v, want ErrFeatureNotFound", err)
	}
}

func TestAddIdeaGoesToLastVersion(t *testing.T) {
	r := testRoadmap()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	out, err := r.AddIdea(IdeaInput{Title: "Dark mode", EffortMin: 10, EffortMax: 20, Impact: 5, Complexity: 5}, now)
	if err != nil {
		t.Fatalf("AddIdea: %v", err)
	}

	last := out[len(out)-1]
	f := last.Features[len(last.Features)-1]
	if f.Title != "Dark mode" {
		t.Errorf("title = %q", f.Title)
	}
	if f.Category != CategoryIdea {
		t.Errorf("category = %q, want %q", f.Category, CategoryIdea)
	}
	if f.DevStatus != StatusNotStarted {
		t.Errorf("status = %q, want %q", f.DevStatus, StatusNotStarted)
	}
	if f.Assignee != AssigneeNone {
		t.Errorf("assignee = %q, want %q", f.Assignee, AssigneeNone)
	}
	if f.Eisenhower != nil {
		t.Errorf("eisenhower = %v, want nil", *f.Eisenhower)
	}
	if f.StartDate != "2026-03-10" || f.EndDate != "2026-04-09" {
		t.Errorf("dates = %s..%s, want 2026-03-10..2026-04-09", f.StartDate, f.EndDate)
	}
	if f.ID == "" {
		t.Error("id not assigned")
	}

	if len(out[0].Features) != 2 {
		t.Errorf("idea landed in the wrong version")
	}
}

func TestAddIdeaBlankTitle(t *testing.T) {
	r := testRoadmap()
	if _, err := r.AddIdea(IdeaInput{Title: ""}, time.Now()); !errors.Is(err, ErrBlankTitle) {
		t.Errorf("err = %v, want ErrBlankTitle", err)
	}
}

func TestUpdateFeatureStatus(t *testing.T) {
	r := testRoadmap()
	out, err := r.UpdateFeatureStatus(0, "f2", StatusStuck)
	if err != nil {
		t.Fatalf("UpdateFeatureStatus: %v", err)
	}
	if out[0].Features[1].DevStatus != StatusStuck {
		t.Errorf("status = %q, want %q", out[0].Features[1].DevStatus, StatusStuck)
	}
	if r[0].Features[1].DevStatus != StatusWorking {
		t.Error("original roadmap mutated")
	}

	// version-scoped lookup: f3 lives in version 1
	if _, err := r.UpdateFeatureStatus(0, "f3", StatusDone); !errors.Is(err, ErrFeatureNotFound) {
		t.Errorf("err = %v, want ErrFeatureNotFound", err)
	}
}

func TestUpdateFeatureEisenhower(t *testing.T) {
	r := testRoadmap()

	q := QuadrantDoNow
	out, err := r.UpdateFeatureEisenhower("f3", &q)
	if err != nil {
		t.Fatalf("UpdateFeatureEisenhower: %v", err)
	}
	if out[1].Features[0].Eisenhower == nil || *out[1].Features[0].Eisenhower != QuadrantDoNow {
		t.Errorf("quadrant = %v, want %d", out[1].Features[0].Eisenhower, QuadrantDoNow)
	}

	// back to unclassified
	out, err = out.UpdateFeatureEisenhower("f3", nil)
	if err != nil {
		t.Fatalf("unclassify: %v", err)
	}
	if out[1].Features[0].Eisenhower != nil {
		t.Errorf("quadrant = %v, want nil", *out[1].Features[0].Eisenhower)
	}

	bad := 7
	if _, err := r.UpdateFeatureEisenhower("f3", &bad); !errors.Is(err, ErrBadQuadrant) {
		t.Errorf("err = %v, want ErrBadQuadrant", err)
	}
	if _, err := r.UpdateFeatureEisenhower("missing", &q); !errors.Is(err, ErrFeatureNotFound) {
		t.Errorf("err = %v, want ErrFeatureNotFound", err)
	}
}

func TestUpdateFeatureDates(t *testing.T) {
	r := testRoadmap()
	out, err := r.UpdateFeatureDates(0, "f1", "2026-05-01", "2026-05-15")
	if err != nil {
		t.Fatalf("UpdateFeatureDates: %v", err)
	}
	if out[0].Features[0].StartDate != "2026-05-01" || out[0].Features[0].EndDate != "2026-05-15" {
		t.Errorf("dates = %s..%s", out[0].Features[0].StartDate, out[0].Features[0].EndDate)
	}
}

func TestDeleteFeature(t *testing.T) {
	r := testRoadmap()
	out, err := r.DeleteFeature(0, "f1")
	if err != nil {
		t.Fatalf("DeleteFeature: %v", err)
	}
	if len(out[0].Features) != 1 || out[0].Features[0].ID != "f2" {
		t.Errorf("features = %v, want only f2", out[0].Features)
	}
	if len(r[0].Features) != 2 {
		t.Error("original roadmap mutated")
	}
	if _, err := out.DeleteFeature(0, "f1"); !errors.Is(err, ErrFeatureNotFound) {
		t.Errorf("second delete: err = %v, want ErrFeatureNotFound", err)
	}
}

func TestAddVersion(t *testing.T) {
	r := testRoadmap()
	out, err := r.AddVersion("v3.0", "#a25ddc", 80)
	if err != nil {
		t.Fatalf("AddVersion: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	v := out[2]
	if v.Name != "v3.0" || v.Color != "#a25ddc" || v.Limit != 80 {
		t.Errorf("version = %+v", v)
	}
	if v.Features == nil || len(v.Features) != 0 {
		t.Errorf("features = %v, want empty slice", v.Features)
	}

	if _, err := r.AddVersion("", "#fff", 10); !errors.Is(err, ErrBlankTitle) {
		t.Errorf("err = %v, want ErrBlankTitle", err)
	}
}

func TestEditVersionPartialPatch(t *testing.T) {
	r := testRoadmap()
	limit := 75
	out, err := r.EditVersion(0, VersionPatch{Limit: &limit})
	if err != nil {
		t.Fatalf("EditVersion: %v", err)
	}
	if out[0].Limit != 75 {
		t.Errorf("limit = %d, want 75", out[0].Limit)
	}
	if out[0].Name != "v1.0" || out[0].Color != "#0073ea" {
		t.Errorf("untouched fields changed: %+v", out[0])
	}
	if r[0].Limit != 100 {
		t.Error("original roadmap mutated")
	}
}

func TestDeleteVersion(t *testing.T) {
	r := testRoadmap()
	out, err := r.DeleteVersion(0)
	if err != nil {
		t.Fatalf("DeleteVersion: %v", err)
	}
	if len(out) != 1 || out[0].ID != "v2" {
		t.Errorf("roadmap = %v, want only v2", out)
	}
	// features of the deleted version are gone with it
	if out.FeatureCount() != 1 {
		t.Errorf("feature count = %d, want 1", out.FeatureCount())
	}

	if _, err := out.DeleteVersion(0); !errors.Is(err, ErrLastVersion) {
		t.Errorf("err = %v, want ErrLastVersion", err)
	}
	if _, err := r.DeleteVersion(9); !errors.Is(err, ErrVersionIndex) {
		t.Errorf("err = %v, want ErrVersionIndex", err)
	}
}

func TestFindFeature(t *testing.T) {
	r := testRoadmap()
	vi, f, ok := r.FindFeature("f3")
	if !ok || vi != 1 || f.Title != "Reports" {
		t.Errorf("FindFeature = (%d, %+v, %v)", vi, f, ok)
	}
	if _, _, ok := r.FindFeature("nope"); ok {
		t.Error("found a feature that does not exist")
	}
}
