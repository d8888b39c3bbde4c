package entity

import (
	"errors"
	"testing"
)

func TestAddCategory(t *testing.T) {
	s := testSettings()
	out, err := s.AddCategory(KindOpex, "QA externo", 120)
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if len(out.OpexCategories) != 3 {
		t.Fatalf("len = %d, want 3", len(out.OpexCategories))
	}
	added := out.OpexCategories[2]
	if added.Name != "QA externo" || added.Amount != 120 || added.ID == "" {
		t.Errorf("added = %+v", added)
	}
	if len(s.OpexCategories) != 2 {
		t.Error("original settings mutated")
	}

	if _, err := s.AddCategory("capex", "x", 1); !errors.Is(err, ErrBadCategoryKind) {
		t.Errorf("err = %v, want ErrBadCategoryKind", err)
	}
}

func TestUpdateCategory(t *testing.T) {
	s := testSettings()
	amount := 80.0
	out, err := s.UpdateCategory(KindCogs, "c2", CategoryPatch{Amount: &amount})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if out.CogsCategories[1].Amount != 80 {
		t.Errorf("amount = %v, want 80", out.CogsCategories[1].Amount)
	}
	if out.CogsCategories[1].Name != "Licencias" {
		t.Errorf("name changed: %q", out.CogsCategories[1].Name)
	}
	if s.CogsCategories[1].Amount != 50 {
		t.Error("original settings mutated")
	}

	if _, err := s.UpdateCategory(KindCogs, "missing", CategoryPatch{}); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestRemoveCategory(t *testing.T) {
	s := testSettings()
	out, err := s.RemoveCategory(KindOpex, "o1")
	if err != nil {
		t.Fatalf("RemoveCategory: %v", err)
	}
	if len(out.OpexCategories) != 1 || out.OpexCategories[0].ID != "o2" {
		t.Errorf("categories = %v, want only o2", out.OpexCategories)
	}
	// daily rate drops accordingly
	if got := TotalOpex(out); got != 250 {
		t.Errorf("TotalOpex = %v, want 250", got)
	}

	if _, err := s.RemoveCategory(KindOpex, "missing"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestSetCogsMultiplier(t *testing.T) {
	s := testSettings()
	out := s.SetCogsMultiplier(2.0)
	if out.CogsMultiplier != 2.0 {
		t.Errorf("multiplier = %v, want 2.0", out.CogsMultiplier)
	}
	if s.CogsMultiplier != 1.5 {
		t.Error("original settings mutated")
	}
}
