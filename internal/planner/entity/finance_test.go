package entity

import "testing"

func testSettings() Settings {
	return Settings{
		OpexCategories: []CostCategory{
			{ID: "o1", Name: "Equipo de desarrollo", Amount: 500},
			{ID: "o2", Name: "Consultores", Amount: 250},
		},
		CogsCategories: []CostCategory{
			{ID: "c1", Name: "Infraestructura", Amount: 100},
			{ID: "c2", Name: "Licencias", Amount: 50},
		},
		CogsMultiplier: 1.5,
	}
}

func TestTotalOpex(t *testing.T) {
	if got := TotalOpex(testSettings()); got != 750 {
		t.Errorf("TotalOpex = %v, want 750", got)
	}
	if got := TotalOpex(Settings{}); got != 0 {
		t.Errorf("TotalOpex empty = %v, want 0", got)
	}
}

func TestTotalBaseCogs(t *testing.T) {
	if got := TotalBaseCogs(testSettings()); got != 150 {
		t.Errorf("TotalBaseCogs = %v, want 150", got)
	}
}

func TestComputeFinancials(t *testing.T) {
	s := testSettings()

	// 15-30 days at 750/day; cogs = round(150 * 1.5^6) = round(1708.59) = 1709
	got := ComputeFinancials(15, 30, 6, s)
	if got.OpexMin != 11250 {
		t.Errorf("OpexMin = %v, want 11250", got.OpexMin)
	}
	if got.OpexMax != 22500 {
		t.Errorf("OpexMax = %v, want 22500", got.OpexMax)
	}
	if got.Cogs != 1709 {
		t.Errorf("Cogs = %v, want 1709", got.Cogs)
	}
}

func TestComputeFinancialsZeroComplexity(t *testing.T) {
	// multiplier^0 = 1, so cogs equals the base
	got := ComputeFinancials(1, 2, 0, testSettings())
	if got.Cogs != 150 {
		t.Errorf("Cogs = %v, want 150", got.Cogs)
	}
}
