package entity

import "math"

// Financials is the cost estimate of a single feature. OPEX values stay
// unrounded; display formatting truncates at render time.
type Financials struct {
	OpexMin float64 `json:"opex_min"`
	OpexMax float64 `json:"opex_max"`
	Cogs    int64   `json:"cogs"`
}

// TotalOpex is the daily cost rate: the sum of all OPEX category amounts.
// Recomputed on every read because categories mutate freely.
func TotalOpex(s Settings) float64 {
	total := 0.0
	for _, c := range s.OpexCategories {
		total += c.Amount
	}
	return total
}

// TotalBaseCogs is the base monthly infrastructure cost: the sum of all COGS
// category amounts.
func TotalBaseCogs(s Settings) float64 {
	total := 0.0
	for _, c := range s.CogsCategories {
		total += c.Amount
	}
	return total
}

// ComputeFinancials maps effort and complexity to a cost estimate:
//
//	opex  = effort days x daily cost rate (a min/max range)
//	cogs  = round(baseCogs x cogsMultiplier^complexity)
//
// Impact deliberately plays no part in the formula; it only drives display
// and classification.
func ComputeFinancials(effortMin, effortMax, complexity int, s Settings) Financials {
	costPerDay := TotalOpex(s)
	baseCogs := TotalBaseCogs(s)
	return Financials{
		OpexMin: float64(effortMin) * costPerDay,
		OpexMax: float64(effortMax) * costPerDay,
		Cogs:    int64(math.Round(baseCogs * math.Pow(s.CogsMultiplier, float64(complexity)))),
	}
}
