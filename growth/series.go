/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

// DaysPerMonth is the average Gregorian month length used to convert
// elapsed days into age-in-months, independent of calendar-specific day
// counts.
const DaysPerMonth = 30.4375

// Tolerances for treating a baseline point as a duplicate of an existing
// point. Both must hold for a point to be suppressed.
const (
	AgeTolerance   = 0.02
	ValueTolerance = 0.001
)

// DischargeAnchorMonths is the fixed age the discharge-weight baseline is
// plotted at, an approximate two-day offset so it stays visually distinct
// from the birth point.
const DischargeAnchorMonths = 0.07

// Point is one (age, value) observation in a growth series.
type Point struct {
	AgeMonths float64 `json:"age_months"`
	Value     float64 `json:"value"`
}

// Series is the growth trajectory for one patient and one measurement
// kind, sorted ascending by age once returned by the engine.
type Series []Point

// hasPointNear reports whether the series already contains a point within
// both tolerances of the given age and value.
func (s Series) hasPointNear(ageMonths, value float64) bool {
	for _, p := range s {
		if abs(p.AgeMonths-ageMonths) <= AgeTolerance && abs(p.Value-value) <= ValueTolerance {
			return true
		}
	}
	return false
}

// hasPointExact reports whether the series already contains a point with
// exactly the given age and value.
func (s Series) hasPointExact(ageMonths, value float64) bool {
	for _, p := range s {
		if p.AgeMonths == ageMonths && p.Value == value {
			return true
		}
	}
	return false
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
