/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "sort"

// Merge returns a new series with the perinatal baseline points for the
// given kind added, then sorted ascending by age. It is a pure function of
// its inputs and idempotent: merging an already-merged series again yields
// the same result.
//
// Weight gets up to two baseline points (birth at age 0, discharge at the
// fixed anchor), each suppressed when an existing point lies within the
// age and value tolerances. Height and head circumference get a single
// birth point with no tolerance check against manual observations; only an
// exactly identical point (a baseline already merged in) suppresses it.
func Merge(series Series, kind MeasurementKind, baseline *PerinatalBaseline) Series {
	merged := make(Series, len(series))
	copy(merged, series)

	if baseline != nil {
		switch kind {
		case KindWeight:
			if baseline.BirthWeightG != nil && *baseline.BirthWeightG > 0 {
				kg := float64(*baseline.BirthWeightG) / 1000.0
				if !merged.hasPointNear(0.0, kg) {
					merged = append(merged, Point{AgeMonths: 0.0, Value: kg})
				}
			}
			if baseline.DischargeWeightG != nil && *baseline.DischargeWeightG > 0 {
				kg := float64(*baseline.DischargeWeightG) / 1000.0
				if !merged.hasPointNear(DischargeAnchorMonths, kg) {
					merged = append(merged, Point{AgeMonths: DischargeAnchorMonths, Value: kg})
				}
			}
		case KindHeight:
			if baseline.BirthLengthCM != nil && *baseline.BirthLengthCM > 0 {
				if !merged.hasPointExact(0.0, *baseline.BirthLengthCM) {
					merged = append(merged, Point{AgeMonths: 0.0, Value: *baseline.BirthLengthCM})
				}
			}
		case KindHeadCircumference:
			if baseline.BirthHeadCircumferenceCM != nil && *baseline.BirthHeadCircumferenceCM > 0 {
				if !merged.hasPointExact(0.0, *baseline.BirthHeadCircumferenceCM) {
					merged = append(merged, Point{AgeMonths: 0.0, Value: *baseline.BirthHeadCircumferenceCM})
				}
			}
		}
	}

	// The single sort point for the whole pipeline; ties keep input order.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].AgeMonths < merged[j].AgeMonths
	})

	return merged
}
