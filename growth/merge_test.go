// SPDX-FileCopyrightText: 2026 Teo Amaral
// SPDX-License-Identifier: Apache-2.0

package growth

import (
	"math"
	"sort"
	"testing"
)

func assertSorted(t *testing.T, series Series) {
	t.Helper()
	if !sort.SliceIsSorted(series, func(i, j int) bool {
		return series[i].AgeMonths < series[j].AgeMonths
	}) {
		t.Fatalf("expected series sorted by age, got %v", series)
	}
}

func TestMergeWeightBaselines(t *testing.T) {
	series := Series{{AgeMonths: 1.0, Value: 4.5}}
	baseline := &PerinatalBaseline{
		BirthWeightG:     intPtr(3400),
		DischargeWeightG: intPtr(3250),
	}

	merged := Merge(series, KindWeight, baseline)
	if len(merged) != 3 {
		t.Fatalf("expected 3 points, got %d: %v", len(merged), merged)
	}

	if merged[0].AgeMonths != 0.0 || merged[0].Value != 3.4 {
		t.Fatalf("expected birth point (0, 3.4), got %v", merged[0])
	}
	if merged[1].AgeMonths != DischargeAnchorMonths || merged[1].Value != 3.25 {
		t.Fatalf("expected discharge point (%v, 3.25), got %v", DischargeAnchorMonths, merged[1])
	}
	assertSorted(t, merged)
}

func TestMergeSuppressesDuplicateBirthWeight(t *testing.T) {
	// A manual observation at age 0 matching the birth weight within
	// tolerance must not be doubled by the baseline.
	series := Series{{AgeMonths: 0.0, Value: 3.2}}
	baseline := &PerinatalBaseline{BirthWeightG: intPtr(3200)}

	merged := Merge(series, KindWeight, baseline)
	if len(merged) != 1 {
		t.Fatalf("expected exactly one point near age 0, got %d: %v", len(merged), merged)
	}
}

func TestMergeKeepsDistinctBirthWeight(t *testing.T) {
	series := Series{{AgeMonths: 0.0, Value: 3.6}}
	baseline := &PerinatalBaseline{BirthWeightG: intPtr(3200)}

	merged := Merge(series, KindWeight, baseline)
	if len(merged) != 2 {
		t.Fatalf("expected 2 points, got %d: %v", len(merged), merged)
	}
}

func TestMergeIgnoresNonPositiveBaselines(t *testing.T) {
	baseline := &PerinatalBaseline{
		BirthWeightG:             intPtr(0),
		DischargeWeightG:         intPtr(-100),
		BirthLengthCM:            floatPtr(0),
		BirthHeadCircumferenceCM: floatPtr(-1),
	}

	for _, kind := range Kinds() {
		if merged := Merge(Series{}, kind, baseline); len(merged) != 0 {
			t.Fatalf("expected no %q baseline points, got %v", kind, merged)
		}
	}
}

func TestMergeHeightBaseline(t *testing.T) {
	// Height has no tolerance check; a near-identical manual point still
	// coexists with the birth length.
	series := Series{{AgeMonths: 0.0, Value: 50.0}}
	baseline := &PerinatalBaseline{BirthLengthCM: floatPtr(50.0004)}

	merged := Merge(series, KindHeight, baseline)
	if len(merged) != 2 {
		t.Fatalf("expected 2 points, got %d: %v", len(merged), merged)
	}
}

func TestMergeHeadCircumferenceBaseline(t *testing.T) {
	baseline := &PerinatalBaseline{BirthHeadCircumferenceCM: floatPtr(34.5)}

	merged := Merge(Series{{AgeMonths: 2.1, Value: 38.0}}, KindHeadCircumference, baseline)
	if len(merged) != 2 {
		t.Fatalf("expected 2 points, got %d: %v", len(merged), merged)
	}
	if merged[0].AgeMonths != 0.0 || merged[0].Value != 34.5 {
		t.Fatalf("expected birth point (0, 34.5), got %v", merged[0])
	}
}

func TestMergeUnknownKindOnlySorts(t *testing.T) {
	series := Series{{AgeMonths: 3.0, Value: 6.0}, {AgeMonths: 1.0, Value: 4.5}}
	baseline := &PerinatalBaseline{BirthWeightG: intPtr(3400)}

	merged := Merge(series, MeasurementKind("invalid_kind"), baseline)
	if len(merged) != 2 {
		t.Fatalf("expected no baseline injection, got %d points", len(merged))
	}
	assertSorted(t, merged)
}

func TestMergeNilBaseline(t *testing.T) {
	series := Series{{AgeMonths: 2.0, Value: 5.0}, {AgeMonths: 1.0, Value: 4.5}}

	merged := Merge(series, KindWeight, nil)
	if len(merged) != 2 {
		t.Fatalf("expected 2 points, got %d", len(merged))
	}
	assertSorted(t, merged)
}

func TestMergeIsPure(t *testing.T) {
	series := Series{{AgeMonths: 1.0, Value: 4.5}}
	baseline := &PerinatalBaseline{BirthWeightG: intPtr(3400)}

	Merge(series, KindWeight, baseline)
	if len(series) != 1 {
		t.Fatalf("expected input series untouched, got %v", series)
	}
}

func TestMergeIdempotent(t *testing.T) {
	baseline := &PerinatalBaseline{
		BirthWeightG:             intPtr(3400),
		DischargeWeightG:         intPtr(3250),
		BirthLengthCM:            floatPtr(50.0),
		BirthHeadCircumferenceCM: floatPtr(34.5),
	}

	for _, kind := range Kinds() {
		series := Series{{AgeMonths: 1.5, Value: 5.0}}
		once := Merge(series, kind, baseline)
		twice := Merge(once, kind, baseline)

		if len(once) != len(twice) {
			t.Fatalf("merge not idempotent for %q: %v vs %v", kind, once, twice)
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Fatalf("merge not idempotent for %q at %d: %v vs %v", kind, i, once[i], twice[i])
			}
		}
	}
}

func TestMergeStableSortKeepsTieOrder(t *testing.T) {
	series := Series{
		{AgeMonths: 2.0, Value: 10.0},
		{AgeMonths: 1.0, Value: 1.0},
		{AgeMonths: 1.0, Value: 2.0},
		{AgeMonths: 1.0, Value: 3.0},
	}

	merged := Merge(series, KindWeight, nil)
	want := []float64{1.0, 2.0, 3.0, 10.0}
	for i, v := range want {
		if merged[i].Value != v {
			t.Fatalf("expected values %v, got %v", want, merged)
		}
	}
}

func TestMergedValuesStayFinite(t *testing.T) {
	baseline := &PerinatalBaseline{BirthWeightG: intPtr(3400)}
	merged := Merge(Series{{AgeMonths: 1.0, Value: 4.5}}, KindWeight, baseline)

	for _, p := range merged {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) || p.Value <= 0 {
			t.Fatalf("expected finite positive values, got %v", p)
		}
		if p.AgeMonths < 0 {
			t.Fatalf("expected non-negative ages, got %v", p)
		}
	}
}
