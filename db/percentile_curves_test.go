// SPDX-FileCopyrightText: 2026 Teo Amaral
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"io/fs"
	"testing"
)

func TestPercentileCurveLookup(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	if err := SyncPercentileCurves(ctx); err != nil {
		t.Fatalf("SyncPercentileCurves failed: %v", err)
	}

	if _, err := fs.ReadDir(GetEmbeddedMigrations(), "migrations"); err != nil {
		t.Fatalf("expected embedded migrations: %v", err)
	}

	defs := GetPercentileCurveDefinitions()
	if len(defs) == 0 {
		t.Fatalf("expected percentile curve definitions")
	}

	first := defs[0]
	curves, err := GetPercentileCurves(ctx, first.Kind, first.Sex)
	if err != nil {
		t.Fatalf("GetPercentileCurves failed: %v", err)
	}
	if len(curves) == 0 {
		t.Fatalf("expected percentile curve rows")
	}
	if len(curves[0].Points) != len(curveAges) {
		t.Fatalf("expected %d points per curve, got %d", len(curveAges), len(curves[0].Points))
	}

	// Syncing twice must not duplicate rows.
	if err := SyncPercentileCurves(ctx); err != nil {
		t.Fatalf("second SyncPercentileCurves failed: %v", err)
	}
	again, err := GetPercentileCurves(ctx, first.Kind, first.Sex)
	if err != nil {
		t.Fatalf("GetPercentileCurves failed: %v", err)
	}
	if len(again) != len(curves) {
		t.Fatalf("expected %d curves after resync, got %d", len(curves), len(again))
	}
}
