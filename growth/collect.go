/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	errUnknownKind = errors.New("unknown measurement kind")
	errMissingDOB  = errors.New("date of birth missing or unparseable")
)

// collect builds the unsorted working set of points from a patient's raw
// measurement rows. A returned error marks the whole call as failed (no
// series can be computed); individual malformed rows are dropped and
// logged without affecting the rest.
func collect(ctx context.Context, store Store, patient *PatientRecord, kind MeasurementKind) (Series, error) {
	if !kind.Valid() {
		return nil, errUnknownKind
	}

	dob := ParseTimestamp(patient.DOB)
	if dob == nil {
		return nil, errMissingDOB
	}

	rows, err := store.ListMeasurements(ctx, patient.ID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}

	var points Series
	for _, row := range rows {
		if row.Value == nil {
			continue
		}

		value := *row.Value
		if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
			logger.Debug("Dropping measurement with invalid value",
				"patient_id", patient.ID, "kind", kind, "value", value)
			continue
		}

		recordedAt := ParseTimestamp(row.RecordedAt)
		if recordedAt == nil {
			logger.Debug("Dropping measurement with unparseable timestamp",
				"patient_id", patient.ID, "kind", kind, "recorded_at", row.RecordedAt)
			continue
		}

		ageDays := recordedAt.Sub(*dob).Seconds() / 86400
		ageMonths := ageDays / DaysPerMonth
		if ageMonths < 0 {
			// A timestamp before the date of birth is almost certainly a
			// data-entry mistake; the point stays, pinned to age zero.
			logger.Warn("Clamping negative age to zero",
				"patient_id", patient.ID, "kind", kind, "age_months", ageMonths)
			ageMonths = 0.0
		}

		points = append(points, Point{AgeMonths: ageMonths, Value: value})
	}

	return points, nil
}
