/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// measurementColumns is the closed set of per-kind value columns on the
// measurements table. Column names are interpolated into queries and must
// never come from user input.
var measurementColumns = map[string]bool{
	"weight_kg":             true,
	"height_cm":             true,
	"head_circumference_cm": true,
}

// ListMeasurementValues returns the (recorded_at, value) pairs stored for
// one patient in the given measurement column, in insertion order. Both
// fields are nullable and returned as-is; the growth engine decides what
// to keep.
func ListMeasurementValues(ctx context.Context, patientID int64, column string) ([]MeasurementValue, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}
	if !measurementColumns[column] {
		return nil, ErrUnknownMeasurementColumn
	}

	query := fmt.Sprintf(`
		SELECT recorded_at, %s
		FROM measurements
		WHERE patient_id = $1
		ORDER BY id ASC
	`, pgx.Identifier{column}.Sanitize())

	rows, err := pool.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	defer rows.Close()

	var values []MeasurementValue
	for rows.Next() {
		var value MeasurementValue
		if err := rows.Scan(&value.RecordedAt, &value.Value); err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating measurements: %w", err)
	}

	return values, nil
}

// ListMeasurements returns every raw measurement row for a patient, in
// insertion order.
func ListMeasurements(ctx context.Context, patientID int64) ([]Measurement, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, patient_id, recorded_at, weight_kg, height_cm, head_circumference_cm, created_at
		FROM measurements
		WHERE patient_id = $1
		ORDER BY id ASC
	`

	rows, err := pool.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	defer rows.Close()

	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		err := rows.Scan(
			&m.ID, &m.PatientID, &m.RecordedAt,
			&m.WeightKG, &m.HeightCM, &m.HeadCircumferenceCM,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}
		measurements = append(measurements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating measurements: %w", err)
	}

	return measurements, nil
}
