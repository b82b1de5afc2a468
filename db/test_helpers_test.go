// SPDX-FileCopyrightText: 2026 Teo Amaral
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"testing"
)

func testContext() context.Context {
	return context.Background()
}

func stringPtr(value string) *string {
	return &value
}

// The application only reads growth records; tests seed rows directly.

func mustCreatePatient(t *testing.T, name string, dob, sex *string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(testContext(),
		`INSERT INTO patients (name, dob, sex) VALUES ($1, $2, $3) RETURNING id`,
		name, dob, sex,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create patient: %v", err)
	}

	return id
}

func mustAddMeasurement(t *testing.T, patientID int64, recordedAt *string, column string, value float64) {
	t.Helper()

	if !measurementColumns[column] {
		t.Fatalf("unknown measurement column %q", column)
	}

	query := `INSERT INTO measurements (patient_id, recorded_at, ` + column + `) VALUES ($1, $2, $3)`
	if _, err := pool.Exec(testContext(), query, patientID, recordedAt, value); err != nil {
		t.Fatalf("failed to add measurement: %v", err)
	}
}

func mustAddNullMeasurement(t *testing.T, patientID int64, recordedAt *string) {
	t.Helper()

	query := `INSERT INTO measurements (patient_id, recorded_at) VALUES ($1, $2)`
	if _, err := pool.Exec(testContext(), query, patientID, recordedAt); err != nil {
		t.Fatalf("failed to add measurement: %v", err)
	}
}

func mustSetPerinatalRecord(t *testing.T, patientID int64, birthWeightG, dischargeWeightG *int64, birthLengthCM, birthHeadCM *float64) {
	t.Helper()

	query := `
		INSERT INTO perinatal_records (patient_id, birth_weight_g, discharge_weight_g, birth_length_cm, birth_head_circumference_cm)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := pool.Exec(testContext(), query, patientID, birthWeightG, dischargeWeightG, birthLengthCM, birthHeadCM); err != nil {
		t.Fatalf("failed to set perinatal record: %v", err)
	}
}

func int64Ptr(value int64) *int64 {
	return &value
}

func float64Ptr(value float64) *float64 {
	return &value
}
