/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetPerinatalRecord returns a patient's perinatal baseline row, or nil
// when none was recorded. At most one row exists per patient.
func GetPerinatalRecord(ctx context.Context, patientID int64) (*PerinatalRecord, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var record PerinatalRecord
	query := `
		SELECT patient_id, birth_weight_g, discharge_weight_g,
		       birth_length_cm, birth_head_circumference_cm, created_at
		FROM perinatal_records
		WHERE patient_id = $1
	`

	err := pool.QueryRow(ctx, query, patientID).Scan(
		&record.PatientID, &record.BirthWeightG, &record.DischargeWeightG,
		&record.BirthLengthCM, &record.BirthHeadCircumferenceCM,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get perinatal record: %w", err)
	}

	return &record, nil
}
