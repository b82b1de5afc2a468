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

// ListPatients returns all patients ordered by name
func ListPatients(ctx context.Context) ([]Patient, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, name, dob, sex, created_at, updated_at
		FROM patients
		ORDER BY name ASC
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	var patients []Patient
	for rows.Next() {
		var patient Patient
		err := rows.Scan(
			&patient.ID, &patient.Name, &patient.DOB, &patient.Sex,
			&patient.CreatedAt, &patient.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, nil
}

// GetPatient returns a single patient by ID, or nil when absent.
func GetPatient(ctx context.Context, id int64) (*Patient, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var patient Patient
	query := `
		SELECT id, name, dob, sex, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	err := pool.QueryRow(ctx, query, id).Scan(
		&patient.ID, &patient.Name, &patient.DOB, &patient.Sex,
		&patient.CreatedAt, &patient.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return &patient, nil
}

// FirstPatient returns the lowest-ID patient, or nil when the store is
// empty. Used as the fallback when no patient was requested explicitly.
func FirstPatient(ctx context.Context) (*Patient, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var patient Patient
	query := `
		SELECT id, name, dob, sex, created_at, updated_at
		FROM patients
		ORDER BY id ASC
		LIMIT 1
	`

	err := pool.QueryRow(ctx, query).Scan(
		&patient.ID, &patient.Name, &patient.DOB, &patient.Sex,
		&patient.CreatedAt, &patient.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get first patient: %w", err)
	}

	return &patient, nil
}
