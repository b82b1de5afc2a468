/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"

	"github.com/tamaral/growthchart/growth"
)

// GrowthStore adapts the shared connection pool to the growth engine's
// read-only Store interface. All storage-level null handling happens
// here; the engine never sees raw nullable columns.
type GrowthStore struct{}

func (GrowthStore) FirstPatient(ctx context.Context) (*growth.PatientRecord, error) {
	patient, err := FirstPatient(ctx)
	if err != nil {
		return nil, err
	}
	return toPatientRecord(patient), nil
}

func (GrowthStore) GetPatient(ctx context.Context, id int64) (*growth.PatientRecord, error) {
	patient, err := GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPatientRecord(patient), nil
}

func (GrowthStore) ListMeasurements(ctx context.Context, patientID int64, kind growth.MeasurementKind) ([]growth.MeasurementRow, error) {
	column := kind.Column()
	if column == "" {
		return nil, ErrUnknownMeasurementColumn
	}

	values, err := ListMeasurementValues(ctx, patientID, column)
	if err != nil {
		return nil, err
	}

	rows := make([]growth.MeasurementRow, 0, len(values))
	for _, value := range values {
		row := growth.MeasurementRow{Value: value.Value}
		if value.RecordedAt != nil {
			row.RecordedAt = *value.RecordedAt
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (GrowthStore) GetPerinatalBaseline(ctx context.Context, patientID int64) (*growth.PerinatalBaseline, error) {
	record, err := GetPerinatalRecord(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	return &growth.PerinatalBaseline{
		BirthWeightG:             record.BirthWeightG,
		DischargeWeightG:         record.DischargeWeightG,
		BirthLengthCM:            record.BirthLengthCM,
		BirthHeadCircumferenceCM: record.BirthHeadCircumferenceCM,
	}, nil
}

func toPatientRecord(patient *Patient) *growth.PatientRecord {
	if patient == nil {
		return nil
	}

	record := &growth.PatientRecord{ID: patient.ID}
	if patient.DOB != nil {
		record.DOB = *patient.DOB
	}
	if patient.Sex != nil {
		record.Sex = *patient.Sex
	}

	return record
}
