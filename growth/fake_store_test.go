// SPDX-FileCopyrightText: 2026 Teo Amaral
// SPDX-License-Identifier: Apache-2.0

package growth

import (
	"context"
	"errors"
)

var errStoreUnavailable = errors.New("store unavailable")

// fakeStore is an in-memory Store for engine tests.
type fakeStore struct {
	patients  []PatientRecord
	rows      map[int64]map[MeasurementKind][]MeasurementRow
	baselines map[int64]*PerinatalBaseline

	patientErr     bool
	measurementErr bool
	baselineErr    bool
}

func (f *fakeStore) FirstPatient(ctx context.Context) (*PatientRecord, error) {
	if f.patientErr {
		return nil, errStoreUnavailable
	}
	if len(f.patients) == 0 {
		return nil, nil
	}
	patient := f.patients[0]
	return &patient, nil
}

func (f *fakeStore) GetPatient(ctx context.Context, id int64) (*PatientRecord, error) {
	if f.patientErr {
		return nil, errStoreUnavailable
	}
	for _, p := range f.patients {
		if p.ID == id {
			patient := p
			return &patient, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListMeasurements(ctx context.Context, patientID int64, kind MeasurementKind) ([]MeasurementRow, error) {
	if f.measurementErr {
		return nil, errStoreUnavailable
	}
	return f.rows[patientID][kind], nil
}

func (f *fakeStore) GetPerinatalBaseline(ctx context.Context, patientID int64) (*PerinatalBaseline, error) {
	if f.baselineErr {
		return nil, errStoreUnavailable
	}
	return f.baselines[patientID], nil
}

func floatPtr(value float64) *float64 {
	return &value
}

func intPtr(value int64) *int64 {
	return &value
}

func measurementRows(rows ...MeasurementRow) map[MeasurementKind][]MeasurementRow {
	return map[MeasurementKind][]MeasurementRow{KindWeight: rows}
}
