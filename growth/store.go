/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "context"

// PatientRecord supplies the birth reference point and biological-sex
// indicator for one patient. DOB and Sex are free-form stored text; the
// engine owns their interpretation.
type PatientRecord struct {
	ID  int64
	DOB string
	Sex string
}

// MeasurementRow is one raw stored observation for a single measurement
// kind. Either field may be absent or unparseable; the collector tolerates
// both.
type MeasurementRow struct {
	RecordedAt string
	Value      *float64
}

// PerinatalBaseline holds the optional birth-time and discharge-time
// values sourced from a patient's perinatal record.
type PerinatalBaseline struct {
	BirthWeightG             *int64
	DischargeWeightG         *int64
	BirthLengthCM            *float64
	BirthHeadCircumferenceCM *float64
}

// Store is the read-only record source the engine aggregates from. All
// methods that look up a single row return nil without an error when the
// row is absent; errors are reserved for the store being unreachable.
type Store interface {
	// FirstPatient returns the first patient in the store, or nil when
	// the store is empty.
	FirstPatient(ctx context.Context) (*PatientRecord, error)

	// GetPatient returns the patient with the given ID, or nil when no
	// such patient exists.
	GetPatient(ctx context.Context, id int64) (*PatientRecord, error)

	// ListMeasurements returns every raw observation of the given kind
	// recorded for the patient.
	ListMeasurements(ctx context.Context, patientID int64, kind MeasurementKind) ([]MeasurementRow, error)

	// GetPerinatalBaseline returns the patient's perinatal record, or nil
	// when none exists.
	GetPerinatalBaseline(ctx context.Context, patientID int64) (*PerinatalBaseline, error)
}
