/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "time"

// Patient is one stored patient row. DOB and Sex are kept as free-form
// text; interpretation (timestamp parsing, sex normalization) belongs to
// the growth engine, not the store.
type Patient struct {
	ID        int64
	Name      string
	DOB       *string
	Sex       *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Measurement is one recorded observation row. Each numeric column is
// nullable; in practice a row carries a value for one measurement kind.
type Measurement struct {
	ID                  int64
	PatientID           int64
	RecordedAt          *string
	WeightKG            *float64
	HeightCM            *float64
	HeadCircumferenceCM *float64
	CreatedAt           time.Time
}

// MeasurementValue is the (timestamp, value) pair projected out of a
// measurement row for a single kind's storage column.
type MeasurementValue struct {
	RecordedAt *string
	Value      *float64
}

// PerinatalRecord holds the optional birth and discharge baseline values
// for a patient. At most one row exists per patient.
type PerinatalRecord struct {
	PatientID                int64
	BirthWeightG             *int64
	DischargeWeightG         *int64
	BirthLengthCM            *float64
	BirthHeadCircumferenceCM *float64
	CreatedAt                time.Time
}
