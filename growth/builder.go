/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"context"
	"strings"
)

// Sex is the normalized biological-sex family used to select which
// reference curve set a patient is compared against.
type Sex string

// Sex values represent the supported curve families.
const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// NormalizeSex maps free-form stored sex text onto a curve family. Any
// value not recognized as female resolves to the male default, a
// deliberate closed binary simplification.
func NormalizeSex(s string) Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "female":
		return SexFemale
	}
	return SexMale
}

// ResolvePatientID returns the requested patient ID when it exists in the
// store, falling back to the first patient when requested is nil. The
// second return is false when no patient could be resolved at all.
func ResolvePatientID(ctx context.Context, store Store, requested *int64) (int64, bool) {
	patient := resolvePatient(ctx, store, requested)
	if patient == nil {
		return 0, false
	}
	return patient.ID, true
}

// FetchSeries builds the full growth series for one patient and kind:
// collected manual observations plus merged perinatal baseline points,
// sorted ascending by age. Data-quality problems never surface as errors;
// a degraded or empty series is returned instead and the cause is logged.
func FetchSeries(ctx context.Context, store Store, patientID int64, kind MeasurementKind) Series {
	patient, err := store.GetPatient(ctx, patientID)
	if err != nil {
		logger.Warn("Failed to load patient", "patient_id", patientID, "error", err)
		return Series{}
	}
	if patient == nil {
		logger.Warn("Patient not found", "patient_id", patientID)
		return Series{}
	}

	return fetchPatientSeries(ctx, store, patient, kind)
}

// FetchAllSeries resolves a patient (first patient in the store when
// requested is nil) and builds the series for every measurement kind. An
// unresolvable patient yields the default sex and an empty series per
// kind, never an error.
func FetchAllSeries(ctx context.Context, store Store, requested *int64) (Sex, map[MeasurementKind]Series) {
	result := make(map[MeasurementKind]Series, len(Kinds()))

	patient := resolvePatient(ctx, store, requested)
	if patient == nil {
		for _, kind := range Kinds() {
			result[kind] = Series{}
		}
		return SexMale, result
	}

	for _, kind := range Kinds() {
		result[kind] = fetchPatientSeries(ctx, store, patient, kind)
	}

	return NormalizeSex(patient.Sex), result
}

func resolvePatient(ctx context.Context, store Store, requested *int64) *PatientRecord {
	var patient *PatientRecord
	var err error

	if requested != nil {
		patient, err = store.GetPatient(ctx, *requested)
	} else {
		patient, err = store.FirstPatient(ctx)
	}

	if err != nil {
		logger.Warn("Failed to resolve patient", "error", err)
		return nil
	}

	return patient
}

func fetchPatientSeries(ctx context.Context, store Store, patient *PatientRecord, kind MeasurementKind) Series {
	points, err := collect(ctx, store, patient, kind)
	if err != nil {
		logger.Warn("Returning empty series",
			"patient_id", patient.ID, "kind", kind, "error", err)
		return Series{}
	}

	baseline, err := store.GetPerinatalBaseline(ctx, patient.ID)
	if err != nil {
		logger.Warn("Failed to load perinatal baseline, merging without it",
			"patient_id", patient.ID, "error", err)
		baseline = nil
	}

	return Merge(points, kind, baseline)
}
