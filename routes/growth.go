/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/flamego/flamego"

	"github.com/tamaral/growthchart/db"
	"github.com/tamaral/growthchart/growth"
)

func renderJSON(c flamego.Context, status int, v interface{}) {
	w := c.ResponseWriter()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func renderError(c flamego.Context, status int, message string) {
	renderJSON(c, status, map[string]string{"error": message})
}

// patientPayload is the JSON shape of one patient listing entry.
type patientPayload struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	DOB  *string `json:"dob"`
	Sex  *string `json:"sex"`
}

// ListPatients returns the stored patients as JSON.
func ListPatients(c flamego.Context) {
	patients, err := db.ListPatients(c.Request().Context())
	if err != nil {
		log.Printf("Error listing patients: %v", err)
		renderError(c, http.StatusInternalServerError, "failed to list patients")
		return
	}

	payload := make([]patientPayload, 0, len(patients))
	for _, patient := range patients {
		payload = append(payload, patientPayload{
			ID:   patient.ID,
			Name: patient.Name,
			DOB:  patient.DOB,
			Sex:  patient.Sex,
		})
	}

	renderJSON(c, http.StatusOK, payload)
}

// growthResponse is the full chart payload for one patient: every growth
// series plus the percentile curve family matching the resolved sex.
type growthResponse struct {
	PatientID *int64                                          `json:"patient_id"`
	Sex       growth.Sex                                      `json:"sex"`
	Units     map[growth.MeasurementKind]string               `json:"units"`
	Series    map[growth.MeasurementKind]growth.Series        `json:"series"`
	Curves    map[growth.MeasurementKind][]db.PercentileCurve `json:"curves"`
}

// PatientGrowth returns the aggregated growth series for a patient. When
// no patient ID is present in the path, the first patient in the store is
// used. An unresolvable patient yields empty series, not an error.
func PatientGrowth(c flamego.Context) {
	ctx := c.Request().Context()

	var requested *int64
	if idParam := c.Param("id"); idParam != "" {
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			renderError(c, http.StatusBadRequest, "invalid patient id")
			return
		}
		requested = &id
	}

	store := db.GrowthStore{}
	sex, series := growth.FetchAllSeries(ctx, store, requested)

	response := growthResponse{
		Sex:    sex,
		Units:  make(map[growth.MeasurementKind]string, len(series)),
		Series: series,
		Curves: make(map[growth.MeasurementKind][]db.PercentileCurve, len(series)),
	}

	if id, ok := growth.ResolvePatientID(ctx, store, requested); ok {
		response.PatientID = &id
	}

	for _, kind := range growth.Kinds() {
		response.Units[kind] = kind.Unit()

		curves, err := db.GetPercentileCurves(ctx, kind, sex)
		if err != nil {
			// A chart without reference curves still has value; degrade
			// instead of failing the request.
			log.Printf("Error loading percentile curves for %s/%s: %v", kind, sex, err)
			continue
		}
		response.Curves[kind] = curves
	}

	renderJSON(c, http.StatusOK, response)
}

// measurementPayload is the JSON shape of one raw measurement row.
type measurementPayload struct {
	ID                  int64    `json:"id"`
	RecordedAt          *string  `json:"recorded_at"`
	WeightKG            *float64 `json:"weight_kg"`
	HeightCM            *float64 `json:"height_cm"`
	HeadCircumferenceCM *float64 `json:"head_circumference_cm"`
}

// PatientMeasurements returns the raw measurement rows for one patient,
// untouched by the aggregation pipeline.
func PatientMeasurements(c flamego.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderError(c, http.StatusBadRequest, "invalid patient id")
		return
	}

	measurements, err := db.ListMeasurements(c.Request().Context(), id)
	if err != nil {
		log.Printf("Error listing measurements: %v", err)
		renderError(c, http.StatusInternalServerError, "failed to list measurements")
		return
	}

	payload := make([]measurementPayload, 0, len(measurements))
	for _, m := range measurements {
		payload = append(payload, measurementPayload{
			ID:                  m.ID,
			RecordedAt:          m.RecordedAt,
			WeightKG:            m.WeightKG,
			HeightCM:            m.HeightCM,
			HeadCircumferenceCM: m.HeadCircumferenceCM,
		})
	}

	renderJSON(c, http.StatusOK, payload)
}

// Curves returns the raw percentile curve rows for one kind and sex.
func Curves(c flamego.Context) {
	kind := growth.MeasurementKind(c.Param("kind"))
	if !kind.Valid() {
		renderError(c, http.StatusNotFound, "unknown measurement kind")
		return
	}

	sex := growth.NormalizeSex(c.Param("sex"))

	curves, err := db.GetPercentileCurves(c.Request().Context(), kind, sex)
	if err != nil {
		log.Printf("Error loading percentile curves: %v", err)
		renderError(c, http.StatusInternalServerError, "failed to load percentile curves")
		return
	}

	renderJSON(c, http.StatusOK, curves)
}
