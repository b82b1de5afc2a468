/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"

	"github.com/tamaral/growthchart/growth"
)

// PercentileCurveDefinition represents one reference curve to be synced to
// the database: a percentile line for a measurement kind and sex, sampled
// at fixed ages.
type PercentileCurveDefinition struct {
	Kind       growth.MeasurementKind
	Sex        growth.Sex
	Percentile int
	Points     []growth.Point
}

// PercentileCurve is one reference curve read back from the database.
type PercentileCurve struct {
	Percentile int            `json:"percentile"`
	Points     []growth.Point `json:"points"`
}

// curveAges are the ages (in months) the shipped curves are sampled at.
var curveAges = []float64{0, 1, 2, 3, 6, 9, 12, 18, 24, 36, 48, 60}

// curve builds a definition from per-age values matching curveAges.
func curve(kind growth.MeasurementKind, sex growth.Sex, percentile int, values ...float64) PercentileCurveDefinition {
	if len(values) != len(curveAges) {
		panic(fmt.Sprintf("curve %s/%s/P%d: expected %d values, got %d",
			kind, sex, percentile, len(curveAges), len(values)))
	}

	points := make([]growth.Point, len(values))
	for i, v := range values {
		points[i] = growth.Point{AgeMonths: curveAges[i], Value: v}
	}

	return PercentileCurveDefinition{Kind: kind, Sex: sex, Percentile: percentile, Points: points}
}

// GetPercentileCurveDefinitions returns all reference curves to be synced
// to the database. This is the replaceable curve-data input: values are
// derived from the WHO child growth standards (birth to 60 months), and
// swapping the reference family means editing this one table.
func GetPercentileCurveDefinitions() []PercentileCurveDefinition {
	return []PercentileCurveDefinition{
		// ===== WEIGHT-FOR-AGE (kg) =====
		curve(growth.KindWeight, growth.SexMale, 3,
			2.5, 3.4, 4.3, 5.0, 6.4, 7.1, 7.7, 8.8, 9.7, 11.3, 12.7, 14.1),
		curve(growth.KindWeight, growth.SexMale, 50,
			3.3, 4.5, 5.6, 6.4, 7.9, 8.9, 9.6, 10.9, 12.2, 14.3, 16.3, 18.3),
		curve(growth.KindWeight, growth.SexMale, 97,
			4.3, 5.8, 7.1, 8.0, 9.8, 11.0, 12.0, 13.7, 15.3, 18.3, 21.2, 24.2),
		curve(growth.KindWeight, growth.SexFemale, 3,
			2.4, 3.2, 3.9, 4.5, 5.7, 6.5, 7.0, 8.1, 9.0, 10.8, 12.3, 13.7),
		curve(growth.KindWeight, growth.SexFemale, 50,
			3.2, 4.2, 5.1, 5.8, 7.3, 8.2, 8.9, 10.2, 11.5, 13.9, 16.1, 18.2),
		curve(growth.KindWeight, growth.SexFemale, 97,
			4.2, 5.5, 6.6, 7.5, 9.3, 10.5, 11.5, 13.2, 14.8, 18.1, 21.5, 24.9),

		// ===== LENGTH/HEIGHT-FOR-AGE (cm) =====
		curve(growth.KindHeight, growth.SexMale, 3,
			46.3, 51.1, 54.7, 57.6, 63.6, 67.7, 71.3, 77.5, 81.9, 90.0, 96.6, 102.6),
		curve(growth.KindHeight, growth.SexMale, 50,
			49.9, 54.7, 58.4, 61.4, 67.6, 72.0, 75.7, 82.3, 87.1, 96.1, 103.3, 110.0),
		curve(growth.KindHeight, growth.SexMale, 97,
			53.4, 58.4, 62.2, 65.3, 71.6, 76.2, 80.2, 87.3, 92.3, 102.2, 110.0, 117.4),
		curve(growth.KindHeight, growth.SexFemale, 3,
			45.6, 50.0, 53.2, 55.8, 61.5, 65.6, 69.2, 75.2, 80.0, 88.7, 95.8, 101.9),
		curve(growth.KindHeight, growth.SexFemale, 50,
			49.1, 53.7, 57.1, 59.8, 65.7, 70.1, 74.0, 80.7, 85.7, 95.0, 102.7, 109.4),
		curve(growth.KindHeight, growth.SexFemale, 97,
			52.7, 57.4, 60.9, 63.8, 70.0, 74.5, 78.9, 86.2, 91.8, 101.4, 109.7, 116.9),

		// ===== HEAD-CIRCUMFERENCE-FOR-AGE (cm) =====
		curve(growth.KindHeadCircumference, growth.SexMale, 3,
			32.1, 35.1, 36.9, 38.3, 41.0, 42.9, 43.9, 45.0, 45.9, 47.1, 47.9, 48.4),
		curve(growth.KindHeadCircumference, growth.SexMale, 50,
			34.5, 37.3, 39.1, 40.5, 43.3, 45.2, 46.1, 47.4, 48.3, 49.6, 50.4, 51.1),
		curve(growth.KindHeadCircumference, growth.SexMale, 97,
			36.9, 39.5, 41.3, 42.7, 45.6, 47.5, 48.5, 49.9, 50.8, 52.1, 53.0, 53.5),
		curve(growth.KindHeadCircumference, growth.SexFemale, 3,
			31.7, 34.3, 36.0, 37.2, 39.8, 41.5, 42.4, 43.7, 44.6, 46.0, 46.9, 47.5),
		curve(growth.KindHeadCircumference, growth.SexFemale, 50,
			33.9, 36.5, 38.3, 39.5, 42.2, 44.0, 44.9, 46.2, 47.2, 48.6, 49.5, 50.1),
		curve(growth.KindHeadCircumference, growth.SexFemale, 97,
			36.1, 38.8, 40.5, 41.7, 44.6, 46.4, 47.4, 48.8, 49.8, 51.2, 52.2, 52.8),
	}
}

// SyncPercentileCurves replaces the stored curve rows with the current
// definitions. Runs after every migration so the database always matches
// the shipped reference data.
func SyncPercentileCurves(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM percentile_curves`); err != nil {
		return fmt.Errorf("failed to clear percentile curves: %w", err)
	}

	query := `
		INSERT INTO percentile_curves (kind, sex, percentile, age_months, value)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, def := range GetPercentileCurveDefinitions() {
		for _, point := range def.Points {
			_, err := tx.Exec(ctx, query,
				string(def.Kind), string(def.Sex), def.Percentile,
				point.AgeMonths, point.Value,
			)
			if err != nil {
				return fmt.Errorf("failed to insert percentile curve point: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit percentile curve sync: %w", err)
	}

	return nil
}

// GetPercentileCurves returns the reference curves for one measurement
// kind and sex, ordered by percentile and age.
func GetPercentileCurves(ctx context.Context, kind growth.MeasurementKind, sex growth.Sex) ([]PercentileCurve, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT percentile, age_months, value
		FROM percentile_curves
		WHERE kind = $1 AND sex = $2
		ORDER BY percentile ASC, age_months ASC
	`

	rows, err := pool.Query(ctx, query, string(kind), string(sex))
	if err != nil {
		return nil, fmt.Errorf("failed to get percentile curves: %w", err)
	}
	defer rows.Close()

	var curves []PercentileCurve
	for rows.Next() {
		var percentile int
		var point growth.Point
		if err := rows.Scan(&percentile, &point.AgeMonths, &point.Value); err != nil {
			return nil, fmt.Errorf("failed to scan percentile curve point: %w", err)
		}

		if len(curves) == 0 || curves[len(curves)-1].Percentile != percentile {
			curves = append(curves, PercentileCurve{Percentile: percentile})
		}
		last := &curves[len(curves)-1]
		last.Points = append(last.Points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating percentile curves: %w", err)
	}

	return curves, nil
}
