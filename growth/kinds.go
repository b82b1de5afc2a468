/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

// MeasurementKind identifies one tracked growth measurement.
type MeasurementKind string

// MeasurementKind values represent the supported measurement types.
const (
	KindWeight            MeasurementKind = "weight"
	KindHeight            MeasurementKind = "height"
	KindHeadCircumference MeasurementKind = "head_circumference"
)

// kindSpec maps a measurement kind to its storage column and display unit.
type kindSpec struct {
	Column string
	Unit   string
}

var kindSpecs = map[MeasurementKind]kindSpec{
	KindWeight:            {Column: "weight_kg", Unit: "kg"},
	KindHeight:            {Column: "height_cm", Unit: "cm"},
	KindHeadCircumference: {Column: "head_circumference_cm", Unit: "cm"},
}

// Kinds returns every supported measurement kind in display order.
func Kinds() []MeasurementKind {
	return []MeasurementKind{KindWeight, KindHeight, KindHeadCircumference}
}

// Valid reports whether the kind maps to a known storage column.
func (k MeasurementKind) Valid() bool {
	_, ok := kindSpecs[k]
	return ok
}

// Column returns the storage column holding values for this kind, or an
// empty string for an unknown kind.
func (k MeasurementKind) Column() string {
	return kindSpecs[k].Column
}

// Unit returns the display unit for this kind, or an empty string for an
// unknown kind.
func (k MeasurementKind) Unit() string {
	return kindSpecs[k].Unit
}
