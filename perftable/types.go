// SPDX-License-Identifier: MIT

// Package perftable: domain types for the performance record and its fields.
// Errors, options and the column schema live in dedicated files
// (errors.go, options.go, schema.go).
package perftable

// Variable names one of the seven biophysical variables of a performance
// record. The string value is the exact key used by upstream producers.
type Variable string

// The seven variables, in output column order.
const (
	LAI    Variable = "LAI"     // leaf area index
	FAPAR  Variable = "FAPAR"   // fraction of absorbed photosynthetically active radiation
	FCOVER Variable = "FCOVER"  // fractional vegetation cover
	Albedo Variable = "Albedo"  // surface albedo
	LAICab Variable = "LAI_Cab" // canopy chlorophyll content
	LAICw  Variable = "LAI_Cw"  // canopy water content
	D      Variable = "D"
)

// Field names one of the two sequences carried per variable.
type Field string

const (
	// FieldValid is the per-row validity flag sequence.
	FieldValid Field = "Valid"

	// FieldEstime is the per-row estimate sequence.
	FieldEstime Field = "Estime"
)

// Values is one column of per-row numbers.
// A nil Values means the field is absent; an empty non-nil Values is a
// present column with zero rows.
type Values []float64

// VariableStats holds the validity flags and estimates for one variable.
// Valid may carry booleans upstream; they are stored as 1 (true) / 0 (false).
type VariableStats struct {
	Valid  Values `json:"Valid" yaml:"Valid"`
	Estime Values `json:"Estime" yaml:"Estime"`
}

// field returns the sequence for f.
func (s VariableStats) field(f Field) Values {
	if f == FieldValid {
		return s.Valid
	}

	return s.Estime
}

// PerformanceInput maps each variable to its statistics.
// A complete record carries all seven keys of Variables().
type PerformanceInput map[Variable]VariableStats
