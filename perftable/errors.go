// SPDX-License-Identifier: MIT
// Package perftable: sentinel error set and structured error types.
// Every algorithm in this package returns one of the sentinels below, either
// directly or through a structured error whose Unwrap yields the sentinel.
// Tests MUST check them via errors.Is / errors.As. No function panics on
// user-triggered input; panics are reserved for invalid Option values.

package perftable

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "perftable: ..." for easy grepping across
// logs. Outer layers wrap with fmt.Errorf("ctx: %w", err); callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// missing key/field -> length mismatch.

var (
	// ErrMissingField is returned when a variable key, or one of its Valid /
	// Estime sequences, is absent from the input record.
	ErrMissingField = errors.New("perftable: missing field")

	// ErrLengthMismatch indicates that the fourteen input sequences do not
	// share a single row count.
	ErrLengthMismatch = errors.New("perftable: length mismatch")

	// ErrUnknownVariable signals a variable name outside the fixed set of seven.
	ErrUnknownVariable = errors.New("perftable: unknown variable")

	// ErrUnknownField signals a sub-field key other than the exact "Valid" or
	// "Estime" while decoding a record.
	ErrUnknownField = errors.New("perftable: unknown field")

	// ErrUnknownColumn signals a column name outside the fixed 14-column schema.
	ErrUnknownColumn = errors.New("perftable: unknown column")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("perftable: index out of range")

	// ErrNilTable indicates that a nil *Table was used.
	ErrNilTable = errors.New("perftable: nil table")
)

// MissingFieldError reports which variable (and which of its fields) is absent.
// Field is empty when the whole variable key is missing.
type MissingFieldError struct {
	Variable Variable
	Field    Field
}

func (e *MissingFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: variable %q", ErrMissingField, string(e.Variable))
	}

	return fmt.Sprintf("%v: %s.%s", ErrMissingField, e.Variable, e.Field)
}

// Unwrap lets errors.Is(err, ErrMissingField) succeed.
func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// LengthMismatchError names the first column whose length differs from the
// reference row count Want.
type LengthMismatchError struct {
	Column string
	Want   int
	Got    int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: column %s has %d rows, want %d", ErrLengthMismatch, e.Column, e.Got, e.Want)
}

// Unwrap lets errors.Is(err, ErrLengthMismatch) succeed.
func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// RecordError ties a failure in BuildAll to the index of the offending record.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("perftable: record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
