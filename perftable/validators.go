// SPDX-License-Identifier: MIT
// Package: perftable
//
// Purpose:
//  - Single source of truth for the structural checks Build performs.
//  - Presence is checked for every field before any length is compared, so a
//    record that is both incomplete and ragged reports the missing field.
//
// Determinism:
//  - Fields are visited in output column order; the first violation wins.
//  - All checks are pure and allocate only for the returned error.

package perftable

// ValidateInput checks that in is complete and rectangular.
// Returns the row count N on success.
//
// Errors: *MissingFieldError, *LengthMismatchError.
// Complexity: O(1) (fourteen fixed lookups).
func ValidateInput(in PerformanceInput) (int, error) {
	if err := validatePresence(in); err != nil {
		return 0, err
	}

	return validateLengths(in)
}

// validatePresence reports the first absent variable or field.
func validatePresence(in PerformanceInput) error {
	var (
		stats VariableStats
		ok    bool
	)
	for _, v := range variableOrder { // fixed column order
		stats, ok = in[v] // nil map reads are safe and report !ok
		if !ok {
			return &MissingFieldError{Variable: v}
		}
		for _, f := range fieldOrder {
			if stats.field(f) == nil {
				return &MissingFieldError{Variable: v, Field: f}
			}
		}
	}

	return nil
}

// validateLengths compares every sequence against LAI.Valid.
// Assumes validatePresence succeeded.
func validateLengths(in PerformanceInput) (int, error) {
	n := len(in[variableOrder[0]].Valid) // reference row count
	var i, k int
	for i = 0; i < NumVariables; i++ {
		stats := in[variableOrder[i]]
		for k = 0; k < len(fieldOrder); k++ {
			if got := len(stats.field(fieldOrder[k])); got != n {
				return 0, &LengthMismatchError{Column: columnNames[2*i+k], Want: n, Got: got}
			}
		}
	}

	return n, nil
}
