// SPDX-License-Identifier: MIT

package perftable

// Build flattens a performance record into a table of N rows by the 14
// columns of Columns(). Column <prefix(V)>valid holds in[V].Valid and
// <prefix(V)>estime holds in[V].Estime, copied verbatim row by row.
//
// Stage 1 (Validate): every key and field present, all lengths equal.
// Stage 2 (Prepare): allocate the flat backing store.
// Stage 3 (Execute): copy values column by column.
//
// Errors: *MissingFieldError (ErrMissingField), *LengthMismatchError
// (ErrLengthMismatch). Nothing is truncated or padded.
// Complexity: O(N·NumColumns) time and memory.
//
// Build retains no reference to in and has no side effects.
func Build(in PerformanceInput) (*Table, error) {
	n, err := ValidateInput(in)
	if err != nil {
		return nil, err
	}

	t := newTable(n)

	var (
		i, k, row int
		col       int
		src       Values
	)
	for i = 0; i < NumVariables; i++ {
		stats := in[variableOrder[i]]
		for k = 0; k < len(fieldOrder); k++ {
			col = 2*i + k                    // fixed output position
			src = stats.field(fieldOrder[k]) // len(src) == n after validation
			for row = 0; row < n; row++ {
				t.data[row*NumColumns+col] = src[row]
			}
		}
	}

	return t, nil
}
