// SPDX-License-Identifier: MIT

package perftable

import "fmt"

// Field suffixes used in column names.
const (
	suffixValid  = "valid"
	suffixEstime = "estime"
)

// NumVariables is the number of variables in a performance record.
const NumVariables = 7

// NumColumns is the width of every performance table (Valid/Estime per variable).
const NumColumns = 2 * NumVariables

// variableOrder fixes the output column order.
var variableOrder = [NumVariables]Variable{LAI, FAPAR, FCOVER, Albedo, LAICab, LAICw, D}

// prefixes maps every variable to its column-name prefix. The mapping is
// spelled out rather than derived: LAI_Cab and LAI_Cw drop the underscore,
// every other key is used as is.
var prefixes = map[Variable]string{
	LAI:    "LAI",
	FAPAR:  "FAPAR",
	FCOVER: "FCOVER",
	Albedo: "Albedo",
	LAICab: "LAICab",
	LAICw:  "LAICw",
	D:      "D",
}

// fieldOrder is the per-variable column order.
var fieldOrder = [2]Field{FieldValid, FieldEstime}

// columnNames is computed once from the lookup tables above.
var columnNames = buildColumnNames()

// columnIndex resolves a column name to its position.
var columnIndex = buildColumnIndex(columnNames)

func buildColumnNames() [NumColumns]string {
	var names [NumColumns]string
	var i, k int
	for i = 0; i < NumVariables; i++ {
		for k = 0; k < len(fieldOrder); k++ {
			names[2*i+k] = prefixes[variableOrder[i]] + suffix(fieldOrder[k])
		}
	}

	return names
}

func buildColumnIndex(names [NumColumns]string) map[string]int {
	idx := make(map[string]int, NumColumns)
	for j, name := range names {
		idx[name] = j
	}

	return idx
}

func suffix(f Field) string {
	if f == FieldValid {
		return suffixValid
	}

	return suffixEstime
}

// Variables returns the seven variables in output column order.
// The returned slice is a fresh copy.
func Variables() []Variable {
	out := make([]Variable, NumVariables)
	copy(out, variableOrder[:])

	return out
}

// Columns returns the fourteen column names in output order.
// The returned slice is a fresh copy.
func Columns() []string {
	out := make([]string, NumColumns)
	copy(out, columnNames[:])

	return out
}

// ParseVariable resolves an exact variable key (e.g. "LAI_Cab").
// Returns ErrUnknownVariable for anything outside the fixed set.
func ParseVariable(s string) (Variable, error) {
	v := Variable(s)
	if _, ok := prefixes[v]; !ok {
		return "", fmt.Errorf("ParseVariable(%q): %w", s, ErrUnknownVariable)
	}

	return v, nil
}

// Prefix returns the column-name prefix for v.
func Prefix(v Variable) (string, error) {
	p, ok := prefixes[v]
	if !ok {
		return "", fmt.Errorf("Prefix(%q): %w", string(v), ErrUnknownVariable)
	}

	return p, nil
}

// ColumnName returns "<prefix(v)><field>" with the field lower-cased,
// e.g. ColumnName(LAICw, FieldEstime) == "LAICwestime".
func ColumnName(v Variable, f Field) (string, error) {
	p, err := Prefix(v)
	if err != nil {
		return "", err
	}
	if f != FieldValid && f != FieldEstime {
		return "", fmt.Errorf("ColumnName(%q, %q): %w", string(v), string(f), ErrUnknownColumn)
	}

	return p + suffix(f), nil
}

// ColumnIndex returns the position of name in the fixed schema.
func ColumnIndex(name string) (int, error) {
	j, ok := columnIndex[name]
	if !ok {
		return 0, fmt.Errorf("ColumnIndex(%q): %w", name, ErrUnknownColumn)
	}

	return j, nil
}
