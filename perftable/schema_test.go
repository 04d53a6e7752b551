package perftable_test

import (
	"testing"

	"github.com/katalvlaran/leafperf/perftable"
	"github.com/stretchr/testify/require"
)

// wantColumns is the downstream contract, spelled out literally.
var wantColumns = []string{
	"LAIvalid", "LAIestime",
	"FAPARvalid", "FAPARestime",
	"FCOVERvalid", "FCOVERestime",
	"Albedovalid", "Albedoestime",
	"LAICabvalid", "LAICabestime",
	"LAICwvalid", "LAICwestime",
	"Dvalid", "Destime",
}

func TestColumnsFixedOrder(t *testing.T) {
	require.Equal(t, wantColumns, perftable.Columns())
	require.Len(t, perftable.Columns(), perftable.NumColumns)
}

func TestColumnsReturnsCopy(t *testing.T) {
	cols := perftable.Columns()
	cols[0] = "mutated"
	require.Equal(t, "LAIvalid", perftable.Columns()[0]) // package state untouched
}

func TestVariablesOrder(t *testing.T) {
	want := []perftable.Variable{
		perftable.LAI, perftable.FAPAR, perftable.FCOVER, perftable.Albedo,
		perftable.LAICab, perftable.LAICw, perftable.D,
	}
	require.Equal(t, want, perftable.Variables())
	require.Equal(t, perftable.Variable("LAI_Cab"), perftable.LAICab)
	require.Equal(t, perftable.Variable("LAI_Cw"), perftable.LAICw)
}

func TestPrefixStripsUnderscoreOnlyForCabAndCw(t *testing.T) {
	cases := map[perftable.Variable]string{
		perftable.LAI:    "LAI",
		perftable.FAPAR:  "FAPAR",
		perftable.FCOVER: "FCOVER",
		perftable.Albedo: "Albedo",
		perftable.LAICab: "LAICab",
		perftable.LAICw:  "LAICw",
		perftable.D:      "D",
	}
	for v, want := range cases {
		got, err := perftable.Prefix(v)
		require.NoError(t, err)
		require.Equal(t, want, got, "variable %s", v)
	}

	_, err := perftable.Prefix("NDVI")
	require.ErrorIs(t, err, perftable.ErrUnknownVariable)
}

func TestColumnName(t *testing.T) {
	name, err := perftable.ColumnName(perftable.LAICw, perftable.FieldEstime)
	require.NoError(t, err)
	require.Equal(t, "LAICwestime", name)

	name, err = perftable.ColumnName(perftable.Albedo, perftable.FieldValid)
	require.NoError(t, err)
	require.Equal(t, "Albedovalid", name)

	_, err = perftable.ColumnName(perftable.D, "Sigma")
	require.ErrorIs(t, err, perftable.ErrUnknownColumn)

	_, err = perftable.ColumnName("LAI_Cx", perftable.FieldValid)
	require.ErrorIs(t, err, perftable.ErrUnknownVariable)
}

func TestColumnIndex(t *testing.T) {
	for j, name := range wantColumns {
		got, err := perftable.ColumnIndex(name)
		require.NoError(t, err)
		require.Equal(t, j, got)
	}

	_, err := perftable.ColumnIndex("LAI_Cabvalid") // underscore form is not a column
	require.ErrorIs(t, err, perftable.ErrUnknownColumn)
}

func TestParseVariable(t *testing.T) {
	v, err := perftable.ParseVariable("LAI_Cab")
	require.NoError(t, err)
	require.Equal(t, perftable.LAICab, v)

	_, err = perftable.ParseVariable("LAICab") // prefix form is not a key
	require.ErrorIs(t, err, perftable.ErrUnknownVariable)

	_, err = perftable.ParseVariable("lai")
	require.ErrorIs(t, err, perftable.ErrUnknownVariable)
}
