package perftable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/leafperf/perftable"
	"github.com/stretchr/testify/require"
)

func TestBuildAllPreservesOrder(t *testing.T) {
	inputs := make([]perftable.PerformanceInput, 32)
	for i := range inputs {
		inputs[i] = uniformInput(i) // row count doubles as an order marker
	}

	tables, err := perftable.BuildAll(context.Background(), inputs, perftable.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, tables, len(inputs))
	for i, tbl := range tables {
		require.Equal(t, i, tbl.Rows())
		want, err := perftable.Build(inputs[i])
		require.NoError(t, err)
		require.True(t, want.Equal(tbl), "record %d", i)
	}
}

func TestBuildAllEmpty(t *testing.T) {
	tables, err := perftable.BuildAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, tables)
}

func TestBuildAllReportsFailingRecord(t *testing.T) {
	inputs := []perftable.PerformanceInput{uniformInput(2), uniformInput(2), uniformInput(2)}
	delete(inputs[1], perftable.FAPAR)

	tables, err := perftable.BuildAll(context.Background(), inputs, perftable.WithWorkers(1))
	require.Nil(t, tables)
	require.ErrorIs(t, err, perftable.ErrMissingField)

	var re *perftable.RecordError
	require.True(t, errors.As(err, &re))
	require.Equal(t, 1, re.Index)

	var mfe *perftable.MissingFieldError
	require.ErrorAs(t, err, &mfe)
	require.Equal(t, perftable.FAPAR, mfe.Variable)
}

func TestBuildAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tables, err := perftable.BuildAll(ctx, []perftable.PerformanceInput{uniformInput(1)})
	require.Nil(t, tables)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithWorkersPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { perftable.WithWorkers(0) })
	require.Panics(t, func() { perftable.WithWorkers(-3) })
	require.NotPanics(t, func() { perftable.WithWorkers(1) })
}

// TestBuildAllReportsLowestFailingIndex runs many workers over several bad
// records; the reported index must not depend on scheduling.
func TestBuildAllReportsLowestFailingIndex(t *testing.T) {
	for round := 0; round < 50; round++ {
		inputs := make([]perftable.PerformanceInput, 64)
		for i := range inputs {
			inputs[i] = uniformInput(3)
		}
		for _, bad := range []int{63, 40, 17, 9} {
			delete(inputs[bad], perftable.Albedo)
		}

		_, err := perftable.BuildAll(context.Background(), inputs, perftable.WithWorkers(8))
		var re *perftable.RecordError
		require.ErrorAs(t, err, &re)
		require.Equal(t, 9, re.Index, "round %d", round)
		require.ErrorIs(t, err, perftable.ErrMissingField)
	}
}
