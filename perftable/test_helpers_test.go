package perftable_test

import "github.com/katalvlaran/leafperf/perftable"

// uniformInput returns a well-formed record with n rows where every variable
// carries Valid=1 and Estime=base+row/10.
func uniformInput(n int) perftable.PerformanceInput {
	in := make(perftable.PerformanceInput, perftable.NumVariables)
	for vi, v := range perftable.Variables() {
		valid := make(perftable.Values, n)
		est := make(perftable.Values, n)
		for i := 0; i < n; i++ {
			valid[i] = 1
			est[i] = float64(vi) + float64(i)/10
		}
		in[v] = perftable.VariableStats{Valid: valid, Estime: est}
	}

	return in
}

// exampleInput is the two-row record used throughout the docs.
func exampleInput() perftable.PerformanceInput {
	rest := perftable.VariableStats{Valid: perftable.Values{1, 1}, Estime: perftable.Values{0.5, 0.6}}

	return perftable.PerformanceInput{
		perftable.LAI:    {Valid: perftable.Values{1, 0}, Estime: perftable.Values{0.82, 0.91}},
		perftable.FAPAR:  {Valid: perftable.Values{1, 1}, Estime: perftable.Values{0.77, 0.85}},
		perftable.FCOVER: rest,
		perftable.Albedo: rest,
		perftable.LAICab: rest,
		perftable.LAICw:  rest,
		perftable.D:      rest,
	}
}
