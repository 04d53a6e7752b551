// Package perftable_test provides benchmarks for Build and BuildAll.
package perftable_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/leafperf/perftable"
)

// benchRows are the record sizes to benchmark.
var benchRows = []int{16, 1024, 65536}

// sink to defeat dead-code elimination
var sinkT *perftable.Table

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			in := uniformInput(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				t, err := perftable.Build(in)
				if err != nil {
					b.Fatal(err)
				}
				sinkT = t
			}
		})
	}
}

func BenchmarkBuildAll(b *testing.B) {
	b.ReportAllocs()
	inputs := make([]perftable.PerformanceInput, 256)
	for i := range inputs {
		inputs[i] = uniformInput(1024)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tables, err := perftable.BuildAll(context.Background(), inputs)
		if err != nil {
			b.Fatal(err)
		}
		sinkT = tables[0]
	}
}
