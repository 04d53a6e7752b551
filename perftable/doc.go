// Package perftable flattens SL2P-style performance records into a
// fixed-schema table.
//
// 🚀 What is a performance record?
//
//	For each of seven biophysical variables (LAI, FAPAR, FCOVER, Albedo,
//	LAI_Cab, LAI_Cw, D) a model-evaluation step produces two aligned
//	sequences:
//	  • Valid  — per-row validity flag (numeric or boolean upstream)
//	  • Estime — per-row estimate
//
// ✨ What does the table look like?
//
//	Fourteen columns, always in this order:
//
//	  LAIvalid LAIestime FAPARvalid FAPARestime FCOVERvalid FCOVERestime
//	  Albedovalid Albedoestime LAICabvalid LAICabestime LAICwvalid
//	  LAICwestime Dvalid Destime
//
//	LAI_Cab and LAI_Cw lose their underscore in the column prefix; every
//	other variable keeps its key verbatim.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/leafperf/perftable"
//
//	t, err := perftable.Build(record)
//	if err != nil {
//	  // errors.Is(err, perftable.ErrMissingField) or ErrLengthMismatch
//	}
//	lai, _ := t.Column("LAIestime")
//
//	// many records, bounded parallelism, order preserved
//	tables, err := perftable.BuildAll(ctx, records, perftable.WithWorkers(4))
//
// Guarantees:
//
//   - Values are copied verbatim: no rounding, filtering or reordering.
//   - N = 0 yields an empty table that still has all fourteen columns.
//   - Build is pure: no I/O, no logging, no retained references.
//   - Tables are immutable; every accessor returns a copy.
//
// Performance:
//
//   - Time:   O(N·14)
//   - Memory: O(N·14)
package perftable
