// Package leafperf is the module root for flattening SL2P model-performance
// records into fixed-schema tables.
//
// 🚀 What is in here?
//
//	perftable/        — types, 14-column schema, Build and BuildAll
//	internal/config/  — viper-backed settings (file, PERFTABLE_* env, flags)
//	internal/logging/ — zap logger construction
//	internal/report/  — JSON/YAML record decoding, CSV/JSON table encoding
//	cmd/perftable/    — the CLI: `perftable build`, `perftable columns`
//
// The perftable package is pure: no I/O, no logging, no global mutable
// state. Everything that touches files or streams lives under internal/ and
// cmd/.
//
//	go get github.com/katalvlaran/leafperf/perftable
package leafperf
