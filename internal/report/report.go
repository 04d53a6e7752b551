// Package report decodes performance records and encodes performance tables
// for the CLI. It is the only place in the module that performs I/O.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/leafperf/perftable"
	"gopkg.in/yaml.v3"
)

// Format names a supported serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for a format a given operation cannot handle.
var ErrUnsupportedFormat = errors.New("report: unsupported format")

// ParseFormat accepts json, yaml/yml and csv, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// DecodeInputs reads either a single record or a sequence of records.
func DecodeInputs(r io.Reader, format Format) ([]perftable.PerformanceInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("report: read input: %w", err)
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("DecodeInputs: %w: %q", ErrUnsupportedFormat, string(format))
	}
}

func decodeJSON(data []byte) ([]perftable.PerformanceInput, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []perftable.PerformanceInput
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return nil, fmt.Errorf("report: decode json: %w", err)
		}

		return many, nil
	}

	var one perftable.PerformanceInput
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, fmt.Errorf("report: decode json: %w", err)
	}

	return []perftable.PerformanceInput{one}, nil
}

func decodeYAML(data []byte) ([]perftable.PerformanceInput, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("report: decode yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil // empty document
	}

	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var many []perftable.PerformanceInput
		if err := root.Decode(&many); err != nil {
			return nil, fmt.Errorf("report: decode yaml: %w", err)
		}

		return many, nil
	}

	var one perftable.PerformanceInput
	if err := root.Decode(&one); err != nil {
		return nil, fmt.Errorf("report: decode yaml: %w", err)
	}

	return []perftable.PerformanceInput{one}, nil
}

// formatValue renders v in its shortest round-trippable form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// EncodeCSV writes a header of the column names followed by one line per row.
func EncodeCSV(w io.Writer, t *perftable.Table) error {
	if t == nil {
		return fmt.Errorf("EncodeCSV: %w", perftable.ErrNilTable)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}

	line := make([]string, t.Cols())
	for i, rec := range t.Records() {
		for j, v := range rec {
			line[j] = formatValue(v)
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("report: write csv row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// EncodeJSON writes an array (one entry per table) of arrays of row objects.
// Object keys follow the fixed column order; NaN and ±Inf become null.
func EncodeJSON(w io.Writer, tables []*perftable.Table) error {
	cols := perftable.Columns()

	var buf bytes.Buffer
	buf.WriteByte('[')
	for ti, t := range tables {
		if t == nil {
			return fmt.Errorf("EncodeJSON: table %d: %w", ti, perftable.ErrNilTable)
		}
		if ti > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('[')
		for ri, rec := range t.Records() {
			if ri > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('{')
			for j, v := range rec {
				if j > 0 {
					buf.WriteByte(',')
				}
				buf.WriteString(strconv.Quote(cols[j]))
				buf.WriteByte(':')
				if math.IsNaN(v) || math.IsInf(v, 0) {
					buf.WriteString("null") // JSON has no NaN/Inf literals
					continue
				}
				buf.WriteString(formatValue(v))
			}
			buf.WriteByte('}')
		}
		buf.WriteByte(']')
	}
	buf.WriteString("]\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("report: write json: %w", err)
	}

	return nil
}
