// SPDX-License-Identifier: MIT

package perftable

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// errBadValue is wrapped with the offending item position.
var errBadValue = errors.New("perftable: value must be a number or a boolean")

// boolValue maps a validity flag to its stored numeric form.
func boolValue(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// toValue accepts the decoded forms of a single item.
func toValue(item any) (float64, bool) {
	switch x := item.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case bool:
		return boolValue(x), true
	default:
		return 0, false
	}
}

// UnmarshalJSON decodes a JSON array of numbers and/or booleans.
// JSON null leaves the receiver untouched (field absent).
func (v *Values) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("Values.UnmarshalJSON: %w", err)
	}

	out := make(Values, len(items)) // non-nil even when empty
	for i, item := range items {
		f, ok := toValue(item)
		if !ok {
			return fmt.Errorf("Values.UnmarshalJSON: item %d: %w", i, errBadValue)
		}
		out[i] = f
	}
	*v = out

	return nil
}

// UnmarshalYAML decodes a YAML sequence of numbers and/or booleans.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("Values.UnmarshalYAML: line %d: expected a sequence", node.Line)
	}

	out := make(Values, len(node.Content))
	var item any
	for i, child := range node.Content {
		item = nil
		if err := child.Decode(&item); err != nil {
			return fmt.Errorf("Values.UnmarshalYAML: line %d: %w", child.Line, err)
		}
		f, ok := toValue(item)
		if !ok {
			return fmt.Errorf("Values.UnmarshalYAML: line %d item %d: %w", child.Line, i, errBadValue)
		}
		out[i] = f
	}
	*v = out

	return nil
}

// target resolves an exact sub-field key ("Valid" or "Estime").
// Any other spelling, including a case variant, is rejected with ErrUnknownField.
func (s *VariableStats) target(key string) (*Values, error) {
	switch Field(key) {
	case FieldValid:
		return &s.Valid, nil
	case FieldEstime:
		return &s.Estime, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
}

// UnmarshalJSON decodes {"Valid": [...], "Estime": [...]} with exact keys.
// An absent key leaves its field nil so Build reports it as missing.
func (s *VariableStats) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("VariableStats.UnmarshalJSON: %w", err)
	}

	var out VariableStats
	for key, msg := range raw {
		dst, err := out.target(key)
		if err != nil {
			return err
		}
		if err = dst.UnmarshalJSON(msg); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	*s = out

	return nil
}

// UnmarshalYAML decodes a Valid/Estime mapping with exact keys.
func (s *VariableStats) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("VariableStats.UnmarshalYAML: line %d: expected a mapping", node.Line)
	}

	var out VariableStats
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		dst, err := out.target(key.Value)
		if err != nil {
			return err
		}
		if err = val.Decode(dst); err != nil {
			return fmt.Errorf("%s: %w", key.Value, err)
		}
	}
	*s = out

	return nil
}

// UnmarshalJSON decodes a record keyed by exact variable names.
// Unknown variables are rejected with ErrUnknownVariable, unknown
// sub-fields with ErrUnknownField.
func (p *PerformanceInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("PerformanceInput.UnmarshalJSON: %w", err)
	}

	out := make(PerformanceInput, len(raw))
	for key, msg := range raw {
		v, err := ParseVariable(key)
		if err != nil {
			return err
		}
		var stats VariableStats
		if err = stats.UnmarshalJSON(msg); err != nil {
			return fmt.Errorf("PerformanceInput.UnmarshalJSON: %s: %w", key, err)
		}
		out[v] = stats
	}
	*p = out

	return nil
}

// UnmarshalYAML decodes a record keyed by exact variable names.
func (p *PerformanceInput) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("PerformanceInput.UnmarshalYAML: line %d: expected a mapping", node.Line)
	}

	out := make(PerformanceInput, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		v, err := ParseVariable(key.Value)
		if err != nil {
			return err
		}
		var stats VariableStats
		if err = val.Decode(&stats); err != nil {
			return fmt.Errorf("PerformanceInput.UnmarshalYAML: %s: %w", key.Value, err)
		}
		out[v] = stats
	}
	*p = out

	return nil
}
