package data

import (
	"fmt"
)

// Types of an object as a string.
type Types string

// The value shapes a script can hand back to the host.
const (
	BOOL     Types = "bool"
	ERROR    Types = "error"
	FUNCTION Types = "function"
	INT      Types = "int"
	MAP      Types = "map"
	STRING   Types = "string"
	NONE     Types = "none"
	FLOAT    Types = "float"
	LIST     Types = "list"
	TUPLE    Types = "tuple"
	SET      Types = "set"
	OBJECT   Types = "object"
	OPAQUE   Types = "opaque"
)

// Opaque carries a host value through a script without conversion. Scripts
// can store and pass it along but cannot inspect it; engines unwrap it again
// when it comes back to Go.
type Opaque struct {
	Value any
}

func (o Opaque) String() string {
	return fmt.Sprintf("<opaque %T>", o.Value)
}

// AsString validates that v is a string.
func AsString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected %s, got %T", ErrUnexpectedType, STRING, v)
	}
	return s, nil
}

// AsNone validates that v carries no value.
func AsNone(v any) error {
	if v != nil {
		return fmt.Errorf("%w: expected %s, got %T", ErrUnexpectedType, NONE, v)
	}
	return nil
}

// AsSequence validates that v is an ordered sequence.
func AsSequence(v any) ([]any, error) {
	switch seq := v.(type) {
	case []any:
		return seq, nil
	case []float64:
		out := make([]any, len(seq))
		for i, f := range seq {
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected %s, got %T", ErrUnexpectedType, LIST, v)
	}
}

// AsFloats validates that v is a sequence of numbers and widens each to float64.
func AsFloats(v any) ([]float64, error) {
	if fs, ok := v.([]float64); ok {
		return fs, nil
	}

	seq, err := AsSequence(v)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(seq))
	for i, elem := range seq {
		f, err := toFloat(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// AsFloatMap validates that v is a mapping from strings to numbers.
func AsFloatMap(v any) (map[string]float64, error) {
	switch m := v.(type) {
	case map[string]float64:
		return m, nil
	case map[string]any:
		out := make(map[string]float64, len(m))
		for k, elem := range m {
			f, err := toFloat(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected %s, got %T", ErrUnexpectedType, MAP, v)
	}
}

// AsIntGrid validates that v is a sequence of rows of integers.
func AsIntGrid(v any) ([][]int, error) {
	rows, err := AsSequence(v)
	if err != nil {
		return nil, err
	}

	grid := make([][]int, len(rows))
	for r, row := range rows {
		cells, err := AsSequence(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		grid[r] = make([]int, len(cells))
		for c, cell := range cells {
			n, err := toInt(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", r, c, err)
			}
			grid[r][c] = n
		}
	}
	return grid, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: expected %s, got %T", ErrUnexpectedType, FLOAT, v)
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: expected %s, got %T", ErrUnexpectedType, INT, v)
	}
}
