package internal

import (
	risorLib "github.com/risor-io/risor"
	"github.com/robbyt/go-polybridge/callback"
)

// ConvertToRisorOptions wraps the input data in a single global named ctxKey.
//
// For example, if the inputData is {"closure": {...}, "args": ["x"]}, the output will be:
//
//	[]risorLib.Option{
//	  risorLib.WithGlobal("ctx", map[string]any{
//	    "closure": {...},
//	    "args": []any{"x"},
//	  }),
//	}
func ConvertToRisorOptions(ctxKey string, inputData map[string]any) []risorLib.Option {
	return []risorLib.Option{
		risorLib.WithGlobal(ctxKey, normalize(inputData)),
	}
}

// normalize rewrites named and typed Go containers into the plain shapes the
// Risor object converter understands.
func normalize(v any) any {
	switch val := v.(type) {
	case callback.Args:
		if val == nil {
			return nil
		}
		return normalize([]any(val))
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalize(elem)
		}
		return out
	case []float64:
		out := make([]any, len(val))
		for i, f := range val {
			out[i] = f
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = normalize(elem)
		}
		return out
	case map[string]float64:
		out := make(map[string]any, len(val))
		for k, f := range val {
			out[k] = f
		}
		return out
	default:
		return v
	}
}
