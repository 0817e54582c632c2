package internal

import (
	"errors"
	"fmt"
	"math"
	"net/url"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/platform/constants"
	"github.com/robbyt/go-polybridge/platform/data"
	starlarkLib "go.starlark.net/starlark"
)

// ErrUnsupportedType is returned for values that have no conversion.
var ErrUnsupportedType = errors.New("unsupported type")

type mapper interface {
	Mapping() map[string]float64
}

// ConvertStarlarkValueToInterface converts a Starlark value to Go. Lists,
// tuples and sets become []any, dicts become map[string]any keyed by the
// key's string form, and an Opaque gives back the Go value it carries.
func ConvertStarlarkValueToInterface(v starlarkLib.Value) (any, error) {
	switch v := v.(type) {
	case nil, starlarkLib.NoneType:
		return nil, nil
	case starlarkLib.Bool:
		return bool(v), nil
	case starlarkLib.Int:
		if i, ok := v.Int64(); ok {
			return i, nil
		}
		return nil, fmt.Errorf("integer %s overflows int64", v)
	case starlarkLib.Float:
		return float64(v), nil
	case starlarkLib.String:
		return string(v), nil
	case *Opaque:
		return v.Unwrap(), nil
	case *starlarkLib.Dict:
		return fromDict(v)
	case starlarkLib.Iterable:
		switch v.(type) {
		case *starlarkLib.List, starlarkLib.Tuple, *starlarkLib.Set:
			return fromIterable(v)
		}
	}
	return nil, fmt.Errorf("%w: Starlark %s", ErrUnsupportedType, v.Type())
}

func fromDict(d *starlarkLib.Dict) (map[string]any, error) {
	out := make(map[string]any, d.Len())
	for _, kv := range d.Items() {
		key := kv[0].String()
		if s, ok := kv[0].(starlarkLib.String); ok {
			key = string(s)
		}
		v, err := ConvertStarlarkValueToInterface(kv[1])
		if err != nil {
			return nil, fmt.Errorf("failed to convert dict value for key %q: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}

func fromIterable(seq starlarkLib.Iterable) ([]any, error) {
	out := []any{}
	iter := seq.Iterate()
	defer iter.Done()

	var elem starlarkLib.Value
	for iter.Next(&elem) {
		v, err := ConvertStarlarkValueToInterface(elem)
		if err != nil {
			return nil, fmt.Errorf("failed to convert element %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ConvertToStarlarkFormat wraps inputData in a single ctx dict global. Every
// key that fails to convert is reported.
func ConvertToStarlarkFormat(inputData map[string]any) (starlarkLib.StringDict, error) {
	ctxDict, err := toDict(inputData, ConvertToStarlarkValue)
	if err != nil {
		return nil, fmt.Errorf("failed to convert input data: %w", err)
	}
	return starlarkLib.StringDict{constants.Ctx: ctxDict}, nil
}

// ConvertToStarlarkValue converts a Go value to Starlark. Starlark values
// pass through and data.Opaque becomes *Opaque.
func ConvertToStarlarkValue(v any) (starlarkLib.Value, error) {
	switch val := v.(type) {
	case nil:
		return starlarkLib.None, nil
	case starlarkLib.Value:
		return val, nil
	case data.Opaque:
		return NewOpaque(val.Value), nil
	case bool:
		return starlarkLib.Bool(val), nil
	case int:
		return starlarkLib.MakeInt(val), nil
	case int32:
		return starlarkLib.MakeInt64(int64(val)), nil
	case int64:
		return starlarkLib.MakeInt64(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return starlarkLib.MakeUint64(val), nil
		}
		return starlarkLib.MakeInt64(int64(val)), nil
	case float32:
		return starlarkLib.Float(val), nil
	case float64:
		return starlarkLib.Float(val), nil
	case string:
		return starlarkLib.String(val), nil
	case *url.URL:
		return starlarkLib.String(val.String()), nil
	case callback.Args:
		if val.IsTeardown() {
			return starlarkLib.None, nil
		}
		return toList([]any(val), ConvertToStarlarkValue)
	case []any:
		return toList(val, ConvertToStarlarkValue)
	case []float64:
		return toList(val, float)
	case []int:
		return toList(val, integer)
	case []string:
		return toList(val, str)
	case map[string]struct{}:
		set := starlarkLib.NewSet(len(val))
		for k := range val {
			if err := set.Insert(starlarkLib.String(k)); err != nil {
				return nil, fmt.Errorf("failed to insert set element: %w", err)
			}
		}
		return set, nil
	case map[string]float64:
		return toDict(val, float)
	case map[string]any:
		return toDict(val, ConvertToStarlarkValue)
	case mapper:
		return toDict(val.Mapping(), float)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func float(f float64) (starlarkLib.Value, error) { return starlarkLib.Float(f), nil }
func integer(n int) (starlarkLib.Value, error) { return starlarkLib.MakeInt(n), nil }
func str(s string) (starlarkLib.Value, error) { return starlarkLib.String(s), nil }

func toList[T any](in []T, conv func(T) (starlarkLib.Value, error)) (starlarkLib.Value, error) {
	elems := make([]starlarkLib.Value, len(in))
	for i, e := range in {
		v, err := conv(e)
		if err != nil {
			return nil, fmt.Errorf("failed to convert list element %d: %w", i, err)
		}
		elems[i] = v
	}
	return starlarkLib.NewList(elems), nil
}

// toDict converts every entry and joins the failures.
func toDict[T any](in map[string]T, conv func(T) (starlarkLib.Value, error)) (starlarkLib.Value, error) {
	dict := starlarkLib.NewDict(len(in))
	var errz []error
	for k, e := range in {
		v, err := conv(e)
		if err == nil {
			err = dict.SetKey(starlarkLib.String(k), v)
		}
		if err != nil {
			errz = append(errz, fmt.Errorf("key %q: %w", k, err))
		}
	}
	if len(errz) > 0 {
		return nil, errors.Join(errz...)
	}
	return dict, nil
}
