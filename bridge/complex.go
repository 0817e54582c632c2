package bridge

import (
	"context"
	"fmt"

	"github.com/robbyt/go-polybridge/pair"
	"github.com/robbyt/go-polybridge/platform"
	"github.com/robbyt/go-polybridge/platform/data"
)

// Complex is a proxy for one scripted Complex record. The record lives in the
// script engine; methods run the script's functions against it, so changes
// made by Add are visible to every later call.
type Complex struct {
	caller Caller
	value  platform.Value
}

// NewComplex constructs a record through the resource's constructor.
func NewComplex(ctx context.Context, c Caller, real, imag float64) (*Complex, error) {
	return construct(ctx, c, fnComplex, real, imag)
}

// NewComplexFactory constructs a record through the resource's factory function.
func NewComplexFactory(ctx context.Context, c Caller, real, imag float64) (*Complex, error) {
	return construct(ctx, c, fnNewComplex, real, imag)
}

func construct(ctx context.Context, c Caller, name string, real, imag float64) (*Complex, error) {
	v, err := c.Call(ctx, name, real, imag)
	if err != nil {
		return nil, err
	}
	if v.Type() != data.MAP {
		return nil, unexpected(name, data.MAP, v)
	}
	return &Complex{caller: c, value: v}, nil
}

func (x *Complex) String() string {
	return fmt.Sprintf("bridge.Complex{%s}", x.value.Inspect())
}

// Value returns the live script value behind the proxy.
func (x *Complex) Value() platform.Value {
	return x.value
}

// Add accumulates other into x inside the script.
func (x *Complex) Add(ctx context.Context, other *Complex) error {
	v, err := x.caller.Call(ctx, fnAdd, x.value, other.value)
	if err != nil {
		return err
	}
	if err := data.AsNone(v.Interface()); err != nil {
		return fmt.Errorf("%s: %w", fnAdd, err)
	}
	return nil
}

// ToString returns the script's display string. With no extra the script's
// default is used; at most one extra is accepted.
func (x *Complex) ToString(ctx context.Context, extra ...any) (string, error) {
	if len(extra) > 1 {
		return "", fmt.Errorf("%s: at most one extra, got %d", fnToString, len(extra))
	}

	v, err := x.caller.Call(ctx, fnToString, append([]any{x.value}, extra...)...)
	if err != nil {
		return "", err
	}
	s, err := data.AsString(v.Interface())
	if err != nil {
		return "", fmt.Errorf("%s: %w", fnToString, err)
	}
	return s, nil
}

// ToArray returns [real, imag].
func (x *Complex) ToArray(ctx context.Context) ([]float64, error) {
	v, err := x.caller.Call(ctx, fnToArray, x.value)
	if err != nil {
		return nil, err
	}
	fs, err := data.AsFloats(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fnToArray, err)
	}
	return fs, nil
}

// ToDictionary returns the {"real", "imag"} mapping.
func (x *Complex) ToDictionary(ctx context.Context) (map[string]float64, error) {
	v, err := x.caller.Call(ctx, fnToDictionary, x.value)
	if err != nil {
		return nil, err
	}
	m, err := data.AsFloatMap(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fnToDictionary, err)
	}
	return m, nil
}

// EchoArray hands seq to the script and returns what comes back.
func (x *Complex) EchoArray(ctx context.Context, seq []any) ([]any, error) {
	if seq == nil {
		seq = []any{}
	}
	v, err := x.caller.Call(ctx, fnEchoArray, x.value, seq)
	if err != nil {
		return nil, err
	}
	out, err := data.AsSequence(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fnEchoArray, err)
	}
	return out, nil
}

// CallMe passes closure to the script, which wraps it in a callback handle,
// calls it once with s and closes it. The closure crosses the script
// untouched; the registered entry point decides how to call it.
func (x *Complex) CallMe(ctx context.Context, closure any, s string) (map[string]float64, error) {
	v, err := x.caller.Call(ctx, fnCallMe, x.value, data.Opaque{Value: closure}, s)
	if err != nil {
		return nil, err
	}
	m, err := data.AsFloatMap(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fnCallMe, err)
	}
	return m, nil
}

// Pair copies the record into a Go-native NumericPair.
func (x *Complex) Pair(ctx context.Context) (*pair.NumericPair, error) {
	m, err := x.ToDictionary(ctx)
	if err != nil {
		return nil, err
	}
	return pair.FromMapping(m)
}
