package pair

import (
	"context"
	"errors"
	"fmt"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/platform/data"
)

// InvokeExternalCallback builds a callback handle for closure, calls it once
// with payload as the only argument, and returns the mapping view of the result.
// The result must implement Mapper or be a record or mapping of numbers.
// The handle is always closed; a teardown error is joined to the returned error.
func (p *NumericPair) InvokeExternalCallback(
	ctx context.Context,
	bindings *callback.Bindings,
	closure any,
	payload any,
) (result map[string]float64, err error) {
	h, err := callback.New(bindings, closure)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := h.Close(ctx); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	out, err := h.Invoke(ctx, callback.Args{payload})
	if err != nil {
		return nil, err
	}
	return toMapping(out)
}

// toMapping accepts a Mapper, a scripted Complex record ({"r", "i"}) or a
// {"real", "imag"} mapping. Any other shape fails with ErrNotMappable.
func toMapping(v any) (map[string]float64, error) {
	if m, ok := v.(Mapper); ok {
		return m.Mapping(), nil
	}

	m, err := data.AsFloatMap(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMappable, err)
	}

	r, hasR := m[RecordReal]
	i, hasI := m[RecordImag]
	if hasR && hasI {
		return New(r, i).Mapping(), nil
	}

	p, err := FromMapping(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMappable, err)
	}
	return p.Mapping(), nil
}
