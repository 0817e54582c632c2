package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// CompositeProvider layers providers. GetData deep-merges their maps in
// order, so later providers win; the usual stack is a StaticProvider with a
// resource's settings under a ContextProvider with per-call data.
type CompositeProvider struct {
	providers []Provider
}

func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{providers: providers}
}

func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	merged := map[string]any{}
	for i, provider := range p.providers {
		if provider == nil {
			continue
		}
		layer, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}
		merged = overlay(merged, layer)
	}
	return merged, nil
}

// overlay returns a copy of base with top laid over it. Maps present on both
// sides are overlaid recursively; anything else in top replaces base.
func overlay(base, top map[string]any) map[string]any {
	out := maps.Clone(base)
	for k, v := range top {
		below, belowIsMap := out[k].(map[string]any)
		above, aboveIsMap := v.(map[string]any)
		if belowIsMap && aboveIsMap {
			out[k] = overlay(below, above)
		} else {
			out[k] = v
		}
	}
	return out
}

// AddDataToContext offers the data to each provider in turn, threading the
// context through the ones that accept it. Static providers always refuse;
// that refusal is the result only when no other provider is present. With
// other providers present the call fails only if all of them fail.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	var refused, failed []error
	staged, accepted := ctx, 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}
		next, err := provider.AddDataToContext(staged, data...)
		switch {
		case errors.Is(err, ErrStaticProviderNoRuntimeUpdates):
			refused = append(refused, fmt.Errorf("error from provider %d: %w", i, err))
		case err != nil:
			failed = append(failed, fmt.Errorf("error from provider %d: %w", i, err))
		default:
			staged = next
			accepted++
		}
	}

	switch {
	case accepted > 0:
		return staged, nil
	case len(failed) > 0:
		return ctx, errors.Join(failed...)
	default:
		return ctx, errors.Join(refused...)
	}
}
