package data

import (
	"context"
	"maps"

	"github.com/robbyt/go-polybridge/platform/constants"
)

// StaticProvider serves the same map on every call, such as a resource's
// load-time settings.
type StaticProvider struct {
	data map[string]any
}

func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = map[string]any{}
	}
	return &StaticProvider{data: data}
}

// GetData returns a shallow copy, so a caller's changes do not leak into the next call.
func (p *StaticProvider) GetData(context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}

// AddDataToContext always fails with ErrStaticProviderNoRuntimeUpdates.
func (p *StaticProvider) AddDataToContext(ctx context.Context, _ ...map[string]any) (context.Context, error) {
	return ctx, ErrStaticProviderNoRuntimeUpdates
}

// EvalProvider is the provider the engine constructors use. Values staged on
// the context with AddDataToContext sit over static, which may be nil.
func EvalProvider(static map[string]any) Provider {
	dynamic := NewContextProvider(constants.EvalData)
	if static == nil {
		return dynamic
	}
	return NewCompositeProvider(NewStaticProvider(static), dynamic)
}
