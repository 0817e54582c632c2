// Package mocks holds testify mocks for the evaluator contracts, for tests of
// code that drives a script engine without compiling a script.
package mocks

import (
	"context"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/platform"
	"github.com/stretchr/testify/mock"
)

// Evaluator mocks platform.Evaluator and the Invoke method the Risor entry
// point calls.
type Evaluator struct {
	mock.Mock
}

func response(args mock.Arguments) (platform.EvaluatorResponse, error) {
	resp, _ := args.Get(0).(platform.EvaluatorResponse)
	return resp, args.Error(1)
}

func (m *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	return response(m.Called(ctx))
}

func (m *Evaluator) Invoke(
	ctx context.Context,
	closure any,
	args callback.Args,
) (platform.EvaluatorResponse, error) {
	return response(m.Called(ctx, closure, args))
}

// AddDataToContext returns the incoming ctx when the first return value is nil.
func (m *Evaluator) AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error) {
	ret := m.Called(ctx, d)
	if enriched, ok := ret.Get(0).(context.Context); ok {
		return enriched, ret.Error(1)
	}
	return ctx, ret.Error(1)
}
