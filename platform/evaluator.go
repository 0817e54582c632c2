package platform

import (
	"context"

	"github.com/robbyt/go-polybridge/platform/data"
)

// EvalOnly is the interface for the generic code evaluator.
type EvalOnly interface {
	// Eval runs the pre-compiled script with data from the context.
	// Runtime data is retrieved using the ExecutableUnit's DataProvider, so a
	// program compiled once can be evaluated many times with different input.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// Evaluator combines Eval with the data.Setter preparation step.
type Evaluator interface {
	EvalOnly
	data.Setter
}
