package evaluator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-polybridge/engines/starlark/internal"
	"github.com/robbyt/go-polybridge/internal/helpers"
	starlarkLib "go.starlark.net/starlark"
)

// execResult is the Value an Eval produced, plus how long it ran and which
// executable ran it.
type execResult struct {
	*Value
	elapsed time.Duration
	exeID   string
	logger  *slog.Logger
}

func newEvalResult(
	handler slog.Handler,
	val starlarkLib.Value,
	elapsed time.Duration,
	exeID string,
) *execResult {
	_, logger := helpers.SetupLogger(handler, "starlark", "execResult")
	return &execResult{Value: newValue(val), elapsed: elapsed, exeID: exeID, logger: logger}
}

func (r *execResult) String() string {
	return fmt.Sprintf("ExecResult{Type: %s, Value: %s, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.Inspect(), r.GetExecTime(), r.exeID)
}

func (r *execResult) GetScriptExeID() string { return r.exeID }

func (r *execResult) GetExecTime() string { return r.elapsed.String() }

// Interface converts the result to Go. A result with no Go form is logged
// and reported as nil.
func (r *execResult) Interface() any {
	out, err := internal.ConvertStarlarkValueToInterface(r.Starlark())
	if err != nil {
		r.logger.Error("failed to convert starlark value", "error", err, "type", r.Type())
		return nil
	}
	return out
}
