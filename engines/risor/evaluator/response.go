package evaluator

import (
	"fmt"
	"log/slog"
	"time"

	risorObject "github.com/risor-io/risor/object"
	"github.com/robbyt/go-polybridge/internal/helpers"
	"github.com/robbyt/go-polybridge/platform/data"
)

// risorTypes maps Risor type names onto data.Types. Anything else is OBJECT.
var risorTypes = map[risorObject.Type]data.Types{
	"nil":      data.NONE,
	"bool":     data.BOOL,
	"int":      data.INT,
	"byte":     data.INT,
	"float":    data.FLOAT,
	"string":   data.STRING,
	"list":     data.LIST,
	"map":      data.MAP,
	"set":      data.SET,
	"function": data.FUNCTION,
	"builtin":  data.FUNCTION,
	"error":    data.ERROR,
}

// execResult is the Risor object a program ended on, plus how long it ran
// and which executable ran it.
type execResult struct {
	risorObject.Object
	elapsed time.Duration
	exeID   string
	logger  *slog.Logger
}

func newEvalResult(
	handler slog.Handler,
	obj risorObject.Object,
	elapsed time.Duration,
	exeID string,
) *execResult {
	_, logger := helpers.SetupLogger(handler, "risor", "execResult")
	return &execResult{Object: obj, elapsed: elapsed, exeID: exeID, logger: logger}
}

func (r *execResult) String() string {
	return fmt.Sprintf("ExecResult{Type: %s, Value: %s, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.Inspect(), r.GetExecTime(), r.exeID)
}

func (r *execResult) Type() data.Types {
	if r.Object == nil {
		return data.NONE
	}
	if t, ok := risorTypes[r.Object.Type()]; ok {
		return t
	}
	r.logger.Debug("unmapped risor type", "type", r.Object.Type())
	return data.OBJECT
}

func (r *execResult) GetScriptExeID() string { return r.exeID }

func (r *execResult) GetExecTime() string { return r.elapsed.String() }

func (r *execResult) Inspect() string {
	if r.Object == nil {
		return "nil"
	}
	return r.Object.Inspect()
}

func (r *execResult) Interface() any {
	if r.Object == nil {
		return nil
	}
	return r.Object.Interface()
}
