package mocks

import (
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/stretchr/testify/mock"
)

// EvaluatorResponse mocks platform.EvaluatorResponse.
type EvaluatorResponse struct {
	mock.Mock
}

// Type reports the shape of the configured value. A data.Types value is
// returned as is, so tests can name the tag directly.
func (m *EvaluatorResponse) Type() data.Types {
	switch v := m.Called().Get(0).(type) {
	case data.Types:
		return v
	case nil:
		return data.NONE
	case bool:
		return data.BOOL
	case int, int64:
		return data.INT
	case float64:
		return data.FLOAT
	case string:
		return data.STRING
	case []any, []float64:
		return data.LIST
	case map[string]any, map[string]float64:
		return data.MAP
	case data.Opaque:
		return data.OPAQUE
	default:
		return data.OBJECT
	}
}

func (m *EvaluatorResponse) Interface() any {
	return m.Called().Get(0)
}

func (m *EvaluatorResponse) Inspect() string {
	return m.Called().String(0)
}

func (m *EvaluatorResponse) GetScriptExeID() string {
	return m.Called().String(0)
}

func (m *EvaluatorResponse) GetExecTime() string {
	return m.Called().String(0)
}
