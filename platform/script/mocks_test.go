package script

import (
	"io"

	engineTypes "github.com/robbyt/go-polybridge/engines/types"
	"github.com/stretchr/testify/mock"
)

// MockCompiler implements Compiler for tests
type MockCompiler struct {
	mock.Mock
}

func (m *MockCompiler) Compile(scriptReader io.ReadCloser) (ExecutableContent, error) {
	args := m.Called(scriptReader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ExecutableContent), args.Error(1)
}

// MockExecutableContent implements ExecutableContent for tests
type MockExecutableContent struct {
	mock.Mock
}

func (m *MockExecutableContent) GetSource() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockExecutableContent) GetByteCode() any {
	args := m.Called()
	return args.Get(0)
}

func (m *MockExecutableContent) GetEngineType() engineTypes.Type {
	args := m.Called()
	return args.Get(0).(engineTypes.Type)
}
