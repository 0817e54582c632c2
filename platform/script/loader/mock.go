package loader

import (
	"bytes"
	"io"
	"net/url"

	"github.com/stretchr/testify/mock"
)

// MockLoader is a testify mock of Loader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) GetSourceURL() *url.URL {
	u, _ := m.Called().Get(0).(*url.URL)
	return u
}

func (m *MockLoader) GetReader() (io.ReadCloser, error) {
	ret := m.Called()
	r, _ := ret.Get(0).(io.ReadCloser)
	return r, ret.Error(1)
}

// NewMockLoaderWithContent returns a MockLoader that serves content once
// under a mock://inline URL.
func NewMockLoaderWithContent(content []byte) *MockLoader {
	m := new(MockLoader)
	m.On("GetReader").Return(io.NopCloser(bytes.NewReader(content)), nil).Once()
	m.On("GetSourceURL").Return(&url.URL{Scheme: "mock", Host: "inline"}).Maybe()
	return m
}
