package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	simpleContent    = `classvar = "Complex"`
	multilineContent = "def newComplex(real, imag):\n    return Complex(real, imag)\n"
)

func readAll(t *testing.T, l Loader) string {
	t.Helper()
	reader, err := l.GetReader()
	require.NoError(t, err)
	defer func() { require.NoError(t, reader.Close()) }()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(content)
}

func TestNewFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "simple content", content: simpleContent, want: simpleContent},
		{name: "content is trimmed", content: "  \n" + simpleContent + "\n ", want: simpleContent},
		{name: "multiline", content: multilineContent, want: strings.TrimSpace(multilineContent)},
		{name: "empty", content: "", wantErr: true},
		{name: "whitespace only", content: " \n\t ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewFromString(tt.content)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrScriptNotAvailable)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, readAll(t, l))
			assert.Equal(t, "string", l.GetSourceURL().Scheme)
			assert.Contains(t, l.String(), "loader.FromString{Chars:")

			// The reader can be requested repeatedly.
			assert.Equal(t, tt.want, readAll(t, l))
		})
	}

	t.Run("same content gives the same URL", func(t *testing.T) {
		a, err := NewFromString(simpleContent)
		require.NoError(t, err)
		b, err := NewFromString(simpleContent)
		require.NoError(t, err)
		assert.Equal(t, a.GetSourceURL().String(), b.GetSourceURL().String())
	})
}

func TestNewFromBytes(t *testing.T) {
	t.Parallel()

	l, err := NewFromBytes([]byte(multilineContent))
	require.NoError(t, err)
	assert.Equal(t, multilineContent, readAll(t, l))
	assert.Equal(t, "bytes", l.GetSourceURL().Scheme)
	assert.Equal(t, fmt.Sprintf("loader.FromBytes{Bytes: %d}", len(multilineContent)), l.String())

	_, err = NewFromBytes(nil)
	require.ErrorIs(t, err, ErrScriptNotAvailable)

	_, err = NewFromBytes([]byte(" \n "))
	require.ErrorIs(t, err, ErrScriptNotAvailable)
}

func TestNewFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "complex.star")
	require.NoError(t, os.WriteFile(path, []byte(simpleContent), 0o600))

	t.Run("absolute path", func(t *testing.T) {
		l, err := NewFromDisk(path)
		require.NoError(t, err)
		assert.Equal(t, simpleContent, readAll(t, l))
		assert.Equal(t, "file", l.GetSourceURL().Scheme)
		assert.Contains(t, l.String(), "SHA256:")
	})

	t.Run("file URL", func(t *testing.T) {
		l, err := NewFromDisk("file://" + path)
		require.NoError(t, err)
		assert.Equal(t, simpleContent, readAll(t, l))
	})

	t.Run("missing file fails on read", func(t *testing.T) {
		l, err := NewFromDisk(filepath.Join(dir, "missing.star"))
		require.NoError(t, err)
		_, err = l.GetReader()
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		assert.NotContains(t, l.String(), "SHA256")
	})

	t.Run("relative path", func(t *testing.T) {
		_, err := NewFromDisk("resources/complex.star")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
	})

	t.Run("other scheme", func(t *testing.T) {
		_, err := NewFromDisk("https://example.com/complex.star")
		require.ErrorIs(t, err, ErrSchemeUnsupported)
	})

	t.Run("root", func(t *testing.T) {
		_, err := NewFromDisk("/")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
	})
}

func TestNewFromFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"complex.star": &fstest.MapFile{Data: []byte(simpleContent)},
		"dir/entry.risor": &fstest.MapFile{Data: []byte("nil")},
	}

	l, err := NewFromFS(fsys, "complex.star")
	require.NoError(t, err)
	assert.Equal(t, simpleContent, readAll(t, l))
	assert.Equal(t, "fs://embedded/complex.star", l.GetSourceURL().String())

	_, err = NewFromFS(fsys, "missing.star")
	require.ErrorIs(t, err, ErrScriptNotAvailable)

	_, err = NewFromFS(fsys, "dir")
	require.ErrorIs(t, err, ErrScriptNotAvailable)

	_, err = NewFromFS(fsys, "../escape.star")
	require.ErrorIs(t, err, ErrScriptNotAvailable)

	_, err = NewFromFS(nil, "complex.star")
	require.ErrorIs(t, err, ErrScriptNotAvailable)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("forced read error") }

func TestNewFromIoReader(t *testing.T) {
	t.Parallel()

	l, err := NewFromIoReader(strings.NewReader(simpleContent))
	require.NoError(t, err)
	assert.Equal(t, simpleContent, readAll(t, l))
	assert.Equal(t, simpleContent, readAll(t, l))
	assert.Contains(t, l.String(), "loader.FromIoReader")

	_, err = NewFromIoReader(nil)
	require.ErrorIs(t, err, ErrScriptNotAvailable)

	_, err = NewFromIoReader(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forced read error")
}

func TestInferLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "complex.star")
	require.NoError(t, os.WriteFile(path, []byte(simpleContent), 0o600))

	tests := []struct {
		name     string
		input    any
		wantType string
		wantErr  error
	}{
		{name: "absolute path", input: path, wantType: "*loader.FromDisk"},
		{name: "file URL", input: "file://" + path, wantType: "*loader.FromDisk"},
		{name: "inline source", input: simpleContent, wantType: "*loader.FromString"},
		{name: "single token", input: "True", wantType: "*loader.FromString"},
		{name: "bytes", input: []byte(simpleContent), wantType: "*loader.FromBytes"},
		{name: "reader", input: strings.NewReader(simpleContent), wantType: "*loader.FromIoReader"},
		{name: "http is unsupported", input: "https://example.com/complex.star", wantErr: ErrSchemeUnsupported},
		{name: "empty string", input: "  ", wantErr: ErrScriptNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := InferLoader(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, typeName(l))
		})
	}

	t.Run("loader passes through", func(t *testing.T) {
		existing, err := NewFromString(simpleContent)
		require.NoError(t, err)
		l, err := InferLoader(existing)
		require.NoError(t, err)
		assert.Same(t, existing, l)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := InferLoader(42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported input type: int")
	})
}

func typeName(v any) string {
	switch v.(type) {
	case *FromDisk:
		return "*loader.FromDisk"
	case *FromString:
		return "*loader.FromString"
	case *FromBytes:
		return "*loader.FromBytes"
	case *FromIoReader:
		return "*loader.FromIoReader"
	default:
		return "unknown"
	}
}

func TestMockLoader(t *testing.T) {
	t.Parallel()

	m := NewMockLoaderWithContent([]byte(simpleContent))
	assert.Equal(t, simpleContent, readAll(t, m))
	m.AssertExpectations(t)
}

func TestSourceID(t *testing.T) {
	t.Parallel()

	l, err := NewFromString(simpleContent)
	require.NoError(t, err)
	assert.Equal(t, l.GetSourceURL().String(), SourceID(l))
	assert.True(t, strings.HasPrefix(SourceID(l), "string://inline/"))

	m := new(MockLoader)
	m.On("GetSourceURL").Return(nil)
	assert.Empty(t, SourceID(m))
	m.AssertExpectations(t)
}
