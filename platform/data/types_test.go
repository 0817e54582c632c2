package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsString(t *testing.T) {
	t.Parallel()

	s, err := AsString("(4.000000 1.000000 x)")
	require.NoError(t, err)
	assert.Equal(t, "(4.000000 1.000000 x)", s)

	_, err = AsString(1.0)
	require.ErrorIs(t, err, ErrUnexpectedType)
}

func TestAsNone(t *testing.T) {
	t.Parallel()

	require.NoError(t, AsNone(nil))
	require.ErrorIs(t, AsNone("something"), ErrUnexpectedType)
}

func TestAsSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		want    []any
		wantErr bool
	}{
		{name: "empty", input: []any{}, want: []any{}},
		{name: "mixed", input: []any{int64(1), "two", 3.0}, want: []any{int64(1), "two", 3.0}},
		{name: "floats", input: []float64{1, 2}, want: []any{1.0, 2.0}},
		{name: "map is not a sequence", input: map[string]any{}, wantErr: true},
		{name: "nil is not a sequence", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsSequence(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnexpectedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsFloats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		want    []float64
		wantErr bool
	}{
		{name: "float slice", input: []float64{4, 1}, want: []float64{4, 1}},
		{name: "numbers are widened", input: []any{4.0, int64(1), 2}, want: []float64{4, 1, 2}},
		{name: "string element", input: []any{4.0, "1"}, wantErr: true},
		{name: "not a sequence", input: "4,1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsFloats(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnexpectedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsFloatMap(t *testing.T) {
	t.Parallel()

	got, err := AsFloatMap(map[string]any{"real": 4.0, "imag": int64(1)})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"real": 4, "imag": 1}, got)

	typed := map[string]float64{"real": 1}
	got, err = AsFloatMap(typed)
	require.NoError(t, err)
	assert.Equal(t, typed, got)

	_, err = AsFloatMap(map[string]any{"real": "4"})
	require.ErrorIs(t, err, ErrUnexpectedType)

	_, err = AsFloatMap([]any{4.0})
	require.ErrorIs(t, err, ErrUnexpectedType)
}

func TestAsIntGrid(t *testing.T) {
	t.Parallel()

	got, err := AsIntGrid([]any{
		[]any{int64(0), int64(1)},
		[]any{int64(20), 3},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {20, 3}}, got)

	_, err = AsIntGrid([]any{[]any{1.5}})
	require.ErrorIs(t, err, ErrUnexpectedType)
	assert.Contains(t, err.Error(), "row 0, column 0")

	_, err = AsIntGrid([]any{"row"})
	require.ErrorIs(t, err, ErrUnexpectedType)
}

func TestOpaqueString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<opaque int>", Opaque{Value: 3}.String())
}
