package internal

import (
	"testing"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/platform/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToRisorOptions(t *testing.T) {
	t.Parallel()

	options := ConvertToRisorOptions(constants.Ctx, map[string]any{})
	require.Len(t, options, 1)

	options = ConvertToRisorOptions(constants.Ctx, map[string]any{"closure": "x"})
	require.Len(t, options, 1)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "args", in: callback.Args{"a", 1}, want: []any{"a", 1}},
		{name: "teardown args", in: callback.Args(nil), want: nil},
		{name: "floats", in: []float64{1, 2}, want: []any{1.0, 2.0}},
		{name: "float map", in: map[string]float64{"real": 1}, want: map[string]any{"real": 1.0}},
		{
			name: "nested",
			in:   map[string]any{"args": callback.Args{[]float64{3}}},
			want: map[string]any{"args": []any{[]any{3.0}}},
		},
		{name: "scalar", in: "s", want: "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.in))
		})
	}
}
