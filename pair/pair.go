// Package pair is the host-side numeric pair record: two float64 fields with
// in-place accumulation and three views (display string, ordered pair, mapping).
package pair

import (
	"fmt"
)

// DefaultExtra is the extra value String passes to DisplayString.
const DefaultExtra = "STRING"

// Keys used by Mapping and FromMapping.
const (
	KeyReal = "real"
	KeyImag = "imag"
)

// Field names of the scripted Complex record.
const (
	RecordReal = "r"
	RecordImag = "i"
)

// NumericPair holds a real and an imaginary part. No normalization is applied.
type NumericPair struct {
	Real float64
	Imag float64
}

// Mapper is implemented by values that can be viewed as a string-to-number mapping.
type Mapper interface {
	Mapping() map[string]float64
}

// New returns a pair holding real and imag verbatim.
func New(real, imag float64) *NumericPair {
	return &NumericPair{Real: real, Imag: imag}
}

// Accumulate adds other to p component-wise, in place. A nil other is a no-op.
func (p *NumericPair) Accumulate(other *NumericPair) {
	if other == nil {
		return
	}
	p.Real += other.Real
	p.Imag += other.Imag
}

// DisplayString formats both fields with six decimals followed by extra.
func (p *NumericPair) DisplayString(extra any) string {
	return fmt.Sprintf("(%f %f %v)", p.Real, p.Imag, extra)
}

func (p *NumericPair) String() string {
	return p.DisplayString(DefaultExtra)
}

// OrderedPair returns [real, imag].
func (p *NumericPair) OrderedPair() []float64 {
	return []float64{p.Real, p.Imag}
}

// FromOrderedPair is the inverse of OrderedPair.
func FromOrderedPair(seq []float64) (*NumericPair, error) {
	if len(seq) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSequence, len(seq))
	}
	return New(seq[0], seq[1]), nil
}

// Mapping returns {"real": real, "imag": imag}.
func (p *NumericPair) Mapping() map[string]float64 {
	return map[string]float64{
		KeyReal: p.Real,
		KeyImag: p.Imag,
	}
}

// FromMapping is the inverse of Mapping. Extra keys are ignored.
func FromMapping(m map[string]float64) (*NumericPair, error) {
	real, ok := m[KeyReal]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, KeyReal)
	}
	imag, ok := m[KeyImag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, KeyImag)
	}
	return New(real, imag), nil
}

// EchoSequence returns seq unchanged.
func EchoSequence(seq []any) []any {
	return seq
}
