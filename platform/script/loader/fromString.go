package loader

import (
	"fmt"
	"strings"
)

// FromString loads script source given as a string. Surrounding whitespace
// is dropped, so indentation from a Go raw string literal does not matter.
type FromString struct {
	inline
}

func NewFromString(content string) (*FromString, error) {
	in, err := newInline("string", []byte(strings.TrimSpace(content)))
	if err != nil {
		return nil, err
	}
	return &FromString{inline: in}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.src))
}
