package loader

import "fmt"

// FromBytes loads script source held in a byte slice, kept as given.
type FromBytes struct {
	inline
}

func NewFromBytes(content []byte) (*FromBytes, error) {
	in, err := newInline("bytes", content)
	if err != nil {
		return nil, err
	}
	return &FromBytes{inline: in}, nil
}

func (l *FromBytes) String() string {
	return fmt.Sprintf("loader.FromBytes{Bytes: %d}", len(l.src))
}
