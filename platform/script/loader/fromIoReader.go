package loader

import (
	"fmt"
	"io"
)

// FromIoReader buffers everything from a reader once, so the script can be
// compiled more than once.
type FromIoReader struct {
	*FromBytes
}

// NewFromIoReader reads r to the end and keeps the content in memory.
func NewFromIoReader(r io.Reader) (*FromIoReader, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrScriptNotAvailable)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	b, err := NewFromBytes(content)
	if err != nil {
		return nil, err
	}
	return &FromIoReader{FromBytes: b}, nil
}

func (l *FromIoReader) String() string {
	return fmt.Sprintf("loader.FromIoReader{Bytes: %d}", len(l.src))
}
