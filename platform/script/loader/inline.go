package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/go-polybridge/internal/helpers"
)

// inline holds script source in memory. Its URL is scheme://inline/<hash>,
// so identical source always maps to the same executable ID.
type inline struct {
	src []byte
	url *url.URL
}

func newInline(scheme string, src []byte) (inline, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return inline{}, fmt.Errorf("%w: %s source is blank", ErrScriptNotAvailable, scheme)
	}
	return inline{
		src: src,
		url: &url.URL{Scheme: scheme, Host: "inline", Path: "/" + helpers.ShortHash(src, 8)},
	}, nil
}

// GetReader returns a fresh reader on every call.
func (l inline) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.src)), nil
}

func (l inline) GetSourceURL() *url.URL {
	return l.url
}
