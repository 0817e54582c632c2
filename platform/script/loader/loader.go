// Package loader provides script sources: strings, byte slices, readers,
// files on disk and embedded filesystems.
package loader

import (
	"io"
	"net/url"
)

// Loader hands a compiler the script source and names where it came from.
// The URL doubles as the executable's ID.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}

// SourceID is the loader's URL as a string, or "" when it reports none.
func SourceID(l Loader) string {
	if u := l.GetSourceURL(); u != nil {
		return u.String()
	}
	return ""
}
