package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/robbyt/go-polybridge/internal/helpers"
)

// FromDisk reads a script file each time a reader is requested, so edits on
// disk show up at the next compile.
type FromDisk struct {
	path string
	url  *url.URL
}

// NewFromDisk accepts an absolute path, optionally prefixed with file://.
// The file is not opened until GetReader.
func NewFromDisk(path string) (*FromDisk, error) {
	path = strings.TrimPrefix(path, "file://")
	switch {
	case strings.Contains(path, "://"):
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	case !filepath.IsAbs(path):
		return nil, fmt.Errorf("%w: %q is not absolute", ErrScriptNotAvailable, path)
	}

	path = filepath.Clean(path)
	if path == filepath.VolumeName(path)+string(filepath.Separator) {
		return nil, fmt.Errorf("%w: %q names no file", ErrScriptNotAvailable, path)
	}
	return &FromDisk{
		path: path,
		url:  &url.URL{Scheme: "file", Path: filepath.ToSlash(path)},
	}, nil
}

// String names the path and, when the file is readable, a short content hash.
func (l *FromDisk) String() string {
	if f, err := os.Open(l.path); err == nil {
		defer func() { _ = f.Close() }()
		if sum, err := helpers.HashReader(f); err == nil {
			return fmt.Sprintf("loader.FromDisk{Path: %s, SHA256: %s}", l.path, sum[:8])
		}
	}
	return fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)
}

// GetReader opens the file. The caller closes it.
func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}
	return f, nil
}

func (l *FromDisk) GetSourceURL() *url.URL { return l.url }
