package loader

import (
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path"
)

// FromFS loads a script from a read-only filesystem such as an embed.FS.
// The file is checked for existence when the loader is created.
type FromFS struct {
	fsys      fs.FS
	name      string
	sourceURL *url.URL
}

// NewFromFS creates a loader for name inside fsys.
func NewFromFS(fsys fs.FS, name string) (*FromFS, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: filesystem is nil", ErrScriptNotAvailable)
	}

	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: invalid path %q", ErrScriptNotAvailable, name)
	}

	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrScriptNotAvailable, name)
	}

	return &FromFS{
		fsys:      fsys,
		name:      name,
		sourceURL: &url.URL{Scheme: "fs", Host: "embedded", Path: path.Join("/", name)},
	}, nil
}

func (l *FromFS) String() string {
	return fmt.Sprintf("loader.FromFS{Name: %s}", l.name)
}

// GetReader opens the file inside the filesystem. The caller closes it.
func (l *FromFS) GetReader() (io.ReadCloser, error) {
	return l.fsys.Open(l.name)
}

// GetSourceURL returns the source URL of the script.
func (l *FromFS) GetSourceURL() *url.URL {
	return l.sourceURL
}
