package loader

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// InferLoader picks a Loader for input. A string that looks like a file://
// URL or a path loads from disk and any other string is inline source.
// []byte and io.Reader get their own loaders and a Loader passes through.
func InferLoader(input any) (Loader, error) {
	switch v := input.(type) {
	case Loader:
		return v, nil
	case string:
		return inferFromString(v)
	case []byte:
		return NewFromBytes(v)
	case io.Reader:
		return NewFromIoReader(v)
	}
	return nil, fmt.Errorf("unsupported input type: %T", input)
}

func inferFromString(input string) (Loader, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty string input", ErrScriptNotAvailable)
	}

	// Source text has whitespace; a path or URL has none.
	if strings.ContainsAny(input, "\n\t ") {
		return NewFromString(input)
	}
	if u, err := url.Parse(input); err == nil && u.Scheme != "" {
		if u.Scheme != "file" {
			return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, u.Scheme)
		}
		return diskLoader(u.Path)
	}
	if strings.ContainsAny(input, `/\`) {
		return diskLoader(input)
	}
	return NewFromString(input)
}

// diskLoader resolves path against the working directory before loading it.
func diskLoader(path string) (Loader, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	return NewFromDisk(abs)
}
