package callback

import "errors"

var (
	ErrMissingBinding     = errors.New("missing external binding")
	ErrAlreadyBound       = errors.New("external entry point already registered")
	ErrNilEntryPoint      = errors.New("external entry point is nil")
	ErrHandleClosed       = errors.New("callback handle is closed")
	ErrUnsupportedClosure = errors.New("unsupported closure type")
)
