package data

import "errors"

var (
	// ErrStaticProviderNoRuntimeUpdates is returned when runtime data is added to a StaticProvider.
	ErrStaticProviderNoRuntimeUpdates = errors.New("static provider does not accept runtime data")

	// ErrUnexpectedType is returned when a script value does not have the declared shape.
	ErrUnexpectedType = errors.New("unexpected value type")

	// ErrEmptyKey is returned when data is added under an empty key.
	ErrEmptyKey = errors.New("empty keys are not allowed")
)
