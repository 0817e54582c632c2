package script

import (
	engineTypes "github.com/robbyt/go-polybridge/engines/types"
)

// ExecutableContent is validated script content that is ready to run.
// It exposes the original source and the engine-specific compiled program.
type ExecutableContent interface {
	// GetSource returns the original script content as a string.
	GetSource() string

	// GetByteCode returns the compiled program in the engine's own format.
	// Engines type-assert it and fail at run time on a mismatch.
	GetByteCode() any

	// GetEngineType returns the engine this content was compiled for.
	GetEngineType() engineTypes.Type
}
