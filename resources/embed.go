// Package resources embeds the scripts the playground loads at run time.
package resources

import "embed"

// Names of the embedded scripts inside FS.
const (
	// ComplexScript defines the scripted Complex record and the fractal generator.
	ComplexScript = "complex.star"

	// EntryScript is a Risor program usable as the external entry point.
	EntryScript = "entry.risor"
)

//go:embed complex.star entry.risor
var FS embed.FS
