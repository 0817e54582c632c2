package script

import "io"

// Compiler validates a script and turns it into ExecutableContent.
// Compile owns scriptReader and closes it.
type Compiler interface {
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
