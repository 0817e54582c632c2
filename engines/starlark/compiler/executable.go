package compiler

import (
	engineTypes "github.com/robbyt/go-polybridge/engines/types"
	starlarkLib "go.starlark.net/starlark"
)

// program is a resolved Starlark file, ready to be initialized.
type program struct {
	source string
	prog   *starlarkLib.Program
}

func (p *program) GetSource() string { return p.source }

func (p *program) GetByteCode() any { return p.prog }

func (p *program) GetEngineType() engineTypes.Type { return engineTypes.Starlark }

// Program returns the compiled program with its concrete type.
func (p *program) Program() *starlarkLib.Program { return p.prog }
