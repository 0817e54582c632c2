package compiler

import (
	risorCompiler "github.com/risor-io/risor/compiler"
	engineTypes "github.com/robbyt/go-polybridge/engines/types"
)

// program is a compiled Risor source file. It satisfies script.ExecutableContent.
type program struct {
	source string
	code   *risorCompiler.Code
}

func (p *program) GetSource() string { return p.source }

func (p *program) GetByteCode() any { return p.code }

func (p *program) GetEngineType() engineTypes.Type { return engineTypes.Risor }

// Code returns the bytecode with its concrete type.
func (p *program) Code() *risorCompiler.Code { return p.code }
