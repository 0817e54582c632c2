// Package compile turns Risor source text into bytecode.
package compile

import (
	"context"
	"errors"
	"fmt"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	risorErrors "github.com/risor-io/risor/errz"
	risorParser "github.com/risor-io/risor/parser"
)

// ErrParse wraps parser and compiler failures.
var ErrParse = errors.New("risor parse failed")

// Names is Risor's builtin globals plus extra, the set a program may refer to
// before anything is bound.
func Names(extra []string) []string {
	return append(risorLib.NewConfig().GlobalNames(), extra...)
}

// Program compiles src with extra declared as globals. Parse errors use
// Risor's friendly message, which includes the position.
func Program(src string, extra []string) (*risorCompiler.Code, error) {
	ast, err := risorParser.Parse(context.Background(), src)
	if err != nil {
		var friendly risorErrors.FriendlyError
		if errors.As(err, &friendly) {
			return nil, fmt.Errorf("%w: %s", ErrParse, friendly.FriendlyErrorMessage())
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	code, err := risorCompiler.Compile(ast, risorCompiler.WithGlobalNames(Names(extra)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return code, nil
}
