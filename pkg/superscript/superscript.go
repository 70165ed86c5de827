// Package superscript is the embedding facade over the compiler pipeline:
// parse, type check, generate JavaScript, or interpret, from a single
// source string.
package superscript

import (
	"strings"

	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/internal/codegen"
	"github.com/eyelash/superscript/internal/errors"
	"github.com/eyelash/superscript/internal/interp"
	"github.com/eyelash/superscript/internal/parser"
	"github.com/eyelash/superscript/internal/semantic"
	"github.com/eyelash/superscript/pkg/printer"
)

// Check parses and type-checks the source. It returns nil on success and a
// located *errors.CompileError otherwise.
func Check(source string) error {
	_, err := check(source)
	if err != nil {
		return err
	}
	return nil
}

// Compile parses, type-checks, and generates JavaScript source text.
func Compile(source string) (string, error) {
	program, err := check(source)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := codegen.Generate(printer.New(&sb), program); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Run parses, type-checks, and interprets the program's main function,
// returning the rendering of its result ("null" for a void main).
func Run(source string) (string, error) {
	program, err := check(source)
	if err != nil {
		return "", err
	}
	result, runErr := interp.New(program).Run()
	if runErr != nil {
		return "", runErr
	}
	return result.Inspect(), nil
}

// FormatError renders a compile error as the standard caret diagnostic
// against the source it came from. Non-compile errors render as their
// message.
func FormatError(err error, source string, colorize bool) string {
	if compileErr, ok := err.(*errors.CompileError); ok {
		return compileErr.Format(source, colorize)
	}
	return err.Error()
}

func check(source string) (*ast.Program, *errors.CompileError) {
	p, parseErr := parser.New(source).ParseProgram()
	if parseErr != nil {
		return nil, parseErr
	}
	if checkErr := semantic.Analyze(p); checkErr != nil {
		return nil, checkErr
	}
	return p, nil
}
