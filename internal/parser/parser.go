package parser

import (
	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/internal/errors"
)

// Parser drives the grammar over a cursor and builds the program, recording
// a location-map entry for every expression node it constructs.
type Parser struct {
	cursor  *Cursor
	program *ast.Program
}

// New creates a parser over the given source text.
func New(source string) *Parser {
	return &Parser{
		cursor:  NewCursor(source),
		program: ast.NewProgram(),
	}
}

// ParseProgram parses the whole source file: comments and whitespace, then
// top-level declarations until end of input. It returns the program on
// success or the first error encountered.
func (p *Parser) ParseProgram() (*ast.Program, *errors.CompileError) {
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	for !p.cursor.AtEOF() {
		if err := p.parseToplevel(); err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
	}
	return p.program, nil
}

// ParseExpression parses a single expression, skipping leading comments.
// It is the entry point used when the input is an expression rather than a
// whole file.
func (p *Parser) ParseExpression() (ast.Expression, *errors.CompileError) {
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	return p.parseExpression(0)
}

// at records the expression's location and returns the expression, so node
// construction sites can stay single expressions.
func (p *Parser) at(expr ast.Expression, offset int) ast.Expression {
	p.program.Locations[expr] = offset
	return expr
}

// parseIdentifier parses one identifier and returns its text and offset.
func (p *Parser) parseIdentifier() (string, int, *errors.CompileError) {
	text, offset, err := p.cursor.Parse(identifier)
	if err != nil {
		return "", 0, err.WithMessage("expected an identifier")
	}
	return text, offset, nil
}
