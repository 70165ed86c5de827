package parser

import (
	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/internal/errors"
)

// The expression grammar is precedence climbing driven by a constant
// operator table. parseExpression(level) handles one table level and
// recurses into level+1 for its operands; past the end of the table it
// parses a primary expression followed by call and member suffixes.

type operatorKind int

const (
	binaryLeftToRight operatorKind = iota
	binaryRightToLeft
	unaryPrefix
	unaryPostfix
)

type binaryOperator struct {
	spelling string
	build    func(left, right ast.Expression) ast.Expression
}

type unaryOperator struct {
	spelling string
	build    func(operand ast.Expression) ast.Expression
}

type operatorLevel struct {
	kind   operatorKind
	binary []binaryOperator
	unary  []unaryOperator
}

// operators lists the levels from lowest precedence to highest. Within a
// level, longer spellings come first so "<=" is tried before "<" and ">="
// before ">". Plain "=" cannot be confused with "==": the equality level is
// recursed into first, so "=" is only tested after "==" has been rejected.
var operators = []operatorLevel{
	{kind: binaryRightToLeft, binary: []binaryOperator{
		{"=", ast.NewAssign},
	}},
	{kind: binaryLeftToRight, binary: []binaryOperator{
		{"||", ast.NewLogical(ast.Or)},
	}},
	{kind: binaryLeftToRight, binary: []binaryOperator{
		{"&&", ast.NewLogical(ast.And)},
	}},
	{kind: binaryLeftToRight, binary: []binaryOperator{
		{"==", ast.NewRelational(ast.Equal)},
		{"!=", ast.NewRelational(ast.NotEqual)},
	}},
	{kind: binaryLeftToRight, binary: []binaryOperator{
		{"<=", ast.NewRelational(ast.LessThanOrEqual)},
		{"<", ast.NewRelational(ast.LessThan)},
		{">=", ast.NewRelational(ast.GreaterThanOrEqual)},
		{">", ast.NewRelational(ast.GreaterThan)},
	}},
	{kind: binaryLeftToRight, binary: []binaryOperator{
		{"+", ast.NewArithmetic(ast.Add)},
		{"-", ast.NewArithmetic(ast.Subtract)},
	}},
	{kind: binaryLeftToRight, binary: []binaryOperator{
		{"*", ast.NewArithmetic(ast.Multiply)},
		{"/", ast.NewArithmetic(ast.Divide)},
		{"%", ast.NewArithmetic(ast.Remainder)},
	}},
	{kind: unaryPrefix, unary: []unaryOperator{
		{"!", ast.NewNot},
	}},
}

// matchBinaryOperator tries each operator of the level in table order and
// returns the matched entry plus the operator token's offset.
func (p *Parser) matchBinaryOperator(ops []binaryOperator) (*binaryOperator, int, bool) {
	for i := range ops {
		if _, offset, err := p.cursor.Parse(Literal(ops[i].spelling)); err == nil {
			return &ops[i], offset, true
		}
	}
	return nil, 0, false
}

func (p *Parser) matchUnaryOperator(ops []unaryOperator) (*unaryOperator, int, bool) {
	for i := range ops {
		if _, offset, err := p.cursor.Parse(Literal(ops[i].spelling)); err == nil {
			return &ops[i], offset, true
		}
	}
	return nil, 0, false
}

// parseExpression parses at the given operator table level. Binary and
// unary nodes are located at their operator token; primaries at their first
// byte.
func (p *Parser) parseExpression(level int) (ast.Expression, *errors.CompileError) {
	if level >= len(operators) {
		return p.parsePrimary()
	}

	entry := operators[level]
	switch entry.kind {
	case binaryLeftToRight:
		left, err := p.parseExpression(level + 1)
		if err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		for {
			op, offset, ok := p.matchBinaryOperator(entry.binary)
			if !ok {
				return left, nil
			}
			if err := skipComments(p.cursor); err != nil {
				return nil, err
			}
			right, err := p.parseExpression(level + 1)
			if err != nil {
				return nil, err
			}
			left = p.at(op.build(left, right), offset)
			if err := skipComments(p.cursor); err != nil {
				return nil, err
			}
		}

	case binaryRightToLeft:
		left, err := p.parseExpression(level + 1)
		if err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		op, offset, ok := p.matchBinaryOperator(entry.binary)
		if !ok {
			return left, nil
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		right, err := p.parseExpression(level)
		if err != nil {
			return nil, err
		}
		return p.at(op.build(left, right), offset), nil

	case unaryPrefix:
		op, offset, ok := p.matchUnaryOperator(entry.unary)
		if !ok {
			return p.parseExpression(level + 1)
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		operand, err := p.parseExpression(level)
		if err != nil {
			return nil, err
		}
		return p.at(op.build(operand), offset), nil

	default: // unaryPostfix
		operand, err := p.parseExpression(level + 1)
		if err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		for {
			op, offset, ok := p.matchUnaryOperator(entry.unary)
			if !ok {
				return operand, nil
			}
			operand = p.at(op.build(operand), offset)
			if err := skipComments(p.cursor); err != nil {
				return nil, err
			}
		}
	}
}

// parsePrimary parses an atomic operand, then folds call and member-access
// suffixes onto it. Suffix nodes are located at the primary's start.
func (p *Parser) parsePrimary() (ast.Expression, *errors.CompileError) {
	expr, start, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return p.parseSuffixes(expr, start)
}

func (p *Parser) parseAtom() (ast.Expression, int, *errors.CompileError) {
	if _, start, err := p.cursor.Parse(Char('(')); err == nil {
		if err := skipComments(p.cursor); err != nil {
			return nil, 0, err
		}
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, 0, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, 0, err
		}
		if err := p.cursor.Expect(")"); err != nil {
			return nil, 0, err
		}
		return expr, start, nil
	}
	if _, start, err := p.cursor.Parse(keyword("this")); err == nil {
		return p.at(&ast.This{}, start), start, nil
	}
	if _, start, err := p.cursor.Parse(keyword("true")); err == nil {
		return p.at(&ast.BooleanLiteral{Value: true}, start), start, nil
	}
	if _, start, err := p.cursor.Parse(keyword("false")); err == nil {
		return p.at(&ast.BooleanLiteral{Value: false}, start), start, nil
	}
	if _, start, err := p.cursor.Parse(keyword("new")); err == nil {
		if err := skipComments(p.cursor); err != nil {
			return nil, 0, err
		}
		className, _, err := p.parseIdentifier()
		if err != nil {
			return nil, 0, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, 0, err
		}
		arguments, err := p.parseArguments()
		if err != nil {
			return nil, 0, err
		}
		node := &ast.ClassInstantiation{ClassName: className, Arguments: arguments}
		return p.at(node, start), start, nil
	}
	if _, _, err := p.cursor.Parse(Peek(Pred(isIdentifierStart))); err == nil {
		name, start, err := p.parseIdentifier()
		if err != nil {
			return nil, 0, err
		}
		return p.at(&ast.Name{Value: name}, start), start, nil
	}
	if _, _, err := p.cursor.Parse(Peek(digit)); err == nil {
		text, start, err := p.cursor.Parse(number)
		if err != nil {
			return nil, 0, err
		}
		return p.at(&ast.NumberLiteral{Literal: text}, start), start, nil
	}
	return nil, 0, p.cursor.Error("expected an expression")
}

// parseSuffixes folds call suffixes `(args)` and member suffixes `.name` /
// `.name(args)` onto the accumulator.
func (p *Parser) parseSuffixes(expr ast.Expression, start int) (ast.Expression, *errors.CompileError) {
	for {
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		if _, _, err := p.cursor.Parse(Peek(Char('('))); err == nil {
			arguments, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = p.at(&ast.Call{Callee: expr, Arguments: arguments}, start)
			continue
		}
		if _, _, err := p.cursor.Parse(Char('.')); err == nil {
			if err := skipComments(p.cursor); err != nil {
				return nil, err
			}
			member, _, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			if err := skipComments(p.cursor); err != nil {
				return nil, err
			}
			if _, _, err := p.cursor.Parse(Peek(Char('('))); err == nil {
				arguments, err := p.parseArguments()
				if err != nil {
					return nil, err
				}
				expr = p.at(&ast.MethodCall{Object: expr, Method: member, Arguments: arguments}, start)
			} else {
				expr = p.at(&ast.PropertyAccess{Object: expr, Property: member}, start)
			}
			continue
		}
		return expr, nil
	}
}

// parseArguments parses `(` expression (`,` expression)* `)` with an empty
// list allowed. A `,` must be followed by another argument, so a trailing
// comma is a parse error.
func (p *Parser) parseArguments() ([]ast.Expression, *errors.CompileError) {
	if _, _, err := p.cursor.Parse(Char('(')); err != nil {
		return nil, err.WithMessage("expected (")
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	var arguments []ast.Expression
	if _, _, err := p.cursor.Parse(Char(')')); err == nil {
		return arguments, nil
	}
	for {
		argument, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		if _, _, err := p.cursor.Parse(Char(',')); err == nil {
			if err := skipComments(p.cursor); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.cursor.Expect(")"); err != nil {
			return nil, err
		}
		return arguments, nil
	}
}
