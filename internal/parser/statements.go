package parser

import (
	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/internal/errors"
)

// parseStatement dispatches on a keyword peek, with comment skipping between
// every pair of tokens. An `else` attaches to the nearest open `if`.
func (p *Parser) parseStatement() (ast.Statement, *errors.CompileError) {
	if _, _, err := p.cursor.Parse(keyword("let")); err == nil {
		return p.parseVariableDeclaration()
	}
	if _, _, err := p.cursor.Parse(keyword("if")); err == nil {
		return p.parseIf()
	}
	if _, _, err := p.cursor.Parse(keyword("while")); err == nil {
		return p.parseWhile()
	}
	if _, _, err := p.cursor.Parse(keyword("return")); err == nil {
		return p.parseReturn()
	}
	if _, _, err := p.cursor.Parse(Char('{')); err == nil {
		return p.parseBlock()
	}
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.cursor.Expect(";"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}

// parseVariableDeclaration parses the remainder of `let name = expr;`.
func (p *Parser) parseVariableDeclaration() (ast.Statement, *errors.CompileError) {
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	name, _, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	if err := p.cursor.Expect("="); err != nil {
		return nil, err
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.cursor.Expect(";"); err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{Name: name, Value: value}, nil
}

// parseIf parses the remainder of `if (cond) stmt [else stmt]`.
func (p *Parser) parseIf() (ast.Statement, *errors.CompileError) {
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	if err := p.cursor.Expect("("); err != nil {
		return nil, err
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.cursor.Expect(")"); err != nil {
		return nil, err
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	statement := &ast.IfStatement{Condition: condition, Then: then}
	if _, _, err := p.cursor.Parse(keyword("else")); err == nil {
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		statement.Else, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return statement, nil
}

// parseWhile parses the remainder of `while (cond) stmt`.
func (p *Parser) parseWhile() (ast.Statement, *errors.CompileError) {
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	if err := p.cursor.Expect("("); err != nil {
		return nil, err
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.cursor.Expect(")"); err != nil {
		return nil, err
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Condition: condition, Body: body}, nil
}

// parseReturn parses the remainder of `return expr;`.
func (p *Parser) parseReturn() (ast.Statement, *errors.CompileError) {
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.cursor.Expect(";"); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Value: value}, nil
}

// parseBlock parses the remainder of `{ stmt* }`.
func (p *Parser) parseBlock() (ast.Statement, *errors.CompileError) {
	block := &ast.BlockStatement{}
	for {
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		if _, _, err := p.cursor.Parse(Char('}')); err == nil {
			return block, nil
		}
		if p.cursor.AtEOF() {
			return nil, p.cursor.Error("expected }")
		}
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, statement)
	}
}
