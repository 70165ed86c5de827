package parser

import (
	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/internal/errors"
	"github.com/eyelash/superscript/internal/types"
)

// parseToplevel parses one `function` or `class` declaration and appends it
// to the program.
func (p *Parser) parseToplevel() *errors.CompileError {
	if _, _, err := p.cursor.Parse(keyword("function")); err == nil {
		function, err := p.parseFunction()
		if err != nil {
			return err
		}
		p.program.Functions = append(p.program.Functions, function)
		return nil
	}
	if _, _, err := p.cursor.Parse(keyword("class")); err == nil {
		class, err := p.parseClass()
		if err != nil {
			return err
		}
		p.program.Classes = append(p.program.Classes, class)
		return nil
	}
	return p.cursor.Error("expected a toplevel declaration")
}

// parseType parses `number`, `boolean`, or a class name used as a type.
func (p *Parser) parseType() (types.Type, *errors.CompileError) {
	if _, _, err := p.cursor.Parse(keyword("number")); err == nil {
		return types.NUMBER, nil
	}
	if _, _, err := p.cursor.Parse(keyword("boolean")); err == nil {
		return types.BOOLEAN, nil
	}
	if _, _, err := p.cursor.Parse(Peek(Pred(isIdentifierStart))); err == nil {
		name, _, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return types.NewClass(name), nil
	}
	return nil, p.cursor.Error("expected a type")
}

// parseFunction parses the remainder of a function or method declaration:
// name, parameter list, optional `: type` (defaulting to Void), body.
func (p *Parser) parseFunction() (*ast.Function, *errors.CompileError) {
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
	parameters, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	returnType := types.Type(types.VOID)
	if _, _, err := p.cursor.Parse(Char(':')); err == nil {
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		returnType, err = p.parseType()
		if err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.Function{
		Name:       name,
		Parameters: parameters,
		ReturnType: returnType,
		Body:       body,
	}, nil
}

// parseParameters parses `(` name `:` type (`,` name `:` type)* `)` with an
// empty list allowed.
func (p *Parser) parseParameters() ([]ast.Parameter, *errors.CompileError) {
	if err := p.cursor.Expect("("); err != nil {
		return nil, err
	}
	if err := skipComments(p.cursor); err != nil {
		return nil, err
	}
	var parameters []ast.Parameter
	if _, _, err := p.cursor.Parse(Char(')')); err == nil {
		return parameters, nil
	}
	for {
		name, _, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		if err := p.cursor.Expect(":"); err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		parameterType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, ast.Parameter{Name: name, Type: parameterType})
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
		return parameters, nil
	}
}

// parseBody parses `{ stmt* }` and returns the statement list.
func (p *Parser) parseBody() ([]ast.Statement, *errors.CompileError) {
	if err := p.cursor.Expect("{"); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return block.(*ast.BlockStatement).Statements, nil
}

// parseClass parses the remainder of a class declaration. Members are
// fields (`name : type ;`) and methods (declared in the same form as
// top-level functions); the method named "constructor" is the initializer.
func (p *Parser) parseClass() (*ast.Class, *errors.CompileError) {
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
	if err := p.cursor.Expect("{"); err != nil {
		return nil, err
	}
	class := &ast.Class{Name: name}
	for {
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		if _, _, err := p.cursor.Parse(Char('}')); err == nil {
			return class, nil
		}
		if _, _, err := p.cursor.Parse(keyword("function")); err == nil {
			method, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			class.Methods = append(class.Methods, method)
			continue
		}
		fieldName, _, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		if err := p.cursor.Expect(":"); err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		fieldType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := skipComments(p.cursor); err != nil {
			return nil, err
		}
		if err := p.cursor.Expect(";"); err != nil {
			return nil, err
		}
		class.Fields = append(class.Fields, ast.Field{Name: fieldName, Type: fieldType})
	}
}
