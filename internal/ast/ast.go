// Package ast defines the Abstract Syntax Tree node types for superscript.
//
// A Program owns every node the parser builds, together with a location map
// from each expression node to the byte offset it started at in the source.
// The map is populated during parsing and read-only afterwards; the semantic
// analyzer uses it to anchor diagnostics.
package ast

import "github.com/eyelash/superscript/internal/types"

// Location is a byte offset into the original source text.
type Location = int

// Expression represents any node that produces a value.
type Expression interface {
	expressionNode()
}

// Statement represents a node that performs an action but doesn't produce a value.
type Statement interface {
	statementNode()
}

// Program is the root of the AST. It holds the top-level function and class
// declarations in source order, plus the expression location map.
type Program struct {
	Functions []*Function
	Classes   []*Class

	// Locations maps each expression node to the byte offset of the
	// construct that produced it. Expression nodes are pointers, so map
	// keys carry node identity.
	Locations map[Expression]Location
}

// NewProgram creates an empty program with an initialized location map.
func NewProgram() *Program {
	return &Program{
		Locations: make(map[Expression]Location),
	}
}

// GetFunction looks up a top-level function by name, in source order.
func (p *Program) GetFunction(name string) *Function {
	for _, fn := range p.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// GetMainFunction returns the program entry point, if declared.
func (p *Program) GetMainFunction() *Function {
	return p.GetFunction("main")
}

// GetClass looks up a class by name, in source order.
func (p *Program) GetClass(name string) *Class {
	for _, class := range p.Classes {
		if class.Name == name {
			return class
		}
	}
	return nil
}

// Location returns the recorded byte offset of an expression node.
// A node without an entry yields offset 0.
func (p *Program) Location(expr Expression) Location {
	return p.Locations[expr]
}

// Parameter is a named function parameter with its declared type.
type Parameter struct {
	Name string
	Type types.Type
}

// Function is a function or method declaration. ReturnType is VOID when the
// source omits the return type annotation.
type Function struct {
	Name       string
	Parameters []Parameter
	ReturnType types.Type
	Body       []Statement
}

// Field is a named class field with its declared type.
type Field struct {
	Name string
	Type types.Type
}

// Class is a class declaration: named fields plus methods. The method named
// "constructor" is the designated initializer.
type Class struct {
	Name    string
	Fields  []Field
	Methods []*Function
}

// GetMethod looks up a method by name, in source order.
func (c *Class) GetMethod(name string) *Function {
	for _, method := range c.Methods {
		if method.Name == name {
			return method
		}
	}
	return nil
}

// GetConstructor returns the designated initializer, if declared.
func (c *Class) GetConstructor() *Function {
	return c.GetMethod("constructor")
}

// GetField looks up a field's type by name.
func (c *Class) GetField(name string) (types.Type, bool) {
	for _, field := range c.Fields {
		if field.Name == name {
			return field.Type, true
		}
	}
	return nil, false
}
