// Package codegen emits JavaScript source text for a type-checked program.
// Every binary and assignment form is wrapped in parentheses so the output
// preserves the parse tree's grouping regardless of JavaScript's own
// precedence. Equality operators are widened to their strict JavaScript
// forms (`==` becomes `===`, `!=` becomes `!==`).
package codegen

import (
	"strconv"
	"strings"

	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/pkg/printer"
)

// Generate writes the program as JavaScript: functions in source order,
// then classes in source order.
func Generate(p *printer.Printer, program *ast.Program) error {
	for _, function := range program.Functions {
		generateFunction(p, "function ", function)
	}
	for _, class := range program.Classes {
		generateClass(p, class)
	}
	return p.Err()
}

// generateFunction prints a function or, with an empty prefix, a method.
// Parameter types are dropped; JavaScript declares bare names.
func generateFunction(p *printer.Printer, prefix string, function *ast.Function) {
	names := make([]string, len(function.Parameters))
	for i, parameter := range function.Parameters {
		names[i] = parameter.Name
	}
	p.Printf("%s%s(%s) {", prefix, function.Name, printer.CommaSeparated(names))
	p.Indented(func() {
		for _, statement := range function.Body {
			generateStatement(p, statement)
		}
	})
	p.Println("}")
}

// generateClass prints the class body. Fields exist only in the type
// checker; they are not declared in the emitted class.
func generateClass(p *printer.Printer, class *ast.Class) {
	p.Printf("class %s {", class.Name)
	p.Indented(func() {
		for _, method := range class.Methods {
			generateFunction(p, "", method)
		}
	})
	p.Println("}")
}

func generateStatement(p *printer.Printer, statement ast.Statement) {
	switch s := statement.(type) {
	case *ast.VariableDeclaration:
		p.Printf("let %s = %s;", s.Name, Expression(s.Value))
	case *ast.IfStatement:
		p.Printf("if (%s)", Expression(s.Condition))
		p.Indented(func() { generateStatement(p, s.Then) })
		if s.Else != nil {
			p.Println("else")
			p.Indented(func() { generateStatement(p, s.Else) })
		}
	case *ast.WhileStatement:
		p.Printf("while (%s)", Expression(s.Condition))
		p.Indented(func() { generateStatement(p, s.Body) })
	case *ast.ReturnStatement:
		p.Printf("return %s;", Expression(s.Value))
	case *ast.ExpressionStatement:
		p.Printf("%s;", Expression(s.Expression))
	case *ast.BlockStatement:
		p.Println("{")
		p.Indented(func() {
			for _, child := range s.Statements {
				generateStatement(p, child)
			}
		})
		p.Println("}")
	}
}

// Expression renders one expression as JavaScript text.
func Expression(expression ast.Expression) string {
	var sb strings.Builder
	writeExpression(&sb, expression)
	return sb.String()
}

// relationalSpelling maps a relational operation to its JavaScript form.
func relationalSpelling(op ast.RelationalOp) string {
	switch op {
	case ast.Equal:
		return "==="
	case ast.NotEqual:
		return "!=="
	}
	return op.String()
}

func writeExpression(sb *strings.Builder, expression ast.Expression) {
	switch e := expression.(type) {
	case *ast.NumberLiteral:
		sb.WriteString(e.Literal)
	case *ast.BooleanLiteral:
		sb.WriteString(strconv.FormatBool(e.Value))
	case *ast.Name:
		sb.WriteString(e.Value)
	case *ast.Arithmetic:
		writeBinary(sb, e.Left, e.Op.String(), e.Right)
	case *ast.Relational:
		writeBinary(sb, e.Left, relationalSpelling(e.Op), e.Right)
	case *ast.Logical:
		writeBinary(sb, e.Left, e.Op.String(), e.Right)
	case *ast.Not:
		sb.WriteString("!")
		writeExpression(sb, e.Operand)
	case *ast.Assign:
		writeBinary(sb, e.Target, "=", e.Value)
	case *ast.Call:
		writeExpression(sb, e.Callee)
		writeArguments(sb, e.Arguments)
	case *ast.ClassInstantiation:
		sb.WriteString("new ")
		sb.WriteString(e.ClassName)
		writeArguments(sb, e.Arguments)
	case *ast.PropertyAccess:
		writeExpression(sb, e.Object)
		sb.WriteString(".")
		sb.WriteString(e.Property)
	case *ast.MethodCall:
		writeExpression(sb, e.Object)
		sb.WriteString(".")
		sb.WriteString(e.Method)
		writeArguments(sb, e.Arguments)
	case *ast.This:
		sb.WriteString("this")
	}
}

func writeBinary(sb *strings.Builder, left ast.Expression, op string, right ast.Expression) {
	sb.WriteString("(")
	writeExpression(sb, left)
	sb.WriteString(" ")
	sb.WriteString(op)
	sb.WriteString(" ")
	writeExpression(sb, right)
	sb.WriteString(")")
}

func writeArguments(sb *strings.Builder, arguments []ast.Expression) {
	rendered := make([]string, len(arguments))
	for i, argument := range arguments {
		rendered[i] = Expression(argument)
	}
	sb.WriteString("(")
	sb.WriteString(printer.CommaSeparated(rendered))
	sb.WriteString(")")
}
