package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/internal/types"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := New(source).ParseProgram()
	require.Nil(t, err, "parse program")
	return program
}

func TestEmptySource(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t  "},
		{"comments only", "// nothing here\n/* or here */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := parseProgram(t, tt.source)
			assert.Empty(t, program.Functions)
			assert.Empty(t, program.Classes)
			assert.Empty(t, program.Locations)
		})
	}
}

func TestFunctionDeclaration(t *testing.T) {
	program := parseProgram(t, "function add(a: number, b: number): number { return a + b; }")

	require.Len(t, program.Functions, 1)
	fn := program.Functions[0]
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "a", fn.Parameters[0].Name)
	assert.True(t, fn.Parameters[0].Type.Equals(types.NUMBER))
	assert.True(t, fn.ReturnType.Equals(types.NUMBER))
	require.Len(t, fn.Body, 1)
	_, ok := fn.Body[0].(*ast.ReturnStatement)
	assert.True(t, ok)
}

func TestOmittedReturnTypeIsVoid(t *testing.T) {
	program := parseProgram(t, "function main() { }")
	require.Len(t, program.Functions, 1)
	assert.True(t, program.Functions[0].ReturnType.Equals(types.VOID))
}

func TestClassTypedParameter(t *testing.T) {
	program := parseProgram(t, "function dist(p: Point): number { return 0; }")
	require.Len(t, program.Functions, 1)
	name, ok := types.IsClass(program.Functions[0].Parameters[0].Type)
	require.True(t, ok)
	assert.Equal(t, "Point", name)
}

func TestClassDeclaration(t *testing.T) {
	source := `
		class Point {
			x : number;
			y : number;
			function constructor(x: number, y: number) { }
			function length(): number { return this.x * this.x + this.y * this.y; }
		}
	`
	program := parseProgram(t, source)

	require.Len(t, program.Classes, 1)
	class := program.Classes[0]
	assert.Equal(t, "Point", class.Name)
	require.Len(t, class.Fields, 2)
	assert.Equal(t, "x", class.Fields[0].Name)
	assert.True(t, class.Fields[0].Type.Equals(types.NUMBER))
	require.Len(t, class.Methods, 2)
	assert.NotNil(t, class.GetConstructor())
	assert.NotNil(t, class.GetMethod("length"))
	assert.Nil(t, class.GetMethod("missing"))
}

func TestEmptyClassBody(t *testing.T) {
	program := parseProgram(t, "class Empty { }")
	require.Len(t, program.Classes, 1)
	assert.Empty(t, program.Classes[0].Fields)
	assert.Empty(t, program.Classes[0].Methods)
	assert.Nil(t, program.Classes[0].GetConstructor())
}

func TestStatements(t *testing.T) {
	source := `
		function main() {
			let x = 1;
			if (x < 2) x = 2; else { x = 3; }
			while (x < 10) x = x + 1;
			x;
			return x;
		}
	`
	program := parseProgram(t, source)

	body := program.Functions[0].Body
	require.Len(t, body, 5)
	_, ok := body[0].(*ast.VariableDeclaration)
	assert.True(t, ok)
	ifStmt, ok := body[1].(*ast.IfStatement)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Else)
	_, ok = ifStmt.Else.(*ast.BlockStatement)
	assert.True(t, ok)
	_, ok = body[2].(*ast.WhileStatement)
	assert.True(t, ok)
	_, ok = body[3].(*ast.ExpressionStatement)
	assert.True(t, ok)
	_, ok = body[4].(*ast.ReturnStatement)
	assert.True(t, ok)
}

func TestDanglingElse(t *testing.T) {
	program := parseProgram(t, "function f(a: boolean, b: boolean) { if (a) if (b) 1; else 2; }")

	outer, ok := program.Functions[0].Body[0].(*ast.IfStatement)
	require.True(t, ok)
	assert.Nil(t, outer.Else, "else must attach to the nearest if")
	inner, ok := outer.Then.(*ast.IfStatement)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
	}{
		{"stray toplevel token", "let x = 1;", "expected a toplevel declaration"},
		{"missing parameter type", "function f(a) { }", "expected :"},
		{"bad type", "function f(a: 1) { }", "expected a type"},
		{"missing semicolon", "function f() { 1 }", "expected ;"},
		{"unterminated comment", "function f() { } /* oops", "expected */"},
		{"missing expression", "function f() { return ; }", "expected an expression"},
		{"trailing parameter comma", "function f(a: number,) { }", "expected an identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.source).ParseProgram()
			require.NotNil(t, err)
			assert.Equal(t, tt.message, err.Message)
		})
	}
}

func TestDeterministicParse(t *testing.T) {
	source := `
		class Counter {
			value : number;
			function get(): number { return this.value; }
		}
		function main(): number {
			let c = new Counter();
			return c.get() + 1;
		}
	`
	first := parseProgram(t, source)
	second := parseProgram(t, source)

	assert.Equal(t, len(first.Locations), len(second.Locations))
	assert.Equal(t, first.Functions[0].Name, second.Functions[0].Name)

	// Same source, same construction order: collecting offsets from both
	// maps must yield identical multisets.
	count := func(p *ast.Program) map[int]int {
		offsets := make(map[int]int)
		for _, offset := range p.Locations {
			offsets[offset]++
		}
		return offsets
	}
	assert.Equal(t, count(first), count(second))
}

func TestProgramLookups(t *testing.T) {
	program := parseProgram(t, "function main() { } function f() { } class A { } class B { }")

	assert.NotNil(t, program.GetMainFunction())
	assert.Equal(t, "f", program.GetFunction("f").Name)
	assert.Nil(t, program.GetFunction("g"))
	assert.Equal(t, "B", program.GetClass("B").Name)
	assert.Nil(t, program.GetClass("C"))
}
