package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyelash/superscript/internal/ast"
)

// parseExpressionString parses one expression from the source, failing the
// test on error.
func parseExpressionString(t *testing.T, source string) (*Parser, ast.Expression) {
	t.Helper()
	p := New(source)
	expr, err := p.parseExpression(0)
	require.Nil(t, err, "parse %q", source)
	return p, expr
}

func TestArithmeticPrecedence(t *testing.T) {
	_, expr := parseExpressionString(t, "1 + 2 * 3")

	add, ok := expr.(*ast.Arithmetic)
	require.True(t, ok, "expected Arithmetic, got %T", expr)
	assert.Equal(t, ast.Add, add.Op)

	mul, ok := add.Right.(*ast.Arithmetic)
	require.True(t, ok, "right operand should be the multiplication")
	assert.Equal(t, ast.Multiply, mul.Op)
}

func TestLeftAssociativity(t *testing.T) {
	_, expr := parseExpressionString(t, "1 - 2 - 3")

	outer := expr.(*ast.Arithmetic)
	assert.Equal(t, ast.Subtract, outer.Op)
	inner, ok := outer.Left.(*ast.Arithmetic)
	require.True(t, ok, "left operand should be the first subtraction")
	assert.Equal(t, ast.Subtract, inner.Op)
}

func TestAssignmentRightAssociativity(t *testing.T) {
	_, expr := parseExpressionString(t, "a = b = 1")

	outer, ok := expr.(*ast.Assign)
	require.True(t, ok, "expected Assign, got %T", expr)
	_, ok = outer.Value.(*ast.Assign)
	assert.True(t, ok, "value should be the nested assignment")
}

func TestRelationalConstructors(t *testing.T) {
	tests := []struct {
		source string
		op     ast.RelationalOp
	}{
		{"a == b", ast.Equal},
		{"a != b", ast.NotEqual},
		{"a < b", ast.LessThan},
		{"a <= b", ast.LessThanOrEqual},
		{"a > b", ast.GreaterThan},
		{"a >= b", ast.GreaterThanOrEqual},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			_, expr := parseExpressionString(t, tt.source)
			rel, ok := expr.(*ast.Relational)
			require.True(t, ok, "expected Relational, got %T", expr)
			assert.Equal(t, tt.op, rel.Op)
		})
	}
}

func TestEqualityVersusAssignment(t *testing.T) {
	_, expr := parseExpressionString(t, "a == b")
	_, ok := expr.(*ast.Relational)
	assert.True(t, ok, "== must not parse as assignment")

	_, expr = parseExpressionString(t, "a = b")
	_, ok = expr.(*ast.Assign)
	assert.True(t, ok, "= must parse as assignment")
}

func TestLogicalAndNot(t *testing.T) {
	_, expr := parseExpressionString(t, "a && !b || c")

	or, ok := expr.(*ast.Logical)
	require.True(t, ok)
	assert.Equal(t, ast.Or, or.Op)

	and, ok := or.Left.(*ast.Logical)
	require.True(t, ok, "left of || should be the &&")
	assert.Equal(t, ast.And, and.Op)

	not, ok := and.Right.(*ast.Not)
	require.True(t, ok, "right of && should be the negation")
	_, ok = not.Operand.(*ast.Name)
	assert.True(t, ok)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	_, expr := parseExpressionString(t, "(1 + 2) * 3")

	mul, ok := expr.(*ast.Arithmetic)
	require.True(t, ok)
	assert.Equal(t, ast.Multiply, mul.Op)
	add, ok := mul.Left.(*ast.Arithmetic)
	require.True(t, ok, "left operand should be the parenthesized addition")
	assert.Equal(t, ast.Add, add.Op)
}

func TestCallSuffixes(t *testing.T) {
	_, expr := parseExpressionString(t, "f(1, x)(2)")

	outer, ok := expr.(*ast.Call)
	require.True(t, ok)
	require.Len(t, outer.Arguments, 1)

	inner, ok := outer.Callee.(*ast.Call)
	require.True(t, ok, "callee should be the first call")
	require.Len(t, inner.Arguments, 2)
	name, ok := inner.Callee.(*ast.Name)
	require.True(t, ok)
	assert.Equal(t, "f", name.Value)
}

func TestMemberSuffixes(t *testing.T) {
	_, expr := parseExpressionString(t, "p.x")
	access, ok := expr.(*ast.PropertyAccess)
	require.True(t, ok)
	assert.Equal(t, "x", access.Property)

	_, expr = parseExpressionString(t, "p.move(1, 2)")
	call, ok := expr.(*ast.MethodCall)
	require.True(t, ok)
	assert.Equal(t, "move", call.Method)
	assert.Len(t, call.Arguments, 2)

	_, expr = parseExpressionString(t, "this.x")
	access, ok = expr.(*ast.PropertyAccess)
	require.True(t, ok)
	_, ok = access.Object.(*ast.This)
	assert.True(t, ok, "object should be this")
}

func TestBooleanLiterals(t *testing.T) {
	_, expr := parseExpressionString(t, "true")
	lit, ok := expr.(*ast.BooleanLiteral)
	require.True(t, ok, "expected BooleanLiteral, got %T", expr)
	assert.True(t, lit.Value)

	_, expr = parseExpressionString(t, "false")
	lit, ok = expr.(*ast.BooleanLiteral)
	require.True(t, ok)
	assert.False(t, lit.Value)

	// An identifier merely starting with a literal spelling stays a name.
	_, expr = parseExpressionString(t, "truthy")
	_, ok = expr.(*ast.Name)
	assert.True(t, ok, "truthy must parse as a name")
}

func TestClassInstantiation(t *testing.T) {
	_, expr := parseExpressionString(t, "new Point(1, 2)")

	inst, ok := expr.(*ast.ClassInstantiation)
	require.True(t, ok)
	assert.Equal(t, "Point", inst.ClassName)
	assert.Len(t, inst.Arguments, 2)
}

func TestTrailingCommaRejected(t *testing.T) {
	p := New("f(1,)")
	_, err := p.parseExpression(0)
	require.NotNil(t, err, "trailing comma must be a parse error")
	assert.Equal(t, "expected an expression", err.Message)
	assert.Equal(t, 4, err.Offset)
}

func TestExpectedExpression(t *testing.T) {
	p := New(";")
	_, err := p.parseExpression(0)
	require.NotNil(t, err)
	assert.Equal(t, "expected an expression", err.Message)
	assert.Equal(t, 0, err.Offset)
}

func TestCommentsBetweenTokens(t *testing.T) {
	_, expr := parseExpressionString(t, "1 /* left */ + // op\n 2")

	add, ok := expr.(*ast.Arithmetic)
	require.True(t, ok)
	assert.Equal(t, ast.Add, add.Op)
}

func TestExpressionLocations(t *testing.T) {
	p, expr := parseExpressionString(t, "x + 10")

	add := expr.(*ast.Arithmetic)
	assert.Equal(t, 2, p.program.Location(add), "binary node located at its operator")
	assert.Equal(t, 0, p.program.Location(add.Left), "name located at its first byte")
	assert.Equal(t, 4, p.program.Location(add.Right), "number located at its first byte")
}

func TestEveryExpressionNodeHasLocation(t *testing.T) {
	source := "f(a + 1).g(!b, new C()).h = this.x"
	p, _ := parseExpressionString(t, source)

	require.NotEmpty(t, p.program.Locations)
	for expr, offset := range p.program.Locations {
		assert.GreaterOrEqual(t, offset, 0, "%T", expr)
		assert.LessOrEqual(t, offset, len(source), "%T", expr)
	}
}
