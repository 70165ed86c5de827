// Package semantic implements the superscript type checker. It walks the
// whole program — functions in source order, then classes in source order —
// resolving names in lexically nested scopes, validating call and
// member-access shapes, and propagating declared types. The walk produces
// nothing on success and stops at the first error, anchored to the byte
// offset of the offending expression node.
package semantic

import (
	"fmt"

	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/internal/errors"
	"github.com/eyelash/superscript/internal/scope"
	"github.com/eyelash/superscript/internal/types"
)

// Analyzer holds the state of one type-checking pass.
type Analyzer struct {
	program   *ast.Program
	variables *scope.SymbolTable[types.Type]
}

// Analyze type-checks the program. It never mutates the AST, so running it
// again on a successful program yields the same result.
func Analyze(program *ast.Program) *errors.CompileError {
	a := &Analyzer{
		program:   program,
		variables: scope.NewSymbolTable[types.Type](),
	}
	for _, function := range program.Functions {
		if err := a.checkFunction(function); err != nil {
			return err
		}
	}
	for _, class := range program.Classes {
		if err := a.checkClass(class); err != nil {
			return err
		}
	}
	return nil
}

// errorAt anchors a message at the recorded location of an expression node.
// A node with no location entry anchors at offset 0.
func (a *Analyzer) errorAt(expr ast.Expression, format string, args ...any) *errors.CompileError {
	return errors.New(a.program.Location(expr), fmt.Sprintf(format, args...))
}

// checkFunction binds the parameters in a fresh scope and checks the body.
// The declared return type is recorded on the function but return
// statements are not checked against it.
func (a *Analyzer) checkFunction(function *ast.Function) *errors.CompileError {
	a.variables.PushScope()
	defer a.variables.PopScope()
	for _, parameter := range function.Parameters {
		if _, clash := a.variables.Insert(parameter.Name, parameter.Type); clash {
			return errors.New(0, fmt.Sprintf("variable %q already defined", parameter.Name))
		}
	}
	for _, statement := range function.Body {
		if err := a.checkStatement(statement); err != nil {
			return err
		}
	}
	return nil
}

// checkClass binds `this` to the class type and checks each method as a
// function. Fields are registered on the class for member access and are
// reached through `this.`, not through method scopes.
func (a *Analyzer) checkClass(class *ast.Class) *errors.CompileError {
	a.variables.PushScope()
	defer a.variables.PopScope()
	a.variables.Insert("this", types.NewClass(class.Name))
	for _, method := range class.Methods {
		if err := a.checkFunction(method); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) checkStatement(statement ast.Statement) *errors.CompileError {
	switch s := statement.(type) {
	case *ast.VariableDeclaration:
		if _, defined := a.variables.GetLocal(s.Name); defined {
			return a.errorAt(s.Value, "variable %q already defined", s.Name)
		}
		valueType, err := a.checkExpression(s.Value)
		if err != nil {
			return err
		}
		a.variables.Insert(s.Name, valueType)
		return nil
	case *ast.IfStatement:
		if err := a.assertType(s.Condition, types.BOOLEAN); err != nil {
			return err
		}
		if err := a.checkStatement(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return a.checkStatement(s.Else)
		}
		return nil
	case *ast.WhileStatement:
		if err := a.assertType(s.Condition, types.BOOLEAN); err != nil {
			return err
		}
		return a.checkStatement(s.Body)
	case *ast.ReturnStatement:
		_, err := a.checkExpression(s.Value)
		return err
	case *ast.ExpressionStatement:
		_, err := a.checkExpression(s.Expression)
		return err
	case *ast.BlockStatement:
		a.variables.PushScope()
		defer a.variables.PopScope()
		for _, child := range s.Statements {
			if err := a.checkStatement(child); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func (a *Analyzer) checkExpression(expression ast.Expression) (types.Type, *errors.CompileError) {
	switch e := expression.(type) {
	case *ast.NumberLiteral:
		return types.NUMBER, nil

	case *ast.BooleanLiteral:
		return types.BOOLEAN, nil

	case *ast.Name:
		if boundType, ok := a.variables.Get(e.Value); ok {
			return boundType, nil
		}
		return nil, a.errorAt(e, "undefined variable %q", e.Value)

	case *ast.Arithmetic:
		if err := a.assertType(e.Left, types.NUMBER); err != nil {
			return nil, err
		}
		if err := a.assertType(e.Right, types.NUMBER); err != nil {
			return nil, err
		}
		return types.NUMBER, nil

	case *ast.Relational:
		if err := a.assertType(e.Left, types.NUMBER); err != nil {
			return nil, err
		}
		if err := a.assertType(e.Right, types.NUMBER); err != nil {
			return nil, err
		}
		return types.BOOLEAN, nil

	case *ast.Logical:
		if err := a.assertType(e.Left, types.BOOLEAN); err != nil {
			return nil, err
		}
		if err := a.assertType(e.Right, types.BOOLEAN); err != nil {
			return nil, err
		}
		return types.BOOLEAN, nil

	case *ast.Not:
		if err := a.assertType(e.Operand, types.BOOLEAN); err != nil {
			return nil, err
		}
		return types.BOOLEAN, nil

	case *ast.Assign:
		name, ok := e.Target.(*ast.Name)
		if !ok {
			return nil, a.errorAt(e.Target, "left hand of an assignment must be a name")
		}
		boundType, bound := a.variables.Get(name.Value)
		if !bound {
			return nil, a.errorAt(name, "undefined variable %q", name.Value)
		}
		if err := a.assertType(e.Value, boundType); err != nil {
			return nil, err
		}
		return boundType, nil

	case *ast.Call:
		name, ok := e.Callee.(*ast.Name)
		if !ok {
			return nil, a.errorAt(e.Callee, "left hand of a call must be a name")
		}
		function := a.program.GetFunction(name.Value)
		if function == nil {
			return nil, a.errorAt(name, "undefined function %q", name.Value)
		}
		if err := a.checkArguments(name, e.Arguments, function); err != nil {
			return nil, err
		}
		return function.ReturnType, nil

	case *ast.ClassInstantiation:
		class := a.program.GetClass(e.ClassName)
		if class == nil {
			return nil, a.errorAt(e, "undefined class %q", e.ClassName)
		}
		if constructor := class.GetConstructor(); constructor != nil {
			if err := a.checkArguments(e, e.Arguments, constructor); err != nil {
				return nil, err
			}
		} else if len(e.Arguments) != 0 {
			return nil, a.errorAt(e, "invalid number of arguments")
		}
		return types.NewClass(e.ClassName), nil

	case *ast.PropertyAccess:
		class, err := a.checkObject(e, e.Object)
		if err != nil {
			return nil, err
		}
		fieldType, ok := class.GetField(e.Property)
		if !ok {
			return nil, a.errorAt(e, "class %q does not have a field %q", class.Name, e.Property)
		}
		return fieldType, nil

	case *ast.MethodCall:
		class, err := a.checkObject(e, e.Object)
		if err != nil {
			return nil, err
		}
		method := class.GetMethod(e.Method)
		if method == nil {
			return nil, a.errorAt(e, "class %q does not have a method %q", class.Name, e.Method)
		}
		if err := a.checkArguments(e, e.Arguments, method); err != nil {
			return nil, err
		}
		return method.ReturnType, nil

	case *ast.This:
		if boundType, ok := a.variables.Get("this"); ok {
			return boundType, nil
		}
		return nil, a.errorAt(e, "this is not available outside of a method")
	}
	return nil, a.errorAt(expression, "expected an expression")
}

// checkObject types the receiver of a member access and resolves it to a
// declared class.
func (a *Analyzer) checkObject(access, object ast.Expression) (*ast.Class, *errors.CompileError) {
	objectType, err := a.checkExpression(object)
	if err != nil {
		return nil, err
	}
	className, ok := types.IsClass(objectType)
	if !ok {
		return nil, a.errorAt(access, "trying to access a property on an expression that is not a class")
	}
	class := a.program.GetClass(className)
	if class == nil {
		return nil, a.errorAt(access, "undefined class %q", className)
	}
	return class, nil
}

// checkArguments validates the argument count and each argument's type
// against the callee's parameters, in order. The count error anchors at the
// callee expression; type errors anchor at the offending argument.
func (a *Analyzer) checkArguments(callee ast.Expression, arguments []ast.Expression, function *ast.Function) *errors.CompileError {
	if len(arguments) != len(function.Parameters) {
		return a.errorAt(callee, "invalid number of arguments")
	}
	for i, argument := range arguments {
		argumentType, err := a.checkExpression(argument)
		if err != nil {
			return err
		}
		expected := function.Parameters[i].Type
		if !argumentType.Equals(expected) {
			return a.errorAt(argument, "invalid argument type: expected %s but found %s", expected, argumentType)
		}
	}
	return nil
}

// assertType checks the expression against an expected type.
func (a *Analyzer) assertType(expression ast.Expression, expected types.Type) *errors.CompileError {
	actual, err := a.checkExpression(expression)
	if err != nil {
		return err
	}
	if !actual.Equals(expected) {
		return a.errorAt(expression, "type mismatch: expected a %s but found a %s", expected, actual)
	}
	return nil
}
