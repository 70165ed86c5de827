// Package interp is a tree-walking interpreter for type-checked programs.
// Numbers evaluate as float64, logical operators short-circuit, and objects
// are field maps dispatching methods through their class. Execution enters
// through the program's `main` function.
package interp

import (
	"fmt"
	"math"
	"strconv"

	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/internal/scope"
	"github.com/eyelash/superscript/internal/types"
)

// Value is a runtime value.
type Value interface {
	// Inspect renders the value for display.
	Inspect() string
}

// Number is a numeric value.
type Number float64

// Boolean is a truth value.
type Boolean bool

// Null is the initial value of class-typed fields, and the result of calling
// a void function. Assignment only rebinds names, so fields keep their
// initial values.
type Null struct{}

// Object is a class instance.
type Object struct {
	Class  *ast.Class
	Fields map[string]Value
}

func (n Number) Inspect() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (b Boolean) Inspect() string {
	if b {
		return "true"
	}
	return "false"
}

func (Null) Inspect() string { return "null" }

func (o *Object) Inspect() string {
	return fmt.Sprintf("%s instance", o.Class.Name)
}

// Interpreter executes one program. The program must have passed the type
// checker; the interpreter panics only on states the checker rules out.
type Interpreter struct {
	program *ast.Program
}

// New creates an interpreter for the program.
func New(program *ast.Program) *Interpreter {
	return &Interpreter{program: program}
}

// Run calls the program's `main` function with no arguments and returns its
// result. A program without `main` is an error.
func (in *Interpreter) Run() (Value, error) {
	main := in.program.GetMainFunction()
	if main == nil {
		return nil, fmt.Errorf("program has no main function")
	}
	if len(main.Parameters) != 0 {
		return nil, fmt.Errorf("main function must not take arguments")
	}
	return in.callFunction(main, nil, nil)
}

// frame is the execution state of one function activation.
type frame struct {
	variables *scope.SymbolTable[Value]
	self      *Object
}

// callFunction binds the arguments in a fresh frame, runs the body, and
// returns the value of the first executed return statement, or Null for a
// body that runs off the end.
func (in *Interpreter) callFunction(function *ast.Function, self *Object, arguments []Value) (Value, error) {
	f := &frame{
		variables: scope.NewSymbolTable[Value](),
		self:      self,
	}
	for i, parameter := range function.Parameters {
		f.variables.Insert(parameter.Name, arguments[i])
	}
	result, returned, err := in.execStatements(f, function.Body)
	if err != nil {
		return nil, err
	}
	if !returned {
		return Null{}, nil
	}
	return result, nil
}

func (in *Interpreter) execStatements(f *frame, statements []ast.Statement) (Value, bool, error) {
	for _, statement := range statements {
		result, returned, err := in.execStatement(f, statement)
		if err != nil || returned {
			return result, returned, err
		}
	}
	return nil, false, nil
}

func (in *Interpreter) execStatement(f *frame, statement ast.Statement) (Value, bool, error) {
	switch s := statement.(type) {
	case *ast.VariableDeclaration:
		value, err := in.eval(f, s.Value)
		if err != nil {
			return nil, false, err
		}
		f.variables.Insert(s.Name, value)
		return nil, false, nil
	case *ast.IfStatement:
		condition, err := in.evalBoolean(f, s.Condition)
		if err != nil {
			return nil, false, err
		}
		if condition {
			return in.execStatement(f, s.Then)
		}
		if s.Else != nil {
			return in.execStatement(f, s.Else)
		}
		return nil, false, nil
	case *ast.WhileStatement:
		for {
			condition, err := in.evalBoolean(f, s.Condition)
			if err != nil {
				return nil, false, err
			}
			if !condition {
				return nil, false, nil
			}
			result, returned, err := in.execStatement(f, s.Body)
			if err != nil || returned {
				return result, returned, err
			}
		}
	case *ast.ReturnStatement:
		value, err := in.eval(f, s.Value)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	case *ast.ExpressionStatement:
		_, err := in.eval(f, s.Expression)
		return nil, false, err
	case *ast.BlockStatement:
		f.variables.PushScope()
		defer f.variables.PopScope()
		return in.execStatements(f, s.Statements)
	}
	return nil, false, nil
}

func (in *Interpreter) eval(f *frame, expression ast.Expression) (Value, error) {
	switch e := expression.(type) {
	case *ast.NumberLiteral:
		value, err := strconv.ParseFloat(e.Literal, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number literal %q", e.Literal)
		}
		return Number(value), nil

	case *ast.BooleanLiteral:
		return Boolean(e.Value), nil

	case *ast.Name:
		value, ok := f.variables.Get(e.Value)
		if !ok {
			return nil, fmt.Errorf("undefined variable %q", e.Value)
		}
		return value, nil

	case *ast.Arithmetic:
		left, err := in.evalNumber(f, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := in.evalNumber(f, e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case ast.Add:
			return Number(left + right), nil
		case ast.Subtract:
			return Number(left - right), nil
		case ast.Multiply:
			return Number(left * right), nil
		case ast.Divide:
			return Number(left / right), nil
		default:
			return Number(math.Mod(left, right)), nil
		}

	case *ast.Relational:
		left, err := in.evalNumber(f, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := in.evalNumber(f, e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case ast.Equal:
			return Boolean(left == right), nil
		case ast.NotEqual:
			return Boolean(left != right), nil
		case ast.LessThan:
			return Boolean(left < right), nil
		case ast.LessThanOrEqual:
			return Boolean(left <= right), nil
		case ast.GreaterThan:
			return Boolean(left > right), nil
		default:
			return Boolean(left >= right), nil
		}

	case *ast.Logical:
		left, err := in.evalBoolean(f, e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op == ast.And && !left {
			return Boolean(false), nil
		}
		if e.Op == ast.Or && left {
			return Boolean(true), nil
		}
		right, err := in.evalBoolean(f, e.Right)
		if err != nil {
			return nil, err
		}
		return Boolean(right), nil

	case *ast.Not:
		operand, err := in.evalBoolean(f, e.Operand)
		if err != nil {
			return nil, err
		}
		return Boolean(!operand), nil

	case *ast.Assign:
		name := e.Target.(*ast.Name)
		value, err := in.eval(f, e.Value)
		if err != nil {
			return nil, err
		}
		if !f.variables.Assign(name.Value, value) {
			return nil, fmt.Errorf("undefined variable %q", name.Value)
		}
		return value, nil

	case *ast.Call:
		name := e.Callee.(*ast.Name)
		function := in.program.GetFunction(name.Value)
		if function == nil {
			return nil, fmt.Errorf("undefined function %q", name.Value)
		}
		arguments, err := in.evalArguments(f, e.Arguments)
		if err != nil {
			return nil, err
		}
		return in.callFunction(function, nil, arguments)

	case *ast.ClassInstantiation:
		class := in.program.GetClass(e.ClassName)
		if class == nil {
			return nil, fmt.Errorf("undefined class %q", e.ClassName)
		}
		object := &Object{Class: class, Fields: make(map[string]Value)}
		for _, field := range class.Fields {
			object.Fields[field.Name] = zeroValue(field.Type)
		}
		if constructor := class.GetConstructor(); constructor != nil {
			arguments, err := in.evalArguments(f, e.Arguments)
			if err != nil {
				return nil, err
			}
			if _, err := in.callFunction(constructor, object, arguments); err != nil {
				return nil, err
			}
		}
		return object, nil

	case *ast.PropertyAccess:
		object, err := in.evalObject(f, e.Object)
		if err != nil {
			return nil, err
		}
		value, ok := object.Fields[e.Property]
		if !ok {
			return nil, fmt.Errorf("class %q does not have a field %q", object.Class.Name, e.Property)
		}
		return value, nil

	case *ast.MethodCall:
		object, err := in.evalObject(f, e.Object)
		if err != nil {
			return nil, err
		}
		method := object.Class.GetMethod(e.Method)
		if method == nil {
			return nil, fmt.Errorf("class %q does not have a method %q", object.Class.Name, e.Method)
		}
		arguments, err := in.evalArguments(f, e.Arguments)
		if err != nil {
			return nil, err
		}
		return in.callFunction(method, object, arguments)

	case *ast.This:
		if f.self == nil {
			return nil, fmt.Errorf("this is not available outside of a method")
		}
		return f.self, nil
	}
	return nil, fmt.Errorf("unsupported expression")
}

func (in *Interpreter) evalArguments(f *frame, expressions []ast.Expression) ([]Value, error) {
	arguments := make([]Value, len(expressions))
	for i, expression := range expressions {
		value, err := in.eval(f, expression)
		if err != nil {
			return nil, err
		}
		arguments[i] = value
	}
	return arguments, nil
}

func (in *Interpreter) evalNumber(f *frame, expression ast.Expression) (float64, error) {
	value, err := in.eval(f, expression)
	if err != nil {
		return 0, err
	}
	number, ok := value.(Number)
	if !ok {
		return 0, fmt.Errorf("expected a number but found %s", value.Inspect())
	}
	return float64(number), nil
}

func (in *Interpreter) evalBoolean(f *frame, expression ast.Expression) (bool, error) {
	value, err := in.eval(f, expression)
	if err != nil {
		return false, err
	}
	boolean, ok := value.(Boolean)
	if !ok {
		return false, fmt.Errorf("expected a boolean but found %s", value.Inspect())
	}
	return bool(boolean), nil
}

func (in *Interpreter) evalObject(f *frame, expression ast.Expression) (*Object, error) {
	value, err := in.eval(f, expression)
	if err != nil {
		return nil, err
	}
	object, ok := value.(*Object)
	if !ok {
		return nil, fmt.Errorf("expected an object but found %s", value.Inspect())
	}
	return object, nil
}

// zeroValue is the initial value of a field.
func zeroValue(t types.Type) Value {
	if t.Equals(types.NUMBER) {
		return Number(0)
	}
	if t.Equals(types.BOOLEAN) {
		return Boolean(false)
	}
	return Null{}
}
