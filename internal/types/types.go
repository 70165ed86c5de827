// Package types defines the type system for the superscript language.
// The language has a closed set of value types: Number, Boolean, Void,
// and class types identified by name. Type equality is structural; two
// class types are equal iff their names are equal.
package types

// Type is the interface implemented by all superscript types.
type Type interface {
	// String returns the name of the type as it appears in diagnostics.
	String() string

	// TypeKind returns a stable kind discriminator for the type.
	TypeKind() string

	// Equals checks structural equality with another type.
	Equals(other Type) bool
}

// BasicType represents one of the built-in value types.
type BasicType struct {
	Kind string
	Name string
}

// Singleton instances for the built-in types. Identity comparison works for
// these, but code should use Equals so class types compare correctly too.
var (
	NUMBER  = &BasicType{Kind: "NUMBER", Name: "Number"}
	BOOLEAN = &BasicType{Kind: "BOOLEAN", Name: "Boolean"}
	VOID    = &BasicType{Kind: "VOID", Name: "Void"}
)

func (b *BasicType) String() string   { return b.Name }
func (b *BasicType) TypeKind() string { return b.Kind }

func (b *BasicType) Equals(other Type) bool {
	o, ok := other.(*BasicType)
	return ok && o.Kind == b.Kind
}

// ClassType represents a user-declared class used as a type.
// Two class types are equal iff they carry the same class name; whether the
// class is actually declared is checked by the semantic analyzer, not here.
type ClassType struct {
	Name string
}

// NewClass returns the type of instances of the named class.
func NewClass(name string) *ClassType {
	return &ClassType{Name: name}
}

func (c *ClassType) String() string   { return c.Name }
func (c *ClassType) TypeKind() string { return "CLASS" }

func (c *ClassType) Equals(other Type) bool {
	o, ok := other.(*ClassType)
	return ok && o.Name == c.Name
}

// IsClass reports whether t is a class type and returns its name.
func IsClass(t Type) (string, bool) {
	if c, ok := t.(*ClassType); ok {
		return c.Name, true
	}
	return "", false
}
