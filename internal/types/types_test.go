package types

import "testing"

func TestBasicTypes(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		expected string
		kind     string
	}{
		{"Number", NUMBER, "Number", "NUMBER"},
		{"Boolean", BOOLEAN, "Boolean", "BOOLEAN"},
		{"Void", VOID, "Void", "VOID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.typ.String() != tt.expected {
				t.Errorf("String() = %v, want %v", tt.typ.String(), tt.expected)
			}
			if tt.typ.TypeKind() != tt.kind {
				t.Errorf("TypeKind() = %v, want %v", tt.typ.TypeKind(), tt.kind)
			}
		})
	}
}

func TestTypeEquality(t *testing.T) {
	tests := []struct {
		a        Type
		b        Type
		name     string
		expected bool
	}{
		{a: NUMBER, b: NUMBER, name: "Number equals Number", expected: true},
		{a: BOOLEAN, b: BOOLEAN, name: "Boolean equals Boolean", expected: true},
		{a: VOID, b: VOID, name: "Void equals Void", expected: true},
		{a: NUMBER, b: BOOLEAN, name: "Number not equals Boolean", expected: false},
		{a: NUMBER, b: VOID, name: "Number not equals Void", expected: false},
		{a: NewClass("Point"), b: NewClass("Point"), name: "same class name", expected: true},
		{a: NewClass("Point"), b: NewClass("Vector"), name: "different class name", expected: false},
		{a: NewClass("Point"), b: NUMBER, name: "class not equals Number", expected: false},
		{a: NUMBER, b: NewClass("Number"), name: "basic not equals class of same name", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.a.Equals(tt.b); result != tt.expected {
				t.Errorf("Equals() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestClassTypeName(t *testing.T) {
	point := NewClass("Point")
	if point.String() != "Point" {
		t.Errorf("String() = %v, want Point", point.String())
	}
	if point.TypeKind() != "CLASS" {
		t.Errorf("TypeKind() = %v, want CLASS", point.TypeKind())
	}

	name, ok := IsClass(point)
	if !ok || name != "Point" {
		t.Errorf("IsClass() = (%v, %v), want (Point, true)", name, ok)
	}
	if _, ok := IsClass(NUMBER); ok {
		t.Error("IsClass(NUMBER) should be false")
	}
}
