package superscript

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestCompileFixtures snapshots the generated JavaScript for a set of
// representative programs, so formatting changes in the code generator show
// up as reviewable diffs.
func TestCompileFixtures(t *testing.T) {
	fixtures := []struct {
		name   string
		source string
	}{
		{
			name:   "expression statement",
			source: "function main() { 1 + 2 * 3; }",
		},
		{
			name: "control flow",
			source: `function main() {
				let i = 0;
				while (i < 10) {
					if (i % 2 == 0)
						i = i + 1;
					else
						i = i + 2;
				}
			}`,
		},
		{
			name: "classes",
			source: `class Vector {
				x : number;
				y : number;
				function constructor(x: number, y: number) { }
				function dot(other: Vector): number {
					return this.x * other.x + this.y * other.y;
				}
			}
			function main() : number {
				let v = new Vector(1, 2);
				return v.dot(v);
			}`,
		},
		{
			name: "logical operators",
			source: `function ok(a: number, b: number): boolean {
				return !(a == b) && (a < b || a > b);
			}`,
		},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			js, err := Compile(fixture.source)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			snaps.MatchSnapshot(t, js)
		})
	}
}

// TestDiagnosticFixtures snapshots formatted diagnostics for representative
// failure modes.
func TestDiagnosticFixtures(t *testing.T) {
	fixtures := []struct {
		name   string
		source string
	}{
		{"unterminated comment", "/* never closed"},
		{"trailing comma", "function main() { f(1,); }"},
		{"stray declaration", "let x = 1;"},
		{"bad condition", "function main() {\n\tif (1) { }\n}"},
		{"unknown method", "class A { }\nfunction main() {\n\tlet a = new A();\n\ta.b();\n}"},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			err := Check(fixture.source)
			if err == nil {
				t.Fatal("expected a compile error")
			}
			snaps.MatchSnapshot(t, FormatError(err, fixture.source, false))
		})
	}
}
