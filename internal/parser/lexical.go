package parser

import (
	"unicode"

	"github.com/eyelash/superscript/internal/errors"
)

// Character classes of the lexical grammar.

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isIdentifierStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentifierChar(r rune) bool {
	return isIdentifierStart(r) || (r >= '0' && r <= '9')
}

func anyRune(r rune) bool {
	return true
}

// Reusable matchers of the lexical layer.
var (
	whitespace = Repeat(Pred(isWhitespace))
	anyChar    = Pred(anyRune)
	digit      = Range('0', '9')

	// identifier: [A-Za-z_][A-Za-z0-9_]*
	identifier = Sequence(Pred(isIdentifierStart), Repeat(Pred(isIdentifierChar)))

	// number: one or more decimal digits; no sign, decimal point, or exponent
	number = Sequence(digit, Repeat(digit))
)

// keyword matches the spelling followed by a guard rejecting a trailing
// identifier character, so "returns" is not parsed as "return" + "s".
func keyword(k string) Matcher {
	return Sequence(Literal(k), Not(Pred(isIdentifierChar)))
}

// skipComments consumes whitespace and comments: `/* ... */` (non-nesting,
// an unterminated comment is an error) and `// ...` up to but excluding the
// newline. Whitespace is consumed again between and after comments.
func skipComments(c *Cursor) *errors.CompileError {
	c.Parse(whitespace)
	for {
		if _, _, err := c.Parse(Literal("/*")); err == nil {
			c.Parse(Repeat(Sequence(Not(Literal("*/")), anyChar)))
			if err := c.Expect("*/"); err != nil {
				return err
			}
		} else if _, _, err := c.Parse(Literal("//")); err == nil {
			c.Parse(Repeat(Sequence(Not(Char('\n')), anyChar)))
		} else {
			return nil
		}
		c.Parse(whitespace)
	}
}
