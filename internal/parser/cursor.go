package parser

import "github.com/eyelash/superscript/internal/errors"

// Cursor holds the full source text and the current byte offset. A
// successful Parse strictly advances the offset by the matcher's reported
// length; a failed Parse leaves it unchanged. Peek and Not never advance.
type Cursor struct {
	source string
	offset int
}

// NewCursor creates a cursor at the start of the source.
func NewCursor(source string) *Cursor {
	return &Cursor{source: source}
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// AtEOF reports whether the cursor has consumed the entire source.
func (c *Cursor) AtEOF() bool {
	return c.offset >= len(c.source)
}

// Parse runs the matcher against the remaining source. On match it returns
// the consumed slice together with the pre-consumption offset, used as the
// location for diagnostics, and advances the cursor. On non-match it
// returns an error located at the current offset with an empty message;
// callers substitute a specific message where one is useful.
func (c *Cursor) Parse(m Matcher) (string, int, *errors.CompileError) {
	length, ok := m.Match(c.source[c.offset:])
	if !ok {
		return "", 0, errors.New(c.offset, "")
	}
	start := c.offset
	c.offset += length
	return c.source[start:c.offset], start, nil
}

// Expect parses the exact literal, substituting the message
// "expected <literal>" on failure.
func (c *Cursor) Expect(literal string) *errors.CompileError {
	if _, _, err := c.Parse(Literal(literal)); err != nil {
		return err.WithMessage("expected " + literal)
	}
	return nil
}

// Error constructs an error located at the current offset.
func (c *Cursor) Error(message string) *errors.CompileError {
	return errors.New(c.offset, message)
}
