// Package errors provides the located error type shared by every compiler
// phase, plus the caret diagnostic formatter used at the CLI boundary.
//
// A CompileError carries a byte offset into the source and a message. The
// formatter resolves the offset to a line and column, prints the source line
// prefixed with its 0-indexed line number, and draws a caret under the
// offending column. Whitespace in the caret padding is preserved so the
// caret lines up under tabs as well as spaces.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// CompileError is a single compilation error anchored to a source byte offset.
type CompileError struct {
	Offset  int
	Message string
}

// New creates a compile error at the given byte offset.
func New(offset int, message string) *CompileError {
	return &CompileError{Offset: offset, Message: message}
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return e.Message
}

// WithMessage returns a copy of the error with the message replaced,
// keeping the offset. Used by the parser to substitute specific messages
// for bare matcher failures.
func (e *CompileError) WithMessage(message string) *CompileError {
	return &CompileError{Offset: e.Offset, Message: message}
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	successLabel = color.New(color.FgGreen, color.Bold)
)

// Success renders the success marker printed after a clean check.
func Success(colorize bool) string {
	if colorize {
		return successLabel.Sprint("success")
	}
	return "success"
}

// Format renders the error as a diagnostic against the source it was
// produced from:
//
//	error: <message>
//	<line#> | <source line>
//	<line#> | <padding>^
//
// The line number is 0-indexed. Column positioning counts bytes from the
// start of the line; whitespace bytes are copied into the caret padding
// verbatim, every other byte becomes a single space.
func (e *CompileError) Format(source string, colorize bool) string {
	var sb strings.Builder

	label := "error"
	if colorize {
		label = errorLabel.Sprint("error")
	}
	fmt.Fprintf(&sb, "%s: %s\n", label, e.Message)

	start, end, num := lineAround(source, e.Offset)
	line := source[start:end]
	fmt.Fprintf(&sb, "%d | %s\n", num, line)
	fmt.Fprintf(&sb, "%d | ", num)
	for i, b := range []byte(line) {
		if start+i >= e.Offset {
			break
		}
		if b == ' ' || b == '\t' {
			sb.WriteByte(b)
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

// lineAround locates the line containing the given byte offset. It returns
// the byte range of the line (exclusive of the newline) and the 0-indexed
// line number.
func lineAround(source string, offset int) (start, end, num int) {
	end = len(source)
	for i, c := range source {
		if c == '\n' {
			if i < offset {
				start = i + 1
				num++
			} else {
				end = i
				break
			}
		}
	}
	return start, end, num
}
