// Package parser implements the superscript front end: a combinator kernel
// over raw source bytes, a cursor tracking the current byte offset, and a
// recursive-descent grammar with a table-driven precedence-climbing
// expression parser.
//
// This file implements the combinator kernel. A Matcher inspects the
// remaining source and either reports how many bytes it would consume or
// reports non-match; it never mutates anything. The Cursor (cursor.go) is
// the only holder of parsing state.
//
// Common usage patterns:
//
//	// match one character
//	cursor.Parse(Char('('))
//
//	// match a keyword without eating a longer identifier
//	cursor.Parse(Sequence(Literal("return"), Not(Pred(isIdentifierChar))))
//
//	// skip to the end of a block comment
//	cursor.Parse(Repeat(Sequence(Not(Literal("*/")), anyChar)))
package parser

import "unicode/utf8"

// Matcher matches a prefix of the remaining source. On match it returns the
// number of bytes consumed (possibly zero); on non-match it returns ok=false
// and the length is meaningless.
type Matcher interface {
	Match(s string) (length int, ok bool)
}

type charMatcher rune

func (m charMatcher) Match(s string) (int, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r != rune(m) {
		return 0, false
	}
	return size, true
}

// Char matches a single character, consuming its UTF-8 length.
func Char(r rune) Matcher {
	return charMatcher(r)
}

type rangeMatcher struct {
	lo, hi rune
}

func (m rangeMatcher) Match(s string) (int, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r < m.lo || r > m.hi {
		return 0, false
	}
	return size, true
}

// Range matches any character in the inclusive range [lo, hi].
func Range(lo, hi rune) Matcher {
	return rangeMatcher{lo: lo, hi: hi}
}

type predMatcher func(rune) bool

func (m predMatcher) Match(s string) (int, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !m(r) {
		return 0, false
	}
	return size, true
}

// Pred matches a single character satisfying the predicate.
func Pred(fn func(rune) bool) Matcher {
	return predMatcher(fn)
}

type literalMatcher string

func (m literalMatcher) Match(s string) (int, bool) {
	if len(s) < len(m) || s[:len(m)] != string(m) {
		return 0, false
	}
	return len(m), true
}

// Literal matches an exact string, consuming its byte length.
func Literal(text string) Matcher {
	return literalMatcher(text)
}

type optionalMatcher struct {
	inner Matcher
}

func (m optionalMatcher) Match(s string) (int, bool) {
	if length, ok := m.inner.Match(s); ok {
		return length, true
	}
	return 0, true
}

// Optional matches its inner matcher's length, or zero bytes when the inner
// matcher fails. It always matches.
func Optional(inner Matcher) Matcher {
	return optionalMatcher{inner: inner}
}

type repeatMatcher struct {
	inner Matcher
}

func (m repeatMatcher) Match(s string) (int, bool) {
	sum := 0
	for {
		length, ok := m.inner.Match(s[sum:])
		if !ok || length == 0 {
			return sum, true
		}
		sum += length
	}
}

// Repeat matches zero or more successive occurrences of the inner matcher,
// consuming their concatenated lengths. It always matches. A zero-length
// inner match terminates the loop so Repeat can never spin.
func Repeat(inner Matcher) Matcher {
	return repeatMatcher{inner: inner}
}

type notMatcher struct {
	inner Matcher
}

func (m notMatcher) Match(s string) (int, bool) {
	if _, ok := m.inner.Match(s); ok {
		return 0, false
	}
	return 0, true
}

// Not is negative lookahead: it matches, consuming nothing, iff the inner
// matcher does not match.
func Not(inner Matcher) Matcher {
	return notMatcher{inner: inner}
}

type peekMatcher struct {
	inner Matcher
}

func (m peekMatcher) Match(s string) (int, bool) {
	if _, ok := m.inner.Match(s); ok {
		return 0, true
	}
	return 0, false
}

// Peek is positive lookahead: it matches, consuming nothing, iff the inner
// matcher matches.
func Peek(inner Matcher) Matcher {
	return peekMatcher{inner: inner}
}

type sequenceMatcher struct {
	matchers []Matcher
}

func (m sequenceMatcher) Match(s string) (int, bool) {
	sum := 0
	for _, matcher := range m.matchers {
		length, ok := matcher.Match(s[sum:])
		if !ok {
			return 0, false
		}
		sum += length
	}
	return sum, true
}

// Sequence matches each matcher in order against successive input.
// Non-match at any step fails the whole sequence.
func Sequence(matchers ...Matcher) Matcher {
	return sequenceMatcher{matchers: matchers}
}

type choiceMatcher struct {
	matchers []Matcher
}

func (m choiceMatcher) Match(s string) (int, bool) {
	for _, matcher := range m.matchers {
		if length, ok := matcher.Match(s); ok {
			return length, true
		}
	}
	return 0, false
}

// Choice tries each matcher in order; the first match wins. It fails iff
// every alternative fails.
func Choice(matchers ...Matcher) Matcher {
	return choiceMatcher{matchers: matchers}
}
