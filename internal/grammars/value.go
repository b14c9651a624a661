// Package grammars holds small, fully worked demonstration grammars
// exercising the gll engine end to end: an arithmetic expression grammar,
// an intentionally ambiguous grammar, a mixed left/right recursive
// grammar, and an error-recovery grammar, playing the role
// example/rpn and example/sexp play in hucsmn/peg — runnable and
// tested, not part of the public API.
package grammars

import (
	"fmt"

	"github.com/hcomb/gll"
)

// StringValue is a plain string Identifiable: its identity is the string
// itself. Used by the demo grammars whose semantic value already is a
// canonical string (single characters, postfix-encoded trees).
type StringValue string

// Identity returns the string unchanged.
func (s StringValue) Identity() string { return string(s) }

// ParseError is the semantic error value every demo grammar reports
// through its error-production callbacks: a short message plus the
// position it occurred at. It also satisfies the standard error
// interface so a caller can wrap/compare it like any other Go error.
type ParseError struct {
	Message string
	Index   int
}

// Identity is the message alone: two errors with the same message at
// different positions are considered the same kind of failure for
// memoisation purposes, which is what lets Choice/Alternatives collapse
// "expected digit" reported at the same input position from two
// different alternatives into one memo entry.
func (e ParseError) Identity() string { return e.Message }

func (e ParseError) Error() string {
	return fmt.Sprintf("%s (at %d)", e.Message, e.Index)
}

func errAt(message string) gll.ErrorProducer {
	return func(target string, index int) gll.Identifiable {
		return ParseError{Message: message, Index: index}
	}
}
