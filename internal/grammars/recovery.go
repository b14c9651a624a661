package grammars

import (
	"strconv"
	"strings"

	"github.com/hcomb/gll"
)

// FieldList builds a token-combinator parser for a comma-separated list
// of integer fields that recovers from a malformed field instead of
// failing the whole parse: a bad field is replaced by the StringValue
// "<invalid>" and parsing resumes at the next comma, exercising the
// Recover/Recovery composition the rest of this package never needs
// (every other demo grammar lives on the symbol layer, where failure
// is a ParseState value the caller inspects directly rather than
// something to paper over mid-parse).
func FieldList() *gll.TokenCombinator {
	atEOF := gll.Assert(gll.Empty(), func(s gll.ParseState) gll.Identifiable {
		if s.Index >= len(s.Target) {
			return nil
		}
		return ParseError{Message: "expected end of input", Index: s.Index}
	})
	comma := gll.Str(",", errAt("unexpected end of input"), errAt("expected ','"))
	delimiter := gll.Choice(errAt("expected ',' or end of input"), comma, atEOF)
	skipToDelimiter := gll.Until(delimiter, errAt("unexpected end of input"))

	validated := gll.Assert(skipToDelimiter, func(s gll.ParseState) gll.Identifiable {
		if isDigits(s.Tokens[len(s.Tokens)-1]) {
			return nil
		}
		return ParseError{Message: "invalid field", Index: s.Index}
	})
	field := gll.Map(validated, func(s gll.ParseState) gll.Identifiable {
		v, _ := strconv.Atoi(s.Tokens[len(s.Tokens)-1])
		return NumberValue(float64(v))
	}, nil)

	recoveredField := gll.Recover(field, func(s gll.ParseState) gll.Identifiable {
		return StringValue("<invalid>")
	})

	entry := gll.Chain([]*gll.TokenCombinator{recoveredField, gll.Optional(comma)}, nil)
	return gll.Many1(entry, errAt("expected at least one field"))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}
