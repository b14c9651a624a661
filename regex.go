package gll

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Regex compiles pattern with github.com/dlclark/regexp2 and returns a
// TokenCombinator applying it anchored at the current index against
// target[index:]. On match it consumes the matched length and appends
// the matched substring as a single token; EOF and mismatch behaviour
// mirror Str. Patterns are authored by the caller; the engine performs
// no anchoring rewrite of its own beyond requiring the match to start
// exactly at the current index.
//
// regexp2 is used in place of the standard library's regexp so that
// grammar authors get PCRE/.NET-style semantics (backreferences,
// lookaround) rather than RE2's restricted subset — the engine is a
// thin host over whatever regex semantics the caller's grammar expects,
// and does not impose a particular regex flavour on them.
func Regex(pattern string, onEOF, onMismatch ErrorProducer) (*TokenCombinator, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("gll: compile regex %q: %w", pattern, err)
	}
	return newTokenCombinator(quoteLabel("Regex", pattern), func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		if state.Index >= len(state.Target) {
			return NewErrorState(state.Target, state.Index, state.Tokens, onEOF(state.Target, state.Index)), nil
		}
		m, matchErr := re.FindStringMatchStartingAt(state.Target, state.Index)
		if matchErr != nil {
			return ParseState{}, fmt.Errorf("gll: regex match: %w", matchErr)
		}
		if m == nil || m.Index != state.Index {
			return NewErrorState(state.Target, state.Index, state.Tokens, onMismatch(state.Target, state.Index)), nil
		}
		matched := m.String()
		return NewResultState(state.Target, state.Index+len(matched), cloneTokens(state.Tokens, matched), state.Data), nil
	}), nil
}
