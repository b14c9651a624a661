package gll

import (
	"strconv"
	"strings"
)

// Str matches when target[index:] starts with s. On success it consumes
// len(s) characters and appends s to Tokens, carrying Data through
// unchanged. It fails with onEOF when index >= len(target), and with
// onMismatch when the prefix differs.
func Str(s string, onEOF, onMismatch ErrorProducer) *TokenCombinator {
	return newTokenCombinator(quoteLabel("Str", s), func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		if state.Index >= len(state.Target) {
			return NewErrorState(state.Target, state.Index, state.Tokens, onEOF(state.Target, state.Index)), nil
		}
		if !strings.HasPrefix(state.Target[state.Index:], s) {
			return NewErrorState(state.Target, state.Index, state.Tokens, onMismatch(state.Target, state.Index)), nil
		}
		return NewResultState(state.Target, state.Index+len(s), cloneTokens(state.Tokens, s), state.Data), nil
	})
}

// Error converts a successful state into a failed one at the same index
// and Tokens, carrying a semantic error minted by e. If the input is
// already an Error, it passes through unchanged.
func Error(e func(state ParseState) Identifiable) *TokenCombinator {
	return newTokenCombinator("Error", func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		return NewErrorState(state.Target, state.Index, state.Tokens, e(state)), nil
	})
}

// Empty always succeeds, consuming no input and leaving Tokens and Data
// untouched. An Error input passes through unchanged.
func Empty() *TokenCombinator {
	return newTokenCombinator("Empty", func(state ParseState) (ParseState, error) {
		return state, nil
	})
}

func quoteLabel(op, s string) string {
	return op + "(" + strconv.Quote(s) + ")"
}
