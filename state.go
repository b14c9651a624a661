package gll

import "fmt"

// stateKind tags the two variants of the ParseState union.
type stateKind int

const (
	kindResult stateKind = iota
	kindError
)

// ParseState is the immutable snapshot threaded between combinators: a
// successful Result or a failed Error, sharing the common fields Target,
// Index and Tokens. Result additionally carries Data; Error carries Err.
//
// States are never mutated in place; every combinator that transforms a
// state constructs a new one via NewResultState/NewErrorState, which
// enforce the invariants spec'd for every reachable state:
//
//	0 <= Index <= len(Target)
//	sum of len(tok) for tok in Tokens <= Index
type ParseState struct {
	kind stateKind

	Target string
	Index  int
	Tokens []string

	Data Identifiable // valid when IsResult()
	Err  Identifiable // valid when IsError()
}

// IsResult reports whether the state is a successful Result.
func (s ParseState) IsResult() bool { return s.kind == kindResult }

// IsError reports whether the state is a failed Error.
func (s ParseState) IsError() bool { return s.kind == kindError }

// Identity is "{target}_{index}", with "_{semantic identity}" appended
// only when that identity is non-empty. It is the memoisation key for
// both the token and symbol combinator layers, and the deduplication key
// for pending work on the parse stack.
func (s ParseState) Identity() string {
	var sem string
	switch {
	case s.IsError() && s.Err != nil:
		sem = s.Err.Identity()
	case s.IsResult() && s.Data != nil:
		sem = s.Data.Identity()
	}
	id := fmt.Sprintf("%s_%d", s.Target, s.Index)
	if sem != "" {
		id += "_" + sem
	}
	return id
}

// NewResultState constructs a successful state, panicking with an engine
// fault if the invariants in the ParseState doc comment are violated.
func NewResultState(target string, index int, tokens []string, data Identifiable) ParseState {
	checkInvariants(target, index, tokens)
	return ParseState{kind: kindResult, Target: target, Index: index, Tokens: tokens, Data: data}
}

// NewErrorState constructs a failed state, panicking with an engine fault
// if the invariants in the ParseState doc comment are violated.
func NewErrorState(target string, index int, tokens []string, err Identifiable) ParseState {
	checkInvariants(target, index, tokens)
	return ParseState{kind: kindError, Target: target, Index: index, Tokens: tokens, Err: err}
}

func checkInvariants(target string, index int, tokens []string) {
	if index < 0 || index > len(target) {
		panic(newFault("index %d out of range for target of length %d", index, len(target)))
	}
	total := 0
	for _, tok := range tokens {
		total += len(tok)
	}
	if total > index {
		panic(newFault("consumed token length %d exceeds index %d", total, index))
	}
}

// cloneTokens returns a copy of tokens with extra appended, never aliasing
// the backing array of tokens itself (states are immutable, so appends
// must not be allowed to clobber a sibling state sharing the same slice
// header by virtue of append's capacity reuse).
func cloneTokens(tokens []string, extra ...string) []string {
	out := make([]string, 0, len(tokens)+len(extra))
	out = append(out, tokens...)
	out = append(out, extra...)
	return out
}

// ErrorProducer mints a semantic error value for a failure occurring at
// index within target; it is the caller-supplied error-production
// callback of spec section 6.
type ErrorProducer func(target string, index int) Identifiable
