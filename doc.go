// Package gll implements a generalised parser-combinator engine capable
// of recognising any context-free grammar, producing parse trees, and
// attaching user-defined semantic values to them.
//
// Two layered combinator families share the ParseState model:
//
// The token-combinator layer (TokenCombinator, Str, Regex, Many, Choice,
// Chain, ...) is LL(k) recursive-descent with backtracking and unbounded
// lookahead, linear in input size; it does not handle left recursion or
// ambiguity.
//
// The symbol-combinator layer (SymbolCombinator, Alternatives, Lazy,
// SymbolChain, ...) is a Generalised LL parser: continuation-passing plus
// a deferred-work ParseStack stand in for a Graph-Structured Stack,
// producing every distinct parse result of an arbitrary — including
// ambiguous, left/right/indirectly recursive — grammar in worst-case
// O(n^3) time on the input length.
//
// A grammar author supplies an input string, an initial semantic value
// satisfying Identifiable, error-production callbacks, action callbacks,
// and combinator composition; Run, Generate and RunAsync in driver.go are
// the three ways to execute the resulting grammar.
//
// Overview of combinators
//
// Token-layer primitives (ToSymbol lifts any of them into the symbol layer):
//
//	Str(s, onEOF, onMismatch), Error(e), Empty()
//	Regex(pattern, onEOF, onMismatch)
//
// Token-only structural combinators:
//
//	Many(p), Many1(p, onEmpty), Optional(p), Until(term, onEOF)
//	Choice(onAllFail, ps...), Lookahead(probe, f), SideEffect(fn)
//	Recovery(dataFromError)
//
// Polymorphic combinators, one constructor per layer:
//
//	Map / SymbolMap, Assert / SymbolAssert
//	Chain / SymbolChain (with optional ChainAction)
//	Contextual / SymbolContextual
//
// Symbol-only combinators:
//
//	Alternatives(ps...), Lazy(thunk), ToSymbol(tokenParser), SymbolEmpty()
//
// Common mistakes
//
// Unbounded Many: Many(p) where p can succeed without consuming input
// would loop forever; Many defends against this by breaking out of the
// loop whenever a step does not advance Index, per the allowance in
// spec section 9 ("may, but need not, defend").
//
// Chain short-circuit vs Recovery: Chain (and SymbolChain) return the
// first error encountered without ever invoking later steps — including
// a Recovery step placed inside ps. Recovery is meant to wrap a fallible
// parser from the outside, converting its failure outcome, not to sit as
// an ordinary Chain step; see the recovery demo in internal/grammars for
// the composition that does work.
package gll
