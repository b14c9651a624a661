package gll

// Many is the greedy Kleene closure: apply p until it errors or
// index == len(target), returning the last successful state. A step that
// succeeds without advancing Index terminates the loop rather than
// looping forever — spec section 9 notes termination "relies on p
// advancing index in success (not enforced)" and permits, without
// requiring, this defence; Many takes it.
func Many(p *TokenCombinator) *TokenCombinator {
	return newTokenCombinator("Many", func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		current := state
		for current.Index < len(current.Target) {
			next, err := p.apply(current)
			if err != nil {
				return ParseState{}, err
			}
			if next.IsError() || next.Index == current.Index {
				break
			}
			current = next
		}
		return current, nil
	})
}

// Many1 is Many, additionally requiring that at least one token was
// appended to Tokens relative to the state entering it; failing with
// onEmpty otherwise.
func Many1(p *TokenCombinator, onEmpty ErrorProducer) *TokenCombinator {
	many := Many(p)
	return newTokenCombinator("Many1", func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		out, err := many.apply(state)
		if err != nil {
			return ParseState{}, err
		}
		if out.IsError() {
			return out, nil
		}
		if len(out.Tokens) <= len(state.Tokens) {
			return NewErrorState(state.Target, state.Index, state.Tokens, onEmpty(state.Target, state.Index)), nil
		}
		return out, nil
	})
}

// Optional applies p; on failure it returns the original state unchanged
// (no input consumed, no token appended); on success it returns p's
// result.
func Optional(p *TokenCombinator) *TokenCombinator {
	return newTokenCombinator("Optional", func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		out, err := p.apply(state)
		if err != nil {
			return ParseState{}, err
		}
		if out.IsError() {
			return state, nil
		}
		return out, nil
	})
}

// Until advances one character at a time, appending nothing, until
// terminator succeeds at the current position; the terminator itself is
// not consumed. On success it produces one result token equal to the
// skipped substring (possibly empty) with Index pointing just before the
// terminator's match. Reaching end of target without matching fails with
// onEOF.
func Until(terminator *TokenCombinator, onEOF ErrorProducer) *TokenCombinator {
	return newTokenCombinator("Until", func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		for i := state.Index; ; i++ {
			probe := NewResultState(state.Target, i, nil, state.Data)
			out, err := terminator.apply(probe)
			if err != nil {
				return ParseState{}, err
			}
			if !out.IsError() {
				skipped := state.Target[state.Index:i]
				return NewResultState(state.Target, i, cloneTokens(state.Tokens, skipped), state.Data), nil
			}
			if i >= len(state.Target) {
				return NewErrorState(state.Target, state.Index, state.Tokens, onEOF(state.Target, state.Index)), nil
			}
		}
	})
}

// Choice is ordered, committed choice: try each p against the same input
// state, returning the first success. All errors are discarded and
// replaced by onAllFail.
func Choice(onAllFail ErrorProducer, ps ...*TokenCombinator) *TokenCombinator {
	return newTokenCombinator("Choice", func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		for _, p := range ps {
			out, err := p.apply(state)
			if err != nil {
				return ParseState{}, err
			}
			if !out.IsError() {
				return out, nil
			}
		}
		return NewErrorState(state.Target, state.Index, state.Tokens, onAllFail(state.Target, state.Index)), nil
	})
}

// Lookahead runs probe at the current state to obtain s', computes
// nextParser = f(s'), then applies nextParser to the original state:
// probe's consumption is discarded. Errors from probe are propagated into
// f as part of s', not short-circuited.
func Lookahead(probe *TokenCombinator, f func(ParseState) *TokenCombinator) *TokenCombinator {
	return newTokenCombinator("Lookahead", func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		probed, err := probe.apply(state)
		if err != nil {
			return ParseState{}, err
		}
		next := f(probed)
		return next.apply(state)
	})
}

// SideEffect invokes fn(state) and returns state unchanged, permitting
// externally observable effects (e.g. a caller's own logging) without
// disturbing the parse.
func SideEffect(fn func(ParseState)) *TokenCombinator {
	return newTokenCombinator("SideEffect", func(state ParseState) (ParseState, error) {
		fn(state)
		return state, nil
	})
}

// Recovery is the dual of Error: a Result input passes through unchanged;
// an Error input is converted into a Result at the same Index and
// Tokens, with Data produced by dataFromError applied to the error state.
// Recovery is deliberately not part of the short-circuit-on-error group
// above: it is meant to wrap around a fallible parser, converting its
// failure outcome, not to sit as an ordinary step inside a Chain (which
// would short-circuit before ever reaching it).
func Recovery(dataFromError func(state ParseState) Identifiable) *TokenCombinator {
	return newTokenCombinator("Recovery", func(state ParseState) (ParseState, error) {
		if !state.IsError() {
			return state, nil
		}
		return NewResultState(state.Target, state.Index, state.Tokens, dataFromError(state)), nil
	})
}

// Recover composes a fallible parser with Recovery in the one way that
// is otherwise inexpressible from outside this package: Chain
// short-circuits before a later Recovery step is ever reached, and
// Lookahead's chosen next parser is applied to the probe's original
// input rather than to the probe's own (possibly erroring) output. By
// applying fallible and then Recovery back to back against the same
// thread of state, Recover gives a grammar author the "try this, and
// turn failure into a placeholder value" composition Recovery's own
// doc describes, without requiring them to reach into the engine's
// internals to get it.
func Recover(fallible *TokenCombinator, dataFromError func(state ParseState) Identifiable) *TokenCombinator {
	recovery := Recovery(dataFromError)
	return newTokenCombinator("Recover("+fallible.name+")", func(state ParseState) (ParseState, error) {
		out, err := fallible.apply(state)
		if err != nil {
			return ParseState{}, err
		}
		return recovery.apply(out)
	})
}
