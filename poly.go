package gll

// ChainAction reduces the per-step data vector collected by Chain or
// SymbolChain into the chain's overall Data.
type ChainAction func(data []Identifiable) Identifiable

// Map applies p; on success it replaces Data with mdata(state), on
// failure it replaces Err with merror(state). Neither Index nor Tokens
// changes. A nil mdata/merror leaves that side unchanged.
func Map(p *TokenCombinator, mdata, merror func(ParseState) Identifiable) *TokenCombinator {
	return newTokenCombinator("Map", func(state ParseState) (ParseState, error) {
		out, err := p.apply(state)
		if err != nil {
			return ParseState{}, err
		}
		if out.IsError() {
			if merror == nil {
				return out, nil
			}
			return NewErrorState(out.Target, out.Index, out.Tokens, merror(out)), nil
		}
		if mdata == nil {
			return out, nil
		}
		return NewResultState(out.Target, out.Index, out.Tokens, mdata(out)), nil
	})
}

// Assert applies p. On success it invokes check(state); a non-nil
// Identifiable turns the success into an Error at the same Index/Tokens
// carrying that value. On failure it passes through unchanged.
func Assert(p *TokenCombinator, check func(ParseState) Identifiable) *TokenCombinator {
	return newTokenCombinator("Assert", func(state ParseState) (ParseState, error) {
		out, err := p.apply(state)
		if err != nil {
			return ParseState{}, err
		}
		if out.IsError() {
			return out, nil
		}
		if e := check(out); e != nil {
			return NewErrorState(out.Target, out.Index, out.Tokens, e), nil
		}
		return out, nil
	})
}

// Chain sequences ps left-to-right, threading state and accumulating
// Tokens. The first failure short-circuits: it is returned with whatever
// tokens were already appended, and action is never invoked. On full
// success with a non-nil action, action is invoked once over the
// per-step Data values in positional order, and its result becomes the
// chain's Data.
//
// The per-step data vector is threaded explicitly through the loop
// rather than reconstructed from a backreference map keyed by state
// identity (spec section 9 permits either; explicit threading needs no
// extra bookkeeping in Go, where for-loop variables are not shared
// across iterations the way the hazard described in section 9 assumes).
func Chain(ps []*TokenCombinator, action ChainAction) *TokenCombinator {
	return newTokenCombinator("Chain", func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		current := state
		data := make([]Identifiable, 0, len(ps))
		for _, p := range ps {
			out, err := p.apply(current)
			if err != nil {
				return ParseState{}, err
			}
			if out.IsError() {
				return out, nil
			}
			data = append(data, out.Data)
			current = out
		}
		if action == nil {
			return current, nil
		}
		return NewResultState(current.Target, current.Index, current.Tokens, action(data)), nil
	})
}

// ContextualStep produces the next parser to run given the state produced
// so far by a Contextual chain; ok == false ends the sequence.
type ContextualStep func(state ParseState) (next *TokenCombinator, ok bool)

// Contextual builds the chain [initial, ...steps yielded by step] and
// delegates to Chain's semantics without an action, streaming the steps
// one at a time instead of materialising them into a slice first (the
// Go equivalent of "build the chain from the supplied generator-producing
// factory").
func Contextual(initial *TokenCombinator, step ContextualStep) *TokenCombinator {
	return newTokenCombinator("Contextual", func(state ParseState) (ParseState, error) {
		if state.IsError() {
			return state, nil
		}
		current, err := initial.apply(state)
		if err != nil {
			return ParseState{}, err
		}
		if current.IsError() {
			return current, nil
		}
		for {
			next, ok := step(current)
			if !ok {
				break
			}
			out, err := next.apply(current)
			if err != nil {
				return ParseState{}, err
			}
			if out.IsError() {
				return out, nil
			}
			current = out
		}
		return current, nil
	})
}

// SymbolMap is Map's symbol-layer counterpart: it forwards every result
// published by p through k, transformed the same way Map transforms a
// token result.
func SymbolMap(p *SymbolCombinator, mdata, merror func(ParseState) Identifiable) *SymbolCombinator {
	return newSymbolCombinator("Map", func(state ParseState, k Continuation, stack *ParseStack) {
		p.dispatch(state, func(r ParseState) {
			if r.IsError() {
				if merror == nil {
					k(r)
					return
				}
				k(NewErrorState(r.Target, r.Index, r.Tokens, merror(r)))
				return
			}
			if mdata == nil {
				k(r)
				return
			}
			k(NewResultState(r.Target, r.Index, r.Tokens, mdata(r)))
		}, stack)
	})
}

// SymbolAssert is Assert's symbol-layer counterpart.
func SymbolAssert(p *SymbolCombinator, check func(ParseState) Identifiable) *SymbolCombinator {
	return newSymbolCombinator("Assert", func(state ParseState, k Continuation, stack *ParseStack) {
		p.dispatch(state, func(r ParseState) {
			if r.IsError() {
				k(r)
				return
			}
			if e := check(r); e != nil {
				k(NewErrorState(r.Target, r.Index, r.Tokens, e))
				return
			}
			k(r)
		}, stack)
	})
}

// SymbolChain is Chain's symbol-layer counterpart: ps are dispatched in
// sequence via continuation-passing, fanning out over every result each
// step publishes (a step with several distinct results forks the
// remainder of the chain once per result), threading the per-step data
// vector the same way Chain does.
func SymbolChain(ps []*SymbolCombinator, action ChainAction) *SymbolCombinator {
	return newSymbolCombinator("Chain", func(state ParseState, k Continuation, stack *ParseStack) {
		if state.IsError() {
			k(state)
			return
		}
		chainStep(ps, 0, state, nil, action, k, stack)
	})
}

func chainStep(ps []*SymbolCombinator, i int, state ParseState, data []Identifiable, action ChainAction, k Continuation, stack *ParseStack) {
	if i == len(ps) {
		if action == nil {
			k(state)
			return
		}
		k(NewResultState(state.Target, state.Index, state.Tokens, action(data)))
		return
	}
	ps[i].dispatch(state, func(r ParseState) {
		if r.IsError() {
			k(r)
			return
		}
		next := append(append([]Identifiable{}, data...), r.Data)
		chainStep(ps, i+1, r, next, action, k, stack)
	}, stack)
}

// SymbolContextual is Contextual's symbol-layer counterpart.
func SymbolContextual(initial *SymbolCombinator, step func(state ParseState) (next *SymbolCombinator, ok bool)) *SymbolCombinator {
	return newSymbolCombinator("Contextual", func(state ParseState, k Continuation, stack *ParseStack) {
		if state.IsError() {
			k(state)
			return
		}
		initial.dispatch(state, func(r ParseState) {
			symbolContextualStep(step, r, k, stack)
		}, stack)
	})
}

func symbolContextualStep(step func(ParseState) (*SymbolCombinator, bool), state ParseState, k Continuation, stack *ParseStack) {
	if state.IsError() {
		k(state)
		return
	}
	next, ok := step(state)
	if !ok {
		k(state)
		return
	}
	next.dispatch(state, func(r ParseState) {
		symbolContextualStep(step, r, k, stack)
	}, stack)
}
