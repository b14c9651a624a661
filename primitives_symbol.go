package gll

// SymbolEmpty publishes the input state unchanged as a successful parse
// position, enabling optional symbols and explicit epsilon productions.
func SymbolEmpty() *SymbolCombinator {
	return newSymbolCombinator("Empty", func(state ParseState, k Continuation, stack *ParseStack) {
		k(state)
	})
}

// ToSymbol promotes a token combinator into the symbol layer: it invokes
// the token transformer synchronously (token combinators have no
// suspension points, per spec section 5) and publishes its single state
// through k.
func ToSymbol(p *TokenCombinator) *SymbolCombinator {
	return newSymbolCombinator("ToSymbol("+p.name+")", func(state ParseState, k Continuation, stack *ParseStack) {
		out, err := p.apply(state)
		if err != nil {
			stack.fail(err)
			return
		}
		k(out)
	})
}

// SymbolThunk delays construction of a symbol combinator graph.
type SymbolThunk func() *SymbolCombinator

// Lazy delays construction of the inner combinator until first use, then
// memoises the constructed instance. This is what makes self-referential
// grammar definitions possible: a production can refer to a *SymbolCombinator
// variable that is only fully initialised once Lazy's thunk runs, by
// which point the variable's assignment has long completed.
func Lazy(thunk SymbolThunk) *SymbolCombinator {
	var built *SymbolCombinator
	return newSymbolCombinator("Lazy", func(state ParseState, k Continuation, stack *ParseStack) {
		if built == nil {
			built = thunk()
		}
		built.dispatch(state, k, stack)
	})
}

// Alternatives dispatches every p against a non-error input state,
// exploring all of them rather than committing to the first success the
// way Choice does; publication is deduplicated by result identity via the
// ordinary memo discipline of dispatch. An error input is forwarded to k
// unchanged.
func Alternatives(ps ...*SymbolCombinator) *SymbolCombinator {
	return newSymbolCombinator("Alternatives", func(state ParseState, k Continuation, stack *ParseStack) {
		if state.IsError() {
			k(state)
			return
		}
		for _, p := range ps {
			p.dispatch(state, k, stack)
		}
	})
}
