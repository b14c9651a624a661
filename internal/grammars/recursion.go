package grammars

import "github.com/hcomb/gll"

// MixedRecursion builds
//
//	LR := LR 'a' | 'a' LR | 'a'
//
// combining direct left recursion, direct right recursion and a base
// case in one non-terminal, the shape spec's recursion scenario uses to
// confirm the engine handles both directions and their interleaving
// without the native call-stack depth growing with input length. Each
// derivation's semantic value is a StringValue recording its tree shape:
// a leaf's value is "a"; the left-recursive production's value is the
// inner value followed by "a<"; the right-recursive production's value is
// "a", the inner value, then ">". Distinct derivations therefore have
// distinct identities, and each surfaces as its own result instead of
// collapsing into one memoised result.
func MixedRecursion() *gll.SymbolCombinator {
	a, err := gll.Regex(`a`, errAt("unexpected end of input"), errAt("expected 'a'"))
	if err != nil {
		panic(err)
	}
	base := gll.ToSymbol(gll.Map(a, func(s gll.ParseState) gll.Identifiable {
		return StringValue("a")
	}, nil))

	var lr *gll.SymbolCombinator
	lr = gll.Lazy(func() *gll.SymbolCombinator {
		left := gll.SymbolChain([]*gll.SymbolCombinator{lr, base}, func(data []gll.Identifiable) gll.Identifiable {
			return StringValue(string(data[0].(StringValue)) + "a<")
		})
		right := gll.SymbolChain([]*gll.SymbolCombinator{base, lr}, func(data []gll.Identifiable) gll.Identifiable {
			return StringValue("a" + string(data[1].(StringValue)) + ">")
		})
		return gll.Alternatives(left, right, base)
	})
	return lr
}
