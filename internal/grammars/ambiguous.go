package grammars

import "github.com/hcomb/gll"

// Ambiguous builds the textbook ambiguous grammar
//
//	S := S 'a' S | 'a'
//
// against which every distinct parse of "aaaaa" should surface, rather
// than only the first one found. Each derivation's semantic value is a
// StringValue built bottom-up: a leaf's value is "a"; a binary node's
// value is left+"a"+right+"+", a postfix-ish marker chosen only so that
// the two distinct parse trees of "aaaaa" produce two distinguishable
// strings rather than collapsing to the same rendering.
func Ambiguous() *gll.SymbolCombinator {
	leaf, err := gll.Regex(`a`, errAt("unexpected end of input"), errAt("expected 'a'"))
	if err != nil {
		panic(err)
	}
	base := gll.ToSymbol(gll.Map(leaf, func(s gll.ParseState) gll.Identifiable {
		return StringValue("a")
	}, nil))

	var s *gll.SymbolCombinator
	s = gll.Lazy(func() *gll.SymbolCombinator {
		binary := gll.SymbolChain([]*gll.SymbolCombinator{s, base, s}, func(data []gll.Identifiable) gll.Identifiable {
			left := string(data[0].(StringValue))
			right := string(data[2].(StringValue))
			return StringValue(left + "a" + right + "+")
		})
		return gll.Alternatives(binary, base)
	})
	return s
}
