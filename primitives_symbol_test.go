package gll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolEmptyPublishesStateUnchanged(t *testing.T) {
	states, err := Run(SymbolEmpty(), "abc", plainValue("v"))
	assert.NoError(t, err)
	assert.Len(t, states, 1)
	assert.Equal(t, plainValue("v"), states[0].Data)
	assert.Equal(t, 0, states[0].Index)
}

func TestToSymbolPromotesATokenCombinator(t *testing.T) {
	states, err := Run(ToSymbol(letterA()), "a", nil)
	assert.NoError(t, err)
	assert.Len(t, states, 1)
	assert.Equal(t, 1, states[0].Index)
}

func TestLazyBuildsOnceAndMemoisesTheInstance(t *testing.T) {
	builds := 0
	p := Lazy(func() *SymbolCombinator {
		builds++
		return symbolA()
	})
	_, err1 := Run(p, "a", nil)
	_, err2 := Run(p, "a", nil)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, 1, builds, "the thunk builds the wrapped combinator exactly once across repeated use")
}

func TestAlternativesExploresEveryBranch(t *testing.T) {
	p := Alternatives(
		SymbolMap(symbolA(), func(s ParseState) Identifiable { return plainValue("first") }, nil),
		SymbolMap(symbolA(), func(s ParseState) Identifiable { return plainValue("second") }, nil),
	)
	states, err := Run(p, "a", nil)
	assert.NoError(t, err)
	assert.Len(t, states, 2)
}

func TestAlternativesForwardsErrorStatesUnchanged(t *testing.T) {
	in := NewErrorState("a", 0, nil, plainValue("upstream"))
	var observed []ParseState
	stack := newParseStack(DefaultConfig)
	Alternatives(symbolA(), symbolA()).dispatch(in, func(r ParseState) { observed = append(observed, r) }, stack)
	for item, more := stack.pop(); more; item, more = stack.pop() {
		item.run()
	}
	assert.Len(t, observed, 1)
	assert.Equal(t, in, observed[0])
}
