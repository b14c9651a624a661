package gll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTransformsDataOnSuccess(t *testing.T) {
	p := Map(letterA(), func(s ParseState) Identifiable { return plainValue("mapped") }, nil)
	s, err := p.Run("a", nil)
	assert.NoError(t, err)
	assert.Equal(t, plainValue("mapped"), s.Data)
}

func TestMapTransformsErrorOnFailure(t *testing.T) {
	p := Map(letterA(), nil, func(s ParseState) Identifiable { return plainValue("mapped error") })
	s, err := p.Run("b", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsError())
	assert.Equal(t, plainValue("mapped error"), s.Err)
}

func TestMapWithNilCallbackLeavesThatSideUnchanged(t *testing.T) {
	p := Map(letterA(), nil, nil)
	s, err := p.Run("a", plainValue("original"))
	assert.NoError(t, err)
	assert.Equal(t, plainValue("original"), s.Data)
}

func TestAssertFlagsSuccess(t *testing.T) {
	p := Assert(letterA(), func(s ParseState) Identifiable { return plainValue("rejected") })
	s, err := p.Run("a", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsError())
	assert.Equal(t, plainValue("rejected"), s.Err)
}

func TestAssertPassesWhenCheckReturnsNil(t *testing.T) {
	p := Assert(letterA(), func(s ParseState) Identifiable { return nil })
	s, err := p.Run("a", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
}

func TestChainThreadsTokensAndInvokesAction(t *testing.T) {
	p := Chain([]*TokenCombinator{letterA(), Str("b", errProducer("eof"), errProducer("mismatch"))}, func(data []Identifiable) Identifiable {
		return plainValue("done")
	})
	s, err := p.Run("ab", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, []string{"a", "b"}, s.Tokens)
	assert.Equal(t, plainValue("done"), s.Data)
}

func TestChainShortCircuitsOnFirstFailure(t *testing.T) {
	ranSecond := false
	second := SideEffect(func(s ParseState) { ranSecond = true })
	p := Chain([]*TokenCombinator{letterA(), second}, nil)
	s, err := p.Run("x", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsError())
	assert.False(t, ranSecond, "Chain must never reach a later step once an earlier one fails")
}

func TestContextualStreamsStepsUntilDone(t *testing.T) {
	count := 0
	p := Contextual(letterA(), func(s ParseState) (*TokenCombinator, bool) {
		if count >= 2 {
			return nil, false
		}
		count++
		return letterA(), true
	})
	s, err := p.Run("aaa", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, 3, s.Index)
}

func symbolA() *SymbolCombinator { return ToSymbol(letterA()) }

func TestSymbolMapTransformsPublishedResults(t *testing.T) {
	p := SymbolMap(symbolA(), func(s ParseState) Identifiable { return plainValue("mapped") }, nil)
	states, err := Run(p, "a", nil)
	assert.NoError(t, err)
	assert.Len(t, states, 1)
	assert.Equal(t, plainValue("mapped"), states[0].Data)
}

func TestSymbolAssertFlagsPublishedResults(t *testing.T) {
	p := SymbolAssert(symbolA(), func(s ParseState) Identifiable { return plainValue("rejected") })
	states, err := Run(p, "a", nil)
	assert.NoError(t, err)
	assert.Len(t, states, 1)
	assert.True(t, states[0].IsError())
}

func TestSymbolChainThreadsDataVector(t *testing.T) {
	p := SymbolChain([]*SymbolCombinator{symbolA(), ToSymbol(Str("b", errProducer("eof"), errProducer("mismatch")))}, func(data []Identifiable) Identifiable {
		return plainValue("done")
	})
	states, err := Run(p, "ab", nil)
	assert.NoError(t, err)
	assert.Len(t, states, 1)
	assert.Equal(t, plainValue("done"), states[0].Data)
}

func TestSymbolContextualStreamsSteps(t *testing.T) {
	count := 0
	p := SymbolContextual(symbolA(), func(s ParseState) (*SymbolCombinator, bool) {
		if count >= 2 {
			return nil, false
		}
		count++
		return symbolA(), true
	})
	states, err := Run(p, "aaa", nil)
	assert.NoError(t, err)
	assert.Len(t, states, 1)
	assert.Equal(t, 3, states[0].Index)
}
