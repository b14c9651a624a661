package gll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func letterA() *TokenCombinator { return Str("a", errProducer("eof"), errProducer("mismatch")) }

func TestManyConsumesGreedily(t *testing.T) {
	s, err := Many(letterA()).Run("aaab", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, 3, s.Index)
	assert.Equal(t, []string{"a", "a", "a"}, s.Tokens)
}

func TestManyStopsOnZeroWidthSuccess(t *testing.T) {
	s, err := Many(Empty()).Run("aaa", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, 0, s.Index, "a step that never advances index must not loop forever")
}

func TestMany1RequiresAtLeastOne(t *testing.T) {
	s, err := Many1(letterA(), errProducer("need at least one a")).Run("bbb", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsError())
	assert.Equal(t, plainValue("need at least one a"), s.Err)
}

func TestMany1AcceptsAtLeastOne(t *testing.T) {
	s, err := Many1(letterA(), errProducer("need at least one a")).Run("ab", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, 1, s.Index)
}

func TestOptionalOnSuccess(t *testing.T) {
	s, err := Optional(letterA()).Run("ab", nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, s.Index)
}

func TestOptionalOnFailureReturnsOriginalState(t *testing.T) {
	s, err := Optional(letterA()).Run("bb", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, 0, s.Index)
	assert.Empty(t, s.Tokens)
}

func TestUntilSkipsUpToTerminator(t *testing.T) {
	s, err := Until(letterA(), errProducer("eof")).Run("xyza", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, 3, s.Index)
	assert.Equal(t, []string{"xyz"}, s.Tokens)
}

func TestUntilFailsAtEOFWithoutTerminator(t *testing.T) {
	s, err := Until(letterA(), errProducer("eof")).Run("xyz", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsError())
	assert.Equal(t, plainValue("eof"), s.Err)
}

func TestChoicePicksFirstSuccess(t *testing.T) {
	p := Choice(errProducer("no alternative matched"), Str("a", errProducer("eof"), errProducer("mismatch")), Str("b", errProducer("eof"), errProducer("mismatch")))
	s, err := p.Run("b", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, 1, s.Index)
}

func TestChoiceFailsWhenAllFail(t *testing.T) {
	p := Choice(errProducer("no alternative matched"), Str("a", errProducer("eof"), errProducer("mismatch")), Str("b", errProducer("eof"), errProducer("mismatch")))
	s, err := p.Run("c", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsError())
	assert.Equal(t, plainValue("no alternative matched"), s.Err)
}

func TestLookaheadAppliesComputedParserToOriginalState(t *testing.T) {
	p := Lookahead(letterA(), func(probed ParseState) *TokenCombinator {
		if probed.IsError() {
			return Error(func(s ParseState) Identifiable { return plainValue("not an a") })
		}
		return letterA()
	})
	s, err := p.Run("ab", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, 1, s.Index, "the real parser still runs against (and consumes from) the original state")
}

func TestSideEffectObservesWithoutMutating(t *testing.T) {
	var seen ParseState
	p := SideEffect(func(s ParseState) { seen = s })
	s, err := p.Run("xyz", plainValue("v"))
	assert.NoError(t, err)
	assert.Equal(t, s, seen)
}

func TestRecoveryPassesResultsThrough(t *testing.T) {
	p := Recovery(func(s ParseState) Identifiable { return plainValue("fallback") })
	in := NewResultState("xyz", 1, nil, plainValue("original"))
	out, err := p.apply(in)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRecoveryConvertsErrors(t *testing.T) {
	p := Recovery(func(s ParseState) Identifiable { return plainValue("fallback") })
	in := NewErrorState("xyz", 1, nil, plainValue("broken"))
	out, err := p.apply(in)
	assert.NoError(t, err)
	assert.True(t, out.IsResult())
	assert.Equal(t, plainValue("fallback"), out.Data)
	assert.Equal(t, 1, out.Index)
}

func TestRecoverConvertsAFallibleParsersFailure(t *testing.T) {
	p := Recover(letterA(), func(s ParseState) Identifiable { return plainValue("fallback") })
	s, err := p.Run("z", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, plainValue("fallback"), s.Data)
}

func TestRecoverPassesSuccessThrough(t *testing.T) {
	p := Recover(letterA(), func(s ParseState) Identifiable { return plainValue("fallback") })
	s, err := p.Run("a", nil)
	assert.NoError(t, err)
	assert.True(t, s.IsResult())
	assert.Equal(t, 1, s.Index)
}
