package grammars

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hcomb/gll"
)

func TestAmbiguousSingleLetterHasOneParse(t *testing.T) {
	states, err := gll.Run(Ambiguous(), "a", nil)
	assert.NoError(t, err)
	assert.Len(t, states, 1)
	assert.Equal(t, StringValue("a"), states[0].Data)
}

func TestAmbiguousFiveLettersHasExactlyTwoParses(t *testing.T) {
	states, err := gll.Run(Ambiguous(), "aaaaa", nil)
	assert.NoError(t, err)
	assert.Len(t, states, 2, "S := S a S | a over five letters has exactly two distinct derivations")

	values := make(map[string]bool)
	for _, s := range states {
		assert.True(t, s.IsResult())
		values[string(s.Data.(StringValue))] = true
	}
	assert.True(t, values["aaa+aa+"])
	assert.True(t, values["aaaaa++"])
}

func TestAmbiguousRejectsEvenLength(t *testing.T) {
	states, err := gll.Run(Ambiguous(), "aa", nil)
	assert.NoError(t, err)
	for _, s := range states {
		assert.False(t, s.IsResult() && s.Index == 2, "an even number of a's has no full-length derivation")
	}
}
