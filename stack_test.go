package gll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStackPopIsLIFO(t *testing.T) {
	stack := newParseStack(DefaultConfig)
	var order []string
	stack.push("a", func() { order = append(order, "a") })
	stack.push("b", func() { order = append(order, "b") })

	item, ok := stack.pop()
	assert.True(t, ok)
	item.run()
	item, ok = stack.pop()
	assert.True(t, ok)
	item.run()

	assert.Equal(t, []string{"b", "a"}, order)
}

func TestParseStackPopOnEmptyStack(t *testing.T) {
	stack := newParseStack(DefaultConfig)
	_, ok := stack.pop()
	assert.False(t, ok)
}

func TestParseStackDeduplicatesPendingPushes(t *testing.T) {
	stack := newParseStack(DefaultConfig)
	calls := 0
	stack.push("same", func() { calls++ })
	stack.push("same", func() { calls++ })
	assert.Len(t, stack.items, 1, "a second push under a still-pending key must be dropped")

	item, _ := stack.pop()
	item.run()
	assert.Equal(t, 1, calls)

	stack.push("same", func() { calls++ })
	assert.Len(t, stack.items, 1, "once popped, the key is no longer pending and may be pushed again")
}

func TestParseStackFailRecordsOnlyTheFirstFault(t *testing.T) {
	stack := newParseStack(DefaultConfig)
	first := newFault("first")
	second := newFault("second")
	stack.fail(first)
	stack.fail(second)
	assert.Equal(t, first, stack.fault)
}

func TestParseStackStopsAcceptingWorkAfterFault(t *testing.T) {
	stack := newParseStack(DefaultConfig)
	stack.fail(newFault("boom"))
	stack.push("x", func() {})
	assert.Empty(t, stack.items)
}
