package gll

import "github.com/google/uuid"

// symbolTransformer is the raw CPS transformation a SymbolCombinator
// wraps: given a state, a continuation to publish results to, and the
// owning run's parse stack, it drives zero or more calls to k.
type symbolTransformer func(state ParseState, k Continuation, stack *ParseStack)

// SymbolCombinator implements the symbol-combinator layer of spec section
// 4.2: a continuation-passing transformer with a per-combinator memo
// table acting as a localised Graph-Structured Stack node — results is
// its popped set, continuations its return edges. This is what lets a
// deferred-work stack stand in for a traditional GSS while still
// producing every distinct parse of an arbitrary (including left/right/
// indirectly recursive, or ambiguous) context-free grammar.
type SymbolCombinator struct {
	id        uuid.UUID
	name      string
	transform symbolTransformer

	memo       map[string]*symbolMemoEntry
	lastTarget string
	hasTarget  bool
}

type symbolMemoEntry struct {
	order         []string
	results       map[string]ParseState
	continuations []Continuation
	fullCount     int
}

func newSymbolCombinator(name string, t symbolTransformer) *SymbolCombinator {
	return &SymbolCombinator{
		id:        uuid.New(),
		name:      name,
		transform: t,
		memo:      make(map[string]*symbolMemoEntry),
	}
}

// String renders a short diagnostic label; see TokenCombinator.String.
func (c *SymbolCombinator) String() string {
	return c.name + "#" + c.id.String()[:8]
}

// dispatch is the wrapped transformer of spec section 4.2: it clears the
// memo on target change, replays stored results and subscribes k on a
// memo hit, or creates a fresh memo entry and defers the raw transform's
// invocation onto stack on a miss. It is what every combinator (including
// this package's own primitives) calls on a sub-combinator — never the
// sub-combinator's raw transform directly — so the localised-GSS
// discipline is never bypassed.
func (c *SymbolCombinator) dispatch(state ParseState, k Continuation, stack *ParseStack) {
	if stack.fault != nil {
		return
	}
	if !c.hasTarget || c.lastTarget != state.Target {
		c.memo = make(map[string]*symbolMemoEntry)
		c.lastTarget = state.Target
		c.hasTarget = true
	}

	key := state.Identity()
	if m, ok := c.memo[key]; ok {
		m.continuations = append(m.continuations, k)
		for _, rid := range m.order {
			k(m.results[rid])
		}
		return
	}

	m := &symbolMemoEntry{
		results:       make(map[string]ParseState),
		continuations: []Continuation{k},
	}
	c.memo[key] = m

	publisher := func(r ParseState) {
		rid := r.Identity()
		if _, seen := m.results[rid]; seen {
			return
		}
		if !r.IsError() && r.Index == len(r.Target) {
			limit := stack.config.MaxAmbiguityBreadth
			if limit > 0 && m.fullCount+1 > limit {
				stack.fail(newFault("ambiguity breadth exceeded: more than %d distinct full-length results for one symbol", limit))
				return
			}
			m.fullCount++
		}
		m.results[rid] = r
		m.order = append(m.order, rid)
		for _, cont := range m.continuations {
			cont(r)
		}
	}

	dedupKey := c.id.String() + "|" + key
	stack.push(dedupKey, func() {
		c.transform(state, publisher, stack)
	})
}
