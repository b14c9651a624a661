package gll

import "github.com/google/uuid"

// tokenTransformer is the raw state-to-state transformation a
// TokenCombinator wraps. The returned error is an engine fault (see
// errors.go), never a semantic parse error: semantic failure is
// expressed by returning an Error-kind ParseState with err == nil.
type tokenTransformer func(ParseState) (ParseState, error)

// TokenCombinator is a memoised state transformer implementing the
// token-combinator layer of spec section 4.1: LL(k) recursive-descent
// with backtracking and unbounded lookahead, linear in input size.
//
// Each instance owns one memo table keyed by input state identity. The
// table is cleared the first time a state naming a different target is
// observed, bounding memory to one run's worth of distinct positions.
type TokenCombinator struct {
	id        uuid.UUID
	name      string
	transform tokenTransformer

	memo       map[string]tokenMemoEntry
	lastTarget string
	hasTarget  bool
}

type tokenMemoEntry struct {
	state ParseState
	fault error
}

func newTokenCombinator(name string, t tokenTransformer) *TokenCombinator {
	return &TokenCombinator{
		id:        uuid.New(),
		name:      name,
		transform: t,
		memo:      make(map[string]tokenMemoEntry),
	}
}

// String renders a short diagnostic label, distinguishing two
// structurally-identical combinator instances by their instance id, the
// way a grammar author debugging a large composed grammar would want to
// tell apart two otherwise-identical Str("x") nodes.
func (c *TokenCombinator) String() string {
	return c.name + "#" + c.id.String()[:8]
}

// apply runs the three-step memoised dispatch of spec section 4.1:
// clear-on-target-change, memo hit, or compute-store-return.
func (c *TokenCombinator) apply(state ParseState) (ParseState, error) {
	if !c.hasTarget || c.lastTarget != state.Target {
		c.memo = make(map[string]tokenMemoEntry)
		c.lastTarget = state.Target
		c.hasTarget = true
	}

	key := state.Identity()
	if entry, ok := c.memo[key]; ok {
		return entry.state, entry.fault
	}

	out, err := c.transform(state)
	c.memo[key] = tokenMemoEntry{state: out, fault: err}
	return out, err
}

// Run is the token-combinator driver contract: run(target, initialData,
// index=0) -> exactly one ParseState. index defaults to 0 when omitted.
func (c *TokenCombinator) Run(target string, initialData Identifiable, index ...int) (result ParseState, err error) {
	defer func() {
		if r := recover(); r != nil {
			if fault, ok := r.(error); ok {
				err = fault
				return
			}
			panic(r)
		}
	}()
	initial := NewResultState(target, resolveIndex(index), nil, initialData)
	return c.apply(initial)
}

func resolveIndex(index []int) int {
	if len(index) == 0 {
		return 0
	}
	return index[0]
}
