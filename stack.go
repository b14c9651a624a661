package gll

// Continuation is a one-shot-per-result callback receiving a ParseState,
// the GLL layer's mechanism for side-effectful result collection and
// publication (spec section 2, component 4).
type Continuation func(ParseState)

// workItem is a single deferred (transformer, state, continuation)
// triple, represented as a thunk that closes over all three; run executes
// it.
type workItem struct {
	dedupKey string
	run      func()
}

// ParseStack is the LIFO deferred-work queue driving the GLL search: a
// symbol combinator, on first encountering a given input state, pushes
// its raw transformer's invocation here instead of calling it directly,
// so that no combinator's transformer is ever re-entered through native
// Go recursion for input-size-dependent depth — only grammar-shape-depth
// recursion (a handful of Chain/Alternatives nesting) ever touches the Go call
// stack. Owned by a single driver invocation; does not survive it.
type ParseStack struct {
	items   []workItem
	pending map[string]struct{}
	config  Config
	fault   error
}

func newParseStack(config Config) *ParseStack {
	return &ParseStack{pending: make(map[string]struct{}), config: config}
}

// push enqueues run under dedupKey, unless a pending (not yet popped) item
// already carries the same key — the (transformer-identity, state-identity)
// pair deduplication spec section 4.2 describes. Once fault is set, no
// further work is accepted: the run is terminating.
func (s *ParseStack) push(dedupKey string, run func()) {
	if s.fault != nil {
		return
	}
	if _, pending := s.pending[dedupKey]; pending {
		return
	}
	s.pending[dedupKey] = struct{}{}
	s.items = append(s.items, workItem{dedupKey: dedupKey, run: run})
}

// pop removes and returns the most recently pushed item (LIFO: depth-first
// exploration of alternatives, per spec section 5).
func (s *ParseStack) pop() (workItem, bool) {
	n := len(s.items)
	if n == 0 {
		return workItem{}, false
	}
	item := s.items[n-1]
	s.items = s.items[:n-1]
	delete(s.pending, item.dedupKey)
	return item, true
}

// fail records the run's first engine fault; later faults are ignored,
// matching "terminates the current run" rather than accumulating errors.
func (s *ParseStack) fail(err error) {
	if s.fault == nil {
		s.fault = err
	}
}
