package gll

import "context"

// Generator is the resumable lazy sequence spec section 4.2.5 describes:
// a host may stop pulling from it at any point, and the engine performs
// no further work until the next call to Next.
type Generator struct {
	stack   *ParseStack
	results []ParseState
	yielded int
	done    bool
	err     error
}

func newGenerator(root *SymbolCombinator, initial ParseState, config Config) *Generator {
	g := &Generator{stack: newParseStack(config)}
	root.dispatch(initial, func(r ParseState) {
		g.results = append(g.results, r)
	}, g.stack)
	return g
}

// Next pops and executes deferred work until either a new result has been
// collected or the stack is drained, then yields the next unyielded
// result in publication order. ok is false once the generator is
// exhausted. A fault recorded on the parse stack (ambiguity breadth
// exceeded, or a token combinator's fault inside ToSymbol) stops the
// generator: results collected before it are still yielded, and every
// call after them returns ok == false with that fault as err. A state
// invariant violation panics out of Next with the fault as the panic
// value; Run recovers it into its error return.
func (g *Generator) Next() (state ParseState, ok bool, err error) {
	for g.yielded >= len(g.results) && !g.done {
		item, more := g.stack.pop()
		if !more {
			g.done = true
			break
		}
		item.run()
		if g.stack.fault != nil {
			g.err = g.stack.fault
			g.done = true
			break
		}
	}
	if g.yielded < len(g.results) {
		state = g.results[g.yielded]
		g.yielded++
		return state, true, nil
	}
	return ParseState{}, false, g.err
}

// Generate seeds the parse stack with root against target at index
// (default 0) and returns a lazy, pull-based Generator over its results,
// in publication order.
func Generate(root *SymbolCombinator, target string, initialData Identifiable, index ...int) *Generator {
	return ConfiguredGenerate(DefaultConfig, root, target, initialData, index...)
}

// ConfiguredGenerate is Generate with an explicit Config, mirroring
// peg.Config/peg.ConfiguredMatch's pairing.
func ConfiguredGenerate(config Config, root *SymbolCombinator, target string, initialData Identifiable, index ...int) *Generator {
	initial := NewResultState(target, resolveIndex(index), nil, initialData)
	return newGenerator(root, initial, config)
}

// Run drains the generator, then returns the farthest-progress parse(s):
// the states with the maximum reached Index, preferring non-error states
// among those if any exist, else the set of error states at that index.
func Run(root *SymbolCombinator, target string, initialData Identifiable, index ...int) ([]ParseState, error) {
	return ConfiguredRun(DefaultConfig, root, target, initialData, index...)
}

// ConfiguredRun is Run with an explicit Config.
func ConfiguredRun(config Config, root *SymbolCombinator, target string, initialData Identifiable, index ...int) (result []ParseState, err error) {
	defer func() {
		if r := recover(); r != nil {
			if fault, ok := r.(error); ok {
				err = fault
				return
			}
			panic(r)
		}
	}()
	gen := ConfiguredGenerate(config, root, target, initialData, index...)
	var all []ParseState
	for {
		state, ok, genErr := gen.Next()
		if genErr != nil {
			return nil, genErr
		}
		if !ok {
			break
		}
		all = append(all, state)
	}
	return selectFarthest(all), nil
}

func selectFarthest(all []ParseState) []ParseState {
	if len(all) == 0 {
		return nil
	}
	maxIndex := all[0].Index
	for _, s := range all {
		if s.Index > maxIndex {
			maxIndex = s.Index
		}
	}
	var results, errs []ParseState
	for _, s := range all {
		if s.Index != maxIndex {
			continue
		}
		if s.IsError() {
			errs = append(errs, s)
		} else {
			results = append(results, s)
		}
	}
	if len(results) > 0 {
		return results
	}
	return errs
}

// AsyncResult is one element of the sequence RunAsync delivers: exactly
// one of State or Err is meaningful.
type AsyncResult struct {
	State ParseState
	Err   error
}

// RunAsync is equivalent to Run, but delivers each of Run's result states
// one at a time on the returned channel instead of all at once — the
// "fulfilled future" spec section 5 describes, for API symmetry with a
// host that wants to await results rather than block on them. No
// suspension or background computation actually occurs in the engine
// itself; parsing still runs synchronously inside the spawned goroutine.
func RunAsync(ctx context.Context, root *SymbolCombinator, target string, initialData Identifiable, index ...int) <-chan AsyncResult {
	return ConfiguredRunAsync(ctx, DefaultConfig, root, target, initialData, index...)
}

// ConfiguredRunAsync is RunAsync with an explicit Config.
func ConfiguredRunAsync(ctx context.Context, config Config, root *SymbolCombinator, target string, initialData Identifiable, index ...int) <-chan AsyncResult {
	out := make(chan AsyncResult)
	go func() {
		defer close(out)
		states, err := ConfiguredRun(config, root, target, initialData, index...)
		if err != nil {
			select {
			case out <- AsyncResult{Err: err}:
			case <-ctx.Done():
			}
			return
		}
		for _, state := range states {
			select {
			case out <- AsyncResult{State: state}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
