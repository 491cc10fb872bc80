// Package toposort provides the core dependency-ordered sort.
//
// Sort computes a linear ordering of items such that for every item x and
// every dependency d of x, d appears before x in the ordering. If the
// dependency relation contains a cycle, a *CycleError (unwrapping to
// ErrCycleDetected) is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each reachable item and dependency edge visited once)
//   - Memory: O(V)     (recursion stack, state map, path stack)
package toposort

import (
	"fmt"
)

// sorter encapsulates the state of one Sort invocation.
// Every call builds its own sorter, so concurrent Sort calls never share
// mutable state.
type sorter[T comparable] struct {
	deps  DependencyFunc[T] // caller-supplied dependency lookup
	opts  options           // cancellation and depth guard
	state map[T]int         // visitation state: unvisited, visiting, done
	path  []T               // active recursion path, for cycle reporting
	order []T               // dependency-first output sequence
}

// Sort returns every item reachable from items through deps, each exactly
// once, ordered so that dependencies precede dependents.
// Roots are visited in input order and sibling dependencies in the order
// deps returns them, so the output is deterministic for a deterministic
// deps. Items already placed are skipped, so diamond-shaped dependency
// graphs are emitted without duplication.
// If deps is nil, returns ErrNilDependencyFunc.
// If a cycle is found, returns a *CycleError identifying the re-entered
// item and the closed cycle path; no partial result is returned.
// You may pass WithContext(ctx) for cancellation and WithMaxDepth(n) to
// bound very deep chains.
func Sort[T comparable](items []T, deps DependencyFunc[T], options ...Option) ([]T, error) {
	// 1. Validate the dependency lookup.
	if deps == nil {
		return nil, ErrNilDependencyFunc
	}
	// 2. Apply optional settings.
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize per-call traversal state.
	s := &sorter[T]{
		deps:  deps,
		opts:  opts,
		state: make(map[T]int, len(items)), // all items start unvisited (absent)
		path:  make([]T, 0, len(items)),
		order: make([]T, 0, len(items)), // capacity hint; grows if deps reach new items
	}
	// 4. Drive DFS from every root, in caller-supplied order.
	for _, item := range items {
		if err := s.visit(item, 0); err != nil {
			return nil, err
		}
	}

	return s.order, nil
}

// visit performs a DFS from item at the given depth, marking states and
// detecting cycles. It respects cancellation and the depth guard.
// Dependencies finish before their dependent, so appending each item as it
// completes yields the dependency-first order directly, with no reversal.
func (s *sorter[T]) visit(item T, depth int) error {
	// 1. Cancellation check at entry.
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: re-entering an item on the active path is a back-edge.
	if s.state[item] == visiting {
		return &CycleError[T]{Item: item, Path: closeCycle(s.path, item)}
	}
	// 3. Already fully processed? Then skip (keeps diamonds duplicate-free).
	if s.state[item] == done {
		return nil
	}
	// 4. Depth guard: refuse to descend past the configured bound.
	if s.opts.maxDepth >= 0 && depth > s.opts.maxDepth {
		return fmt.Errorf("%w: depth %d at %v", ErrDepthLimit, depth, item)
	}
	// 5. Mark as in-progress and push onto the active path.
	s.state[item] = visiting
	s.path = append(s.path, item)

	// 6. Recurse into each direct dependency, in the order deps returns them.
	for _, d := range s.deps(item) {
		if err := s.visit(d, depth+1); err != nil {
			return err
		}
	}

	// 7. Backtrack: pop the path, mark as done, append to the output.
	s.path = s.path[:len(s.path)-1]
	s.state[item] = done
	s.order = append(s.order, item)

	return nil
}
