// Package toposort implements first-cycle reporting for dependency
// relations. DetectCycle reuses the three-state depth-first traversal of
// Sort and reconstructs the offending loop from the active path stack,
// returning it as a closed sequence [v0, v1, ..., v0].
package toposort

import (
	"errors"
)

// DetectCycle inspects the dependency relation reachable from items for a
// cycle. It returns the first cycle encountered as a closed path
// [v0, ..., v0] together with true, or (nil, false) when the reachable
// graph is acyclic (a nil deps is treated as cycle-free).
// The walk order matches Sort, so the reported cycle is the one Sort would
// have failed on — useful for building diagnostics after a failed Sort.
func DetectCycle[T comparable](items []T, deps DependencyFunc[T]) ([]T, bool) {
	// 1. No lookup function means no edges, hence no cycle.
	if deps == nil {
		return nil, false
	}
	// 2. Reuse the Sort traversal with default options.
	s := &sorter[T]{
		deps:  deps,
		opts:  defaultOptions(),
		state: make(map[T]int, len(items)),
		path:  make([]T, 0, len(items)),
		order: make([]T, 0, len(items)),
	}
	// 3. Walk each root; the first cycle failure carries the closed path.
	for _, item := range items {
		if err := s.visit(item, 0); err != nil {
			var ce *CycleError[T]
			if errors.As(err, &ce) {
				return ce.Path, true
			}
		}
	}

	// 4. Every reachable item completed without a back-edge.
	return nil, false
}

// closeCycle extracts the cycle ending at start from the active path:
// the sub-slice from the first occurrence of start, closed by appending
// start. The caller guarantees start is on path (its state is visiting).
func closeCycle[T comparable](path []T, start T) []T {
	idx := indexOf(path, start)
	cyc := append([]T(nil), path[idx:]...) // copy the segment from idx to end
	cyc = append(cyc, start)               // close the loop

	return cyc
}

// indexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func indexOf[T comparable](s []T, val T) int {
	for i, x := range s { // iterate through slice
		if x == val { // compare each element
			return i // return index when found
		}
	}

	return -1 // not found
}
