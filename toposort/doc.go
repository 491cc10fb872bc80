// Package toposort implements dependency-ordered topological sorting over
// caller-supplied items and a caller-supplied dependency-lookup function,
// with three-state cycle detection.
//
// What:
//
//   - Sort: given roots and a DependencyFunc, returns every reachable item
//     exactly once, ordered so that dependencies precede dependents.
//     Supports:
//   - Cancellation via context.Context
//   - Recursion-depth guarding for untrusted or very deep chains
//   - Diamond-shaped dependencies without duplication
//   - DetectCycle: reports the first dependency cycle reachable from the
//     given roots as a closed path, for diagnostics after a failed Sort.
//
// Why:
//   - Compute safe execution orders (build systems, migrations, schedulers)
//   - Resolve plugin/module initialization order from declared dependencies
//   - Fail fast, with a usable path, when dependencies form a loop
//
// Key Types & Constants:
//
//   - DependencyFunc[T]: item → direct dependencies (nil/empty = none)
//   - CycleError[T]: the re-entered Item plus the closed cycle Path
//   - Option: functional options for Sort behavior
//   - visitation states: unvisited, visiting, done (internal markers)
//
// Complexity:
//
//   - Sort:        Time O(V+E), Memory O(V)
//     (V = reachable items, E = dependency edges; each visited once)
//   - DetectCycle: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrCycleDetected       dependency relation contains a cycle
//   - ErrNilDependencyFunc   deps argument is nil
//   - ErrDepthLimit          chain exceeds the WithMaxDepth bound
//   - context.Canceled       Sort canceled via context
//
// Functions:
//
//   - Sort(items []T, deps DependencyFunc[T], opts ...Option) ([]T, error)
//     return dependency-first order or fail on the first cycle
//   - DetectCycle(items []T, deps DependencyFunc[T]) ([]T, bool)
//     report the first reachable cycle as a closed path
//   - WithContext(), WithMaxDepth()
package toposort
