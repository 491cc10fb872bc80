// Package toposort defines the types, options, and errors shared by Sort
// and DetectCycle.
package toposort

import (
	"context"
	"errors"
	"fmt"
)

// DependencyFunc reports the direct dependencies of item.
// A nil or empty result means "no dependencies".
// It must be deterministic and side-effect-free: the sorter may call it more
// than once for an item reached via multiple paths before that item is fully
// processed, and each call must yield the same answer.
type DependencyFunc[T comparable] func(item T) []T

// visitState represents the traversal state of an item.
const (
	unvisited = iota // unvisited: the item has not been reached yet (map zero value).
	visiting         // visiting: the item is on the active recursion path.
	done             // done: the item and all its dependencies are in the output.
)

var (
	// ErrCycleDetected indicates that the dependency relation contains a
	// cycle, making a topological order impossible. Cycle failures from Sort
	// are *CycleError values that unwrap to this sentinel.
	ErrCycleDetected = errors.New("toposort: cycle detected")

	// ErrNilDependencyFunc is returned when Sort receives a nil DependencyFunc.
	ErrNilDependencyFunc = errors.New("toposort: dependency func is nil")

	// ErrDepthLimit indicates a dependency chain deeper than the bound set
	// via WithMaxDepth.
	ErrDepthLimit = errors.New("toposort: max depth exceeded")
)

// CycleError reports a dependency cycle found during Sort.
// Item is the node at which re-entry was detected; Path is the closed cycle
// [Item, ..., Item] exactly as walked by the traversal.
type CycleError[T comparable] struct {
	Item T   // the re-entered item
	Path []T // the closed cycle, starting and ending at Item
}

// Error implements the error interface.
func (e *CycleError[T]) Error() string {
	return fmt.Sprintf("toposort: cycle detected at %v (path %v)", e.Item, e.Path)
}

// Unwrap ties CycleError to the ErrCycleDetected sentinel, so callers can
// check any cycle failure with errors.Is(err, ErrCycleDetected).
func (e *CycleError[T]) Unwrap() error { return ErrCycleDetected }

// Option configures optional behavior of Sort.
// Use with Sort(items, deps, opts...).
type Option func(*options)

// options holds settings for Sort: cancellation and recursion bounds.
type options struct {
	ctx      context.Context // allows cancellation; defaults to Background
	maxDepth int             // recursion guard; negative means no limit
}

// defaultOptions returns the defaults: Background context, unbounded depth.
func defaultOptions() options {
	return options{ctx: context.Background(), maxDepth: -1}
}

// WithContext returns an Option that sets the cancellation context.
// Cancelling the context aborts Sort early with ctx.Err().
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that bounds the dependency chain depth.
// Roots sit at depth 0; each dependency hop adds 1. When the traversal would
// descend past limit, Sort fails with ErrDepthLimit instead of exhausting
// the host stack. A negative limit means no bound (the default).
func WithMaxDepth(limit int) Option {
	return func(o *options) {
		o.maxDepth = limit
	}
}
