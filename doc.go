// Package depsort orders things by what they depend on — build targets,
// schema migrations, plugin load order, service start-up — without asking
// you to build a graph structure first.
//
// 🚀 What is depsort?
//
//	A small, generics-based library that takes your items plus a single
//	"what does this depend on?" function and hands back a safe order:
//		• Dependency-first ordering: every item appears after all of its
//		  (transitive) dependencies
//		• Cycle detection: a cyclic dependency fails fast with the full
//		  offending path, never a half-usable result
//		• Diamond shapes: shared dependencies are emitted exactly once
//		• Deterministic: output is a pure function of your input order
//		  and your dependency function
//
// ✨ Why choose depsort?
//
//   - Minimal API – one function type, one Sort call, functional options
//   - No graph type to feed – items stay your own opaque values
//   - Rock-solid failure modes – sentinel errors, errors.Is/As friendly
//   - Pure Go – no cgo, no hidden deps
//
// Everything lives in one subpackage:
//
//	toposort/ — Sort (dependency-ordered topological sort) and
//	            DetectCycle (first-cycle diagnostics)
//
// Quick ASCII example:
//
//	    app
//	   /   \
//	  lib  util
//	   \   /
//	    base
//
//	Sort([app], deps) → [base lib util app]
//
// Dive into README.md and examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/depsort/toposort
package depsort
