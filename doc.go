// Package apsp is a compact toolkit for all-pairs shortest-path analysis
// on weighted directed graphs.
//
// 🚀 What is apsp?
//
//	A small, zero-runtime-dependency library built around one dense,
//	battle-tested dynamic program:
//		• Floyd–Warshall: all-pairs shortest distances in O(V³)
//		• Successor matrix: reconstruct any shortest path in O(V)
//		• Negative-cycle detection via the distance-matrix diagonal
//
// ✨ Why choose apsp?
//
//   - Beginner-friendly – one entry point, plain int vertices, explicit edges
//   - Predictable – fixed loop order, deterministic results, no hidden state
//   - Pure Go – no cgo, no runtime dependencies
//   - Honest about negative cycles – a boolean flag, never garbage distances
//     silently presented as answers
//
// Everything lives in one subpackage:
//
//	floydwarshall/ — Compute, Result, path reconstruction & options
//
// Quick start:
//
//	res, err := floydwarshall.Compute(3, []floydwarshall.Edge{
//	    {From: 0, To: 1, Weight: 4},
//	    {From: 1, To: 2, Weight: 2},
//	})
//
// Dive into the floydwarshall package documentation for the full contract,
// the sentinel conventions (Inf / None) and the parallel-edge policy.
//
//	go get github.com/katalvlaran/apsp
package apsp
