// Package floydwarshall provides a precise, deterministic implementation of
// the Floyd–Warshall all-pairs shortest-path algorithm on weighted directed
// graphs, with successor-based path reconstruction and negative-cycle
// detection.
//
// Overview:
//
//   - Compute takes a vertex count and an edge list — no graph structure,
//     no parsing — and returns a V×V distance matrix, a V×V successor
//     matrix, and a boolean negative-cycle flag, bundled in a Result.
//   - Vertices are plain int indices in [0, numVertices). Edge weights are
//     signed int64 values; negative weights are fully supported.
//   - Path returns the actual shortest vertex sequence for any pair by
//     walking the successor matrix, independently of Compute.
//
// When to use:
//
//   - Dense graphs, or whenever you need distances between ALL pairs at
//     once (routing tables, metric closures, reachability with costs).
//   - Graphs with negative edge weights, where Dijkstra is off the table.
//   - As a ground-truth oracle when testing faster single-source methods.
//
// Key features:
//
//   - Sentinel discipline: Inf (math.MaxInt64) means "no path", None (-1)
//     means "no successor". Both operands of every candidate sum are
//     checked for finiteness first, so the sentinel never enters
//     arithmetic and cannot overflow.
//   - Deterministic: fixed k → i → j loop order, strict-improvement
//     relaxation. Identical input always yields an identical Result.
//   - Duplicate-edge policy: by default the LAST edge between an ordered
//     pair wins (direct overwrite, the classic formulation — surprising
//     but intentional, and it applies to self-loops too). Pass
//     WithMinEdgeWins() to keep the minimum weight instead.
//   - Negative cycles are reported, not hidden: after convergence any
//     negative diagonal entry sets Result.HasNegativeCycle. Distances and
//     successors for pairs that can reach such a cycle are NOT meaningful
//     shortest paths — only the flag is authoritative there, and Path
//     returns ErrNegativeCycle rather than walking forever.
//
// Performance and complexity:
//
//   - Time:  O(V³) — the triple loop always runs to completion; there is
//     no early exit, cancellation or timeout.
//   - Space: O(V²) — two V×V matrices, allocated fresh per call and owned
//     exclusively by the caller afterwards.
//   - The (i,j) relaxations within a fixed k are independent and could be
//     parallelized; this implementation deliberately stays single-threaded.
//
// Error handling (sentinel errors):
//
//   - ErrBadVertexCount:
//     Returned by Compute when numVertices is negative.
//   - ErrVertexOutOfRange:
//     Returned by Compute when an edge endpoint falls outside
//     [0, numVertices), and by Result accessors for invalid queries.
//     Validation happens before any computation; no partial results.
//   - ErrNoPath:
//     Returned by Path when no path connects the requested pair.
//   - ErrNegativeCycle:
//     Returned by Path when the successor walk cannot terminate because a
//     negative cycle corrupted the chain.
//
// API reference:
//
//	func Compute(numVertices int, edges []Edge, opts ...Option) (*Result, error)
//
//	  - numVertices: number of vertices; 0 is valid (empty matrices).
//	  - edges:       directed weighted edges; duplicates fold per policy.
//	  - opts:        zero or more functional options:
//	      • WithMinEdgeWins(): minimum-weight duplicate folding.
//
//	func (r *Result) Distance(u, v int) (int64, error)
//	func (r *Result) Successor(u, v int) (int, error)
//	func (r *Result) Reachable(u, v int) (bool, error)
//	func (r *Result) Path(u, v int) ([]int, error)
//	func (r *Result) Order() int
//
// Thread safety:
//
//   - Compute shares no state across invocations; concurrent calls are
//     safe. A returned Result must be treated as immutable; concurrent
//     reads are safe, mutation is not.
//
// See also:
//
//   - The package example functions for the canonical 5-vertex scenario
//     and negative-cycle handling.
package floydwarshall
