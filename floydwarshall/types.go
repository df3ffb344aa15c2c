// Package floydwarshall defines core types, sentinels and configuration
// options for the dense all-pairs shortest-path algorithm.
package floydwarshall

import (
	"errors"
	"math"
)

// Sentinel errors returned by the floydwarshall implementation.
var (
	// ErrBadVertexCount indicates that a negative vertex count was supplied.
	ErrBadVertexCount = errors.New("floydwarshall: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates that an edge endpoint or a queried vertex
	// lies outside [0, numVertices).
	ErrVertexOutOfRange = errors.New("floydwarshall: vertex index out of range")

	// ErrNoPath indicates that path reconstruction was requested for a pair
	// with no connecting path.
	ErrNoPath = errors.New("floydwarshall: no path between vertices")

	// ErrNegativeCycle indicates that a reconstruction walk ran into a
	// negative cycle and cannot terminate with a meaningful path.
	ErrNegativeCycle = errors.New("floydwarshall: path affected by negative cycle")
)

// Inf marks an unreachable pair in the distance matrix.
//
// Inf never participates in arithmetic: every candidate sum is preceded by
// an explicit finiteness check on both operands, so Inf+w overflow cannot
// occur. Callers must compare against Inf, not against "very large".
const Inf int64 = math.MaxInt64

// None marks "no successor" in the Next matrix. Next[u][v] == None holds
// exactly when u == v or v is unreachable from u.
const None = -1

// Edge is a directed, weighted connection from vertex From to vertex To.
// Weights may be negative; vertex indices must lie in [0, numVertices).
type Edge struct {
	From   int   // source vertex index
	To     int   // destination vertex index
	Weight int64 // signed edge weight
}

// Result holds the output of one Compute invocation. It is owned by the
// caller and never mutated by the package after being returned; treat it
// as immutable.
//
// Dist[u][v] is the shortest known u→v weight, or Inf when unreachable.
// Next[u][v] is the successor of u on a shortest u→v path, or None.
//
// When HasNegativeCycle is true, Dist and Next entries touched by the
// cycle are not meaningful shortest paths (repeated looping drives them
// arbitrarily low); only the flag itself is authoritative for those pairs.
type Result struct {
	Dist             [][]int64 // V×V distance matrix, Inf = unreachable
	Next             [][]int   // V×V successor matrix, None = no successor
	HasNegativeCycle bool      // true if any Dist[i][i] < 0 after convergence
}

// EdgePolicy selects how duplicate edges between the same ordered pair are
// folded into the initial distance matrix.
//
//   - LastEdgeWins — each edge directly overwrites the (From,To) cell, so
//     the last duplicate processed takes effect. This mirrors the classic
//     formulation and is the default. It applies to self-loops too.
//   - MinEdgeWins  — keep the minimum of the current cell and the new
//     weight, the behavior most callers intuitively expect.
type EdgePolicy int

const (
	// LastEdgeWins overwrites on every duplicate edge (default).
	LastEdgeWins EdgePolicy = iota

	// MinEdgeWins keeps the smallest weight seen for each ordered pair.
	MinEdgeWins
)

// Options configures the behavior of Compute.
//
// EdgePolicy — duplicate-edge folding policy (LastEdgeWins by default).
type Options struct {
	EdgePolicy EdgePolicy
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithMinEdgeWins switches duplicate-edge folding from the default
// last-edge-wins overwrite to minimum-weight aggregation.
func WithMinEdgeWins() Option {
	return func(o *Options) {
		o.EdgePolicy = MinEdgeWins
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
// LastEdgeWins duplicate-edge policy, matching the classic formulation.
func DefaultOptions() Options {
	return Options{
		EdgePolicy: LastEdgeWins,
	}
}
