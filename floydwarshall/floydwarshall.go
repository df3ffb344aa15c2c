// Package floydwarshall implements the Floyd–Warshall all-pairs
// shortest-path algorithm on weighted directed graphs.
//
// Compute takes a vertex count and an edge list, and produces a distance
// matrix, a successor matrix for path reconstruction, and a negative-cycle
// flag. Vertices are plain int indices in [0, numVertices); no graph
// structure is required beyond the edge list.
//
// Complexity:
//
//   - Time:  O(V³)
//   - The triple loop relaxes every (i,j) pair through every intermediate
//     vertex k, in fixed k → i → j order for deterministic accumulation.
//   - Space: O(V²)
//   - One V×V distance matrix and one V×V successor matrix, allocated
//     fresh per invocation and handed to the caller.
//
// Notes on implementation choices:
//
//   - Inf (math.MaxInt64) is the "no path" sentinel; both operands of every
//     candidate sum are checked for finiteness before adding, so the
//     sentinel never enters arithmetic and cannot overflow.
//   - Duplicate edges between the same ordered pair fold by direct
//     overwrite (last edge wins) unless WithMinEdgeWins is set.
//   - The (i,j) relaxations within a fixed k are independent, so the inner
//     loops could run in parallel; this implementation stays single-threaded
//     and synchronous.
package floydwarshall

import "fmt"

// Compute runs Floyd–Warshall over numVertices vertices and the given edge
// list, returning the distance matrix, the successor matrix and the
// negative-cycle flag bundled in a Result.
//
// Returns:
//
//   - res: the computed Result; res.Dist[u][v] == Inf means v is
//     unreachable from u, res.Next[u][v] == None means u == v or no path.
//   - err: ErrBadVertexCount if numVertices < 0, or ErrVertexOutOfRange
//     (wrapped with the offending edge) if any endpoint falls outside
//     [0, numVertices). Validation runs before any computation; no partial
//     result is ever produced.
//
// Duplicate edges between the same ordered pair fold by direct overwrite,
// so the LAST duplicate in the slice wins — including self-loops. Pass
// WithMinEdgeWins() to keep the minimum weight instead.
//
// When res.HasNegativeCycle is true, distances and successors for pairs
// that can reach the cycle are not meaningful shortest paths; only the
// flag is authoritative for those pairs.
//
// numVertices == 0 is valid and yields empty matrices.
//
// Complexity: Time O(V³), Space O(V²).
func Compute(numVertices int, edges []Edge, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the vertex count.
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadVertexCount, numVertices)
	}

	// 3) Pre-scan all edges for out-of-range endpoints. Fail fast before
	//    allocating the matrices.
	var e Edge
	for _, e = range edges {
		if e.From < 0 || e.From >= numVertices || e.To < 0 || e.To >= numVertices {
			return nil, fmt.Errorf("%w: edge %d→%d with %d vertices", ErrVertexOutOfRange, e.From, e.To, numVertices)
		}
	}

	// 4) Initialize matrices, fold edges in, run the triple loop.
	r := newRunner(numVertices, cfg)
	r.loadEdges(edges)
	r.relaxAll()

	// 5) Scan the diagonal: any negative self-distance proves a cycle.
	return &Result{
		Dist:             r.dist,
		Next:             r.next,
		HasNegativeCycle: r.negativeDiagonal(),
	}, nil
}

// runner holds the mutable state for a single Compute execution.
type runner struct {
	n       int       // vertex count
	options Options   // duplicate-edge policy
	dist    [][]int64 // distance matrix under construction
	next    [][]int   // successor matrix under construction
}

// newRunner allocates the V×V matrices: Inf off-diagonal, 0 on the
// diagonal, None everywhere in next.
func newRunner(n int, cfg Options) *runner {
	dist := make([][]int64, n)
	next := make([][]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		dist[i] = make([]int64, n)
		next[i] = make([]int, n)
		for j = 0; j < n; j++ {
			dist[i][j] = Inf
			next[i][j] = None
		}
		// Distance from a vertex to itself is zero.
		dist[i][i] = 0
	}

	return &runner{n: n, options: cfg, dist: dist, next: next}
}

// loadEdges folds the edge list into the initial matrices. Under
// LastEdgeWins each edge overwrites its cell directly; under MinEdgeWins
// only a strictly smaller weight replaces the current entry. The diagonal
// is not special-cased: a self-loop edge lands on dist[u][u] like any
// other cell.
func (r *runner) loadEdges(edges []Edge) {
	var e Edge
	for _, e = range edges {
		if r.options.EdgePolicy == MinEdgeWins &&
			r.dist[e.From][e.To] != Inf && r.dist[e.From][e.To] <= e.Weight {
			continue
		}
		r.dist[e.From][e.To] = e.Weight
		r.next[e.From][e.To] = e.To
	}
}

// relaxAll runs the Floyd–Warshall triple loop in fixed k → i → j order.
// When a strictly shorter i→j path through k is found, the distance is
// relaxed and the successor is spliced: the new path leaves i toward k,
// so next[i][j] inherits next[i][k].
func (r *runner) relaxAll() {
	n := r.n

	// Predeclare loop counters, row aliases and temporaries; the hot loops
	// allocate nothing.
	var (
		k, i, j      int     // loop indices
		distK, distI []int64 // row aliases for k and i
		nextI        []int   // successor row alias for i
		ik, kj, cand int64   // dist[i][k], dist[k][j], candidate via k
	)

	for k = 0; k < n; k++ { // outer: intermediate vertex k
		distK = r.dist[k]

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = r.dist[i][k]
			if ik == Inf { // i cannot reach k,
				continue // so no path via k can improve any i→j
			}
			distI = r.dist[i]
			nextI = r.next[i]

			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = distK[j]
				if kj == Inf { // k cannot reach j,
					continue // skip before touching the sum
				}
				cand = ik + kj       // both operands finite
				if cand < distI[j] { // strict improvement only
					distI[j] = cand
					nextI[j] = nextI[k]
				}
			}
		}
	}
}

// negativeDiagonal reports whether any vertex reaches itself at negative
// cost, i.e. whether the graph contains a negative cycle.
func (r *runner) negativeDiagonal() bool {
	var i int
	for i = 0; i < r.n; i++ {
		if r.dist[i][i] < 0 {
			return true
		}
	}

	return false
}
