package floydwarshall

import "fmt"

// Order returns the number of vertices the Result covers.
func (r *Result) Order() int {
	return len(r.Dist)
}

// Distance returns the shortest known u→v weight, or Inf when v is
// unreachable from u. Returns ErrVertexOutOfRange for invalid indices.
// Complexity: O(1).
func (r *Result) Distance(u, v int) (int64, error) {
	if err := r.checkPair(u, v); err != nil {
		return 0, err
	}

	return r.Dist[u][v], nil
}

// Successor returns the next vertex after u on a shortest u→v path, or
// None when u == v or no path exists. Returns ErrVertexOutOfRange for
// invalid indices. Complexity: O(1).
func (r *Result) Successor(u, v int) (int, error) {
	if err := r.checkPair(u, v); err != nil {
		return None, err
	}

	return r.Next[u][v], nil
}

// Reachable reports whether any path leads from u to v. Every vertex
// reaches itself (the empty path). Returns ErrVertexOutOfRange for
// invalid indices. Complexity: O(1).
func (r *Result) Reachable(u, v int) (bool, error) {
	if err := r.checkPair(u, v); err != nil {
		return false, err
	}

	return r.Dist[u][v] != Inf, nil
}

// Path reconstructs the shortest u→v path as an ordered vertex sequence,
// u first and v last, by walking the successor matrix.
//
// Returns:
//
//   - [u] when u == v (the trivial path).
//   - ErrVertexOutOfRange for invalid indices.
//   - ErrNoPath when v is unreachable from u.
//   - ErrNegativeCycle when the walk fails to reach v within Order()
//     steps, which can only happen when HasNegativeCycle is true and the
//     successor chain for this pair was corrupted by the cycle.
//
// Absent a negative cycle the walk is guaranteed to terminate in at most
// Order() steps and the returned sequence's edge weights sum to
// Dist[u][v]. Complexity: O(V).
func (r *Result) Path(u, v int) ([]int, error) {
	if err := r.checkPair(u, v); err != nil {
		return nil, err
	}
	if u == v {
		return []int{u}, nil
	}
	if r.Next[u][v] == None {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, u, v)
	}

	n := len(r.Dist)
	path := make([]int, 0, n)
	path = append(path, u)

	// Walk cur = Next[cur][v] until v. A simple path visits at most n
	// vertices, so more than n-1 steps proves the chain loops.
	cur := u
	var steps, nxt int
	for cur != v {
		if steps++; steps >= n {
			return nil, fmt.Errorf("%w: successor walk %d→%d did not terminate", ErrNegativeCycle, u, v)
		}
		nxt = r.Next[cur][v]
		if nxt == None { // broken chain; reachable only on cycle-corrupted results
			return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, u, v)
		}
		cur = nxt
		path = append(path, cur)
	}

	return path, nil
}

// checkPair validates that both u and v index a vertex of this Result.
func (r *Result) checkPair(u, v int) error {
	n := len(r.Dist)
	if u < 0 || u >= n {
		return fmt.Errorf("%w: u=%d with %d vertices", ErrVertexOutOfRange, u, n)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("%w: v=%d with %d vertices", ErrVertexOutOfRange, v, n)
	}

	return nil
}
