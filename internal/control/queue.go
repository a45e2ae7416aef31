package control

// Queue is a 0-indexed binary min-heap scheduling pending clauses by an
// externally computed evaluation. C is an opaque clause reference (handle,
// index or pointer into caller-owned storage) and A an arbitrary auxiliary
// payload returned unchanged on extraction; the queue compares neither.
//
// The zero value is an empty, ready-to-use queue. Not safe for concurrent
// use.
type Queue[C, A any] struct {
	nodes []node[C, A]
}

type node[C, A any] struct {
	eval   int
	clause C
	aux    A
}

// Insert adds a clause with the given auxiliary payload and evaluation.
func (q *Queue[C, A]) Insert(clause C, aux A, eval int) {
	q.nodes = append(q.nodes, node[C, A]{eval: eval, clause: clause, aux: aux})
	q.bubbleUp(len(q.nodes) - 1)
}

// GetBest removes and returns a clause with minimal evaluation, together
// with its auxiliary payload. The third result is false when the queue is
// exhausted; extraction is always destructive, there is no peek.
func (q *Queue[C, A]) GetBest() (C, A, bool) {
	if len(q.nodes) == 0 {
		var c C
		var a A
		return c, a, false
	}
	best := q.nodes[0]
	last := len(q.nodes) - 1
	q.nodes[0] = q.nodes[last]
	// Zero the vacated slot so the clause reference doesn't pin memory.
	q.nodes[last] = node[C, A]{}
	q.nodes = q.nodes[:last]
	q.bubbleDown(0)
	return best.clause, best.aux, true
}

// Len returns the number of pending clauses.
func (q *Queue[C, A]) Len() int { return len(q.nodes) }

// bubbleUp swaps the node at i with its parent while the parent's evaluation
// is strictly greater. Parent of i>0 is (i-1)/2.
func (q *Queue[C, A]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.nodes[parent].eval <= q.nodes[i].eval {
			return
		}
		q.nodes[parent], q.nodes[i] = q.nodes[i], q.nodes[parent]
		i = parent
	}
}

// bubbleDown swaps the node at i with its smaller child while that child's
// evaluation is strictly smaller, stopping at a leaf.
func (q *Queue[C, A]) bubbleDown(i int) {
	for {
		child := 2*i + 1
		if child >= len(q.nodes) {
			return
		}
		if right := child + 1; right < len(q.nodes) && q.nodes[right].eval < q.nodes[child].eval {
			child = right
		}
		if q.nodes[child].eval >= q.nodes[i].eval {
			return
		}
		q.nodes[child], q.nodes[i] = q.nodes[i], q.nodes[child]
		i = child
	}
}
