package interval

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Coordinate is the set of types that can be used as interval endpoints.
type Coordinate interface {
	constraints.Integer
}

// Interval is implemented by types that know their own closed bounds and
// the coordinate they should be anchored at when chosen as a pivot.
type Interval[K Coordinate] interface {
	Start() K
	End() K
	Center() K
}

// Range represents the closed interval [Lo, Hi].
type Range[K Coordinate] struct {
	Lo K
	Hi K
}

// Start returns the lower bound of the range.
func (r Range[K]) Start() K { return r.Lo }

// End returns the upper bound of the range.
func (r Range[K]) End() K { return r.Hi }

// Center returns the midpoint of the range, rounded towards Lo.
func (r Range[K]) Center() K { return r.Lo + (r.Hi-r.Lo)/2 }

// Ensure that Range implements the [Interval] interface.
var _ Interval[int64] = Range[int64]{}

// Member is an input interval together with its projected coordinates.
type Member[T any, K Coordinate] struct {
	Value  T
	Start  K
	End    K
	Center K
}

// Contains reports whether point lies within the member's closed bounds.
func (m Member[T, K]) Contains(point K) bool {
	return m.Start <= point && point <= m.End
}

// Overlaps reports whether the two members share at least one point.
func (m Member[T, K]) Overlaps(other Member[T, K]) bool {
	return m.Start <= other.End && other.Start <= m.End
}

// Tree is a read-only centered interval tree.
//
// Nodes live in an implicit binary tree: the children of the node in slot i
// are in slots 2i+1 and 2i+2. A Tree is immutable once built, so it may be
// queried from several goroutines at once.
type Tree[T any, K Coordinate] struct {
	nodes []*Node[T, K]
	size  int
}

// New builds a tree over intervals using the given projections. It returns
// an [*InvalidIntervalError] if any interval ends before it starts.
func New[T any, K Coordinate](
	intervals []T,
	start, end, center func(T) K,
) (*Tree[T, K], error) {
	members := make([]Member[T, K], len(intervals))

	for i, value := range intervals {
		m := Member[T, K]{
			Value:  value,
			Start:  start(value),
			End:    end(value),
			Center: center(value),
		}

		if m.Start > m.End {
			return nil, newInvalidIntervalError(m.Start, m.End)
		}

		members[i] = m
	}

	t := &Tree[T, K]{
		nodes: make([]*Node[T, K], 2*len(members)),
		size:  len(members),
	}

	t.build(members)

	return t, nil
}

// FromIntervals builds a tree over values that carry their own bounds.
func FromIntervals[K Coordinate, T Interval[K]](intervals []T) (*Tree[T, K], error) {
	return New(
		intervals,
		func(v T) K { return v.Start() },
		func(v T) K { return v.End() },
		func(v T) K { return v.Center() },
	)
}

// Len returns the number of intervals stored in the tree.
func (t *Tree[T, K]) Len() int {
	return t.size
}

// Slots returns the length of the backing slot array, including empty
// slots.
func (t *Tree[T, K]) Slots() int {
	return len(t.nodes)
}

// Node returns the node in slot pos, if that slot is initialized.
func (t *Tree[T, K]) Node(pos int) (*Node[T, K], bool) {
	if pos < 0 || pos >= len(t.nodes) || t.nodes[pos] == nil {
		return nil, false
	}

	return t.nodes[pos], true
}

// All returns an iterator over the initialized slots in slot order.
func (t *Tree[T, K]) All() iter.Seq2[int, *Node[T, K]] {
	return func(yield func(int, *Node[T, K]) bool) {
		for pos, n := range t.nodes {
			if n == nil {
				continue
			}

			if !yield(pos, n) {
				return
			}
		}
	}
}

// Query returns every interval that contains point. The boolean result is
// false when nothing matched.
func (t *Tree[T, K]) Query(point K) ([]T, bool) {
	var values []T

	pos := 0

	for {
		n, ok := t.Node(pos)
		if !ok {
			break
		}

		values = n.appendContaining(values, point)

		// Everything in the left subtree ends before the pivot starts, and
		// everything in the right subtree starts after the pivot ends.
		switch {
		case point < n.pivotStart:
			pos = 2*pos + 1
		case point > n.pivotEnd:
			pos = 2*pos + 2
		default:
			return values, len(values) > 0
		}
	}

	return values, len(values) > 0
}

// Stats summarises the shape of a tree.
type Stats struct {
	Intervals int
	Nodes     int
	Slots     int
	Depth     int
	MaxBucket int
}

// Stats walks the tree and reports its shape.
func (t *Tree[T, K]) Stats() Stats {
	s := Stats{
		Intervals: t.size,
		Slots:     len(t.nodes),
	}

	for pos, n := range t.All() {
		s.Nodes++
		s.MaxBucket = max(s.MaxBucket, n.Len())
		s.Depth = max(s.Depth, depthOf(pos)+1)
	}

	return s
}

// depthOf returns the zero based depth of slot pos in the implicit tree.
func depthOf(pos int) int {
	depth := 0

	for pos > 0 {
		pos = (pos - 1) / 2
		depth++
	}

	return depth
}
