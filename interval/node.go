package interval

import (
	"cmp"
	"slices"
)

// Node is the bucket of intervals stored in one slot of a [Tree].
//
// The same members are kept twice: once ascending by start and once
// descending by end, so that a query can stop scanning as soon as the
// remaining members cannot contain the point.
type Node[T any, K Coordinate] struct {
	byStart []Member[T, K]
	byEnd   []Member[T, K]

	point      K
	pivotStart K
	pivotEnd   K
}

// newNode creates a node anchored at pivot from the members overlapping it.
func newNode[T any, K Coordinate](pivot Member[T, K], contained []Member[T, K]) *Node[T, K] {
	byStart := slices.Clone(contained)
	slices.SortStableFunc(byStart, func(a, b Member[T, K]) int {
		return cmp.Compare(a.Start, b.Start)
	})

	byEnd := slices.Clone(contained)
	slices.SortStableFunc(byEnd, func(a, b Member[T, K]) int {
		return cmp.Compare(b.End, a.End)
	})

	return &Node[T, K]{
		byStart:    byStart,
		byEnd:      byEnd,
		point:      pivot.Center,
		pivotStart: pivot.Start,
		pivotEnd:   pivot.End,
	}
}

// Point returns the coordinate the node is anchored at.
func (n *Node[T, K]) Point() K {
	return n.point
}

// Pivot returns the bounds of the interval the node was built around.
func (n *Node[T, K]) Pivot() (K, K) {
	return n.pivotStart, n.pivotEnd
}

// Len returns the number of intervals in the node.
func (n *Node[T, K]) Len() int {
	return len(n.byStart)
}

// StartOrder returns a copy of the node's members sorted ascending by start.
func (n *Node[T, K]) StartOrder() []Member[T, K] {
	return slices.Clone(n.byStart)
}

// EndOrder returns a copy of the node's members sorted descending by end.
func (n *Node[T, K]) EndOrder() []Member[T, K] {
	return slices.Clone(n.byEnd)
}

// appendContaining appends the values of all members containing point.
func (n *Node[T, K]) appendContaining(values []T, point K) []T {
	if point <= n.point {
		for _, m := range n.byStart {
			// No later member can start early enough.
			if m.Start > point {
				break
			}

			if m.End >= point {
				values = append(values, m.Value)
			}
		}

		return values
	}

	for _, m := range n.byEnd {
		// No later member can end late enough.
		if m.End < point {
			break
		}

		if m.Start <= point {
			values = append(values, m.Value)
		}
	}

	return values
}
