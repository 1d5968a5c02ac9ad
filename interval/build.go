package interval

import (
	"cmp"
	"slices"
)

// growthRate is the score penalty applied per slot of distance between a
// pivot candidate and the middle of the run being split.
const growthRate = 2

// build sorts members by start and fills the slot array from slot 0.
func (t *Tree[T, K]) build(members []Member[T, K]) {
	slices.SortStableFunc(members, func(a, b Member[T, K]) int {
		return cmp.Compare(a.Start, b.Start)
	})

	counts := overlapCounts(members)

	t.buildRun(members, counts, 0)
}

// overlapCounts returns, for each start-sorted member, the number of other
// members it overlaps.
//
// The forward scan from each member stops at the first member it does not
// overlap, so a long interval followed by a short one undercounts. The
// counts only steer pivot selection, and they are not recomputed for the
// narrower runs seen deeper in the recursion.
func overlapCounts[T any, K Coordinate](members []Member[T, K]) []int {
	counts := make([]int, len(members))

	for i := range members {
		for j := i + 1; j < len(members); j++ {
			if !members[i].Overlaps(members[j]) {
				break
			}

			counts[i]++
			counts[j]++
		}
	}

	return counts
}

// pickPivot returns the index of the member that should anchor a run with
// the given overlap counts.
//
// Candidates are visited in ascending count order and scored by their
// count plus a penalty for their distance from the middle of the run.
// Anything overlapping more than the middle member is never considered.
func pickPivot(counts []int) int {
	center := len(counts) / 2

	order := make([]int, len(counts))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(counts[a], counts[b])
	})

	best := center
	bestScore := counts[center] + 1

	for _, idx := range order {
		if counts[idx] > counts[center] {
			break
		}

		score := counts[idx] + growthRate*absDiff(center, idx)

		if score < bestScore {
			best = idx
			bestScore = score
		}
	}

	return best
}

// buildRun builds the subtree rooted at slot pos over a start-sorted run of
// members and their overlap counts.
func (t *Tree[T, K]) buildRun(members []Member[T, K], counts []int, pos int) {
	if len(members) == 0 {
		return
	}

	pivot := members[pickPivot(counts)]

	contained, leftLen := partition(members, counts, pivot)

	t.setNode(pos, newNode(pivot, contained))

	rightStart := leftLen + len(contained)

	t.buildRun(members[:leftLen], counts[:leftLen], 2*pos+1)
	t.buildRun(members[rightStart:], counts[rightStart:], 2*pos+2)
}

// partition stably rearranges a start-sorted run into
//
//	| ends before pivot | overlaps pivot | starts after pivot |
//
// and returns a copy of the middle section along with the length of the
// first.
func partition[T any, K Coordinate](
	members []Member[T, K],
	counts []int,
	pivot Member[T, K],
) ([]Member[T, K], int) {
	var (
		contained      []Member[T, K]
		containedCount []int
		right          []Member[T, K]
		rightCount     []int
		left           int
	)

	// Left members are compacted in place. The write index never passes the
	// read index, so nothing is overwritten before it has been read.
	for i, m := range members {
		switch {
		case m.Overlaps(pivot):
			contained = append(contained, m)
			containedCount = append(containedCount, counts[i])
		case m.End < pivot.Start:
			members[left] = m
			counts[left] = counts[i]
			left++
		default:
			right = append(right, m)
			rightCount = append(rightCount, counts[i])
		}
	}

	copy(members[left:], contained)
	copy(counts[left:], containedCount)
	copy(members[left+len(contained):], right)
	copy(counts[left+len(contained):], rightCount)

	return contained, left
}

// setNode stores n in slot pos, growing the slot array if the tree has
// become deeper than the initial sizing allows for.
func (t *Tree[T, K]) setNode(pos int, n *Node[T, K]) {
	if pos >= len(t.nodes) {
		t.nodes = append(t.nodes, make([]*Node[T, K], pos+1-len(t.nodes))...)
	}

	t.nodes[pos] = n
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
