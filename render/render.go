// Package render draws a centered interval tree as indented text, one block
// per node, with each interval shown as a bar scaled to its node's extent.
package render

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"

	"github.com/pkg/errors"

	"github.com/crystalix007/centered-intervals/interval"
)

// columns is the width, in characters, of the bar area for each node.
const columns = 30

// Source is the read-only view of a tree that the renderer needs.
type Source[T any, K interval.Coordinate] interface {
	Slots() int
	Node(pos int) (*interval.Node[T, K], bool)
}

// Ensure that the tree satisfies [Source].
var _ Source[int, int] = (*interval.Tree[int, int])(nil)

// String renders src.
func String[T any, K interval.Coordinate](src Source[T, K]) string {
	var b strings.Builder

	renderTree(&b, src)

	return b.String()
}

// Write renders src to w.
func Write[T any, K interval.Coordinate](w io.Writer, src Source[T, K]) error {
	if _, err := io.WriteString(w, String(src)); err != nil {
		return errors.Wrap(err, "writing rendered tree")
	}

	return nil
}

func renderTree[T any, K interval.Coordinate](b *strings.Builder, src Source[T, K]) {
	fmt.Fprintf(b, "Interval Tree (array=%d) (depth>=%d)\n", src.Slots(), log2(src.Slots()))

	renderNode(b, src, 0)
}

// renderNode writes the node in slot pos and then its subtrees, left first.
func renderNode[T any, K interval.Coordinate](b *strings.Builder, src Source[T, K], pos int) {
	n, ok := src.Node(pos)
	if !ok {
		return
	}

	byStart := n.StartOrder()
	indent := strings.Repeat(" ", log2(pos+1)*2)

	lo := byStart[0].Start
	hi := n.EndOrder()[0].End
	extent := float64(hi - lo)

	fmt.Fprintf(b, "%s(%d <- %d -> %d)\n", indent, lo, n.Point(), hi)

	for _, m := range byStart {
		offset, width := 0, 1

		if extent > 0 {
			offset = int(float64(m.Start-lo) * columns / extent)
			width = int(math.Ceil(float64(m.End-m.Start) * columns / extent))
		}

		fill := max(columns-width-offset, 0)

		fmt.Fprintf(b, "%s%s%s%s(%d <- %d -> %d)\n",
			indent,
			strings.Repeat(" ", offset),
			strings.Repeat("o", width),
			strings.Repeat(" ", fill),
			m.Start, m.Center, m.End,
		)
	}

	renderNode(b, src, 2*pos+1)
	renderNode(b, src, 2*pos+2)
}

// log2 returns floor(log2(n)), or 0 when n is 0.
func log2(n int) int {
	if n <= 0 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}
