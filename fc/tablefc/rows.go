package tablefc

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/layouttree"
)

// RowHeights computes each row's height per spec.md §4.3.4 phase 3: a
// single-row cell's contribution is max(current, cell_used_height,
// row's specified height); a multi-row cell whose height exceeds the
// current sum of its spanned rows distributes the excess across them
// proportional to their current heights, or equally when all are zero.
func RowHeights(t *layouttree.Tree, s Structure) []dimen.DU {
	heights := make([]dimen.DU, s.NumRows)

	for rowIdx, rowNodeIdx := range s.RowNodeIdx {
		rn, _ := t.Arena.Get(rowNodeIdx)
		if h, ok := rn.Style.Height.Resolve(0); ok {
			heights[rowIdx] = dimen.Max(heights[rowIdx], h)
		}
	}

	var spanning []Cell
	for _, c := range s.Cells {
		cn := cellNode(t, c)
		if c.RowSpan == 1 {
			heights[c.Row] = dimen.Max(heights[c.Row], cn.UsedSize.Y)
			continue
		}
		spanning = append(spanning, c)
	}

	for _, c := range spanning {
		cn := cellNode(t, c)
		var sum dimen.DU
		for r := c.Row; r < c.Row+c.RowSpan; r++ {
			sum += heights[r]
		}
		excess := cn.UsedSize.Y - sum
		if excess <= 0 {
			continue
		}
		if sum > 0 {
			for r := c.Row; r < c.Row+c.RowSpan; r++ {
				heights[r] += dimen.DU(int64(excess) * int64(heights[r]) / int64(sum))
			}
		} else {
			share := excess / dimen.DU(c.RowSpan)
			for r := c.Row; r < c.Row+c.RowSpan; r++ {
				heights[r] += share
			}
		}
	}
	return heights
}
