package tablefc

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
)

// ColumnWidths computes each column's used width, dispatching by
// table-layout per spec.md §4.3.4 phase 2. available is the table's
// content-box inline size; borderSpacing is the horizontal gap inserted
// between adjacent columns under border-collapse: separate (0 under
// collapse).
func ColumnWidths(t *layouttree.Tree, s Structure, tableLayout styleddom.TableLayout, available dimen.DU, borderSpacing dimen.DU) []dimen.DU {
	if s.NumCols == 0 {
		return nil
	}
	if tableLayout == styleddom.TableLayoutFixed {
		return fixedColumnWidths(t, s, available, borderSpacing)
	}
	return autoColumnWidths(t, s, available, borderSpacing)
}

func cellNode(t *layouttree.Tree, c Cell) layouttree.Node {
	n, _ := t.Arena.Get(c.NodeIdx)
	return n
}

// fixedColumnWidths: first-row cell widths define columns; columns left
// unspecified (no first-row cell, or an auto width) share the remainder
// equally.
func fixedColumnWidths(t *layouttree.Tree, s Structure, available, spacing dimen.DU) []dimen.DU {
	widths := make([]dimen.DU, s.NumCols)
	specified := make([]bool, s.NumCols)

	for _, c := range s.Cells {
		if c.Row != 0 {
			continue
		}
		n := cellNode(t, c)
		w, ok := n.Style.Width.Resolve(available)
		if !ok {
			continue
		}
		per := w / dimen.DU(c.ColSpan)
		for col := c.Col; col < c.Col+c.ColSpan; col++ {
			widths[col] = per
			specified[col] = true
		}
	}

	var usedSum dimen.DU
	unspecifiedCount := 0
	for col := 0; col < s.NumCols; col++ {
		if specified[col] {
			usedSum += widths[col]
		} else {
			unspecifiedCount++
		}
	}

	totalSpacing := spacing * dimen.DU(s.NumCols+1)
	remainder := available - totalSpacing - usedSum
	if unspecifiedCount > 0 && remainder > 0 {
		share := remainder / dimen.DU(unspecifiedCount)
		for col := 0; col < s.NumCols; col++ {
			if !specified[col] {
				widths[col] = share
			}
		}
	}
	return widths
}

// autoColumnWidths implements the min/max column-width algorithm: each
// single-column cell contributes its min/max content width directly to
// its column; a spanning cell's min/max that exceed its spanned columns'
// sums are spread over them by distributeSpan. Final widths follow the
// three-way available-space rule spec.md §4.3.4 names.
func autoColumnWidths(t *layouttree.Tree, s Structure, available, spacing dimen.DU) []dimen.DU {
	colMin := make([]dimen.DU, s.NumCols)
	colMax := make([]dimen.DU, s.NumCols)

	for _, c := range s.Cells {
		if c.ColSpan != 1 {
			continue
		}
		n := cellNode(t, c)
		colMin[c.Col] = dimen.Max(colMin[c.Col], n.Intrinsic.MinContentWidth)
		colMax[c.Col] = dimen.Max(colMax[c.Col], n.Intrinsic.MaxContentWidth)
	}
	for _, c := range s.Cells {
		if c.ColSpan == 1 {
			continue
		}
		n := cellNode(t, c)
		distributeSpan(colMin, colMax, c.Col, c.ColSpan, n.Intrinsic.MinContentWidth, n.Intrinsic.MaxContentWidth)
	}

	var minSum, maxSum dimen.DU
	for col := 0; col < s.NumCols; col++ {
		minSum += colMin[col]
		maxSum += colMax[col]
	}
	totalSpacing := spacing * dimen.DU(s.NumCols+1)
	avail := available - totalSpacing
	if avail < 0 {
		avail = 0
	}

	widths := make([]dimen.DU, s.NumCols)
	switch {
	case maxSum <= avail:
		copy(widths, colMax)
		if extra := avail - maxSum; extra > 0 && s.NumCols > 0 {
			widths[s.NumCols-1] += extra
		}
	case minSum > avail:
		copy(widths, colMin) // overflow allowed, per spec.md §4.3.4
	default:
		rangeSum := dimen.DU(0)
		for col := 0; col < s.NumCols; col++ {
			rangeSum += colMax[col] - colMin[col]
		}
		extra := avail - minSum
		for col := 0; col < s.NumCols; col++ {
			if rangeSum > 0 {
				widths[col] = colMin[col] + dimen.DU(int64(extra)*int64(colMax[col]-colMin[col])/int64(rangeSum))
			} else {
				widths[col] = colMin[col] + extra/dimen.DU(s.NumCols)
			}
		}
	}
	return widths
}

// distributeSpan pushes a spanning cell's own min/max content widths onto
// its spanned columns' running min/max when they exceed what the columns
// already have: the min excess proportional to each column's (max-min)
// range, the max excess proportional to each column's current max, each
// split equally when its weights sum to zero across the span.
func distributeSpan(colMin, colMax []dimen.DU, startCol, span int, cellMin, cellMax dimen.DU) {
	var curMinSum, curMaxSum, rangeSum dimen.DU
	for c := startCol; c < startCol+span; c++ {
		curMinSum += colMin[c]
		curMaxSum += colMax[c]
		rangeSum += colMax[c] - colMin[c]
	}
	if deficit := cellMin - curMinSum; deficit > 0 {
		for c := startCol; c < startCol+span; c++ {
			if rangeSum > 0 {
				colMin[c] += dimen.DU(int64(deficit) * int64(colMax[c]-colMin[c]) / int64(rangeSum))
			} else {
				colMin[c] += deficit / dimen.DU(span)
			}
		}
	}
	if deficit := cellMax - curMaxSum; deficit > 0 {
		var maxSumNow dimen.DU
		for c := startCol; c < startCol+span; c++ {
			maxSumNow += colMax[c]
		}
		for c := startCol; c < startCol+span; c++ {
			if maxSumNow > 0 {
				colMax[c] += dimen.DU(int64(deficit) * int64(colMax[c]) / int64(maxSumNow))
			} else {
				colMax[c] += deficit / dimen.DU(span)
			}
		}
	}
}
