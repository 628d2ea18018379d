package layout

import "github.com/grindlemire/go-uilayout/internal/debug"

// arrangeGrid places the direct children of a grid container into equal
// cells in declaration order, filling each row left to right. Every child
// is resized to exactly one cell.
func (t *Tree) arrangeGrid(ctx Context, id NodeID, g *Grid) {
	container := &t.nodes[id]
	count := len(container.children)
	if count == 0 {
		return
	}

	columns := g.Columns
	if columns < 1 {
		debug.Warn("grid node %d has %d columns; using 1", id, columns)
		columns = 1
	}
	rows := gridRowCount(count, columns, g.Rows)

	box := container.layout.Rect
	font := container.layout.FontSize
	columnGap := ctx.Resolve(g.ColumnGap, ParentReference(AxisX, box.Width, font))
	rowGap := ctx.Resolve(g.RowGap, ParentReference(AxisY, box.Height, font))

	cellWidth, cellHeight := gridCellSize(box.Width, box.Height, columns, rows, columnGap, rowGap)

	for i, c := range container.children {
		row, col := i/columns, i%columns
		t.nodes[c].layout.Rect = Rect{
			X:      float64(col) * (cellWidth + columnGap),
			Y:      float64(row) * (cellHeight + rowGap),
			Width:  cellWidth,
			Height: cellHeight,
		}
	}
}

// gridRowCount returns the declared row count, or ceil(count / columns)
// when rows is not positive.
func gridRowCount(count, columns, rows int) int {
	if rows > 0 {
		return rows
	}
	return (count + columns - 1) / columns
}

// gridCellSize returns the size of one cell after removing the gaps between
// columns and rows. A grid with zero rows has zero-height cells.
func gridCellSize(width, height float64, columns, rows int, columnGap, rowGap float64) (cellWidth, cellHeight float64) {
	cellWidth = (width - columnGap*float64(columns-1)) / float64(columns)
	if rows > 0 {
		cellHeight = (height - rowGap*float64(rows-1)) / float64(rows)
	}
	return cellWidth, cellHeight
}
