package layout

// arrangeFlex positions the direct children of a flex container along its
// main axis and aligns each one on the cross axis. Children keep their
// resolved main-axis size; only a single line is laid out whatever Wrap says.
func (t *Tree) arrangeFlex(ctx Context, id NodeID, f *Flex) {
	container := &t.nodes[id]
	if len(container.children) == 0 {
		return
	}

	isRow := f.Direction.IsRow()
	box := container.layout.Rect

	// Determine main/cross axis dimensions
	mainSize, crossSize := box.Width, box.Height
	mainAxis := AxisX
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
		mainAxis = AxisY
	}

	gap := ctx.Resolve(f.Gap, ParentReference(mainAxis, mainSize, container.layout.FontSize))

	order := make([]NodeID, len(container.children))
	copy(order, container.children)
	if f.Direction.IsReverse() {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	childSum := 0.0
	for _, c := range order {
		childSum += mainOf(t.nodes[c].layout.Rect, isRow)
	}

	offset, spacing := justifyOffsetAndSpacing(f.Justify, mainSize, childSum, gap, len(order))

	pos := offset
	for _, c := range order {
		r := &t.nodes[c].layout.Rect
		childMain := mainOf(*r, isRow)
		crossPos, childCross := calculateAlignOffset(f.Align, crossSize, crossOf(*r, isRow))

		if isRow {
			r.X, r.Y = pos, crossPos
			r.Height = childCross
		} else {
			r.X, r.Y = crossPos, pos
			r.Width = childCross
		}
		pos += childMain + spacing
	}
}

func mainOf(r Rect, isRow bool) float64 {
	if isRow {
		return r.Width
	}
	return r.Height
}

func crossOf(r Rect, isRow bool) float64 {
	if isRow {
		return r.Height
	}
	return r.Width
}

// justifyOffsetAndSpacing returns the main-axis position of the first child
// and the space inserted after each child. The start, end and center modes
// space children by gap; the space-* modes distribute the free space
// (mainSize - childSum) and ignore gap.
func justifyOffsetAndSpacing(justify Justify, mainSize, childSum, gap float64, itemCount int) (offset, spacing float64) {
	if itemCount == 0 {
		return 0, 0
	}
	n := float64(itemCount)
	freeSpace := mainSize - childSum
	used := childSum + gap*(n-1)

	switch justify {
	case JustifyEnd:
		return mainSize - used, gap
	case JustifyCenter:
		return (mainSize - used) / 2, gap
	case JustifySpaceBetween:
		if itemCount > 1 {
			return 0, freeSpace / (n - 1)
		}
		return 0, 0
	case JustifySpaceAround:
		each := freeSpace / n
		return each / 2, each
	case JustifySpaceEvenly:
		each := freeSpace / (n + 1)
		return each, each
	default: // JustifyStart
		return 0, gap
	}
}

// calculateAlignOffset returns a child's cross-axis position and size.
// Only AlignStretch changes the size.
func calculateAlignOffset(align Align, crossSize, itemSize float64) (pos, size float64) {
	switch align {
	case AlignEnd:
		return crossSize - itemSize, itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2, itemSize
	case AlignStretch:
		return 0, crossSize
	default: // AlignStart, AlignBaseline
		return 0, itemSize
	}
}
