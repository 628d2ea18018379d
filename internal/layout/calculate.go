package layout

// Calculate runs a full frame over roots: a resolution pass over every
// root and descendant, then an arrangement pass for every flex and grid
// container. Passing no roots calculates every detached hierarchy in t.
func Calculate(t *Tree, ctx Context, roots ...NodeID) {
	if len(roots) == 0 {
		roots = t.Roots()
	}
	Resolve(t, ctx, roots...)
	Arrange(t, ctx, roots...)
}

// Resolve converts the declarations of every root and descendant to pixels,
// overwriting each node's Layout. Each node is resolved before its children
// and becomes their reference frame.
func Resolve(t *Tree, ctx Context, roots ...NodeID) {
	for _, root := range roots {
		t.resolveNode(ctx, root, frame{})
	}
}

// frame is the resolved parent values handed down to children.
type frame struct {
	width, height float64
	font          float64
	ok            bool // false for roots
}

func (f frame) reference(axis Axis) Reference {
	if !f.ok {
		return RootReference(axis)
	}
	size := f.width
	if axis == AxisY {
		size = f.height
	}
	return ParentReference(axis, size, f.font)
}

func (t *Tree) resolveNode(ctx Context, id NodeID, parent frame) {
	n := t.node(id)
	if n == nil {
		return
	}
	style := n.style
	var out Layout

	// 1. Font size comes first: em units on every other property use it.
	switch {
	case style.FontSize != nil:
		out.FontSize = ctx.Resolve(style.FontSize, parent.reference(AxisFont))
	case parent.ok:
		out.FontSize = parent.font
	default:
		out.FontSize = ctx.RootFontSize
	}

	xRef := parent.reference(AxisX)
	yRef := parent.reference(AxisY)
	xRef.Font, xRef.HasFont = out.FontSize, true
	yRef.Font, yRef.HasFont = out.FontSize, true

	// 2. Position
	out.Rect.X = ctx.Resolve(style.X, xRef)
	out.Rect.Y = ctx.Resolve(style.Y, yRef)

	// 3. Size
	out.Rect.Width = ctx.Resolve(style.Width, xRef)
	out.Rect.Height = ctx.Resolve(style.Height, yRef)

	// 4. Constraints
	out.MinWidth = resolveBound(ctx, style.MinWidth, xRef)
	out.MaxWidth = resolveBound(ctx, style.MaxWidth, xRef)
	out.MinHeight = resolveBound(ctx, style.MinHeight, yRef)
	out.MaxHeight = resolveBound(ctx, style.MaxHeight, yRef)

	// 5. Aspect ratio runs before clamping, so a clamped width does not
	// feed back into the derived height.
	if style.AspectRatio > 0 {
		out.Rect.Height = out.Rect.Width / style.AspectRatio
	}

	// 6. Clamp
	out.Rect.Width = clamp(out.Rect.Width, out.MinWidth, out.MaxWidth)
	out.Rect.Height = clamp(out.Rect.Height, out.MinHeight, out.MaxHeight)

	n.layout = out

	// 7. Children resolve against this node.
	child := frame{width: out.Rect.Width, height: out.Rect.Height, font: out.FontSize, ok: true}
	for _, c := range n.children {
		t.resolveNode(ctx, c, child)
	}
}

func resolveBound(ctx Context, l Length, ref Reference) Bound {
	if isNilLength(l) {
		return Bound{}
	}
	return Bound{Px: ctx.Resolve(l, ref), Set: true}
}

// clamp restricts v to the bounds that are set.
// If both are set and minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v float64, minVal, maxVal Bound) float64 {
	if maxVal.Set && v > maxVal.Px {
		v = maxVal.Px
	}
	if minVal.Set && v < minVal.Px {
		v = minVal.Px
	}
	return v
}
