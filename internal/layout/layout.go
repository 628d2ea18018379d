package layout

// Bound is an optional resolved constraint.
type Bound struct {
	Px  float64
	Set bool
}

// Layout holds the values computed for a node by the last pass.
// It is overwritten on every pass, never merged.
type Layout struct {
	// Rect is the node's box. X and Y are relative to the parent's box;
	// use Tree.AbsoluteRect for screen coordinates.
	Rect Rect

	FontSize float64

	MinWidth  Bound
	MaxWidth  Bound
	MinHeight Bound
	MaxHeight Bound
}
