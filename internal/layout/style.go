package layout

import "fmt"

// Direction specifies the main axis and order for laying out flex children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	RowReverse                     // Children laid out right-to-left in reverse order
	Column                         // Children laid out top-to-bottom
	ColumnReverse                  // Children laid out top-to-bottom in reverse order
)

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether children are visited in reverse declaration order.
func (d Direction) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case RowReverse:
		return "row-reverse"
	case Column:
		return "column"
	case ColumnReverse:
		return "column-reverse"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "flex-start"
	case JustifyEnd:
		return "flex-end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return fmt.Sprintf("Justify(%d)", uint8(j))
	}
}

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart    Align = iota // Align to start of cross axis
	AlignEnd                   // Align to end of cross axis
	AlignCenter                // Center on cross axis
	AlignStretch               // Stretch to fill cross axis
	AlignBaseline              // Accepted for compatibility; behaves like AlignStart
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "flex-start"
	case AlignEnd:
		return "flex-end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	case AlignBaseline:
		return "baseline"
	default:
		return fmt.Sprintf("Align(%d)", uint8(a))
	}
}

// Wrap is the flex-wrap setting. Only a single line is ever laid out.
type Wrap uint8

const (
	NoWrap Wrap = iota
	WrapLines
	WrapReverse
)

func (w Wrap) String() string {
	switch w {
	case NoWrap:
		return "nowrap"
	case WrapLines:
		return "wrap"
	case WrapReverse:
		return "wrap-reverse"
	default:
		return fmt.Sprintf("Wrap(%d)", uint8(w))
	}
}

// Container is arrangement metadata attached to a node. It is either *Flex
// or *Grid; a nil Container means the node's children keep their resolved boxes.
type Container interface {
	isContainer()
}

// Flex arranges direct children along a main axis.
type Flex struct {
	Direction Direction
	Justify   Justify
	Align     Align
	Wrap      Wrap

	// Gap is the space between consecutive children for the start, end and
	// center modes. Percentages refer to the container's main size.
	Gap Length
}

func (*Flex) isContainer() {}

// Grid arranges direct children into equal-sized cells, row by row.
type Grid struct {
	Columns int // At least 1
	Rows    int // 0 derives ceil(children / Columns)

	// Percentages refer to the container's width and height respectively.
	ColumnGap Length
	RowGap    Length
}

func (*Grid) isContainer() {}

// Style contains all layout declarations for a node.
type Style struct {
	// Position relative to the parent's box.
	X Length
	Y Length

	// Sizing
	Width  Length
	Height Length

	// Constraints. A nil bound is not applied.
	MinWidth  Length
	MaxWidth  Length
	MinHeight Length
	MaxHeight Length

	// AspectRatio is width / height. When positive, height is derived from
	// the resolved width before min/max clamping.
	AspectRatio float64

	// FontSize is resolved against the parent font. Nil inherits it.
	FontSize Length

	Container Container
}

// DefaultStyle returns a Style at the parent's origin with zero size.
func DefaultStyle() Style {
	return Style{
		X:      Px(0),
		Y:      Px(0),
		Width:  Px(0),
		Height: Px(0),
	}
}

// Flex returns the flex metadata, or nil if the node is not a flex container.
func (s Style) Flex() *Flex {
	f, _ := s.Container.(*Flex)
	return f
}

// Grid returns the grid metadata, or nil if the node is not a grid container.
func (s Style) Grid() *Grid {
	g, _ := s.Container.(*Grid)
	return g
}
