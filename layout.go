// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package uilayout

import "github.com/grindlemire/go-uilayout/internal/layout"

// Unit specifies how a Dimension is interpreted.
type Unit = layout.Unit

const (
	UnitPixels         = layout.UnitPixels
	UnitPercent        = layout.UnitPercent
	UnitViewportWidth  = layout.UnitViewportWidth
	UnitViewportHeight = layout.UnitViewportHeight
	UnitRootFont       = layout.UnitRootFont
	UnitParentFont     = layout.UnitParentFont
)

// Length is a size declaration: a Number, a Dimension or an *Expression.
type Length = layout.Length

// Number is a bare pixel length.
type Number = layout.Number

// Dimension is an amount tagged with a Unit.
type Dimension = layout.Dimension

// Operator is an arithmetic operator inside an Expression.
type Operator = layout.Operator

const (
	OpAdd = layout.OpAdd
	OpSub = layout.OpSub
	OpMul = layout.OpMul
	OpDiv = layout.OpDiv
)

// Expression is a binary arithmetic combination of two lengths.
type Expression = layout.Expression

// ConstructionError reports an Expression that could not be built.
type ConstructionError = layout.ConstructionError

// ParseError reports a declaration that could not be parsed.
type ParseError = layout.ParseError

var (
	ErrInvalidOperator = layout.ErrInvalidOperator
	ErrMissingOperand  = layout.ErrMissingOperand
	ErrUnknownNode     = layout.ErrUnknownNode
	ErrAlreadyAttached = layout.ErrAlreadyAttached
	ErrCycle           = layout.ErrCycle
)

// Direction specifies the main axis for laying out flex children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart    = layout.AlignStart
	AlignEnd      = layout.AlignEnd
	AlignCenter   = layout.AlignCenter
	AlignStretch  = layout.AlignStretch
	AlignBaseline = layout.AlignBaseline
)

// Wrap is the flex-wrap setting.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapLines   = layout.WrapLines
	WrapReverse = layout.WrapReverse
)

// Container is either a *Flex or a *Grid.
type Container = layout.Container

// Flex arranges direct children along a main axis.
type Flex = layout.Flex

// Grid arranges direct children into equal-sized cells.
type Grid = layout.Grid

// Style holds the layout declarations for a node.
type Style = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Bound is a resolved min or max constraint.
type Bound = layout.Bound

// LayoutResult holds the resolved box and font size of a node.
type LayoutResult = layout.Layout

// Context carries the viewport and root font size for one frame.
type Context = layout.Context

// NodeID addresses a node in a Tree.
type NodeID = layout.NodeID

// NoNode is the ID returned where no node exists.
const NoNode = layout.NoNode

// Tree is an arena of layout nodes.
type Tree = layout.Tree

// DefaultRootFontSize is the root font size used when none is configured.
const DefaultRootFontSize = layout.DefaultRootFontSize

// Px creates a pixel Dimension.
func Px(v float64) Dimension {
	return layout.Px(v)
}

// Percent creates a Dimension relative to the parent's size on the same axis.
func Percent(p float64) Dimension {
	return layout.Percent(p)
}

// Vw creates a Dimension relative to the viewport width.
func Vw(v float64) Dimension {
	return layout.Vw(v)
}

// Vh creates a Dimension relative to the viewport height.
func Vh(v float64) Dimension {
	return layout.Vh(v)
}

// Rem creates a Dimension relative to the root font size.
func Rem(v float64) Dimension {
	return layout.Rem(v)
}

// Em creates a Dimension relative to the parent font size.
func Em(v float64) Dimension {
	return layout.Em(v)
}

// NewExpression builds left op right, validating the operator.
func NewExpression(left Length, op Operator, right Length) (*Expression, error) {
	return layout.NewExpression(left, op, right)
}

// Calc returns left + right.
func Calc(left, right Length) *Expression {
	return layout.Calc(left, right)
}

// ParseLength parses a declaration such as "50%", "2rem" or "calc(100% - 20px)".
func ParseLength(s string) (Length, error) {
	return layout.ParseLength(s)
}

// DefaultStyle returns a Style at the parent's origin with zero size.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewContext creates a frame context.
func NewContext(viewportWidth, viewportHeight, rootFontSize float64) Context {
	return layout.NewContext(viewportWidth, viewportHeight, rootFontSize)
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return layout.NewTree()
}

// Calculate resolves and arranges every node reachable from roots.
// With no roots, every parentless node in t is laid out.
func Calculate(t *Tree, ctx Context, roots ...NodeID) {
	layout.Calculate(t, ctx, roots...)
}
