package layout

import (
	"fmt"
	"strconv"
)

// Unit specifies how a Dimension is interpreted.
type Unit uint8

const (
	UnitPixels         Unit = iota // Absolute pixels
	UnitPercent                    // Percentage of the parent's size on the same axis
	UnitViewportWidth              // Percentage of the viewport width
	UnitViewportHeight             // Percentage of the viewport height
	UnitRootFont                   // Multiple of the root font size
	UnitParentFont                 // Multiple of the parent font size
)

func (u Unit) String() string {
	switch u {
	case UnitPixels:
		return "px"
	case UnitPercent:
		return "%"
	case UnitViewportWidth:
		return "vw"
	case UnitViewportHeight:
		return "vh"
	case UnitRootFont:
		return "rem"
	case UnitParentFont:
		return "em"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Length is a size declaration. It is one of Number, Dimension or
// *Expression; no other implementations exist.
type Length interface {
	fmt.Stringer
	isLength()
}

// Number is a plain numeric literal, treated as already-resolved pixels.
type Number float64

func (Number) isLength() {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Dimension is a value tagged with a unit.
type Dimension struct {
	Amount float64
	Unit   Unit
}

func (Dimension) isLength() {}

func (d Dimension) String() string {
	return strconv.FormatFloat(d.Amount, 'g', -1, 64) + d.Unit.String()
}

// Px returns a Dimension of v absolute pixels.
func Px(v float64) Dimension {
	return Dimension{Amount: v, Unit: UnitPixels}
}

// Percent returns a Dimension relative to the parent's size on the axis it
// is attached to. The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Dimension {
	return Dimension{Amount: p, Unit: UnitPercent}
}

// Vw returns a Dimension of v percent of the viewport width.
func Vw(v float64) Dimension {
	return Dimension{Amount: v, Unit: UnitViewportWidth}
}

// Vh returns a Dimension of v percent of the viewport height.
func Vh(v float64) Dimension {
	return Dimension{Amount: v, Unit: UnitViewportHeight}
}

// Rem returns a Dimension of v times the root font size.
func Rem(v float64) Dimension {
	return Dimension{Amount: v, Unit: UnitRootFont}
}

// Em returns a Dimension of v times the parent font size.
func Em(v float64) Dimension {
	return Dimension{Amount: v, Unit: UnitParentFont}
}
