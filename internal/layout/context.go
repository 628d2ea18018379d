package layout

import "github.com/grindlemire/go-uilayout/internal/debug"

// DefaultRootFontSize is the root font size used when none is configured.
const DefaultRootFontSize = 16.0

// Context holds the global reference values of a resolution pass.
// It is passed explicitly to every pass and never stored on nodes.
type Context struct {
	ViewportWidth  float64
	ViewportHeight float64
	RootFontSize   float64
}

// NewContext returns a Context for the given viewport and root font size.
func NewContext(viewportWidth, viewportHeight, rootFontSize float64) Context {
	return Context{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		RootFontSize:   rootFontSize,
	}
}

// Axis names the quantity a Length is attached to. It picks the viewport
// fallback for percentages when no parent size is available.
type Axis uint8

const (
	AxisX    Axis = iota // Horizontal positions and sizes
	AxisY                // Vertical positions and sizes
	AxisFont             // Font sizes; percentages refer to the parent font
)

// Reference carries the parent-provided values a Length may be relative to.
// The zero Reference on AxisX describes a root node: no parent size and no
// parent font.
type Reference struct {
	Axis Axis

	// Size is the parent's resolved size along Axis. Ignored unless HasSize.
	Size    float64
	HasSize bool

	// Font is the font size em units multiply. Ignored unless HasFont.
	Font    float64
	HasFont bool
}

// RootReference returns a Reference with no parent values.
func RootReference(axis Axis) Reference {
	return Reference{Axis: axis}
}

// ParentReference returns a Reference with both a parent size and a font.
func ParentReference(axis Axis, size, font float64) Reference {
	return Reference{Axis: axis, Size: size, HasSize: true, Font: font, HasFont: true}
}

// Resolve converts l to pixels. A nil Length resolves to 0.
// Resolution never fails: impossible cases log a warning and yield 0.
func (c Context) Resolve(l Length, ref Reference) float64 {
	switch v := l.(type) {
	case nil:
		return 0
	case Number:
		return float64(v)
	case Dimension:
		return c.resolveDimension(v, ref)
	case *Expression:
		if v == nil {
			return 0
		}
		return c.evaluate(v, ref)
	default:
		debug.Warn("unsupported length %T; using 0", l)
		return 0
	}
}

func (c Context) resolveDimension(d Dimension, ref Reference) float64 {
	switch d.Unit {
	case UnitPixels:
		return d.Amount
	case UnitPercent:
		return d.Amount / 100 * c.percentBase(ref)
	case UnitViewportWidth:
		return d.Amount / 100 * c.ViewportWidth
	case UnitViewportHeight:
		return d.Amount / 100 * c.ViewportHeight
	case UnitRootFont:
		return d.Amount * c.RootFontSize
	case UnitParentFont:
		if ref.HasFont {
			return d.Amount * ref.Font
		}
		return d.Amount * c.RootFontSize
	default:
		debug.Warn("unknown unit %v in %s; using 0", d.Unit, d)
		return 0
	}
}

// percentBase returns the value a percentage applies to. Without a parent
// size it falls back to the viewport on the same axis; font percentages use
// the parent font, then the root font.
func (c Context) percentBase(ref Reference) float64 {
	switch ref.Axis {
	case AxisFont:
		if ref.HasFont {
			return ref.Font
		}
		return c.RootFontSize
	case AxisY:
		if ref.HasSize {
			return ref.Size
		}
		return c.ViewportHeight
	default:
		if ref.HasSize {
			return ref.Size
		}
		return c.ViewportWidth
	}
}

func (c Context) evaluate(e *Expression, ref Reference) float64 {
	left := c.Resolve(e.left, ref)
	right := c.Resolve(e.right, ref)

	switch e.op {
	case OpAdd:
		return left + right
	case OpSub:
		return left - right
	case OpMul:
		return left * right
	case OpDiv:
		if right == 0 {
			debug.Warn("division by zero in %s; using 0", e)
			return 0
		}
		return left / right
	default:
		debug.Warn("unknown operator %q in %s; using 0", string(e.op), e)
		return 0
	}
}
