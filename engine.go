package uilayout

import (
	"fmt"

	"github.com/grindlemire/go-uilayout/internal/debug"
	"github.com/grindlemire/go-uilayout/internal/layout"
)

// Default viewport used when no WithViewport option is given.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// Engine owns a node tree and the frame context it is laid out against.
// Each call to Frame recomputes every box from the current declarations and
// context; nothing carries over between frames.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	tree     *Tree
	roots    []NodeID // Explicit roots, always parentless
	explicit bool     // Set once roots are given; otherwise every parentless node is a root
	ctx      Context
	frame    uint64
}

// NewEngine creates an Engine with the given options.
// Options that reference nodes are validated after all options apply.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		tree: layout.NewTree(),
		ctx:  layout.NewContext(DefaultViewportWidth, DefaultViewportHeight, layout.DefaultRootFontSize),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	for _, id := range e.roots {
		if !e.tree.Has(id) {
			return nil, fmt.Errorf("root %d: %w", id, ErrUnknownNode)
		}
		if e.tree.Parent(id) != NoNode {
			return nil, fmt.Errorf("root %d: %w", id, ErrAlreadyAttached)
		}
	}

	return e, nil
}

// Tree returns the engine's node tree.
func (e *Engine) Tree() *Tree {
	return e.tree
}

// Context returns the context the next frame will use.
func (e *Engine) Context() Context {
	return e.ctx
}

// NewNode creates a detached node with the given style.
func (e *Engine) NewNode(style Style) NodeID {
	return e.tree.NewNode(style)
}

// SetStyle replaces the declarations of id. The change is visible on the
// next frame.
func (e *Engine) SetStyle(id NodeID, style Style) {
	e.tree.SetStyle(id, style)
}

// AddChild appends children to parent in declaration order.
// A child that was an explicit root stops being one.
func (e *Engine) AddChild(parent NodeID, children ...NodeID) error {
	if err := e.tree.AddChild(parent, children...); err != nil {
		return err
	}
	e.pruneRoots()
	return nil
}

// AddRoot marks id as an explicit root. From then on only explicit roots
// are laid out.
func (e *Engine) AddRoot(id NodeID) error {
	if !e.tree.Has(id) {
		return fmt.Errorf("adding root %d: %w", id, ErrUnknownNode)
	}
	if e.tree.Parent(id) != NoNode {
		return fmt.Errorf("adding root %d: %w", id, ErrAlreadyAttached)
	}
	for _, r := range e.roots {
		if r == id {
			return nil
		}
	}
	e.roots = append(e.roots, id)
	e.explicit = true
	return nil
}

// Remove frees id and its subtree, dropping it from the explicit roots.
// Removing the last explicit root leaves nothing to lay out; the engine
// does not fall back to every parentless node.
func (e *Engine) Remove(id NodeID) {
	e.tree.Remove(id)
	e.pruneRoots()
}

// pruneRoots drops explicit roots that were freed or attached to a parent.
func (e *Engine) pruneRoots() {
	kept := e.roots[:0]
	for _, r := range e.roots {
		if e.tree.Has(r) && e.tree.Parent(r) == NoNode {
			kept = append(kept, r)
		}
	}
	e.roots = kept
}

// Roots returns the nodes laid out by Frame.
func (e *Engine) Roots() []NodeID {
	if e.explicit {
		out := make([]NodeID, len(e.roots))
		copy(out, e.roots)
		return out
	}
	return e.tree.Roots()
}

// Resize changes the viewport for subsequent frames.
func (e *Engine) Resize(width, height float64) error {
	if err := validateViewport(width, height); err != nil {
		return err
	}
	e.ctx.ViewportWidth = width
	e.ctx.ViewportHeight = height
	return nil
}

// SetRootFontSize changes the root font size for subsequent frames.
func (e *Engine) SetRootFontSize(px float64) error {
	if err := validateFontSize(px); err != nil {
		return err
	}
	e.ctx.RootFontSize = px
	return nil
}

// Frame lays out every root against the current context.
func (e *Engine) Frame() {
	e.frame++
	roots := e.Roots()
	debug.Log("frame %d: %d roots, viewport %gx%g, root font %g",
		e.frame, len(roots), e.ctx.ViewportWidth, e.ctx.ViewportHeight, e.ctx.RootFontSize)
	layout.Calculate(e.tree, e.ctx, roots...)
}

// Measure returns the extent of the roots laid out against a width x height
// viewport. It does not count as a frame, and the boxes of the current
// viewport are recomputed before it returns.
func (e *Engine) Measure(width, height float64) (Rect, error) {
	if err := validateViewport(width, height); err != nil {
		return Rect{}, err
	}
	roots := e.Roots()
	probe := e.ctx
	probe.ViewportWidth, probe.ViewportHeight = width, height
	layout.Calculate(e.tree, probe, roots...)
	ext := e.Extent()
	layout.Calculate(e.tree, e.ctx, roots...)
	return ext, nil
}

// Frames returns the number of frames run so far.
func (e *Engine) Frames() uint64 {
	return e.frame
}

// Layout returns the result of the last frame for id.
func (e *Engine) Layout(id NodeID) LayoutResult {
	return e.tree.Layout(id)
}

// Rect returns the box of id in viewport coordinates.
func (e *Engine) Rect(id NodeID) Rect {
	return e.tree.AbsoluteRect(id)
}

// HitTest returns the deepest node whose box contains (x, y), or NoNode.
// Later siblings and later roots are drawn on top, so they are checked first.
// Children are only searched inside their parent's box.
func (e *Engine) HitTest(x, y float64) NodeID {
	p := Point{X: x, Y: y}
	roots := e.Roots()
	for i := len(roots) - 1; i >= 0; i-- {
		if hit := e.hitTest(roots[i], Point{}, p); hit != NoNode {
			return hit
		}
	}
	return NoNode
}

// hitTest checks id, whose parent sits at origin in viewport coordinates.
func (e *Engine) hitTest(id NodeID, origin, p Point) NodeID {
	local := e.tree.Rect(id)
	if !p.In(local.Translate(origin.X, origin.Y)) {
		return NoNode
	}
	inner := origin.Add(Point{X: local.X, Y: local.Y})
	children := e.tree.Children(id)
	for i := len(children) - 1; i >= 0; i-- {
		if hit := e.hitTest(children[i], inner, p); hit != NoNode {
			return hit
		}
	}
	return id
}

// Extent returns the union of the root boxes from the last frame.
func (e *Engine) Extent() Rect {
	var out Rect
	for _, id := range e.Roots() {
		out = out.Union(e.tree.Rect(id))
	}
	return out
}
