// Package fynehost places Fyne canvas objects with the layout engine.
//
// A Layout treats the size of its container as the viewport: every time
// Fyne lays the container out, the engine runs a frame and each bound
// object is moved to its node's box.
package fynehost

import (
	"fyne.io/fyne/v2"

	"github.com/grindlemire/go-uilayout"
	"github.com/grindlemire/go-uilayout/internal/debug"
)

// Layout implements fyne.Layout on top of an Engine.
type Layout struct {
	engine   *uilayout.Engine
	bindings map[fyne.CanvasObject]uilayout.NodeID
	size     fyne.Size

	// OnFrame, if set, runs after each frame and before objects are placed.
	OnFrame func(*uilayout.Engine)
}

var _ fyne.Layout = (*Layout)(nil)

// NewLayout creates a Layout driven by e.
func NewLayout(e *uilayout.Engine) *Layout {
	return &Layout{
		engine:   e,
		bindings: make(map[fyne.CanvasObject]uilayout.NodeID),
	}
}

// Engine returns the engine the layout drives.
func (l *Layout) Engine() *uilayout.Engine {
	return l.engine
}

// Bind places obj at the box of id. Unbound objects are left where they are.
func (l *Layout) Bind(obj fyne.CanvasObject, id uilayout.NodeID) {
	l.bindings[obj] = id
}

// Node returns the node obj is bound to.
func (l *Layout) Node(obj fyne.CanvasObject) (uilayout.NodeID, bool) {
	id, ok := l.bindings[obj]
	return id, ok
}

// Layout resizes the viewport to size, runs a frame and places objects.
func (l *Layout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if size != l.size {
		if err := l.engine.Resize(float64(size.Width), float64(size.Height)); err != nil {
			// Fyne can lay out an unshown container at zero size.
			debug.Log("fynehost: keeping viewport: %v", err)
		} else {
			l.size = size
		}
	}

	l.engine.Frame()
	if l.OnFrame != nil {
		l.OnFrame(l.engine)
	}

	for _, obj := range objects {
		id, ok := l.bindings[obj]
		if !ok {
			continue
		}
		r := l.engine.Rect(id)
		obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
		obj.Resize(fyne.NewSize(float32(max(r.Width, 0)), float32(max(r.Height, 0))))
	}
}

// MinSize returns the extent of the roots in a 1x1 viewport, so sizes
// relative to the viewport do not hold the window open at its current size.
// It is a measurement, not a frame: OnFrame does not run.
func (l *Layout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	ext, err := l.engine.Measure(1, 1)
	if err != nil {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(float32(max(ext.Right(), 0)), float32(max(ext.Bottom(), 0)))
}
