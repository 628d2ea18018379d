package fynehost

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/grindlemire/go-uilayout"
	"github.com/grindlemire/go-uilayout/internal/snapshot"
)

// View shows every node of an engine as an outlined rectangle. Hovering
// the mouse highlights the node under the pointer.
type View struct {
	Layout    *Layout
	Container *fyne.Container

	// OnHover, if set, is called with the node under the pointer, or
	// uilayout.NoNode when the pointer leaves every node.
	OnHover func(uilayout.NodeID)

	rects   map[uilayout.NodeID]*canvas.Rectangle
	hovered uilayout.NodeID
}

// NewView builds one rectangle per node reachable from the engine's roots,
// outlined in a colour picked by depth. An empty palette uses
// snapshot.DefaultPalette.
func NewView(e *uilayout.Engine, palette []color.RGBA) *View {
	if len(palette) == 0 {
		palette = snapshot.DefaultPalette
	}

	v := &View{
		Layout:  NewLayout(e),
		rects:   make(map[uilayout.NodeID]*canvas.Rectangle),
		hovered: uilayout.NoNode,
	}

	// Pre-order keeps children above their parents.
	var objects []fyne.CanvasObject
	var add func(id uilayout.NodeID, depth int)
	add = func(id uilayout.NodeID, depth int) {
		r := canvas.NewRectangle(color.Transparent)
		r.StrokeColor = palette[depth%len(palette)]
		r.StrokeWidth = 1
		v.rects[id] = r
		v.Layout.Bind(r, id)
		objects = append(objects, r)
		for _, c := range e.Tree().Children(id) {
			add(c, depth+1)
		}
	}
	for _, root := range e.Roots() {
		add(root, 0)
	}

	v.Container = container.NewStack(container.New(v.Layout, objects...), newHoverLayer(v))
	return v
}

// Hover highlights the node at (x, y) in viewport coordinates.
func (v *View) Hover(x, y float64) {
	id := v.Layout.Engine().HitTest(x, y)
	if id == v.hovered {
		return
	}
	v.hovered = id
	v.Highlight(id)
	if v.OnHover != nil {
		v.OnHover(id)
	}
}

// Rectangle returns the rectangle drawn for id.
func (v *View) Rectangle(id uilayout.NodeID) *canvas.Rectangle {
	return v.rects[id]
}

// Highlight fills the rectangle of id and clears any previous highlight.
// Passing uilayout.NoNode only clears.
func (v *View) Highlight(id uilayout.NodeID) {
	for n, r := range v.rects {
		want := color.Color(color.Transparent)
		if n == id {
			c := r.StrokeColor.(color.RGBA)
			want = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x40}
		}
		if r.FillColor != want {
			r.FillColor = want
			r.Refresh()
		}
	}
}

// hoverLayer is a transparent widget stacked over the rectangles that
// forwards pointer movement to its View.
type hoverLayer struct {
	widget.BaseWidget
	view *View
}

var _ desktop.Hoverable = (*hoverLayer)(nil)

func newHoverLayer(v *View) *hoverLayer {
	h := &hoverLayer{view: v}
	h.ExtendBaseWidget(h)
	return h
}

func (h *hoverLayer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (h *hoverLayer) MouseIn(ev *desktop.MouseEvent) {
	h.view.Hover(float64(ev.Position.X), float64(ev.Position.Y))
}

func (h *hoverLayer) MouseMoved(ev *desktop.MouseEvent) {
	h.view.Hover(float64(ev.Position.X), float64(ev.Position.Y))
}

func (h *hoverLayer) MouseOut() {
	h.view.Hover(-1, -1)
}
