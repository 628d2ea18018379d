// Package snapshot rasterizes resolved layout trees to images.
//
// Every box is drawn as an outline in a colour picked by its depth, so a
// snapshot shows nesting at a glance. Snapshots are a debugging aid for
// layout documents, not a renderer for real UI content.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/grindlemire/go-uilayout/internal/layout"
)

// DefaultPalette cycles by depth: roots use the first colour, their
// children the second, and so on.
var DefaultPalette = []color.RGBA{
	colornames.Steelblue,
	colornames.Tomato,
	colornames.Seagreen,
	colornames.Goldenrod,
	colornames.Mediumpurple,
	colornames.Darkorange,
}

// Options control how a tree is drawn.
type Options struct {
	// Width and Height are the canvas size in layout pixels. Zero uses the
	// extent of the roots.
	Width, Height float64

	// Scale multiplies every coordinate. Zero means 1.
	Scale float64

	// Background fills the canvas. Nil means white.
	Background color.Color

	// Palette is cycled by depth. Empty means DefaultPalette.
	Palette []color.RGBA

	// Stroke is the outline width in output pixels. Zero means 1.
	Stroke float64

	// Fill shades each box with a translucent version of its outline colour.
	Fill bool
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Background == nil {
		o.Background = colornames.White
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}
	if o.Stroke <= 0 {
		o.Stroke = 1
	}
	return o
}

// Render draws every node reachable from roots using the boxes of the last
// layout pass.
func Render(t *layout.Tree, roots []layout.NodeID, opts Options) *image.RGBA {
	opts = opts.withDefaults()

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		var extent layout.Rect
		for _, id := range roots {
			extent = extent.Union(t.AbsoluteRect(id))
		}
		if w <= 0 {
			w = math.Max(extent.Right(), 0)
		}
		if h <= 0 {
			h = math.Max(extent.Bottom(), 0)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(w*opts.Scale)), int(math.Ceil(h*opts.Scale))))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	if dst.Bounds().Empty() {
		return dst
	}

	p := &painter{
		dst:    dst,
		opts:   opts,
		vr:     vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy()),
		canvas: layout.NewRect(0, 0, w, h),
	}
	for _, root := range roots {
		p.paint(t, root, 0, 0, 0)
	}
	return dst
}

type painter struct {
	dst    *image.RGBA
	opts   Options
	vr     *vector.Rasterizer
	canvas layout.Rect // unscaled image bounds
}

// paint draws id, whose parent sits at (ox, oy), then its children on top.
func (p *painter) paint(t *layout.Tree, id layout.NodeID, depth int, ox, oy float64) {
	r := t.Rect(id).Translate(ox, oy)
	// Boxes outside the image are skipped; their children may still be inside.
	if !r.Intersect(p.canvas).IsEmpty() {
		p.box(r, p.opts.Palette[depth%len(p.opts.Palette)])
	}
	for _, c := range t.Children(id) {
		p.paint(t, c, depth+1, r.X, r.Y)
	}
}

func (p *painter) box(r layout.Rect, col color.RGBA) {
	s := float32(p.opts.Scale)
	x0, y0 := float32(r.X)*s, float32(r.Y)*s
	x1, y1 := float32(r.Right())*s, float32(r.Bottom())*s
	if x1 <= x0 || y1 <= y0 {
		return
	}

	if p.opts.Fill {
		p.vr.Reset(p.dst.Bounds().Dx(), p.dst.Bounds().Dy())
		p.vr.DrawOp = draw.Over
		rectPath(p.vr, x0, y0, x1, y1, false)
		shade := color.NRGBA{R: col.R, G: col.G, B: col.B, A: 0x30}
		p.vr.Draw(p.dst, p.dst.Bounds(), image.NewUniform(shade), image.Point{})
	}

	p.vr.Reset(p.dst.Bounds().Dx(), p.dst.Bounds().Dy())
	p.vr.DrawOp = draw.Over
	rectPath(p.vr, x0, y0, x1, y1, false)

	// The inner edge is wound the other way so it cuts a hole.
	sw := float32(p.opts.Stroke)
	if ix0, iy0, ix1, iy1 := x0+sw, y0+sw, x1-sw, y1-sw; ix1 > ix0 && iy1 > iy0 {
		rectPath(p.vr, ix0, iy0, ix1, iy1, true)
	}
	p.vr.Draw(p.dst, p.dst.Bounds(), image.NewUniform(col), image.Point{})
}

func rectPath(vr *vector.Rasterizer, x0, y0, x1, y1 float32, reverse bool) {
	vr.MoveTo(x0, y0)
	if reverse {
		vr.LineTo(x0, y1)
		vr.LineTo(x1, y1)
		vr.LineTo(x1, y0)
	} else {
		vr.LineTo(x1, y0)
		vr.LineTo(x1, y1)
		vr.LineTo(x0, y1)
	}
	vr.ClosePath()
}

// Fit scales img down to fit within maxW x maxH, keeping its aspect ratio.
// Images that already fit are returned unchanged.
func Fit(img *image.RGBA, maxW, maxH int) *image.RGBA {
	b := img.Bounds()
	if maxW <= 0 || maxH <= 0 || (b.Dx() <= maxW && b.Dy() <= maxH) {
		return img
	}
	ratio := math.Min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy()))
	w := max(1, int(math.Round(float64(b.Dx())*ratio)))
	h := max(1, int(math.Round(float64(b.Dy())*ratio)))
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
	return scaled
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SaveFile writes img as a PNG file at path, creating parent directories.
func SaveFile(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WritePNG(f, img)
}

// ParseColor accepts an SVG colour name ("steelblue") or a hex triplet
// ("#4682b4" or "#48b").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ParsePalette parses a list of colours with ParseColor.
func ParsePalette(names []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(names))
	for _, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
