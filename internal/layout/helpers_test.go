package layout

import (
	"bytes"
	"math"
	"testing"

	"github.com/grindlemire/go-uilayout/internal/debug"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// captureWarnings routes debug output into a buffer for the rest of the test.
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	t.Cleanup(func() { debug.SetOutput(nil) })
	return &buf
}

// fixedStyle returns a style with a pixel size at the parent's origin.
func fixedStyle(width, height float64) Style {
	s := DefaultStyle()
	s.Width = Px(width)
	s.Height = Px(height)
	return s
}

// newTestTree builds a root with the given style and children with the
// given styles, returning the tree, the root and the children in order.
func newTestTree(root Style, children ...Style) (*Tree, NodeID, []NodeID) {
	tree := NewTree()
	rootID := tree.NewNode(root)
	ids := make([]NodeID, len(children))
	for i, s := range children {
		ids[i] = tree.NewNode(s)
	}
	if err := tree.AddChild(rootID, ids...); err != nil {
		panic(err)
	}
	return tree, rootID, ids
}

func assertRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) ||
		!approx(got.Width, want.Width) || !approx(got.Height, want.Height) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}
