// Package markup loads layout trees from HTML-flavoured documents.
//
// Every element becomes a node. Attributes carry the declarations:
//
//	<viewport width="1280" height="720" root-font-size="16"/>
//	<panel id="inventory" width="20rem" aspect-ratio="1"
//	       display="grid" grid-columns="4" column-gap="8px" row-gap="8px">
//	  <slot/><slot/><slot/>
//	</panel>
//
// Elements may be self-closing. HTML void elements such as img and br are
// always leaves, with or without the trailing slash. The html, head and body wrappers are
// skipped, so documents can be written as complete HTML pages or as bare
// fragments.
package markup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grindlemire/go-uilayout/internal/layout"
)

// Viewport holds the defaults a document declares for its frame context.
// Zero fields were not declared.
type Viewport struct {
	Width        float64
	Height       float64
	RootFontSize float64
}

// Element describes the markup a node was built from.
type Element struct {
	Tag string
	ID  string
}

// Label returns "tag#id", or just the tag when the element has no id.
func (e Element) Label() string {
	if e.ID == "" {
		return e.Tag
	}
	return e.Tag + "#" + e.ID
}

// Document is a loaded layout tree.
type Document struct {
	Tree     *layout.Tree
	Roots    []layout.NodeID // Top-level elements in document order
	Viewport Viewport

	elements map[layout.NodeID]Element
	ids      map[string]layout.NodeID
}

func newDocument() *Document {
	return &Document{
		Tree:     layout.NewTree(),
		elements: make(map[layout.NodeID]Element),
		ids:      make(map[string]layout.NodeID),
	}
}

// Lookup returns the node declared with the given id attribute.
func (d *Document) Lookup(id string) (layout.NodeID, bool) {
	n, ok := d.ids[id]
	return n, ok
}

// Element returns the markup element for a node.
func (d *Document) Element(id layout.NodeID) Element {
	return d.elements[id]
}

// Context returns a frame context from the document's viewport, filling
// undeclared fields from fallback.
func (d *Document) Context(fallback layout.Context) layout.Context {
	ctx := fallback
	if d.Viewport.Width > 0 {
		ctx.ViewportWidth = d.Viewport.Width
	}
	if d.Viewport.Height > 0 {
		ctx.ViewportHeight = d.Viewport.Height
	}
	if d.Viewport.RootFontSize > 0 {
		ctx.RootFontSize = d.Viewport.RootFontSize
	}
	return ctx
}

// Parse loads a document from a string.
func Parse(s string) (*Document, error) {
	return Load(strings.NewReader(s))
}

// LoadFile loads the document at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Load reads a document from r.
func Load(r io.Reader) (*Document, error) {
	b := &builder{doc: newDocument()}
	if err := b.run(r); err != nil {
		return nil, err
	}
	return b.doc, nil
}
