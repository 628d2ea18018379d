package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/grindlemire/go-uilayout/internal/debug"
	"github.com/grindlemire/go-uilayout/internal/layout"
)

// ErrDuplicateID is returned when two elements share an id attribute.
var ErrDuplicateID = errors.New("duplicate id")

// AttrError reports an attribute whose value could not be used.
type AttrError struct {
	Tag   string
	Attr  string
	Value string
	Err   error
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("<%s %s=%q>: %v", e.Tag, e.Attr, e.Value, e.Err)
}

func (e *AttrError) Unwrap() error {
	return e.Err
}

const viewportTag = "viewport"

// open is an element whose end tag has not been seen yet.
type open struct {
	tag string
	id  layout.NodeID
}

type builder struct {
	doc   *Document
	stack []open
}

// run tokenizes the input and builds the tree. The tokenizer is used
// instead of html.Parse so unknown elements may self-close.
func (b *builder) run(r io.Reader) error {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("reading markup: %w", err)
			}
			for _, o := range b.stack {
				debug.Log("markup: <%s> not closed before end of input", o.tag)
			}
			return nil

		case html.StartTagToken:
			tok := z.Token()
			if err := b.startTag(tok, void(tok)); err != nil {
				return err
			}

		case html.SelfClosingTagToken:
			if err := b.startTag(z.Token(), true); err != nil {
				return err
			}

		case html.EndTagToken:
			b.endTag(z.Token())

		case html.TextToken:
			if text := strings.TrimSpace(string(z.Text())); text != "" {
				debug.Log("markup: ignoring text %q", text)
			}
		}
	}
}

// wrapper reports whether tok is one of the document wrappers that do not
// become nodes.
func wrapper(tok html.Token) bool {
	switch tok.DataAtom {
	case atom.Html, atom.Head, atom.Body:
		return true
	}
	return false
}

func (b *builder) startTag(tok html.Token, selfClosing bool) error {
	if wrapper(tok) {
		return nil
	}
	if tok.Data == viewportTag {
		return b.viewport(tok)
	}

	style, err := styleFromAttrs(tok)
	if err != nil {
		return err
	}
	id := b.doc.Tree.NewNode(style)

	el := Element{Tag: tok.Data, ID: attr(tok, "id")}
	if el.ID != "" {
		if prev, dup := b.doc.ids[el.ID]; dup {
			return fmt.Errorf("<%s id=%q>: %w (first used by node %d)", el.Tag, el.ID, ErrDuplicateID, prev)
		}
		b.doc.ids[el.ID] = id
	}
	b.doc.elements[id] = el

	if len(b.stack) == 0 {
		b.doc.Roots = append(b.doc.Roots, id)
	} else {
		parent := b.stack[len(b.stack)-1].id
		if err := b.doc.Tree.AddChild(parent, id); err != nil {
			return fmt.Errorf("<%s>: %w", el.Tag, err)
		}
	}

	if !selfClosing {
		b.stack = append(b.stack, open{tag: tok.Data, id: id})
	}
	return nil
}

// void reports whether tok is an HTML void element, which never has
// children or an end tag even when written without a trailing slash.
func void(tok html.Token) bool {
	switch tok.DataAtom {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}

// endTag closes the innermost open element with the same tag, implicitly
// closing anything opened inside it.
func (b *builder) endTag(tok html.Token) {
	if wrapper(tok) || void(tok) || tok.Data == viewportTag {
		return
	}
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].tag == tok.Data {
			b.stack = b.stack[:i]
			return
		}
	}
	debug.Warn("markup: unmatched </%s>", tok.Data)
}

func (b *builder) viewport(tok html.Token) error {
	fields := []struct {
		name string
		dst  *float64
	}{
		{"width", &b.doc.Viewport.Width},
		{"height", &b.doc.Viewport.Height},
		{"root-font-size", &b.doc.Viewport.RootFontSize},
	}
	for _, f := range fields {
		v := attr(tok, f.name)
		if v == "" {
			continue
		}
		px, err := parsePixels(v)
		if err != nil {
			return &AttrError{Tag: tok.Data, Attr: f.name, Value: v, Err: err}
		}
		*f.dst = px
	}
	return nil
}

// attr returns the value of key on tok, or "" if absent.
func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
