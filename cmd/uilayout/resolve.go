package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/go-uilayout"
	"github.com/grindlemire/go-uilayout/internal/markup"
)

// runResolve implements the resolve subcommand.
// It lays out each document and prints one line per node.
func runResolve(args []string, stdout, stderr io.Writer) error {
	o, err := parseOptions("resolve", args, stderr)
	if err != nil {
		return err
	}
	files, err := o.files()
	if err != nil {
		return err
	}

	var errorCount int
	for i, path := range files {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if err := resolveFile(o, path, stdout); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

func resolveFile(o *options, path string, w io.Writer) error {
	doc, err := markup.LoadFile(path)
	if err != nil {
		return err
	}
	e, err := o.engine(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.Frame()

	ctx := e.Context()
	fmt.Fprintf(w, "%s (viewport %sx%s, root font %s)\n",
		path, num(ctx.ViewportWidth), num(ctx.ViewportHeight), num(ctx.RootFontSize))

	for _, root := range e.Roots() {
		e.Tree().Walk(root, func(id uilayout.NodeID) bool {
			printNode(w, e, doc, id, o.verbose)
			return true
		})
	}
	return nil
}

func printNode(w io.Writer, e *uilayout.Engine, doc *markup.Document, id uilayout.NodeID, verbose bool) {
	depth := 0
	for p := e.Tree().Parent(id); p != uilayout.NoNode; p = e.Tree().Parent(p) {
		depth++
	}

	r := e.Rect(id)
	fmt.Fprintf(w, "%s%s %s,%s %sx%s",
		strings.Repeat("  ", depth+1), doc.Element(id).Label(),
		num(r.X), num(r.Y), num(r.Width), num(r.Height))
	if verbose {
		fmt.Fprintf(w, " font=%s%s", num(e.Layout(id).FontSize), describeStyle(e.Tree().Style(id)))
	}
	fmt.Fprintln(w)
}

// describeStyle lists the declared lengths and container of a style.
func describeStyle(s uilayout.Style) string {
	var b strings.Builder
	lengths := []struct {
		name string
		l    uilayout.Length
	}{
		{"width", s.Width}, {"height", s.Height},
		{"min-width", s.MinWidth}, {"max-width", s.MaxWidth},
		{"min-height", s.MinHeight}, {"max-height", s.MaxHeight},
		{"font-size", s.FontSize},
	}
	for _, d := range lengths {
		if d.l != nil {
			fmt.Fprintf(&b, " %s=%s", d.name, d.l)
		}
	}
	if s.AspectRatio > 0 {
		fmt.Fprintf(&b, " aspect-ratio=%s", num(s.AspectRatio))
	}
	switch c := s.Container.(type) {
	case *uilayout.Flex:
		if c != nil {
			fmt.Fprintf(&b, " flex(%s %s %s)", c.Direction, c.Justify, c.Align)
		}
	case *uilayout.Grid:
		if c != nil {
			fmt.Fprintf(&b, " grid(%d cols)", c.Columns)
		}
	}
	return b.String()
}

// num formats a pixel value with at most two decimals.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
