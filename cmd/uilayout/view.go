package main

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/grindlemire/go-uilayout"
	"github.com/grindlemire/go-uilayout/internal/fynehost"
	"github.com/grindlemire/go-uilayout/internal/markup"
)

// runView implements the view subcommand.
// It opens a window whose content area is the viewport: resizing the
// window re-runs the layout, and hovering shows the node under the pointer.
func runView(args []string, stderr io.Writer) error {
	o, err := parseOptions("view", args, stderr)
	if err != nil {
		return err
	}
	if len(o.paths) != 1 {
		return fmt.Errorf("view takes exactly one document")
	}
	path := o.paths[0]

	doc, err := markup.LoadFile(path)
	if err != nil {
		return err
	}
	e, err := o.engine(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	renderOpts, err := o.cfg.Snapshot.options()
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("uilayout - " + path)

	status := widget.NewLabel("")
	v := fynehost.NewView(e, renderOpts.Palette)
	v.OnHover = func(id uilayout.NodeID) {
		status.SetText(describeHover(e, doc, id))
	}
	v.Layout.OnFrame = func(eng *uilayout.Engine) {
		ctx := eng.Context()
		w.SetTitle(fmt.Sprintf("uilayout - %s (%sx%s)", path, num(ctx.ViewportWidth), num(ctx.ViewportHeight)))
	}

	w.SetContent(container.NewBorder(nil, status, nil, nil, v.Container))
	ctx := e.Context()
	w.Resize(fyne.NewSize(float32(ctx.ViewportWidth), float32(ctx.ViewportHeight)))
	w.ShowAndRun()
	return nil
}

// describeHover is the status line for the node under the pointer.
func describeHover(e *uilayout.Engine, doc *markup.Document, id uilayout.NodeID) string {
	if id == uilayout.NoNode {
		return ""
	}
	r := e.Rect(id)
	return fmt.Sprintf("%s  %s,%s  %sx%s  font %s",
		doc.Element(id).Label(), num(r.X), num(r.Y), num(r.Width), num(r.Height), num(e.Layout(id).FontSize))
}
