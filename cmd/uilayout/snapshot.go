package main

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-uilayout/internal/markup"
	"github.com/grindlemire/go-uilayout/internal/snapshot"
)

// runSnapshot implements the snapshot subcommand.
// Each document is laid out and rendered to <outDir>/<name>.png.
// Documents are processed in parallel.
func runSnapshot(args []string, stdout, stderr io.Writer) error {
	o, err := parseOptions("snapshot", args, stderr)
	if err != nil {
		return err
	}
	files, err := o.files()
	if err != nil {
		return err
	}
	renderOpts, err := o.cfg.Snapshot.options()
	if err != nil {
		return err
	}
	fit := o.fit
	if fit == 0 {
		fit = o.cfg.Snapshot.Fit
	}

	var (
		mu         sync.Mutex
		errorCount int
	)
	report := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(stderr, "%v\n", err)
		errorCount++
	}

	targets, err := snapshotPaths(o.outDir, files)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	outputs := make([]string, len(files))
	for i, path := range files {
		out := targets[i]
		if out == "" {
			report(fmt.Errorf("%s: listed more than once", path))
			continue
		}
		g.Go(func() error {
			if err := snapshotFile(o, path, out, renderOpts, fit); err != nil {
				report(err)
				return nil
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if o.verbose {
		for i, out := range outputs {
			if out != "" {
				fmt.Fprintf(stdout, "%s -> %s\n", files[i], out)
			}
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

func snapshotFile(o *options, path, out string, opts snapshot.Options, fit int) error {
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
	opts.Width, opts.Height = ctx.ViewportWidth, ctx.ViewportHeight
	img := snapshot.Render(e.Tree(), e.Roots(), opts)
	img = snapshot.Fit(img, fit, fit)

	if err := snapshot.SaveFile(out, img); err != nil {
		return fmt.Errorf("%s: writing snapshot: %w", path, err)
	}
	return nil
}

// snapshotPath maps a document path to its PNG path in outDir.
// Examples:
//
//	ui/hud.html  -> out/hud.png
//	menu.htm     -> out/menu.png
func snapshotPath(outDir, path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, name+".png")
}

// snapshotPaths picks an output for each document. Base names are used
// when they are unique; otherwise every document keeps its path below the
// documents' common directory:
//
//	ui/a/hud.html, ui/b/hud.html  -> out/a/hud.png, out/b/hud.png
//
// A document listed twice gets "" for its later entries.
func snapshotPaths(outDir string, files []string) ([]string, error) {
	out := make([]string, len(files))
	seen := make(map[string]bool, len(files))
	unique := true
	for i, f := range files {
		out[i] = snapshotPath(outDir, f)
		if seen[out[i]] {
			unique = false
		}
		seen[out[i]] = true
	}
	if unique {
		return out, nil
	}

	abs := make([]string, len(files))
	for i, f := range files {
		a, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		abs[i] = a
	}
	root := commonDir(abs)

	clear(seen)
	for i, a := range abs {
		rel, err := filepath.Rel(root, a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", files[i], err)
		}
		out[i] = filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".png")
		if seen[out[i]] {
			out[i] = ""
			continue
		}
		seen[out[i]] = true
	}
	return out, nil
}

// commonDir returns the deepest directory containing every path in abs.
func commonDir(abs []string) string {
	dir := filepath.Dir(abs[0])
	for _, p := range abs[1:] {
		for !within(dir, p) {
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return dir
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
