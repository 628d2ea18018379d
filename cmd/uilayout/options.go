package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-uilayout"
	"github.com/grindlemire/go-uilayout/internal/debug"
	"github.com/grindlemire/go-uilayout/internal/layout"
	"github.com/grindlemire/go-uilayout/internal/markup"
)

// options are the flags shared by every subcommand.
type options struct {
	width      float64
	height     float64
	font       float64
	configPath string
	verbose    bool

	// snapshot only
	outDir string
	fit    int

	cfg   config
	paths []string
}

// parseOptions parses args for the named subcommand and loads the config
// file if one was given.
func parseOptions(name string, args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Float64Var(&o.width, "width", 0, "viewport width in pixels")
	flags.Float64Var(&o.height, "height", 0, "viewport height in pixels")
	flags.Float64Var(&o.font, "font", 0, "root font size in pixels")
	flags.StringVar(&o.configPath, "config", "", "TOML config file")
	flags.BoolVar(&o.verbose, "v", false, "verbose output")
	if name == "snapshot" {
		flags.StringVar(&o.outDir, "o", ".", "output directory")
		flags.IntVar(&o.fit, "fit", 0, "scale snapshots down to fit N x N pixels")
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if o.width < 0 || o.height < 0 || o.font < 0 {
		return nil, fmt.Errorf("viewport and font sizes cannot be negative")
	}
	o.paths = flags.Args()

	if o.configPath != "" {
		cfg, err := loadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		o.cfg = cfg
		if cfg.DebugLog != "" {
			if err := debug.Init(cfg.DebugLog); err != nil {
				return nil, err
			}
		}
	}
	return o, nil
}

// context builds the frame context for doc. Flags win over the document's
// viewport element, which wins over the config file and built-in defaults.
func (o *options) context(doc *markup.Document) layout.Context {
	base := layout.NewContext(uilayout.DefaultViewportWidth, uilayout.DefaultViewportHeight, layout.DefaultRootFontSize)
	if o.cfg.ViewportWidth > 0 {
		base.ViewportWidth = o.cfg.ViewportWidth
	}
	if o.cfg.ViewportHeight > 0 {
		base.ViewportHeight = o.cfg.ViewportHeight
	}
	if o.cfg.RootFontSize > 0 {
		base.RootFontSize = o.cfg.RootFontSize
	}

	ctx := doc.Context(base)
	if o.width > 0 {
		ctx.ViewportWidth = o.width
	}
	if o.height > 0 {
		ctx.ViewportHeight = o.height
	}
	if o.font > 0 {
		ctx.RootFontSize = o.font
	}
	return ctx
}

// engine wraps doc in an Engine configured for this invocation.
func (o *options) engine(doc *markup.Document) (*uilayout.Engine, error) {
	ctx := o.context(doc)
	return uilayout.NewEngine(
		uilayout.WithTree(doc.Tree),
		uilayout.WithRoots(doc.Roots...),
		uilayout.WithViewport(ctx.ViewportWidth, ctx.ViewportHeight),
		uilayout.WithRootFontSize(ctx.RootFontSize),
	)
}

// files resolves the positional paths, defaulting to the current directory.
func (o *options) files() ([]string, error) {
	paths := o.paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectLayoutFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no layout documents found")
	}
	return files, nil
}

func isLayoutFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

// collectLayoutFiles finds all layout documents from the given paths.
// Supports:
//   - Direct file paths: "hud.html"
//   - Directory paths: "./ui"
//   - Recursive pattern: "./..."
func collectLayoutFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		// Handle ./... recursive pattern
		if strings.HasSuffix(path, "/...") || path == "..." {
			root := strings.TrimSuffix(strings.TrimSuffix(path, "..."), "/")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isLayoutFile(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			// Non-recursive
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isLayoutFile(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			// Explicitly named files are accepted whatever their extension.
			files = append(files, path)
		}
	}

	return files, nil
}
