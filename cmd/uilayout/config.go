package main

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-uilayout/internal/snapshot"
)

// config is the TOML file passed with -config. Every field is optional.
//
//	viewport_width = 1920
//	viewport_height = 1080
//	root_font_size = 18
//	debug_log = "/tmp/uilayout.log"
//
//	[snapshot]
//	scale = 2
//	background = "black"
//	palette = ["gold", "#48b", "tomato"]
//	stroke = 1.5
//	fill = true
//	fit = 512
type config struct {
	ViewportWidth  float64        `toml:"viewport_width"`
	ViewportHeight float64        `toml:"viewport_height"`
	RootFontSize   float64        `toml:"root_font_size"`
	DebugLog       string         `toml:"debug_log"`
	Snapshot       snapshotConfig `toml:"snapshot"`
}

type snapshotConfig struct {
	Scale      float64  `toml:"scale"`
	Background string   `toml:"background"`
	Palette    []string `toml:"palette"`
	Stroke     float64  `toml:"stroke"`
	Fill       bool     `toml:"fill"`
	Fit        int      `toml:"fit"`
}

// loadConfig reads the config at path. Unknown keys are an error so typos
// do not pass silently.
func loadConfig(path string) (config, error) {
	var cfg config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("reading config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return config{}, fmt.Errorf("%s: unknown config keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.ViewportWidth < 0 || c.ViewportHeight < 0 {
		return fmt.Errorf("viewport size cannot be negative")
	}
	if c.RootFontSize < 0 {
		return fmt.Errorf("root_font_size cannot be negative")
	}
	if c.Snapshot.Scale < 0 || c.Snapshot.Stroke < 0 || c.Snapshot.Fit < 0 {
		return fmt.Errorf("snapshot scale, stroke and fit cannot be negative")
	}
	if _, err := c.Snapshot.options(); err != nil {
		return err
	}
	return nil
}

// options converts the snapshot table to renderer options.
func (s snapshotConfig) options() (snapshot.Options, error) {
	opts := snapshot.Options{
		Scale:  s.Scale,
		Stroke: s.Stroke,
		Fill:   s.Fill,
	}
	if s.Background != "" {
		bg, err := snapshot.ParseColor(s.Background)
		if err != nil {
			return opts, fmt.Errorf("snapshot.background: %w", err)
		}
		opts.Background = color.Color(bg)
	}
	if len(s.Palette) > 0 {
		p, err := snapshot.ParsePalette(s.Palette)
		if err != nil {
			return opts, fmt.Errorf("snapshot.palette: %w", err)
		}
		opts.Palette = p
	}
	return opts, nil
}
