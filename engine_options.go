package uilayout

import (
	"fmt"
	"math"
)

// Option is a functional option for configuring an Engine.
type Option func(*Engine) error

// WithViewport sets the viewport size in pixels.
// Default is 1280x720. Both dimensions must be positive.
func WithViewport(width, height float64) Option {
	return func(e *Engine) error {
		if err := validateViewport(width, height); err != nil {
			return err
		}
		e.ctx.ViewportWidth = width
		e.ctx.ViewportHeight = height
		return nil
	}
}

// WithRootFontSize sets the font size rem units refer to.
// Default is 16px. Must be positive.
func WithRootFontSize(px float64) Option {
	return func(e *Engine) error {
		if err := validateFontSize(px); err != nil {
			return err
		}
		e.ctx.RootFontSize = px
		return nil
	}
}

// WithTree lays out an existing tree instead of a new empty one.
func WithTree(t *Tree) Option {
	return func(e *Engine) error {
		if t == nil {
			return fmt.Errorf("tree cannot be nil")
		}
		e.tree = t
		return nil
	}
}

// WithRoots restricts frames to the given roots, which must have no parent.
// Without it, or with no IDs, every parentless node is a root.
func WithRoots(ids ...NodeID) Option {
	return func(e *Engine) error {
		e.roots = append(e.roots[:0], ids...)
		e.explicit = len(ids) > 0
		return nil
	}
}

func validateViewport(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("viewport must be positive and finite, got %gx%g", width, height)
	}
	return nil
}

func validateFontSize(px float64) error {
	if !(px > 0) || math.IsInf(px, 0) {
		return fmt.Errorf("root font size must be positive and finite, got %g", px)
	}
	return nil
}
