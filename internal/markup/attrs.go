package markup

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/grindlemire/go-uilayout/internal/debug"
	"github.com/grindlemire/go-uilayout/internal/layout"
)

// lengthAttrs maps attribute names to the Style field they set.
var lengthAttrs = map[string]func(*layout.Style) *layout.Length{
	"x":          func(s *layout.Style) *layout.Length { return &s.X },
	"y":          func(s *layout.Style) *layout.Length { return &s.Y },
	"width":      func(s *layout.Style) *layout.Length { return &s.Width },
	"height":     func(s *layout.Style) *layout.Length { return &s.Height },
	"min-width":  func(s *layout.Style) *layout.Length { return &s.MinWidth },
	"max-width":  func(s *layout.Style) *layout.Length { return &s.MaxWidth },
	"min-height": func(s *layout.Style) *layout.Length { return &s.MinHeight },
	"max-height": func(s *layout.Style) *layout.Length { return &s.MaxHeight },
	"font-size":  func(s *layout.Style) *layout.Length { return &s.FontSize },
}

var (
	flexAttrs = []string{"flex-direction", "justify-content", "align-items", "flex-wrap", "gap"}
	gridAttrs = []string{"grid-columns", "grid-rows", "column-gap", "row-gap"}
)

// Attributes that are accepted but carry no layout meaning.
var inertAttrs = map[string]bool{
	"id":    true,
	"class": true,
	"title": true,
}

// styleFromAttrs builds a node style from an element's attributes.
// Undeclared lengths keep their DefaultStyle values.
func styleFromAttrs(tok html.Token) (layout.Style, error) {
	s := layout.DefaultStyle()
	attrErr := func(key, val string, err error) error {
		return &AttrError{Tag: tok.Data, Attr: key, Value: val, Err: err}
	}

	display := strings.ToLower(strings.TrimSpace(attr(tok, "display")))
	switch display {
	case "", "block":
	case "flex":
		f, err := flexFromAttrs(tok, attrErr)
		if err != nil {
			return s, err
		}
		s.Container = f
	case "grid":
		g, err := gridFromAttrs(tok, attrErr)
		if err != nil {
			return s, err
		}
		s.Container = g
	default:
		return s, attrErr("display", display, fmt.Errorf("want flex, grid or block"))
	}

	for _, a := range tok.Attr {
		if field, ok := lengthAttrs[a.Key]; ok {
			l, err := layout.ParseLength(a.Val)
			if err != nil {
				return s, attrErr(a.Key, a.Val, err)
			}
			*field(&s) = l
			continue
		}

		switch {
		case a.Key == "aspect-ratio":
			r, err := parseRatio(a.Val)
			if err != nil {
				return s, attrErr(a.Key, a.Val, err)
			}
			s.AspectRatio = r
		case a.Key == "display" || inertAttrs[a.Key]:
		case contains(flexAttrs, a.Key):
			if display != "flex" {
				debug.Warn("markup: <%s %s> ignored without display=\"flex\"", tok.Data, a.Key)
			}
		case contains(gridAttrs, a.Key):
			if display != "grid" {
				debug.Warn("markup: <%s %s> ignored without display=\"grid\"", tok.Data, a.Key)
			}
		default:
			debug.Log("markup: <%s> unknown attribute %q", tok.Data, a.Key)
		}
	}
	return s, nil
}

type attrErrFunc func(key, val string, err error) error

func flexFromAttrs(tok html.Token, attrErr attrErrFunc) (*layout.Flex, error) {
	f := &layout.Flex{}
	var err error
	if v := attr(tok, "flex-direction"); v != "" {
		if f.Direction, err = layout.ParseDirection(v); err != nil {
			return nil, attrErr("flex-direction", v, err)
		}
	}
	if v := attr(tok, "justify-content"); v != "" {
		if f.Justify, err = layout.ParseJustify(v); err != nil {
			return nil, attrErr("justify-content", v, err)
		}
	}
	if v := attr(tok, "align-items"); v != "" {
		if f.Align, err = layout.ParseAlign(v); err != nil {
			return nil, attrErr("align-items", v, err)
		}
	}
	if v := attr(tok, "flex-wrap"); v != "" {
		if f.Wrap, err = layout.ParseWrap(v); err != nil {
			return nil, attrErr("flex-wrap", v, err)
		}
	}
	if v := attr(tok, "gap"); v != "" {
		if f.Gap, err = layout.ParseLength(v); err != nil {
			return nil, attrErr("gap", v, err)
		}
	}
	return f, nil
}

func gridFromAttrs(tok html.Token, attrErr attrErrFunc) (*layout.Grid, error) {
	g := &layout.Grid{Columns: 1}
	if v := attr(tok, "grid-columns"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return nil, attrErr("grid-columns", v, fmt.Errorf("want a positive integer"))
		}
		g.Columns = n
	}
	if v := attr(tok, "grid-rows"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return nil, attrErr("grid-rows", v, fmt.Errorf("want a non-negative integer"))
		}
		g.Rows = n
	}
	var err error
	if v := attr(tok, "column-gap"); v != "" {
		if g.ColumnGap, err = layout.ParseLength(v); err != nil {
			return nil, attrErr("column-gap", v, err)
		}
	}
	if v := attr(tok, "row-gap"); v != "" {
		if g.RowGap, err = layout.ParseLength(v); err != nil {
			return nil, attrErr("row-gap", v, err)
		}
	}
	return g, nil
}

// parseRatio accepts "1.5" or "16/9".
func parseRatio(s string) (float64, error) {
	num, den, found := strings.Cut(s, "/")
	w, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("want a number or w/h")
	}
	if !found {
		if w < 0 {
			return 0, fmt.Errorf("ratio cannot be negative")
		}
		return w, nil
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil || h <= 0 || w < 0 {
		return 0, fmt.Errorf("want w/h with positive h")
	}
	return w / h, nil
}

// parsePixels accepts a bare number or a px dimension.
func parsePixels(s string) (float64, error) {
	l, err := layout.ParseLength(s)
	if err != nil {
		return 0, err
	}
	switch v := l.(type) {
	case layout.Number:
		return float64(v), nil
	case layout.Dimension:
		if v.Unit == layout.UnitPixels {
			return v.Amount, nil
		}
	}
	return 0, fmt.Errorf("want a pixel value")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
