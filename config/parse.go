package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phanxgames/trellis"
)

// ParseDimension converts a TOML value to a Dimension. Numbers are pixels.
// Strings are sums of terms: "120", "12px", "50%", "100%-20". A nil value
// yields unset; "none" yields trellis.Unbounded.
func ParseDimension(raw any, unset trellis.Dimension) (trellis.Dimension, error) {
	switch v := raw.(type) {
	case nil:
		return unset, nil
	case int64:
		return trellis.Px(float64(v)), nil
	case float64:
		return trellis.Px(v), nil
	case string:
		s := strings.TrimSpace(v)
		switch s {
		case "":
			return unset, nil
		case "none":
			return trellis.Unbounded, nil
		}
		var d trellis.Dimension
		err := eachTerm(s, func(term string, sign float64) error {
			if p, ok := strings.CutSuffix(term, "%"); ok {
				f, err := strconv.ParseFloat(p, 64)
				if err != nil {
					return err
				}
				d.Percent += sign * f / 100
				return nil
			}
			f, err := strconv.ParseFloat(strings.TrimSuffix(term, "px"), 64)
			if err != nil {
				return err
			}
			d.Pixels += sign * f
			return nil
		})
		if err != nil {
			return trellis.Dimension{}, fmt.Errorf("%w %q: %v", ErrInvalidValue, v, err)
		}
		return d, nil
	default:
		return trellis.Dimension{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, raw)
	}
}

// ParseAnchor converts a TOML value to an Anchor. Terms are pixels,
// percents, or one of the keywords start, center and end, which set the
// alignment: "end-10" pins the node's end edge 10px inside the container.
func ParseAnchor(raw any) (trellis.Anchor, error) {
	switch v := raw.(type) {
	case nil:
		return trellis.AnchorStart, nil
	case int64:
		return trellis.AnchorPx(float64(v)), nil
	case float64:
		return trellis.AnchorPx(v), nil
	case string:
		var a trellis.Anchor
		err := eachTerm(strings.TrimSpace(v), func(term string, sign float64) error {
			switch term {
			case "start":
				return nil
			case "center":
				a.Alignment = 0.5
				return nil
			case "end":
				a.Alignment = 1
				return nil
			}
			if p, ok := strings.CutSuffix(term, "%"); ok {
				f, err := strconv.ParseFloat(p, 64)
				if err != nil {
					return err
				}
				a.Percent += sign * f / 100
				return nil
			}
			f, err := strconv.ParseFloat(strings.TrimSuffix(term, "px"), 64)
			if err != nil {
				return err
			}
			a.Pixels += sign * f
			return nil
		})
		if err != nil {
			return trellis.Anchor{}, fmt.Errorf("%w %q: %v", ErrInvalidValue, v, err)
		}
		return a, nil
	default:
		return trellis.Anchor{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, raw)
	}
}

// eachTerm splits s at top-level '+' and '-' signs and calls fn with each
// unsigned term and its sign. A leading sign applies to the first term.
func eachTerm(s string, fn func(term string, sign float64) error) error {
	if s == "" {
		return nil
	}
	sign := 1.0
	start := 0
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		start = 1
	}
	for i := start; i <= len(s); i++ {
		if i < len(s) && (s[i] != '+' && s[i] != '-' || i == start) {
			continue
		}
		// Exponents such as 1e-3 belong to the number.
		if i < len(s) && (s[i-1] == 'e' || s[i-1] == 'E') {
			continue
		}
		term := strings.TrimSpace(s[start:i])
		if term == "" {
			return fmt.Errorf("empty term at offset %d", start)
		}
		if err := fn(term, sign); err != nil {
			return err
		}
		if i < len(s) {
			sign = 1
			if s[i] == '-' {
				sign = -1
			}
		}
		start = i + 1
	}
	return nil
}

// ParseEdges expands CSS-style shorthand: one value for all sides, two for
// vertical and horizontal, three for top, horizontal and bottom, four for
// top, right, bottom and left.
func ParseEdges(vals []float64) (trellis.Edges, error) {
	switch len(vals) {
	case 0:
		return trellis.Edges{}, nil
	case 1:
		return trellis.EdgeAll(vals[0]), nil
	case 2:
		return trellis.EdgeSymmetric(vals[0], vals[1]), nil
	case 3:
		return trellis.EdgeTRBL(vals[0], vals[1], vals[2], vals[1]), nil
	case 4:
		return trellis.EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return trellis.Edges{}, fmt.Errorf("%w: edges take 1 to 4 values, got %d", ErrInvalidValue, len(vals))
	}
}

// lookup resolves s against names, returning def for the empty string.
func lookup[T comparable](s string, def T, names map[string]T) (T, error) {
	if s == "" {
		return def, nil
	}
	if v, ok := names[s]; ok {
		return v, nil
	}
	return def, fmt.Errorf("%w %q", ErrInvalidValue, s)
}

func parseDirection(s string) (trellis.Direction, error) {
	return lookup(s, trellis.Row, map[string]trellis.Direction{
		"row":    trellis.Row,
		"column": trellis.Column,
	})
}

func parseBoxSizing(s string) (trellis.BoxSizing, error) {
	return lookup(s, trellis.BoxBorder, map[string]trellis.BoxSizing{
		"border-box":  trellis.BoxBorder,
		"content-box": trellis.BoxContent,
	})
}

func parseMainAlignment(s string) (trellis.MainAlignment, error) {
	return lookup(s, trellis.MainStart, map[string]trellis.MainAlignment{
		"start":         trellis.MainStart,
		"center":        trellis.MainCenter,
		"end":           trellis.MainEnd,
		"space-evenly":  trellis.MainSpaceEvenly,
		"space-between": trellis.MainSpaceBetween,
	})
}

func parseCrossAlignment(s string, def trellis.CrossAlignment) (trellis.CrossAlignment, error) {
	return lookup(s, def, map[string]trellis.CrossAlignment{
		"auto":    trellis.CrossAuto,
		"start":   trellis.CrossStart,
		"center":  trellis.CrossCenter,
		"end":     trellis.CrossEnd,
		"stretch": trellis.CrossStretch,
	})
}

func parseContentAlignment(s string) (trellis.CrossContentAlignment, error) {
	return lookup(s, trellis.ContentStart, map[string]trellis.CrossContentAlignment{
		"start":         trellis.ContentStart,
		"center":        trellis.ContentCenter,
		"end":           trellis.ContentEnd,
		"space-evenly":  trellis.ContentSpaceEvenly,
		"space-between": trellis.ContentSpaceBetween,
		"stretch":       trellis.ContentStretch,
	})
}

func parsePosition(s string) (trellis.PositionMode, error) {
	return lookup(s, trellis.PositionStatic, map[string]trellis.PositionMode{
		"static":   trellis.PositionStatic,
		"relative": trellis.PositionRelative,
		"absolute": trellis.PositionAbsolute,
		"fixed":    trellis.PositionFixed,
		"sticky":   trellis.PositionSticky,
	})
}

func parseStickyEdges(names []string) (trellis.StickyEdges, error) {
	var edges trellis.StickyEdges
	for _, name := range names {
		e, err := lookup(name, 0, map[string]trellis.StickyEdges{
			"left":   trellis.StickyLeft,
			"top":    trellis.StickyTop,
			"right":  trellis.StickyRight,
			"bottom": trellis.StickyBottom,
		})
		if err != nil {
			return 0, err
		}
		edges |= e
	}
	return edges, nil
}
