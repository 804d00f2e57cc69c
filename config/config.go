// Package config loads trellis node trees from TOML layout documents.
//
// A document has an optional [viewport] table and a [root] node table.
// Children are arrays of tables nested under their parent:
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[root]
//	kind = "flex"
//	direction = "column"
//	width = "100%"
//	height = "100%"
//
//	[[root.children]]
//	name = "toolbar"
//	kind = "flex"
//	width = "100%"
//	height = 48
//	gap = 8
//	cross_align = "center"
//
// Lengths are numbers (pixels) or strings combining pixel and percent terms
// such as "50%+10" or "100%-24". Anchors add the keywords start, center and
// end, as in "end-10".
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/trellis"
)

// ErrInvalidValue is wrapped by every error about a malformed property.
var ErrInvalidValue = errors.New("invalid value")

// Document is a parsed layout file.
type Document struct {
	Viewport Viewport `toml:"viewport"`
	Root     NodeSpec `toml:"root"`
}

// Viewport is the size the document was designed for. Hosts may override it.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// NodeSpec describes one node and its subtree. Zero values leave the
// node's defaults untouched.
type NodeSpec struct {
	Name string `toml:"name"`
	// leaf, flex or overlay
	Kind string `toml:"kind"`

	// Sizing
	Width     any    `toml:"width"`
	Height    any    `toml:"height"`
	MinWidth  any    `toml:"min_width"`
	MaxWidth  any    `toml:"max_width"`
	MinHeight any    `toml:"min_height"`
	MaxHeight any    `toml:"max_height"`
	FitWidth  bool   `toml:"fit_width"`
	FitHeight bool   `toml:"fit_height"`
	BoxSizing string `toml:"box_sizing"`
	// CSS shorthand: 1, 2, 3 or 4 values
	Margin  []float64 `toml:"margin"`
	Border  []float64 `toml:"border"`
	Padding []float64 `toml:"padding"`
	// Natural content size [width, height] for leaves
	Content []float64 `toml:"content"`

	// Flex item
	Grow      float64  `toml:"grow"`
	Shrink    *float64 `toml:"shrink"`
	AlignSelf string   `toml:"align_self"`

	// Flex container
	Direction    string  `toml:"direction"`
	Wrap         bool    `toml:"wrap"`
	MainAlign    string  `toml:"main_align"`
	CrossAlign   string  `toml:"cross_align"`
	ContentAlign string  `toml:"content_align"`
	Gap          float64 `toml:"gap"`
	LineGap      float64 `toml:"line_gap"`

	// Overlay alignment fractions [horizontal, vertical]
	OverlayAlign []float64 `toml:"overlay_align"`

	// Positioning
	Position    string    `toml:"position"`
	Left        any       `toml:"left"`
	Top         any       `toml:"top"`
	Sticky      []string  `toml:"sticky"`
	StickyInset []float64 `toml:"sticky_inset"`
	Scroll      []float64 `toml:"scroll"`

	Children []NodeSpec `toml:"children"`
}

// Parse decodes a TOML layout document. Unknown keys are rejected so typos
// surface as errors.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			keys := make([]string, len(serr.Errors))
			for i := range serr.Errors {
				keys[i] = strings.Join(serr.Errors[i].Key(), ".")
			}
			return nil, fmt.Errorf("unknown keys in layout: %s: %w", strings.Join(keys, ", "), err)
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse layout at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if doc.Root.Name == "" {
		doc.Root.Name = "root"
	}
	return &doc, nil
}

// ParseFile reads and parses a layout document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Load parses data and builds its node tree.
func Load(data []byte) (*trellis.Node, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// LoadFile reads path and builds its node tree.
func LoadFile(path string) (*trellis.Node, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// Build creates the document's node tree.
func (d *Document) Build() (*trellis.Node, error) {
	return d.Root.Build()
}

// Tree builds the node tree and wraps it in a trellis.Tree sized to the
// document viewport.
func (d *Document) Tree() (*trellis.Tree, error) {
	root, err := d.Build()
	if err != nil {
		return nil, err
	}
	tr := trellis.NewTreeWithRoot(root)
	tr.SetViewportSize(d.Viewport.Width, d.Viewport.Height)
	return tr, nil
}

// Build creates the node described by s and all its children.
func (s *NodeSpec) Build() (*trellis.Node, error) {
	n, err := s.newNode()
	if err != nil {
		return nil, s.wrap(err)
	}
	if err := s.apply(n); err != nil {
		return nil, s.wrap(err)
	}
	for i := range s.Children {
		child, err := s.Children[i].Build()
		if err != nil {
			return nil, s.wrap(err)
		}
		n.AddChild(child)
	}
	return n, nil
}

func (s *NodeSpec) wrap(err error) error {
	return fmt.Errorf("node %q: %w", s.Name, err)
}

func (s *NodeSpec) newNode() (*trellis.Node, error) {
	switch s.Kind {
	case "", "leaf":
		return trellis.NewLeaf(s.Name), nil
	case "flex":
		dir, err := parseDirection(s.Direction)
		if err != nil {
			return nil, err
		}
		return trellis.NewFlex(s.Name, dir), nil
	case "overlay":
		var o trellis.Overlay
		switch len(s.OverlayAlign) {
		case 0:
		case 2:
			o.Horizontal, o.Vertical = s.OverlayAlign[0], s.OverlayAlign[1]
		default:
			return nil, fmt.Errorf("%w: overlay_align needs 2 values, got %d", ErrInvalidValue, len(s.OverlayAlign))
		}
		return trellis.NewCustom(s.Name, o), nil
	default:
		return nil, fmt.Errorf("%w %q for kind", ErrInvalidValue, s.Kind)
	}
}

// apply copies every set property onto n.
func (s *NodeSpec) apply(n *trellis.Node) error {
	dims := []struct {
		field string
		raw   any
		set   func(trellis.Dimension)
		unset trellis.Dimension
	}{
		{"width", s.Width, n.SetWidth, trellis.Dimension{}},
		{"height", s.Height, n.SetHeight, trellis.Dimension{}},
		{"min_width", s.MinWidth, n.SetMinWidth, trellis.Dimension{}},
		{"max_width", s.MaxWidth, n.SetMaxWidth, trellis.Unbounded},
		{"min_height", s.MinHeight, n.SetMinHeight, trellis.Dimension{}},
		{"max_height", s.MaxHeight, n.SetMaxHeight, trellis.Unbounded},
	}
	for _, d := range dims {
		v, err := ParseDimension(d.raw, d.unset)
		if err != nil {
			return fmt.Errorf("%s: %w", d.field, err)
		}
		d.set(v)
	}
	n.SetFitWidth(s.FitWidth)
	n.SetFitHeight(s.FitHeight)

	bs, err := parseBoxSizing(s.BoxSizing)
	if err != nil {
		return fmt.Errorf("box_sizing: %w", err)
	}
	n.SetBoxSizing(bs)

	edges := []struct {
		field string
		vals  []float64
		set   func(trellis.Edges)
	}{
		{"margin", s.Margin, n.SetMargin},
		{"border", s.Border, n.SetBorder},
		{"padding", s.Padding, n.SetPadding},
	}
	for _, e := range edges {
		v, err := ParseEdges(e.vals)
		if err != nil {
			return fmt.Errorf("%s: %w", e.field, err)
		}
		e.set(v)
	}

	switch len(s.Content) {
	case 0:
	case 2:
		n.SetMeasurer(trellis.FixedContent{X: s.Content[0], Y: s.Content[1]})
	default:
		return fmt.Errorf("%w: content needs 2 values, got %d", ErrInvalidValue, len(s.Content))
	}

	n.SetFlexGrow(s.Grow)
	if s.Shrink != nil {
		n.SetFlexShrink(*s.Shrink)
	}
	if err := s.applyAlignment(n); err != nil {
		return err
	}
	n.SetWrap(s.Wrap)
	n.SetGaps(s.Gap, s.LineGap)

	return s.applyPosition(n)
}

func (s *NodeSpec) applyAlignment(n *trellis.Node) error {
	self, err := parseCrossAlignment(s.AlignSelf, trellis.CrossAuto)
	if err != nil {
		return fmt.Errorf("align_self: %w", err)
	}
	n.SetAlignSelf(self)
	main, err := parseMainAlignment(s.MainAlign)
	if err != nil {
		return fmt.Errorf("main_align: %w", err)
	}
	n.SetMainAlignment(main)
	cross, err := parseCrossAlignment(s.CrossAlign, trellis.CrossStart)
	if err != nil {
		return fmt.Errorf("cross_align: %w", err)
	}
	n.SetCrossAlignment(cross)
	content, err := parseContentAlignment(s.ContentAlign)
	if err != nil {
		return fmt.Errorf("content_align: %w", err)
	}
	n.SetCrossContentAlignment(content)
	return nil
}

func (s *NodeSpec) applyPosition(n *trellis.Node) error {
	mode, err := parsePosition(s.Position)
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	n.SetPositionMode(mode)
	left, err := ParseAnchor(s.Left)
	if err != nil {
		return fmt.Errorf("left: %w", err)
	}
	top, err := ParseAnchor(s.Top)
	if err != nil {
		return fmt.Errorf("top: %w", err)
	}
	n.SetAnchors(left, top)

	edges, err := parseStickyEdges(s.Sticky)
	if err != nil {
		return fmt.Errorf("sticky: %w", err)
	}
	inset, err := ParseEdges(s.StickyInset)
	if err != nil {
		return fmt.Errorf("sticky_inset: %w", err)
	}
	n.SetSticky(edges, inset)

	switch len(s.Scroll) {
	case 0:
	case 2:
		n.SetScrollOffset(s.Scroll[0], s.Scroll[1])
	default:
		return fmt.Errorf("%w: scroll needs 2 values, got %d", ErrInvalidValue, len(s.Scroll))
	}
	return nil
}
