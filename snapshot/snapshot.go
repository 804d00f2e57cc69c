// Package snapshot rasterizes a laid-out trellis tree to an image so layouts
// can be inspected without a running game.
//
// Each node paints its border box in a color picked by depth, strokes its
// content box, and optionally draws its name. Margins are shaded lightly.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/phanxgames/trellis"
)

// Options controls how a tree is drawn.
type Options struct {
	// Scale multiplies every coordinate. Zero means 1.
	Scale float64
	// Background fills the canvas first. Nil means white.
	Background color.Color
	// Labels draws each node's name at the top-left of its bounds.
	Labels bool
	// Margins shades the margin area around each node.
	Margins bool
}

var palette = []color.RGBA{
	{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff},
	{R: 0xf2, G: 0x8e, B: 0x2b, A: 0xff},
	{R: 0x59, G: 0xa1, B: 0x4f, A: 0xff},
	{R: 0xe1, G: 0x57, B: 0x59, A: 0xff},
	{R: 0x76, G: 0xb7, B: 0xb2, A: 0xff},
	{R: 0xb0, G: 0x7a, B: 0xa1, A: 0xff},
}

// Color returns the fill color used for nodes at depth.
func Color(depth int) color.RGBA {
	return palette[depth%len(palette)]
}

// Render draws the tree's current rectangles. Call Tree.Update first.
func Render(tree *trellis.Tree, opts Options) image.Image {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	vp := tree.Viewport()
	w := int(math.Ceil(vp.Width * scale))
	h := int(math.Ceil(vp.Height * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	if opts.Background != nil {
		dc.SetColor(opts.Background)
	} else {
		dc.SetRGB(1, 1, 1)
	}
	dc.Clear()
	dc.Scale(scale, scale)
	dc.Translate(-vp.X, -vp.Y)
	dc.SetLineWidth(1 / scale)

	drawNode(dc, tree.Root(), 0, opts)
	return dc.Image()
}

func drawNode(dc *gg.Context, n *trellis.Node, depth int, opts Options) {
	c := Color(depth)
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255

	if opts.Margins {
		outer, bounds := n.Outer(), n.Bounds()
		if outer != bounds {
			dc.SetRGBA(r, g, b, 0.08)
			fillRect(dc, outer)
		}
	}

	bounds := n.Bounds()
	dc.SetRGBA(r, g, b, 0.35)
	fillRect(dc, bounds)
	dc.SetRGBA(r, g, b, 1)
	strokeRect(dc, bounds)

	if inner := n.Inner(); inner != bounds {
		dc.SetRGBA(r, g, b, 0.6)
		strokeRect(dc, inner)
	}

	if opts.Labels && n.Name != "" {
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(n.Name, bounds.X+2, bounds.Y+2, 0, 1)
	}

	for _, child := range n.Children() {
		drawNode(dc, child, depth+1, opts)
	}
}

func fillRect(dc *gg.Context, r trellis.Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	dc.Fill()
}

func strokeRect(dc *gg.Context, r trellis.Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	dc.DrawRectangle(r.X+0.5, r.Y+0.5, r.Width-1, r.Height-1)
	dc.Stroke()
}

// Encode renders the tree and writes it to w as PNG.
func Encode(w io.Writer, tree *trellis.Tree, opts Options) error {
	img := Render(tree, opts)
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// SavePNG renders the tree and writes it to path.
func SavePNG(path string, tree *trellis.Tree, opts Options) error {
	if err := gg.SavePNG(path, Render(tree, opts)); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}
