package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/trellis"
	"github.com/phanxgames/trellis/snapshot"
)

// drawDebug strokes each node's bounds in its depth color, its content box
// at half alpha, and labels the node under the cursor.
func (h *Host) drawDebug(screen *ebiten.Image) {
	count := 0
	var walk func(n *trellis.Node, depth int)
	walk = func(n *trellis.Node, depth int) {
		count++
		c := snapshot.Color(depth)
		strokeRect(screen, n.Bounds(), c)
		if inner := n.Inner(); inner != n.Bounds() {
			strokeRect(screen, inner, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x80})
		}
		for _, child := range n.Children() {
			walk(child, depth+1)
		}
	}
	walk(h.tree.Root(), 0)

	mx, my := ebiten.CursorPosition()
	label := fmt.Sprintf("nodes: %d", count)
	if hit := h.tree.HitTest(float64(mx), float64(my)); hit != nil {
		b := hit.Bounds()
		label += fmt.Sprintf("\n%s [%s] %gx%g at %g,%g", hit.Name, hit.Kind, b.Width, b.Height, b.X, b.Y)
	}
	y := 0
	if h.cfg.ShowFPS {
		y = 32
	}
	ebitenutil.DebugPrintAt(screen, label, 0, y)
}

func strokeRect(dst *ebiten.Image, r trellis.Rect, c color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.StrokeRect(dst, float32(r.X)+0.5, float32(r.Y)+0.5, float32(r.Width)-1, float32(r.Height)-1, 1, c, false)
}
