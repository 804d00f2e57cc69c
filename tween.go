package trellis

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 layout values on a Node simultaneously.
// Create one via the convenience constructors (TweenSize, TweenDragOffset,
// TweenScrollOffset, TweenAnchors) and call Update(dt) each frame, before
// Tree.Update. Values are written through the node's setters so the right
// dirty flags are raised. If the target node is disposed, the group stops
// immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	values [4]float64
	count  int
	apply  func(v *[4]float64)
	target *Node
	Done   bool
}

func newTweenGroup(node *Node, from, to []float64, duration float32, fn ease.TweenFunc, apply func(v *[4]float64)) *TweenGroup {
	g := &TweenGroup{count: len(from), target: node, apply: apply}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
		g.values[i] = from[i]
	}
	return g
}

// Update advances all tweens by dt seconds and writes the values to the
// target node. If the target node has been disposed, Done is set to true and
// no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(&g.values)
}

// Reset rewinds every tween to its start so the group can play again.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// TweenSize animates the node's pixel width and height to the given values,
// measured on the same box SetSize uses. It starts from the resolved size,
// so a percent dimension becomes pixels. Size changes dirty layout, so the
// tree re-runs the sizing pass while this plays.
func TweenSize(node *Node, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := []float64{node.bounds.Width, node.bounds.Height}
	if node.boxSizing == BoxContent {
		from[0], from[1] = node.inner.Width, node.inner.Height
	}
	return newTweenGroup(node, from, []float64{toW, toH}, duration, fn, func(v *[4]float64) {
		node.SetSize(Px(v[0]), Px(v[1]))
	})
}

// TweenDragOffset animates the node's drag offset. Only positions are
// recomputed while it plays.
func TweenDragOffset(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := []float64{node.dragOffset.X, node.dragOffset.Y}
	return newTweenGroup(node, from, []float64{toX, toY}, duration, fn, func(v *[4]float64) {
		node.SetDragOffset(v[0], v[1])
	})
}

// TweenScrollOffset animates the scroll offset of a container.
func TweenScrollOffset(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := []float64{node.scrollOffset.X, node.scrollOffset.Y}
	return newTweenGroup(node, from, []float64{toX, toY}, duration, fn, func(v *[4]float64) {
		node.SetScrollOffset(v[0], v[1])
	})
}

// TweenAnchors animates the pixel and alignment parts of both anchors. The
// percent parts are kept as they are.
func TweenAnchors(node *Node, toX, toY Anchor, duration float32, fn ease.TweenFunc) *TweenGroup {
	ax, ay := node.anchor[axisX], node.anchor[axisY]
	from := []float64{ax.Pixels, ay.Pixels, ax.Alignment, ay.Alignment}
	to := []float64{toX.Pixels, toY.Pixels, toX.Alignment, toY.Alignment}
	return newTweenGroup(node, from, to, duration, fn, func(v *[4]float64) {
		node.SetAnchors(
			Anchor{Pixels: v[0], Percent: ax.Percent, Alignment: v[2]},
			Anchor{Pixels: v[1], Percent: ay.Percent, Alignment: v[3]},
		)
	})
}
