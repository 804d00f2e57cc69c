// Package trellis is a retained-mode layout engine for 2D game UIs.
//
// Trellis owns a tree of [Node] values, each carrying layout properties
// (size, min/max, margin, border, padding, flex settings, positioning), and
// computes four rectangles per node: outer (margin box), bounds (border box),
// padding box and inner (content box). Rendering, input and text shaping are
// left to the host; the [ebitenhost] package wires a tree into [Ebitengine].
//
// # Quick start
//
//	tree := trellis.NewTree()
//	tree.SetViewportSize(800, 600)
//
//	toolbar := trellis.NewFlex("toolbar", trellis.Row)
//	toolbar.SetSize(trellis.Pct(1), trellis.Px(48))
//	toolbar.SetGap(8)
//	toolbar.SetCrossAlignment(trellis.CrossCenter)
//	tree.Root().AddChild(toolbar)
//
//	for _, name := range []string{"open", "save", "quit"} {
//		b := trellis.NewLeaf(name)
//		b.SetSize(trellis.Px(64), trellis.Px(32))
//		toolbar.AddChild(b)
//	}
//
//	tree.Update() // once per frame
//	r := toolbar.ChildAt(1).Bounds()
//
// # Node kinds
//
// [NewLeaf] creates a node sized by its own dimensions or by a [Measurer]
// (shaped text, images). [NewFlex] creates a flexbox container with
// wrapping, grow/shrink, gaps and main, cross and cross-content alignment.
// [NewCustom] hands child placement to an [Arranger]; [Overlay] stacks
// children in one spot.
//
// # Dirty tracking
//
// Properties are changed through setters that raise dirty flags. Size
// changes dirty layout and notify the parent; a parent that sizes to fit
// its content passes the change up, a fixed-size parent absorbs it. Offset
// changes (anchors, drag, scroll) dirty positions only. [Tree.Update] runs
// each pass only where something changed.
//
// # Positioning
//
// Static nodes sit where their parent's layout put them. Relative and
// sticky nodes add anchors and a drag offset; sticky nodes then clamp to the
// viewport. Absolute nodes leave the flow and anchor in the parent's content
// box; fixed nodes anchor in the viewport.
//
// # Events
//
// Set an [EventSink] (the ecs module provides a [Donburi] one) or enable
// [Tree.SetQueueEvents] to receive [EventResized] and [EventMoved] for nodes
// whose bounds changed during an update.
//
// Layout properties can be animated with [TweenGroup] (via [gween]).
//
// [ebitenhost]: https://pkg.go.dev/github.com/phanxgames/trellis/ebitenhost
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package trellis
