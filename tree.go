package trellis

import "time"

// Tree is the top-level object that owns the node tree and the viewport.
// The host calls Update once per frame after applying property changes.
type Tree struct {
	root     *Node
	viewport Rect
	debug    bool

	// Events
	sink        EventSink
	queueEvents bool
	events      []Event

	stats updateStats
}

// NewTree creates a tree whose root is a row flex container filling the
// viewport.
func NewTree() *Tree {
	root := NewFlex("root", Row)
	root.SetSize(Pct(1), Pct(1))
	return &Tree{root: root}
}

// NewTreeWithRoot creates a tree around an existing root node.
// Panics if root is nil or already has a parent.
func NewTreeWithRoot(root *Node) *Tree {
	if root == nil {
		panic("trellis: nil root")
	}
	if root.Parent != nil {
		panic("trellis: root already has a parent")
	}
	markSubtreeDirty(root)
	return &Tree{root: root}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Viewport returns the viewport rectangle.
func (t *Tree) Viewport() Rect {
	return t.viewport
}

// SetViewport sets the viewport the root and fixed nodes resolve against.
// Any change dirties the whole tree.
func (t *Tree) SetViewport(r Rect) {
	if t.viewport == r {
		return
	}
	t.viewport = r
	markSubtreeDirty(t.root)
}

// SetViewportSize is SetViewport with the origin at (0, 0).
func (t *Tree) SetViewportSize(w, h float64) {
	t.SetViewport(Rect{Width: w, Height: h})
}

// Update runs the sizing pass if any node is layout-dirty, then the position
// pass if any node is position-dirty, then delivers queued events to the
// sink.
func (t *Tree) Update() {
	t.stats = updateStats{}
	t.UpdateLayout()
	t.UpdatePositions()
	t.flushEvents()
	if t.debug {
		t.debugLog(t.stats)
	}
}

// UpdateLayout runs only the sizing pass. It reports whether anything was
// recomputed. Positions are stale until UpdatePositions runs.
func (t *Tree) UpdateLayout() bool {
	if !t.root.needsLayout() {
		return false
	}
	var t0 time.Time
	if t.debug {
		t0 = time.Now()
	}
	ctx := &layoutCtx{tree: t, viewport: t.viewport, stats: &t.stats}
	updateLayout(ctx, t.root)
	if t.debug {
		t.stats.layoutTime = time.Since(t0)
	}
	return true
}

// UpdatePositions runs only the position pass. It reports whether anything
// was recomputed.
func (t *Tree) UpdatePositions() bool {
	if !t.root.needsPosition() {
		return false
	}
	var t0 time.Time
	if t.debug {
		t0 = time.Now()
	}
	ctx := &positionCtx{tree: t, viewport: t.viewport, stats: &t.stats}
	updatePosition(ctx, t.root, false)
	if t.debug {
		t.stats.positionTime = time.Since(t0)
	}
	return true
}

// HitTest returns the deepest node under (x, y), or nil.
func (t *Tree) HitTest(x, y float64) *Node {
	return t.root.HitTest(x, y)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// per-update timing stats are logged to stderr.
func (t *Tree) SetDebugMode(enabled bool) {
	t.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Tree debug flag so that node
// operations (which lack a Tree pointer) can check it cheaply. Only valid
// with a single Tree; multiple Trees with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
