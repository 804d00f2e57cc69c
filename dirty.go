package trellis

// dirtyFlags tracks stale layout output on a node.
//
// dirtyLayout and dirtyPosition belong to the node itself. The child bits
// are traversal hints: they are set on every ancestor of a dirty node so the
// passes can find it without re-running the clean nodes in between.
type dirtyFlags uint8

const (
	dirtyLayout dirtyFlags = 1 << iota
	dirtyPosition
	dirtyChildLayout
	dirtyChildPosition
)

const dirtyAll = dirtyLayout | dirtyPosition | dirtyChildLayout | dirtyChildPosition

// markLayoutDirty marks n as needing a new size and placement.
//
// Free nodes (absolute, fixed) stop there. A flow node notifies its parent:
// a fit-sizing parent is marked the same way, recursively; a fixed-size
// parent is marked dirty so it re-runs its children pass, but the mark does
// not travel further.
func (n *Node) markLayoutDirty() {
	n.flags |= dirtyLayout | dirtyPosition
	n.bubbleHints(dirtyChildLayout | dirtyChildPosition)
	if n.position.IsFree() {
		return
	}
	n.notifyParent()
}

// notifyParent tells n's parent that one of its flow children changed.
func (n *Node) notifyParent() {
	p := n.Parent
	if p == nil {
		return
	}
	if p.fit[axisX] || p.fit[axisY] {
		p.markLayoutDirty()
		return
	}
	p.flags |= dirtyLayout | dirtyPosition
}

// markPositionDirty marks n as needing new coordinates only. Sizes are
// untouched and no ancestor is marked dirty.
func (n *Node) markPositionDirty() {
	n.flags |= dirtyPosition
	n.bubbleHints(dirtyChildPosition)
}

// bubbleHints sets the hint bits on every ancestor, stopping at the first
// ancestor that already carries them.
func (n *Node) bubbleHints(h dirtyFlags) {
	for p := n.Parent; p != nil && p.flags&h != h; p = p.Parent {
		p.flags |= h
	}
}

// markSubtreeDirty sets every flag on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.flags |= dirtyAll
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// MarkDirty forces the node to be re-measured and re-placed on the next
// update, with the same propagation as any layout property change.
func (n *Node) MarkDirty() {
	n.markLayoutDirty()
}

// IsLayoutDirty reports whether the node's size is stale.
func (n *Node) IsLayoutDirty() bool {
	return n.flags&dirtyLayout != 0
}

// IsPositionDirty reports whether the node's coordinates are stale.
func (n *Node) IsPositionDirty() bool {
	return n.flags&dirtyPosition != 0
}

// needsLayout reports whether n or a descendant is layout-dirty.
func (n *Node) needsLayout() bool {
	return n.flags&(dirtyLayout|dirtyChildLayout) != 0
}

// needsPosition reports whether n or a descendant is position-dirty.
func (n *Node) needsPosition() bool {
	return n.flags&(dirtyPosition|dirtyChildPosition) != 0
}

// needsArrange reports whether a child must re-run its own children pass
// after its parent sized it.
func (n *Node) needsArrange() bool {
	return n.flags&dirtyLayout != 0 || n.resized || n.measured
}
