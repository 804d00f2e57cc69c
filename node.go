package trellis

// nodeIDCounter is a plain counter; trellis trees are single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the unit of layout. A single flat struct is used for leaves and
// containers; Kind selects how in-flow children are arranged.
//
// Layout properties are changed through setter methods so that dirty flags
// stay correct. Computed rectangles are read through Outer, Bounds,
// PaddingBox and Inner after Tree.Update.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Metadata
	UserData any
	EntityID uint32

	// Sizing, indexed by axis (X = width, Y = height)
	size      [2]Dimension
	minSize   [2]Dimension
	maxSize   [2]Dimension
	fit       [2]bool
	boxSizing BoxSizing
	margin    Edges
	border    Edges
	padding   Edges

	// Flex item
	grow      float64
	shrink    float64
	alignSelf CrossAlignment

	// Flex container
	direction    Direction
	wrap         bool
	mainAlign    MainAlignment
	crossAlign   CrossAlignment
	contentAlign CrossContentAlignment
	gap          float64
	lineGap      float64

	// Collaborators
	measurer Measurer
	arranger Arranger

	// Positioning
	position     PositionMode
	anchor       [2]Anchor
	sticky       StickyEdges
	stickyInset  Edges
	dragOffset   Vec2
	scrollOffset Vec2

	// Computed
	outer        Rect
	bounds       Rect
	padded       Rect
	inner        Rect
	layoutOffset Vec2
	container    Vec2 // container lengths last used to resolve percentages
	reported     Rect // bounds last published as events
	flags        dirtyFlags
	resized      bool // bounds size changed since the last arrange
	measured     bool // children were sized in measure mode since the last arrange

	// Per-pass buffers owned by this container
	flow    []*Node
	free    []*Node
	lines   []FlexLine
	cands   []flexCandidate
	offsets []Vec2

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.maxSize = [2]Dimension{Unbounded, Unbounded}
	n.shrink = 1
	n.crossAlign = CrossStart
	n.flags = dirtyLayout | dirtyPosition
}

// NewLeaf creates a leaf node. Its content size comes from an optional
// Measurer; any children are overlaid at the content origin.
func NewLeaf(name string) *Node {
	n := &Node{Name: name, Kind: KindLeaf}
	nodeDefaults(n)
	return n
}

// NewFlex creates a flexbox container laying its children out along dir.
func NewFlex(name string, dir Direction) *Node {
	n := &Node{Name: name, Kind: KindFlex, direction: dir}
	nodeDefaults(n)
	return n
}

// NewCustom creates a container whose in-flow children are placed by arr.
// A nil arranger behaves like Overlay{}.
func NewCustom(name string, arr Arranger) *Node {
	n := &Node{Name: name, Kind: KindCustom, arranger: arr}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.checkAttach(child, "AddChild")
	n.attach(child, len(n.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	n.checkAttach(child, "AddChildAt")
	if child.Parent == n {
		n.SetChildIndex(child, min(index, len(n.children)-1))
		return
	}
	if index < 0 || index > len(n.children) {
		panic("trellis: child index out of range")
	}
	n.attach(child, index)
}

func (n *Node) checkAttach(child *Node, op string) {
	if child == nil {
		panic("trellis: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, op+" (parent)")
		debugCheckDisposed(child, op+" (child)")
	}
	if isAncestor(child, n) {
		panic("trellis: adding child would create a cycle")
	}
}

// attach detaches child from its current parent and inserts it at index.
func (n *Node) attach(child *Node, index int) {
	if old := child.Parent; old != nil {
		old.detach(child)
		if old == n && index > len(n.children) {
			index = len(n.children)
		}
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
	child.markLayoutDirty()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// detach removes child from n and dirties n.
func (n *Node) detach(child *Node) {
	n.removeChildByPtr(child)
	child.Parent = nil
	n.markLayoutDirty()
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("trellis: child's parent is not this node")
	}
	n.detach(child)
	markSubtreeDirty(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("trellis: child index out of range")
	}
	child := n.children[index]
	n.RemoveChild(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	if len(n.children) == 0 {
		return
	}
	for i, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
		n.children[i] = nil
	}
	n.children = n.children[:0]
	n.markLayoutDirty()
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings.
// Flow order changes, so the node is marked layout-dirty.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("trellis: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("trellis: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	n.markLayoutDirty()
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.measurer = nil
	n.arranger = nil
	n.UserData = nil
	n.flow = nil
	n.free = nil
	n.lines = nil
	n.cands = nil
	n.offsets = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// Walk calls fn for n and every descendant in depth-first pre-order.
// Returning false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}
