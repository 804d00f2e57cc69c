package trellis

// Vec2 is a 2D vector used for offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Size returns the rectangle's width and height as a Vec2.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width, r.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Inset returns r shrunk by the given edges. Width and height never go
// below zero.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  nonNegative(r.Width - e.Horizontal()),
		Height: nonNegative(r.Height - e.Vertical()),
	}
}

// Outset returns r grown outward by the given edges.
func (r Rect) Outset(e Edges) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  nonNegative(r.Width + e.Horizontal()),
		Height: nonNegative(r.Height + e.Vertical()),
	}
}

// NodeKind selects how a node lays out its in-flow children.
type NodeKind uint8

const (
	KindLeaf   NodeKind = iota // content measured by a Measurer; children overlaid at the origin
	KindFlex                   // flexbox container
	KindCustom                 // children placed by a user Arranger
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindFlex:
		return "flex"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// PositionMode selects how a node's final coordinates are resolved.
type PositionMode uint8

const (
	PositionStatic   PositionMode = iota // placed entirely by the parent's layout
	PositionRelative                     // layout offset plus anchors, drag and scroll
	PositionAbsolute                     // anchored in the parent's content box, out of flow
	PositionFixed                        // anchored in the viewport, out of flow
	PositionSticky                       // relative, then clamped against the viewport
)

// IsFree reports whether the mode removes a node from its parent's flow.
func (m PositionMode) IsFree() bool {
	return m == PositionAbsolute || m == PositionFixed
}

// Direction is the main axis of a flex container.
type Direction uint8

const (
	Row    Direction = iota // main axis horizontal
	Column                  // main axis vertical
)

// MainAlignment distributes children along the main axis of a line.
type MainAlignment uint8

const (
	MainStart MainAlignment = iota
	MainCenter
	MainEnd
	MainSpaceEvenly
	MainSpaceBetween
)

// CrossAlignment places a child within its line on the cross axis.
// CrossAuto is only meaningful on a child and defers to its container.
type CrossAlignment uint8

const (
	CrossAuto CrossAlignment = iota
	CrossStart
	CrossCenter
	CrossEnd
	CrossStretch
)

// CrossContentAlignment distributes lines along the cross axis of a
// multi-line container.
type CrossContentAlignment uint8

const (
	ContentStart CrossContentAlignment = iota
	ContentCenter
	ContentEnd
	ContentSpaceEvenly
	ContentSpaceBetween
	ContentStretch
)

// BoxSizing selects which box the width and height dimensions describe.
type BoxSizing uint8

const (
	BoxBorder  BoxSizing = iota // dimensions describe the border box (bounds)
	BoxContent                  // dimensions describe the content box (inner)
)

// StickyEdges is a bitmask of the viewport edges a sticky node clings to.
type StickyEdges uint8

const (
	StickyLeft StickyEdges = 1 << iota
	StickyTop
	StickyRight
	StickyBottom
)
