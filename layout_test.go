package trellis

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	if !approxEqual(got.X, want.X) || !approxEqual(got.Y, want.Y) ||
		!approxEqual(got.Width, want.Width) || !approxEqual(got.Height, want.Height) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

// newTestTree returns a tree with a w x h viewport at the origin.
func newTestTree(w, h float64) *Tree {
	tr := NewTree()
	tr.SetViewportSize(w, h)
	return tr
}

// newWrapTree returns a test tree whose root wraps, so each root line is
// only as tall as its children and a fit height is not stretched.
func newWrapTree(w, h float64) *Tree {
	tr := newTestTree(w, h)
	tr.Root().SetWrap(true)
	return tr
}

func sizedLeaf(name string, w, h float64) *Node {
	n := NewLeaf(name)
	n.SetSize(Px(w), Px(h))
	return n
}

// --- Orchestrator ---

func TestRootFillsViewport(t *testing.T) {
	tr := newTestTree(800, 600)
	tr.Update()
	assertRect(t, "root bounds", tr.Root().Bounds(), Rect{0, 0, 800, 600})
	assertRect(t, "root inner", tr.Root().Inner(), Rect{0, 0, 800, 600})
}

func TestViewportOriginOffsetsTree(t *testing.T) {
	tr := NewTree()
	tr.SetViewport(Rect{X: 10, Y: 20, Width: 100, Height: 50})
	a := sizedLeaf("a", 30, 10)
	tr.Root().AddChild(a)
	tr.Update()
	assertRect(t, "a bounds", a.Bounds(), Rect{10, 20, 30, 10})
}

func TestSetViewportDirtiesTree(t *testing.T) {
	tr := newTestTree(400, 300)
	half := NewLeaf("half")
	half.SetSize(Pct(0.5), Pct(0.5))
	tr.Root().AddChild(half)
	tr.Update()
	assertFloat(t, "width", half.ResolvedWidth(), 200)

	tr.SetViewportSize(800, 300)
	if !half.IsLayoutDirty() {
		t.Error("viewport change should dirty descendants")
	}
	tr.Update()
	assertFloat(t, "width", half.ResolvedWidth(), 400)
	assertFloat(t, "height", half.ResolvedHeight(), 150)
}

func TestFitContainerWrapsChildren(t *testing.T) {
	tr := newWrapTree(800, 600)
	box := NewFlex("box", Row)
	box.SetFitWidth(true)
	box.SetFitHeight(true)
	box.SetPadding(EdgeAll(5))
	box.SetGap(10)
	a := sizedLeaf("a", 30, 20)
	b := sizedLeaf("b", 40, 10)
	box.AddChild(a)
	box.AddChild(b)
	tr.Root().AddChild(box)
	tr.Update()

	assertRect(t, "box bounds", box.Bounds(), Rect{0, 0, 90, 30})
	assertRect(t, "a bounds", a.Bounds(), Rect{5, 5, 30, 20})
	assertRect(t, "b bounds", b.Bounds(), Rect{45, 5, 40, 10})
}

func TestFitContainerRespectsMax(t *testing.T) {
	tr := newTestTree(800, 600)
	box := NewFlex("box", Row)
	box.SetFitWidth(true)
	box.SetHeight(Px(20))
	box.SetMaxWidth(Px(50))
	box.AddChild(sizedLeaf("a", 40, 20))
	box.AddChild(sizedLeaf("b", 40, 20))
	tr.Root().AddChild(box)
	tr.Update()
	assertFloat(t, "box width", box.ResolvedWidth(), 50)
}

func TestNestedFitContainers(t *testing.T) {
	tr := newWrapTree(800, 600)
	outer := NewFlex("outer", Column)
	outer.SetFitWidth(true)
	outer.SetFitHeight(true)
	outer.SetPadding(EdgeAll(4))
	inner := NewFlex("inner", Row)
	inner.SetFitWidth(true)
	inner.SetFitHeight(true)
	inner.SetGap(2)
	inner.AddChild(sizedLeaf("a", 10, 10))
	inner.AddChild(sizedLeaf("b", 10, 12))
	outer.AddChild(inner)
	outer.AddChild(sizedLeaf("c", 50, 5))
	tr.Root().AddChild(outer)
	tr.Update()

	assertRect(t, "inner bounds", inner.Bounds(), Rect{4, 4, 50, 12})
	assertRect(t, "outer bounds", outer.Bounds(), Rect{0, 0, 58, 25})
}

func TestMeasurerFitLeaf(t *testing.T) {
	tr := newWrapTree(800, 600)
	label := NewLeaf("label")
	label.SetMeasurer(FixedContent{X: 50, Y: 16})
	label.SetFitWidth(true)
	label.SetFitHeight(true)
	label.SetPadding(EdgeAll(2))
	tr.Root().AddChild(label)
	tr.Update()
	assertRect(t, "label bounds", label.Bounds(), Rect{0, 0, 54, 20})
}

func TestMeasurerReceivesAvailableWidth(t *testing.T) {
	tr := newWrapTree(800, 600)
	var gotW float64
	text := NewLeaf("text")
	text.SetWidth(Px(120))
	text.SetFitHeight(true)
	text.SetMeasurer(MeasurerFunc(func(maxW, maxH float64) (float64, float64) {
		gotW = maxW
		// Wrap 300px of text into lines of maxW, 10px each.
		lines := math.Ceil(300 / maxW)
		return maxW, lines * 10
	}))
	tr.Root().AddChild(text)
	tr.Update()
	assertFloat(t, "measure width", gotW, 120)
	assertFloat(t, "height", text.ResolvedHeight(), 30)
}

func TestPercentSizesResolveAgainstParentInner(t *testing.T) {
	tr := newTestTree(800, 600)
	panel := NewFlex("panel", Row)
	panel.SetSize(Px(420), Px(220))
	panel.SetPadding(EdgeAll(10))
	child := NewLeaf("child")
	child.SetSize(Pct(0.5), PxPct(-20, 1))
	panel.AddChild(child)
	tr.Root().AddChild(panel)
	tr.Update()

	assertFloat(t, "width", child.ResolvedWidth(), 200)
	assertFloat(t, "height", child.ResolvedHeight(), 180)
	if got := child.AvailableSpace(); got != (Vec2{400, 200}) {
		t.Errorf("AvailableSpace = %v, want {400 200}", got)
	}
}

func TestNoNaNFromDegenerateInput(t *testing.T) {
	tr := newTestTree(0, 0)
	row := NewFlex("row", Row)
	row.SetSize(Pct(1), Pct(1))
	row.SetMainAlignment(MainSpaceBetween)
	row.SetCrossContentAlignment(ContentSpaceEvenly)
	row.SetWrap(true)
	a := NewLeaf("a")
	a.SetSize(Pct(math.NaN()), Px(math.Inf(1)))
	a.SetFlexGrow(1)
	row.AddChild(a)
	tr.Root().AddChild(row)
	tr.Update()

	tr.Root().Walk(func(n *Node) bool {
		for _, r := range []Rect{n.Outer(), n.Bounds(), n.PaddingBox(), n.Inner()} {
			for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%s has non-finite rect %+v", n.Name, r)
				}
			}
			if r.Width < 0 || r.Height < 0 {
				t.Fatalf("%s has negative size %+v", n.Name, r)
			}
		}
		return true
	})
}

func TestLeafOverlaysChildren(t *testing.T) {
	tr := newTestTree(800, 600)
	card := NewLeaf("card")
	card.SetSize(Px(100), Px(60))
	badge := sizedLeaf("badge", 20, 20)
	card.AddChild(badge)
	tr.Root().AddChild(card)
	tr.Update()
	assertRect(t, "badge bounds", badge.Bounds(), Rect{0, 0, 20, 20})
}

// --- Update gating ---

func TestUpdateSkipsCleanTree(t *testing.T) {
	tr := newTestTree(800, 600)
	tr.Root().AddChild(sizedLeaf("a", 10, 10))
	tr.Update()
	if tr.UpdateLayout() {
		t.Error("UpdateLayout on a clean tree should do nothing")
	}
	if tr.UpdatePositions() {
		t.Error("UpdatePositions on a clean tree should do nothing")
	}
}

func TestUpdateArrangesOnlyDirtySubtree(t *testing.T) {
	tr := newTestTree(800, 600)
	left := NewFlex("left", Column)
	left.SetSize(Px(200), Px(600))
	right := NewFlex("right", Column)
	right.SetSize(Px(200), Px(600))
	a := sizedLeaf("a", 10, 10)
	left.AddChild(a)
	right.AddChild(sizedLeaf("b", 10, 10))
	tr.Root().AddChild(left)
	tr.Root().AddChild(right)
	tr.Update()

	a.SetHeight(Px(40))
	tr.Update()
	// left re-runs its children pass, a is resized and arranged; root and
	// right stay clean.
	if tr.stats.arranged != 2 {
		t.Errorf("arranged = %d, want 2", tr.stats.arranged)
	}
	assertFloat(t, "a height", a.ResolvedHeight(), 40)
}
