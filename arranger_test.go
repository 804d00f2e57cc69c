package trellis

import "testing"

// stackArranger places children top to bottom, left-aligned.
func stackArranger(spacing float64) Arranger {
	return ArrangerFunc(func(children []*Node, innerW, innerH float64, offsets []Vec2) (float64, float64) {
		y, w := 0.0, 0.0
		for i, c := range children {
			if i > 0 {
				y += spacing
			}
			offsets[i] = Vec2{0, y}
			y += c.Outer().Height
			w = max(w, c.Outer().Width)
		}
		return w, y
	})
}

func TestCustomArranger(t *testing.T) {
	tr := newWrapTree(800, 600)
	stack := NewCustom("stack", stackArranger(4))
	stack.SetFitWidth(true)
	stack.SetFitHeight(true)
	stack.SetPadding(EdgeAll(2))
	a, b := sizedLeaf("a", 30, 10), sizedLeaf("b", 50, 20)
	stack.AddChild(a)
	stack.AddChild(b)
	tr.Root().AddChild(stack)
	tr.Update()

	assertRect(t, "stack", stack.Bounds(), Rect{0, 0, 54, 38})
	assertRect(t, "b", b.Bounds(), Rect{2, 16, 50, 20})
}

func TestCustomArrangerSeesUnresolvedWhenFitting(t *testing.T) {
	tr := newTestTree(800, 600)
	var sawUnresolved bool
	n := NewCustom("n", ArrangerFunc(func(children []*Node, w, h float64, offsets []Vec2) (float64, float64) {
		if w < 0 {
			sawUnresolved = true
		}
		return 10, 10
	}))
	n.SetFitWidth(true)
	n.SetHeight(Px(10))
	n.AddChild(sizedLeaf("a", 5, 5))
	tr.Root().AddChild(n)
	tr.Update()
	if !sawUnresolved {
		t.Error("arranger should be called with a negative width while fitting")
	}
	assertFloat(t, "width", n.ResolvedWidth(), 10)
}

func TestNilArrangerOverlays(t *testing.T) {
	tr := newTestTree(800, 600)
	n := NewCustom("n", nil)
	n.SetSize(Px(100), Px(100))
	a := sizedLeaf("a", 10, 10)
	n.AddChild(a)
	tr.Root().AddChild(n)
	tr.Update()
	assertRect(t, "a", a.Bounds(), Rect{0, 0, 10, 10})
}

func TestOverlayAlignment(t *testing.T) {
	children := []*Node{NewLeaf("a"), NewLeaf("b")}
	children[0].setBoundsSize(axisX, 20)
	children[0].setBoundsSize(axisY, 10)
	children[1].setBoundsSize(axisX, 60)
	children[1].setBoundsSize(axisY, 30)
	offsets := make([]Vec2, 2)

	cw, ch := Overlay{Horizontal: 1, Vertical: 0.5}.Arrange(children, 100, 50, offsets)
	assertFloat(t, "content width", cw, 60)
	assertFloat(t, "content height", ch, 30)
	if offsets[0] != (Vec2{80, 20}) || offsets[1] != (Vec2{40, 10}) {
		t.Errorf("offsets = %v", offsets)
	}

	// Fitting: align inside the content size.
	Overlay{Horizontal: 1}.Arrange(children, -1, -1, offsets)
	if offsets[0] != (Vec2{40, 0}) {
		t.Errorf("fit offset = %v, want {40 0}", offsets[0])
	}
}

func TestArrangerChangeRelaysOut(t *testing.T) {
	tr := newTestTree(800, 600)
	n := NewCustom("n", nil)
	n.SetSize(Px(100), Px(100))
	a := sizedLeaf("a", 10, 10)
	n.AddChild(a)
	tr.Root().AddChild(n)
	tr.Update()

	n.SetArranger(Overlay{Horizontal: 1, Vertical: 1})
	tr.Update()
	assertRect(t, "a", a.Bounds(), Rect{90, 90, 10, 10})
}
