package trellis

import "testing"

// flexFixture builds a w x h flex container under a fresh tree's root.
func flexFixture(dir Direction, w, h float64) (*Tree, *Node) {
	tr := newTestTree(1000, 1000)
	c := NewFlex("container", dir)
	c.SetSize(Px(w), Px(h))
	tr.Root().AddChild(c)
	return tr, c
}

// --- Wrapping ---

func TestWrapStartsNewLineWhenGapOverflows(t *testing.T) {
	tr, row := flexFixture(Row, 140, 100)
	row.SetWrap(true)
	row.SetGap(10)
	a, b, c := sizedLeaf("a", 60, 20), sizedLeaf("b", 60, 20), sizedLeaf("c", 60, 20)
	row.AddChild(a)
	row.AddChild(b)
	row.AddChild(c)
	tr.Update()

	lines := row.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if len(lines[0].Nodes) != 2 || len(lines[1].Nodes) != 1 {
		t.Errorf("line sizes = %d, %d, want 2, 1", len(lines[0].Nodes), len(lines[1].Nodes))
	}
	assertFloat(t, "line 0 main", lines[0].MainSize, 130)
	assertRect(t, "a", a.Bounds(), Rect{0, 0, 60, 20})
	assertRect(t, "b", b.Bounds(), Rect{70, 0, 60, 20})
	assertRect(t, "c", c.Bounds(), Rect{0, 20, 60, 20})
}

func TestNoWrapKeepsSingleLine(t *testing.T) {
	tr, row := flexFixture(Row, 140, 100)
	row.SetGap(10)
	for _, name := range []string{"a", "b", "c"} {
		l := sizedLeaf(name, 60, 20)
		l.SetFlexShrink(0)
		row.AddChild(l)
	}
	tr.Update()
	if len(row.Lines()) != 1 {
		t.Errorf("lines = %d, want 1", len(row.Lines()))
	}
}

func TestWrapLineGap(t *testing.T) {
	tr, row := flexFixture(Row, 100, 100)
	row.SetWrap(true)
	row.SetGaps(0, 5)
	a, b := sizedLeaf("a", 80, 20), sizedLeaf("b", 80, 30)
	row.AddChild(a)
	row.AddChild(b)
	tr.Update()
	assertFloat(t, "b y", b.Bounds().Y, 25)
	if got := row.Lines()[1].CrossStart; !approxEqual(got, 25) {
		t.Errorf("line 1 CrossStart = %v, want 25", got)
	}
}

func TestColumnWrap(t *testing.T) {
	tr, col := flexFixture(Column, 100, 50)
	col.SetWrap(true)
	a, b := sizedLeaf("a", 30, 30), sizedLeaf("b", 40, 30)
	col.AddChild(a)
	col.AddChild(b)
	tr.Update()
	assertRect(t, "a", a.Bounds(), Rect{0, 0, 30, 30})
	assertRect(t, "b", b.Bounds(), Rect{30, 0, 40, 30})
}

// --- Grow and shrink ---

func TestGrowDistributesByFactor(t *testing.T) {
	tr, row := flexFixture(Row, 400, 50)
	grows := []float64{1, 1, 2}
	kids := make([]*Node, 3)
	for i, g := range grows {
		kids[i] = sizedLeaf("k", 100, 50)
		kids[i].SetFlexGrow(g)
		row.AddChild(kids[i])
	}
	tr.Update()

	want := []float64{125, 125, 150}
	sum := 0.0
	for i, k := range kids {
		assertFloat(t, "width", k.ResolvedWidth(), want[i])
		sum += k.ResolvedWidth()
	}
	if sum != 400 {
		t.Errorf("sum = %v, want exactly 400", sum)
	}
	assertFloat(t, "k2 x", kids[2].Bounds().X, 250)
}

func TestGrowRespectsMax(t *testing.T) {
	tr, row := flexFixture(Row, 400, 50)
	a, b := sizedLeaf("a", 100, 50), sizedLeaf("b", 100, 50)
	a.SetFlexGrow(1)
	a.SetMaxWidth(Px(120))
	b.SetFlexGrow(1)
	row.AddChild(a)
	row.AddChild(b)
	tr.Update()
	assertFloat(t, "a", a.ResolvedWidth(), 120)
	assertFloat(t, "b", b.ResolvedWidth(), 280)
}

func TestShrinkClampsAtMin(t *testing.T) {
	tr, row := flexFixture(Row, 150, 50)
	a, b := sizedLeaf("a", 100, 50), sizedLeaf("b", 100, 50)
	a.SetMinWidth(Px(80))
	b.SetMinWidth(Px(10))
	row.AddChild(a)
	row.AddChild(b)
	tr.Update()
	assertFloat(t, "a", a.ResolvedWidth(), 80)
	assertFloat(t, "b", b.ResolvedWidth(), 70)
}

func TestShrinkZeroFactorKeepsSize(t *testing.T) {
	tr, row := flexFixture(Row, 150, 50)
	a, b := sizedLeaf("a", 100, 50), sizedLeaf("b", 100, 50)
	a.SetFlexShrink(0)
	row.AddChild(a)
	row.AddChild(b)
	tr.Update()
	assertFloat(t, "a", a.ResolvedWidth(), 100)
	assertFloat(t, "b", b.ResolvedWidth(), 50)
}

func TestGrowColumn(t *testing.T) {
	tr, col := flexFixture(Column, 50, 300)
	header := sizedLeaf("header", 50, 40)
	body := sizedLeaf("body", 50, 0)
	body.SetFlexGrow(1)
	col.AddChild(header)
	col.AddChild(body)
	tr.Update()
	assertRect(t, "body", body.Bounds(), Rect{0, 40, 50, 260})
}

func TestDistributeSingleSweep(t *testing.T) {
	tests := []struct {
		name     string
		factors  []float64
		caps     []float64
		amount   float64
		want     []float64
		leftover float64
	}{
		{"proportional", []float64{1, 1, 2}, []float64{1e9, 1e9, 1e9}, 100, []float64{25, 25, 50}, 0},
		{"one pinned", []float64{1, 1}, []float64{20, 90}, 50, []float64{20, 30}, 0},
		{"all pinned", []float64{1, 1}, []float64{5, 10}, 50, []float64{5, 10}, 35},
		{"pinned last in order", []float64{1, 3}, []float64{100, 6}, 40, []float64{34, 6}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands := make([]flexCandidate, len(tt.factors))
			for i := range cands {
				cands[i] = flexCandidate{node: &Node{ID: uint32(i)}, factor: tt.factors[i], capacity: tt.caps[i]}
			}
			left := distribute(cands, tt.amount)
			assertFloat(t, "leftover", left, tt.leftover)
			for _, c := range cands {
				assertFloat(t, "given", c.given, tt.want[c.node.ID])
			}
		})
	}
}

// --- Alignment ---

func TestSpacing(t *testing.T) {
	tests := []struct {
		name        string
		mode        spaceMode
		available   float64
		content     float64
		count       int
		gap         float64
		wantStart   float64
		wantBetween float64
	}{
		{"start", spaceStart, 100, 40, 2, 5, 0, 5},
		{"center", spaceCenter, 100, 40, 2, 10, 25, 10},
		{"end", spaceEnd, 100, 40, 2, 0, 60, 0},
		{"between single centers", spaceBetween, 100, 20, 1, 0, 40, 0},
		{"between many", spaceBetween, 120, 60, 3, 0, 0, 30},
		{"between narrower than gap", spaceBetween, 100, 95, 2, 10, 0, 5},
		{"between overflow overlaps", spaceBetween, 50, 60, 3, 4, 0, -5},
		{"evenly", spaceEvenly, 100, 40, 2, 0, 20, 20},
		{"evenly narrower than gap", spaceEvenly, 100, 90, 2, 10, 10.0 / 3, 10.0 / 3},
		{"no items", spaceCenter, 100, 0, 0, 3, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, between := spacing(tt.mode, tt.available, tt.content, tt.count, tt.gap)
			assertFloat(t, "start", start, tt.wantStart)
			assertFloat(t, "between", between, tt.wantBetween)
		})
	}
}

func TestMainAlignment(t *testing.T) {
	tests := []struct {
		align MainAlignment
		gap   float64
		want  [2]float64
	}{
		{MainStart, 10, [2]float64{0, 60}},
		{MainCenter, 10, [2]float64{95, 155}},
		{MainEnd, 10, [2]float64{190, 250}},
		{MainSpaceBetween, 0, [2]float64{0, 250}},
		{MainSpaceEvenly, 0, [2]float64{200.0 / 3, 50 + 400.0/3}},
	}
	for _, tt := range tests {
		tr, row := flexFixture(Row, 300, 50)
		row.SetMainAlignment(tt.align)
		row.SetGap(tt.gap)
		a, b := sizedLeaf("a", 50, 50), sizedLeaf("b", 50, 50)
		row.AddChild(a)
		row.AddChild(b)
		tr.Update()
		assertFloat(t, "a x", a.Bounds().X, tt.want[0])
		assertFloat(t, "b x", b.Bounds().X, tt.want[1])
	}
}

func TestSpaceBetweenSingleChildCenters(t *testing.T) {
	tr, row := flexFixture(Row, 300, 50)
	row.SetMainAlignment(MainSpaceBetween)
	a := sizedLeaf("a", 100, 50)
	row.AddChild(a)
	tr.Update()
	assertFloat(t, "a x", a.Bounds().X, 100)
}

func TestCrossAlignment(t *testing.T) {
	tests := []struct {
		align CrossAlignment
		wantY float64
		wantH float64
	}{
		{CrossStart, 0, 20},
		{CrossCenter, 40, 20},
		{CrossEnd, 80, 20},
		{CrossStretch, 0, 100},
	}
	for _, tt := range tests {
		tr, row := flexFixture(Row, 300, 100)
		row.SetCrossAlignment(tt.align)
		a := sizedLeaf("a", 50, 20)
		row.AddChild(a)
		tr.Update()
		assertFloat(t, tt.align.String()+" y", a.Bounds().Y, tt.wantY)
		assertFloat(t, tt.align.String()+" height", a.ResolvedHeight(), tt.wantH)
	}
}

func TestAlignSelfOverridesContainer(t *testing.T) {
	tr, row := flexFixture(Row, 300, 100)
	row.SetCrossAlignment(CrossStretch)
	a, b := sizedLeaf("a", 50, 20), sizedLeaf("b", 50, 20)
	b.SetAlignSelf(CrossEnd)
	row.AddChild(a)
	row.AddChild(b)
	tr.Update()
	assertFloat(t, "a height", a.ResolvedHeight(), 100)
	assertRect(t, "b", b.Bounds(), Rect{50, 80, 50, 20})
}

func TestStretchBoundedByMax(t *testing.T) {
	tr, col := flexFixture(Column, 200, 100)
	col.SetCrossAlignment(CrossStretch)
	col.SetPadding(EdgeAll(10))
	a := sizedLeaf("a", 20, 20)
	a.SetMargin(EdgeSymmetric(0, 5))
	b := sizedLeaf("b", 20, 20)
	b.SetMaxWidth(Px(60))
	col.AddChild(a)
	col.AddChild(b)
	tr.Update()
	assertFloat(t, "a width", a.ResolvedWidth(), 170)
	assertFloat(t, "b width", b.ResolvedWidth(), 60)
}

func TestColumnStretchRemeasuresHeight(t *testing.T) {
	tr, col := flexFixture(Column, 200, 400)
	col.SetCrossAlignment(CrossStretch)
	text := NewLeaf("text")
	text.SetWidth(Px(50))
	text.SetFitHeight(true)
	// 1000 square px of text: narrower means taller.
	text.SetMeasurer(MeasurerFunc(func(maxW, _ float64) (float64, float64) {
		return maxW, 1000 / maxW
	}))
	col.AddChild(text)
	tr.Update()
	assertFloat(t, "width", text.ResolvedWidth(), 200)
	assertFloat(t, "height", text.ResolvedHeight(), 5)
}

func TestFitCrossAxisStretchesToLine(t *testing.T) {
	tr, row := flexFixture(Row, 300, 100)
	label := NewLeaf("label")
	label.SetMeasurer(FixedContent{X: 50, Y: 20})
	label.SetFitWidth(true)
	label.SetFitHeight(true)
	tall := sizedLeaf("tall", 50, 80)
	row.AddChild(label)
	row.AddChild(tall)
	tr.Update()
	assertRect(t, "label", label.Bounds(), Rect{0, 0, 50, 100})
	assertFloat(t, "tall height", tall.ResolvedHeight(), 80)
}

func TestSpaceBetweenNarrowerThanGap(t *testing.T) {
	tr, row := flexFixture(Row, 100, 50)
	row.SetMainAlignment(MainSpaceBetween)
	row.SetGap(10)
	a, b := sizedLeaf("a", 45, 50), sizedLeaf("b", 50, 50)
	a.SetFlexShrink(0)
	b.SetFlexShrink(0)
	row.AddChild(a)
	row.AddChild(b)
	tr.Update()
	assertFloat(t, "a x", a.Bounds().X, 0)
	assertFloat(t, "b x", b.Bounds().X, 50)
}

func TestCrossContentAlignment(t *testing.T) {
	tests := []struct {
		align      CrossContentAlignment
		wantStarts [2]float64
		wantCross  [2]float64
	}{
		{ContentStart, [2]float64{0, 20}, [2]float64{20, 20}},
		{ContentCenter, [2]float64{30, 50}, [2]float64{20, 20}},
		{ContentEnd, [2]float64{60, 80}, [2]float64{20, 20}},
		{ContentSpaceBetween, [2]float64{0, 80}, [2]float64{20, 20}},
		{ContentSpaceEvenly, [2]float64{20, 60}, [2]float64{20, 20}},
		{ContentStretch, [2]float64{0, 50}, [2]float64{50, 50}},
	}
	for _, tt := range tests {
		tr, row := flexFixture(Row, 100, 100)
		row.SetWrap(true)
		row.SetCrossContentAlignment(tt.align)
		row.AddChild(sizedLeaf("a", 80, 20))
		row.AddChild(sizedLeaf("b", 80, 20))
		tr.Update()
		lines := row.Lines()
		if len(lines) != 2 {
			t.Fatalf("lines = %d, want 2", len(lines))
		}
		for i := range lines {
			assertFloat(t, "line start", lines[i].CrossStart, tt.wantStarts[i])
			assertFloat(t, "line cross", lines[i].CrossSize, tt.wantCross[i])
		}
	}
}

func TestMarginsOffsetItems(t *testing.T) {
	tr, row := flexFixture(Row, 300, 100)
	a := sizedLeaf("a", 50, 20)
	a.SetMargin(EdgeTRBL(4, 6, 0, 2))
	b := sizedLeaf("b", 50, 20)
	row.AddChild(a)
	row.AddChild(b)
	tr.Update()
	assertRect(t, "a outer", a.Outer(), Rect{0, 0, 58, 24})
	assertRect(t, "a bounds", a.Bounds(), Rect{2, 4, 50, 20})
	assertFloat(t, "b x", b.Bounds().X, 58)
}

func TestDirectionChangeRelaysOut(t *testing.T) {
	tr, c := flexFixture(Row, 300, 300)
	a, b := sizedLeaf("a", 50, 50), sizedLeaf("b", 50, 50)
	c.AddChild(a)
	c.AddChild(b)
	tr.Update()
	assertFloat(t, "row b x", b.Bounds().X, 50)

	c.SetDirection(Column)
	tr.Update()
	assertRect(t, "column b", b.Bounds(), Rect{0, 50, 50, 50})
}
