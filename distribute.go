package trellis

import "sort"

// flexEpsilon is the smallest free space worth redistributing.
const flexEpsilon = 1e-9

// flexCandidate is a child taking part in one grow or shrink round.
type flexCandidate struct {
	node     *Node
	factor   float64
	capacity float64 // how far the child can move before hitting min or max
	given    float64
}

// distribute spreads amount over cands in proportion to their factors
// without moving any candidate past its capacity, and returns what could
// not be placed.
//
// Candidates are visited by ascending capacity per unit factor. A candidate
// whose share exceeds its capacity is pinned at its bound and drops out, so
// the remainder is re-split among the rest; once a candidate can absorb its
// share, every later one can too. One sweep therefore converges, and the
// last unpinned candidate takes exactly what is left, so no rounding drift
// accumulates.
func distribute(cands []flexCandidate, amount float64) float64 {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].capacity/cands[i].factor < cands[j].capacity/cands[j].factor
	})
	total := 0.0
	for _, c := range cands {
		total += c.factor
	}
	for i := range cands {
		if amount <= flexEpsilon || total <= 0 {
			break
		}
		c := &cands[i]
		share := amount * c.factor / total
		if share > c.capacity {
			share = c.capacity
		}
		c.given = share
		amount -= share
		total -= c.factor
	}
	return max(amount, 0)
}

// growShrink resolves the main-axis lengths of every line against mainLen.
// Spare space goes to children with a grow factor, up to their max; an
// overflow is taken from children with a shrink factor, down to their min.
func (n *Node) growShrink(main axis, mainLen float64) {
	if mainLen < 0 {
		return
	}
	for i := range n.lines {
		line := &n.lines[i]
		remaining := mainLen - line.MainSize
		switch {
		case remaining > flexEpsilon:
			n.flexLine(line, main, remaining, true)
		case remaining < -flexEpsilon:
			n.flexLine(line, main, -remaining, false)
		}
	}
}

func (n *Node) flexLine(line *FlexLine, main axis, amount float64, growing bool) {
	n.cands = n.cands[:0]
	for _, c := range line.Nodes {
		cur := c.bounds.size(main)
		lo, hi := c.limits(main, c.container.get(main))
		var factor, capacity float64
		if growing {
			factor, capacity = c.grow, hi-cur
		} else {
			factor, capacity = c.shrink, cur-lo
		}
		if factor <= 0 || capacity <= 0 {
			continue
		}
		n.cands = append(n.cands, flexCandidate{node: c, factor: factor, capacity: capacity})
	}
	if len(n.cands) == 0 {
		return
	}
	distribute(n.cands, amount)
	for _, cand := range n.cands {
		if cand.given == 0 {
			continue
		}
		cur := cand.node.bounds.size(main)
		if growing {
			cand.node.setBoundsSize(main, cur+cand.given)
		} else {
			cand.node.setBoundsSize(main, cur-cand.given)
		}
	}
	for i := range n.cands {
		n.cands[i].node = nil
	}
}
