package paper

import "slices"

// sortCells reorders the viewport's tagged children so that their cells' z
// values are non-decreasing. Children without a ModelID keep their slots.
// Equal z values keep their current relative order.
func (p *Paper) sortCells() {
	children := p.viewport.children
	p.slotBuf = p.slotBuf[:0]
	p.sortBuf = p.sortBuf[:0]
	for i, n := range children {
		if n.ModelID == "" {
			continue
		}
		p.slotBuf = append(p.slotBuf, i)
		p.sortBuf = append(p.sortBuf, n)
	}

	z := make(map[string]float64, len(p.sortBuf))
	for _, n := range p.sortBuf {
		z[n.ModelID] = cellZ(p.graph.Cell(n.ModelID))
	}
	slices.SortStableFunc(p.sortBuf, func(a, b *Node) int {
		return compareZ(z[a.ModelID], z[b.ModelID])
	})

	for i, slot := range p.slotBuf {
		children[slot] = p.sortBuf[i]
	}
	// Drop references held by the reusable buffer.
	clear(p.sortBuf)
	logger().Debug("paper: views sorted", "count", len(p.slotBuf))
}
