package paper

// maxAncestorWalk bounds FindView's climb through the render tree.
const maxAncestorWalk = 1024

// FindView returns the view owning n or its nearest ancestor that carries
// one. Returns nil if n is nil, if the walk reaches the paper's root node,
// or if the owning view belongs to another paper.
func (p *Paper) FindView(n *Node) View {
	for depth := 0; n != nil && depth < maxAncestorWalk; depth++ {
		if n == p.root {
			return nil
		}
		if n.view != nil {
			if n.view.base().paper != p {
				return nil
			}
			return n.view
		}
		n = n.Parent
	}
	return nil
}

// FindViewByModel returns the view registered for the cell id, or nil.
func (p *Paper) FindViewByModel(id string) View {
	return p.views[id]
}

// FindViewByCell returns the view registered for cell, or nil.
func (p *Paper) FindViewByCell(cell Cell) View {
	if cell == nil {
		return nil
	}
	return p.views[cell.ID()]
}

// FindViewsFromPoint returns the element views (never links), in graph order,
// whose bounding box in paper coordinates contains pt.
func (p *Paper) FindViewsFromPoint(pt Vec2) []View {
	var views []View
	for _, v := range p.elementViews() {
		if transformRect(p.matrix, v.BoundingBox()).Contains(pt) {
			views = append(views, v)
		}
	}
	return views
}

// FindViewsInArea returns the element views (never links), in graph order,
// whose bounding box origin in paper coordinates lies inside r. Views that
// merely overlap r without their origin inside it are not returned.
func (p *Paper) FindViewsInArea(r Rect) []View {
	var views []View
	for _, v := range p.elementViews() {
		if r.Contains(transformRect(p.matrix, v.BoundingBox()).Origin()) {
			views = append(views, v)
		}
	}
	return views
}

func (p *Paper) elementViews() []View {
	cells := p.graph.Cells()
	views := make([]View, 0, len(cells))
	for _, c := range cells {
		if c.IsLink() {
			continue
		}
		if v := p.views[c.ID()]; v != nil {
			views = append(views, v)
		}
	}
	return views
}

// NodeAt returns the topmost visible, interactable node under the paper
// point pt, or nil when only blank canvas is there.
func (p *Paper) NodeAt(pt Vec2) *Node {
	local := p.ToLocalPoint(pt)
	children := p.viewport.children
	for i := len(children) - 1; i >= 0; i-- {
		if hit := nodeAt(children[i], Vec2{}, local); hit != nil {
			return hit
		}
	}
	return nil
}

// nodeAt searches n's subtree in reverse painter order: later children
// first, then n itself.
func nodeAt(n *Node, parentOffset, pt Vec2) *Node {
	if !n.Visible || !n.Interactable {
		return nil
	}
	off := Vec2{parentOffset.X + n.X, parentOffset.Y + n.Y}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := nodeAt(n.children[i], off, pt); hit != nil {
			return hit
		}
	}
	if n.containsLocal(pt.X-off.X, pt.Y-off.Y) {
		return n
	}
	return nil
}

// NodeBounds returns n's box in paper coordinates. n must be in the viewport
// subtree.
func (p *Paper) NodeBounds(n *Node) Rect {
	off := n.offsetIn(p.viewport)
	return transformRect(p.matrix, Rect{X: off.X, Y: off.Y, Width: n.Width, Height: n.Height})
}
