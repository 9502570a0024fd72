package paper

import "math"

// ViewOptions is what a ViewConstructor receives.
type ViewOptions struct {
	Model       Cell
	Interactive bool
}

// ViewConstructor builds the view for a cell.
type ViewConstructor func(ViewOptions) View

// View is the live on-screen representation of one cell.
//
// Concrete views embed *CellView, which supplies the bookkeeping the paper
// relies on and no-op defaults for every method.
type View interface {
	Model() Cell
	Node() *Node
	Paper() *Paper
	Render()
	// BoundingBox returns the view's bounds in the paper's local (untransformed)
	// coordinate space.
	BoundingBox() Rect
	PointerDown(evt *PointerEvent, x, y float64)
	PointerMove(evt *PointerEvent, x, y float64)
	PointerUp(evt *PointerEvent)

	base() *CellView
}

// viewRemover is implemented by views that release resources when their cell
// is removed from the graph.
type viewRemover interface {
	Remove()
}

// CellView holds the state shared by every view: the model, the root render
// node tagged with the model's id and the owning paper.
type CellView struct {
	model       Cell
	node        *Node
	paper       *Paper
	Interactive bool
}

// NewCellView creates the base view for opts.Model with a fresh root node.
func NewCellView(opts ViewOptions) *CellView {
	node := NewNode(opts.Model.Type())
	node.ModelID = opts.Model.ID()
	return &CellView{
		model:       opts.Model,
		node:        node,
		Interactive: opts.Interactive,
	}
}

func (v *CellView) base() *CellView { return v }

// Model returns the cell this view renders.
func (v *CellView) Model() Cell { return v.model }

// Node returns the view's root render node.
func (v *CellView) Node() *Node { return v.node }

// Paper returns the paper the view is registered with, or nil.
func (v *CellView) Paper() *Paper { return v.paper }

// Render is a no-op.
func (v *CellView) Render() {}

// BoundingBox returns the root node's bounds.
func (v *CellView) BoundingBox() Rect { return v.node.Bounds() }

// PointerDown is a no-op.
func (v *CellView) PointerDown(*PointerEvent, float64, float64) {}

// PointerMove is a no-op.
func (v *CellView) PointerMove(*PointerEvent, float64, float64) {}

// PointerUp is a no-op.
func (v *CellView) PointerUp(*PointerEvent) {}

// --- Default element view ---

// ElementView renders an *Element as a filled box and, when interactive,
// drags it with the pointer.
type ElementView struct {
	*CellView
	body *Node

	dragging bool
	lastX    float64
	lastY    float64
}

// NewElementView is the default ViewConstructor for elements.
func NewElementView(opts ViewOptions) View {
	v := &ElementView{CellView: NewCellView(opts)}
	v.body = NewNode("body")
	v.body.Color = Color{R: 1, G: 1, B: 1, A: 1}
	v.body.StrokeColor = Color{R: 0, G: 0, B: 0, A: 1}
	v.node.AddChild(v.body)
	return v
}

// Render copies the element's position, size and "label" field onto the
// render nodes.
func (v *ElementView) Render() {
	r := v.BoundingBox()
	v.node.SetPosition(r.X, r.Y)
	v.node.SetSize(r.Width, r.Height)
	v.body.SetSize(r.Width, r.Height)
	v.body.Text = ""
	if label, ok := v.model.Get("label"); ok {
		if s, ok := label.(string); ok {
			v.body.Text = s
		}
	}
}

// BoundingBox returns the element's model rectangle.
func (v *ElementView) BoundingBox() Rect {
	if el, ok := v.model.(*Element); ok {
		return el.BBox()
	}
	return v.node.Bounds()
}

// PointerDown starts a drag at the snapped point (x, y).
func (v *ElementView) PointerDown(_ *PointerEvent, x, y float64) {
	v.dragging = true
	v.lastX, v.lastY = x, y
}

// PointerMove translates the element by the snapped pointer delta.
func (v *ElementView) PointerMove(_ *PointerEvent, x, y float64) {
	if !v.dragging || !v.Interactive {
		return
	}
	el, ok := v.model.(*Element)
	if !ok {
		return
	}
	el.Translate(x-v.lastX, y-v.lastY)
	v.lastX, v.lastY = x, y
	v.Render()
	if v.paper != nil {
		v.paper.renderLinks(el.ID())
	}
}

// PointerUp ends the drag.
func (v *ElementView) PointerUp(*PointerEvent) {
	v.dragging = false
}

// --- Default link view ---

// linkHitTolerance is how far from its route, in local units, a link is hit.
const linkHitTolerance = 4

// LinkView renders a *Link as a polyline between its endpoint views.
type LinkView struct {
	*CellView
}

// NewLinkView is the default ViewConstructor for links.
func NewLinkView(opts ViewOptions) View {
	v := &LinkView{CellView: NewCellView(opts)}
	v.node.StrokeColor = Color{R: 0, G: 0, B: 0, A: 1}
	v.node.HitShape = linkHitShape{v}
	return v
}

// linkHitShape hits points close to the link's route rather than its whole
// bounding box.
type linkHitShape struct {
	v *LinkView
}

func (s linkHitShape) Contains(x, y float64) bool {
	pts := s.v.Vertices()
	ox, oy := s.v.node.X, s.v.node.Y
	for i := 1; i < len(pts); i++ {
		a := Vec2{pts[i-1].X - ox, pts[i-1].Y - oy}
		b := Vec2{pts[i].X - ox, pts[i].Y - oy}
		if segmentDistance(Vec2{x, y}, a, b) <= linkHitTolerance {
			return true
		}
	}
	return false
}

// segmentDistance returns the distance from p to the segment ab.
func segmentDistance(p, a, b Vec2) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// Render sizes the root node to the route's bounds.
func (v *LinkView) Render() {
	r := v.BoundingBox()
	v.node.SetPosition(r.X, r.Y)
	v.node.SetSize(r.Width, r.Height)
}

// Vertices returns the link route in paper-local coordinates: the centers of
// the source and target views, with an elbow point when the paper constrains
// links to be perpendicular. Nil when an endpoint has no view.
func (v *LinkView) Vertices() []Vec2 {
	link, ok := v.model.(*Link)
	if !ok || v.paper == nil {
		return nil
	}
	src := v.paper.FindViewByModel(link.Source)
	dst := v.paper.FindViewByModel(link.Target)
	if src == nil || dst == nil {
		return nil
	}
	a := src.BoundingBox().Center()
	b := dst.BoundingBox().Center()
	if v.paper.options.PerpendicularLinks && a.X != b.X && a.Y != b.Y {
		return []Vec2{a, {X: b.X, Y: a.Y}, b}
	}
	return []Vec2{a, b}
}

// BoundingBox returns the bounds of the route.
func (v *LinkView) BoundingBox() Rect {
	pts := v.Vertices()
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
