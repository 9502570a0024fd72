package paper

import (
	"fmt"
	"strings"
	"testing"
)

// --- Helpers ---

func newRect(id string, x, y, w, h float64) *Element {
	el := NewElement(id, "basic.Rect")
	el.Position = Vec2{x, y}
	el.Size = Vec2{w, h}
	return el
}

func withZ(el *Element, z float64) *Element {
	el.Set("z", z)
	return el
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.GridSize = 0
	return opts
}

func expectPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", substr)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Errorf("panic = %q, want it to contain %q", msg, substr)
		}
	}()
	fn()
}

// recordingView logs the calls the paper makes on it.
type recordingView struct {
	*CellView
	calls []string
}

func newRecordingView(opts ViewOptions) View {
	v := &recordingView{CellView: NewCellView(opts)}
	v.node.SetSize(10, 10)
	return v
}

func (v *recordingView) Render() {
	v.calls = append(v.calls, "render")
	if el, ok := v.model.(*Element); ok {
		v.node.SetPosition(el.Position.X, el.Position.Y)
		v.node.SetSize(el.Size.X, el.Size.Y)
	}
}

func (v *recordingView) PointerDown(_ *PointerEvent, x, y float64) {
	v.calls = append(v.calls, fmt.Sprintf("down %g %g", x, y))
}

func (v *recordingView) PointerMove(_ *PointerEvent, x, y float64) {
	v.calls = append(v.calls, fmt.Sprintf("move %g %g", x, y))
}

func (v *recordingView) PointerUp(*PointerEvent) {
	v.calls = append(v.calls, "up")
}

func (v *recordingView) Remove() {
	v.calls = append(v.calls, "remove")
}

func recordingTypes() *ViewTypes {
	types := NewViewTypes()
	types.Register("test", "Rec", newRecordingView)
	return types
}

func newRec(id string, x, y, w, h float64) *Element {
	el := NewElement(id, "test.Rec")
	el.Position = Vec2{x, y}
	el.Size = Vec2{w, h}
	return el
}

func recView(t *testing.T, p *Paper, id string) *recordingView {
	t.Helper()
	v, ok := p.FindViewByModel(id).(*recordingView)
	if !ok {
		t.Fatalf("view for %q is %T, want *recordingView", id, p.FindViewByModel(id))
	}
	return v
}

func viewportIDs(p *Paper) []string {
	var ids []string
	for _, n := range p.Viewport().Children() {
		ids = append(ids, n.ModelID)
	}
	return ids
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Construction ---

func TestNewPaperNilGraphPanics(t *testing.T) {
	expectPanic(t, "nil graph", func() { NewPaper(nil, testOptions()) })
}

func TestNewPaperDefaults(t *testing.T) {
	p := NewPaper(NewGraph(), Options{})
	if p.types == nil {
		t.Fatal("nil ViewTypes should default to NewViewTypes()")
	}
	if p.Matrix() != identityTransform {
		t.Errorf("Matrix = %v, want identity", p.Matrix())
	}
	if p.Viewport().Parent != p.Root() {
		t.Error("viewport should be the root's child")
	}
	if p.PointerState() != PointerIdle {
		t.Error("new paper should be idle")
	}
}

func TestNewPaperRendersExistingCells(t *testing.T) {
	g := NewGraph()
	g.AddCells(withZ(newRect("a", 0, 0, 10, 10), 2), withZ(newRect("b", 20, 0, 10, 10), 1))

	p := NewPaper(g, testOptions())

	if p.FindViewByModel("a") == nil || p.FindViewByModel("b") == nil {
		t.Fatal("existing cells should have views")
	}
	if got, want := viewportIDs(p), []string{"b", "a"}; !equalStrings(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

// --- View registry ---

func TestAddCellRegistersView(t *testing.T) {
	g := NewGraph()
	p := NewPaper(g, testOptions())
	el := newRect("a", 10, 20, 30, 40)
	if p.FindViewByModel("a") != nil {
		t.Fatal("view found before the cell was added")
	}
	g.AddCell(el)

	v := p.FindViewByModel("a")
	if v == nil {
		t.Fatal("no view registered")
	}
	if v.Model() != el {
		t.Error("view model mismatch")
	}
	if v.Paper() != p {
		t.Error("view paper not set")
	}
	n := v.Node()
	if n.ModelID != "a" {
		t.Errorf("ModelID = %q, want %q", n.ModelID, "a")
	}
	if n.Parent != p.Viewport() {
		t.Error("view node should be appended to the viewport")
	}
	if n.View() != v {
		t.Error("node should point back to its view")
	}
	if n.Bounds() != (Rect{10, 20, 30, 40}) {
		t.Errorf("rendered bounds = %v", n.Bounds())
	}
}

func TestAddCellRendersOnce(t *testing.T) {
	g := NewGraph()
	p := NewPaper(g, Options{ViewTypes: recordingTypes()})
	g.AddCell(newRec("a", 0, 0, 10, 10))

	v := recView(t, p, "a")
	if len(v.calls) != 1 || v.calls[0] != "render" {
		t.Errorf("calls = %v, want [render]", v.calls)
	}
}

func TestAddCellDuplicatePanics(t *testing.T) {
	g := NewGraph()
	p := NewPaper(g, testOptions())
	el := newRect("a", 0, 0, 10, 10)
	g.AddCell(el)

	expectPanic(t, "already registered", func() { p.addCell(el) })
}

func TestAddCellPassesInteractive(t *testing.T) {
	for _, interactive := range []bool{true, false} {
		g := NewGraph()
		opts := testOptions()
		opts.Interactive = interactive
		p := NewPaper(g, opts)
		g.AddCell(newRect("a", 0, 0, 10, 10))

		ev := p.FindViewByModel("a").(*ElementView)
		if ev.Interactive != interactive {
			t.Errorf("Interactive = %v, want %v", ev.Interactive, interactive)
		}
	}
}

func TestRemoveCellUnregistersView(t *testing.T) {
	g := NewGraph()
	p := NewPaper(g, Options{ViewTypes: recordingTypes()})
	g.AddCell(newRec("a", 0, 0, 10, 10))
	v := recView(t, p, "a")
	p.PointerDown(&PointerEvent{Target: v.Node()})

	g.RemoveCell("a")

	if p.FindViewByModel("a") != nil {
		t.Error("view should be unregistered")
	}
	if v.Node().Parent != nil {
		t.Error("node should be detached")
	}
	if v.Paper() != nil {
		t.Error("view paper should be cleared")
	}
	if p.ActiveView() != nil || p.PointerState() != PointerIdle {
		t.Error("removing the active view should return to idle")
	}
	if last := v.calls[len(v.calls)-1]; last != "remove" {
		t.Errorf("last call = %q, want remove", last)
	}
	if p.FindView(v.Node()) != nil {
		t.Error("FindView should not resolve a removed view")
	}
}

func TestRemoveCellDisposesNode(t *testing.T) {
	g := NewGraph()
	p := NewPaper(g, testOptions())
	g.AddCell(newRect("a", 0, 0, 10, 10))
	node := p.FindViewByModel("a").Node()
	body := node.ChildAt(0)

	g.RemoveCell("a")

	if !node.IsDisposed() || !body.IsDisposed() {
		t.Error("removed view's nodes should be disposed")
	}
	if p.Viewport().NumChildren() != 0 {
		t.Errorf("viewport children = %d, want 0", p.Viewport().NumChildren())
	}
}

func TestRemoveEndpointClearsLinkRoute(t *testing.T) {
	g := NewGraph()
	p := NewPaper(g, testOptions())
	g.AddCells(
		newRect("a", 0, 0, 10, 10),
		newRect("b", 200, 200, 10, 10),
		NewLink("l", "link.Link", "a", "b"),
	)
	link := p.FindViewByModel("l").Node()
	if link.Bounds() != (Rect{5, 5, 200, 200}) {
		t.Fatalf("link bounds = %v, want (5, 5, 200, 200)", link.Bounds())
	}

	g.RemoveCell("b")

	if got := link.Bounds(); !got.IsEmpty() {
		t.Errorf("link bounds after endpoint removal = %v, want empty", got)
	}
	if got := p.ViewportBBox(); got != (Rect{0, 0, 10, 10}) {
		t.Errorf("ViewportBBox = %v, want (0, 0, 10, 10)", got)
	}

	p.Rotate(180)
	if got := p.ToGlobalPoint(Vec2{5, 5}); !approxVec(got, Vec2{5, 5}) {
		t.Errorf("rotation center moved to %v, want (5, 5)", got)
	}
}

func TestCloseStopsTracking(t *testing.T) {
	g := NewGraph()
	p := NewPaper(g, testOptions())
	p.Close()

	g.AddCell(newRect("a", 0, 0, 10, 10))
	if p.FindViewByModel("a") != nil {
		t.Error("closed paper should ignore new cells")
	}
}

func TestViewsInDrawOrder(t *testing.T) {
	g := NewGraph()
	p := NewPaper(g, testOptions())
	g.AddCells(newRect("a", 0, 0, 10, 10), newRect("b", 0, 0, 10, 10))
	p.Viewport().AddChild(NewNode("overlay"))

	views := p.Views()
	if len(views) != 2 {
		t.Fatalf("len(Views) = %d, want 2", len(views))
	}
	if views[0].Model().ID() != "a" || views[1].Model().ID() != "b" {
		t.Errorf("Views order = [%s %s]", views[0].Model().ID(), views[1].Model().ID())
	}
}

func TestSetDimensions(t *testing.T) {
	p := NewPaper(NewGraph(), testOptions())

	p.SetDimensions(1024, 768)
	if w, h := p.Size(); w != 1024 || h != 768 {
		t.Errorf("Size = (%v, %v), want (1024, 768)", w, h)
	}

	p.SetDimensions(0, -1)
	if w, h := p.Size(); w != 1024 || h != 768 {
		t.Errorf("non-positive dimensions should be ignored, got (%v, %v)", w, h)
	}

	if w, h := p.Layout(1, 1); w != 1024 || h != 768 {
		t.Errorf("Layout = (%d, %d), want (1024, 768)", w, h)
	}
}
