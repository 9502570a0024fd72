package paper

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventStore receives interaction events, for example an ECS bridge.
type EventStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries dispatch data for an EventStore.
type InteractionEvent struct {
	Type EventType
	// CellID is the id of the cell whose view received the event. Empty for
	// EventBlankPointerDown.
	CellID    string
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// Paper keeps one view per graph cell in a render tree, orders the views by
// z, transforms the scene, hit-tests, and routes pointer input to a single
// active view at a time.
type Paper struct {
	graph   *Graph
	options Options
	types   *ViewTypes
	store   EventStore
	debug   bool

	// root is the paper's own node; viewport is its only child and holds
	// every view's root node.
	root     *Node
	viewport *Node
	views    map[string]View
	subs     []Subscription
	sortBuf  []*Node
	slotBuf  []int

	transform sceneTransform
	matrix    [6]float64
	invMatrix [6]float64

	// Pointer dispatch
	active   View
	handlers handlerRegistry

	// Ebiten input state
	mouse        pointerTrack
	touch        pointerTrack
	touchID      ebiten.TouchID
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	script       *InputScript
}

// NewPaper creates a paper bound to graph. Cells already in the graph get
// views immediately; later additions, removals and sorts are picked up
// through subscriptions that Close releases.
func NewPaper(graph *Graph, opts Options) *Paper {
	if graph == nil {
		panic("paper: nil graph")
	}
	if opts.ViewTypes == nil {
		opts.ViewTypes = NewViewTypes()
	}
	root := NewNode("paper")
	viewport := NewNode("viewport")
	root.AddChild(viewport)

	p := &Paper{
		graph:    graph,
		options:  opts,
		types:    opts.ViewTypes,
		root:     root,
		viewport: viewport,
		views:    make(map[string]View),
	}
	p.setTransform(identityScene)
	p.SetDimensions(opts.Width, opts.Height)

	for _, c := range graph.Cells() {
		p.addCell(c)
	}
	if graph.Len() > 0 {
		p.sortCells()
	}

	p.subs = append(p.subs,
		graph.OnAdd(p.addCell),
		graph.OnRemove(p.removeCell),
		graph.OnSort(p.sortCells),
	)
	return p
}

// Close unsubscribes the paper from its graph. Views stay in place.
func (p *Paper) Close() {
	for _, s := range p.subs {
		s.Remove()
	}
	p.subs = nil
}

// Graph returns the model collection the paper renders.
func (p *Paper) Graph() *Graph {
	return p.graph
}

// Options returns the paper's current options.
func (p *Paper) Options() Options {
	return p.options
}

// Root returns the paper's own node. The walk in FindView stops here.
func (p *Paper) Root() *Node {
	return p.root
}

// Viewport returns the scene root holding every view node, ordered by z.
func (p *Paper) Viewport() *Node {
	return p.viewport
}

// SetEventStore sets the optional interaction event sink.
func (p *Paper) SetEventStore(store EventStore) {
	p.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame draw stats are logged at debug level.
func (p *Paper) SetDebugMode(enabled bool) {
	p.debug = enabled
	globalDebug = enabled
}

// Views returns the registered views in draw order.
func (p *Paper) Views() []View {
	views := make([]View, 0, len(p.views))
	for _, n := range p.viewport.children {
		if n.view != nil {
			views = append(views, n.view)
		}
	}
	return views
}

// --- View registry ---

// addCell resolves, mounts, renders and indexes the view for cell.
func (p *Paper) addCell(cell Cell) {
	id := cell.ID()
	if _, dup := p.views[id]; dup {
		panic(fmt.Sprintf("paper: view already registered for cell %q", id))
	}

	view := p.types.Resolve(cell, p.options.Interactive)
	node := view.Node()
	node.ModelID = id

	p.viewport.AddChild(node)
	node.view = view
	view.base().paper = p
	view.Render()
	p.views[id] = view

	if !cell.IsLink() {
		p.renderLinks(id)
	}
	logger().Debug("paper: view added", "cell", id, "type", cell.Type())
}

// removeCell mirrors addCell: the view is unindexed, released and its node
// disposed. Links attached to a removed element lose their route.
func (p *Paper) removeCell(cell Cell) {
	id := cell.ID()
	view, ok := p.views[id]
	if !ok {
		return
	}
	delete(p.views, id)
	if p.active == view {
		p.active = nil
	}

	node := view.Node()
	node.view = nil
	view.base().paper = nil
	if r, ok := view.(viewRemover); ok {
		r.Remove()
	}
	node.Dispose()

	if !cell.IsLink() {
		p.renderLinks(id)
	}
	logger().Debug("paper: view removed", "cell", id)
}

// renderLinks re-renders every link view attached to the cell id.
func (p *Paper) renderLinks(id string) {
	for _, v := range p.views {
		lv, ok := v.(*LinkView)
		if !ok {
			continue
		}
		if link, ok := lv.model.(*Link); ok && (link.Source == id || link.Target == id) {
			lv.Render()
		}
	}
}

// --- Pointer state ---

// PointerState is the dispatcher state.
type PointerState uint8

const (
	PointerIdle   PointerState = iota // no view receives pointer input
	PointerActive                     // one view receives move/up until release
)

// PointerState reports whether a view currently owns the pointer.
func (p *Paper) PointerState() PointerState {
	if p.active != nil {
		return PointerActive
	}
	return PointerIdle
}

// ActiveView returns the view receiving the current press-move-release
// interaction, or nil.
func (p *Paper) ActiveView() View {
	return p.active
}
