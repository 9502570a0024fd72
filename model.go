package paper

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Cell is a diagram model entity rendered by the paper: an element or a link.
//
// Type returns a two-part tag "category.kind" (for example "basic.Rect")
// used to pick a specialized view. Get exposes model fields; the paper reads
// the "z" field for stacking order.
type Cell interface {
	ID() string
	Type() string
	Get(key string) (any, bool)
	IsLink() bool
}

// cellZ returns the numeric z attribute of c, or 0 when absent or not numeric.
func cellZ(c Cell) float64 {
	if c == nil {
		return 0
	}
	v, ok := c.Get("z")
	if !ok {
		return 0
	}
	switch z := v.(type) {
	case float64:
		return z
	case float32:
		return float64(z)
	case int:
		return float64(z)
	case int64:
		return float64(z)
	case int32:
		return float64(z)
	}
	return 0
}

// cellBase holds the fields shared by Element and Link.
type cellBase struct {
	id    string
	typ   string
	attrs map[string]any
}

func newCellBase(id, typ string) cellBase {
	if id == "" {
		id = uuid.NewString()
	}
	return cellBase{id: id, typ: typ, attrs: make(map[string]any)}
}

// ID returns the cell's unique id.
func (c *cellBase) ID() string { return c.id }

// Type returns the cell's "category.kind" tag.
func (c *cellBase) Type() string { return c.typ }

// Get returns a model field.
func (c *cellBase) Get(key string) (any, bool) {
	v, ok := c.attrs[key]
	return v, ok
}

// Set stores a model field. Setting "z" does not reorder views until the
// graph is sorted.
func (c *cellBase) Set(key string, value any) {
	c.attrs[key] = value
}

// Unset removes a model field.
func (c *cellBase) Unset(key string) {
	delete(c.attrs, key)
}

// Element is a rectangular diagram node.
type Element struct {
	cellBase
	Position Vec2
	Size     Vec2
}

// NewElement creates an element. An empty id is replaced by a random UUID.
func NewElement(id, typ string) *Element {
	return &Element{cellBase: newCellBase(id, typ)}
}

// IsLink reports false.
func (e *Element) IsLink() bool { return false }

// BBox returns the element's model rectangle.
func (e *Element) BBox() Rect {
	return Rect{X: e.Position.X, Y: e.Position.Y, Width: e.Size.X, Height: e.Size.Y}
}

// Translate moves the element by (dx, dy).
func (e *Element) Translate(dx, dy float64) {
	e.Position.X += dx
	e.Position.Y += dy
}

// Link connects two cells by id.
type Link struct {
	cellBase
	Source string
	Target string
}

// NewLink creates a link between source and target. An empty id is replaced
// by a random UUID.
func NewLink(id, typ, source, target string) *Link {
	return &Link{cellBase: newCellBase(id, typ), Source: source, Target: target}
}

// IsLink reports true.
func (l *Link) IsLink() bool { return true }

// --- Graph ---

type cellHandler struct {
	id uint32
	fn func(Cell)
}

type sortHandler struct {
	id uint32
	fn func()
}

type graphEvent uint8

const (
	graphEventAdd graphEvent = iota
	graphEventRemove
	graphEventSort
)

// Subscription allows removing a callback registered on a Graph.
type Subscription struct {
	id    uint32
	g     *Graph
	event graphEvent
}

// Remove unregisters the callback so it no longer fires.
func (s Subscription) Remove() {
	if s.g == nil {
		return
	}
	switch s.event {
	case graphEventAdd:
		s.g.onAdd = slices.DeleteFunc(s.g.onAdd, func(h cellHandler) bool { return h.id == s.id })
	case graphEventRemove:
		s.g.onRemove = slices.DeleteFunc(s.g.onRemove, func(h cellHandler) bool { return h.id == s.id })
	case graphEventSort:
		s.g.onSort = slices.DeleteFunc(s.g.onSort, func(h sortHandler) bool { return h.id == s.id })
	}
}

// Graph is the ordered cell collection a Paper renders. It notifies
// subscribers when cells are added, removed or re-sorted.
type Graph struct {
	cells []Cell
	byID  map[string]Cell

	onAdd    []cellHandler
	onRemove []cellHandler
	onSort   []sortHandler
	nextID   uint32
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{byID: make(map[string]Cell)}
}

// OnAdd registers fn to run after a cell is added.
func (g *Graph) OnAdd(fn func(Cell)) Subscription {
	g.nextID++
	g.onAdd = append(g.onAdd, cellHandler{id: g.nextID, fn: fn})
	return Subscription{id: g.nextID, g: g, event: graphEventAdd}
}

// OnRemove registers fn to run after a cell is removed.
func (g *Graph) OnRemove(fn func(Cell)) Subscription {
	g.nextID++
	g.onRemove = append(g.onRemove, cellHandler{id: g.nextID, fn: fn})
	return Subscription{id: g.nextID, g: g, event: graphEventRemove}
}

// OnSort registers fn to run after the graph is re-sorted by z.
func (g *Graph) OnSort(fn func()) Subscription {
	g.nextID++
	g.onSort = append(g.onSort, sortHandler{id: g.nextID, fn: fn})
	return Subscription{id: g.nextID, g: g, event: graphEventSort}
}

// AddCell appends c and notifies add subscribers.
// Panics if a cell with the same id is already present.
func (g *Graph) AddCell(c Cell) {
	if c == nil {
		panic("paper: cannot add nil cell")
	}
	if _, dup := g.byID[c.ID()]; dup {
		panic(fmt.Sprintf("paper: duplicate cell id %q", c.ID()))
	}
	g.cells = append(g.cells, c)
	g.byID[c.ID()] = c
	for _, h := range g.onAdd {
		h.fn(c)
	}
}

// AddCells adds each cell in order.
func (g *Graph) AddCells(cells ...Cell) {
	for _, c := range cells {
		g.AddCell(c)
	}
}

// RemoveCell removes the cell with the given id and notifies remove
// subscribers. Returns false if no such cell exists.
func (g *Graph) RemoveCell(id string) bool {
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	delete(g.byID, id)
	g.cells = slices.DeleteFunc(g.cells, func(x Cell) bool { return x.ID() == id })
	for _, h := range g.onRemove {
		h.fn(c)
	}
	return true
}

// Cell returns the cell with the given id, or nil.
func (g *Graph) Cell(id string) Cell {
	return g.byID[id]
}

// Cells returns the cells in collection order. The returned slice MUST NOT be
// mutated by the caller.
func (g *Graph) Cells() []Cell {
	return g.cells
}

// Len returns the number of cells.
func (g *Graph) Len() int {
	return len(g.cells)
}

// Sort orders the collection by ascending z (stable) and notifies sort
// subscribers.
func (g *Graph) Sort() {
	slices.SortStableFunc(g.cells, func(a, b Cell) int {
		return compareZ(cellZ(a), cellZ(b))
	})
	for _, h := range g.onSort {
		h.fn()
	}
}

// ToFront sets the cell's z above every other cell and re-sorts.
func (g *Graph) ToFront(id string) {
	g.restack(id, func(maxZ, _ float64) float64 { return maxZ + 1 })
}

// ToBack sets the cell's z below every other cell and re-sorts.
func (g *Graph) ToBack(id string) {
	g.restack(id, func(_, minZ float64) float64 { return minZ - 1 })
}

func (g *Graph) restack(id string, pick func(maxZ, minZ float64) float64) {
	c, ok := g.byID[id]
	if !ok {
		return
	}
	setter, ok := c.(interface{ Set(string, any) })
	if !ok {
		return
	}
	var maxZ, minZ float64
	for i, other := range g.cells {
		z := cellZ(other)
		if i == 0 || z > maxZ {
			maxZ = z
		}
		if i == 0 || z < minZ {
			minZ = z
		}
	}
	setter.Set("z", pick(maxZ, minZ))
	g.Sort()
}

func compareZ(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
