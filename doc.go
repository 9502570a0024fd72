// Package paper is the rendering and interaction surface of a diagram editor,
// built on [Ebitengine].
//
// A [Paper] watches a [Graph] of cells ([Element] and [Link]) and keeps
// exactly one [View] per cell. Views own a small tree of [Node] values that
// the paper orders by each cell's "z" attribute, transforms, hit-tests and
// draws.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	graph := paper.NewGraph()
//	p := paper.NewPaper(graph, paper.DefaultOptions())
//
//	el := paper.NewElement("a", "basic.Rect")
//	el.Position = paper.Vec2{X: 100, Y: 100}
//	el.Size = paper.Vec2{X: 120, Y: 60}
//	graph.AddCell(el)
//
//	paper.Run(p, paper.RunConfig{Title: "Diagram"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Paper.Update] and [Paper.Draw] directly.
//
// # Views
//
// A cell's type tag has the form "category.kind". [ViewTypes] maps tags to
// constructors; unregistered tags get [NewElementView] or [NewLinkView].
// Custom views embed [*CellView] (or a default view) and override the methods
// they need:
//
//	types := paper.NewViewTypes()
//	types.Register("devs", "Atomic", newAtomicView)
//	opts := paper.DefaultOptions()
//	opts.ViewTypes = types
//
// # Coordinates
//
// Model geometry is in the paper's local space. [Paper.Scale] and
// [Paper.Rotate] set the scene transform; neither compounds with earlier
// calls. Pointer coordinates are mapped back to local space and snapped to
// the grid before they reach a view.
//
// # Pointer input
//
// Mouse, touch and injected input ([Paper.InjectClick], [Paper.InjectDrag],
// [LoadInputScript]) all go through [Paper.PointerDown], [Paper.PointerMove]
// and [Paper.PointerUp]. A press on a view makes it the single active view
// until release; a press on blank canvas fires [Paper.OnBlankPointerDown]
// callbacks instead. Dispatch can be mirrored into an ECS world with the
// Donburi adapter in paper/ecs.
//
// # Configuration and logging
//
// [LoadOptions] reads [Options] from a TOML file. Paper is silent by default;
// pass a [log/slog] logger to [SetLogger] to see view and dispatch activity.
//
// [Ebitengine]: https://ebitengine.org
package paper
