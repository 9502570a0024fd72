package paper

import (
	"fmt"
	"strings"
)

// ViewTypes maps a cell type tag to the constructor of its specialized view.
// Collaborators populate it at startup; tags with no entry fall back to the
// default element or link constructor.
type ViewTypes struct {
	byCategory map[string]map[string]ViewConstructor

	// DefaultElement builds views for elements without a specialized view.
	DefaultElement ViewConstructor
	// DefaultLink builds views for links without a specialized view.
	DefaultLink ViewConstructor
}

// NewViewTypes creates a registry with the built-in ElementView and LinkView
// as defaults.
func NewViewTypes() *ViewTypes {
	return &ViewTypes{
		byCategory:     make(map[string]map[string]ViewConstructor),
		DefaultElement: NewElementView,
		DefaultLink:    NewLinkView,
	}
}

// Register sets the constructor for cells typed "category.kind".
// A later registration for the same key replaces the earlier one.
func (t *ViewTypes) Register(category, kind string, ctor ViewConstructor) {
	if category == "" || kind == "" {
		panic("paper: view type category and kind must be non-empty")
	}
	if ctor == nil {
		panic("paper: cannot register nil view constructor")
	}
	kinds := t.byCategory[category]
	if kinds == nil {
		kinds = make(map[string]ViewConstructor)
		t.byCategory[category] = kinds
	}
	if _, replaced := kinds[kind]; replaced {
		logger().Debug("view type replaced", "category", category, "kind", kind)
	}
	kinds[kind] = ctor
}

// Lookup returns the specialized constructor for category.kind, if any.
func (t *ViewTypes) Lookup(category, kind string) (ViewConstructor, bool) {
	ctor, ok := t.byCategory[category][kind]
	return ctor, ok
}

// Resolve builds the view for cell. It never fails for an unknown tag; it
// panics only when the tag cannot be split into a category and a kind.
func (t *ViewTypes) Resolve(cell Cell, interactive bool) View {
	category, kind := splitType(cell.Type())
	opts := ViewOptions{Model: cell, Interactive: interactive}
	if ctor, ok := t.Lookup(category, kind); ok {
		return ctor(opts)
	}
	if cell.IsLink() {
		return t.DefaultLink(opts)
	}
	return t.DefaultElement(opts)
}

// splitType returns the first two dot-separated segments of typ. Further
// segments are ignored, so "basic.Rect.v2" resolves as basic.Rect.
func splitType(typ string) (category, kind string) {
	parts := strings.Split(typ, ".")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		panic(fmt.Sprintf("paper: invalid cell type %q, want \"category.kind\"", typ))
	}
	return parts[0], parts[1]
}
