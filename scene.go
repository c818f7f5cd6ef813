package charts

import "slices"

// Scene is an ordered collection of items. Insertion order is z-order:
// later items draw on top of earlier ones. A version counter increments
// on every structural change so renderers and caches can detect staleness.
type Scene struct {
	items   []Item
	version uint64
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends an item to the scene.
func (sc *Scene) Add(it Item) {
	sc.items = append(sc.items, it)
	sc.version++
}

// Remove deletes the first occurrence of the item from the scene.
// Removing an absent item is a no-op.
func (sc *Scene) Remove(it Item) {
	for i, have := range sc.items {
		if have == it {
			sc.items = slices.Delete(sc.items, i, i+1)
			sc.version++
			return
		}
	}
}

// Items returns the items in z-order. The slice is owned by the scene;
// callers must not mutate it.
func (sc *Scene) Items() []Item {
	return sc.items
}

// Len returns the number of items in the scene.
func (sc *Scene) Len() int {
	return len(sc.items)
}

// Version returns the structural version counter. It increments on every
// Add and Remove.
func (sc *Scene) Version() uint64 {
	return sc.version
}

// Bounds returns the union of the scene-space bounds of all visible items.
func (sc *Scene) Bounds() Rect {
	b := EmptyRect()
	for _, it := range sc.items {
		s := it.AsSprite()
		if !s.Visible() {
			continue
		}
		b = b.Union(s.ScenePath().Bounds())
	}
	return b
}
