package dnd

import (
	"slices"
	"time"

	"bookmarkhub/internal/items"
	"bookmarkhub/internal/model"
)

// GridEngine is the drag state machine for the item grid. Unlike the tree,
// the grid has no before/after/inside zones: the drop target is whichever
// card contains the pointer.
type GridEngine struct {
	sensors Sensors
	g       gesture
	overID  string
}

// NewGridEngine creates an idle grid engine.
func NewGridEngine() *GridEngine {
	return &GridEngine{sensors: GridSensors}
}

// State returns the gesture phase.
func (e *GridEngine) State() State {
	return e.g.state
}

// Press starts a gesture on an item card.
func (e *GridEngine) Press(id string, kind PointerKind, at Point, now time.Time) {
	e.overID = ""
	e.g.press(id, e.sensors.For(kind), at, now)
}

// PointerMove feeds pointer motion to a pending gesture.
func (e *GridEngine) PointerMove(at Point, now time.Time) State {
	return e.g.move(at, now)
}

// Tick lets a stationary touch hold activate.
func (e *GridEngine) Tick(now time.Time) State {
	return e.g.tick(now)
}

// Over records the card under the pointer, if any.
func (e *GridEngine) Over(pointer Point, cards []Target) (string, bool) {
	if e.g.state != Dragging {
		return "", false
	}
	e.overID = ""
	for _, c := range cards {
		if c.Rect.Contains(pointer) {
			e.overID = c.ID
			break
		}
	}
	return e.overID, e.overID != ""
}

// Drop ends the gesture and returns the dragged and target ids. It reports
// false when the drop should not change anything.
func (e *GridEngine) Drop() (activeID, overID string, ok bool) {
	activeID, overID, state := e.g.activeID, e.overID, e.g.state
	e.Cancel()
	if state != Dragging || overID == "" || overID == activeID {
		return "", "", false
	}
	return activeID, overID, true
}

// Cancel abandons the gesture.
func (e *GridEngine) Cancel() {
	e.g.reset()
	e.overID = ""
}

// ReorderItems moves activeID to overID's position within view and writes
// the result back into all.
//
// The reordered view items take over the slots the view items held in the
// order-sorted list, so items hidden by the current filter keep their
// relative position. Orders are then renumbered 0..n-1 within each category,
// since an item's order is its position among items of the same category.
// The returned slice keeps all's storage order. ok is false when either id
// is missing from the view or they are equal.
func ReorderItems(all, view []model.BookmarkItem, activeID, overID string) ([]model.BookmarkItem, bool) {
	present := make(map[string]bool, len(all))
	for _, it := range all {
		present[it.ID] = true
	}
	visible := make([]string, 0, len(view))
	for _, it := range view {
		if present[it.ID] {
			visible = append(visible, it.ID)
		}
	}

	from := slices.Index(visible, activeID)
	to := slices.Index(visible, overID)
	if from < 0 || to < 0 || from == to {
		return nil, false
	}
	moved := visible[from]
	visible = slices.Delete(visible, from, from+1)
	visible = slices.Insert(visible, to, moved)

	inView := make(map[string]bool, len(visible))
	for _, id := range visible {
		inView[id] = true
	}

	categoryOf := make(map[string]string, len(all))
	for _, it := range all {
		categoryOf[it.ID] = it.CategoryID
	}

	sorted := model.CloneItems(all)
	items.SortByOrder(sorted)
	next := 0
	orderOf := make(map[string]int, len(sorted))
	slots := make(map[string]int)
	for _, it := range sorted {
		id := it.ID
		if inView[id] {
			id = visible[next]
			next++
		}
		cat := categoryOf[id]
		orderOf[id] = slots[cat]
		slots[cat]++
	}

	out := model.CloneItems(all)
	for i := range out {
		out[i].Order = orderOf[out[i].ID]
	}
	return out, true
}
