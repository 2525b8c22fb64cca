// Package dnd interprets pointer drag gestures over the category tree and the
// item grid and turns them into tree moves and item reorders.
//
// Everything here is synchronous: each event is handled to completion by the
// caller's event loop before the next one arrives.
package dnd

import (
	"fmt"
	"time"

	"bookmarkhub/internal/model"
)

// RootZoneID identifies the drop zone that moves a category to the top level.
const RootZoneID = "root-zone"

// edgeFraction is the share of a row's height, at the top and at the
// bottom, that means "before" and "after". The middle band means "inside".
const edgeFraction = 0.3

// PlacementType says where the dragged category lands relative to the target.
type PlacementType string

const (
	Before PlacementType = "before"
	After  PlacementType = "after"
	Inside PlacementType = "inside"
	Root   PlacementType = "root"
)

// Placement is the drop position computed while dragging.
type Placement struct {
	Type     PlacementType `json:"type"`
	TargetID string        `json:"targetId"`
}

// Target is a hovered drop target: a category row or the root zone.
type Target struct {
	ID   string
	Rect Rect
}

// Tree is the category tree as the engine sees it.
type Tree interface {
	Category(id string) (model.Category, bool)
	DescendantIDs(id string) map[string]struct{}
	Children(parentID *string) []model.Category
	MoveCategory(id string, parentID *string, order int) error
}

// Move is a committed tree mutation.
type Move struct {
	CategoryID string
	ParentID   *string
	Order      int
}

// TreeEngine is the drag state machine for the category list.
type TreeEngine struct {
	tree      Tree
	sensors   Sensors
	g         gesture
	placement *Placement
}

// NewTreeEngine creates an idle engine over tree.
func NewTreeEngine(tree Tree) *TreeEngine {
	return &TreeEngine{tree: tree, sensors: TreeSensors}
}

// State returns the gesture phase.
func (e *TreeEngine) State() State {
	return e.g.state
}

// ActiveID returns the category being dragged, or "".
func (e *TreeEngine) ActiveID() string {
	return e.g.activeID
}

// Placement returns the current drop placement, if any.
func (e *TreeEngine) Placement() (Placement, bool) {
	if e.placement == nil {
		return Placement{}, false
	}
	return *e.placement, true
}

// Press starts a gesture on a category row.
func (e *TreeEngine) Press(id string, kind PointerKind, at Point, now time.Time) error {
	if _, ok := e.tree.Category(id); !ok {
		return fmt.Errorf("press on unknown category %q", id)
	}
	e.placement = nil
	e.g.press(id, e.sensors.For(kind), at, now)
	return nil
}

// PointerMove feeds pointer motion to a pending gesture.
func (e *TreeEngine) PointerMove(at Point, now time.Time) State {
	return e.g.move(at, now)
}

// Tick lets a stationary touch hold activate.
func (e *TreeEngine) Tick(now time.Time) State {
	return e.g.tick(now)
}

// Over recomputes the placement for the hovered target. A nil target means
// the pointer is over nothing droppable, which clears the placement.
// dragged is the dragged row's current (translated) rect.
func (e *TreeEngine) Over(target *Target, dragged Rect) (Placement, bool) {
	if e.g.state != Dragging {
		return Placement{}, false
	}
	e.placement = e.place(target, dragged)
	return e.Placement()
}

func (e *TreeEngine) place(target *Target, dragged Rect) *Placement {
	if target == nil {
		return nil
	}
	if target.ID == RootZoneID {
		return &Placement{Type: Root, TargetID: RootZoneID}
	}
	if _, own := e.tree.DescendantIDs(e.g.activeID)[target.ID]; own {
		return nil
	}
	if target.Rect.Height <= 0 || dragged.Height <= 0 {
		return nil
	}
	rel := dragged.CenterY() - target.Rect.Top
	edge := target.Rect.Height * edgeFraction
	switch {
	case rel < edge:
		return &Placement{Type: Before, TargetID: target.ID}
	case rel > target.Rect.Height-edge:
		return &Placement{Type: After, TargetID: target.ID}
	default:
		return &Placement{Type: Inside, TargetID: target.ID}
	}
}

// Drop ends the gesture and commits the last placement. It reports false
// when there was nothing to commit: a tap, or a release with no valid target.
func (e *TreeEngine) Drop() (Move, bool, error) {
	activeID, state, placement := e.g.activeID, e.g.state, e.placement
	e.g.reset()
	e.placement = nil

	if state != Dragging || placement == nil {
		return Move{}, false, nil
	}
	mv, ok := Resolve(e.tree, activeID, *placement)
	if !ok {
		return Move{}, false, nil
	}
	if err := e.tree.MoveCategory(mv.CategoryID, mv.ParentID, mv.Order); err != nil {
		return Move{}, false, err
	}
	return mv, true, nil
}

// Cancel abandons the gesture without committing.
func (e *TreeEngine) Cancel() {
	e.g.reset()
	e.placement = nil
}

// Resolve turns a placement into tree move arguments against the current
// tree. It reports false when the placement is no longer valid.
func Resolve(tree Tree, activeID string, p Placement) (Move, bool) {
	if _, ok := tree.Category(activeID); !ok {
		return Move{}, false
	}
	if p.Type == Root {
		return Move{CategoryID: activeID, Order: countExcept(tree.Children(nil), activeID)}, true
	}

	target, ok := tree.Category(p.TargetID)
	if !ok {
		return Move{}, false
	}
	if _, own := tree.DescendantIDs(activeID)[target.ID]; own {
		return Move{}, false
	}

	switch p.Type {
	case Inside:
		return Move{
			CategoryID: activeID,
			ParentID:   model.Ref(target.ID),
			Order:      countExcept(tree.Children(model.Ref(target.ID)), activeID),
		}, true
	case Before, After:
		idx := 0
		for _, s := range tree.Children(target.ParentID) {
			if s.ID == activeID {
				continue
			}
			if s.ID == target.ID {
				break
			}
			idx++
		}
		if p.Type == After {
			idx++
		}
		return Move{CategoryID: activeID, ParentID: model.Ref(model.Deref(target.ParentID)), Order: idx}, true
	}
	return Move{}, false
}

func countExcept(cats []model.Category, id string) int {
	n := 0
	for _, c := range cats {
		if c.ID != id {
			n++
		}
	}
	return n
}
