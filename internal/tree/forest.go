// Package tree maintains the category forest: descendant queries, moves with
// sibling renumbering, breadcrumbs, and the flattened display list.
package tree

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"

	"bookmarkhub/internal/model"
)

var (
	// ErrNotFound is returned when a category id is unknown.
	ErrNotFound = errors.New("category not found")
	// ErrCycle is returned when a move would place a category under itself.
	ErrCycle = errors.New("cannot move a category into itself or its descendants")
)

// Forest is an ordered set of categories linked by parent id.
// It is not safe for concurrent use.
type Forest struct {
	cats  []model.Category
	newID func() string
}

// New creates a Forest over a copy of cats.
func New(cats []model.Category) *Forest {
	return &Forest{
		cats:  model.CloneCategories(cats),
		newID: uuid.NewString,
	}
}

// Categories returns a copy of the categories in storage order.
func (f *Forest) Categories() []model.Category {
	return model.CloneCategories(f.cats)
}

// Len returns the number of categories.
func (f *Forest) Len() int {
	return len(f.cats)
}

// Category looks up a category by id.
func (f *Forest) Category(id string) (model.Category, bool) {
	i := f.index(id)
	if i < 0 {
		return model.Category{}, false
	}
	return model.CloneCategories(f.cats[i : i+1])[0], true
}

func (f *Forest) index(id string) int {
	for i := range f.cats {
		if f.cats[i].ID == id {
			return i
		}
	}
	return -1
}

// childIndices returns the positions of parentID's children sorted by
// order, ties kept in storage order. skip is excluded.
func (f *Forest) childIndices(parentID *string, skip string) []int {
	var idx []int
	for i := range f.cats {
		if f.cats[i].ID != skip && model.SameParent(f.cats[i].ParentID, parentID) {
			idx = append(idx, i)
		}
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return f.cats[a].Order - f.cats[b].Order
	})
	return idx
}

// Children returns parentID's children in display order. nil is the root.
func (f *Forest) Children(parentID *string) []model.Category {
	idx := f.childIndices(parentID, "")
	out := make([]model.Category, 0, len(idx))
	for _, i := range idx {
		out = append(out, f.cats[i])
	}
	return model.CloneCategories(out)
}

// byParent indexes child ids by parent id; root children sit under "".
func (f *Forest) byParent() map[string][]string {
	m := make(map[string][]string, len(f.cats))
	for _, c := range f.cats {
		p := model.Deref(c.ParentID)
		m[p] = append(m[p], c.ID)
	}
	return m
}

// DescendantIDs returns id and every category below it.
// The walk tolerates corrupted data that already contains a cycle.
func (f *Forest) DescendantIDs(id string) map[string]struct{} {
	children := f.byParent()
	out := map[string]struct{}{id: {}}
	stack := []string{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range children[cur] {
			if _, seen := out[child]; seen {
				continue
			}
			out[child] = struct{}{}
			stack = append(stack, child)
		}
	}
	return out
}

// IsDescendant reports whether candidate is id itself or lies below it.
func (f *Forest) IsDescendant(id, candidate string) bool {
	_, ok := f.DescendantIDs(id)[candidate]
	return ok
}

// Move reparents id under newParentID and renumbers the destination's
// children so the moved node lands at newOrder (clamped to the valid range).
// Every destination child ends up with order equal to its index, and so do
// the children left behind under the old parent.
//
// Move does not check for cycles; callers go through MoveCategory.
func (f *Forest) Move(id string, newParentID *string, newOrder int) error {
	i := f.index(id)
	if i < 0 {
		return ErrNotFound
	}
	siblings := f.childIndices(newParentID, id)
	newOrder = max(0, min(newOrder, len(siblings)))

	placed := make([]int, 0, len(siblings)+1)
	placed = append(placed, siblings[:newOrder]...)
	placed = append(placed, i)
	placed = append(placed, siblings[newOrder:]...)

	oldParentID := f.cats[i].ParentID
	f.cats[i].ParentID = model.Ref(model.Deref(newParentID))
	for pos, ci := range placed {
		f.cats[ci].Order = pos
	}
	if !model.SameParent(oldParentID, newParentID) {
		for pos, ci := range f.childIndices(oldParentID, id) {
			f.cats[ci].Order = pos
		}
	}
	return nil
}

// MoveCategory is Move guarded against unknown ids and cycles. On error
// the forest is unchanged.
func (f *Forest) MoveCategory(id string, newParentID *string, newOrder int) error {
	if f.index(id) < 0 {
		return ErrNotFound
	}
	if newParentID != nil {
		if f.index(*newParentID) < 0 {
			return ErrNotFound
		}
		if f.IsDescendant(id, *newParentID) {
			return ErrCycle
		}
	}
	return f.Move(id, newParentID, newOrder)
}

// Path returns the chain of categories from the root down to id.
func (f *Forest) Path(id string) []model.Category {
	var path []model.Category
	seen := make(map[string]bool)
	for cur := id; cur != "" && !seen[cur]; {
		seen[cur] = true
		i := f.index(cur)
		if i < 0 {
			break
		}
		path = append(path, f.cats[i])
		cur = model.Deref(f.cats[i].ParentID)
	}
	slices.Reverse(path)
	return model.CloneCategories(path)
}

// Node is one row of the flattened display list.
type Node struct {
	Category model.Category
	Level    int
}

// Flatten returns the visible rows depth-first. A node's children are listed
// only when expanded reports true for it; a nil expanded lists everything.
func (f *Forest) Flatten(expanded map[string]bool) []Node {
	var out []Node
	seen := make(map[string]bool)
	var walk func(parentID *string, level int)
	walk = func(parentID *string, level int) {
		for _, i := range f.childIndices(parentID, "") {
			c := f.cats[i]
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			out = append(out, Node{Category: model.CloneCategories([]model.Category{c})[0], Level: level})
			if expanded == nil || expanded[c.ID] {
				walk(model.Ref(c.ID), level+1)
			}
		}
	}
	walk(nil, 0)
	return out
}

// Add creates a category at the end of parentID's children.
func (f *Forest) Add(name string, parentID *string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, &model.ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if parentID != nil && f.index(*parentID) < 0 {
		return model.Category{}, ErrNotFound
	}
	c := model.Category{
		ID:       f.newID(),
		Name:     name,
		ParentID: model.Ref(model.Deref(parentID)),
		Order:    len(f.childIndices(parentID, "")),
	}
	f.cats = append(f.cats, c)
	return model.CloneCategories([]model.Category{c})[0], nil
}

// Rename changes a category's display name in place.
func (f *Forest) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &model.ValidationError{Field: "name", Message: "cannot be empty"}
	}
	i := f.index(id)
	if i < 0 {
		return ErrNotFound
	}
	f.cats[i].Name = name
	return nil
}

// Delete removes id with its whole subtree and returns the removed ids.
func (f *Forest) Delete(id string) (map[string]struct{}, error) {
	if f.index(id) < 0 {
		return nil, ErrNotFound
	}
	removed := f.DescendantIDs(id)
	f.cats = slices.DeleteFunc(f.cats, func(c model.Category) bool {
		_, gone := removed[c.ID]
		return gone
	})
	return removed, nil
}
