package dnd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmarkhub/internal/model"
)

func orders(items []model.BookmarkItem) map[string]int {
	out := make(map[string]int, len(items))
	for _, it := range items {
		out[it.ID] = it.Order
	}
	return out
}

func note(id, category string, order int) model.BookmarkItem {
	return model.BookmarkItem{ID: id, Title: id, CategoryID: category, Order: order, Payload: model.Note{}}
}

func TestReorderItems_SwapPair(t *testing.T) {
	all := []model.BookmarkItem{note("1", "x", 0), note("2", "x", 1)}

	got, ok := ReorderItems(all, all, "2", "1")
	require.True(t, ok)
	assert.Equal(t, map[string]int{"2": 0, "1": 1}, orders(got))
	assert.Equal(t, 1, all[1].Order, "input is not mutated")
}

func TestReorderItems_FilteredViewKeepsHiddenSlots(t *testing.T) {
	all := []model.BookmarkItem{
		note("a", "x", 0),
		note("b", "y", 1),
		note("c", "x", 2),
		note("d", "y", 3),
		note("e", "x", 4),
	}
	view := []model.BookmarkItem{all[0], all[2], all[4]}

	got, ok := ReorderItems(all, view, "e", "a")
	require.True(t, ok)
	assert.Equal(t, map[string]int{"e": 0, "a": 1, "c": 2, "b": 0, "d": 1}, orders(got))

	var ids []string
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids, "storage order is kept")
}

func TestReorderItems_RenumbersWithinCategory(t *testing.T) {
	all := []model.BookmarkItem{note("a", "x", 0), note("b", "y", 0), note("c", "x", 1), note("d", "y", 5)}
	view := []model.BookmarkItem{all[0], all[2]}

	got, ok := ReorderItems(all, view, "c", "a")
	require.True(t, ok)

	seen := map[string]map[int]bool{}
	for _, it := range got {
		if seen[it.CategoryID] == nil {
			seen[it.CategoryID] = map[int]bool{}
		}
		assert.False(t, seen[it.CategoryID][it.Order], "order %d used twice in %s", it.Order, it.CategoryID)
		seen[it.CategoryID][it.Order] = true
	}
	assert.Equal(t, map[string]int{"c": 0, "a": 1, "b": 0, "d": 1}, orders(got))
}

func TestReorderItems_MixedCategoryView(t *testing.T) {
	all := []model.BookmarkItem{note("x1", "x", 0), note("y1", "y", 0), note("x2", "x", 1), note("y2", "y", 1)}

	got, ok := ReorderItems(all, all, "y2", "x1")
	require.True(t, ok)
	assert.Equal(t, map[string]int{"y2": 0, "x1": 0, "y1": 1, "x2": 1}, orders(got))
}

func TestReorderItems_NoOp(t *testing.T) {
	all := []model.BookmarkItem{note("1", "x", 0), note("2", "x", 1)}

	_, ok := ReorderItems(all, all, "1", "1")
	assert.False(t, ok)
	_, ok = ReorderItems(all, all, "1", "missing")
	assert.False(t, ok)
	_, ok = ReorderItems(all, all[:1], "1", "2")
	assert.False(t, ok, "over must be visible")
}

func TestGridEngine_Drag(t *testing.T) {
	cards := []Target{
		{ID: "a", Rect: Rect{Left: 0, Top: 0, Width: 100, Height: 40}},
		{ID: "b", Rect: Rect{Left: 0, Top: 45, Width: 100, Height: 40}},
	}
	e := NewGridEngine()

	e.Press("a", Mouse, Point{X: 10, Y: 10}, t0)
	assert.Equal(t, Pending, e.PointerMove(Point{X: 10, Y: 15}, t0))
	_, ok := e.Over(Point{X: 10, Y: 60}, cards)
	assert.False(t, ok, "no hover before activation")

	assert.Equal(t, Dragging, e.PointerMove(Point{X: 10, Y: 18}, t0))
	over, ok := e.Over(Point{X: 10, Y: 60}, cards)
	require.True(t, ok)
	assert.Equal(t, "b", over)

	active, over, ok := e.Drop()
	require.True(t, ok)
	assert.Equal(t, "a", active)
	assert.Equal(t, "b", over)
	assert.Equal(t, Idle, e.State())
}

func TestGridEngine_DropOnSelfOrGap(t *testing.T) {
	cards := []Target{{ID: "a", Rect: Rect{Width: 100, Height: 40}}}
	e := NewGridEngine()

	e.Press("a", Mouse, Point{}, t0)
	e.PointerMove(Point{Y: 20}, t0)
	e.Over(Point{X: 50, Y: 20}, cards)
	_, _, ok := e.Drop()
	assert.False(t, ok)

	e.Press("a", Touch, Point{}, t0)
	e.Tick(t0.Add(200 * time.Millisecond))
	e.Over(Point{X: 500, Y: 500}, cards)
	_, _, ok = e.Drop()
	assert.False(t, ok)
}
