package dnd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmarkhub/internal/model"
	"bookmarkhub/internal/tree"
)

var t0 = time.UnixMilli(1_700_000_000_000)

func testForest() *tree.Forest {
	return tree.New([]model.Category{
		{ID: "A", Name: "A", Order: 0},
		{ID: "B", Name: "B", Order: 1},
		{ID: "C", Name: "C", Order: 2},
		{ID: "A1", Name: "A1", ParentID: model.Ref("A"), Order: 0},
	})
}

// startDrag presses id with the mouse and moves far enough to activate.
func startDrag(t *testing.T, e *TreeEngine, id string) {
	t.Helper()
	require.NoError(t, e.Press(id, Mouse, Point{}, t0))
	require.Equal(t, Dragging, e.PointerMove(Point{Y: 10}, t0.Add(10*time.Millisecond)))
}

func TestTreeEngine_PlacementBands(t *testing.T) {
	row := &Target{ID: "C", Rect: Rect{Top: 100, Height: 40}}

	tests := []struct {
		name    string
		centerY float64
		want    PlacementType
	}{
		{name: "top band", centerY: 105, want: Before},
		{name: "middle band", centerY: 120, want: Inside},
		{name: "bottom band", centerY: 138, want: After},
		{name: "just inside top edge", centerY: 112, want: Inside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewTreeEngine(testForest())
			startDrag(t, e, "B")
			p, ok := e.Over(row, Rect{Top: tt.centerY - 10, Height: 20})
			require.True(t, ok)
			assert.Equal(t, Placement{Type: tt.want, TargetID: "C"}, p)
		})
	}
}

func TestTreeEngine_OverIgnoresOwnSubtree(t *testing.T) {
	e := NewTreeEngine(testForest())
	startDrag(t, e, "A")

	_, ok := e.Over(&Target{ID: "A1", Rect: Rect{Top: 0, Height: 40}}, Rect{Top: 10, Height: 20})
	assert.False(t, ok)
	_, ok = e.Over(&Target{ID: "A", Rect: Rect{Top: 0, Height: 40}}, Rect{Top: 10, Height: 20})
	assert.False(t, ok)

	p, ok := e.Over(&Target{ID: RootZoneID}, Rect{})
	require.True(t, ok)
	assert.Equal(t, Root, p.Type)

	_, ok = e.Over(nil, Rect{})
	assert.False(t, ok, "leaving every target clears the placement")
}

func TestTreeEngine_DropBeforeSibling(t *testing.T) {
	f := testForest()
	e := NewTreeEngine(f)
	startDrag(t, e, "B")
	e.Over(&Target{ID: "A", Rect: Rect{Top: 100, Height: 40}}, Rect{Top: 95, Height: 20})

	mv, ok, err := e.Drop()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Move{CategoryID: "B", Order: 0}, mv)
	assert.Equal(t, Idle, e.State())

	var got []string
	for _, c := range f.Children(nil) {
		got = append(got, c.ID)
	}
	assert.Equal(t, []string{"B", "A", "C"}, got)
}

func TestTreeEngine_DropAfterSibling(t *testing.T) {
	f := testForest()
	e := NewTreeEngine(f)
	startDrag(t, e, "A")
	e.Over(&Target{ID: "B", Rect: Rect{Top: 100, Height: 40}}, Rect{Top: 128, Height: 20})

	mv, ok, err := e.Drop()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, mv.Order)

	var got []string
	for _, c := range f.Children(nil) {
		got = append(got, c.ID)
	}
	assert.Equal(t, []string{"B", "A", "C"}, got)
}

func TestTreeEngine_DropInsideAndRoot(t *testing.T) {
	f := testForest()
	e := NewTreeEngine(f)

	startDrag(t, e, "C")
	e.Over(&Target{ID: "A", Rect: Rect{Top: 0, Height: 40}}, Rect{Top: 10, Height: 20})
	mv, ok, err := e.Drop()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "A", model.Deref(mv.ParentID))
	assert.Equal(t, 1, mv.Order)

	c, _ := f.Category("C")
	assert.Equal(t, "A", model.Deref(c.ParentID))
	assert.Equal(t, 1, c.Order)

	startDrag(t, e, "A1")
	e.Over(&Target{ID: RootZoneID}, Rect{})
	mv, ok, err = e.Drop()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, mv.ParentID)
	assert.Equal(t, 2, mv.Order, "root siblings are A and B")

	a1, _ := f.Category("A1")
	assert.True(t, a1.IsRoot())
	assert.Equal(t, 2, a1.Order)
}

func TestTreeEngine_DropWithoutPlacement(t *testing.T) {
	f := testForest()
	before := f.Categories()
	e := NewTreeEngine(f)

	require.NoError(t, e.Press("B", Mouse, Point{}, t0))
	_, ok, err := e.Drop()
	require.NoError(t, err)
	assert.False(t, ok, "a tap commits nothing")

	startDrag(t, e, "B")
	_, ok, err = e.Drop()
	require.NoError(t, err)
	assert.False(t, ok)

	startDrag(t, e, "B")
	e.Over(&Target{ID: "A", Rect: Rect{Top: 0, Height: 40}}, Rect{Top: 10, Height: 20})
	e.Cancel()
	assert.Equal(t, Idle, e.State())
	_, ok, _ = e.Drop()
	assert.False(t, ok)

	assert.Equal(t, before, f.Categories())
}

func TestTreeEngine_PressUnknown(t *testing.T) {
	e := NewTreeEngine(testForest())
	assert.Error(t, e.Press("nope", Mouse, Point{}, t0))
	assert.Equal(t, Idle, e.State())
}

func TestTreeEngine_Activation(t *testing.T) {
	t.Run("mouse below distance stays pending", func(t *testing.T) {
		e := NewTreeEngine(testForest())
		require.NoError(t, e.Press("A", Mouse, Point{}, t0))
		assert.Equal(t, Pending, e.PointerMove(Point{X: 3}, t0))
		assert.Equal(t, Dragging, e.PointerMove(Point{X: 3, Y: 4}, t0))
	})

	t.Run("touch moving early aborts", func(t *testing.T) {
		e := NewTreeEngine(testForest())
		require.NoError(t, e.Press("A", Touch, Point{}, t0))
		assert.Equal(t, Pending, e.PointerMove(Point{Y: 4}, t0.Add(50*time.Millisecond)))
		assert.Equal(t, Idle, e.PointerMove(Point{Y: 12}, t0.Add(100*time.Millisecond)))
		assert.Equal(t, "", e.ActiveID())
	})

	t.Run("touch hold activates on tick", func(t *testing.T) {
		e := NewTreeEngine(testForest())
		require.NoError(t, e.Press("A", Touch, Point{}, t0))
		assert.Equal(t, Pending, e.Tick(t0.Add(150*time.Millisecond)))
		assert.Equal(t, Dragging, e.Tick(t0.Add(200*time.Millisecond)))
		assert.Equal(t, "A", e.ActiveID())
	})
}

func TestResolve_RevalidatesTargets(t *testing.T) {
	f := testForest()

	_, ok := Resolve(f, "A", Placement{Type: Inside, TargetID: "A1"})
	assert.False(t, ok)
	_, ok = Resolve(f, "A", Placement{Type: Before, TargetID: "gone"})
	assert.False(t, ok)
	_, ok = Resolve(f, "gone", Placement{Type: Root})
	assert.False(t, ok)

	mv, ok := Resolve(f, "C", Placement{Type: Before, TargetID: "A1"})
	require.True(t, ok)
	assert.Equal(t, Move{CategoryID: "C", ParentID: model.Ref("A"), Order: 0}, mv)
}
