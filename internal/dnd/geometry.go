package dnd

import (
	"math"
	"time"
)

// Point is a pointer position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Rect is an element's bounding box.
type Rect struct {
	Left, Top, Width, Height float64
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Top + r.Height/2
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Left+r.Width &&
		p.Y >= r.Top && p.Y <= r.Top+r.Height
}

// Translate offsets r by d.
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// PointerKind distinguishes the input device of a gesture.
type PointerKind int

const (
	Mouse PointerKind = iota
	Touch
)

// Activation decides when a press turns into a drag.
// Distance > 0 activates once the pointer travels that far.
// Delay > 0 activates once the press is held that long without travelling
// more than Tolerance; travelling further first aborts the gesture.
type Activation struct {
	Distance  float64
	Delay     time.Duration
	Tolerance float64
}

// Sensors pairs an activation constraint with each pointer kind.
type Sensors struct {
	Mouse Activation
	Touch Activation
}

// For returns the constraint for kind.
func (s Sensors) For(kind PointerKind) Activation {
	if kind == Touch {
		return s.Touch
	}
	return s.Mouse
}

// TreeSensors are the constraints used on the category tree.
var TreeSensors = Sensors{
	Mouse: Activation{Distance: 5},
	Touch: Activation{Delay: 200 * time.Millisecond, Tolerance: 8},
}

// GridSensors are the constraints used on the item grid.
var GridSensors = Sensors{
	Mouse: Activation{Distance: 8},
	Touch: Activation{Delay: 200 * time.Millisecond, Tolerance: 5},
}

// State is the phase of a drag gesture.
type State int

const (
	Idle State = iota
	// Pending means pressed but not yet past the activation constraint.
	Pending
	Dragging
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// gesture tracks one press from Pending to Dragging.
type gesture struct {
	state     State
	activeID  string
	origin    Point
	last      Point
	pressedAt time.Time
	rule      Activation
}

func (g *gesture) press(id string, rule Activation, at Point, now time.Time) {
	*g = gesture{state: Pending, activeID: id, origin: at, last: at, pressedAt: now, rule: rule}
	if rule.Distance <= 0 && rule.Delay <= 0 {
		g.state = Dragging
	}
}

// move advances a pending gesture and returns the resulting state.
func (g *gesture) move(at Point, now time.Time) State {
	if g.state != Pending {
		return g.state
	}
	g.last = at
	travelled := distance(g.origin, at)
	if g.rule.Delay > 0 {
		switch {
		case now.Sub(g.pressedAt) >= g.rule.Delay && travelled <= g.rule.Tolerance:
			g.state = Dragging
		case travelled > g.rule.Tolerance:
			// Moved before the hold completed: a scroll, not a drag.
			*g = gesture{}
		}
		return g.state
	}
	if travelled >= g.rule.Distance {
		g.state = Dragging
	}
	return g.state
}

// tick lets a held, stationary press activate once its delay elapses.
func (g *gesture) tick(now time.Time) State {
	return g.move(g.last, now)
}

func (g *gesture) reset() {
	*g = gesture{}
}
