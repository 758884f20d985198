package gesture

import (
	"math"
	"strconv"
)

// Point is a pointer position in surface coordinates. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Valid reports whether both coordinates are finite numbers.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Sub returns the per-axis delta p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Len returns the straight-line length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// String returns "(x,y)" with the shortest float formatting.
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// Intent is the single discrete outcome of one interaction.
type Intent uint8

const (
	IntentNone         Intent = iota // interaction discarded (scroll, aborted drag, cancel)
	IntentTap                        // single tap, committed after the double-tap window
	IntentDoubleTap                  // second tap inside the double-tap window
	IntentLongPress                  // pointer held still for the long-press duration
	IntentSwipeTrigger               // leftward horizontal drag past the trigger distance
)

// String returns the snake_case name used in logs and traces.
func (i Intent) String() string {
	switch i {
	case IntentTap:
		return "tap"
	case IntentDoubleTap:
		return "double_tap"
	case IntentLongPress:
		return "long_press"
	case IntentSwipeTrigger:
		return "swipe_trigger"
	default:
		return "none"
	}
}

// Axis identifies the dominant movement axis of a sample.
type Axis uint8

const (
	AxisNone       Axis = iota // no displacement
	AxisHorizontal             // |dx| > |dy|
	AxisVertical               // |dy| >= |dx|; ties favour vertical
)

// dominantAxis compares absolute per-axis deltas. Exact ties resolve to
// vertical so that an ambiguous diagonal never opens the reveal.
func dominantAxis(d Point) Axis {
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	switch {
	case ax == 0 && ay == 0:
		return AxisNone
	case ax > ay:
		return AxisHorizontal
	default:
		return AxisVertical
	}
}
