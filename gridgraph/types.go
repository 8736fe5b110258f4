// Package gridgraph defines coordinates, headings and the cost grid
// for the gridgraph subpackage of github.com/katalvlaran/heatpath.
package gridgraph

import "fmt"

// Heading is one of the four cardinal movement directions.
// Values are ordered clockwise so that turns are modular steps.
type Heading uint8

const (
	// Up moves toward row 0.
	Up Heading = iota
	// Right moves toward higher columns.
	Right
	// Down moves toward higher rows.
	Down
	// Left moves toward column 0.
	Left
)

// headingDeltas holds the (dx, dy) unit offset for each Heading.
var headingDeltas = [4][2]int{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

// Headings lists all four headings in clockwise order.
var Headings = [4]Heading{Up, Right, Down, Left}

// Delta returns the unit column and row offset of h.
func (h Heading) Delta() (dx, dy int) {
	d := headingDeltas[h&3]
	return d[0], d[1]
}

// Opposite returns the heading pointing the other way (180°).
func (h Heading) Opposite() Heading { return (h + 2) & 3 }

// TurnLeft returns the heading 90° counter-clockwise from h.
func (h Heading) TurnLeft() Heading { return (h + 3) & 3 }

// TurnRight returns the heading 90° clockwise from h.
func (h Heading) TurnRight() Heading { return (h + 1) & 3 }

// String implements fmt.Stringer.
func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// Coord addresses a grid cell by column X and row Y.
type Coord struct {
	X, Y int
}

// Step returns the coordinate n cells away from c along h.
// The result may lie outside any grid; callers check bounds.
func (c Coord) Step(h Heading, n int) Coord {
	dx, dy := h.Delta()
	return Coord{X: c.X + dx*n, Y: c.Y + dy*n}
}

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// String formats c as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CostGrid is an immutable rectangular grid of non-negative cell costs.
// cells is row-major: the cost of (x,y) lives at cells[y*width+x].
type CostGrid struct {
	width, height int
	cells         []int
	minCost       int
}
