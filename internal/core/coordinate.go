package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is an integer position on the world plane. It is comparable and
// can be used directly as a map key.
type Coordinate struct {
	X, Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate { return Coordinate{X: x, Y: y} }

// String returns the canonical "x,y" encoding.
func (c Coordinate) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// ParseCoordinate decodes the canonical "x,y" encoding.
func ParseCoordinate(s string) (Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("core: malformed coordinate %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coordinate{}, fmt.Errorf("core: malformed coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coordinate{}, fmt.Errorf("core: malformed coordinate %q: %w", s, err)
	}
	return Coordinate{X: x, Y: y}, nil
}

// Array returns the coordinate as an [x, y] pair.
func (c Coordinate) Array() [2]int { return [2]int{c.X, c.Y} }

// Add returns c translated by (dx, dy).
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent returns the four orthogonal neighbours in east, west, south, north
// order.
func (c Coordinate) Adjacent() [4]Coordinate {
	return [4]Coordinate{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// Ring returns the cells at Chebyshev distance exactly d, walking the square
// clockwise from its top-left corner. Ring(0) is the coordinate itself.
func (c Coordinate) Ring(d int) []Coordinate {
	if d <= 0 {
		return []Coordinate{c}
	}
	out := make([]Coordinate, 0, 8*d)
	for x := c.X - d; x < c.X+d; x++ {
		out = append(out, Coordinate{x, c.Y - d})
	}
	for y := c.Y - d; y < c.Y+d; y++ {
		out = append(out, Coordinate{c.X + d, y})
	}
	for x := c.X + d; x > c.X-d; x-- {
		out = append(out, Coordinate{x, c.Y + d})
	}
	for y := c.Y + d; y > c.Y-d; y-- {
		out = append(out, Coordinate{c.X - d, y})
	}
	return out
}

// Neighbors returns the neighbours of c under the given connectivity.
func (c Coordinate) Neighbors(conn Connectivity) []Coordinate {
	if conn == Conn8 {
		return c.Ring(1)
	}
	adj := c.Adjacent()
	return adj[:]
}

// Scan returns the 2d+1 cells of the diagonal running from (x-d, y-d) to
// (x+d, y+d).
func (c Coordinate) Scan(d int) []Coordinate {
	if d < 0 {
		d = -d
	}
	out := make([]Coordinate, 0, 2*d+1)
	for i := -d; i <= d; i++ {
		out = append(out, Coordinate{c.X + i, c.Y + i})
	}
	return out
}

// Offset moves c by amount cells in the given direction.
func (c Coordinate) Offset(dir Direction, amount int) Coordinate {
	switch dir {
	case North:
		return Coordinate{c.X, c.Y - amount}
	case South:
		return Coordinate{c.X, c.Y + amount}
	case East:
		return Coordinate{c.X + amount, c.Y}
	case West:
		return Coordinate{c.X - amount, c.Y}
	}
	return c
}

// ManhattanTo returns the L1 distance between c and o.
func (c Coordinate) ManhattanTo(o Coordinate) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four compass directions.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists the compass directions in declaration order.
var Directions = [4]Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "direction(" + strconv.Itoa(int(d)) + ")"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Others returns the three directions other than d.
func (d Direction) Others() []Direction {
	out := make([]Direction, 0, 3)
	for _, o := range Directions {
		if o != d {
			out = append(out, o)
		}
	}
	return out
}

// Connectivity selects which cells count as neighbours.
type Connectivity uint8

const (
	// Conn4 uses the orthogonal neighbours only.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals.
	Conn8
)

// Rect is an axis-aligned rectangle with inclusive bounds.
type Rect struct {
	XMin, XMax int
	YMin, YMax int
}

// RectAround returns the rectangle of the given half-extent centred on c.
func RectAround(c Coordinate, halfW, halfH int) Rect {
	return Rect{XMin: c.X - halfW, XMax: c.X + halfW, YMin: c.Y - halfH, YMax: c.Y + halfH}
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coordinate) bool {
	return c.X >= r.XMin && c.X <= r.XMax && c.Y >= r.YMin && c.Y <= r.YMax
}

// Empty reports whether r contains no cells.
func (r Rect) Empty() bool { return r.XMin > r.XMax || r.YMin > r.YMax }

// Width returns the number of columns covered by r.
func (r Rect) Width() int {
	if r.Empty() {
		return 0
	}
	return r.XMax - r.XMin + 1
}

// Height returns the number of rows covered by r.
func (r Rect) Height() int {
	if r.Empty() {
		return 0
	}
	return r.YMax - r.YMin + 1
}

// Union returns the smallest rectangle containing both r and o. Empty
// rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		XMin: min(r.XMin, o.XMin),
		XMax: max(r.XMax, o.XMax),
		YMin: min(r.YMin, o.YMin),
		YMax: max(r.YMax, o.YMax),
	}
}

// Expand grows r by d cells on every side.
func (r Rect) Expand(d int) Rect {
	return Rect{XMin: r.XMin - d, XMax: r.XMax + d, YMin: r.YMin - d, YMax: r.YMax + d}
}

// EmptyRect is the identity for Union.
var EmptyRect = Rect{XMin: 1, XMax: 0, YMin: 1, YMax: 0}

// Filter returns the coordinates of cs lying inside r, preserving order.
func (r Rect) Filter(cs []Coordinate) []Coordinate {
	var out []Coordinate
	for _, c := range cs {
		if r.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
