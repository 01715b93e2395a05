package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Origin is the world coordinate of cell (0, 0), so the grid can cover a
// region of the plane that includes negative coordinates.
type ByteGrid struct {
	W, H   int
	Origin Coordinate
	data   []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// NewByteGridFor allocates a grid covering r.
func NewByteGridFor(r Rect) *ByteGrid {
	g := NewByteGrid(r.Width(), r.Height())
	g.Origin = Coordinate{X: r.XMin, Y: r.YMin}
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for grid-local coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether the world coordinate c falls inside the grid.
func (g *ByteGrid) InBounds(c Coordinate) bool {
	x, y := c.X-g.Origin.X, c.Y-g.Origin.Y
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Set writes v at world coordinate c. Out-of-bounds writes are ignored.
func (g *ByteGrid) Set(c Coordinate, v uint8) {
	if !g.InBounds(c) {
		return
	}
	g.data[g.Index(c.X-g.Origin.X, c.Y-g.Origin.Y)] = v
}

// At reads the value at world coordinate c, or 0 when out of bounds.
func (g *ByteGrid) At(c Coordinate) uint8 {
	if !g.InBounds(c) {
		return 0
	}
	return g.data[g.Index(c.X-g.Origin.X, c.Y-g.Origin.Y)]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
