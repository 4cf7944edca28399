package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds marks an access outside the grid. It is raised as a
// panic because it can only happen if the position clamp is broken.
var ErrOutOfBounds = errors.New("world: coordinate out of bounds")

// Coord is a grid coordinate. X is the column and grows to the right,
// Y is the row and grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Grid is a fixed-size rectangle of tiles stored in row-major order:
// index = y*w + x. It never resizes after creation.
type Grid struct {
	w, h  int
	tiles []Tile
}

// NewGrid creates a grid with every cell set to Air.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Grid{
		w:     w,
		h:     h,
		tiles: make([]Tile, w*h),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

func (g *Grid) index(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.w, g.h))
	}
	return c.Y*g.w + c.X
}

// Get returns the tile at c. Panics with ErrOutOfBounds outside the grid.
func (g *Grid) Get(c Coord) Tile {
	return g.tiles[g.index(c)]
}

// Set overwrites the tile at c. Panics with ErrOutOfBounds outside the grid.
func (g *Grid) Set(c Coord, t Tile) {
	g.tiles[g.index(c)] = t
}

// Mine clears the tile at c to Air and returns its point value.
// Mining Air yields nothing and leaves the grid unchanged.
func (g *Grid) Mine(c Coord) uint {
	i := g.index(c)
	points := g.tiles[i].Points()
	g.tiles[i] = TileAir
	return points
}

// Tiles returns a copy of the tiles in row-major order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Count returns the number of cells holding t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}
