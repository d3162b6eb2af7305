package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate lookup falls outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Tile is a single cell of the maze.
type Tile struct {
	Coord    Coord // Position of this tile in the grid
	Path     bool  // Carved passage; false means wall
	Revealed bool  // Known to the player; never reverts to false
	Visited  bool  // Committed by the generator; unused during play
}

// Grid is the rectangular tile container of a maze.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Tiles []Tile // Flat array of tiles, length W*H
}

// NewGrid creates a grid with every tile a shrouded wall.
func NewGrid(w, h int) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Tiles[y*w+x].Coord = C(x, y)
		}
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Tile returns the tile at the given coordinate for reading or mutation.
// An out-of-range coordinate is a caller bug and yields ErrOutOfBounds.
func (g *Grid) Tile(c Coord) (*Tile, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("tile %v in %dx%d grid: %w", c, g.W, g.H, ErrOutOfBounds)
	}
	return &g.Tiles[g.index(c)], nil
}

// At returns a copy of the tile at c. It panics if c is out of bounds.
func (g *Grid) At(c Coord) Tile {
	t, err := g.Tile(c)
	if err != nil {
		panic(err)
	}
	return *t
}

// tile is the unchecked accessor used where bounds are already established.
func (g *Grid) tile(c Coord) *Tile {
	return &g.Tiles[g.index(c)]
}

// Count returns the number of tiles matching pred.
func (g *Grid) Count(pred func(Tile) bool) int {
	n := 0
	for _, t := range g.Tiles {
		if pred(t) {
			n++
		}
	}
	return n
}

// Coords returns all coordinates of the grid ordered by row then column.
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// OnBoundary reports whether c lies on the outer ring of the grid.
func (g *Grid) OnBoundary(c Coord) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.W-1 || c.Y == g.H-1
}

// Equal returns true if two grids have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.Tiles {
		if t != other.Tiles[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{W: g.W, H: g.H, Tiles: tiles}
}
