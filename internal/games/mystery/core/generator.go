package core

// MinDimension is the smallest width or height a maze can have.
const MinDimension = 3

// Rand is the random source used for neighbor selection.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Maze is a generated grid with its fixed entry and exit tiles.
type Maze struct {
	Grid  *Grid
	Entry Coord // Bottom boundary cell (W-2, H-1)
	Exit  Coord // Top boundary cell (1, 0)
}

// Width returns the maze width in tiles.
func (m *Maze) Width() int {
	return m.Grid.W
}

// Height returns the maze height in tiles.
func (m *Maze) Height() int {
	return m.Grid.H
}

// EntryTile returns the entry tile.
func (m *Maze) EntryTile() *Tile {
	return m.Grid.tile(m.Entry)
}

// ExitTile returns the exit tile.
func (m *Maze) ExitTile() *Tile {
	return m.Grid.tile(m.Exit)
}

// NormalizeDimension clamps n to at least MinDimension and rounds even
// values up to the next odd number.
func NormalizeDimension(n int) int {
	if n < MinDimension {
		return MinDimension
	}
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// Generate builds a perfect maze of (normalized) width x height.
//
// Passages are carved by randomized depth-first backtracking over the odd
// coordinate lattice, starting at (1,1). Each advance carves the hallway cell
// between two lattice cells, so the carved cells form a spanning tree and the
// outer ring stays wall except for the entry and exit punctures.
func Generate(width, height int, rng Rand) *Maze {
	width = NormalizeDimension(width)
	height = NormalizeDimension(height)

	g := NewGrid(width, height)
	carve(g, C(1, 1), rng)

	m := &Maze{
		Grid:  g,
		Entry: C(width-2, height-1),
		Exit:  C(1, 0),
	}
	for _, t := range []*Tile{m.EntryTile(), m.ExitTile()} {
		t.Path = true
		t.Revealed = true
	}
	return m
}

// carve runs the backtracking walk from start using an explicit stack.
// The frame on top of the stack is re-scanned each iteration, so neighbors
// claimed by a deeper branch are never carved into twice.
func carve(g *Grid, start Coord, rng Rand) {
	visit := func(c Coord) {
		t := g.tile(c)
		t.Path = true
		t.Visited = true
	}

	visit(start)
	stack := []Coord{start}
	var open [4]Dir

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		n := unvisitedNeighbors(g, cur, &open)
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := open[rng.Intn(n)]
		g.tile(cur.Step(d)).Path = true
		next := cur.Jump(d, 2)
		visit(next)
		stack = append(stack, next)
	}
}

// unvisitedNeighbors fills out with the directions whose lattice neighbor
// two cells away is interior and unvisited, and returns how many there are.
func unvisitedNeighbors(g *Grid, c Coord, out *[4]Dir) int {
	n := 0
	for _, d := range Dirs {
		var inside bool
		switch d {
		case North:
			inside = c.Y > 1
		case South:
			inside = c.Y < g.H-2
		case West:
			inside = c.X > 1
		case East:
			inside = c.X < g.W-2
		}
		if inside && !g.tile(c.Jump(d, 2)).Visited {
			out[n] = d
			n++
		}
	}
	return n
}
