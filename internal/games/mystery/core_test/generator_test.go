package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mystery-maze/internal/games/mystery/core"
)

// Sizes exercised by the property tests, before normalization.
var sizes = []struct{ w, h int }{
	{0, 0}, {1, 2}, {3, 3}, {4, 4}, {5, 5}, {13, 7}, {8, 21}, {21, 11}, {41, 17}, {61, 21},
}

func TestNormalizeDimension(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 3},
		{0, 3},
		{1, 3},
		{2, 3},
		{3, 3},
		{4, 5},
		{5, 5},
		{12, 13},
		{13, 13},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, core.NormalizeDimension(tc.in), "NormalizeDimension(%d)", tc.in)
	}
}

func TestGenerateDimensions(t *testing.T) {
	for _, sz := range sizes {
		m := core.Generate(sz.w, sz.h, newRNG(1))
		w, h := core.NormalizeDimension(sz.w), core.NormalizeDimension(sz.h)

		assert.Equal(t, w, m.Width(), "width for %dx%d", sz.w, sz.h)
		assert.Equal(t, h, m.Height(), "height for %dx%d", sz.w, sz.h)
		assert.Len(t, m.Grid.Tiles, w*h)
		assert.Equal(t, core.C(w-2, h-1), m.Entry)
		assert.Equal(t, core.C(1, 0), m.Exit)
	}
}

func TestGeneratePerfectMaze(t *testing.T) {
	for _, sz := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			name := fmt.Sprintf("%dx%d/seed=%d", sz.w, sz.h, seed)
			t.Run(name, func(t *testing.T) {
				m := core.Generate(sz.w, sz.h, newRNG(seed))
				g := m.Grid

				// Every interior odd-lattice cell is carved and visited.
				lattice := 0
				for y := 1; y < g.H-1; y += 2 {
					for x := 1; x < g.W-1; x += 2 {
						tile := g.At(core.C(x, y))
						require.True(t, tile.Visited, "lattice cell %v not visited", tile.Coord)
						require.True(t, tile.Path, "lattice cell %v not carved", tile.Coord)
						lattice++
					}
				}
				visited := g.Count(func(tile core.Tile) bool { return tile.Visited })
				assert.Equal(t, lattice, visited, "visited cells off the odd lattice")
				assert.Equal(t, ((g.W-1)/2)*((g.H-1)/2), lattice)

				// Carved cells form a tree that spans them all.
				nodes, edges, reachable := pathGraph(m, m.Entry)
				assert.Equal(t, nodes-1, edges, "carved graph has a cycle or is disconnected")
				assert.Equal(t, nodes, reachable, "carved graph is disconnected")
			})
		}
	}
}

func TestGenerateNeverCarvesEvenEvenCells(t *testing.T) {
	m := core.Generate(21, 11, newRNG(7))
	for y := 0; y < m.Height(); y += 2 {
		for x := 0; x < m.Width(); x += 2 {
			assert.False(t, m.Grid.At(core.C(x, y)).Path, "pillar (%d,%d) carved", x, y)
		}
	}
}

func TestGenerateBoundaryIntegrity(t *testing.T) {
	for _, sz := range sizes {
		for seed := int64(1); seed <= 10; seed++ {
			m := core.Generate(sz.w, sz.h, newRNG(seed))
			for _, c := range m.Grid.Coords() {
				if !m.Grid.OnBoundary(c) || c == m.Entry || c == m.Exit {
					continue
				}
				assert.False(t, m.Grid.At(c).Path, "boundary tile %v carved (%dx%d seed %d)", c, sz.w, sz.h, seed)
			}
		}
	}
}

func TestGenerateEntryExitInvariant(t *testing.T) {
	for _, sz := range sizes {
		for seed := int64(1); seed <= 10; seed++ {
			m := core.Generate(sz.w, sz.h, newRNG(seed))

			assert.True(t, m.EntryTile().Path)
			assert.True(t, m.EntryTile().Revealed)
			assert.True(t, m.ExitTile().Path)
			assert.True(t, m.ExitTile().Revealed)
		}
	}
}

func TestGenerateOnlyEntryExitRevealed(t *testing.T) {
	m := core.Generate(13, 7, newRNG(3))
	revealed := m.Grid.Count(func(tile core.Tile) bool { return tile.Revealed })
	assert.Equal(t, 2, revealed)
}

func TestGenerateDeterministic(t *testing.T) {
	a := core.Generate(21, 11, newRNG(12345))
	b := core.Generate(21, 11, newRNG(12345))
	assert.True(t, a.Grid.Equal(b.Grid), "same seed should produce identical grids")

	seq := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	c := core.Generate(13, 7, &scriptedRand{seq: seq})
	d := core.Generate(13, 7, &scriptedRand{seq: seq})
	assert.True(t, c.Grid.Equal(d.Grid), "same choice sequence should produce identical grids")
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := core.Generate(41, 17, newRNG(1))
	b := core.Generate(41, 17, newRNG(2))
	assert.False(t, a.Grid.Equal(b.Grid), "different seeds should almost surely differ")
}

func TestGenerateAlwaysFirstChoice(t *testing.T) {
	// Always picking the first eligible direction (N, S, W, E order) from
	// (1,1) goes south, east along the bottom, then north.
	m := core.Generate(5, 5, &scriptedRand{seq: []int{0}})

	expected := "" +
		"#X###\n" +
		"#.#.#\n" +
		"#.#.#\n" +
		"#...#\n" +
		"###E#"
	// Player parked off-grid so it is not drawn.
	assert.Equal(t, expected, core.RenderASCII(m, core.C(-1, -1), false))
}

func TestGenerateSolvable(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		m := core.Generate(21, 11, newRNG(seed))
		require.NotEmpty(t, solve(m), "seed %d has no route from entry to exit", seed)
	}
}
