package core_test

import (
	"math/rand"

	"github.com/vovakirdan/mystery-maze/internal/games/mystery/core"
)

// newRNG returns a seeded math/rand source.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// scriptedRand replays a fixed sequence of choices, wrapping around.
type scriptedRand struct {
	seq []int
	pos int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.seq[r.pos%len(r.seq)]
	r.pos++
	return v % n
}

// solve returns the direction sequence of the unique route from the entry
// to the exit, found by breadth-first search over path tiles.
func solve(m *core.Maze) []core.Dir {
	type link struct {
		prev core.Coord
		dir  core.Dir
	}
	seen := map[core.Coord]link{m.Entry: {}}
	queue := []core.Coord{m.Entry}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == m.Exit {
			break
		}
		for _, d := range core.Dirs {
			next := cur.Step(d)
			if !m.Grid.InBounds(next) || !m.Grid.At(next).Path {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = link{prev: cur, dir: d}
			queue = append(queue, next)
		}
	}

	if _, ok := seen[m.Exit]; !ok {
		return nil
	}

	var route []core.Dir
	for c := m.Exit; c != m.Entry; c = seen[c].prev {
		route = append(route, seen[c].dir)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

// pathGraph counts path tiles and 4-adjacent path pairs, and the number of
// path tiles reachable from start.
func pathGraph(m *core.Maze, start core.Coord) (nodes, edges, reachable int) {
	g := m.Grid
	for _, c := range g.Coords() {
		if !g.At(c).Path {
			continue
		}
		nodes++
		for _, d := range []core.Dir{core.East, core.South} {
			n := c.Step(d)
			if g.InBounds(n) && g.At(n).Path {
				edges++
			}
		}
	}

	seen := map[core.Coord]bool{start: true}
	stack := []core.Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reachable++
		for _, d := range core.Dirs {
			n := cur.Step(d)
			if g.InBounds(n) && g.At(n).Path && !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return nodes, edges, reachable
}
