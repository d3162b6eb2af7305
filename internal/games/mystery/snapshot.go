package mystery

import (
	mc "github.com/vovakirdan/mystery-maze/internal/games/mystery/core"
)

// Snapshot summarizes the current run using primitive types only.
type Snapshot struct {
	Tick      uint64
	State     string
	Width     int
	Height    int
	PlayerX   int
	PlayerY   int
	Steps     int
	Bumps     int
	ElapsedMs int64
	Revealed  int    // Revealed tiles, entry and exit included
	Board     string // ASCII board with fog, see core.RenderASCII
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil || g.session.Maze() == nil {
		return Snapshot{State: mc.StateNotStarted.String()}
	}
	m := g.session.Maze()
	pos := g.session.Position()

	return Snapshot{
		Tick:      g.tick,
		State:     g.session.State().String(),
		Width:     m.Width(),
		Height:    m.Height(),
		PlayerX:   pos.X,
		PlayerY:   pos.Y,
		Steps:     g.session.Steps(),
		Bumps:     g.session.Bumps(),
		ElapsedMs: g.session.Elapsed().Milliseconds(),
		Revealed:  m.Grid.Count(func(t mc.Tile) bool { return t.Revealed }),
		Board:     mc.RenderASCII(m, pos, true),
	}
}
