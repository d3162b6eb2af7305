package core

// StepOutcome describes the result of a single move attempt.
type StepOutcome struct {
	Dir      Dir
	Target   Coord // Cell the player tried to step onto
	InBounds bool  // Whether Target exists in the grid
	Success  bool  // Whether Target is a path tile
	Position Coord // Player position after the attempt
}

// TakeStep attempts to move one cell from `from` in direction d.
//
// An in-bounds target is revealed whether or not it is a wall, so bumping
// into a wall maps it permanently. Out-of-bounds targets fail without
// touching the grid. A failed step leaves the position unchanged.
func TakeStep(m *Maze, from Coord, d Dir) StepOutcome {
	out := StepOutcome{
		Dir:      d,
		Target:   from.Step(d),
		Position: from,
	}

	if !m.Grid.InBounds(out.Target) {
		return out
	}
	out.InBounds = true

	t := m.Grid.tile(out.Target)
	t.Revealed = true
	out.Success = t.Path

	if out.Success {
		out.Position = out.Target
	}
	return out
}
