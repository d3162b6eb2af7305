package core

import "strings"

// ASCII glyphs used by RenderASCII.
const (
	asciiWall     = '#'
	asciiPath     = '.'
	asciiShrouded = '?'
	asciiEntry    = 'E'
	asciiExit     = 'X'
	asciiPlayer   = '@'
)

// RenderASCII draws the maze as plain text, one row per line.
// When fog is true, unrevealed tiles are drawn as '?'. A player position
// outside the grid is ignored.
func RenderASCII(m *Maze, player Coord, fog bool) string {
	var sb strings.Builder
	sb.Grow((m.Grid.W + 1) * m.Grid.H)

	for y := 0; y < m.Grid.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < m.Grid.W; x++ {
			c := C(x, y)
			t := m.Grid.tile(c)
			switch {
			case c == player:
				sb.WriteRune(asciiPlayer)
			case c == m.Entry:
				sb.WriteRune(asciiEntry)
			case c == m.Exit:
				sb.WriteRune(asciiExit)
			case fog && !t.Revealed:
				sb.WriteRune(asciiShrouded)
			case t.Path:
				sb.WriteRune(asciiPath)
			default:
				sb.WriteRune(asciiWall)
			}
		}
	}
	return sb.String()
}
