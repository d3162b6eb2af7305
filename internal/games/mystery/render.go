package mystery

import (
	"fmt"

	"github.com/vovakirdan/mystery-maze/internal/config"
	"github.com/vovakirdan/mystery-maze/internal/core"
	mc "github.com/vovakirdan/mystery-maze/internal/games/mystery/core"
)

// glyphs holds the runes used to draw tiles.
type glyphs struct {
	shrouded rune
	wall     rune
	path     rune
	player   rune
}

func newGlyphs(cfg config.GlyphConfig) glyphs {
	var g glyphs
	g.shrouded, g.wall, g.path, g.player = cfg.Runes()
	return g
}

// Styles
var (
	tileStyle   = core.Style{Fg: core.ColorGray, Bg: core.ColorWhite}
	playerStyle = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorBlack, Bold: true}
	hitStyle    = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorGreen, Bold: true}
	missStyle   = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorRed, Bold: true}
	hudStyle    = core.Style{Bold: true}
	promptStyle = core.Style{Italic: true}
	hintStyle   = core.Style{Fg: core.ColorGray}
)

// arrowRune returns the move arrow for a direction.
func arrowRune(d mc.Dir) rune {
	switch d {
	case mc.North:
		return '^'
	case mc.South:
		return 'v'
	case mc.West:
		return '<'
	case mc.East:
		return '>'
	default:
		return '?'
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil || g.session.Maze() == nil {
		return
	}

	if g.tooSmall {
		m := g.session.Maze()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d for a %dx%d maze", m.Width()+ReservedCols, m.Height()+ReservedRows, m.Width(), m.Height()))
		return
	}

	g.renderText(dst)

	// The maze appears with the play line
	if g.introIndex < len(introScript) {
		return
	}
	g.renderMaze(dst)
	g.renderHUD(dst)
}

// renderText draws the typed script and its prompt.
func (g *Game) renderText(dst *core.Screen) {
	lines, prompt := g.line.Lines()
	for i, l := range lines {
		if i >= textRows {
			break
		}
		style := core.Plain
		if prompt && i == len(lines)-1 {
			style = promptStyle
		}
		dst.DrawTextStyled(1, i, l, style)
	}
}

// renderMaze draws every tile, the player and the last move arrow.
func (g *Game) renderMaze(dst *core.Screen) {
	m := g.session.Maze()
	for _, c := range m.Grid.Coords() {
		t := m.Grid.At(c)
		r := g.glyphs.path
		switch {
		case !t.Revealed:
			r = g.glyphs.shrouded
		case !t.Path:
			r = g.glyphs.wall
		}
		dst.SetStyled(g.mazeX+c.X, g.mazeY+c.Y, r, tileStyle)
	}

	pos := g.session.Position()
	dst.SetStyled(g.mazeX+pos.X, g.mazeY+pos.Y, g.glyphs.player, playerStyle)

	if g.flash.ticks > 0 {
		style := missStyle
		if g.flash.out.Success {
			style = hitStyle
		}
		t := g.flash.out.Target
		dst.SetStyled(g.mazeX+t.X, g.mazeY+t.Y, arrowRune(g.flash.out.Dir), style)
	}
}

// renderHUD draws the timer under the maze and the controls hint.
func (g *Game) renderHUD(dst *core.Screen) {
	m := g.session.Maze()
	y := g.mazeY + m.Height() + 1

	seconds := "Seconds: " + formatSeconds(g.session.Elapsed())
	dst.DrawTextStyled(g.mazeX, y, seconds, hudStyle)
	stats := fmt.Sprintf("  Steps: %d  Bumps: %d", g.session.Steps(), g.session.Bumps())
	dst.DrawTextStyled(g.mazeX+len(seconds), y, stats, hintStyle)

	hint := " Arrows/WASD: Move | Ctrl+S: Screenshot | Q: Quit"
	if g.session.IsWon() {
		hint = " Any key: New maze | B: Menu | Q: Quit"
	}
	dst.DrawTextStyled(0, dst.Height()-1, hint, hintStyle)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 6
	area := core.ScreenRect(dst.Width(), dst.Height()).Centered(boxW, 5)

	dst.DrawRect(area, ' ')
	dst.DrawBox(area)
	dst.DrawTextCentered(area.Y+1, title)
	dst.DrawTextCentered(area.Y+3, subtitle)
}
