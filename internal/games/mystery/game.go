// Package mystery provides the Mystery Maze game for the platform: a fog of
// war maze explored one step at a time against the clock.
package mystery

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mystery-maze/internal/config"
	"github.com/vovakirdan/mystery-maze/internal/core"
	mc "github.com/vovakirdan/mystery-maze/internal/games/mystery/core"
	"github.com/vovakirdan/mystery-maze/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "mystery"

// Screen rows and columns the game needs around the maze.
const (
	textRows     = 5            // Script area at the top
	mazeTop      = textRows + 1 // First maze row
	ReservedRows = mazeTop + 3  // Text, gap, HUD and controls
	ReservedCols = 2
)

// Options selects the maze size and intro behavior of new games.
type Options struct {
	ConfigPath string
	Size       config.SizePreset
	Width      int // Explicit size; overrides Size when both are set
	Height     int
	SkipIntro  bool
}

// defaultOptions are used by New and set from the CLI.
var defaultOptions Options

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	defaultOptions.ConfigPath = path
}

// SetSizePreset sets the maze size preset.
func SetSizePreset(p config.SizePreset) {
	defaultOptions.Size = p
}

// SetDimensions sets an explicit maze size. Zero values clear it.
func SetDimensions(w, h int) {
	defaultOptions.Width = w
	defaultOptions.Height = h
}

// SetSkipIntro disables the intro sequence.
func SetSkipIntro(skip bool) {
	defaultOptions.SkipIntro = skip
}

// flash is the move arrow currently drawn over the maze.
type flash struct {
	out   mc.StepOutcome
	ticks int // Remaining ticks on screen
}

// Game implements the Mystery Maze game logic on top of a core.Session.
type Game struct {
	opts    Options
	cfg     config.MysteryConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	session *mc.Session

	timing     typing
	line       *typewriter // Text currently typed above the maze
	introIndex int         // Intro line being shown; len(introScript) once past the intro
	introDone  bool        // Intro shown once for this game instance
	flashTicks int
	flash      flash
	glyphs     glyphs

	tick     uint64
	tooSmall bool
	mazeX    int
	mazeY    int
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// New creates a new Mystery Maze game using the package defaults.
func New() *Game {
	return NewWithOptions(defaultOptions)
}

// NewWithOptions creates a new Mystery Maze game with explicit options.
func NewWithOptions(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Mystery Maze"
}

// Reset loads the configuration and starts a fresh maze.
// The intro plays only on the first Reset of a game instance.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0

	cfg, err := config.LoadMystery(g.opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultMysteryConfig()
	}
	if g.opts.Width > 0 && g.opts.Height > 0 {
		cfg.Maze.Width = g.opts.Width
		cfg.Maze.Height = g.opts.Height
	} else {
		config.ApplySizePreset(&cfg, g.opts.Size, runtime.ScreenW-ReservedCols, runtime.ScreenH-ReservedRows)
	}
	g.cfg = cfg

	tick := runtime.TickDuration()
	g.timing = newTyping(cfg.Intro, tick)
	g.flashTicks = durationTicks(cfg.Turn.FlashDuration, tick)
	g.glyphs = newGlyphs(cfg.Glyphs)

	g.session = mc.NewSession(g.rng, tickClock{g: g})
	g.newRun(cfg.Intro.Enabled && !g.opts.SkipIntro && !g.introDone)
}

// Resize updates the layout for a new terminal size.
// The maze in progress keeps its dimensions.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout()
}

// newRun generates a new maze and shows either the intro or the play line.
func (g *Game) newRun(withIntro bool) {
	g.session.Start(g.cfg.Maze.Width, g.cfg.Maze.Height)
	g.flash = flash{}

	if withIntro {
		g.introIndex = 0
		g.line = newTypewriter(introScript[0], g.timing)
	} else {
		g.introIndex = len(introScript)
		g.line = newTypewriter(playLine, g.timing)
	}
	g.layout()
}

// layout positions the maze and checks that it fits on screen.
func (g *Game) layout() {
	m := g.session.Maze()
	if m == nil {
		return
	}
	screen := core.ScreenRect(g.runtime.ScreenW, g.runtime.ScreenH)
	g.tooSmall = !screen.Fits(m.Width()+ReservedCols, m.Height()+ReservedRows)
	g.mazeX = screen.Centered(m.Width(), m.Height()).X
	g.mazeY = mazeTop
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.session.State() {
	case mc.StateIntro:
		for _, a := range in.Actions {
			if isAnyKey(a) {
				g.advanceIntro()
			}
		}
	case mc.StatePlaying:
		for _, a := range in.Actions {
			if d, ok := actionDir(a); ok {
				g.move(d)
			}
			if g.session.State() != mc.StatePlaying {
				break
			}
		}
	case mc.StateWon:
		for _, a := range in.Actions {
			if !isAnyKey(a) {
				continue
			}
			if g.line.Ready() {
				g.newRun(false)
				break
			}
			g.line.FastForward()
		}
	}

	if g.flash.ticks > 0 {
		g.flash.ticks--
	}
	g.line.Tick()

	// The clock starts once the play line has been typed out
	if g.session.State() == mc.StateIntro && g.introIndex >= len(introScript) && g.line.Ready() {
		g.session.Begin()
	}

	return core.StepResult{State: g.State()}
}

// advanceIntro handles a key press during the intro.
func (g *Game) advanceIntro() {
	if !g.line.Ready() {
		g.line.FastForward()
		return
	}
	if g.introIndex >= len(introScript) {
		return
	}

	g.introIndex++
	if g.introIndex < len(introScript) {
		g.line = newTypewriter(introScript[g.introIndex], g.timing)
		return
	}
	g.introDone = true
	g.line = newTypewriter(playLine, g.timing)
}

// move takes one step and shows its arrow.
func (g *Game) move(d mc.Dir) {
	out, err := g.session.Step(d)
	if err != nil {
		return
	}
	g.flash = flash{out: out, ticks: g.flashTicks}

	if g.session.IsWon() {
		g.line = newTypewriter(finishLine(g.session.Elapsed()), g.timing)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := core.GameState{
		GameOver: g.session.IsWon(),
		Paused:   g.session.State() != mc.StatePlaying && !g.session.IsWon(),
		Elapsed:  g.session.Elapsed(),
		Steps:    g.session.Steps(),
		Bumps:    g.session.Bumps(),
	}
	if m := g.session.Maze(); m != nil {
		st.Width = m.Width()
		st.Height = m.Height()
	}
	return st
}

// actionDir maps a movement action to a maze direction.
func actionDir(a core.Action) (mc.Dir, bool) {
	switch a {
	case core.ActionUp:
		return mc.North, true
	case core.ActionDown:
		return mc.South, true
	case core.ActionLeft:
		return mc.West, true
	case core.ActionRight:
		return mc.East, true
	default:
		return 0, false
	}
}

// isAnyKey reports whether a reaches the game as a "press any key".
// Back and Quit belong to the platform.
func isAnyKey(a core.Action) bool {
	return a != core.ActionNone && a != core.ActionBack && a != core.ActionQuit
}

// tickClock measures session time in simulation ticks so that replays
// with the same input produce the same times.
type tickClock struct {
	g *Game
}

var clockEpoch = time.Unix(0, 0)

func (c tickClock) Now() time.Time {
	return clockEpoch.Add(time.Duration(c.g.tick) * c.g.runtime.TickDuration())
}
