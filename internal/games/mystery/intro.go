package mystery

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/mystery-maze/internal/config"
)

// scriptLine is one screen of text: a script typed out character by
// character, followed by a prompt shown all at once.
type scriptLine struct {
	Script string
	Prompt string
}

var introScript = []scriptLine{
	{
		Script: "You have entered the Mystery Maze... Welcome.\n...A shroud of fog engulfs you...",
		Prompt: "(Press any key to continue)",
	},
	{
		Script: "As you move, you may step into a clearing. A path forward? A dead end?\nOr... you may step into a wall!",
		Prompt: "(Press any key to continue)",
	},
	{
		Script: "With every move you map out the mystery.\n\nWith every move you step towards success.",
		Prompt: "(Press any key to begin)",
	},
}

var playLine = scriptLine{
	Script: "You have entered the maze. How long will it take to find your way through?",
	Prompt: "Use the arrow keys to navigate your way through the shrouded maze.",
}

func finishLine(elapsed time.Duration) scriptLine {
	return scriptLine{
		Script: fmt.Sprintf("Congratulations. You made it to the exit in %s seconds.", formatSeconds(elapsed)),
		Prompt: "Press any key to play again.",
	}
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}

// typing holds typewriter delays converted to ticks.
type typing struct {
	charTicks    int
	newlineTicks int
	promptTicks  int
	fastChars    int // Characters revealed per tick once fast-forwarding
}

// newTyping converts configured delays to ticks of length tick.
func newTyping(cfg config.IntroConfig, tick time.Duration) typing {
	t := typing{
		charTicks:    durationTicks(cfg.CharDelay, tick),
		newlineTicks: durationTicks(cfg.NewlineDelay, tick),
		promptTicks:  durationTicks(cfg.PromptDelay, tick),
		fastChars:    1,
	}
	if cfg.FastForwardDelay <= 0 {
		t.fastChars = 1 << 16
	} else if n := int(tick / cfg.FastForwardDelay); n > 1 {
		t.fastChars = n
	}
	return t
}

// durationTicks rounds d to the nearest whole number of ticks.
func durationTicks(d, tick time.Duration) int {
	if d <= 0 || tick <= 0 {
		return 0
	}
	return int((d + tick/2) / tick)
}

// typewriter reveals a scriptLine over successive ticks.
type typewriter struct {
	line   scriptLine
	runes  []rune
	timing typing

	shown  int  // Number of script runes visible
	wait   int  // Ticks left before the next reveal
	fast   bool // A key was pressed while typing
	paused bool // Pre-prompt pause already taken
	ready  bool // Prompt visible, waiting for a key
}

func newTypewriter(line scriptLine, timing typing) *typewriter {
	return &typewriter{
		line:   line,
		runes:  []rune(line.Script),
		timing: timing,
	}
}

// Tick advances the typing effect by one tick.
func (t *typewriter) Tick() {
	if t.ready {
		return
	}
	if t.wait > 0 {
		t.wait--
		return
	}

	if t.shown < len(t.runes) {
		n := 1
		if t.fast {
			n = t.timing.fastChars
		}
		t.shown = min(t.shown+n, len(t.runes))
		t.wait = t.delayAfter(t.runes[t.shown-1]) - 1
		return
	}

	if !t.fast && !t.paused && t.timing.promptTicks > 0 {
		t.paused = true
		t.wait = t.timing.promptTicks - 1
		return
	}
	t.ready = true
}

func (t *typewriter) delayAfter(r rune) int {
	switch {
	case t.fast:
		return 1
	case r == '\n':
		return t.timing.newlineTicks
	default:
		return t.timing.charTicks
	}
}

// FastForward switches to the quick typing speed for the rest of the line.
func (t *typewriter) FastForward() {
	t.fast = true
	if t.wait > 1 {
		t.wait = 0
	}
}

// Ready reports whether the whole line and its prompt are visible.
func (t *typewriter) Ready() bool {
	return t.ready
}

// Lines returns the visible script lines followed, once ready, by a blank
// line and the prompt. The bool reports whether the last line is the prompt.
func (t *typewriter) Lines() ([]string, bool) {
	lines := strings.Split(string(t.runes[:t.shown]), "\n")
	if !t.ready || t.line.Prompt == "" {
		return lines, false
	}
	return append(lines, "", t.line.Prompt), true
}
