package mystery

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mystery-maze/internal/config"
)

const testTick = time.Second / 60

func TestNewTypingDefaults(t *testing.T) {
	tp := newTyping(config.DefaultMysteryConfig().Intro, testTick)

	if tp.charTicks != 3 {
		t.Errorf("charTicks = %d, expected 3", tp.charTicks)
	}
	if tp.newlineTicks != 45 {
		t.Errorf("newlineTicks = %d, expected 45", tp.newlineTicks)
	}
	if tp.promptTicks != 12 {
		t.Errorf("promptTicks = %d, expected 12", tp.promptTicks)
	}
	if tp.fastChars != 3 {
		t.Errorf("fastChars = %d, expected 3", tp.fastChars)
	}
}

func TestDurationTicks(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected int
	}{
		{0, 0},
		{-time.Second, 0},
		{5 * time.Millisecond, 0},
		{10 * time.Millisecond, 1},
		{300 * time.Millisecond, 18},
		{time.Second, 60},
	}

	for _, tc := range tests {
		if got := durationTicks(tc.d, testTick); got != tc.expected {
			t.Errorf("durationTicks(%v) = %d, expected %d", tc.d, got, tc.expected)
		}
	}
}

func TestTypewriterTiming(t *testing.T) {
	tw := newTypewriter(scriptLine{Script: "ab\nc", Prompt: "go"}, newTyping(config.DefaultMysteryConfig().Intro, testTick))

	// a(3) + b(3) + newline(45) + c(3) + prompt pause(12), ready on the next tick
	const readyAt = 1 + 3 + 3 + 45 + 3 + 12

	for i := 1; i < readyAt; i++ {
		tw.Tick()
		if tw.Ready() {
			t.Fatalf("ready too early at tick %d", i)
		}
	}
	tw.Tick()
	if !tw.Ready() {
		t.Fatalf("expected ready at tick %d", readyAt)
	}

	lines, prompt := tw.Lines()
	expected := []string{"ab", "c", "", "go"}
	if !prompt || strings.Join(lines, "|") != strings.Join(expected, "|") {
		t.Errorf("Lines() = %q (prompt=%v), expected %q", lines, prompt, expected)
	}
}

func TestTypewriterRevealsOneCharAtATime(t *testing.T) {
	tw := newTypewriter(scriptLine{Script: "abc"}, newTyping(config.DefaultMysteryConfig().Intro, testTick))

	tw.Tick()
	if lines, _ := tw.Lines(); lines[0] != "a" {
		t.Errorf("after first tick got %q, expected \"a\"", lines[0])
	}
	for i := 0; i < 3; i++ {
		tw.Tick()
	}
	if lines, _ := tw.Lines(); lines[0] != "ab" {
		t.Errorf("after 4 ticks got %q, expected \"ab\"", lines[0])
	}
}

func TestTypewriterFastForward(t *testing.T) {
	line := introScript[1]
	tw := newTypewriter(line, newTyping(config.DefaultMysteryConfig().Intro, testTick))

	tw.Tick()
	tw.FastForward()

	ticks := 0
	for !tw.Ready() && ticks < 1000 {
		tw.Tick()
		ticks++
	}

	// 3 characters per tick plus one tick to show the prompt
	maxTicks := len([]rune(line.Script))/3 + 3
	if ticks > maxTicks {
		t.Errorf("fast-forward took %d ticks, expected at most %d", ticks, maxTicks)
	}
	lines, prompt := tw.Lines()
	if !prompt || lines[len(lines)-1] != line.Prompt {
		t.Errorf("prompt not shown after fast-forward: %q", lines)
	}
}

func TestTypewriterZeroFastDelayFinishesImmediately(t *testing.T) {
	cfg := config.DefaultMysteryConfig().Intro
	cfg.FastForwardDelay = 0
	tw := newTypewriter(playLine, newTyping(cfg, testTick))

	tw.FastForward()
	tw.Tick() // whole script
	tw.Tick() // prompt
	if !tw.Ready() {
		t.Error("expected line to be ready after two ticks")
	}
}

func TestFinishLine(t *testing.T) {
	line := finishLine(3520 * time.Millisecond)
	expected := "Congratulations. You made it to the exit in 3.52 seconds."
	if line.Script != expected {
		t.Errorf("finishLine script = %q, expected %q", line.Script, expected)
	}
	if line.Prompt != "Press any key to play again." {
		t.Errorf("unexpected prompt %q", line.Prompt)
	}
}

func TestIntroScriptFitsTextArea(t *testing.T) {
	all := append(append([]scriptLine{}, introScript...), playLine, finishLine(0))
	for _, l := range all {
		rows := strings.Count(l.Script, "\n") + 1 + 2 // blank line + prompt
		if rows > textRows {
			t.Errorf("line %q needs %d rows, text area has %d", l.Script, rows, textRows)
		}
	}
}
