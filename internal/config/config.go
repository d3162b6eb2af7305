// Package config provides YAML-based game configuration loading and
// maze size presets for Mystery Maze.
package config

import "time"

// MysteryConfig contains all configuration for the Mystery Maze game.
type MysteryConfig struct {
	Maze   MazeConfig  `yaml:"maze"`
	Intro  IntroConfig `yaml:"intro"`
	Turn   TurnConfig  `yaml:"turn"`
	Glyphs GlyphConfig `yaml:"glyphs"`
}

// MazeConfig defines the maze dimensions. Values are normalized to odd
// numbers of at least 3 by the generator.
type MazeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// IntroConfig defines the typewriter intro sequence.
type IntroConfig struct {
	Enabled          bool          `yaml:"enabled"`
	CharDelay        time.Duration `yaml:"char_delay"`         // Pause after each character
	NewlineDelay     time.Duration `yaml:"newline_delay"`      // Pause after a line break
	PromptDelay      time.Duration `yaml:"prompt_delay"`       // Pause before the prompt appears
	FastForwardDelay time.Duration `yaml:"fast_forward_delay"` // Per-character pause once a key was pressed
}

// TurnConfig defines how a move is shown.
type TurnConfig struct {
	FlashDuration time.Duration `yaml:"flash_duration"` // How long the move arrow stays on screen
}

// GlyphConfig defines the characters used to draw the maze.
// Only the first rune of each value is used.
type GlyphConfig struct {
	Shrouded string `yaml:"shrouded"`
	Wall     string `yaml:"wall"`
	Path     string `yaml:"path"`
	Player   string `yaml:"player"`
}

// Runes returns the glyphs as runes, falling back to the defaults for
// empty values.
func (g GlyphConfig) Runes() (shrouded, wall, path, player rune) {
	def := DefaultMysteryConfig().Glyphs
	return firstRune(g.Shrouded, def.Shrouded),
		firstRune(g.Wall, def.Wall),
		firstRune(g.Path, def.Path),
		firstRune(g.Player, def.Player)
}

func firstRune(s, fallback string) rune {
	if s == "" {
		s = fallback
	}
	for _, r := range s {
		return r
	}
	return ' '
}
