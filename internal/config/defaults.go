package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mystery.yaml
var defaultMysteryYAML []byte

// DefaultMysteryConfig returns the default Mystery Maze configuration.
func DefaultMysteryConfig() MysteryConfig {
	return MysteryConfig{
		Maze: MazeConfig{
			Width:  13,
			Height: 7,
		},
		Intro: IntroConfig{
			Enabled:          true,
			CharDelay:        50 * time.Millisecond,
			NewlineDelay:     750 * time.Millisecond,
			PromptDelay:      200 * time.Millisecond,
			FastForwardDelay: 5 * time.Millisecond,
		},
		Turn: TurnConfig{
			FlashDuration: 300 * time.Millisecond,
		},
		Glyphs: GlyphConfig{
			Shrouded: "▓",
			Wall:     "█",
			Path:     " ",
			Player:   "¤",
		},
	}
}
