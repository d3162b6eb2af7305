package config

import "fmt"

// SizePreset represents a named maze size.
type SizePreset string

const (
	SizeSmall  SizePreset = "small"
	SizeNormal SizePreset = "normal"
	SizeLarge  SizePreset = "large"
	SizeHuge   SizePreset = "huge"
	SizeFit    SizePreset = "fit" // Largest maze the terminal can show
)

// SizePresets lists the presets in menu order.
var SizePresets = []SizePreset{SizeSmall, SizeNormal, SizeLarge, SizeHuge, SizeFit}

// presetDimensions holds the fixed-size presets.
var presetDimensions = map[SizePreset][2]int{
	SizeSmall:  {13, 7},
	SizeNormal: {21, 11},
	SizeLarge:  {41, 17},
	SizeHuge:   {61, 21},
}

// ParseSizePreset converts a preset name. The empty string is accepted and
// means "keep the configured size".
func ParseSizePreset(name string) (SizePreset, error) {
	if name == "" {
		return "", nil
	}
	p := SizePreset(name)
	if p == SizeFit {
		return p, nil
	}
	if _, ok := presetDimensions[p]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown size %q (want small, normal, large, huge or fit)", name)
}

// Dimensions returns the maze size for a fixed preset.
// ok is false for SizeFit and unknown presets.
func (p SizePreset) Dimensions() (w, h int, ok bool) {
	d, ok := presetDimensions[p]
	return d[0], d[1], ok
}

// Label returns a short description for menus and tables.
func (p SizePreset) Label() string {
	if w, h, ok := p.Dimensions(); ok {
		return fmt.Sprintf("%s (%dx%d)", p, w, h)
	}
	if p == SizeFit {
		return "fit (terminal)"
	}
	return string(p)
}

// PresetFor returns the fixed preset matching a maze size, if any.
func PresetFor(w, h int) (SizePreset, bool) {
	for _, p := range SizePresets {
		if pw, ph, ok := p.Dimensions(); ok && pw == w && ph == h {
			return p, true
		}
	}
	return "", false
}

// FitDimensions returns the largest odd maze size that fits in the given
// area, never smaller than 3x3.
func FitDimensions(availW, availH int) (w, h int) {
	return largestOdd(availW), largestOdd(availH)
}

func largestOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		n--
	}
	return n
}

// ApplySizePreset modifies the config based on a size preset.
// availW and availH are the cells available to the maze, used by SizeFit.
// An empty preset leaves the config untouched.
func ApplySizePreset(cfg *MysteryConfig, preset SizePreset, availW, availH int) {
	if preset == SizeFit {
		cfg.Maze.Width, cfg.Maze.Height = FitDimensions(availW, availH)
		return
	}
	if w, h, ok := preset.Dimensions(); ok {
		cfg.Maze.Width = w
		cfg.Maze.Height = h
	}
}
