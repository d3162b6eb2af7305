// Package core provides the maze model, generator and turn engine for
// Mystery Maze. This package is UI-agnostic and deterministic for a given
// random source.
package core

// Dir represents one of the four cardinal step directions.
type Dir uint8

const (
	North Dir = iota
	South
	West
	East
)

// Dirs lists every direction in the order the generator scans them.
var Dirs = [4]Dir{North, South, West, East}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	default:
		return 0, 0
	}
}
