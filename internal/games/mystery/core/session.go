package core

import (
	"errors"
	"time"
)

// ErrNotPlaying is returned by Session.Step outside the Playing state.
var ErrNotPlaying = errors.New("session is not accepting moves")

// State is the lifecycle phase of a session.
type State uint8

const (
	StateNotStarted State = iota
	StateIntro
	StatePlaying
	StateWon
)

// String returns the string representation of a session state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateIntro:
		return "intro"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Clock supplies the current time to a session.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// Session holds one player's run through a maze.
// It is not safe for concurrent use.
type Session struct {
	rng   Rand
	clock Clock

	state    State
	maze     *Maze
	position Coord

	startTime time.Time
	elapsed   time.Duration // Frozen on win

	steps int // Move attempts while playing
	bumps int // Failed move attempts
}

// NewSession creates a session that draws maze layouts from rng.
// A nil clock uses wall time.
func NewSession(rng Rand, clock Clock) *Session {
	if clock == nil {
		clock = wallClock{}
	}
	return &Session{
		rng:   rng,
		clock: clock,
	}
}

// Start generates a fresh maze, places the player on the entry and enters
// the Intro state.
func (s *Session) Start(width, height int) {
	s.maze = Generate(width, height, s.rng)
	s.position = s.maze.Entry
	s.startTime = s.clock.Now()
	s.elapsed = 0
	s.steps = 0
	s.bumps = 0
	s.state = StateIntro
}

// Begin leaves the intro and starts the play timer.
// It does nothing outside the Intro state.
func (s *Session) Begin() {
	if s.state != StateIntro {
		return
	}
	s.startTime = s.clock.Now()
	s.state = StatePlaying
}

// Step attempts a move in direction d and checks for the win.
// Failed moves are normal outcomes, not errors.
func (s *Session) Step(d Dir) (StepOutcome, error) {
	if s.state != StatePlaying {
		return StepOutcome{Dir: d, Position: s.position}, ErrNotPlaying
	}

	out := TakeStep(s.maze, s.position, d)
	s.position = out.Position
	s.steps++
	if !out.Success {
		s.bumps++
	}

	if s.position == s.maze.Exit {
		s.elapsed = s.clock.Now().Sub(s.startTime)
		s.state = StateWon
	}
	return out, nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// IsWon reports whether the player has reached the exit.
func (s *Session) IsWon() bool {
	return s.state == StateWon
}

// Position returns the player's current coordinate.
func (s *Session) Position() Coord {
	return s.position
}

// Maze returns the active maze, or nil before Start.
func (s *Session) Maze() *Maze {
	return s.maze
}

// Elapsed returns play time. It runs while Playing, is frozen once Won and
// is zero before play begins.
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case StatePlaying:
		return s.clock.Now().Sub(s.startTime)
	case StateWon:
		return s.elapsed
	default:
		return 0
	}
}

// Steps returns the number of move attempts made while playing.
func (s *Session) Steps() int {
	return s.steps
}

// Bumps returns the number of failed move attempts.
func (s *Session) Bumps() int {
	return s.bumps
}
