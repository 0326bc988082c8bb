// Package playback implements the guided-workout timer state machine.
// The engine holds an explicit state object and a pure tick transition,
// so tests drive it by calling Tick N times instead of waiting on a
// real clock. The presentation layer owns the one-second timer.
package playback

import (
	"errors"

	"github.com/flowfit/flowfit/internal/domain"
)

// ErrEmptyPlaybackList is returned when an engine is constructed with
// zero exercises. Fatal to that construction attempt only.
var ErrEmptyPlaybackList = errors.New("playback requires at least one exercise")

// CountdownSeconds is the fixed get-ready countdown before the first
// exercise.
const CountdownSeconds = 5

// Phase is the current stage of playback.
type Phase string

const (
	PhaseCountdown Phase = "countdown"
	PhaseExercise  Phase = "exercise"
	PhaseRest      Phase = "rest"
	PhaseCompleted Phase = "completed"
)

// Config customizes a single playback attempt without mutating the
// stored session. DurationOverrides is keyed by exercise ID; absent
// keys fall back to the entry's stored duration.
type Config struct {
	RestTime          int            `json:"rest_time"`
	DurationOverrides map[string]int `json:"duration_overrides,omitempty"`
}

// State is the snapshot reported to the presentation layer after every
// tick or transition.
type State struct {
	Phase                Phase `json:"phase"`
	CurrentExerciseIndex int   `json:"current_exercise_index"`
	TimeRemainingSeconds int   `json:"time_remaining_seconds"`
	IsPaused             bool  `json:"is_paused"`
}

// Engine drives one playback attempt through countdown, exercise and
// rest phases down to completed. It owns no persistent state and must
// not be shared between concurrent attempts; discard and rebuild to
// play again.
type Engine struct {
	entries []*domain.SessionExercise
	cfg     Config
	state   State
}

// NewEngine builds an engine over an ordered, non-empty exercise list.
func NewEngine(entries []*domain.SessionExercise, cfg Config) (*Engine, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyPlaybackList
	}
	return &Engine{
		entries: entries,
		cfg:     cfg,
		state: State{
			Phase:                PhaseCountdown,
			CurrentExerciseIndex: 0,
			TimeRemainingSeconds: CountdownSeconds,
			IsPaused:             false,
		},
	}, nil
}

// State returns the current snapshot.
func (e *Engine) State() State {
	return e.state
}

// Tick consumes one logical second. While paused or completed it is a
// no-op. When the remaining time reaches zero the engine performs
// exactly one phase-completion transition before the next tick.
func (e *Engine) Tick() State {
	if e.state.IsPaused || e.state.Phase == PhaseCompleted {
		return e.state
	}

	e.state.TimeRemainingSeconds--
	if e.state.TimeRemainingSeconds > 0 {
		return e.state
	}

	switch e.state.Phase {
	case PhaseCountdown:
		e.state.Phase = PhaseExercise
		e.state.TimeRemainingSeconds = e.exerciseDuration(0)
	case PhaseExercise:
		if e.state.CurrentExerciseIndex < len(e.entries)-1 {
			e.state.Phase = PhaseRest
			e.state.TimeRemainingSeconds = e.cfg.RestTime
		} else {
			e.state.Phase = PhaseCompleted
			e.state.TimeRemainingSeconds = 0
		}
	case PhaseRest:
		e.state.CurrentExerciseIndex++
		e.state.Phase = PhaseExercise
		e.state.TimeRemainingSeconds = e.exerciseDuration(e.state.CurrentExerciseIndex)
	}
	return e.state
}

// TogglePause flips the paused flag. Phase, index and remaining time
// are untouched; the periodic timer keeps firing and Tick skips the
// decrement while paused.
func (e *Engine) TogglePause() State {
	e.state.IsPaused = !e.state.IsPaused
	return e.state
}

// RequestExit reports whether the caller must confirm before
// discarding the engine. Progress is never persisted, so leaving
// mid-playback loses it; once completed, exit is immediate.
func (e *Engine) RequestExit() (confirmRequired bool) {
	return e.state.Phase != PhaseCompleted
}

// Completed reports whether playback reached the terminal phase.
func (e *Engine) Completed() bool {
	return e.state.Phase == PhaseCompleted
}

// exerciseDuration resolves the effective duration for the entry at
// index: override first, stored duration otherwise.
func (e *Engine) exerciseDuration(index int) int {
	entry := e.entries[index]
	if d, ok := e.cfg.DurationOverrides[entry.ExerciseID]; ok {
		return d
	}
	return entry.Duration
}
