package playback

import (
	"errors"
	"testing"

	"github.com/flowfit/flowfit/internal/domain"
)

func entries(durations ...int) []*domain.SessionExercise {
	out := make([]*domain.SessionExercise, len(durations))
	for i, d := range durations {
		out[i] = &domain.SessionExercise{
			ExerciseID: string(rune('a' + i)),
			Name:       "ex",
			Order:      i + 1,
			Duration:   d,
		}
	}
	return out
}

func TestNewEngineRequiresExercises(t *testing.T) {
	if _, err := NewEngine(nil, Config{RestTime: 10}); !errors.Is(err, ErrEmptyPlaybackList) {
		t.Fatalf("NewEngine(nil) error = %v, want ErrEmptyPlaybackList", err)
	}
}

func TestEngineStartsInCountdown(t *testing.T) {
	e, err := NewEngine(entries(30), Config{RestTime: 10})
	if err != nil {
		t.Fatal(err)
	}
	s := e.State()
	if s.Phase != PhaseCountdown {
		t.Errorf("initial phase = %s, want countdown", s.Phase)
	}
	if s.TimeRemainingSeconds != CountdownSeconds {
		t.Errorf("initial remaining = %d, want %d", s.TimeRemainingSeconds, CountdownSeconds)
	}
	if s.CurrentExerciseIndex != 0 {
		t.Errorf("initial index = %d, want 0", s.CurrentExerciseIndex)
	}
}

// tickPhases runs the engine to completion and returns one phase sample
// per tick.
func tickPhases(t *testing.T, e *Engine, maxTicks int) []Phase {
	t.Helper()
	var phases []Phase
	for i := 0; i < maxTicks; i++ {
		s := e.Tick()
		phases = append(phases, s.Phase)
		if s.Phase == PhaseCompleted {
			return phases
		}
	}
	t.Fatalf("engine did not complete within %d ticks", maxTicks)
	return nil
}

func TestEngineFullRun(t *testing.T) {
	// [20s, 30s] with 10s rest: 5 countdown + 20 + 10 + 30 = 65 ticks
	e, err := NewEngine(entries(20, 30), Config{RestTime: 10})
	if err != nil {
		t.Fatal(err)
	}

	phases := tickPhases(t, e, 200)
	if len(phases) != 65 {
		t.Fatalf("completed after %d ticks, want 65", len(phases))
	}

	// The tick that exhausts a phase reports the next phase's state, so
	// each boundary shows up one tick earlier than a naive count.
	checkpoints := []struct {
		tick int // 1-based
		want Phase
	}{
		{4, PhaseCountdown},
		{5, PhaseExercise}, // countdown exhausted
		{24, PhaseExercise},
		{25, PhaseRest}, // first exercise exhausted
		{34, PhaseRest},
		{35, PhaseExercise}, // rest exhausted, second exercise starts
		{64, PhaseExercise},
		{65, PhaseCompleted},
	}
	for _, cp := range checkpoints {
		if got := phases[cp.tick-1]; got != cp.want {
			t.Errorf("tick %d: phase = %s, want %s", cp.tick, got, cp.want)
		}
	}

	if !e.Completed() {
		t.Error("Completed() = false after full run")
	}
	if s := e.State(); s.CurrentExerciseIndex != 1 {
		t.Errorf("final index = %d, want 1", s.CurrentExerciseIndex)
	}
}

func TestSingleExerciseSkipsRest(t *testing.T) {
	e, err := NewEngine(entries(3), Config{RestTime: 10})
	if err != nil {
		t.Fatal(err)
	}

	phases := tickPhases(t, e, 50)
	// 5 countdown + 3 exercise, no rest phase anywhere
	if len(phases) != 8 {
		t.Fatalf("completed after %d ticks, want 8", len(phases))
	}
	for i, p := range phases {
		if p == PhaseRest {
			t.Errorf("tick %d: unexpected rest phase for single-exercise session", i+1)
		}
	}
}

func TestPauseFreezesState(t *testing.T) {
	e, err := NewEngine(entries(30), Config{RestTime: 10})
	if err != nil {
		t.Fatal(err)
	}
	e.Tick()
	e.Tick()
	before := e.State()

	s := e.TogglePause()
	if !s.IsPaused {
		t.Fatal("TogglePause() did not pause")
	}

	// Ticks while paused must not change anything but keep firing
	for i := 0; i < 10; i++ {
		s = e.Tick()
	}
	if s.Phase != before.Phase || s.TimeRemainingSeconds != before.TimeRemainingSeconds || s.CurrentExerciseIndex != before.CurrentExerciseIndex {
		t.Errorf("state changed while paused: %+v, want %+v", s, before)
	}

	// Resume continues from where it stopped
	e.TogglePause()
	s = e.Tick()
	if s.TimeRemainingSeconds != before.TimeRemainingSeconds-1 {
		t.Errorf("after resume remaining = %d, want %d", s.TimeRemainingSeconds, before.TimeRemainingSeconds-1)
	}
}

func TestDurationOverrides(t *testing.T) {
	base := entries(30, 30)
	e, err := NewEngine(base, Config{
		RestTime:          5,
		DurationOverrides: map[string]int{base[1].ExerciseID: 10},
	})
	if err != nil {
		t.Fatal(err)
	}

	phases := tickPhases(t, e, 200)
	// 5 countdown + 30 + 5 rest + 10 overridden = 50 ticks
	if len(phases) != 50 {
		t.Errorf("completed after %d ticks, want 50", len(phases))
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	e, err := NewEngine(entries(1), Config{RestTime: 5})
	if err != nil {
		t.Fatal(err)
	}
	tickPhases(t, e, 50)

	for i := 0; i < 5; i++ {
		if s := e.Tick(); s.Phase != PhaseCompleted {
			t.Fatalf("tick after completion left phase %s", s.Phase)
		}
	}
}

func TestRequestExit(t *testing.T) {
	e, err := NewEngine(entries(1), Config{RestTime: 5})
	if err != nil {
		t.Fatal(err)
	}

	if !e.RequestExit() {
		t.Error("RequestExit() = false mid-playback, want confirmation required")
	}

	tickPhases(t, e, 50)
	if e.RequestExit() {
		t.Error("RequestExit() = true after completion, want immediate exit")
	}
}
