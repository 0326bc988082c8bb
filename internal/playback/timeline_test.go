package playback

import (
	"errors"
	"testing"
)

func TestBuildTimelineEmpty(t *testing.T) {
	if _, err := BuildTimeline(nil, Config{RestTime: 10}); !errors.Is(err, ErrEmptyPlaybackList) {
		t.Fatalf("BuildTimeline(nil) error = %v, want ErrEmptyPlaybackList", err)
	}
}

func TestBuildTimeline(t *testing.T) {
	tl, err := BuildTimeline(entries(20, 30), Config{RestTime: 10})
	if err != nil {
		t.Fatal(err)
	}

	want := []Segment{
		{Phase: PhaseCountdown, ExerciseIndex: -1, Seconds: 5},
		{Phase: PhaseExercise, ExerciseIndex: 0, Seconds: 20},
		{Phase: PhaseRest, ExerciseIndex: 1, Seconds: 10},
		{Phase: PhaseExercise, ExerciseIndex: 1, Seconds: 30},
	}
	if len(tl.Segments) != len(want) {
		t.Fatalf("got %d segments, want %d", len(tl.Segments), len(want))
	}
	for i, seg := range tl.Segments {
		if seg != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, seg, want[i])
		}
	}
	if tl.TotalSeconds != 65 {
		t.Errorf("TotalSeconds = %d, want 65", tl.TotalSeconds)
	}
}

func TestBuildTimelineMatchesEngine(t *testing.T) {
	// The timeline's total must equal the number of ticks an engine
	// takes to complete the same attempt.
	list := entries(20, 30, 15)
	cfg := Config{
		RestTime:          10,
		DurationOverrides: map[string]int{list[2].ExerciseID: 25},
	}

	tl, err := BuildTimeline(list, cfg)
	if err != nil {
		t.Fatal(err)
	}

	e, err := NewEngine(list, cfg)
	if err != nil {
		t.Fatal(err)
	}
	ticks := 0
	for !e.Completed() {
		e.Tick()
		ticks++
		if ticks > 10_000 {
			t.Fatal("engine did not complete")
		}
	}

	if tl.TotalSeconds != ticks {
		t.Errorf("TotalSeconds = %d, engine completed in %d ticks", tl.TotalSeconds, ticks)
	}
}
