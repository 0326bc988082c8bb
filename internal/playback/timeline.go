package playback

import "github.com/flowfit/flowfit/internal/domain"

// Segment is one contiguous phase span in a playback timeline.
// ExerciseIndex is -1 for the countdown segment and, for rest
// segments, the index of the exercise the rest precedes.
type Segment struct {
	Phase         Phase `json:"phase"`
	ExerciseIndex int   `json:"exercise_index"`
	Seconds       int   `json:"seconds"`
}

// Timeline is the full phase schedule of one playback attempt.
type Timeline struct {
	Segments     []Segment `json:"segments"`
	TotalSeconds int       `json:"total_seconds"`
}

// BuildTimeline derives the phase schedule for the given entries and
// config without ticking in real time. The sum of segment seconds
// equals CountdownSeconds plus ComputeTotalDuration over the effective
// durations, which is also the number of ticks an engine consumes
// before reaching completed.
func BuildTimeline(entries []*domain.SessionExercise, cfg Config) (*Timeline, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyPlaybackList
	}

	tl := &Timeline{
		Segments: []Segment{{Phase: PhaseCountdown, ExerciseIndex: -1, Seconds: CountdownSeconds}},
	}
	for i, entry := range entries {
		if i > 0 {
			tl.Segments = append(tl.Segments, Segment{Phase: PhaseRest, ExerciseIndex: i, Seconds: cfg.RestTime})
		}
		duration := entry.Duration
		if d, ok := cfg.DurationOverrides[entry.ExerciseID]; ok {
			duration = d
		}
		tl.Segments = append(tl.Segments, Segment{Phase: PhaseExercise, ExerciseIndex: i, Seconds: duration})
	}
	for _, seg := range tl.Segments {
		tl.TotalSeconds += seg.Seconds
	}
	return tl, nil
}
