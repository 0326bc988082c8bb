package domain

import "errors"

var (
	ErrEmptyExerciseList = errors.New("session must contain at least one exercise")
	ErrInvalidRestTime   = errors.New("rest time must be one of the allowed values")
	ErrDuplicateExercise = errors.New("exercise already present in session")
	ErrInvalidDuration   = errors.New("exercise duration must be positive")
)

// MoveDirection is the direction of a manual reorder.
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

// SessionDraft is an in-progress, not-yet-persisted session
// composition. A draft is owned by exactly one caller at a time; its
// operations are plain synchronous mutations.
type SessionDraft struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category"`
	Difficulty  string             `json:"difficulty"`
	RestTime    int                `json:"rest_time"`
	Exercises   []*SessionExercise `json:"exercises"`
}

// AddExercise appends an entry for the given exercise with the default
// duration and order = count+1. Adding an exercise that is already in
// the draft returns ErrDuplicateExercise and leaves the draft intact.
func (d *SessionDraft) AddExercise(ex *Exercise) error {
	for _, entry := range d.Exercises {
		if entry.ExerciseID == ex.ID {
			return ErrDuplicateExercise
		}
	}
	d.Exercises = append(d.Exercises, &SessionExercise{
		ExerciseID: ex.ID,
		Name:       ex.Name,
		Order:      len(d.Exercises) + 1,
		Duration:   DefaultExerciseDuration,
	})
	return nil
}

// RemoveExercise deletes the entry at index and renumbers the rest so
// order values stay contiguous from 1. An out-of-range index is a
// caller bug and returns an IndexOutOfRangeError.
func (d *SessionDraft) RemoveExercise(index int) error {
	if index < 0 || index >= len(d.Exercises) {
		return &IndexOutOfRangeError{Index: index, Count: len(d.Exercises)}
	}
	d.Exercises = append(d.Exercises[:index], d.Exercises[index+1:]...)
	d.renumber()
	return nil
}

// MoveExercise swaps the entry at index with its neighbor in the given
// direction. Moving the first entry up or the last entry down is a
// defined no-op, not an error. An out-of-range index returns an
// IndexOutOfRangeError.
func (d *SessionDraft) MoveExercise(index int, direction MoveDirection) error {
	if index < 0 || index >= len(d.Exercises) {
		return &IndexOutOfRangeError{Index: index, Count: len(d.Exercises)}
	}
	target := index - 1
	if direction == MoveDown {
		target = index + 1
	}
	if target < 0 || target >= len(d.Exercises) {
		return nil // boundary no-op
	}
	d.Exercises[index], d.Exercises[target] = d.Exercises[target], d.Exercises[index]
	d.renumber()
	return nil
}

// renumber rewrites order values to exactly {1..N}, preserving slice
// order. Called after every structural change.
func (d *SessionDraft) renumber() {
	for i, entry := range d.Exercises {
		entry.Order = i + 1
	}
}

// Validate checks the draft is submittable. It returns the first
// failure: a MissingFieldError for absent name/category/difficulty/
// restTime, ErrEmptyExerciseList for zero entries, ErrInvalidRestTime
// for a rest time outside AllowedRestTimes.
func (d *SessionDraft) Validate() error {
	if d.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	if d.Category == "" {
		return &MissingFieldError{Field: "category"}
	}
	if d.Difficulty == "" {
		return &MissingFieldError{Field: "difficulty"}
	}
	if d.RestTime == 0 {
		return &MissingFieldError{Field: "rest_time"}
	}
	if len(d.Exercises) == 0 {
		return ErrEmptyExerciseList
	}
	if !ValidRestTime(d.RestTime) {
		return ErrInvalidRestTime
	}
	return nil
}

// TotalDuration computes the draft's estimated duration with the same
// formula the session store persists.
func (d *SessionDraft) TotalDuration() int {
	return ComputeTotalDuration(d.Exercises, d.RestTime)
}

// ComputeTotalDuration sums entry durations plus one rest interval
// between consecutive exercises. Rest is never inserted before the
// first or after the last exercise, so a single-entry list equals that
// entry's duration and an empty list is 0. Pure: every code path that
// previews or persists a duration goes through this function.
func ComputeTotalDuration(entries []*SessionExercise, restTime int) int {
	total := 0
	for _, entry := range entries {
		total += entry.Duration
	}
	if len(entries) > 1 {
		total += (len(entries) - 1) * restTime
	}
	return total
}
