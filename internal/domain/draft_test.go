package domain

import (
	"errors"
	"testing"
)

func exercise(id, name string) *Exercise {
	return &Exercise{ID: id, Name: name, Category: CategoryMusculation}
}

func draftWith(ids ...string) *SessionDraft {
	d := &SessionDraft{
		Name:       "Circuit du matin",
		Category:   CategoryMusculation,
		Difficulty: DifficultyMoyen,
		RestTime:   10,
	}
	for _, id := range ids {
		if err := d.AddExercise(exercise(id, "ex-"+id)); err != nil {
			panic(err)
		}
	}
	return d
}

func assertOrders(t *testing.T, d *SessionDraft, wantIDs []string) {
	t.Helper()
	if len(d.Exercises) != len(wantIDs) {
		t.Fatalf("got %d exercises, want %d", len(d.Exercises), len(wantIDs))
	}
	for i, entry := range d.Exercises {
		if entry.ExerciseID != wantIDs[i] {
			t.Errorf("position %d: got %s, want %s", i, entry.ExerciseID, wantIDs[i])
		}
		if entry.Order != i+1 {
			t.Errorf("position %d: order = %d, want %d", i, entry.Order, i+1)
		}
	}
}

func TestAddExercise(t *testing.T) {
	d := draftWith()

	if err := d.AddExercise(exercise("a", "Pompes")); err != nil {
		t.Fatalf("AddExercise() error = %v", err)
	}
	if got := d.Exercises[0].Duration; got != DefaultExerciseDuration {
		t.Errorf("new entry duration = %d, want %d", got, DefaultExerciseDuration)
	}
	if got := d.Exercises[0].Name; got != "Pompes" {
		t.Errorf("new entry name = %q, want %q", got, "Pompes")
	}

	if err := d.AddExercise(exercise("a", "Pompes")); !errors.Is(err, ErrDuplicateExercise) {
		t.Errorf("duplicate AddExercise() error = %v, want ErrDuplicateExercise", err)
	}
	if len(d.Exercises) != 1 {
		t.Errorf("draft mutated by rejected add: %d entries", len(d.Exercises))
	}
}

func TestRemoveExercise(t *testing.T) {
	d := draftWith("a", "b", "c")

	if err := d.RemoveExercise(1); err != nil {
		t.Fatalf("RemoveExercise(1) error = %v", err)
	}
	assertOrders(t, d, []string{"a", "c"})

	var outOfRange *IndexOutOfRangeError
	if err := d.RemoveExercise(5); !errors.As(err, &outOfRange) {
		t.Errorf("RemoveExercise(5) error = %v, want IndexOutOfRangeError", err)
	}
	if err := d.RemoveExercise(-1); !errors.As(err, &outOfRange) {
		t.Errorf("RemoveExercise(-1) error = %v, want IndexOutOfRangeError", err)
	}
}

func TestMoveExercise(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		direction MoveDirection
		want      []string
	}{
		{"move middle up", 1, MoveUp, []string{"b", "a", "c"}},
		{"move middle down", 1, MoveDown, []string{"a", "c", "b"}},
		{"first up is no-op", 0, MoveUp, []string{"a", "b", "c"}},
		{"last down is no-op", 2, MoveDown, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draftWith("a", "b", "c")
			if err := d.MoveExercise(tt.index, tt.direction); err != nil {
				t.Fatalf("MoveExercise() error = %v", err)
			}
			assertOrders(t, d, tt.want)
		})
	}

	t.Run("out of range", func(t *testing.T) {
		d := draftWith("a", "b")
		var outOfRange *IndexOutOfRangeError
		if err := d.MoveExercise(7, MoveUp); !errors.As(err, &outOfRange) {
			t.Errorf("MoveExercise(7) error = %v, want IndexOutOfRangeError", err)
		}
	})
}

func TestOrderStaysContiguous(t *testing.T) {
	// A mixed sequence of mutations must always leave orders at {1..N}
	d := draftWith("a", "b", "c", "d")

	if err := d.RemoveExercise(0); err != nil {
		t.Fatal(err)
	}
	if err := d.MoveExercise(2, MoveUp); err != nil {
		t.Fatal(err)
	}
	if err := d.AddExercise(exercise("e", "ex-e")); err != nil {
		t.Fatal(err)
	}
	if err := d.RemoveExercise(1); err != nil {
		t.Fatal(err)
	}

	assertOrders(t, d, []string{"b", "c", "e"})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SessionDraft)
		wantErr error
		field   string
	}{
		{"valid", func(d *SessionDraft) {}, nil, ""},
		{"missing name", func(d *SessionDraft) { d.Name = "" }, nil, "name"},
		{"missing category", func(d *SessionDraft) { d.Category = "" }, nil, "category"},
		{"missing difficulty", func(d *SessionDraft) { d.Difficulty = "" }, nil, "difficulty"},
		{"missing rest time", func(d *SessionDraft) { d.RestTime = 0 }, nil, "rest_time"},
		{"no exercises", func(d *SessionDraft) { d.Exercises = nil }, ErrEmptyExerciseList, ""},
		{"disallowed rest time", func(d *SessionDraft) { d.RestTime = 7 }, ErrInvalidRestTime, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draftWith("a", "b")
			tt.mutate(d)
			err := d.Validate()

			if tt.field != "" {
				var missing *MissingFieldError
				if !errors.As(err, &missing) {
					t.Fatalf("Validate() error = %v, want MissingFieldError", err)
				}
				if missing.Field != tt.field {
					t.Errorf("MissingFieldError.Field = %q, want %q", missing.Field, tt.field)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChecksFieldsBeforeExercises(t *testing.T) {
	// Missing fields are reported before the empty exercise list
	d := &SessionDraft{}
	var missing *MissingFieldError
	if err := d.Validate(); !errors.As(err, &missing) {
		t.Fatalf("Validate() error = %v, want MissingFieldError first", err)
	}
}

func TestComputeTotalDuration(t *testing.T) {
	entries := func(durations ...int) []*SessionExercise {
		out := make([]*SessionExercise, len(durations))
		for i, dur := range durations {
			out[i] = &SessionExercise{Duration: dur, Order: i + 1}
		}
		return out
	}

	tests := []struct {
		name     string
		entries  []*SessionExercise
		restTime int
		want     int
	}{
		{"empty list", entries(), 10, 0},
		{"single exercise has no rest", entries(40), 15, 40},
		{"three exercises with two rests", entries(30, 45, 20), 10, 115},
		{"two exercises", entries(30, 30), 20, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTotalDuration(tt.entries, tt.restTime); got != tt.want {
				t.Errorf("ComputeTotalDuration() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalDurationMatchesComputed(t *testing.T) {
	d := draftWith("a", "b", "c")
	d.Exercises[0].Duration = 30
	d.Exercises[1].Duration = 45
	d.Exercises[2].Duration = 20

	if got := d.TotalDuration(); got != 115 {
		t.Errorf("TotalDuration() = %d, want 115", got)
	}
}
