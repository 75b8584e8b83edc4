package models

import (
	"testing"
	"time"
)

func validWorkout() Workout {
	return Workout{
		UserEmail:    "juan@test.com",
		Name:         "Push Day",
		Category:     "Strength",
		ExerciseName: "Bench Press",
		Sets:         3,
		Reps:         10,
		Weight:       60,
	}
}

func TestWorkoutValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(w *Workout)
		wantErr bool
	}{
		{"valid", func(w *Workout) {}, false},
		{"missing name", func(w *Workout) { w.Name = "" }, true},
		{"missing exercise", func(w *Workout) { w.ExerciseName = "" }, true},
		{"missing category", func(w *Workout) { w.Category = "" }, true},
		{"zero sets", func(w *Workout) { w.Sets = 0 }, true},
		{"zero reps", func(w *Workout) { w.Reps = 0 }, true},
		{"negative weight", func(w *Workout) { w.Weight = -5 }, true},
		{"zero weight", func(w *Workout) { w.Weight = 0 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := validWorkout()
			tc.mutate(&w)
			err := w.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestWorkoutNormalize(t *testing.T) {
	w := validWorkout()
	w.Category = CategoryBodyweight
	w.Weight = 60

	w.Normalize()
	if w.Weight != 0 {
		t.Fatalf("expected bodyweight workout weight 0 got %v", w.Weight)
	}

	w = validWorkout()
	w.Normalize()
	if w.Weight != 60 {
		t.Fatalf("expected weighted workout untouched got %v", w.Weight)
	}
}

func TestNewCompletedWorkoutSnapshotsDefinition(t *testing.T) {
	workout := validWorkout()
	workout.ID = 7
	user := User{Email: "juan@test.com", Weight: 70}
	done := time.Date(2025, time.March, 19, 8, 0, 0, 0, time.UTC)

	record := NewCompletedWorkout(workout, user, done)
	if record.WorkoutID != 7 {
		t.Fatalf("expected workout id 7 got %d", record.WorkoutID)
	}
	if record.UserEmail != "juan@test.com" {
		t.Fatalf("expected user email snapshot got %q", record.UserEmail)
	}
	if record.WeightLifted != 60 {
		t.Fatalf("expected weight lifted 60 got %v", record.WeightLifted)
	}
	if record.SetsCompleted != 3 || record.RepsCompleted != 10 {
		t.Fatalf("expected sets 3 reps 10 got %d/%d", record.SetsCompleted, record.RepsCompleted)
	}
	if !record.CompletedDate.Equal(done) {
		t.Fatalf("expected completion date %v got %v", done, record.CompletedDate)
	}
}

func TestNewCompletedWorkoutBodyweightUsesUserWeight(t *testing.T) {
	workout := validWorkout()
	workout.Category = CategoryBodyweight
	workout.Weight = 0
	user := User{Email: "juan@test.com", Weight: 72.5}

	record := NewCompletedWorkout(workout, user, time.Now())
	if record.WeightLifted != 72.5 {
		t.Fatalf("expected body weight snapshot 72.5 got %v", record.WeightLifted)
	}
}
