package models

import (
	"time"

	"gorm.io/gorm"
)

// CompletedWorkout is an immutable record created when a workout
// definition is completed. It snapshots the performed sets, reps and
// weight so later edits to the definition never rewrite history.
type CompletedWorkout struct {
	gorm.Model
	UserEmail     string    `gorm:"size:255;index;not null"`
	WorkoutID     uint      `gorm:"index;not null"`
	Name          string    `gorm:"size:255;not null"`
	Description   string    `gorm:"size:1024"`
	Category      string    `gorm:"size:50;not null"`
	Target        string    `gorm:"size:255"`
	ExerciseName  string    `gorm:"size:255;not null"`
	WeightLifted  float64   `gorm:"not null"`
	SetsCompleted int       `gorm:"not null"`
	RepsCompleted int       `gorm:"not null"`
	CompletedDate time.Time `gorm:"index;not null"`
}

// NewCompletedWorkout snapshots a workout definition at completion time.
// Bodyweight workouts record the user's current body weight as the
// weight lifted; the value is fixed at creation and never recomputed.
func NewCompletedWorkout(workout Workout, user User, completedAt time.Time) CompletedWorkout {
	weightLifted := workout.Weight
	if workout.Category == CategoryBodyweight {
		weightLifted = user.Weight
	}

	return CompletedWorkout{
		UserEmail:     user.Email,
		WorkoutID:     workout.ID,
		Name:          workout.Name,
		Description:   workout.Description,
		Category:      workout.Category,
		Target:        workout.Target,
		ExerciseName:  workout.ExerciseName,
		WeightLifted:  weightLifted,
		SetsCompleted: workout.Sets,
		RepsCompleted: workout.Reps,
		CompletedDate: completedAt,
	}
}
