package models

import (
	"errors"

	"gorm.io/gorm"
)

// CategoryBodyweight marks workouts whose effective load is the
// performer's current body weight rather than an external weight.
const CategoryBodyweight = "Bodyweight"

// Workout is a user-owned workout definition.
type Workout struct {
	gorm.Model
	UserEmail    string  `gorm:"size:255;index;not null"`
	Name         string  `gorm:"size:255;not null"`
	Description  string  `gorm:"size:1024"`
	Category     string  `gorm:"size:50;not null"`
	Target       string  `gorm:"size:255"`
	ExerciseName string  `gorm:"size:255;not null"`
	Sets         int     `gorm:"not null"`
	Reps         int     `gorm:"not null"`
	Weight       float64 `gorm:"not null"`
}

// Normalize forces the stored weight to zero for bodyweight workouts.
func (w *Workout) Normalize() {
	if w.Category == CategoryBodyweight {
		w.Weight = 0
	}
}

// Validate checks a workout definition before it is stored.
func (w *Workout) Validate() error {
	if w.Name == "" || w.ExerciseName == "" {
		return errors.New("name and exercise name are required")
	}
	if w.Category == "" {
		return errors.New("category is required")
	}
	if w.Sets <= 0 || w.Reps <= 0 {
		return errors.New("sets and reps must be positive")
	}
	if w.Weight < 0 {
		return errors.New("weight cannot be negative")
	}
	return nil
}
