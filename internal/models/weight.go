package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// WeightEntry is a single weigh-in in a user's append-only weight log.
type WeightEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	UserEmail string    `gorm:"size:255;index;not null"`
	Weight    float64   `gorm:"not null"`
	Date      time.Time `gorm:"index;not null"`
}

// Daily change limits relative to the user's current weight.
const (
	MaxDailyGain = 1.0
	MaxDailyLoss = 2.0
)

// ValidateWeightValue checks a weigh-in against the absolute bounds.
func ValidateWeightValue(weight float64) error {
	if weight < MinWeight || weight > MaxWeight {
		return errors.New("weight must be between 30 and 500 kg")
	}
	return nil
}

// ValidateWeightChange checks a new weigh-in against the daily change limits.
func ValidateWeightChange(current, next float64) error {
	change := next - current
	if change > MaxDailyGain {
		return errors.New("weight gain cannot exceed 1 kg per day")
	}
	if -change > MaxDailyLoss {
		return errors.New("weight loss cannot exceed 2 kg per day")
	}
	return nil
}
