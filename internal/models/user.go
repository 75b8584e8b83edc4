package models

import (
	"errors"
	"regexp"

	"gorm.io/gorm"
)

// User represents an account in the system.
type User struct {
	gorm.Model
	FirstName    string  `gorm:"size:255;not null"`
	LastName     string  `gorm:"size:255;not null"`
	Email        string  `gorm:"size:255;unique;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	Course       string  `gorm:"size:50;not null"`
	Height       float64 `gorm:"not null"`
	Weight       float64 `gorm:"not null"`

	// InitialWeight is captured once at signup and anchors the
	// weight-loss leaderboard score.
	InitialWeight float64 `gorm:"not null"`

	Gender         string `gorm:"size:20;not null"`
	Age            int    `gorm:"not null"`
	PhoneNumber    string `gorm:"size:20;unique;not null"`
	ProfilePicture string `gorm:"size:512"`
	IsPrivate      bool   `gorm:"not null;default:false"`
}

const (
	MinHeight = 100.0
	MaxHeight = 250.0
	MinWeight = 30.0
	MaxWeight = 500.0
	MinAge    = 16
	MaxAge    = 100
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.com$`)
	phonePattern = regexp.MustCompile(`^\+639\d{9}$`)
)

var validCourses = map[string]bool{"BSCS": true, "BSIT": true}

var validGenders = map[string]bool{"Male": true, "Female": true, "Other": true}

// Validate checks all profile attributes against the account rules.
func (u *User) Validate() error {
	if u.FirstName == "" || u.LastName == "" {
		return errors.New("first name and last name are required")
	}
	if !emailPattern.MatchString(u.Email) {
		return errors.New("invalid email format, must end with .com")
	}
	if !validCourses[u.Course] {
		return errors.New("course must be BSCS or BSIT")
	}
	if u.Height < MinHeight || u.Height > MaxHeight {
		return errors.New("height must be between 100 and 250 cm")
	}
	if u.Weight < MinWeight || u.Weight > MaxWeight {
		return errors.New("weight must be between 30 and 500 kg")
	}
	if !validGenders[u.Gender] {
		return errors.New("gender must be Male, Female or Other")
	}
	if u.Age < MinAge || u.Age > MaxAge {
		return errors.New("age must be between 16 and 100")
	}
	if !phonePattern.MatchString(u.PhoneNumber) {
		return errors.New("invalid phone number, must start with +639 followed by 9 digits")
	}
	return nil
}
