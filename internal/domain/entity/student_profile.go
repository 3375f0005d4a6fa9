package entity

import (
	"math"
	"time"
)

const (
	// MinGPA and MaxGPA bound the inclusive GPA range.
	MinGPA = 0.0
	MaxGPA = 4.0
)

// StudentProfile is the single academic profile owned by a student account.
type StudentProfile struct {
	ID           int64
	AccountID    int64 // Owner; at most one profile per account.
	UniversityID string
	Department   string
	GPA          float64 // Two decimal places, within [MinGPA, MaxGPA].
	Skills       string
	ResumeURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidGPA reports whether gpa is a finite value inside the allowed range.
func ValidGPA(gpa float64) bool {
	if math.IsNaN(gpa) || math.IsInf(gpa, 0) {
		return false
	}

	return gpa >= MinGPA && gpa <= MaxGPA
}

// RoundGPA rounds to the two decimal places the store keeps.
func RoundGPA(gpa float64) float64 {
	return math.Round(gpa*100) / 100
}
