package usecase

import (
	"context"
	"io"

	"internova/internal/domain/entity"
)

// ResumeFile is the uploaded resume as received by the delivery layer.
type ResumeFile struct {
	Reader      io.Reader
	FileName    string
	ContentType string
	Size        int64
}

// UpsertStudentProfileInput is the full replacement state of a student profile.
type UpsertStudentProfileInput struct {
	UniversityID string
	Department   string
	GPA          float64
	Skills       string
	Resume       *ResumeFile
}

// UpsertStudentProfileOutput returns the stored profile and its resume URL.
type UpsertStudentProfileOutput struct {
	Profile   *entity.StudentProfile
	ResumeURL string
}

// ProfileUsecase defines student profile operations.
type ProfileUsecase interface {
	UpsertStudentProfile(ctx context.Context, accountID int64, input *UpsertStudentProfileInput) (*UpsertStudentProfileOutput, error)
	GetStudentProfile(ctx context.Context, accountID int64) (*entity.StudentProfile, error)
}
