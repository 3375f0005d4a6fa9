package service

import (
	"context"
	"io"
)

// ResumeUpload is a resume file received from a student.
type ResumeUpload struct {
	Reader      io.Reader
	FileName    string
	ContentType string
	Size        int64
	OwnerID     int64
}

// ResumeUploader validates a resume and stores it privately.
type ResumeUploader interface {
	// Upload returns the absolute URL of the stored artifact.
	// Validation failures are returned before anything is stored; storage
	// failures are transient and never reported as validation errors.
	Upload(ctx context.Context, upload ResumeUpload) (string, error)
}
