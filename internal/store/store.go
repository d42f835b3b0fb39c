package store

import (
	"context"

	"hiresense/internal/domain/job"
)

// ResumeStore holds the single resume text blob. Set replaces the whole blob.
type ResumeStore interface {
	GetResumeText(ctx context.Context) (string, error)
	SetResumeText(ctx context.Context, text string) error
}

// ApplicationLog is the append-only record of user actions on postings.
// Listing order (newest-first or oldest-first) is a backend choice.
type ApplicationLog interface {
	Append(ctx context.Context, app job.Application) error
	ListAll(ctx context.Context) ([]job.Application, error)
}
