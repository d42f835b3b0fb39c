package usecase

import (
	"context"

	"go.uber.org/zap"

	"hiresense/internal/store"
)

type ResumeUsecase interface {
	GetResume(ctx context.Context) (string, error)
	SetResume(ctx context.Context, text string) error
}

type Resume struct {
	resumes store.ResumeStore
	logger  *zap.Logger
}

func NewResumeUsecase(resumes store.ResumeStore, logger *zap.Logger) *Resume {
	return &Resume{resumes: resumes, logger: logger}
}

func (u *Resume) GetResume(ctx context.Context) (string, error) {
	text, err := u.resumes.GetResumeText(ctx)
	if err != nil {
		u.logger.Error("reading resume failed", zap.Error(err))
		return "", ErrInternal
	}
	return text, nil
}

// SetResume replaces the whole resume blob. An empty text is a valid upload
// and clears the resume.
func (u *Resume) SetResume(ctx context.Context, text string) error {
	u.logger.Info("storing resume", zap.Int("resume_length", len(text)))
	if err := u.resumes.SetResumeText(ctx, text); err != nil {
		u.logger.Error("storing resume failed", zap.Error(err))
		return ErrInternal
	}
	return nil
}
