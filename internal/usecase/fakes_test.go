package usecase

import (
	"context"
	"errors"

	"hiresense/internal/domain/job"
)

type fakeSource struct {
	postings []job.Posting
	err      error
}

func (f *fakeSource) FetchJobs(_ context.Context) ([]job.Posting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.postings, nil
}

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

var errStoreDown = errors.New("store down")

type failingResumeStore struct{}

func (failingResumeStore) GetResumeText(_ context.Context) (string, error) { return "", errStoreDown }
func (failingResumeStore) SetResumeText(_ context.Context, _ string) error { return errStoreDown }

type failingApplicationLog struct{}

func (failingApplicationLog) Append(_ context.Context, _ job.Application) error {
	return errStoreDown
}

func (failingApplicationLog) ListAll(_ context.Context) ([]job.Application, error) {
	return nil, errStoreDown
}

func posting(id int, title string, skills ...string) job.Posting {
	return job.Posting{
		ID:       id,
		Title:    title,
		Company:  "Acme",
		Location: "Bengaluru",
		JobType:  "Full-time",
		WorkMode: job.WorkModeOnSite,
		Skills:   skills,
	}
}
