package usecase

import (
	"context"

	"go.uber.org/zap"

	"hiresense/internal/domain/filtering"
	"hiresense/internal/domain/job"
	"hiresense/internal/domain/matching"
	"hiresense/internal/jobsource"
	"hiresense/internal/store"
)

type JobFeedUsecase interface {
	ListScoredJobs(ctx context.Context) ([]job.Scored, error)
	MatchedJobs(ctx context.Context, spec job.FilterSpec) (filtering.Split, error)
}

type JobFeed struct {
	source  jobsource.Source
	resumes store.ResumeStore
	logger  *zap.Logger
}

func NewJobFeedUsecase(source jobsource.Source, resumes store.ResumeStore, logger *zap.Logger) *JobFeed {
	return &JobFeed{source: source, resumes: resumes, logger: logger}
}

// ListScoredJobs fetches a fresh batch from the job source and scores every
// posting against the stored resume. A resume-store failure degrades to an
// empty resume (all scores 0) rather than failing the feed.
func (u *JobFeed) ListScoredJobs(ctx context.Context) ([]job.Scored, error) {
	postings, err := u.source.FetchJobs(ctx)
	if err != nil {
		u.logger.Error("fetching postings failed", zap.Error(err))
		return nil, ErrJobSourceUnavailable
	}

	resume := resumeTextOrEmpty(ctx, u.resumes, u.logger)
	return scorePostings(postings, resume), nil
}

// MatchedJobs applies the filter spec to the current scored feed and splits
// the result into best matches and others.
func (u *JobFeed) MatchedJobs(ctx context.Context, spec job.FilterSpec) (filtering.Split, error) {
	scored, err := u.ListScoredJobs(ctx)
	if err != nil {
		return filtering.Split{}, err
	}
	return filtering.Partition(filtering.Apply(scored, spec)), nil
}

func scorePostings(postings []job.Posting, resume string) []job.Scored {
	scored := make([]job.Scored, 0, len(postings))
	for _, p := range postings {
		scored = append(scored, job.Scored{
			Posting:          p,
			MatchScore:       matching.Score(p.Skills, resume),
			MatchExplanation: matching.Explain(p.Skills, resume),
		})
	}
	return scored
}

func resumeTextOrEmpty(ctx context.Context, resumes store.ResumeStore, logger *zap.Logger) string {
	text, err := resumes.GetResumeText(ctx)
	if err != nil {
		logger.Warn("reading resume failed, scoring with empty resume", zap.Error(err))
		return ""
	}
	return text
}
