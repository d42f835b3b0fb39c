package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hiresense/internal/domain/job"
	"hiresense/internal/store"
)

type TrackApplicationInput struct {
	JobID    int
	Status   string
	JobTitle string
	Company  string
}

type ApplicationsUsecase interface {
	Track(ctx context.Context, input TrackApplicationInput) (job.Application, error)
	List(ctx context.Context) ([]job.Application, error)
}

type Applications struct {
	log    store.ApplicationLog
	logger *zap.Logger
	now    func() time.Time
}

func NewApplicationsUsecase(log store.ApplicationLog, logger *zap.Logger) *Applications {
	return &Applications{log: log, logger: logger, now: time.Now}
}

// Track appends an application record. The timestamp is assigned here, and
// the status must be one of the known values (an empty status defaults to
// Applied).
func (u *Applications) Track(ctx context.Context, input TrackApplicationInput) (job.Application, error) {
	status := input.Status
	if status == "" {
		status = job.StatusApplied
	}
	if !job.ValidStatus(status) {
		return job.Application{}, ErrInvalidInput
	}

	app := job.Application{
		JobID:    input.JobID,
		Status:   status,
		JobTitle: input.JobTitle,
		Company:  input.Company,
		Time:     u.now().UTC(),
	}

	if err := u.log.Append(ctx, app); err != nil {
		u.logger.Error("appending application failed", zap.Error(err))
		return job.Application{}, ErrInternal
	}
	return app, nil
}

// List returns all recorded applications. A store failure degrades to an
// empty list so the dashboard never breaks.
func (u *Applications) List(ctx context.Context) ([]job.Application, error) {
	apps, err := u.log.ListAll(ctx)
	if err != nil {
		u.logger.Error("listing applications failed", zap.Error(err))
		return []job.Application{}, nil
	}
	if apps == nil {
		apps = []job.Application{}
	}
	return apps, nil
}
