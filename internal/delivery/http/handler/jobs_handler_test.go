package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"hiresense/internal/delivery/http/middleware"
	"hiresense/internal/domain/filtering"
	"hiresense/internal/domain/job"
	"hiresense/internal/usecase"
)

type fakeJobFeedUsecase struct {
	scored   []job.Scored
	split    filtering.Split
	lastSpec job.FilterSpec
	err      error
}

func (f *fakeJobFeedUsecase) ListScoredJobs(_ context.Context) ([]job.Scored, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scored, nil
}

func (f *fakeJobFeedUsecase) MatchedJobs(_ context.Context, spec job.FilterSpec) (filtering.Split, error) {
	f.lastSpec = spec
	if f.err != nil {
		return filtering.Split{}, f.err
	}
	return f.split, nil
}

func newJobsApp(uc usecase.JobFeedUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(zap.NewNop()).Middleware())
	NewJobsHandler(uc).RegisterRoutes(app.Group("/api").Group("/v1"))
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestListJobsReturnsScoredFeed(t *testing.T) {
	uc := &fakeJobFeedUsecase{scored: []job.Scored{
		{Posting: job.Posting{ID: 1, Title: "React Developer"}, MatchScore: 80},
	}}

	status, env := getJSON(t, newJobsApp(uc), "/api/v1/jobs")
	if status != fiber.StatusOK {
		t.Fatalf("got status %d, want 200", status)
	}

	var jobs []job.Scored
	if err := json.Unmarshal(env.Data, &jobs); err != nil {
		t.Fatalf("decoding jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].MatchScore != 80 {
		t.Fatalf("unexpected feed: %+v", jobs)
	}
}

func TestListJobsSourceUnavailable(t *testing.T) {
	uc := &fakeJobFeedUsecase{err: usecase.ErrJobSourceUnavailable}

	status, env := getJSON(t, newJobsApp(uc), "/api/v1/jobs")
	if status != fiber.StatusServiceUnavailable {
		t.Fatalf("got status %d, want 503", status)
	}
	if env.Message != "Failed to fetch jobs" {
		t.Fatalf("got message %q", env.Message)
	}
}

func TestMatchedJobsBuildsSpecFromQuery(t *testing.T) {
	uc := &fakeJobFeedUsecase{}
	app := newJobsApp(uc)

	status, _ := getJSON(t, app, "/api/v1/jobs/matches?title=react&location=remote&type=Full-time&match=high")
	if status != fiber.StatusOK {
		t.Fatalf("got status %d, want 200", status)
	}

	want := job.FilterSpec{Title: "react", Location: "remote", Type: "Full-time", Match: job.MatchBandHigh}
	if uc.lastSpec != want {
		t.Fatalf("got spec %+v, want %+v", uc.lastSpec, want)
	}
}

func TestMatchedJobsRejectsUnknownBand(t *testing.T) {
	status, env := getJSON(t, newJobsApp(&fakeJobFeedUsecase{}), "/api/v1/jobs/matches?match=stellar")
	if status != fiber.StatusBadRequest {
		t.Fatalf("got status %d, want 400", status)
	}
	if env.Message != "Unknown match band" {
		t.Fatalf("got message %q", env.Message)
	}
}
