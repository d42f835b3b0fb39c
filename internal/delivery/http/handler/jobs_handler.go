package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"hiresense/internal/delivery/http/middleware"
	"hiresense/internal/domain/job"
	"hiresense/internal/pkg/response"
	"hiresense/internal/usecase"
)

type JobsHandler struct {
	uc usecase.JobFeedUsecase
}

func NewJobsHandler(uc usecase.JobFeedUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/", h.ListJobs)
	grp.Get("/matches", h.MatchedJobs)
}

// ListJobs returns the freshly fetched feed scored against the stored resume.
func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	jobs, err := h.uc.ListScoredJobs(c.Context())
	if err != nil {
		return mapJobFeedError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

// MatchedJobs filters the scored feed by the query parameters and returns the
// best/others presentation split.
func (h *JobsHandler) MatchedJobs(c fiber.Ctx) error {
	spec := job.FilterSpec{
		Title:    c.Query("title"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Match:    c.Query("match"),
	}
	if !validMatchBand(spec.Match) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown match band", nil, nil)
	}

	split, err := h.uc.MatchedJobs(c.Context(), spec)
	if err != nil {
		return mapJobFeedError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, split)
}

func validMatchBand(band string) bool {
	switch band {
	case "", job.MatchBandHigh, job.MatchBandMedium, job.MatchBandLow:
		return true
	}
	return false
}

func mapJobFeedError(err error) error {
	if errors.Is(err, usecase.ErrJobSourceUnavailable) {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Failed to fetch jobs", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
