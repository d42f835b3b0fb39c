package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"hiresense/internal/delivery/http/dto"
	"hiresense/internal/delivery/http/middleware"
	"hiresense/internal/pkg/response"
	"hiresense/internal/usecase"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationsUsecase
}

func NewApplicationsHandler(uc usecase.ApplicationsUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/applications")
	grp.Get("/", h.ListApplications)
	grp.Post("/", h.TrackApplication)
}

func (h *ApplicationsHandler) ListApplications(c fiber.Ctx) error {
	apps, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func (h *ApplicationsHandler) TrackApplication(c fiber.Ctx) error {
	var req dto.TrackApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.Track(c.Context(), usecase.TrackApplicationInput{
		JobID:    req.JobID,
		Status:   req.Status,
		JobTitle: req.JobTitle,
		Company:  req.Company,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unknown application status", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to track application", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, app)
}
