package handler

import (
	"github.com/gofiber/fiber/v3"

	"hiresense/internal/delivery/http/dto"
	"hiresense/internal/delivery/http/middleware"
	"hiresense/internal/pkg/response"
	"hiresense/internal/usecase"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/resume")
	grp.Get("/", h.GetResume)
	grp.Post("/", h.UploadResume)
}

func (h *ResumeHandler) GetResume(c fiber.Ctx) error {
	text, err := h.uc.GetResume(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch resume", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ResumeResponse{ResumeText: text})
}

func (h *ResumeHandler) UploadResume(c fiber.Ctx) error {
	var req dto.ResumeUpload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetResume(c.Context(), req.ResumeText); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to save resume", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
