package handler

import (
	"github.com/gofiber/fiber/v3"

	"hiresense/internal/pkg/response"
)

const version = "1.0.0"

type HealthHandler struct {
	appName string
}

func NewHealthHandler(appName string) *HealthHandler {
	return &HealthHandler{appName: appName}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/", h.Status)
	app.Get("/health", h.Status)
}

func (h *HealthHandler) Status(c fiber.Ctx) error {
	data := map[string]string{
		"status":  h.appName + " backend is running",
		"version": version,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
