package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"hiresense/internal/delivery/http/dto"
	"hiresense/internal/delivery/http/middleware"
	"hiresense/internal/pkg/response"
	"hiresense/internal/usecase"
)

// User-facing messages for the fixed set of chat failure classes. The raw
// error detail rides alongside for diagnostics.
const (
	chatRateLimitedAnswer = "I'm a bit overwhelmed with requests right now. Please wait a few seconds and try again."
	chatUnavailableAnswer = "The AI model is currently unavailable. Please check your configuration."
	chatGenericAnswer     = "I'm having trouble connecting to my AI core right now."
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/chat", h.HandleChat)
}

func (h *ChatHandler) HandleChat(c fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	reply, err := h.uc.HandleQuery(c.Context(), req.Query)
	if err != nil {
		return mapChatError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, reply)
}

func mapChatError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Query is required", nil, err)
	case errors.Is(err, usecase.ErrAIRateLimited):
		return middleware.NewAppError(fiber.StatusTooManyRequests, "Failed to fetch AI response",
			chatErrorData(chatRateLimitedAnswer, err), err)
	case errors.Is(err, usecase.ErrAIUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Failed to fetch AI response",
			chatErrorData(chatUnavailableAnswer, err), err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch AI response",
			chatErrorData(chatGenericAnswer, err), err)
	}
}

func chatErrorData(answer string, err error) map[string]string {
	return map[string]string{
		"answer":  answer,
		"details": err.Error(),
	}
}
