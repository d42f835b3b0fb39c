package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"hiresense/internal/config"
	"hiresense/internal/delivery/http/handler"
	"hiresense/internal/delivery/http/middleware"
	"hiresense/internal/delivery/http/routes"
	"hiresense/internal/logger"
	"hiresense/internal/usecase"
)

type App struct {
	Fiber  *fiber.App
	Logger *zap.Logger
}

// Bootstrap builds the container, usecases, handlers, and the fiber app, and
// returns a cleanup closing every held resource.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.App.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	container, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	feedUC := usecase.NewJobFeedUsecase(container.Source, container.Resumes, log)
	resumeUC := usecase.NewResumeUsecase(container.Resumes, log)
	applicationsUC := usecase.NewApplicationsUsecase(container.Applications, log)
	chatUC := usecase.NewChatUsecase(container.Generator, container.Source, container.Resumes, log)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewErrorMiddleware(log).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(log).Middleware())

	registry := &routes.Registry{
		Health:       handler.NewHealthHandler(cfg.App.AppName),
		Jobs:         handler.NewJobsHandler(feedUC),
		Resume:       handler.NewResumeHandler(resumeUC),
		Applications: handler.NewApplicationsHandler(applicationsUC),
		Chat:         handler.NewChatHandler(chatUC),
	}
	registry.Register(f)

	cleanup := func() error {
		err := container.Close()
		_ = log.Sync()
		return err
	}

	return &App{Fiber: f, Logger: log}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
