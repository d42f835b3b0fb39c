package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hiresense/internal/ai"
	"hiresense/internal/ai/gemini"
	"hiresense/internal/config"
	"hiresense/internal/jobsource"
	"hiresense/internal/store"
)

// Container holds every collaborator the usecases need. Optional
// collaborators (Postgres, Gemini) degrade rather than block startup; only
// the stores themselves decide availability per request.
type Container struct {
	Config       config.Config
	Logger       *zap.Logger
	Source       jobsource.Source
	Resumes      store.ResumeStore
	Applications store.ApplicationLog
	Generator    ai.Generator

	redisStore *store.Redis
	pgLog      *store.PostgresApplicationLog
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := &Container{Config: cfg, Logger: logger}

	c.redisStore = store.NewRedis(cfg.Redis, logger)
	c.Resumes = c.redisStore
	c.Applications = c.redisStore

	if cfg.Database.URL != "" {
		pgLog, err := store.NewPostgresApplicationLog(ctx, cfg.Database.URL)
		if err != nil {
			logger.Warn("postgres unavailable, keeping redis application log", zap.Error(err))
		} else {
			c.pgLog = pgLog
			c.Applications = pgLog
		}
	}

	source, err := jobsource.NewAdzunaClient(cfg.Adzuna, logger)
	if err != nil {
		logger.Warn("job source not configured", zap.Error(err))
		c.Source = jobsource.Unavailable{Err: err}
	} else {
		c.Source = source
	}

	if cfg.Gemini.APIKey == "" {
		logger.Warn("gemini api key not set, chat is disabled")
	} else {
		generator, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Warn("gemini client unavailable, chat is disabled", zap.Error(err))
		} else {
			c.Generator = generator
		}
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.pgLog != nil {
		c.pgLog.Close()
	}
	if c.redisStore != nil {
		return c.redisStore.Close()
	}
	return nil
}
