package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hiresense/internal/config"
	"hiresense/internal/domain/job"
)

const (
	resumeKey       = "resumeText"
	applicationsKey = "applications"
)

// Redis backs the resume blob with a string key and the application log with
// an LPUSH list (newest first). Every operation degrades to the in-memory
// mirror when the server is unreachable, so a flaky Redis never fails a
// request.
type Redis struct {
	client   *redis.Client
	fallback *Memory
	logger   *zap.Logger

	warnedUnavailable atomic.Bool
}

// NewRedis connects to the configured server. When the ping fails the store
// starts in pure in-memory mode.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-memory store", zap.Error(err))
		_ = client.Close()
		client = nil
	}

	return &Redis{client: client, fallback: NewMemory(), logger: logger}
}

func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn("redis unavailable, falling back to in-memory store", zap.Error(err))
	}
}

func (r *Redis) GetResumeText(ctx context.Context) (string, error) {
	if r.isUnavailable() {
		return r.fallback.GetResumeText(ctx)
	}
	val, err := r.client.Get(ctx, resumeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		r.warnUnavailableOnce(err)
		return r.fallback.GetResumeText(ctx)
	}
	return val, nil
}

func (r *Redis) SetResumeText(ctx context.Context, text string) error {
	if r.isUnavailable() {
		return r.fallback.SetResumeText(ctx, text)
	}
	if err := r.client.Set(ctx, resumeKey, text, 0).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return r.fallback.SetResumeText(ctx, text)
	}
	return nil
}

func (r *Redis) Append(ctx context.Context, app job.Application) error {
	if r.isUnavailable() {
		return r.fallback.Append(ctx, app)
	}
	b, err := json.Marshal(app)
	if err != nil {
		return err
	}
	if err := r.client.LPush(ctx, applicationsKey, b).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return r.fallback.Append(ctx, app)
	}
	return nil
}

func (r *Redis) ListAll(ctx context.Context) ([]job.Application, error) {
	if r.isUnavailable() {
		return r.fallback.ListAll(ctx)
	}
	items, err := r.client.LRange(ctx, applicationsKey, 0, -1).Result()
	if err != nil {
		r.warnUnavailableOnce(err)
		return r.fallback.ListAll(ctx)
	}

	out := make([]job.Application, 0, len(items))
	for _, item := range items {
		var app job.Application
		if err := json.Unmarshal([]byte(item), &app); err != nil {
			r.logger.Warn("skipping malformed application record", zap.Error(err))
			continue
		}
		out = append(out, app)
	}
	return out, nil
}
