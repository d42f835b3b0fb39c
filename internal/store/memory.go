package store

import (
	"context"
	"sync"

	"hiresense/internal/domain/job"
)

// Memory is the in-process backend. It is always available and serves both as
// the standalone store and as the fallback mirror behind Redis. Instances are
// lifecycle-scoped objects, not package state, so tests stay isolated.
type Memory struct {
	mu           sync.RWMutex
	resumeText   string
	applications []job.Application
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) GetResumeText(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resumeText, nil
}

func (m *Memory) SetResumeText(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumeText = text
	return nil
}

func (m *Memory) Append(_ context.Context, app job.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applications = append(m.applications, app)
	return nil
}

func (m *Memory) ListAll(_ context.Context) ([]job.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]job.Application, len(m.applications))
	copy(out, m.applications)
	return out, nil
}
