package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hiresense/internal/domain/job"
)

// PostgresApplicationLog persists application records in a single table.
// Listing returns newest first.
type PostgresApplicationLog struct {
	pool *pgxpool.Pool
}

// NewPostgresApplicationLog creates and verifies a pgxpool connection and
// ensures the applications table exists.
func NewPostgresApplicationLog(ctx context.Context, databaseURL string) (*PostgresApplicationLog, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	s := &PostgresApplicationLog{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresApplicationLog) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS applications (
			id         BIGSERIAL PRIMARY KEY,
			job_id     INTEGER     NOT NULL,
			status     TEXT        NOT NULL,
			job_title  TEXT        NOT NULL DEFAULT '',
			company    TEXT        NOT NULL DEFAULT '',
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure applications table: %w", err)
	}
	return nil
}

func (s *PostgresApplicationLog) Append(ctx context.Context, app job.Application) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO applications (job_id, status, job_title, company, applied_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		app.JobID, app.Status, app.JobTitle, app.Company, app.Time,
	)
	if err != nil {
		return fmt.Errorf("append application: %w", err)
	}
	return nil
}

func (s *PostgresApplicationLog) ListAll(ctx context.Context) ([]job.Application, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT job_id, status, job_title, company, applied_at
		 FROM applications
		 ORDER BY applied_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list applications query: %w", err)
	}
	defer rows.Close()

	apps := make([]job.Application, 0)
	for rows.Next() {
		var a job.Application
		if err := rows.Scan(&a.JobID, &a.Status, &a.JobTitle, &a.Company, &a.Time); err != nil {
			return nil, fmt.Errorf("list applications scan: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (s *PostgresApplicationLog) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}
