package jobsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"hiresense/internal/config"
	"hiresense/internal/domain/job"
	"hiresense/internal/domain/skill"
)

// Source returns one batch of raw postings per call. Every call builds the
// batch from scratch: ids restart at 1 and nothing is persisted.
type Source interface {
	FetchJobs(ctx context.Context) ([]job.Posting, error)
}

// Unavailable is the Source used when the job source cannot be configured;
// every fetch fails with the configuration error so the feed surfaces it per
// request instead of crashing the process at startup.
type Unavailable struct {
	Err error
}

func (u Unavailable) FetchJobs(context.Context) ([]job.Posting, error) {
	return nil, u.Err
}

// AdzunaClient fetches postings from the Adzuna search API.
type AdzunaClient struct {
	client *http.Client
	logger *zap.Logger
	cfg    config.AdzunaConfig
}

func NewAdzunaClient(cfg config.AdzunaConfig, logger *zap.Logger) (*AdzunaClient, error) {
	if cfg.AppID == "" || cfg.AppKey == "" {
		return nil, errors.New("missing adzuna api credentials")
	}
	if cfg.ResultsPerPage <= 0 {
		cfg.ResultsPerPage = 20
	}

	return &AdzunaClient{
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
		cfg:    cfg,
	}, nil
}

type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string   `json:"display_name"`
		Area        []string `json:"area"`
	} `json:"location"`
	Description  string `json:"description"`
	ContractTime string `json:"contract_time"`
	RedirectURL  string `json:"redirect_url"`
}

// FetchJobs requests the first search page and maps each result to a Posting,
// filling the documented defaults for absent fields.
func (c *AdzunaClient) FetchJobs(ctx context.Context) ([]job.Posting, error) {
	q := url.Values{}
	q.Set("app_id", c.cfg.AppID)
	q.Set("app_key", c.cfg.AppKey)
	q.Set("results_per_page", fmt.Sprintf("%d", c.cfg.ResultsPerPage))

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", c.cfg.BaseURL, c.cfg.Country, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("job source request failed", zap.Error(err))
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("job source returned unexpected status", zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	postings := make([]job.Posting, 0, len(payload.Results))
	for i, r := range payload.Results {
		postings = append(postings, mapResult(i+1, r))
	}

	c.logger.Debug("fetched postings", zap.Int("count", len(postings)))

	return postings, nil
}

func mapResult(id int, r adzunaResult) job.Posting {
	company := r.Company.DisplayName
	if company == "" {
		company = "Unknown"
	}
	location := r.Location.DisplayName
	if location == "" {
		location = "Unknown"
	}
	jobType := r.ContractTime
	if jobType == "" {
		jobType = "Full-time"
	}

	return job.Posting{
		ID:          id,
		Title:       r.Title,
		Company:     company,
		Location:    location,
		JobType:     jobType,
		WorkMode:    skill.DeriveWorkMode(r.Location.Area),
		Skills:      skill.Extract(r.Description),
		Description: r.Description,
		ApplyURL:    r.RedirectURL,
	}
}
