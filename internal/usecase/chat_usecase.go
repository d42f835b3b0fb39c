package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"hiresense/internal/ai"
	"hiresense/internal/domain/job"
	"hiresense/internal/domain/matching"
	"hiresense/internal/jobsource"
	"hiresense/internal/store"
)

// Bounds on the context embedded in a chat prompt, to keep it well under the
// model's token limits.
const (
	maxContextJobs        = 20
	maxResumeContextChars = 1500
)

//go:embed prompt.md
var promptTemplate string

// ChatReply is the structured result of one chat query. When the model's
// reply cannot be parsed, Answer carries the raw text and the other fields
// stay empty.
type ChatReply struct {
	Answer    string          `json:"answer"`
	Filter    *job.FilterSpec `json:"filter"`
	TopJobIDs []int           `json:"topJobIds"`
	Raw       string          `json:"raw,omitempty"`
}

type ChatUsecase interface {
	HandleQuery(ctx context.Context, query string) (ChatReply, error)
}

type Chat struct {
	generator ai.Generator
	source    jobsource.Source
	resumes   store.ResumeStore
	logger    *zap.Logger
}

func NewChatUsecase(generator ai.Generator, source jobsource.Source, resumes store.ResumeStore, logger *zap.Logger) *Chat {
	return &Chat{generator: generator, source: source, resumes: resumes, logger: logger}
}

// jobBrief is the reduced posting view embedded in the prompt.
type jobBrief struct {
	ID         int          `json:"id"`
	Title      string       `json:"title"`
	Company    string       `json:"company"`
	Location   string       `json:"location"`
	JobType    string       `json:"jobType"`
	WorkMode   job.WorkMode `json:"workMode"`
	Skills     []string     `json:"skills"`
	MatchScore int          `json:"matchScore"`
}

// HandleQuery builds a bounded job/resume context, delegates generation, and
// defensively parses the reply. Context-gathering failures degrade to an
// empty context; only generation failures surface to the caller.
func (u *Chat) HandleQuery(ctx context.Context, query string) (ChatReply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return ChatReply{}, ErrInvalidInput
	}
	if u.generator == nil {
		return ChatReply{}, ErrAIUnavailable
	}

	u.logger.Info("processing chat query", zap.String("query", query))

	postings, err := u.source.FetchJobs(ctx)
	if err != nil {
		u.logger.Warn("fetching postings for chat failed", zap.Error(err))
		postings = nil
	}
	resume := resumeTextOrEmpty(ctx, u.resumes, u.logger)

	prompt, err := buildPrompt(postings, resume, query)
	if err != nil {
		return ChatReply{}, ErrInternal
	}

	raw, err := u.generator.GenerateContent(ctx, prompt)
	if err != nil {
		u.logger.Error("chat generation failed", zap.Error(err))
		switch {
		case errors.Is(err, ai.ErrRateLimited):
			return ChatReply{}, fmt.Errorf("%w: %w", ErrAIRateLimited, err)
		case errors.Is(err, ai.ErrUnavailable):
			return ChatReply{}, fmt.Errorf("%w: %w", ErrAIUnavailable, err)
		}
		return ChatReply{}, err
	}

	u.logger.Debug("chat generation reply", zap.Int("response_length", len(raw)))

	return parseReply(raw, u.logger), nil
}

func buildPrompt(postings []job.Posting, resume, query string) (string, error) {
	if len(postings) > maxContextJobs {
		postings = postings[:maxContextJobs]
	}

	briefs := make([]jobBrief, 0, len(postings))
	for _, p := range postings {
		briefs = append(briefs, jobBrief{
			ID:         p.ID,
			Title:      p.Title,
			Company:    p.Company,
			Location:   p.Location,
			JobType:    p.JobType,
			WorkMode:   p.WorkMode,
			Skills:     p.Skills,
			MatchScore: matching.Score(p.Skills, resume),
		})
	}

	briefsJSON, err := json.Marshal(briefs)
	if err != nil {
		return "", fmt.Errorf("marshal job briefs: %w", err)
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{JOBS_JSON}}", string(briefsJSON))
	prompt = strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", truncateRunes(resume, maxResumeContextChars))
	prompt = strings.ReplaceAll(prompt, "{{USER_QUERY}}", query)
	return prompt, nil
}

// parseReply strips code-fence markup and decodes the structured reply. A
// reply that is not valid JSON degrades to a plain-text answer; that fallback
// is part of the contract since the model's output format is not guaranteed.
func parseReply(raw string, logger *zap.Logger) ChatReply {
	cleaned := extractJSON(raw)

	var parsed struct {
		Answer    string          `json:"answer"`
		Filter    *job.FilterSpec `json:"filter"`
		TopJobIDs []int           `json:"topJobIds"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		logger.Warn("chat reply is not structured, returning as plain text", zap.Error(err))
		return ChatReply{Answer: raw, Filter: nil, TopJobIDs: []int{}, Raw: raw}
	}

	if parsed.TopJobIDs == nil {
		parsed.TopJobIDs = []int{}
	}
	return ChatReply{Answer: parsed.Answer, Filter: parsed.Filter, TopJobIDs: parsed.TopJobIDs, Raw: raw}
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
