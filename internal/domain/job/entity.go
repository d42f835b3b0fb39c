package job

import "time"

// WorkMode classifies where a posting expects work to happen.
type WorkMode string

const (
	WorkModeRemote WorkMode = "Remote"
	WorkModeOnSite WorkMode = "On-site"
)

// Application statuses a user can record for a posting.
const (
	StatusApplied        = "Applied"
	StatusAppliedEarlier = "Applied Earlier"
	StatusBrowsing       = "Browsing"
)

// Posting is a single job listing as fetched from the job source. The ID is a
// sequential number assigned at fetch time and is not stable across fetches.
// A Posting is never mutated after construction.
type Posting struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	JobType     string   `json:"jobType"`
	WorkMode    WorkMode `json:"workMode"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
	ApplyURL    string   `json:"applyUrl"`
}

// Scored decorates a Posting with its match against the current resume.
type Scored struct {
	Posting
	MatchScore       int      `json:"matchScore"`
	MatchExplanation []string `json:"matchExplanation"`
}

// Application is an append-only record of a user action on a posting. JobID is
// the posting id at the time of action and is not validated against the
// current feed.
type Application struct {
	JobID    int       `json:"jobId"`
	Status   string    `json:"status"`
	JobTitle string    `json:"jobTitle"`
	Company  string    `json:"company"`
	Time     time.Time `json:"time"`
}

// FilterSpec narrows a scored job collection for one display cycle. Empty
// fields impose no constraint.
type FilterSpec struct {
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
	Type     string `json:"type,omitempty"`
	Match    string `json:"match,omitempty"`
}

// Match band names accepted in FilterSpec.Match.
const (
	MatchBandHigh   = "high"
	MatchBandMedium = "medium"
	MatchBandLow    = "low"
)

// ValidStatus reports whether s is one of the known application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusAppliedEarlier, StatusBrowsing:
		return true
	}
	return false
}
