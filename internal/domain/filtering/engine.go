package filtering

import (
	"sort"
	"strings"

	"hiresense/internal/domain/job"
)

// Thresholds separating the match bands.
const (
	highThreshold   = 70
	mediumThreshold = 40
)

// bestMatchLimit caps the "best matches" group for presentation.
const bestMatchLimit = 6

// Split is the presentation grouping of a filtered feed: Best holds the
// highest-scoring jobs, Others everything else in original order. The two are
// disjoint and together equal the filtered input.
type Split struct {
	Best   []job.Scored `json:"best"`
	Others []job.Scored `json:"others"`
}

// Apply retains the jobs for which every set predicate of spec passes,
// preserving input order. An all-empty spec returns the input unchanged.
func Apply(jobs []job.Scored, spec job.FilterSpec) []job.Scored {
	out := make([]job.Scored, 0, len(jobs))
	for _, j := range jobs {
		if retained(j, spec) {
			out = append(out, j)
		}
	}
	return out
}

func retained(j job.Scored, spec job.FilterSpec) bool {
	if spec.Title != "" && !containsFold(j.Title, spec.Title) {
		return false
	}
	if spec.Location != "" && !containsFold(j.Location, spec.Location) {
		return false
	}
	if spec.Type != "" && j.JobType != spec.Type {
		return false
	}
	if spec.Match != "" && !inBand(j.MatchScore, spec.Match) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func inBand(score int, band string) bool {
	switch band {
	case job.MatchBandHigh:
		return score >= highThreshold
	case job.MatchBandMedium:
		return score >= mediumThreshold && score < highThreshold
	case job.MatchBandLow:
		return score < mediumThreshold
	}
	return true
}

// Partition splits a filtered feed into the best matches (score >= 70, sorted
// descending with ties keeping their original relative order, at most 6) and
// the rest in original order.
func Partition(jobs []job.Scored) Split {
	candidates := make([]int, 0, len(jobs))
	for i, j := range jobs {
		if j.MatchScore >= highThreshold {
			candidates = append(candidates, i)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return jobs[candidates[a]].MatchScore > jobs[candidates[b]].MatchScore
	})
	if len(candidates) > bestMatchLimit {
		candidates = candidates[:bestMatchLimit]
	}

	taken := make(map[int]bool, len(candidates))
	best := make([]job.Scored, 0, len(candidates))
	for _, i := range candidates {
		taken[i] = true
		best = append(best, jobs[i])
	}

	others := make([]job.Scored, 0, len(jobs)-len(best))
	for i, j := range jobs {
		if !taken[i] {
			others = append(others, j)
		}
	}

	return Split{Best: best, Others: others}
}
