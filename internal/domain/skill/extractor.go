package skill

import (
	"regexp"
	"strings"

	"hiresense/internal/domain/job"
)

// Vocabulary is the fixed set of skill tags recognized in job descriptions.
// Alternation order matters: "javascript" must be tried before "java" so that
// the longer tag wins at the same position.
var Vocabulary = []string{
	"react", "node", "python", "javascript", "java", "sql", "html", "css", "express",
}

var vocabularyPattern = regexp.MustCompile(strings.Join(Vocabulary, "|"))

// Extract scans the lowercased description for vocabulary terms and returns
// every occurrence in order of appearance, repeats included. Matching is not
// word-boundary aware: "javascriptx" still yields "javascript". An empty
// description yields an empty slice, never nil.
func Extract(description string) []string {
	if description == "" {
		return []string{}
	}
	tags := vocabularyPattern.FindAllString(strings.ToLower(description), -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

// DeriveWorkMode classifies a posting as remote when any of its area names
// contains "remote", case-insensitively.
func DeriveWorkMode(areas []string) job.WorkMode {
	for _, a := range areas {
		if strings.Contains(strings.ToLower(a), "remote") {
			return job.WorkModeRemote
		}
	}
	return job.WorkModeOnSite
}
