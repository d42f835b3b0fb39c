package matching

import (
	"math"
	"strings"
)

// substitution is one accepted rewriting of a skill tag when probing the
// resume text. The table keeps the scorer and the explainer on a single
// matching rule.
type substitution struct {
	old string
	new string
}

var substitutions = []substitution{
	{"node", "nodejs"},
	{"nodejs", "node"},
}

// variantsFor returns the surface forms under which a skill tag is accepted:
// the tag itself, the tag with a ".js" suffix stripped or appended, and each
// table substitution applied once.
func variantsFor(tag string) []string {
	variants := []string{
		tag,
		strings.TrimSuffix(tag, ".js"),
		tag + ".js",
	}
	for _, s := range substitutions {
		variants = append(variants, strings.Replace(tag, s.old, s.new, 1))
	}
	return variants
}

// matches reports whether a single skill tag is found in the lowercased
// resume text under any accepted variant.
func matches(resume, tag string) bool {
	for _, v := range variantsFor(strings.ToLower(tag)) {
		if strings.Contains(resume, v) {
			return true
		}
	}
	return false
}

// Score computes the percentage of skill occurrences found in the resume
// text, rounded half-up and capped at 100. Occurrences are counted by
// position: duplicate tags contribute separately. An empty resume or an empty
// skill list scores 0. Score never fails.
func Score(skills []string, resumeText string) int {
	if resumeText == "" || len(skills) == 0 {
		return 0
	}

	resume := strings.ToLower(resumeText)
	matched := 0
	for _, tag := range skills {
		if matches(resume, tag) {
			matched++
		}
	}

	base := int(math.Round(float64(matched) / float64(len(skills)) * 100))
	if base > 100 {
		return 100
	}
	return base
}

// Explain returns the skill occurrences that Score counted as matched, in
// order and without deduplication. It uses the identical predicate as Score.
func Explain(skills []string, resumeText string) []string {
	out := []string{}
	if resumeText == "" {
		return out
	}

	resume := strings.ToLower(resumeText)
	for _, tag := range skills {
		if matches(resume, tag) {
			out = append(out, tag)
		}
	}
	return out
}
