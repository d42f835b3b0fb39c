package matching

import (
	"math"
	"reflect"
	"testing"
)

func TestScoreZeroCases(t *testing.T) {
	if got := Score(nil, "python everywhere"); got != 0 {
		t.Fatalf("no skills: got %d, want 0", got)
	}
	if got := Score([]string{}, "python everywhere"); got != 0 {
		t.Fatalf("empty skills: got %d, want 0", got)
	}
	if got := Score([]string{"python"}, ""); got != 0 {
		t.Fatalf("empty resume: got %d, want 0", got)
	}
}

func TestScoreVariantMatching(t *testing.T) {
	cases := []struct {
		name   string
		skills []string
		resume string
		want   int
	}{
		{"verbatim", []string{"python"}, "Senior Python engineer", 100},
		{"node matches nodejs", []string{"node"}, "I know nodejs", 100},
		{"nodejs matches node", []string{"nodejs"}, "five years of node", 100},
		{"js suffix stripped", []string{"react.js"}, "I use react", 100},
		{"js suffix appended", []string{"react"}, "shipped react.js apps", 100},
		{"half matched", []string{"python", "css"}, "python only", 50},
		{"none matched", []string{"css", "html"}, "embedded C developer", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.skills, tc.resume); got != tc.want {
				t.Fatalf("Score(%v, %q) = %d, want %d", tc.skills, tc.resume, got, tc.want)
			}
		})
	}
}

func TestScoreCountsDuplicateOccurrences(t *testing.T) {
	// Duplicates are scored by position, not collapsed per distinct tag.
	if got := Score([]string{"react", "react"}, "react developer"); got != 100 {
		t.Fatalf("both duplicate occurrences should match: got %d, want 100", got)
	}
	if got := Score([]string{"sql", "sql", "python"}, "sql expert"); got != 67 {
		t.Fatalf("2 of 3 occurrences: got %d, want 67", got)
	}
}

func TestScoreBoundsAndRounding(t *testing.T) {
	skills := []string{"react", "node", "python", "java", "sql", "html", "css"}
	resumes := []string{"", "react", "react node", "react node python java sql html css", "nothing relevant"}

	for _, resume := range resumes {
		got := Score(skills, resume)
		if got < 0 || got > 100 {
			t.Fatalf("Score(%v, %q) = %d out of [0,100]", skills, resume, got)
		}
	}

	// 1 of 7 = 14.28 rounds down, 6 of 7 = 85.71 rounds up.
	if got := Score(skills, "css"); got != 14 {
		t.Fatalf("1/7: got %d, want 14", got)
	}
	if got := Score(skills, "react node python java sql html"); got != 86 {
		t.Fatalf("6/7: got %d, want 86", got)
	}
}

func TestScoreMonotonicInMatchedCount(t *testing.T) {
	resume := "python and java"
	skills := []string{"css"}
	prev := Score(skills, resume)

	for i := 0; i < 5; i++ {
		skills = append(skills, "python")
		got := Score(skills, resume)
		if got < prev {
			t.Fatalf("adding a matching occurrence decreased the score: %d -> %d", prev, got)
		}
		prev = got
	}
}

func TestExplainMatchesScorePredicate(t *testing.T) {
	cases := []struct {
		skills []string
		resume string
		want   []string
	}{
		{[]string{"sql", "sql", "python"}, "sql expert", []string{"sql", "sql"}},
		{[]string{"react", "css"}, "react.js fan", []string{"react"}},
		{[]string{"node"}, "", []string{}},
		{[]string{}, "anything", []string{}},
	}

	for _, tc := range cases {
		got := Explain(tc.skills, tc.resume)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Explain(%v, %q) = %v, want %v", tc.skills, tc.resume, got, tc.want)
		}

		// Lockstep invariant: the score is exactly the explained share.
		if len(tc.skills) > 0 && tc.resume != "" {
			wantScore := int(math.Round(float64(len(got)) / float64(len(tc.skills)) * 100))
			if wantScore > 100 {
				wantScore = 100
			}
			if gotScore := Score(tc.skills, tc.resume); gotScore != wantScore {
				t.Fatalf("Score(%v, %q) = %d diverges from Explain share %d", tc.skills, tc.resume, gotScore, wantScore)
			}
		}
	}
}
