package filtering

import (
	"testing"

	"hiresense/internal/domain/job"
)

func scored(id, score int, title, location, jobType string) job.Scored {
	return job.Scored{
		Posting: job.Posting{
			ID:       id,
			Title:    title,
			Location: location,
			JobType:  jobType,
		},
		MatchScore: score,
	}
}

func feed() []job.Scored {
	return []job.Scored{
		scored(1, 80, "Senior React Developer", "Bengaluru", "Full-time"),
		scored(2, 30, "Data Analyst", "Mumbai", "Contract"),
		scored(3, 70, "Backend Engineer", "Remote, India", "Full-time"),
		scored(4, 55, "Frontend Developer", "Delhi", "Part-time"),
	}
}

func TestApplyIdentityWhenSpecEmpty(t *testing.T) {
	jobs := feed()
	got := Apply(jobs, job.FilterSpec{})
	if len(got) != len(jobs) {
		t.Fatalf("identity law: got %d jobs, want %d", len(got), len(jobs))
	}
	for i := range jobs {
		if got[i].ID != jobs[i].ID {
			t.Fatalf("identity law: order changed at %d", i)
		}
	}
}

func TestApplyTitleAndLocationSubstrings(t *testing.T) {
	got := Apply(feed(), job.FilterSpec{Title: "developer"})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("title filter: got %v", ids(got))
	}

	got = Apply(feed(), job.FilterSpec{Location: "REMOTE"})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("location filter: got %v", ids(got))
	}
}

func TestApplyTypeIsExact(t *testing.T) {
	if got := Apply(feed(), job.FilterSpec{Type: "Full-time"}); len(got) != 2 {
		t.Fatalf("exact type: got %v", ids(got))
	}
	// Type is case-sensitive, unlike title and location.
	if got := Apply(feed(), job.FilterSpec{Type: "full-time"}); len(got) != 0 {
		t.Fatalf("lowercased type should match nothing: got %v", ids(got))
	}
}

func TestApplyMatchBandBoundaries(t *testing.T) {
	jobs := []job.Scored{
		scored(70, 70, "", "", ""),
		scored(69, 69, "", "", ""),
		scored(40, 40, "", "", ""),
		scored(39, 39, "", "", ""),
	}

	cases := []struct {
		band string
		want []int
	}{
		{job.MatchBandHigh, []int{70}},
		{job.MatchBandMedium, []int{69, 40}},
		{job.MatchBandLow, []int{39}},
	}

	for _, tc := range cases {
		got := ids(Apply(jobs, job.FilterSpec{Match: tc.band}))
		if len(got) != len(tc.want) {
			t.Fatalf("band %q: got %v, want %v", tc.band, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("band %q: got %v, want %v", tc.band, got, tc.want)
			}
		}
	}
}

func TestApplyConjunction(t *testing.T) {
	got := Apply(feed(), job.FilterSpec{Title: "developer", Type: "Full-time", Match: job.MatchBandHigh})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("all predicates must pass: got %v", ids(got))
	}
}

func TestPartitionCapAndOrder(t *testing.T) {
	jobs := []job.Scored{
		scored(1, 72, "", "", ""),
		scored(2, 90, "", "", ""),
		scored(3, 10, "", "", ""),
		scored(4, 85, "", "", ""),
		scored(5, 85, "", "", ""),
		scored(6, 71, "", "", ""),
		scored(7, 99, "", "", ""),
		scored(8, 70, "", "", ""),
		scored(9, 75, "", "", ""),
	}

	split := Partition(jobs)

	if len(split.Best) != 6 {
		t.Fatalf("best capped at 6: got %d", len(split.Best))
	}
	for i := 1; i < len(split.Best); i++ {
		if split.Best[i].MatchScore > split.Best[i-1].MatchScore {
			t.Fatalf("best not sorted descending at %d: %v", i, ids(split.Best))
		}
	}
	// Equal scores keep their original relative order.
	want := []int{7, 2, 4, 5, 9, 1}
	got := ids(split.Best)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("best order: got %v, want %v", got, want)
		}
	}

	// Others: everything not taken, original order, no overlap.
	wantOthers := []int{3, 6, 8}
	gotOthers := ids(split.Others)
	if len(gotOthers) != len(wantOthers) {
		t.Fatalf("others: got %v, want %v", gotOthers, wantOthers)
	}
	for i := range wantOthers {
		if gotOthers[i] != wantOthers[i] {
			t.Fatalf("others order: got %v, want %v", gotOthers, wantOthers)
		}
	}
	if len(split.Best)+len(split.Others) != len(jobs) {
		t.Fatalf("best and others must partition the input")
	}
}

func TestPartitionAllBelowThreshold(t *testing.T) {
	jobs := []job.Scored{scored(1, 69, "", "", ""), scored(2, 0, "", "", "")}
	split := Partition(jobs)
	if len(split.Best) != 0 {
		t.Fatalf("no job reaches the high band: got %v", ids(split.Best))
	}
	if len(split.Others) != 2 {
		t.Fatalf("others should hold the full input: got %v", ids(split.Others))
	}
}

func ids(jobs []job.Scored) []int {
	out := make([]int, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}
