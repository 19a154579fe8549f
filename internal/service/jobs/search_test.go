package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	jobs "github.com/jwhitfield/careersite/backend/internal/service/jobs"
)

func TestSearchByTitleSubstring(t *testing.T) {
	results := jobs.Search(jobs.SearchParams{Keywords: "Senior AI/ML Engineer"}, jobs.Filters{})

	if len(results) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(results))
	}
	if results[0].Title != "Senior AI/ML Engineer" {
		t.Fatalf("unexpected job: %s", results[0].Title)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	lower := jobs.Search(jobs.SearchParams{Keywords: "senior ai/ml engineer"}, jobs.Filters{})
	upper := jobs.Search(jobs.SearchParams{Keywords: "SENIOR AI/ML ENGINEER"}, jobs.Filters{})

	if len(lower) != 1 || len(upper) != 1 {
		t.Fatalf("expected 1 match each, got %d and %d", len(lower), len(upper))
	}
}

func TestSearchMatchesDescription(t *testing.T) {
	// "AI/ML" appears in the Fernwheel description, not its title.
	results := jobs.Search(jobs.SearchParams{Keywords: "ai/ml"}, jobs.Filters{})

	found := false
	for _, job := range results {
		if job.Company == "Fernwheel" {
			found = true
		}
		if !strings.Contains(strings.ToLower(job.Title), "ai/ml") &&
			!strings.Contains(strings.ToLower(job.Description), "ai/ml") {
			t.Fatalf("job %s matches neither title nor description", job.ID)
		}
	}
	if !found {
		t.Fatal("expected description-only match for Fernwheel")
	}
}

func TestSearchUnmatchedKeywordReturnsEmpty(t *testing.T) {
	results := jobs.Search(jobs.SearchParams{Keywords: "underwater basket weaving"}, jobs.Filters{})

	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}

func TestSearchLocationRemoteFlag(t *testing.T) {
	results := jobs.Search(jobs.SearchParams{Location: "remote"}, jobs.Filters{})

	if len(results) == 0 {
		t.Fatal("expected remote matches")
	}
	for _, job := range results {
		if !job.Remote && !strings.Contains(strings.ToLower(job.Location), "remote") {
			t.Fatalf("job %s is not remote", job.ID)
		}
	}
}

func TestSearchRemoteOnlyFilter(t *testing.T) {
	results := jobs.Search(jobs.SearchParams{}, jobs.Filters{RemoteOnly: true})

	if len(results) == 0 {
		t.Fatal("expected remote-only matches")
	}
	for _, job := range results {
		if !job.Remote {
			t.Fatalf("non-remote job %s in remote-only results", job.ID)
		}
	}
}

type stubJSONCompleter struct {
	payload string
	err     error
	calls   int
}

func (s *stubJSONCompleter) CompleteJSON(_ context.Context, _, _ string, out any) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.payload), out)
}

func TestAnalyzeUsesModelScore(t *testing.T) {
	stub := &stubJSONCompleter{payload: `{"score": 92, "matchedKeywords": ["Go"], "missingKeywords": [], "summary": "strong"}`}
	matcher := jobs.NewMatcher(stub)
	job := jobs.Catalog()[0]

	analysis := matcher.Analyze(context.Background(), job, "resume text here")

	if analysis.Score != 92 {
		t.Fatalf("expected score 92, got %d", analysis.Score)
	}
	if stub.calls != 1 {
		t.Fatalf("expected 1 model call, got %d", stub.calls)
	}
}

func TestAnalyzeFallbackSplitsRequirements(t *testing.T) {
	matcher := jobs.NewMatcher(&stubJSONCompleter{err: errors.New("provider down")})
	job := jobs.Catalog()[0]

	analysis := matcher.Analyze(context.Background(), job, "resume text here")

	if analysis.Score != 75 {
		t.Fatalf("expected fixed score 75, got %d", analysis.Score)
	}
	half := len(job.Requirements) / 2
	if len(analysis.MatchedKeywords) != half {
		t.Fatalf("expected %d matched requirements, got %d", half, len(analysis.MatchedKeywords))
	}
	if len(analysis.MissingKeywords) != len(job.Requirements)-half {
		t.Fatalf("expected %d missing requirements, got %d", len(job.Requirements)-half, len(analysis.MissingKeywords))
	}
}

func TestAnalyzeWithoutResumeSkipsModel(t *testing.T) {
	stub := &stubJSONCompleter{payload: `{"score": 99}`}
	matcher := jobs.NewMatcher(stub)

	analysis := matcher.Analyze(context.Background(), jobs.Catalog()[0], "   ")

	if stub.calls != 0 {
		t.Fatalf("expected no model call without resume text, got %d", stub.calls)
	}
	if analysis.Score != 75 {
		t.Fatalf("expected fallback score 75, got %d", analysis.Score)
	}
}

func TestAnalyzeClampsScore(t *testing.T) {
	matcher := jobs.NewMatcher(&stubJSONCompleter{payload: `{"score": 400}`})

	analysis := matcher.Analyze(context.Background(), jobs.Catalog()[0], "resume")

	if analysis.Score != 100 {
		t.Fatalf("expected clamped score 100, got %d", analysis.Score)
	}
}
