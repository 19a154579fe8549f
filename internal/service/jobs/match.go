package jobs

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// JSONCompleter is the model capability match analysis needs.
type JSONCompleter interface {
	CompleteJSON(ctx context.Context, systemPrompt, userMessage string, out any) error
}

// MatchAnalysis scores one job against the uploaded resume.
type MatchAnalysis struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Summary         string   `json:"summary"`
}

const matchPrompt = `You are an expert AI career assistant that evaluates how well a candidate's resume matches a job posting.

Compare the resume with the job title, description, and requirements. Return your result as a JSON object with this exact shape:

{
  "score": number,
  "matchedKeywords": [string],
  "missingKeywords": [string],
  "summary": string
}

score is 0-100. Base all reasoning only on the provided text. Do not assume experience not explicitly mentioned. Return only valid JSON with no explanations, markdown, or surrounding text.`

// Matcher scores jobs against resume text, falling back to a deterministic
// analysis when no resume is available or the model path fails. Both
// no-resume and failed-analysis cases take the same fallback.
type Matcher struct {
	ai JSONCompleter
}

// NewMatcher wires a matcher. ai may be nil; every analysis is then the
// deterministic fallback.
func NewMatcher(ai JSONCompleter) *Matcher {
	return &Matcher{ai: ai}
}

// Analyze scores one job against the resume text.
func (m *Matcher) Analyze(ctx context.Context, job Job, resumeText string) MatchAnalysis {
	if m.ai == nil || strings.TrimSpace(resumeText) == "" {
		return fallbackAnalysis(job)
	}

	user := fmt.Sprintf("Job title: %s\nCompany: %s\n\nJob description:\n%s\n\nRequirements:\n- %s\n\nResume:\n%s",
		job.Title, job.Company, job.Description, strings.Join(job.Requirements, "\n- "), resumeText)

	var analysis MatchAnalysis
	if err := m.ai.CompleteJSON(ctx, matchPrompt, user, &analysis); err != nil {
		log.Printf("[jobs] match analysis falling back for job=%s: %v", job.ID, err)
		return fallbackAnalysis(job)
	}
	if analysis.Score < 0 {
		analysis.Score = 0
	}
	if analysis.Score > 100 {
		analysis.Score = 100
	}
	return analysis
}

// fallbackAnalysis assigns the fixed score and splits the requirement list:
// first half reported as matched, remainder as missing.
func fallbackAnalysis(job Job) MatchAnalysis {
	half := len(job.Requirements) / 2
	return MatchAnalysis{
		Score:           75,
		MatchedKeywords: append([]string(nil), job.Requirements[:half]...),
		MissingKeywords: append([]string(nil), job.Requirements[half:]...),
		Summary:         "Automated resume analysis was unavailable; this is a baseline estimate against the posting's requirements.",
	}
}
