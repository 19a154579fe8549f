package tailor

import (
	"fmt"
	"strings"

	"github.com/jwhitfield/careersite/backend/internal/model/profile"
)

const strictJSONRules = `Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON. Your response must be a single JSON object. Base all reasoning only on the provided text; do not invent experience not explicitly mentioned.`

func factsBlock(facts profile.Facts) string {
	return fmt.Sprintf(`Candidate: %s
Title: %s
Location: %s
Summary: %s
Skills: %s
Highlights:
- %s`,
		facts.Name,
		facts.Title,
		facts.Location,
		facts.Summary,
		strings.Join(facts.Skills, ", "),
		strings.Join(facts.Highlights, "\n- "),
	)
}

func jobTailorPrompt(facts profile.Facts) string {
	return fmt.Sprintf(`You are an expert career strategist preparing %s's application for a specific opening.

%s

Analyze the job posting the user provides and produce an application strategy as a JSON object with this exact shape:

{
  "jobDetails": {"title": string, "company": string, "url": string},
  "relevanceScore": number,
  "matchedStrengths": [string],
  "gaps": [string],
  "resumeAdjustments": [string],
  "coverLetterOutline": [string],
  "talkingPoints": [string],
  "applicationStrategy": string
}

relevanceScore is 0-100. %s`, facts.Name, factsBlock(facts), strictJSONRules)
}

func resumeCustomizerPrompt(facts profile.Facts) string {
	return fmt.Sprintf(`You are an ATS optimization expert reviewing %s's profile against a job description.

%s

Produce an analysis as a JSON object with this exact shape:

{
  "atsScore": number,
  "matchedKeywords": [string],
  "missingKeywords": [string],
  "recommendedBullets": [string],
  "summaryRewrite": string,
  "formattingTips": [string]
}

atsScore is 0-100. %s`, facts.Name, factsBlock(facts), strictJSONRules)
}

func packagePrompt(facts profile.Facts) string {
	return fmt.Sprintf(`You are an expert career assistant assembling a complete application package for %s.

%s

Using the job posting and any extra candidate context the user provides, produce a JSON object with this exact shape:

{
  "jobDetails": {"title": string, "company": string, "url": string, "location": string, "salary": string, "source": string},
  "coverLetter": string,
  "resumeSummary": string,
  "resumeHighlights": [string],
  "interviewPrep": [string],
  "followUpPlan": [string],
  "fit": {"score": number, "reasons": [string]}
}

fit.score is 0-100. The cover letter should be three short paragraphs. %s`, facts.Name, factsBlock(facts), strictJSONRules)
}
