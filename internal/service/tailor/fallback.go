package tailor

import "github.com/jwhitfield/careersite/backend/internal/model/profile"

// Fallback payloads mirror the success shapes exactly so clients never need
// error-specific branching. They are hand-authored from the same static
// profile facts the prompts embed.

func fallbackStrategy(facts profile.Facts, req JobTailorRequest) JobStrategy {
	return JobStrategy{
		JobDetails: JobDetails{
			Title:   req.JobTitle,
			Company: req.Company,
			URL:     req.JobURL,
		},
		RelevanceScore: 75,
		MatchedStrengths: []string{
			"14 years across distributed systems, developer platforms, and applied ML",
			"Led a 30-person platform organization at a public company",
			"Hands-on LLM integration experience at production scale",
		},
		Gaps: []string{
			"Automated analysis unavailable; review the posting manually for domain-specific requirements",
		},
		ResumeAdjustments: []string{
			"Lead with the platform-org leadership role and its team size",
			"Quantify the event-pipeline scaling work (40M to 3B events/day)",
			"Surface LLM gateway adoption metrics near the top",
		},
		CoverLetterOutline: []string{
			"Open with the specific opening and why it fits Jordan's platform background",
			"Middle paragraph: one concrete scaling or leadership story",
			"Close with availability and a direct contact offer",
		},
		TalkingPoints: []string{
			"Scaling infrastructure while cutting cost 4x",
			"Growing and retaining a multi-team engineering org",
			"Pragmatic LLM adoption inside an established platform",
		},
		ApplicationStrategy: "Apply directly with the tailored resume, then follow up with the hiring manager within a week referencing one specific challenge from the posting.",
	}
}

func fallbackATSAnalysis(facts profile.Facts) ATSAnalysis {
	return ATSAnalysis{
		ATSScore:        75,
		MatchedKeywords: append([]string(nil), facts.Skills...),
		MissingKeywords: []string{},
		RecommendedBullets: []string{
			"Scaled an event pipeline from 40M to 3B events/day with a 4x cost reduction",
			"Built and led a 30-person platform organization across 4 teams",
			"Launched an internal LLM gateway adopted by 200+ engineers in one quarter",
		},
		SummaryRewrite: facts.Summary,
		FormattingTips: []string{
			"Use standard section headings (Experience, Skills, Education)",
			"Keep to two pages and avoid tables or multi-column layouts",
			"Mirror exact keyword phrasing from the job description",
		},
	}
}

func fallbackPackage(facts profile.Facts, req PackageRequest) ApplicationPackage {
	return ApplicationPackage{
		JobDetails: JobDetails{
			Title:    req.JobTitle,
			Company:  req.Company,
			URL:      req.JobURL,
			Location: req.Location,
			Salary:   req.Salary,
			Source:   req.Source,
		},
		CoverLetter: "Dear Hiring Team,\n\nI'm writing to express interest in the " + req.JobTitle + " role at " + req.Company + ". I bring 14 years of experience across distributed systems, developer platforms, and applied machine learning, most recently leading a 30-person platform organization.\n\nHighlights of my background include scaling an event pipeline from 40M to 3B events per day while cutting cost 4x, and launching an internal LLM gateway adopted by over 200 engineers in its first quarter.\n\nI'd welcome a conversation about how this experience maps to your team's goals. You can reach me at " + facts.Email + ".\n\nBest regards,\n" + facts.Name,
		ResumeSummary:    facts.Summary,
		ResumeHighlights: append([]string(nil), facts.Highlights...),
		InterviewPrep: []string{
			"Prepare a scaling story with concrete before/after numbers",
			"Prepare an org-design story: growing 4 teams under one platform charter",
			"Research the company's current infrastructure stack and hiring posts",
		},
		FollowUpPlan: []string{
			"Day 3: confirm the application landed with the recruiter",
			"Day 7: short note to the hiring manager referencing the posting",
			"Day 14: final follow-up offering references",
		},
		Fit: FitAssessment{
			Score: 75,
			Reasons: []string{
				"Automated fit analysis unavailable; score reflects the default platform-leadership match",
			},
		},
	}
}
