package tailor

// JobDetails echoes the opening the caller asked about.
type JobDetails struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	URL      string `json:"url,omitempty"`
	Location string `json:"location,omitempty"`
	Salary   string `json:"salary,omitempty"`
	Source   string `json:"source,omitempty"`
}

// JobTailorRequest is the body of POST /api/job-tailor.
type JobTailorRequest struct {
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	JobDescription string `json:"jobDescription"`
	JobURL         string `json:"jobUrl,omitempty"`
}

// JobStrategy is the application strategy for one opening. Success and
// fallback responses share this shape so clients never branch on errors.
type JobStrategy struct {
	JobDetails          JobDetails `json:"jobDetails"`
	RelevanceScore      int        `json:"relevanceScore"`
	MatchedStrengths    []string   `json:"matchedStrengths"`
	Gaps                []string   `json:"gaps"`
	ResumeAdjustments   []string   `json:"resumeAdjustments"`
	CoverLetterOutline  []string   `json:"coverLetterOutline"`
	TalkingPoints       []string   `json:"talkingPoints"`
	ApplicationStrategy string     `json:"applicationStrategy"`
}

// ResumeCustomizerRequest is the body of POST /api/resume-customizer.
type ResumeCustomizerRequest struct {
	JobDescription string `json:"jobDescription"`
}

// ATSAnalysis scores the profile against a job description the way an
// applicant tracking system would.
type ATSAnalysis struct {
	ATSScore           int      `json:"atsScore"`
	MatchedKeywords    []string `json:"matchedKeywords"`
	MissingKeywords    []string `json:"missingKeywords"`
	RecommendedBullets []string `json:"recommendedBullets"`
	SummaryRewrite     string   `json:"summaryRewrite"`
	FormattingTips     []string `json:"formattingTips"`
}

// PackageRequest is the body of POST /api/ai-application-package.
type PackageRequest struct {
	JobTitle         string `json:"jobTitle"`
	Company          string `json:"company"`
	JobDescription   string `json:"jobDescription"`
	JobURL           string `json:"jobUrl"`
	Location         string `json:"location"`
	Salary           string `json:"salary"`
	Source           string `json:"source"`
	CandidateProfile string `json:"candidateProfile"`
}

// FitAssessment summarizes candidate/opening fit inside a package.
type FitAssessment struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// ApplicationPackage is the full set of application collateral for one
// opening.
type ApplicationPackage struct {
	JobDetails       JobDetails    `json:"jobDetails"`
	CoverLetter      string        `json:"coverLetter"`
	ResumeSummary    string        `json:"resumeSummary"`
	ResumeHighlights []string      `json:"resumeHighlights"`
	InterviewPrep    []string      `json:"interviewPrep"`
	FollowUpPlan     []string      `json:"followUpPlan"`
	Fit              FitAssessment `json:"fit"`
}
