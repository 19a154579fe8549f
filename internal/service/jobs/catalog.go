package jobs

import "time"

// Job is one opening in the demo catalog.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Remote       bool      `json:"remote"`
	Salary       string    `json:"salary"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Source       string    `json:"source"`
	URL          string    `json:"url"`
	PostedAt     time.Time `json:"postedAt"`
}

// Catalog returns the fixed demo openings the search endpoint filters. The
// site has no live job-board integration; this stands in for one.
func Catalog() []Job {
	return []Job{
		{
			ID:          "job-001",
			Title:       "Senior AI/ML Engineer",
			Company:     "Nimbus Analytics",
			Location:    "Portland, OR",
			Remote:      true,
			Salary:      "$185,000 - $230,000",
			Description: "Build and operate LLM-powered features across the Nimbus data platform. You will own model integration, evaluation, and the serving path end to end.",
			Requirements: []string{
				"5+ years of backend engineering experience",
				"Production experience integrating LLM APIs",
				"Strong Python or Go",
				"Experience with evaluation and observability for ML systems",
				"Kubernetes and cloud infrastructure",
				"Kafka or comparable streaming systems",
			},
			Source:   "demo-catalog",
			URL:      "https://jobs.example.com/nimbus/senior-ai-ml-engineer",
			PostedAt: time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "job-002",
			Title:       "Staff Software Engineer, Platform",
			Company:     "Harborline",
			Location:    "Seattle, WA",
			Remote:      false,
			Salary:      "$200,000 - $250,000",
			Description: "Lead the design of Harborline's internal developer platform. Heavy emphasis on service scaffolding, golden paths, and paved-road infrastructure.",
			Requirements: []string{
				"8+ years of software engineering experience",
				"Track record leading platform or infrastructure initiatives",
				"Deep Go or JVM experience",
				"Kubernetes at scale",
				"Strong written communication",
			},
			Source:   "demo-catalog",
			URL:      "https://jobs.example.com/harborline/staff-platform",
			PostedAt: time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "job-003",
			Title:       "Engineering Manager, Developer Experience",
			Company:     "Fernwheel",
			Location:    "Remote (US)",
			Remote:      true,
			Salary:      "$190,000 - $225,000",
			Description: "Manage the developer experience team responsible for CI, build tooling, and the internal AI/ML assistant surface used by every engineer at Fernwheel.",
			Requirements: []string{
				"3+ years managing software engineers",
				"Background in developer tooling or platform work",
				"Comfort with ambiguity and cross-team influence",
				"Hands-on enough to review designs",
			},
			Source:   "demo-catalog",
			URL:      "https://jobs.example.com/fernwheel/em-devex",
			PostedAt: time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "job-004",
			Title:       "Principal Solutions Architect",
			Company:     "Quarry Systems",
			Location:    "Austin, TX",
			Remote:      false,
			Salary:      "$210,000 - $260,000",
			Description: "Own technical pre-sales and architecture for Quarry's data infrastructure products. Frequent customer-facing work with large enterprise accounts.",
			Requirements: []string{
				"10+ years in software or solutions engineering",
				"Experience with large-scale data systems",
				"Excellent presentation skills",
				"Willingness to travel up to 30%",
			},
			Source:   "demo-catalog",
			URL:      "https://jobs.example.com/quarry/principal-sa",
			PostedAt: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

// FindJob looks up a catalog entry by id.
func FindJob(id string) (Job, bool) {
	for _, job := range Catalog() {
		if job.ID == id {
			return job, true
		}
	}
	return Job{}, false
}
