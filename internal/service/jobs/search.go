package jobs

import "strings"

// SearchParams come from the search form.
type SearchParams struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}

// Filters narrow the result set further.
type Filters struct {
	RemoteOnly bool `json:"remoteOnly"`
}

// Stats summarizes one search.
type Stats struct {
	TotalAvailable int  `json:"totalAvailable"`
	Matched        int  `json:"matched"`
	ResumeParsed   bool `json:"resumeParsed"`
}

// Search filters the fixed catalog: case-insensitive substring match of
// keywords against title and description, substring or remote-flag match
// against location.
func Search(params SearchParams, filters Filters) []Job {
	catalog := Catalog()
	keywords := strings.ToLower(strings.TrimSpace(params.Keywords))
	location := strings.ToLower(strings.TrimSpace(params.Location))

	matched := make([]Job, 0, len(catalog))
	for _, job := range catalog {
		if keywords != "" {
			title := strings.ToLower(job.Title)
			desc := strings.ToLower(job.Description)
			if !strings.Contains(title, keywords) && !strings.Contains(desc, keywords) {
				continue
			}
		}
		if location != "" {
			jobLocation := strings.ToLower(job.Location)
			wantsRemote := strings.Contains(location, "remote")
			if !strings.Contains(jobLocation, location) && !(wantsRemote && job.Remote) {
				continue
			}
		}
		if filters.RemoteOnly && !job.Remote {
			continue
		}
		matched = append(matched, job)
	}
	return matched
}
