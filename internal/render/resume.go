package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/jwhitfield/careersite/backend/internal/model/profile"
	"github.com/jwhitfield/careersite/backend/internal/service/jobs"
)

var resumeTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; margin: 48px; color: #1a1a1a; }
  h1 { margin-bottom: 0; font-size: 28px; }
  .subtitle { color: #555; margin-top: 4px; }
  .contact { color: #555; font-size: 13px; margin-bottom: 24px; }
  h2 { font-size: 16px; border-bottom: 1px solid #ccc; padding-bottom: 4px; margin-top: 28px; }
  ul { margin: 8px 0; padding-left: 20px; }
  li { margin: 4px 0; font-size: 14px; }
  p { font-size: 14px; line-height: 1.5; }
  .target { background: #f5f5f0; padding: 10px 14px; font-size: 13px; color: #444; }
</style>
</head>
<body>
  <h1>{{.Facts.Name}}</h1>
  <div class="subtitle">{{.Facts.Title}}</div>
  <div class="contact">{{.Facts.Location}} &middot; {{.Facts.Email}}</div>

  <div class="target">Prepared for: {{.Job.Title}} at {{.Job.Company}}</div>

  <h2>Summary</h2>
  <p>{{.Facts.Summary}}</p>

  <h2>Highlights</h2>
  <ul>
  {{range .Facts.Highlights}}<li>{{.}}</li>
  {{end}}</ul>

  <h2>Skills</h2>
  <p>{{.SkillsLine}}</p>
</body>
</html>
`))

type resumeData struct {
	Facts      profile.Facts
	Job        jobs.Job
	SkillsLine string
}

// ResumeHTML renders the tailored resume document for one opening.
func ResumeHTML(facts profile.Facts, job jobs.Job) (string, error) {
	var buf bytes.Buffer
	data := resumeData{
		Facts:      facts,
		Job:        job,
		SkillsLine: strings.Join(facts.Skills, " · "),
	}
	if err := resumeTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render resume template: %w", err)
	}
	return buf.String(), nil
}
