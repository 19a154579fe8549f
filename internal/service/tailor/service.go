package tailor

import (
	"context"
	"fmt"
	"log"

	"github.com/jwhitfield/careersite/backend/internal/model/profile"
)

// JSONCompleter is the model capability the tailoring pipeline needs.
type JSONCompleter interface {
	CompleteJSON(ctx context.Context, systemPrompt, userMessage string, out any) error
}

// Service runs the shared tailoring pipeline: build prompt, request strict
// JSON, decode, and on any failure substitute a same-shaped fallback. None of
// its methods return provider errors.
type Service struct {
	facts profile.Facts
	ai    JSONCompleter
}

// NewService wires the tailoring service. ai may be nil; every request then
// answers with the static fallback.
func NewService(facts profile.Facts, ai JSONCompleter) *Service {
	return &Service{facts: facts, ai: ai}
}

// TailorJob produces an application strategy for one opening.
func (s *Service) TailorJob(ctx context.Context, req JobTailorRequest) JobStrategy {
	var result JobStrategy
	user := fmt.Sprintf("Job title: %s\nCompany: %s\nURL: %s\n\nJob description:\n%s",
		req.JobTitle, req.Company, req.JobURL, req.JobDescription)

	if err := s.complete(ctx, jobTailorPrompt(s.facts), user, &result); err != nil {
		log.Printf("[tailor] job-tailor falling back: %v", err)
		return fallbackStrategy(s.facts, req)
	}

	// The model occasionally drops or rewrites the echo fields; the client
	// relies on them matching the request.
	result.JobDetails.Title = req.JobTitle
	result.JobDetails.Company = req.Company
	result.JobDetails.URL = req.JobURL
	return result
}

// CustomizeResume produces an ATS analysis of the profile against a job
// description.
func (s *Service) CustomizeResume(ctx context.Context, req ResumeCustomizerRequest) ATSAnalysis {
	var result ATSAnalysis
	user := "Job description:\n" + req.JobDescription

	if err := s.complete(ctx, resumeCustomizerPrompt(s.facts), user, &result); err != nil {
		log.Printf("[tailor] resume-customizer falling back: %v", err)
		return fallbackATSAnalysis(s.facts)
	}
	return result
}

// BuildPackage produces the full application package for one opening.
func (s *Service) BuildPackage(ctx context.Context, req PackageRequest) ApplicationPackage {
	var result ApplicationPackage
	user := fmt.Sprintf("Job title: %s\nCompany: %s\nLocation: %s\nSalary: %s\nSource: %s\nURL: %s\n\nJob description:\n%s\n\nExtra candidate context:\n%s",
		req.JobTitle, req.Company, req.Location, req.Salary, req.Source, req.JobURL,
		req.JobDescription, req.CandidateProfile)

	if err := s.complete(ctx, packagePrompt(s.facts), user, &result); err != nil {
		log.Printf("[tailor] application-package falling back: %v", err)
		return fallbackPackage(s.facts, req)
	}

	result.JobDetails.Title = req.JobTitle
	result.JobDetails.Company = req.Company
	result.JobDetails.URL = req.JobURL
	result.JobDetails.Location = req.Location
	result.JobDetails.Salary = req.Salary
	result.JobDetails.Source = req.Source
	return result
}

func (s *Service) complete(ctx context.Context, system, user string, out any) error {
	if s.ai == nil {
		return fmt.Errorf("no completion provider configured")
	}
	return s.ai.CompleteJSON(ctx, system, user, out)
}
