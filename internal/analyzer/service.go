// Package analyzer runs job descriptions through the configured model and
// returns the raw analysis text. Analyzer output is advisory and is never
// written to the tracker.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobassist-backend/internal/llm"
	"jobassist-backend/internal/shared/metrics"
	"jobassist-backend/internal/shared/telemetry"
)

const promptTemplate = `You are an experienced HR recruiter. Analyze the following job description and respond with exactly these sections:

TOP 5 KEYWORDS:
TECHNICAL SKILLS:
SOFT SKILLS:
POTENTIAL INTERVIEW QUESTIONS:

Job description:
%s`

// Service sends job descriptions to the model.
type Service struct {
	Client  llm.Client
	Timeout time.Duration
}

func NewService(client llm.Client, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Service{Client: client, Timeout: timeout}
}

// Analyze returns the model's analysis of the job description. Model failures
// are reported in-band as an "Error: ..." string so callers can surface them
// without a transport error.
func (s *Service) Analyze(ctx context.Context, jobDescription string) string {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return "Error: job description is required"
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	metrics.IncAIRequest()
	start := time.Now()
	result, err := s.Client.Complete(ctx, fmt.Sprintf(promptTemplate, jobDescription))
	metrics.ObserveAIDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncAIFailed()
		telemetry.Error("analyzer request failed", map[string]any{"error": err.Error()})
		return fmt.Sprintf("Error: %v", err)
	}
	return result
}
