package ai

import (
	"context"

	"resumescan/internal/types"
)

// AssessInput is the input for an AI resume assessment. JobDescription is
// set only in job_match mode.
type AssessInput struct {
	ResumeText     string
	JobDescription string
	Mode           types.AnalysisMode
}

// AIProvider is the contract for AI assessment backends. All methods
// return token usage information - callers can ignore it if not needed.
type AIProvider interface {
	AssessResume(ctx context.Context, input AssessInput) (types.AIJudgment, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
