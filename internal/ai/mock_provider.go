package ai

import (
	"context"

	"resumescan/internal/config"
	rsErrors "resumescan/internal/errors"
	"resumescan/internal/types"
)

// MockProvider is a deterministic AIProvider for local development and
// tests. It returns a fixed judgment without any network calls.
type MockProvider struct {
	config *config.OperationAIConfig
	logger *rsErrors.Logger

	// Judgment is returned from every AssessResume call. Defaults to a
	// neutral-positive verdict.
	Judgment types.AIJudgment

	// Err, when set, is returned instead of the judgment
	Err error
}

var _ AIProvider = (*MockProvider)(nil)

// NewMockProvider creates a mock provider with a fixed default judgment
func NewMockProvider(cfg *config.OperationAIConfig, logger *rsErrors.Logger) *MockProvider {
	return &MockProvider{
		config: cfg,
		logger: logger,
		Judgment: types.AIJudgment{
			Score: 7,
			Strengths: []string{
				"Clear structure with identifiable sections",
				"Relevant technical keywords present",
			},
			Weaknesses: []string{
				"Limited quantified achievements",
			},
			Recommendations: []string{
				"Add measurable outcomes to experience entries",
				"Tailor the summary to the target role",
			},
		},
	}
}

// AssessResume returns the configured fixed judgment
func (m *MockProvider) AssessResume(ctx context.Context, input AssessInput) (types.AIJudgment, *TokenUsage, error) {
	if err := ctx.Err(); err != nil {
		return types.AIJudgment{}, nil, err
	}
	if m.Err != nil {
		return types.AIJudgment{}, nil, m.Err
	}

	if m.logger != nil {
		m.logger.Debug("Mock assessment served",
			"mode", string(input.Mode),
			"resume_chars", len(input.ResumeText))
	}
	return m.Judgment, &TokenUsage{}, nil
}

// GetModelInfo reports the mock backend as always available
func (m *MockProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	return &ModelInfo{
		Name:        "mock",
		DisplayName: "Mock Assessment Provider",
		Available:   true,
	}
}

// Close implements AIProvider
func (m *MockProvider) Close() error {
	return nil
}
