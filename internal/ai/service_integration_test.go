package ai

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"resumescan/internal/config"
	"resumescan/internal/errors"
	"resumescan/internal/types"
)

// Helper functions to create pointers for test values
func timePtr(d time.Duration) *time.Duration { return &d }
func intPtr(i int) *int                      { return &i }
func float32Ptr(f float32) *float32          { return &f }
func boolPtr(b bool) *bool                   { return &b }

var testLogger = errors.NewLogger(slog.LevelDebug)

// TestOperationSpecificConfigDerivation verifies that operation-specific
// configurations are correctly derived, with fallbacks to the global
// configuration.
func TestOperationSpecificConfigDerivation(t *testing.T) {
	testConfig := createTestConfigWithOverrides()

	testCases := []struct {
		name           string
		getConfig      func() config.OperationAIConfig
		expectedValues map[string]interface{}
		fallbackValues map[string]interface{}
	}{
		{
			name:      "ATSConfigDerivation",
			getConfig: testConfig.GetATSConfig,
			expectedValues: map[string]interface{}{
				"Model":       "ats-specific-model",
				"Timeout":     90 * time.Second,
				"Temperature": float32(0.3),
			},
			fallbackValues: map[string]interface{}{
				"APIKey":     "global-api-key",
				"MaxRetries": 5,
			},
		},
		{
			name:      "JobMatchConfigDerivation",
			getConfig: testConfig.GetJobMatchConfig,
			expectedValues: map[string]interface{}{
				"Model":      "jobmatch-specific-model",
				"MaxRetries": 1,
			},
			fallbackValues: map[string]interface{}{
				"Timeout": 60 * time.Second,
				"APIKey":  "global-api-key",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.getConfig()
			assertConfigValues(t, cfg, tc.expectedValues, tc.fallbackValues)
			assertServiceCreation(t, cfg, tc.name)
		})
	}
}

// createTestConfigWithOverrides creates a test config with operation-specific overrides
func createTestConfigWithOverrides() *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			// Global defaults that should be used as fallbacks
			Provider:         "mock",
			Model:            "global-model",
			Timeout:          60 * time.Second,
			APIKey:           "global-api-key",
			MaxRetries:       5,
			Temperature:      0.9,
			UseSystemPrompts: true,

			// Operation-specific configurations that override globals
			ATS: config.OperationAIConfig{
				Model:       "ats-specific-model",      // Override
				Timeout:     timePtr(90 * time.Second), // Override
				Temperature: float32Ptr(0.3),           // Override
				// APIKey and MaxRetries should fall back to global values.
			},

			JobMatch: config.OperationAIConfig{
				Model:      "jobmatch-specific-model", // Override
				MaxRetries: intPtr(1),                 // Override
				// Other values should fall back.
			},
		},
	}
}

// assertConfigValues verifies that config values match expected and fallback values
func assertConfigValues(t *testing.T, cfg config.OperationAIConfig, expectedValues, fallbackValues map[string]interface{}) {
	t.Helper()

	for key, expected := range expectedValues {
		assertConfigValue(t, cfg, key, expected)
	}
	for key, expected := range fallbackValues {
		assertConfigValue(t, cfg, key, expected)
	}
}

// assertConfigValue checks a specific config value
func assertConfigValue(t *testing.T, cfg config.OperationAIConfig, key string, expected interface{}) {
	t.Helper()

	switch key {
	case "Model":
		if cfg.Model != expected.(string) {
			t.Errorf("Expected %s '%s', got '%s'", key, expected, cfg.Model)
		}
	case "Timeout":
		if *cfg.Timeout != expected.(time.Duration) {
			t.Errorf("Expected %s %v, got %v", key, expected, *cfg.Timeout)
		}
	case "Temperature":
		if *cfg.Temperature != expected.(float32) {
			t.Errorf("Expected %s %f, got %f", key, expected, *cfg.Temperature)
		}
	case "APIKey":
		if cfg.APIKey != expected.(string) {
			t.Errorf("Expected %s '%s', got '%s'", key, expected, cfg.APIKey)
		}
	case "MaxRetries":
		if *cfg.MaxRetries != expected.(int) {
			t.Errorf("Expected %s %d, got %d", key, expected, *cfg.MaxRetries)
		}
	}
}

// assertServiceCreation verifies that a service can be created with the derived config
func assertServiceCreation(t *testing.T, cfg config.OperationAIConfig, operation string) {
	t.Helper()

	if _, err := NewService(&cfg, operation, testLogger); err != nil {
		t.Errorf("Failed to create service for %s: %v", operation, err)
	}
}

func TestMockProviderAssessment(t *testing.T) {
	cfg := &config.OperationAIConfig{
		Provider:         "mock",
		Model:            "mock",
		Timeout:          timePtr(30 * time.Second),
		MaxRetries:       intPtr(0),
		Temperature:      float32Ptr(0.2),
		UseSystemPrompts: boolPtr(true),
	}

	service, err := NewService(cfg, "ats", testLogger)
	if err != nil {
		t.Fatalf("Failed to create mock-backed service: %v", err)
	}

	judgment, usage, err := service.Provider.AssessResume(context.Background(), AssessInput{
		ResumeText: "EXPERIENCE\nBuilt services in Python.",
		Mode:       types.ModeATS,
	})
	if err != nil {
		t.Fatalf("AssessResume returned error: %v", err)
	}
	if judgment.Score < 1 || judgment.Score > 10 {
		t.Errorf("Expected judgment score in [1,10], got %d", judgment.Score)
	}
	if len(judgment.Strengths) == 0 || len(judgment.Recommendations) == 0 {
		t.Error("Mock judgment should carry strengths and recommendations")
	}
	if usage == nil {
		t.Error("Expected non-nil token usage from mock provider")
	}

	info := service.Provider.GetModelInfo(context.Background())
	if !info.Available {
		t.Error("Mock provider model should report as available")
	}
}

func TestMockProviderErrorPropagation(t *testing.T) {
	cfg := &config.OperationAIConfig{Provider: "mock"}
	provider := NewMockProvider(cfg, testLogger)
	provider.Err = errors.NewNetworkError(errors.ErrCodeNetworkTimeout, "simulated transport failure", nil)

	_, _, err := provider.AssessResume(context.Background(), AssessInput{
		ResumeText: "text",
		Mode:       types.ModeATS,
	})
	if err == nil {
		t.Fatal("Expected error from failing provider")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Type != errors.ErrorTypeNetwork {
		t.Errorf("Expected network error category, got %s", appErr.Type)
	}
}
