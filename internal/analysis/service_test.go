package analysis

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"resumescan/internal/ai"
	"resumescan/internal/config"
	"resumescan/internal/errors"
	"resumescan/internal/store"
	"resumescan/internal/types"
)

var testLogger = errors.NewLogger(slog.LevelDebug)

const testResumeText = `John Doe
john.doe@example.com | (555) 123-4567

EXPERIENCE
Built React and TypeScript apps with Docker.

EDUCATION
B.S. Computer Science

SKILLS
React, TypeScript, Docker, Python`

const testJobText = `Looking for React and Kubernetes experience with Docker.`

func newMockConfig() *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			Provider:         "mock",
			Model:            "mock",
			Timeout:          30 * time.Second,
			MaxRetries:       1,
			Temperature:      0.2,
			UseSystemPrompts: true,
		},
	}
}

func newTestService(t *testing.T) (*Service, store.AnalysisStore) {
	t.Helper()
	st := store.NewMemoryStore()
	svc, err := NewService(newMockConfig(), st, testLogger)
	if err != nil {
		t.Fatalf("Failed to create analysis service: %v", err)
	}
	return svc, st
}

func TestAnalyzeATS(t *testing.T) {
	svc, st := newTestService(t)

	result, err := svc.Analyze(context.Background(), types.AnalyzeRequest{
		ResumeText: testResumeText,
		Mode:       types.ModeATS,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// 5 base + 4 section cap + 2 contact + (7-5) mock AI = 13, clamped
	if result.Score != 10 {
		t.Errorf("Expected score 10, got %d", result.Score)
	}
	if result.ScoreLevel != types.ScoreLevelExcellent {
		t.Errorf("Expected excellent level, got %s", result.ScoreLevel)
	}
	if result.Mode != types.ModeATS {
		t.Errorf("Expected ats mode, got %s", result.Mode)
	}
	if result.ID == "" || result.ResumeID == "" {
		t.Error("Expected generated IDs on result")
	}
	if result.JobDescriptionID != "" {
		t.Error("ATS analysis should not reference a job description")
	}
	// ATS results carry the resume's own extracted keywords, in
	// vocabulary order, with nothing to report as missing.
	expectedKeywords := []string{"React", "TypeScript", "Python", "Docker"}
	if len(result.MatchedKeywords) != len(expectedKeywords) {
		t.Fatalf("Expected matched keywords %v, got %v", expectedKeywords, result.MatchedKeywords)
	}
	for i, k := range expectedKeywords {
		if result.MatchedKeywords[i] != k {
			t.Errorf("MatchedKeywords[%d] = %s, expected %s", i, result.MatchedKeywords[i], k)
		}
	}
	if len(result.MissingKeywords) != 0 {
		t.Errorf("ATS analysis should not report missing keywords, got %v", result.MissingKeywords)
	}
	if result.Feedback == "" {
		t.Error("Expected non-empty feedback")
	}

	// Result must be retrievable from the store
	stored, ok := st.Get(result.ID)
	if !ok {
		t.Fatal("Expected result to be persisted")
	}
	if stored.Score != result.Score {
		t.Errorf("Stored score %d differs from returned %d", stored.Score, result.Score)
	}
}

func TestAnalyzeJobMatch(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Analyze(context.Background(), types.AnalyzeRequest{
		ResumeText:         testResumeText,
		Mode:               types.ModeJobMatch,
		JobDescriptionText: testJobText,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// Job keywords: React, Docker, Kubernetes. Resume has React and Docker.
	// 2/3*4 + 7*0.6 = 6.866... truncated to 6.
	if result.Score != 6 {
		t.Errorf("Expected score 6, got %d", result.Score)
	}
	if result.ScoreLevel != types.ScoreLevelFair {
		t.Errorf("Expected fair level, got %s", result.ScoreLevel)
	}

	expectedMatched := []string{"React", "Docker"}
	if len(result.MatchedKeywords) != len(expectedMatched) {
		t.Fatalf("Expected matched %v, got %v", expectedMatched, result.MatchedKeywords)
	}
	for i, k := range expectedMatched {
		if result.MatchedKeywords[i] != k {
			t.Errorf("Matched[%d] = %s, expected %s", i, result.MatchedKeywords[i], k)
		}
	}

	if len(result.MissingKeywords) != 1 || result.MissingKeywords[0] != "Kubernetes" {
		t.Errorf("Expected missing [Kubernetes], got %v", result.MissingKeywords)
	}
	if result.JobDescriptionID == "" {
		t.Error("Expected job description ID on job match result")
	}
}

func TestAnalyzeValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name         string
		request      types.AnalyzeRequest
		expectedCode string
	}{
		{
			name:         "missing resume text",
			request:      types.AnalyzeRequest{Mode: types.ModeATS},
			expectedCode: errors.ErrCodeMissingResumeText,
		},
		{
			name:         "whitespace resume text",
			request:      types.AnalyzeRequest{ResumeText: "   \n\t", Mode: types.ModeATS},
			expectedCode: errors.ErrCodeMissingResumeText,
		},
		{
			name:         "invalid mode",
			request:      types.AnalyzeRequest{ResumeText: "text", Mode: "resume_roast"},
			expectedCode: errors.ErrCodeInvalidAnalysisMode,
		},
		{
			name:         "job match without job description",
			request:      types.AnalyzeRequest{ResumeText: "text", Mode: types.ModeJobMatch},
			expectedCode: errors.ErrCodeMissingJobDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tt.request)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			appErr, ok := err.(*errors.AppError)
			if !ok {
				t.Fatalf("Expected AppError, got %T", err)
			}
			if appErr.Type != errors.ErrorTypeValidation {
				t.Errorf("Expected validation category, got %s", appErr.Type)
			}
			if appErr.Code != tt.expectedCode {
				t.Errorf("Expected code %s, got %s", tt.expectedCode, appErr.Code)
			}
		})
	}
}

func TestAnalyzeAIFailurePropagates(t *testing.T) {
	failing := ai.NewMockProvider(&config.OperationAIConfig{Provider: "mock"}, testLogger)
	failing.Err = errors.NewAIError(errors.ErrCodeAIServiceFailed, "assessment backend down", nil)

	svc := &Service{
		store:  store.NewMemoryStore(),
		atsAI:  &ai.Service{Provider: failing},
		logger: testLogger,
	}

	_, err := svc.Analyze(context.Background(), types.AnalyzeRequest{
		ResumeText: testResumeText,
		Mode:       types.ModeATS,
	})
	if err == nil {
		t.Fatal("Expected AI failure to propagate")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Type != errors.ErrorTypeAI {
		t.Errorf("Expected ai error category, got %s", appErr.Type)
	}

	if svc.store.Len() != 0 {
		t.Error("Failed analysis must not be persisted")
	}
}

func TestGetAnalysis(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Analyze(context.Background(), types.AnalyzeRequest{
		ResumeText: testResumeText,
		Mode:       types.ModeATS,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	got, err := svc.GetAnalysis(result.ID)
	if err != nil {
		t.Fatalf("GetAnalysis failed: %v", err)
	}
	if got.ID != result.ID {
		t.Errorf("Expected ID %s, got %s", result.ID, got.ID)
	}

	_, err = svc.GetAnalysis("no-such-analysis")
	if err == nil {
		t.Fatal("Expected not-found error")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Type != errors.ErrorTypeNotFound {
		t.Errorf("Expected not_found category, got %s", appErr.Type)
	}
	if appErr.Code != errors.ErrCodeAnalysisNotFound {
		t.Errorf("Expected ANALYSIS_NOT_FOUND code, got %s", appErr.Code)
	}
}

func TestNewResumeFromText(t *testing.T) {
	resume := NewResumeFromText(testResumeText, "resume.pdf", 2048)

	if resume.ID == "" {
		t.Error("Expected generated resume ID")
	}
	if resume.FileName != "resume.pdf" || resume.FileSize != 2048 {
		t.Errorf("Expected file metadata to be preserved, got %s/%d", resume.FileName, resume.FileSize)
	}
	if resume.Contact.Email != "john.doe@example.com" {
		t.Errorf("Expected extracted email, got %q", resume.Contact.Email)
	}
	if len(resume.Sections) != 6 {
		t.Errorf("Expected 6 sections, got %d", len(resume.Sections))
	}
	if len(resume.Keywords) == 0 {
		t.Error("Expected extracted keywords")
	}
	if resume.CreatedAt.IsZero() {
		t.Error("Expected creation timestamp")
	}
}
