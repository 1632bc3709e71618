package analysis

import (
	"context"
	"strings"
	"time"

	"resumescan/internal/ai"
	"resumescan/internal/config"
	"resumescan/internal/errors"
	"resumescan/internal/extract"
	"resumescan/internal/store"
	"resumescan/internal/types"

	"github.com/google/uuid"
)

// AnalysisService is the capability contract for running and retrieving
// resume analyses. Backends (mock vs real AI) are selected by
// configuration, not by separate implementations of this interface.
type AnalysisService interface {
	Analyze(ctx context.Context, req types.AnalyzeRequest) (types.AnalysisResult, error)
	GetAnalysis(id string) (types.AnalysisResult, error)
	GetAnalysesByResume(resumeID string) []types.AnalysisResult
}

// Service orchestrates the analysis pipeline: extraction, AI assessment,
// scoring, and persistence. One AI service per analysis mode.
type Service struct {
	store   store.AnalysisStore
	atsAI   *ai.Service
	matchAI *ai.Service
	logger  *errors.Logger
}

var _ AnalysisService = (*Service)(nil)

// NewService wires a fully configured analysis service. This is the
// dependency-injection entry point: everything the pipeline needs comes in
// through the configuration and the explicit collaborators.
func NewService(cfg *config.Config, st store.AnalysisStore, logger *errors.Logger) (*Service, error) {
	atsConfig := cfg.GetATSConfig()
	atsAI, err := ai.NewService(&atsConfig, "ats", logger)
	if err != nil {
		return nil, err
	}

	matchConfig := cfg.GetJobMatchConfig()
	matchAI, err := ai.NewService(&matchConfig, "job_match", logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		store:   st,
		atsAI:   atsAI,
		matchAI: matchAI,
		logger:  logger,
	}, nil
}

// NewResumeFromText builds an immutable Resume from extracted plain text
func NewResumeFromText(text, fileName string, fileSize int64) types.Resume {
	return types.Resume{
		ID:        uuid.NewString(),
		RawText:   text,
		Contact:   extract.Contact(text),
		Sections:  extract.Sections(text),
		Keywords:  extract.Keywords(text),
		FileName:  fileName,
		FileSize:  fileSize,
		CreatedAt: time.Now().UTC(),
	}
}

// Analyze runs the full pipeline for one request and persists the result
func (s *Service) Analyze(ctx context.Context, req types.AnalyzeRequest) (types.AnalysisResult, error) {
	if err := validateRequest(req); err != nil {
		return types.AnalysisResult{}, err
	}

	resume := NewResumeFromText(req.ResumeText, "", 0)

	aiService := s.atsAI
	if req.Mode == types.ModeJobMatch {
		aiService = s.matchAI
	}

	judgment, tokenUsage, err := aiService.Provider.AssessResume(ctx, ai.AssessInput{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescriptionText,
		Mode:           req.Mode,
	})
	if err != nil {
		// AI failure is never papered over with a default judgment
		return types.AnalysisResult{}, err
	}
	if tokenUsage != nil {
		s.logger.Debug("AI assessment token usage",
			"mode", string(req.Mode),
			"input_tokens", tokenUsage.InputTokens,
			"output_tokens", tokenUsage.OutputTokens)
	}

	result := types.AnalysisResult{
		ID:              uuid.NewString(),
		ResumeID:        resume.ID,
		Mode:            req.Mode,
		Strengths:       judgment.Strengths,
		Weaknesses:      judgment.Weaknesses,
		Recommendations: judgment.Recommendations,
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
		CreatedAt:       time.Now().UTC(),
	}

	switch req.Mode {
	case types.ModeJobMatch:
		job := types.JobDescription{
			ID:       uuid.NewString(),
			RawText:  req.JobDescriptionText,
			Keywords: extract.Keywords(req.JobDescriptionText),
		}
		matched, missing := extract.MatchKeywords(resume.Keywords, job.Keywords)
		result.Score = ScoreJobMatch(matched, job.Keywords, judgment)
		result.MatchedKeywords = matched
		result.MissingKeywords = missing
		result.JobDescriptionID = job.ID
	default:
		result.Score = ScoreATS(&resume, judgment)
		result.MatchedKeywords = resume.Keywords
	}

	result.ScoreLevel = ScoreLevelFor(result.Score)
	result.Feedback = BuildFeedback(req.Mode, result.Score, judgment, result.MissingKeywords)

	s.store.Save(result)
	s.logger.Info("Analysis completed",
		"analysis_id", result.ID,
		"resume_id", result.ResumeID,
		"mode", string(result.Mode),
		"score", result.Score,
		"score_level", string(result.ScoreLevel))

	return result, nil
}

// GetAnalysis returns a stored analysis or a not-found error
func (s *Service) GetAnalysis(id string) (types.AnalysisResult, error) {
	result, ok := s.store.Get(id)
	if !ok {
		return types.AnalysisResult{}, errors.NewNotFoundError(errors.ErrCodeAnalysisNotFound,
			"Analysis not found: "+id, nil)
	}
	return result, nil
}

// GetAnalysesByResume returns all analyses for a resume in save order
func (s *Service) GetAnalysesByResume(resumeID string) []types.AnalysisResult {
	return s.store.GetByResume(resumeID)
}

func validateRequest(req types.AnalyzeRequest) error {
	if strings.TrimSpace(req.ResumeText) == "" {
		return errors.NewValidationError(errors.ErrCodeMissingResumeText,
			"Resume text is required", nil)
	}
	if !req.Mode.Valid() {
		return errors.NewValidationError(errors.ErrCodeInvalidAnalysisMode,
			"Analysis mode must be 'ats' or 'job_match'", nil)
	}
	if req.Mode == types.ModeJobMatch && strings.TrimSpace(req.JobDescriptionText) == "" {
		return errors.NewValidationError(errors.ErrCodeMissingJobDescription,
			"Job description text is required for job_match analysis", nil)
	}
	return nil
}
