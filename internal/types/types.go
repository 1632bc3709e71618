package types

import "time"

// AnalysisMode selects which scoring formula an analysis uses
type AnalysisMode string

const (
	ModeATS      AnalysisMode = "ats"
	ModeJobMatch AnalysisMode = "job_match"
)

// Valid reports whether the mode is one of the supported analysis modes
func (m AnalysisMode) Valid() bool {
	return m == ModeATS || m == ModeJobMatch
}

// ScoreLevel is the discrete label derived from a 1-10 score
type ScoreLevel string

const (
	ScoreLevelExcellent ScoreLevel = "excellent"
	ScoreLevelGood      ScoreLevel = "good"
	ScoreLevelFair      ScoreLevel = "fair"
	ScoreLevelPoor      ScoreLevel = "poor"
)

// ContactInfo holds contact fields extracted from resume text.
// Each field is independently optional; absence is empty, never an error.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// SectionName is one of the fixed resume section names
type SectionName string

const (
	SectionExperience     SectionName = "experience"
	SectionEducation      SectionName = "education"
	SectionSkills         SectionName = "skills"
	SectionSummary        SectionName = "summary"
	SectionCertifications SectionName = "certifications"
	SectionProjects       SectionName = "projects"
)

// ResumeSection records the detection result for one named section.
// Names are unique within a resume's section sequence.
type ResumeSection struct {
	Name         SectionName `json:"name"`
	Present      bool        `json:"present"`
	Content      string      `json:"content,omitempty"`
	QualityScore int         `json:"quality_score"`
}

// Resume is an uploaded or submitted resume after extraction.
// Immutable once created.
type Resume struct {
	ID        string          `json:"id"`
	RawText   string          `json:"raw_text"`
	Contact   ContactInfo     `json:"contact"`
	Sections  []ResumeSection `json:"sections"`
	Keywords  []string        `json:"keywords"`
	FileName  string          `json:"file_name,omitempty"`
	FileSize  int64           `json:"file_size,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Section returns the named section and whether it was detected
func (r *Resume) Section(name SectionName) (ResumeSection, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return ResumeSection{}, false
}

// JobDescription is a job posting a resume is matched against
type JobDescription struct {
	ID              string   `json:"id"`
	RawText         string   `json:"raw_text"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
	Keywords        []string `json:"keywords"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Industry        string   `json:"industry,omitempty"`
}

// AIJudgment is the structured verdict returned by the AI collaborator
type AIJudgment struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisResult is a completed analysis. Created once by the scoring
// engine, saved once, never updated in place.
type AnalysisResult struct {
	ID               string       `json:"id"`
	ResumeID         string       `json:"resume_id"`
	Mode             AnalysisMode `json:"mode"`
	Score            int          `json:"score"`
	ScoreLevel       ScoreLevel   `json:"score_level"`
	Feedback         string       `json:"feedback"`
	Strengths        []string     `json:"strengths"`
	Weaknesses       []string     `json:"weaknesses"`
	Recommendations  []string     `json:"recommendations"`
	MatchedKeywords  []string     `json:"matched_keywords"`
	MissingKeywords  []string     `json:"missing_keywords"`
	JobDescriptionID string       `json:"job_description_id,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// AnalyzeRequest is the input for an analysis operation. Resume text is
// supplied inline; job description text is required in job_match mode.
type AnalyzeRequest struct {
	ResumeText         string       `json:"resume_text"`
	Mode               AnalysisMode `json:"mode"`
	JobDescriptionText string       `json:"job_description,omitempty"`
}

// UploadResult is returned after a successful resume upload
type UploadResult struct {
	Success  bool   `json:"success"`
	ResumeID string `json:"resume_id"`
	FileName string `json:"file_name"`
	Preview  string `json:"preview"`
}

// ExtractionResult is the outcome of parsing and field extraction alone,
// without scoring. Used by the extract CLI command.
type ExtractionResult struct {
	Contact  ContactInfo     `json:"contact"`
	Sections []ResumeSection `json:"sections"`
	Keywords []string        `json:"keywords"`
	Chars    int             `json:"chars"`
}
