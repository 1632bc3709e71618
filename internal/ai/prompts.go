package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	AssessATS      string
	AssessJobMatch string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	AssessATS      string
	AssessJobMatch string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	AssessATS: `You are an expert resume reviewer and ATS (Applicant Tracking System) analyst with a strict commitment to honest, evidence-based assessment. Your core principles are:

- Judge only what is actually present in the resume text
- Never invent strengths or weaknesses that are not supported by the content
- Score on a 1-10 scale where 5 is an average resume
- Keep every observation specific and actionable

Your expertise includes:
- ATS parsing behavior and formatting pitfalls
- Resume structure and section completeness
- Keyword optimization for automated screening`,

	AssessJobMatch: `You are an expert technical recruiter assessing how well a candidate's resume fits a specific job description. Your core principles are:

- Compare only the evidence in the resume against the stated requirements
- Never assume skills or experience that are not written down
- Score on a 1-10 scale where 5 means a partial fit
- Identify concrete gaps the candidate could address

Your expertise includes:
- Requirement-to-experience mapping
- Skills gap analysis
- Hiring-signal evaluation across industries`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	AssessATS: `Please assess the following resume for ATS readiness and overall quality.

**Tasks:**

1. **Score** the resume from 1 to 10 (5 is average) for how well it would
   perform in automated applicant-tracking screening and human review.

2. **Strengths**: list the specific aspects of the resume that work well.

3. **Weaknesses**: list the specific aspects that hurt the resume.

4. **Recommendations**: list concrete, actionable improvements.

**Resume:**
-----
%s
-----`,

	AssessJobMatch: `Please assess how well the following resume matches the provided job description.

**Tasks:**

1. **Score** the fit from 1 to 10 (5 is a partial fit), based only on
   evidence present in the resume.

2. **Strengths**: list where the resume aligns with the job requirements.

3. **Weaknesses**: list requirements the resume does not demonstrate.

4. **Recommendations**: list concrete changes that would improve the match.

**Resume:**
-----
%s
-----

**Job Description:**
-----
%s
-----`,
}

// PromptConfig holds configuration for customizable prompts
type PromptConfig struct {
	SystemPrompts SystemPrompts `json:"systemPrompts"`
	UserPrompts   UserPrompts   `json:"userPrompts"`
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompts: DefaultSystemPrompts,
		UserPrompts:   DefaultUserPrompts,
	}
}
