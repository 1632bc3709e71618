package analysis

import (
	"fmt"
	"strings"

	"resumescan/internal/types"
)

// requiredSections are the sections counted by the ATS formula
var requiredSections = []types.SectionName{
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
}

// ScoreATS computes the ATS score for a resume combined with the AI
// judgment. The additive structure is part of the output contract: the raw
// total can exceed 10 and an AI score below 5 is a net subtraction; the
// result is clamped to [1,10].
func ScoreATS(resume *types.Resume, judgment types.AIJudgment) int {
	base := 5

	present := 0
	for _, name := range requiredSections {
		if s, ok := resume.Section(name); ok && s.Present {
			present++
		}
	}
	sectionScore := min(2*present, 4)

	contactScore := 0
	if resume.Contact.Email != "" {
		contactScore++
	}
	if resume.Contact.Phone != "" {
		contactScore++
	}

	total := base + sectionScore + contactScore + (judgment.Score - 5)
	return clampScore(total)
}

// ScoreJobMatch computes the job-match score from the keyword match ratio
// and the AI judgment. Integer truncation of the weighted sum is part of
// the output contract.
func ScoreJobMatch(matched []string, jobKeywords []string, judgment types.AIJudgment) int {
	ratio := float64(len(matched)) / float64(max(len(jobKeywords), 1))
	total := int(ratio*4 + float64(judgment.Score)*0.6)
	return clampScore(total)
}

// ScoreLevelFor maps a clamped score to its discrete level
func ScoreLevelFor(score int) types.ScoreLevel {
	switch {
	case score >= 9:
		return types.ScoreLevelExcellent
	case score >= 7:
		return types.ScoreLevelGood
	case score >= 5:
		return types.ScoreLevelFair
	default:
		return types.ScoreLevelPoor
	}
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

// BuildFeedback renders the human-readable report for an analysis. The
// text is an output artifact only and is never parsed back.
func BuildFeedback(mode types.AnalysisMode, score int, judgment types.AIJudgment, missing []string) string {
	var b strings.Builder

	level := ScoreLevelFor(score)
	switch mode {
	case types.ModeJobMatch:
		b.WriteString(fmt.Sprintf("Job match score: %d/10 (%s)\n", score, level))
	default:
		b.WriteString(fmt.Sprintf("ATS readiness score: %d/10 (%s)\n", score, level))
	}

	if len(judgment.Strengths) > 0 {
		b.WriteString("\nStrengths:\n")
		for _, s := range judgment.Strengths {
			b.WriteString(fmt.Sprintf("- %s\n", s))
		}
	}

	if len(judgment.Weaknesses) > 0 {
		b.WriteString("\nWeaknesses:\n")
		for _, w := range judgment.Weaknesses {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	if mode == types.ModeJobMatch && len(missing) > 0 {
		b.WriteString("\nMissing keywords:\n")
		for _, k := range missing {
			b.WriteString(fmt.Sprintf("- %s\n", k))
		}
	}

	if len(judgment.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, r := range judgment.Recommendations {
			b.WriteString(fmt.Sprintf("- %s\n", r))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
