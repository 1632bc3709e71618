package extract

import (
	"regexp"
	"strings"

	"resumescan/internal/types"
)

// Contact field patterns. First match wins; no match leaves the field empty.
var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
)

// sectionPatterns maps each fixed section name to its heading synonyms.
// Longer synonyms come first so the most specific heading wins.
var sectionPatterns = []struct {
	name    types.SectionName
	pattern *regexp.Regexp
}{
	{types.SectionExperience, regexp.MustCompile(`(?i)(PROFESSIONAL\s+EXPERIENCE|WORK\s+EXPERIENCE|EXPERIENCE)`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)(EDUCATION|ACADEMIC\s+BACKGROUND)`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)(TECHNICAL\s+SKILLS|SKILLS|COMPETENCIES)`)},
	{types.SectionSummary, regexp.MustCompile(`(?i)(PROFESSIONAL\s+SUMMARY|SUMMARY|PROFILE)`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)(CERTIFICATIONS|CERTIFICATES)`)},
	{types.SectionProjects, regexp.MustCompile(`(?i)(PROJECTS|PORTFOLIO)`)},
}

// defaultSectionQuality is the placeholder quality score assigned to every
// detected section until per-section assessment exists.
const defaultSectionQuality = 7

// Contact extracts contact fields from resume text
func Contact(text string) types.ContactInfo {
	var info types.ContactInfo
	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		info.Phone = strings.TrimSpace(m)
	}
	if m := linkedinPattern.FindString(text); m != "" {
		info.LinkedIn = m
	}
	return info
}

// Sections detects the six fixed resume sections. Every section name
// appears exactly once in the result, in the fixed vocabulary order, with
// its presence flag set. When a heading can be located at the start of a
// line, the section content runs from that heading to the next detected
// heading.
func Sections(text string) []types.ResumeSection {
	type headingLoc struct {
		name  types.SectionName
		start int
		body  int
	}
	var locs []headingLoc

	sections := make([]types.ResumeSection, 0, len(sectionPatterns))
	for _, sp := range sectionPatterns {
		section := types.ResumeSection{Name: sp.name}
		if loc := sp.pattern.FindStringIndex(text); loc != nil {
			section.Present = true
			section.QualityScore = defaultSectionQuality
			if isLineStart(text, loc[0]) {
				locs = append(locs, headingLoc{name: sp.name, start: loc[0], body: loc[1]})
			}
		}
		sections = append(sections, section)
	}

	// Fill content between consecutive headings, in document order.
	for i := range locs {
		end := len(text)
		for _, other := range locs {
			if other.start > locs[i].start && other.start < end {
				end = other.start
			}
		}
		content := strings.TrimSpace(text[locs[i].body:end])
		for j := range sections {
			if sections[j].Name == locs[i].name {
				sections[j].Content = content
				break
			}
		}
	}

	return sections
}

// isLineStart reports whether pos begins a line, ignoring leading spaces
func isLineStart(text string, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch text[i] {
		case '\n':
			return true
		case ' ', '\t':
			continue
		default:
			return false
		}
	}
	return true
}
