package extract

import (
	"strings"
	"testing"

	"resumescan/internal/types"
)

const sampleResume = `John Doe
john.doe@example.com | (555) 123-4567 | linkedin.com/in/john-doe

PROFESSIONAL SUMMARY
Full-stack engineer with six years of experience.

WORK EXPERIENCE
Senior Engineer at Example Corp.

EDUCATION
B.S. Computer Science

TECHNICAL SKILLS
Go, Python, Docker`

func TestContact(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.ContactInfo
	}{
		{
			name: "all fields present",
			text: sampleResume,
			expected: types.ContactInfo{
				Email:    "john.doe@example.com",
				Phone:    "(555) 123-4567",
				LinkedIn: "linkedin.com/in/john-doe",
			},
		},
		{
			name: "international phone",
			text: "Call me at +1-555-123-4567",
			expected: types.ContactInfo{
				Phone: "+1-555-123-4567",
			},
		},
		{
			name: "dotted phone",
			text: "555.123.4567",
			expected: types.ContactInfo{
				Phone: "555.123.4567",
			},
		},
		{
			name:     "no contact info",
			text:     "A resume with no reachable details at all.",
			expected: types.ContactInfo{},
		},
		{
			name:     "empty text",
			text:     "",
			expected: types.ContactInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contact(tt.text)
			if got.Email != tt.expected.Email {
				t.Errorf("Email = %q, expected %q", got.Email, tt.expected.Email)
			}
			if got.Phone != tt.expected.Phone {
				t.Errorf("Phone = %q, expected %q", got.Phone, tt.expected.Phone)
			}
			if got.LinkedIn != tt.expected.LinkedIn {
				t.Errorf("LinkedIn = %q, expected %q", got.LinkedIn, tt.expected.LinkedIn)
			}
		})
	}
}

func TestContactFirstMatchWins(t *testing.T) {
	text := "first@example.com and second@example.com"
	got := Contact(text)
	if got.Email != "first@example.com" {
		t.Errorf("Expected first email to win, got %q", got.Email)
	}
}

func TestSections(t *testing.T) {
	sections := Sections(sampleResume)

	if len(sections) != 6 {
		t.Fatalf("Expected 6 sections, got %d", len(sections))
	}

	// Fixed vocabulary order, every name exactly once
	expectedOrder := []types.SectionName{
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
		types.SectionSummary,
		types.SectionCertifications,
		types.SectionProjects,
	}
	for i, name := range expectedOrder {
		if sections[i].Name != name {
			t.Errorf("Section %d = %s, expected %s", i, sections[i].Name, name)
		}
	}

	presence := map[types.SectionName]bool{}
	for _, s := range sections {
		presence[s.Name] = s.Present
	}

	for _, name := range []types.SectionName{
		types.SectionExperience, types.SectionEducation,
		types.SectionSkills, types.SectionSummary,
	} {
		if !presence[name] {
			t.Errorf("Expected section %s to be present", name)
		}
	}
	for _, name := range []types.SectionName{types.SectionCertifications, types.SectionProjects} {
		if presence[name] {
			t.Errorf("Expected section %s to be absent", name)
		}
	}
}

func TestSectionsContent(t *testing.T) {
	sections := Sections(sampleResume)

	var education types.ResumeSection
	for _, s := range sections {
		if s.Name == types.SectionEducation {
			education = s
		}
	}

	if !education.Present {
		t.Fatal("Expected education section to be present")
	}
	if !strings.Contains(education.Content, "B.S. Computer Science") {
		t.Errorf("Expected education content to contain degree, got %q", education.Content)
	}
	if strings.Contains(education.Content, "TECHNICAL SKILLS") {
		t.Errorf("Expected education content to stop at next heading, got %q", education.Content)
	}
}

func TestSectionsHeadingSynonyms(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		section types.SectionName
	}{
		{"professional experience", "PROFESSIONAL EXPERIENCE\nwork", types.SectionExperience},
		{"lowercase experience", "experience\nwork", types.SectionExperience},
		{"academic background", "ACADEMIC BACKGROUND\nschool", types.SectionEducation},
		{"competencies", "Competencies\nGo", types.SectionSkills},
		{"profile", "Profile\nEngineer", types.SectionSummary},
		{"certificates", "Certificates\nAWS SAA", types.SectionCertifications},
		{"portfolio", "Portfolio\nthings I built", types.SectionProjects},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Sections(tt.text)
			for _, s := range sections {
				if s.Name == tt.section {
					if !s.Present {
						t.Errorf("Expected %s to be detected in %q", tt.section, tt.text)
					}
					return
				}
			}
			t.Fatalf("Section %s missing from result", tt.section)
		})
	}
}

func TestSectionsEmptyText(t *testing.T) {
	sections := Sections("")
	if len(sections) != 6 {
		t.Fatalf("Expected 6 sections, got %d", len(sections))
	}
	for _, s := range sections {
		if s.Present {
			t.Errorf("Expected section %s to be absent in empty text", s.Name)
		}
	}
}
