package extract

import (
	"reflect"
	"testing"
)

func TestKeywords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "canonical casing preserved",
			text:     "Experienced with react, TYPESCRIPT and docker in production.",
			expected: []string{"React", "TypeScript", "Docker"},
		},
		{
			name:     "vocabulary order not text order",
			text:     "Docker first, then Python, finally React.",
			expected: []string{"React", "Python", "Docker"},
		},
		{
			name:     "no matches",
			text:     "Managed a bakery and trained new staff.",
			expected: []string{},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keywords(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Keywords() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		name            string
		resumeKeywords  []string
		targetKeywords  []string
		expectedMatched []string
		expectedMissing []string
	}{
		{
			name:            "partial overlap preserves target order",
			resumeKeywords:  []string{"Docker", "React"},
			targetKeywords:  []string{"React", "Python", "Docker", "AWS"},
			expectedMatched: []string{"React", "Docker"},
			expectedMissing: []string{"Python", "AWS"},
		},
		{
			name:            "case-insensitive matching",
			resumeKeywords:  []string{"react", "PYTHON"},
			targetKeywords:  []string{"React", "Python"},
			expectedMatched: []string{"React", "Python"},
			expectedMissing: []string{},
		},
		{
			name:            "empty target yields empty results",
			resumeKeywords:  []string{"React"},
			targetKeywords:  []string{},
			expectedMatched: []string{},
			expectedMissing: []string{},
		},
		{
			name:            "empty resume misses everything",
			resumeKeywords:  []string{},
			targetKeywords:  []string{"React", "Python"},
			expectedMatched: []string{},
			expectedMissing: []string{"React", "Python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, missing := MatchKeywords(tt.resumeKeywords, tt.targetKeywords)
			if !reflect.DeepEqual(matched, tt.expectedMatched) {
				t.Errorf("matched = %v, expected %v", matched, tt.expectedMatched)
			}
			if !reflect.DeepEqual(missing, tt.expectedMissing) {
				t.Errorf("missing = %v, expected %v", missing, tt.expectedMissing)
			}
		})
	}
}
