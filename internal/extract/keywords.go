package extract

import "strings"

// technicalVocabulary is the fixed list of technical terms scanned for in
// resume and job-description text. Order is preserved in extraction output.
var technicalVocabulary = []string{
	"React", "TypeScript", "JavaScript", "Node.js", "Python", "FastAPI",
	"PostgreSQL", "MongoDB", "AWS", "Docker", "Kubernetes", "Git",
	"HTML5", "CSS3", "Tailwind CSS", "Express.js", "Redis", "Webpack",
	"Jest", "CI/CD", "Vue.js", "microservices", "full-stack", "Agile",
	"Scrum", "GraphQL", "REST API", "DevOps", "cloud computing",
}

// Keywords scans text for known technical terms, case-insensitively,
// returning matches in vocabulary order with canonical casing.
func Keywords(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, 8)
	for _, term := range technicalVocabulary {
		if strings.Contains(lower, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}

// MatchKeywords compares resume keywords against target keywords.
// Matching is case-insensitive; both result lists preserve target order.
// An empty target yields empty matched and missing; an empty resume list
// yields missing equal to the whole target list.
func MatchKeywords(resumeKeywords, targetKeywords []string) (matched, missing []string) {
	have := make(map[string]struct{}, len(resumeKeywords))
	for _, k := range resumeKeywords {
		have[strings.ToLower(k)] = struct{}{}
	}

	matched = []string{}
	missing = []string{}
	for _, k := range targetKeywords {
		if _, ok := have[strings.ToLower(k)]; ok {
			matched = append(matched, k)
		} else {
			missing = append(missing, k)
		}
	}
	return matched, missing
}
