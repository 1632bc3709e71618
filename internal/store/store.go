package store

import "resumescan/internal/types"

// AnalysisStore is the persistence contract for completed analyses.
// Implementations must serialize concurrent writes to the same ID
// (last-writer-wins) and allow concurrent reads.
type AnalysisStore interface {
	// Save persists a result, overwriting any entry with the same ID,
	// and returns the stored ID.
	Save(result types.AnalysisResult) string

	// Get returns the result for the given analysis ID
	Get(id string) (types.AnalysisResult, bool)

	// GetByResume returns all results for a resume ID in save order
	GetByResume(resumeID string) []types.AnalysisResult

	// Len returns the number of stored results
	Len() int
}
