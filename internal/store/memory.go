package store

import (
	"sync"

	"resumescan/internal/types"
)

// MemoryStore is an in-memory AnalysisStore. Results are never evicted.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[string]types.AnalysisResult
	byResume map[string][]string // resume ID -> analysis IDs in save order
}

// NewMemoryStore creates an empty in-memory analysis store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		analyses: make(map[string]types.AnalysisResult),
		byResume: make(map[string][]string),
	}
}

// Save persists a result, overwriting any entry with the same ID
func (s *MemoryStore) Save(result types.AnalysisResult) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, exists := s.analyses[result.ID]
	if !exists {
		s.byResume[result.ResumeID] = append(s.byResume[result.ResumeID], result.ID)
	} else if prev.ResumeID != result.ResumeID {
		// Overwrite moved the result to another resume: drop the stale
		// index entry and append under the new resume.
		s.byResume[prev.ResumeID] = removeID(s.byResume[prev.ResumeID], result.ID)
		s.byResume[result.ResumeID] = append(s.byResume[result.ResumeID], result.ID)
	}
	s.analyses[result.ID] = result
	return result.ID
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Get returns the result for the given analysis ID
func (s *MemoryStore) Get(id string) (types.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.analyses[id]
	return result, ok
}

// GetByResume returns all results for a resume ID in save order
func (s *MemoryStore) GetByResume(resumeID string) []types.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byResume[resumeID]
	results := make([]types.AnalysisResult, 0, len(ids))
	for _, id := range ids {
		if result, ok := s.analyses[id]; ok {
			results = append(results, result)
		}
	}
	return results
}

// Len returns the number of stored results
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.analyses)
}
