package store

import (
	"fmt"
	"sync"
	"testing"

	"resumescan/internal/types"
)

func result(id, resumeID string, score int) types.AnalysisResult {
	return types.AnalysisResult{
		ID:       id,
		ResumeID: resumeID,
		Mode:     types.ModeATS,
		Score:    score,
	}
}

func TestSaveAndGet(t *testing.T) {
	st := NewMemoryStore()

	id := st.Save(result("a1", "r1", 8))
	if id != "a1" {
		t.Errorf("Save returned %q, expected a1", id)
	}

	got, ok := st.Get("a1")
	if !ok {
		t.Fatal("Expected result to be found")
	}
	if got.Score != 8 {
		t.Errorf("Expected score 8, got %d", got.Score)
	}

	if _, ok := st.Get("missing"); ok {
		t.Error("Expected missing ID to report not found")
	}
}

func TestSaveOverwritesSameID(t *testing.T) {
	st := NewMemoryStore()

	st.Save(result("a1", "r1", 4))
	st.Save(result("a1", "r1", 9))

	got, _ := st.Get("a1")
	if got.Score != 9 {
		t.Errorf("Expected last write to win, got score %d", got.Score)
	}
	if st.Len() != 1 {
		t.Errorf("Expected single entry after overwrite, got %d", st.Len())
	}

	// Overwrite must not duplicate the per-resume index entry
	if n := len(st.GetByResume("r1")); n != 1 {
		t.Errorf("Expected 1 result for resume, got %d", n)
	}
}

func TestSaveOverwriteMovesResumeIndex(t *testing.T) {
	st := NewMemoryStore()

	st.Save(result("a1", "r1", 4))
	st.Save(result("a1", "r2", 9))

	// The old resume must no longer reference the moved result
	if n := len(st.GetByResume("r1")); n != 0 {
		t.Errorf("Expected no results for old resume, got %d", n)
	}

	results := st.GetByResume("r2")
	if len(results) != 1 {
		t.Fatalf("Expected 1 result for new resume, got %d", len(results))
	}
	if results[0].ResumeID != "r2" || results[0].Score != 9 {
		t.Errorf("Unexpected result under new resume: %+v", results[0])
	}
	if st.Len() != 1 {
		t.Errorf("Expected single entry after overwrite, got %d", st.Len())
	}
}

func TestGetByResumeOrder(t *testing.T) {
	st := NewMemoryStore()

	st.Save(result("a1", "r1", 3))
	st.Save(result("a2", "r1", 5))
	st.Save(result("other", "r2", 7))
	st.Save(result("a3", "r1", 9))

	results := st.GetByResume("r1")
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, expected := range []string{"a1", "a2", "a3"} {
		if results[i].ID != expected {
			t.Errorf("results[%d].ID = %s, expected %s", i, results[i].ID, expected)
		}
	}

	if len(st.GetByResume("unknown")) != 0 {
		t.Error("Expected no results for unknown resume")
	}
}

func TestConcurrentAccess(t *testing.T) {
	st := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("a%d", n)
			st.Save(result(id, "r1", n%10+1))
			st.Get(id)
			st.GetByResume("r1")
		}(i)
	}
	wg.Wait()

	if st.Len() != 50 {
		t.Errorf("Expected 50 entries, got %d", st.Len())
	}
	if len(st.GetByResume("r1")) != 50 {
		t.Errorf("Expected 50 results for resume, got %d", len(st.GetByResume("r1")))
	}
}
