package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"resumescan/internal/analysis"
	"resumescan/internal/config"
	"resumescan/internal/errors"
	"resumescan/internal/observability"
	"resumescan/internal/store"
	"resumescan/internal/types"
)

var testLogger = errors.NewLogger(slog.LevelError)

func newTestConfig() *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			Provider:         "mock",
			Model:            "mock",
			Timeout:          30 * time.Second,
			MaxRetries:       1,
			Temperature:      0.2,
			UseSystemPrompts: true,
		},
		App: config.AppConfig{
			MaxFileSize:   5 * 1024 * 1024,
			PreviewLength: 500,
		},
	}
}

func newTestServer(t *testing.T) (*Server, *observability.ObservabilityManager) {
	t.Helper()

	cfg := newTestConfig()
	st := store.NewMemoryStore()
	svc, err := analysis.NewService(cfg, st, testLogger)
	if err != nil {
		t.Fatalf("Failed to create analysis service: %v", err)
	}

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, cfg)
	if err != nil {
		t.Fatalf("Failed to create observability manager: %v", err)
	}

	s := &Server{
		Host:           "localhost",
		Port:           "0",
		Version:        "test",
		AppConfig:      cfg,
		Analysis:       svc,
		Store:          st,
		APIKeys:        map[string]bool{},
		MaxRequestSize: 1024 * 1024,
		MaxUploadSize:  cfg.App.MaxFileSize,
		PreviewLength:  cfg.App.PreviewLength,
		StartTime:      time.Now(),
		Logger:         testLogger,
	}
	return s, om
}

// buildDocxUpload creates a multipart request body carrying a minimal DOCX
func buildDocxUpload(t *testing.T, filename, text string) (*bytes.Buffer, string) {
	t.Helper()

	var doc bytes.Buffer
	zw := zip.NewWriter(&doc)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("Failed to create document.xml: %v", err)
	}
	if _, err := w.Write([]byte("<w:document><w:body><w:p><w:r><w:t>" + text + "</w:t></w:r></w:p></w:body></w:document>")); err != nil {
		t.Fatalf("Failed to write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}

	return buildFileUpload(t, filename, doc.Bytes())
}

// buildFileUpload wraps raw bytes in a multipart form under the file field
func buildFileUpload(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createUploadHandler(om)

	body, contentType := buildDocxUpload(t, "resume.docx", "John Doe resume content")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result types.UploadResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !result.Success {
		t.Error("Expected success flag")
	}
	if result.ResumeID == "" {
		t.Error("Expected resume ID")
	}
	if result.FileName != "resume.docx" {
		t.Errorf("Expected file name resume.docx, got %s", result.FileName)
	}
	if !strings.Contains(result.Preview, "John Doe") {
		t.Errorf("Expected preview to contain resume text, got %q", result.Preview)
	}
}

func TestUploadHandlerPreviewTruncation(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createUploadHandler(om)

	long := strings.Repeat("word ", 200) // 1000 chars of text
	body, contentType := buildDocxUpload(t, "resume.docx", long)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result types.UploadResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !strings.HasSuffix(result.Preview, "...") {
		t.Errorf("Expected truncated preview with ellipsis, got tail %q", result.Preview[len(result.Preview)-10:])
	}
	if len(result.Preview) != 503 {
		t.Errorf("Expected 500-char preview plus ellipsis, got %d chars", len(result.Preview))
	}
}

func TestUploadHandlerPreviewMultibyte(t *testing.T) {
	s, om := newTestServer(t)
	s.PreviewLength = 10
	handler := s.createUploadHandler(om)

	body, contentType := buildDocxUpload(t, "resume.docx", strings.Repeat("é", 20))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result types.UploadResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// Truncation must count characters, not bytes, and never split a
	// multi-byte sequence.
	if !utf8.ValidString(result.Preview) {
		t.Errorf("Preview is not valid UTF-8: %q", result.Preview)
	}
	expected := strings.Repeat("é", 10) + "..."
	if result.Preview != expected {
		t.Errorf("Expected preview %q, got %q", expected, result.Preview)
	}
}

func TestUploadHandlerUnsupportedType(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createUploadHandler(om)

	body, contentType := buildFileUpload(t, "resume.txt", []byte("plain text resume"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "Unsupported file type" {
		t.Errorf("Expected unsupported file type error, got %q", resp.Error)
	}
}

func TestUploadHandlerFileTooLarge(t *testing.T) {
	s, om := newTestServer(t)
	s.MaxUploadSize = 1024 // Shrink the ceiling so the fixture stays small
	handler := s.createUploadHandler(om)

	body, contentType := buildFileUpload(t, "resume.pdf", bytes.Repeat([]byte("x"), 2048))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "File too large" {
		t.Errorf("Expected file too large error, got %q", resp.Error)
	}
}

func TestUploadHandlerExactlyAtLimit(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createUploadHandler(om)

	body, contentType := buildDocxUpload(t, "resume.docx", "short resume")
	docxSize := body.Len() // Upper bound on the embedded file size
	s.MaxUploadSize = int64(docxSize)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler(rec, req)

	// A file at or below the configured limit must be accepted
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for file within limit, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyzeHandler(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createAnalyzeHandler(om)

	payload := `{"resume_text":"EXPERIENCE\nBuilt React apps.\n\nEDUCATION\nB.S.\n\nSKILLS\nReact","mode":"ats"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Score < 1 || result.Score > 10 {
		t.Errorf("Expected score in [1,10], got %d", result.Score)
	}
	if result.Mode != types.ModeATS {
		t.Errorf("Expected ats mode, got %s", result.Mode)
	}
	if result.ID == "" {
		t.Error("Expected analysis ID")
	}
}

func TestAnalyzeHandlerValidation(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createAnalyzeHandler(om)

	tests := []struct {
		name          string
		payload       string
		contentType   string
		expectedCode  int
		expectedError string
	}{
		{
			name:          "wrong content type",
			payload:       `{}`,
			contentType:   "text/plain",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "malformed json",
			payload:       `{`,
			contentType:   "application/json",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "missing resume text",
			payload:       `{"mode":"ats"}`,
			contentType:   "application/json",
			expectedCode:  http.StatusBadRequest,
			expectedError: errors.ErrCodeMissingResumeText,
		},
		{
			name:          "invalid mode",
			payload:       `{"resume_text":"text","mode":"vibes"}`,
			contentType:   "application/json",
			expectedCode:  http.StatusBadRequest,
			expectedError: errors.ErrCodeInvalidAnalysisMode,
		},
		{
			name:          "job match without job description",
			payload:       `{"resume_text":"text","mode":"job_match"}`,
			contentType:   "application/json",
			expectedCode:  http.StatusBadRequest,
			expectedError: errors.ErrCodeMissingJobDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()

			handler(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("Expected %d, got %d: %s", tt.expectedCode, rec.Code, rec.Body.String())
			}

			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tt.expectedError {
				t.Errorf("Expected error %q, got %q", tt.expectedError, resp.Error)
			}
		})
	}
}

func TestGetAnalysisHandler(t *testing.T) {
	s, om := newTestServer(t)

	// Seed one analysis through the service
	analyzeHandler := s.createAnalyzeHandler(om)
	payload := `{"resume_text":"EXPERIENCE\nwork","mode":"ats"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	analyzeHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Seed analyze failed: %d %s", rec.Code, rec.Body.String())
	}

	var seeded types.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &seeded); err != nil {
		t.Fatalf("Failed to decode seeded analysis: %v", err)
	}

	getHandler := s.createGetAnalysisHandler(om)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/analysis/"+seeded.ID, nil)
		rec := httptest.NewRecorder()
		getHandler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		var result types.AnalysisResult
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.ID != seeded.ID {
			t.Errorf("Expected ID %s, got %s", seeded.ID, result.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/analysis/no-such-id", nil)
		rec := httptest.NewRecorder()
		getHandler(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d", rec.Code)
		}
		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}
		if resp.Error != errors.ErrCodeAnalysisNotFound {
			t.Errorf("Expected ANALYSIS_NOT_FOUND, got %q", resp.Error)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/analysis/", nil)
		rec := httptest.NewRecorder()
		getHandler(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", rec.Code)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	s, _ := newTestServer(t)
	s.APIKeys = map[string]bool{"valid-key-12345678": true}

	protected := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		header       string
		value        string
		expectedCode int
	}{
		{"missing key", "", "", http.StatusUnauthorized},
		{"invalid key", "X-API-Key", "wrong", http.StatusUnauthorized},
		{"valid key", "X-API-Key", "valid-key-12345678", http.StatusOK},
		{"bearer token", "Authorization", "Bearer valid-key-12345678", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			protected(rec, req)

			if rec.Code != tt.expectedCode {
				t.Errorf("Expected %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}
}

func TestStatsHandler(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	s.statsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode stats: %v", err)
	}
	if resp["service"] != "resumescan" {
		t.Errorf("Expected service resumescan, got %v", resp["service"])
	}
	if _, ok := resp["uptime_seconds"]; !ok {
		t.Error("Expected uptime in stats")
	}
	if _, ok := resp["store"]; !ok {
		t.Error("Expected store stats")
	}
}
