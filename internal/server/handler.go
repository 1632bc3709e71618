package server

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"resumescan/internal/analysis"
	"resumescan/internal/errors"
	"resumescan/internal/extract"
	"resumescan/internal/observability"
	"resumescan/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createUploadHandler wraps the resume upload handler with observability
func (s *Server) createUploadHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescan.api")
		ctx, span := tracer.Start(ctx, "api.upload")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Allow a little headroom for the multipart envelope itself
		if err := r.ParseMultipartForm(s.MaxUploadSize + 1024); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid multipart request", err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume file", "file field is required", http.StatusBadRequest)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				s.Logger.Warn("Failed to close uploaded file", "error", err)
			}
		}()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !extract.IsSupportedUpload(header.Filename) {
			err := fmt.Errorf("unsupported file type: %s", ext)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Unsupported file type", "Only PDF and DOCX files are supported", http.StatusBadRequest)
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to read uploaded file", err.Error(), http.StatusBadRequest)
			return
		}

		if int64(len(data)) > s.MaxUploadSize {
			err := fmt.Errorf("file too large: %d bytes", len(data))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "File too large",
				fmt.Sprintf("File size must not exceed %d bytes", s.MaxUploadSize), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("upload.file_name", header.Filename),
			attribute.Int("upload.file_size", len(data)),
			attribute.String("operation", "upload"),
		)

		text, err := extract.Text(header.Filename, data)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			s.writeAppError(w, span.SpanContext().TraceID().String(), err)
			return
		}

		resume := analysis.NewResumeFromText(text, header.Filename, int64(len(data)))

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "resume_uploaded", true, om,
			attribute.String("file_type", ext))
		metrics.RecordUploadSize(ctx, int64(len(data)), om,
			attribute.String("file_type", ext))

		// Truncate on a rune boundary so multi-byte characters are never
		// split mid-sequence.
		preview := text
		runeCount := 0
		for i := range preview {
			if runeCount == s.PreviewLength {
				preview = preview[:i] + "..."
				break
			}
			runeCount++
		}

		result := types.UploadResult{
			Success:  true,
			ResumeID: resume.ID,
			FileName: header.Filename,
			Preview:  preview,
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("resume.id", resume.ID),
		)

		s.Logger.Info("Resume uploaded",
			"resume_id", resume.ID,
			"file_name", header.Filename,
			"file_size", len(data))

		writeJSONResponse(w, span, result)
	}
}

// createAnalyzeHandler wraps the analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescan.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req types.AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large",
				fmt.Sprintf("resume_text exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescriptionText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescriptionText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large",
				fmt.Sprintf("job_description exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescriptionText)),
			attribute.String("analysis.mode", string(req.Mode)),
			attribute.String("operation", "analyze"),
		)

		metrics := om.GetMetrics()
		start := time.Now()
		result, err := s.Analysis.Analyze(ctx, req)
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "analysis_completed", false, om,
				attribute.String("mode", string(req.Mode)))
			s.writeAppError(w, span.SpanContext().TraceID().String(), err)
			return
		}

		metrics.RecordBusinessMetric(ctx, "analysis_completed", true, om,
			attribute.String("mode", string(result.Mode)),
			attribute.Int("score", result.Score))
		metrics.RecordAnalysisOutcome(ctx, time.Since(start), result.Score,
			attribute.String("mode", string(result.Mode)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("analysis.id", result.ID),
			attribute.Int("analysis.score", result.Score),
			attribute.String("analysis.score_level", string(result.ScoreLevel)),
		)

		writeJSONResponse(w, span, result)
	}
}

// createGetAnalysisHandler wraps analysis retrieval with observability
func (s *Server) createGetAnalysisHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumescan.api")
		_, span := tracer.Start(r.Context(), "api.get_analysis")
		defer span.End()

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		id := strings.TrimPrefix(r.URL.Path, "/api/analysis/")
		if id == "" || strings.Contains(id, "/") {
			err := fmt.Errorf("invalid analysis id: %q", id)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid analysis ID", "analysis ID is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("analysis.id", id),
			attribute.String("operation", "get_analysis"),
		)

		result, err := s.Analysis.GetAnalysis(id)
		if err != nil {
			span.RecordError(err)
			s.writeAppError(w, span.SpanContext().TraceID().String(), err)
			return
		}

		span.SetAttributes(attribute.Bool("success", true))
		writeJSONResponse(w, span, result)
	}
}

// writeAppError maps an application error to an HTTP response without
// leaking internal details for non-client errors.
func (s *Server) writeAppError(w http.ResponseWriter, traceID string, err error) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		switch appErr.Type {
		case errors.ErrorTypeValidation:
			writeErrorResponse(w, appErr.Code, appErr.Message, http.StatusBadRequest)
			return
		case errors.ErrorTypeNotFound:
			writeErrorResponse(w, appErr.Code, appErr.Message, http.StatusNotFound)
			return
		case errors.ErrorTypeIO:
			writeErrorResponse(w, appErr.Code, appErr.Message, http.StatusBadRequest)
			return
		}
	}

	s.Logger.LogError(err, "Request failed", "trace_id", traceID)
	writeErrorResponse(w, "Internal server error", "The request could not be processed", http.StatusInternalServerError)
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
