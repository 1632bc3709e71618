package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumescan/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "ExtractionResult", &ExtractionTextFormatter{})
	registry.RegisterFormatter("markdown", "ExtractionResult", &ExtractionMarkdownFormatter{})
	registry.RegisterFormatter("text", "UploadResult", &UploadTextFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult:
		return "AnalysisResult"
	case types.ExtractionResult:
		return "ExtractionResult"
	case types.UploadResult:
		return "UploadResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	if result.Mode == types.ModeJobMatch {
		output.WriteString("=== JOB MATCH ANALYSIS ===\n\n")
	} else {
		output.WriteString("=== ATS ANALYSIS ===\n\n")
	}
	output.WriteString(fmt.Sprintf("Score: %d/10 (%s)\n\n", result.Score, result.ScoreLevel))

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, s := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}

	if len(result.Weaknesses) > 0 {
		output.WriteString("Weaknesses:\n")
		for _, w := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", w))
		}
		output.WriteString("\n")
	}

	if result.Mode == types.ModeJobMatch {
		if len(result.MatchedKeywords) > 0 {
			output.WriteString("Matched Keywords:\n")
			for _, k := range result.MatchedKeywords {
				output.WriteString(fmt.Sprintf("- %s\n", k))
			}
			output.WriteString("\n")
		}
		if len(result.MissingKeywords) > 0 {
			output.WriteString("Missing Keywords:\n")
			for _, k := range result.MissingKeywords {
				output.WriteString(fmt.Sprintf("- %s\n", k))
			}
			output.WriteString("\n")
		}
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("Recommendations:\n")
		for i, r := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, r))
		}
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	if result.Mode == types.ModeJobMatch {
		output.WriteString("# Job Match Analysis\n\n")
	} else {
		output.WriteString("# ATS Analysis\n\n")
	}
	output.WriteString(fmt.Sprintf("**Score:** %d/10 (%s)\n\n", result.Score, result.ScoreLevel))

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		for _, s := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}

	if len(result.Weaknesses) > 0 {
		output.WriteString("## Weaknesses\n\n")
		for _, w := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", w))
		}
		output.WriteString("\n")
	}

	if result.Mode == types.ModeJobMatch {
		if len(result.MatchedKeywords) > 0 {
			output.WriteString("## Matched Keywords\n\n")
			for _, k := range result.MatchedKeywords {
				output.WriteString(fmt.Sprintf("- %s\n", k))
			}
			output.WriteString("\n")
		}
		if len(result.MissingKeywords) > 0 {
			output.WriteString("## Missing Keywords\n\n")
			for _, k := range result.MissingKeywords {
				output.WriteString(fmt.Sprintf("- %s\n", k))
			}
			output.WriteString("\n")
		}
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, r := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, r))
		}
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// ExtractionTextFormatter handles text formatting for extraction results
type ExtractionTextFormatter struct{}

func (etf *ExtractionTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractionResult)
	if !ok {
		return "", fmt.Errorf("expected ExtractionResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== EXTRACTED RESUME DATA ===\n\n")
	output.WriteString(fmt.Sprintf("Characters: %d\n\n", result.Chars))

	output.WriteString("Contact:\n")
	output.WriteString(fmt.Sprintf("  Email: %s\n", valueOrDash(result.Contact.Email)))
	output.WriteString(fmt.Sprintf("  Phone: %s\n", valueOrDash(result.Contact.Phone)))
	output.WriteString(fmt.Sprintf("  LinkedIn: %s\n\n", valueOrDash(result.Contact.LinkedIn)))

	output.WriteString("Sections:\n")
	for _, section := range result.Sections {
		marker := "missing"
		if section.Present {
			marker = "present"
		}
		output.WriteString(fmt.Sprintf("  %-15s %s\n", string(section.Name), marker))
	}
	output.WriteString("\n")

	if len(result.Keywords) > 0 {
		output.WriteString("Keywords:\n")
		for _, k := range result.Keywords {
			output.WriteString(fmt.Sprintf("- %s\n", k))
		}
	} else {
		output.WriteString("No technical keywords detected.\n")
	}

	return output.String(), nil
}

func (etf *ExtractionTextFormatter) SupportedType() string {
	return "ExtractionResult"
}

// ExtractionMarkdownFormatter handles markdown formatting for extraction results
type ExtractionMarkdownFormatter struct{}

func (emf *ExtractionMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractionResult)
	if !ok {
		return "", fmt.Errorf("expected ExtractionResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Extracted Resume Data\n\n")
	output.WriteString(fmt.Sprintf("**Characters:** %d\n\n", result.Chars))

	output.WriteString("## Contact\n\n")
	output.WriteString(fmt.Sprintf("- **Email:** %s\n", valueOrDash(result.Contact.Email)))
	output.WriteString(fmt.Sprintf("- **Phone:** %s\n", valueOrDash(result.Contact.Phone)))
	output.WriteString(fmt.Sprintf("- **LinkedIn:** %s\n\n", valueOrDash(result.Contact.LinkedIn)))

	output.WriteString("## Sections\n\n")
	for _, section := range result.Sections {
		marker := "missing"
		if section.Present {
			marker = "present"
		}
		output.WriteString(fmt.Sprintf("- **%s:** %s\n", string(section.Name), marker))
	}
	output.WriteString("\n")

	if len(result.Keywords) > 0 {
		output.WriteString("## Keywords\n\n")
		for _, k := range result.Keywords {
			output.WriteString(fmt.Sprintf("- %s\n", k))
		}
	}

	return output.String(), nil
}

func (emf *ExtractionMarkdownFormatter) SupportedType() string {
	return "ExtractionResult"
}

// UploadTextFormatter handles text formatting for upload results
type UploadTextFormatter struct{}

func (utf *UploadTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.UploadResult)
	if !ok {
		return "", fmt.Errorf("expected UploadResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME UPLOADED ===\n\n")
	output.WriteString(fmt.Sprintf("Resume ID: %s\n", result.ResumeID))
	output.WriteString(fmt.Sprintf("File: %s\n\n", result.FileName))
	output.WriteString("Preview:\n")
	output.WriteString(result.Preview)
	output.WriteString("\n")

	return output.String(), nil
}

func (utf *UploadTextFormatter) SupportedType() string {
	return "UploadResult"
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
