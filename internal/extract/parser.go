package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"resumescan/internal/errors"

	pdf "github.com/ledongthuc/pdf"
)

// SupportedUploadExtensions lists the file extensions accepted by the
// upload endpoint. Plain text is additionally accepted by the CLI.
var SupportedUploadExtensions = []string{".pdf", ".docx"}

// IsSupportedUpload reports whether the filename has an accepted extension
func IsSupportedUpload(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedUploadExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Text extracts plain text from raw document bytes based on the filename
// extension. Output is whitespace-normalized.
func Text(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidFileType,
			fmt.Sprintf("Unsupported file type: %s (only .pdf and .docx are accepted)", ext), nil)
	}
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
			"Failed to open PDF document", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
			"Failed to extract PDF text", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
			"Failed to read PDF text stream", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

var docxTagPattern = regexp.MustCompile(`<[^>]+>`)

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
			"Failed to open DOCX archive", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
					"Failed to open DOCX document part", err)
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
					"Failed to read DOCX document part", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
			"No document.xml found in DOCX archive", nil)
	}

	// Paragraphs become newlines, tabs become tabs, remaining tags are stripped.
	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := docxTagPattern.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

var (
	horizontalSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns     = regexp.MustCompile(` *\n[ \n]*`)
)

// normalizeWhitespace collapses space runs and newline runs while keeping
// line structure intact for heading detection.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = horizontalSpace.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
