package service

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docassist/docassist-be/types"
)

// ExtractService turns a source PDF file into a single document text string,
// page by page in page order. Extraction is a swappable collaborator of the
// pipeline: the assistant only ever sees the resulting string and counts.
type ExtractService struct{}

func NewExtractService() *ExtractService {
	return &ExtractService{}
}

// ExtractText reads every page of the file and concatenates the page texts
// with newlines. Pages that fail to extract are skipped with a warning; the
// whole call fails only when the file itself cannot be read. Per-page
// progress is reported as (page+1)/totalPages.
func (s *ExtractService) ExtractText(filePath string, reporter ProgressReporter) (*types.Document, error) {
	if reporter == nil {
		reporter = NopProgress{}
	}

	text, pages, err := s.extractWithReader(filePath, reporter)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			log.Printf("Warning: pdf reader failed for %s: %v, trying pdftotext", filePath, err)
		}
		text, pages, err = s.extractWithPdftotext(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text: %w", err)
		}
	}

	return &types.Document{
		Title:     GetFileNameWithoutExt(filePath),
		Source:    filePath,
		Text:      text,
		PageCount: pages,
		CharCount: len(text),
	}, nil
}

// extractWithReader uses the pure-Go PDF reader.
func (s *ExtractService) extractWithReader(filePath string, reporter ProgressReporter) (string, int, error) {
	file, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	totalPages := reader.NumPage()
	var builder strings.Builder

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		reporter.Progress(float64(pageNum) / float64(totalPages))

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Warning: failed to extract text from page %d: %v", pageNum, err)
			continue
		}
		builder.WriteString(cleanText(pageText))
		builder.WriteString("\n")
	}

	return builder.String(), totalPages, nil
}

// extractWithPdftotext shells out to the poppler pdftotext utility, used when
// the pure-Go reader cannot parse the file.
func (s *ExtractService) extractWithPdftotext(filePath string) (string, int, error) {
	log.Println("Try extracting with pdftotext")
	cmd := exec.Command("pdftotext", "-enc", "UTF-8", "-nopgbrk", filePath, "-")
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", 0, fmt.Errorf("pdftotext failed: %w", err)
	}

	text := cleanText(out.String())
	if strings.TrimSpace(text) == "" {
		return "", 0, fmt.Errorf("got no text from %s", filePath)
	}
	// pdftotext emits the whole file at once; page boundaries are lost here.
	return text, 1, nil
}

// GetFileNameWithoutExt extracts the file name without extension from a path.
func GetFileNameWithoutExt(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx != -1 {
		base = base[:idx]
	}
	return base
}

func cleanText(text string) string {
	replacements := map[string]string{
		"\u0000": "",   // Null character
		"\ufffd": "",   // Unicode replacement character
		"\u001b": "",   // Escape character
		"\r":     "",   // Carriage return
		"\f":     "\n", // Form feed to newline
		"  ":     " ",  // Multiple spaces to single space
	}
	cleaned := text
	for from, to := range replacements {
		cleaned = strings.ReplaceAll(cleaned, from, to)
	}
	return strings.TrimSpace(cleaned)
}
