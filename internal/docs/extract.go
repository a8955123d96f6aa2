// Package docs extracts cleaned text from resume and job description
// documents (PDF, DOCX, HTML, plain text).
package docs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/job-matcher/internal/types"
)

// processedByVersion tags which pipeline version produced a document record.
const processedByVersion = "v1.0"

// ExtractFile reads a document file and returns the unified record with its
// cleaned text and word count. Skills are filled in by the extraction stage.
func ExtractFile(path, docType string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	text, err := ExtractText(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	return &types.Document{
		DocID:       uuid.NewString(),
		DocType:     docType,
		Text:        text,
		WordCount:   len(strings.Fields(text)),
		FileName:    filepath.Base(path),
		CreatedAt:   time.Now().UTC(),
		ProcessedBy: processedByVersion,
	}, nil
}

// ExtractText dispatches on the file extension and returns cleaned text.
func ExtractText(data []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	case ".html", ".htm":
		return extractHTMLText(data)
	case ".txt", "":
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return strings.TrimSpace(textBuilder.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return strings.TrimSpace(doc.Editable().GetContent()), nil
}

// extractHTMLText strips markup from HTML job postings, keeping visible text.
func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(text), " "), nil
}
