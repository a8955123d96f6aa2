package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/docs"
	"github.com/jonathan/job-matcher/internal/extraction"
	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/normalize"
	"github.com/jonathan/job-matcher/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract normalized skills from a resume or job description",
	Long:  "Extracts the document text (PDF, DOCX, HTML or plain text), pulls out technical and soft skills via the LLM constrained to the canonical vocabulary, and writes the document record JSON.",
	RunE:  runExtract,
}

var (
	extractInput   string
	extractDocType string
	extractSkills  string
	extractOutput  string
	extractAPIKey  string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "in", "i", "", "Path to the document file (required)")
	extractCmd.Flags().StringVarP(&extractDocType, "type", "t", types.DocTypeResume, "Document type: resume or job")
	extractCmd.Flags().StringVarP(&extractSkills, "skills-config", "s", "config/skills.json", "Path to the canonical skill vocabulary JSON")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output document record JSON file (required)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	if err := extractCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := extractCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if extractDocType != types.DocTypeResume && extractDocType != types.DocTypeJob {
		return fmt.Errorf("invalid document type %q: must be %q or %q", extractDocType, types.DocTypeResume, types.DocTypeJob)
	}

	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	vocab, err := normalize.LoadVocabulary(extractSkills)
	if err != nil {
		return fmt.Errorf("failed to load skill vocabulary: %w", err)
	}

	doc, err := docs.ExtractFile(extractInput, extractDocType)
	if err != nil {
		return fmt.Errorf("failed to extract document text: %w", err)
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	extractor := extraction.New(client, vocab)
	skills, err := extractor.Extract(ctx, doc.Text)
	if err != nil {
		return fmt.Errorf("failed to extract skills: %w", err)
	}
	doc.Skills = skills

	jsonOutput, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document record to JSON: %w", err)
	}

	outputDir := filepath.Dir(extractOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(extractOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write document record to output file %s: %w", extractOutput, err)
	}

	return nil
}
