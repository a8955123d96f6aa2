package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/normalize"
	"github.com/jonathan/job-matcher/internal/pipeline"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume skill set against a job description skill set",
	Long:  "Normalizes two raw skill lists, matches them via canonical equality and embedding similarity, and writes a MatchRecord JSON with scores, role fit, skill gaps and suggestions.",
	RunE:  runMatch,
}

var (
	matchResume     string
	matchJob        string
	matchConfigPath string
	matchSkills     string
	matchOutput     string
	matchAPIKey     string
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume-skills", "r", "", "Path to JSON array of raw resume skill strings (required)")
	matchCmd.Flags().StringVarP(&matchJob, "jd-skills", "j", "", "Path to JSON array of raw JD skill strings (required)")
	matchCmd.Flags().StringVarP(&matchConfigPath, "config", "c", "", "Path to configuration JSON file")
	matchCmd.Flags().StringVarP(&matchSkills, "skills-config", "s", "", "Path to the canonical skill vocabulary JSON (optional)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchRecord JSON file (required)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	if err := matchCmd.MarkFlagRequired("resume-skills"); err != nil {
		panic(fmt.Sprintf("failed to mark resume-skills flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("jd-skills"); err != nil {
		panic(fmt.Sprintf("failed to mark jd-skills flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(matchConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey := matchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	canonical := map[string]string{}
	skillsPath := matchSkills
	if skillsPath == "" {
		skillsPath = cfg.SkillsConfig
	}
	if skillsPath != "" {
		vocab, err := normalize.LoadVocabulary(skillsPath)
		if err != nil {
			return fmt.Errorf("failed to load skill vocabulary: %w", err)
		}
		canonical = vocab.CanonicalMap()
	}

	resumeSet, err := loadSkillSet(matchResume, canonical)
	if err != nil {
		return fmt.Errorf("failed to load resume skills: %w", err)
	}
	jdSet, err := loadSkillSet(matchJob, canonical)
	if err != nil {
		return fmt.Errorf("failed to load jd skills: %w", err)
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	embedder := embedding.NewMemo(embedding.NewLLMEmbedder(client))
	engine := pipeline.New(embedder, nil, nil, cfg, nil)

	record, err := engine.ScorePair(ctx, resumeSet, jdSet)
	if err != nil {
		return fmt.Errorf("failed to score pair: %w", err)
	}

	jsonOutput, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match record to JSON: %w", err)
	}

	outputDir := filepath.Dir(matchOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(matchOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write match record to output file %s: %w", matchOutput, err)
	}

	// Validate output against schema (optional - non-fatal)
	if schemaPath := schemas.ResolveSchemaPath("schemas/match_record.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, matchOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	return nil
}

// loadSkillSet reads a JSON array of raw skill strings and normalizes it.
func loadSkillSet(path string, canonical map[string]string) (types.SkillSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SkillSet{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.SkillSet{}, fmt.Errorf("failed to parse %s as a JSON string array: %w", path, err)
	}

	return normalize.Normalize(raw, canonical)
}
