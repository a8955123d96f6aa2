package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/docs"
	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/extraction"
	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/normalize"
	"github.com/jonathan/job-matcher/internal/pipeline"
	"github.com/jonathan/job-matcher/internal/store"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vectorindex"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Match every resume in a directory against every job description",
	Long:  "Extracts text and skills from all resumes and job descriptions, indexes JD skill embeddings, retrieves candidate jobs per resume and scores each pair, persisting one record per resume with its ranked job matches.",
	RunE:  runBatch,
}

var (
	runResumesDir  string
	runJobsDir     string
	runConfigPath  string
	runSkills      string
	runAPIKey      string
	runDatabaseURL string
	runS3Bucket    string
	runOutDir      string
	runVerbose     bool
)

func init() {
	runCommand.Flags().StringVar(&runResumesDir, "resumes", "data/resumes", "Directory of resume documents")
	runCommand.Flags().StringVar(&runJobsDir, "jobs", "data/jobs", "Directory of job description documents")
	runCommand.Flags().StringVarP(&runConfigPath, "config", "c", "", "Path to configuration JSON file")
	runCommand.Flags().StringVarP(&runSkills, "skills-config", "s", "config/skills.json", "Path to the canonical skill vocabulary JSON")
	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().StringVar(&runDatabaseURL, "database-url", "", "PostgreSQL URL for the pgvector index (optional, defaults to DATABASE_URL env var; in-memory index when unset)")
	runCommand.Flags().StringVar(&runS3Bucket, "s3-bucket", "", "S3 bucket for mirroring result records (optional)")
	runCommand.Flags().StringVarP(&runOutDir, "out-dir", "o", "", "Directory for persisted result records (defaults to data/processed)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(runCommand)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyRunFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	vocab, err := normalize.LoadVocabulary(cfg.SkillsConfig)
	if err != nil {
		return fmt.Errorf("failed to load skill vocabulary: %w", err)
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	index, closeIndex, err := buildIndex(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer closeIndex()

	var uploader store.Uploader
	if cfg.S3Bucket != "" {
		s3up, err := store.NewS3Uploader(ctx, cfg.S3Bucket)
		if err != nil {
			return fmt.Errorf("failed to create S3 uploader: %w", err)
		}
		uploader = s3up
	}
	records := store.New(cfg.ProcessedDir, uploader, log)

	extractor := extraction.New(client, vocab)
	resumes, err := loadDocuments(ctx, extractor, log, runResumesDir, types.DocTypeResume)
	if err != nil {
		return err
	}
	jobs, err := loadDocuments(ctx, extractor, log, runJobsDir, types.DocTypeJob)
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		return fmt.Errorf("no resume documents found in %s", runResumesDir)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no job documents found in %s", runJobsDir)
	}

	embedder := embedding.NewMemo(embedding.NewLLMEmbedder(client))
	engine := pipeline.New(embedder, index, records, cfg, log)
	if err := engine.Run(ctx, resumes, jobs); err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	log.Info("batch run completed",
		zap.Int("resumes", len(resumes)),
		zap.Int("jobs", len(jobs)))
	return nil
}

// applyRunFlags layers CLI flags and environment variables over the config file.
func applyRunFlags(cfg *config.Config) {
	if runAPIKey != "" {
		cfg.APIKey = runAPIKey
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if runDatabaseURL != "" {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if runS3Bucket != "" {
		cfg.S3Bucket = runS3Bucket
	}
	if runOutDir != "" {
		cfg.ProcessedDir = runOutDir
	}
	if cfg.SkillsConfig == "" {
		cfg.SkillsConfig = runSkills
	}
	if runVerbose {
		cfg.Verbose = true
	}
}

// buildIndex selects the pgvector-backed index when a database URL is
// configured, falling back to the in-memory index for single-shot runs.
func buildIndex(ctx context.Context, databaseURL string) (vectorindex.Index, func(), error) {
	if databaseURL == "" {
		return vectorindex.NewMemory(), func() {}, nil
	}

	pg, err := vectorindex.ConnectPostgres(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to vector index: %w", err)
	}
	return pg, pg.Close, nil
}

// loadDocuments extracts text and skills for every supported document in dir.
// A document that fails extraction is skipped with a warning; one bad file
// does not abort the batch.
func loadDocuments(ctx context.Context, extractor *extraction.Extractor, log *zap.Logger, dir, docType string) ([]*types.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s directory %s: %w", docType, dir, err)
	}

	var out []*types.Document
	for _, entry := range entries {
		if entry.IsDir() || !supportedDocument(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		doc, err := docs.ExtractFile(path, docType)
		if err != nil {
			log.Warn("skipping document, text extraction failed",
				zap.String("path", path), zap.Error(err))
			continue
		}

		skills, err := extractor.Extract(ctx, doc.Text)
		if err != nil {
			log.Warn("skipping document, skill extraction failed",
				zap.String("path", path), zap.Error(err))
			continue
		}
		doc.Skills = skills

		logger.WithDoc(log, doc.DocID, doc.DocType).Info("processed document",
			zap.String("file", doc.FileName),
			zap.Int("skills", doc.Skills.Len()))
		out = append(out, doc)
	}
	return out, nil
}

func supportedDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx", ".html", ".htm", ".txt":
		return true
	default:
		return false
	}
}
