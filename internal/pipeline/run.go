// Package pipeline provides the high-level orchestration for matching
// resumes against job descriptions.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/gaps"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/store"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vectorindex"
)

// Engine wires the matcher, metrics and gap stages to their collaborators.
// Engines hold no mutable state across invocations; each call is pure given
// its inputs and the embedding/index collaborators, so independent pairs may
// be scored concurrently.
type Engine struct {
	embedder embedding.Embedder
	index    vectorindex.Index
	records  *store.Store // optional; nil skips persistence
	cfg      config.Config
	log      *zap.Logger
}

// New creates an Engine. A nil logger is replaced with a no-op logger.
func New(embedder embedding.Embedder, index vectorindex.Index, records *store.Store, cfg config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		embedder: embedder,
		index:    index,
		records:  records,
		cfg:      cfg,
		log:      log,
	}
}

// ScorePair produces the full MatchRecord for one (resume, JD) skill-set
// pair: matcher verdict, metrics and gap suggestions. An empty JD skill set
// triggers the defined fallback record (score 0, Weak fit) rather than an
// error.
func (e *Engine) ScorePair(ctx context.Context, resume, jd types.SkillSet) (*types.MatchRecord, error) {
	outcome, err := matching.Match(ctx, resume, jd, e.cfg.Matching.Threshold, e.embedder)
	if err != nil {
		var emptyErr *matching.EmptyInputError
		if errors.As(err, &emptyErr) {
			e.log.Warn("job description has no skills, using fallback record")
			return matching.EmptyJDRecord(), nil
		}
		return nil, err
	}

	record := matching.BuildRecord(outcome, resume, jd, e.cfg.Matching)
	analysis := gaps.Generate(outcome.Missing, outcome.Matched, e.cfg.Gaps)
	record.Suggestions = analysis.Suggestions
	return record, nil
}

// IndexJobs embeds each job's skill-set aggregate (the joined skill names)
// and upserts it into the vector index. Jobs with no skills are skipped with
// a warning.
func (e *Engine) IndexJobs(ctx context.Context, jobs []*types.Document) error {
	entries := make([]vectorindex.Entry, 0, len(jobs))
	for _, job := range jobs {
		skillText := strings.Join(job.Skills.Names(), " ")
		if skillText == "" {
			logger.WithDoc(e.log, job.DocID, job.DocType).Warn("no skills to index, skipping")
			continue
		}

		vec, err := e.embedder.Embed(ctx, skillText)
		if err != nil {
			return fmt.Errorf("embedding job %s: %w", job.DocID, err)
		}
		entries = append(entries, vectorindex.Entry{
			DocID:  job.DocID,
			Text:   skillText,
			Vector: vec,
			Metadata: map[string]string{
				"doc_type":  job.DocType,
				"file_name": job.FileName,
			},
		})
	}

	if len(entries) == 0 {
		return nil
	}
	if err := e.index.Upsert(ctx, entries); err != nil {
		return fmt.Errorf("upserting job embeddings: %w", err)
	}
	e.log.Info("indexed job embeddings", zap.Int("count", len(entries)))
	return nil
}

// MatchResume retrieves the top-k candidate JDs for the resume from the
// vector index and scores each (resume, JD) pair concurrently. A failed pair
// yields a tagged failure outcome; it never aborts the rest of the batch.
// Results are sorted by match score, best first.
func (e *Engine) MatchResume(ctx context.Context, resume *types.Document, jobs []*types.Document) ([]types.JobMatch, error) {
	log := logger.WithDoc(e.log, resume.DocID, resume.DocType)

	skillText := strings.Join(resume.Skills.Names(), " ")
	if skillText == "" {
		log.Warn("resume has no skills, no matches computed")
		return []types.JobMatch{}, nil
	}

	resumeVec, err := e.embedder.Embed(ctx, skillText)
	if err != nil {
		return nil, fmt.Errorf("embedding resume %s: %w", resume.DocID, err)
	}

	candidates, err := e.index.Query(ctx, resumeVec, e.cfg.TopK)
	if err != nil {
		return nil, fmt.Errorf("querying index for resume %s: %w", resume.DocID, err)
	}

	jobsByID := make(map[string]*types.Document, len(jobs))
	for _, job := range jobs {
		jobsByID[job.DocID] = job
	}

	// Each worker writes its own slot, so no locking is needed.
	matches := make([]types.JobMatch, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	if e.cfg.Concurrency > 0 {
		g.SetLimit(e.cfg.Concurrency)
	}
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			match := types.JobMatch{JobID: candidate.DocID}

			job, ok := jobsByID[candidate.DocID]
			if !ok {
				match.Error = "job data not found"
			} else if record, err := e.ScorePair(gCtx, resume.Skills, job.Skills); err != nil {
				// Tag the failure and keep going; the batch reports each
				// pair's outcome independently.
				match.Error = err.Error()
				log.Warn("pair scoring failed",
					zap.String("job_id", candidate.DocID),
					zap.Error(err))
			} else {
				match.Record = record
			}

			matches[i] = match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		si, sj := -1, -1
		if matches[i].Record != nil {
			si = matches[i].Record.MatchScore
		}
		if matches[j].Record != nil {
			sj = matches[j].Record.MatchScore
		}
		if si != sj {
			return si > sj
		}
		return matches[i].JobID < matches[j].JobID
	})

	log.Info("matched resume against candidates",
		zap.Int("candidates", len(candidates)),
		zap.Int("matches", len(matches)))
	return matches, nil
}

// Run indexes the jobs, matches every resume against them and persists each
// resume record with its ranked job matches.
func (e *Engine) Run(ctx context.Context, resumes, jobs []*types.Document) error {
	if err := e.IndexJobs(ctx, jobs); err != nil {
		return err
	}

	for _, resume := range resumes {
		matches, err := e.MatchResume(ctx, resume, jobs)
		if err != nil {
			return fmt.Errorf("matching resume %s: %w", resume.DocID, err)
		}
		resume.JobMatches = matches

		if e.records != nil {
			if err := e.records.Save(ctx, resume); err != nil {
				return fmt.Errorf("persisting resume %s: %w", resume.DocID, err)
			}
		}
	}
	return nil
}
