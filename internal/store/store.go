// Package store persists processed document records as JSON, locally and
// optionally to S3.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/types"
)

// uploadAttempts bounds S3 upload retries per record.
const uploadAttempts = 3

// Uploader is the narrow contract the store needs from S3.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte) error
}

// Store writes document records to a local processed directory and mirrors
// them to S3 when an uploader is configured.
type Store struct {
	dir      string
	uploader Uploader
	logger   *zap.Logger
}

// New creates a Store rooted at dir. A nil uploader skips the S3 mirror; a
// nil logger is replaced with a no-op logger.
func New(dir string, uploader Uploader, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, uploader: uploader, logger: logger}
}

// Save writes the record to <dir>/<doc_id>.json and uploads it as
// processed/<doc_id>.json with bounded retries.
func (s *Store) Save(ctx context.Context, doc *types.Document) error {
	if doc == nil || doc.DocID == "" {
		return fmt.Errorf("document has no doc_id")
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", doc.DocID, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create processed directory %s: %w", s.dir, err)
	}

	localPath := filepath.Join(s.dir, doc.DocID+".json")
	if err := os.WriteFile(localPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", localPath, err)
	}
	s.logger.Info("saved document record",
		zap.String("doc_id", doc.DocID),
		zap.String("path", localPath))

	if s.uploader == nil {
		return nil
	}

	key := "processed/" + doc.DocID + ".json"
	var lastErr error
	for attempt := 1; attempt <= uploadAttempts; attempt++ {
		lastErr = s.uploader.Upload(ctx, key, data)
		if lastErr == nil {
			s.logger.Info("uploaded document record", zap.String("key", key))
			return nil
		}
		s.logger.Warn("upload attempt failed",
			zap.String("key", key),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", uploadAttempts),
			zap.Error(lastErr))
		if attempt < uploadAttempts {
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return fmt.Errorf("upload of %s canceled: %w", key, ctx.Err())
			}
		}
	}
	return fmt.Errorf("failed to upload %s after %d attempts: %w", key, uploadAttempts, lastErr)
}
