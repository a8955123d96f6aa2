// Package logger builds the structured loggers used across the CLI and pipeline.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a production logger, or a human-readable development logger
// when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		log, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}

// WithDoc attaches the standard document fields to the logger. A nil logger
// defaults to a no-op logger to avoid panics.
func WithDoc(log *zap.Logger, docID, docType string) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log.With(zap.String("doc_id", docID), zap.String("doc_type", docType))
}
