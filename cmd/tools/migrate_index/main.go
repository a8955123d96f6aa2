// Command migrate_index creates the pgvector-backed embedding table used by
// the job_matcher vector index.
//
// Usage:
//
//	go run cmd/tools/migrate_index/main.go [embedding_dimensions]
//
// Requires DATABASE_URL environment variable to be set. The dimension
// defaults to 768, the output size of the default embedding model.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultDimensions = 768

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	dimensions := defaultDimensions
	if len(os.Args) > 1 {
		parsed, err := strconv.Atoi(os.Args[1])
		if err != nil || parsed <= 0 {
			fmt.Fprintf(os.Stderr, "ERROR: invalid embedding dimensions %q\n", os.Args[1])
			os.Exit(1)
		}
		dimensions = parsed
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS job_skill_embeddings (
			doc_id     TEXT PRIMARY KEY,
			skill_text TEXT NOT NULL,
			embedding  vector(%d) NOT NULL,
			metadata   JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, dimensions),
		`CREATE INDEX IF NOT EXISTS job_skill_embeddings_cosine_idx
			ON job_skill_embeddings USING hnsw (embedding vector_cosine_ops)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: migration failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("job_skill_embeddings table ready")
}
