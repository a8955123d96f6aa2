package vectorindex

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
)

// Postgres is an Index backed by PostgreSQL with the pgvector extension.
// Embeddings live in the job_skill_embeddings table; similarity queries use
// the <=> cosine-distance operator.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool with pgvector types
// registered on every connection.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Upsert inserts or replaces embeddings keyed by doc_id.
func (p *Postgres) Upsert(ctx context.Context, entries []Entry) error {
	for _, entry := range entries {
		if entry.DocID == "" {
			return fmt.Errorf("entry has empty doc_id")
		}
		meta, err := json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata for doc %s: %w", entry.DocID, err)
		}
		_, err = p.pool.Exec(ctx,
			`INSERT INTO job_skill_embeddings (doc_id, skill_text, embedding, metadata)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (doc_id)
			 DO UPDATE SET skill_text = $2, embedding = $3, metadata = $4, updated_at = NOW()`,
			entry.DocID, entry.Text, pgvector.NewVector(entry.Vector), meta,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert embedding for doc %s: %w", entry.DocID, err)
		}
	}
	return nil
}

// Query returns the k nearest neighbors by cosine distance, most similar
// first. The <=> operator returns distance, so similarity is 1 - distance.
func (p *Postgres) Query(ctx context.Context, vector []float32, k int) ([]Result, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT doc_id, metadata, 1 - (embedding <=> $1) AS similarity
		 FROM job_skill_embeddings
		 ORDER BY embedding <=> $1, doc_id
		 LIMIT $2`,
		pgvector.NewVector(vector), k,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query embeddings: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var meta []byte
		if err := rows.Scan(&r.DocID, &meta, &r.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &r.Metadata); err != nil {
				return nil, fmt.Errorf("failed to parse metadata for doc %s: %w", r.DocID, err)
			}
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result rows: %w", err)
	}

	return results, nil
}
