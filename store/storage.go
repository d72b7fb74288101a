package store

import (
	"context"
	"fmt"
	"log"
	"regexp"

	"elanbot/types"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// VectorStorer is the vector collection capability used by the chat service
// and the loader. A collection maps to one pgvector-backed table.
type VectorStorer interface {
	CreateCollection(context.Context, int) error
	Upsert(context.Context, int64, []float32, types.Chunk) error
	Search(context.Context, []float32, int) ([]types.ScoredChunk, error)
	Count(context.Context) (int64, error)
}

var collectionNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type PostgresStore struct {
	pool       *pgxpool.Pool
	collection string
}

func NewPostgresStore(ctx context.Context, connStr, collection string) (*PostgresStore, error) {
	if !collectionNameRe.MatchString(collection) {
		return nil, fmt.Errorf("invalid collection name: %q", collection)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{
		pool:       pool,
		collection: collection,
	}, nil
}

// CreateCollection drops and recreates the collection table with the given
// vector dimensionality and a cosine index. Ingestion always starts fresh.
func (p *PostgresStore) CreateCollection(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid vector dimension: %d", dimension)
	}

	query := fmt.Sprintf(`
	CREATE EXTENSION IF NOT EXISTS vector;

	DROP TABLE IF EXISTS %[1]q;

	CREATE TABLE %[1]q (
		id BIGINT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		embedding vector(%[2]d)
	);

	CREATE INDEX %[3]q ON %[1]q USING ivfflat (embedding vector_cosine_ops)
	WITH (lists = 100);
	`, p.collection, dimension, p.collection+"_embedding_idx")

	_, err := p.pool.Exec(ctx, query)
	return err
}

func (p *PostgresStore) Upsert(ctx context.Context, id int64, embedding []float32, chunk types.Chunk) error {
	query := fmt.Sprintf(`
	INSERT INTO %q (id, title, content, embedding)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		content = EXCLUDED.content,
		embedding = EXCLUDED.embedding
	`, p.collection)

	_, err := p.pool.Exec(ctx, query, id, chunk.Title, chunk.Content, pgvector.NewVector(embedding))
	return err
}

func (p *PostgresStore) Search(ctx context.Context, queryVec []float32, limit int) ([]types.ScoredChunk, error) {
	if len(queryVec) == 0 {
		return nil, fmt.Errorf("empty query vector")
	}

	vector := pgvector.NewVector(queryVec)

	query := fmt.Sprintf(`
	SELECT id, title, content, 1-(embedding <=> $1) AS score
	FROM %q
	WHERE embedding IS NOT NULL
	ORDER BY embedding <=> $1
	LIMIT $2
	`, p.collection)

	rows, err := p.pool.Query(ctx, query, vector, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []types.ScoredChunk
	for rows.Next() {
		var chunk types.ScoredChunk
		if err := rows.Scan(
			&chunk.ID,
			&chunk.Title,
			&chunk.Content,
			&chunk.Score); err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}
	return chunks, rows.Err()
}

func (p *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT count(*) FROM %q", p.collection)
	if err := p.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (p *PostgresStore) Close() error {
	if p.pool != nil {
		p.pool.Close()
		log.Println("Postgres connection pool is closed")
	}
	return nil
}
