package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"elanbot/model"
	"elanbot/store"
	"elanbot/types"
)

// Service runs one full ingestion pass: probe the embedding dimensionality,
// recreate the collection, then embed and upsert every chunk under a
// sequential integer id. It is a batch job, never run next to live traffic;
// readers of a half-written collection would see inconsistent results.
type Service struct {
	logger   *slog.Logger
	store    store.VectorStorer
	embedder model.EmbedderInterface
}

func New(storer store.VectorStorer, embedder model.EmbedderInterface) *Service {
	return &Service{
		logger:   slog.Default(),
		store:    storer,
		embedder: embedder,
	}
}

func (s *Service) Run(ctx context.Context, chunks []types.Chunk) error {
	if len(chunks) == 0 {
		return fmt.Errorf("nothing to ingest")
	}

	start := time.Now()

	// The model fixes the dimensionality; probe it with the first title so
	// the collection schema always matches what ingestion writes.
	probe, err := s.embedder.Embed(ctx, chunks[0].Title)
	if err != nil {
		return fmt.Errorf("failed to probe embedding dimension: %w", err)
	}
	dimension := len(probe)
	s.logger.Info("recreating collection", "dimension", dimension, "chunks", len(chunks))

	if err := s.store.CreateCollection(ctx, dimension); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	for i, chunk := range chunks {
		embedding := probe
		if i > 0 {
			embedding, err = s.embedder.Embed(ctx, chunk.Title)
			if err != nil {
				return fmt.Errorf("failed to embed chunk %d: %w", i, err)
			}
		}

		if err := s.store.Upsert(ctx, int64(i), embedding, chunk); err != nil {
			return fmt.Errorf("failed to upsert chunk %d: %w", i, err)
		}

		if (i+1)%50 == 0 {
			fmt.Printf("Ingested %d/%d chunks\n", i+1, len(chunks))
		}
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("ingestion finished", "stored", count, "took", time.Since(start).String())
	return nil
}
