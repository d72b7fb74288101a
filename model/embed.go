package model

import (
	"context"
	"log"
	"os"
)

// EmbedderInterface is the embedding capability consumed by the agent and the loader.
type EmbedderInterface interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Embedder wraps the configured embedding backend (only Ollama for now).
type Embedder struct {
	ollamaEmbedder *OllamaEmbedder
}

// NewEmbedder builds the embedder from environment configuration.
// Construction is cheap; the expensive part lives on the Ollama side,
// so one instance is shared for the whole process.
func NewEmbedder() *Embedder {
	ollamaURL := os.Getenv("OLLAMA_EMBEDDING_URL")
	ollamaModel := os.Getenv("OLLAMA_EMBEDDING_MODEL")
	if ollamaModel == "" {
		ollamaModel = "nomic-embed-text"
	}

	log.Printf("[EMBEDDER] using Ollama embeddings (%s)", ollamaModel)

	return &Embedder{
		ollamaEmbedder: NewOllamaEmbedder(ollamaURL, ollamaModel),
	}
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.ollamaEmbedder.Embed(ctx, text)
}
