package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gita-search-api/pkg/schema/config"
)

// ErrDimensionMismatch is returned when the model produces a vector whose length
// differs from the dimensionality of the stored collections.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// EmbeddingsService handles text embedding operations using a pluggable backend
type EmbeddingsService struct {
	embedder   Embedder
	dimensions int
}

// NewEmbeddingsService wraps an embedder. A positive dimensions value enables
// a length check on every produced vector.
func NewEmbeddingsService(embedder Embedder, dimensions int) *EmbeddingsService {
	return &EmbeddingsService{
		embedder:   embedder,
		dimensions: dimensions,
	}
}

// NewEmbedder builds the embedder selected by cfg.EmbeddingProvider
func NewEmbedder(ctx context.Context, cfg *config.Config) (Embedder, error) {
	switch cfg.EmbeddingProvider {
	case "vertex":
		embedder, err := NewVertexEmbedder(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Vertex AI embedder: %w", err)
		}
		return embedder, nil
	case "openai":
		embedder, err := NewOpenAIEmbedder(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI-compatible embedder: %w", err)
		}
		return embedder, nil
	default:
		return NewCustomEmbedder(cfg), nil
	}
}

// EmbedQuery embeds a query for retrieval
func (s *EmbeddingsService) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return s.embed(ctx, query, TaskTypeQuery)
}

// EmbedVerse embeds a verse as a document for retrieval
func (s *EmbeddingsService) EmbedVerse(ctx context.Context, text string) ([]float64, error) {
	return s.embed(ctx, text, TaskTypeDocument)
}

// Close releases the backend client if it holds one
func (s *EmbeddingsService) Close() error {
	if c, ok := s.embedder.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *EmbeddingsService) embed(ctx context.Context, text string, taskType TaskType) ([]float64, error) {
	embedding, err := s.embedder.Embed(ctx, text, taskType)
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}
	if s.dimensions > 0 && len(embedding) != s.dimensions {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(embedding), s.dimensions)
	}
	return embedding, nil
}
