package services

import (
	"context"
	"fmt"

	"github.com/gita-search-api/pkg/schema/config"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIEmbedder implements Embedder against any OpenAI-compatible embeddings API
// (hosted OpenAI, a local text-embeddings-inference server, Ollama).
type OpenAIEmbedder struct {
	embedder embeddings.Embedder
}

// NewOpenAIEmbedder creates an embedder from EMBEDDING_SERVICE_URL and EMBEDDING_MODEL
func NewOpenAIEmbedder(cfg *config.Config) (*OpenAIEmbedder, error) {
	client, err := openai.New(
		openai.WithBaseURL(cfg.EmbeddingServiceURL),
		openai.WithToken(cfg.EmbeddingAPIKey),
		openai.WithEmbeddingModel(cfg.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &OpenAIEmbedder{embedder: embedder}, nil
}

// Embed generates an embedding for a single text
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string, taskType TaskType) ([]float64, error) {
	var (
		vec []float32
		err error
	)
	if taskType == TaskTypeQuery {
		vec, err = e.embedder.EmbedQuery(ctx, text)
	} else {
		var vecs [][]float32
		vecs, err = e.embedder.EmbedDocuments(ctx, []string{text})
		if err == nil {
			if len(vecs) == 0 {
				return nil, fmt.Errorf("no embeddings returned")
			}
			vec = vecs[0]
		}
	}
	if err != nil {
		return nil, fmt.Errorf("openai embedding failed: %w", err)
	}
	return float64Slice(vec), nil
}

// EmbedBatch generates embeddings for multiple texts
func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string, _ TaskType) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	vecs, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("openai embedding failed: %w", err)
	}

	out := make([][]float64, len(vecs))
	for i, v := range vecs {
		out[i] = float64Slice(v)
	}
	return out, nil
}

func float64Slice(f32 []float32) []float64 {
	f64 := make([]float64, len(f32))
	for i, v := range f32 {
		f64[i] = float64(v)
	}
	return f64
}
