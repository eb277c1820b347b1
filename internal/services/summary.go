package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gita-search-api/internal/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/mistral"
	"github.com/tmc/langchaingo/llms/openai"
)

// FallbackSummary replaces the summary whenever the model cannot produce one
const FallbackSummary = "Summary generation failed. Please refer to the translation and commentary above."

const summaryPromptTemplate = `Given this verse from the Bhagavad Gita:

Translation:
%s

Commentary:
%s

Please provide a concise summary (2-3 sentences) of the main teaching or message from this verse.`

var errEmptySummary = errors.New("model returned an empty summary")

// LLMConfig selects and configures the hosted text model
type LLMConfig struct {
	Provider string // "mistral" or "openai"
	APIKey   string
	Model    string
	BaseURL  string // OpenAI-compatible endpoint; empty uses the provider default
}

// NewLLM builds the langchaingo model for the configured provider
func NewLLM(cfg LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "", "mistral":
		llm, err := mistral.New(
			mistral.WithAPIKey(cfg.APIKey),
			mistral.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("create mistral client: %w", err)
		}
		return llm, nil
	case "openai":
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("create openai client: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

// SummaryService asks a hosted model for a short explanation of a verse
type SummaryService struct {
	llm llms.Model
}

// NewSummaryService creates a summary service over a langchaingo model
func NewSummaryService(llm llms.Model) *SummaryService {
	return &SummaryService{llm: llm}
}

// Summarize never fails: any model error yields the fallback text with
// Status set to models.SummaryFallback. No retry is attempted.
func (s *SummaryService) Summarize(ctx context.Context, translation, commentary string) models.Summary {
	prompt := fmt.Sprintf(summaryPromptTemplate, translation, commentary)

	text, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt)
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = errEmptySummary
		}
	}
	if err != nil {
		log.Printf("Summary generation failed, using fallback: %v", err)
		return models.Summary{
			Text:   FallbackSummary,
			Status: models.SummaryFallback,
			Err:    err,
		}
	}

	return models.Summary{
		Text:   text,
		Status: models.SummaryGenerated,
	}
}
