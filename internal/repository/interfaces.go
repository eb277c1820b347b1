package repository

import (
	"context"
	"errors"

	"github.com/gita-search-api/internal/models"
)

// ErrUnknownCollection is returned when a search names a collection the backend does not hold
var ErrUnknownCollection = errors.New("unknown collection")

// VectorSearchRepository defines operations for vector similarity search
type VectorSearchRepository interface {
	// SearchCollection returns up to limit hits from one collection, ascending by distance
	SearchCollection(ctx context.Context, collection models.Collection, embedding []float64, limit int) ([]models.SearchHit, error)
}

// VerseRepository defines point lookups on the Gita corpus
type VerseRepository interface {
	// GetVerse returns nil without error when the verse does not exist
	GetVerse(ctx context.Context, chapterNo, verseNo int) (*models.Verse, error)

	ListChapters(ctx context.Context) ([]models.Chapter, error)

	// GetChapter returns nil without error when the chapter does not exist
	GetChapter(ctx context.Context, chapterNo int) (*models.Chapter, error)
}

// PYSRepository defines operations on the Yoga Sutra question pairings
type PYSRepository interface {
	// SearchQuestions returns up to limit sutras whose paired question is nearest the embedding
	SearchQuestions(ctx context.Context, embedding []float64, limit int) ([]models.PYSMatch, error)
}
