package postgres

import (
	"context"
	"fmt"

	"github.com/gita-search-api/internal/models"
	"github.com/gita-search-api/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
)

// defaultSearchLimit applies when a caller passes a non-positive limit
const defaultSearchLimit = 5

// collectionQueries maps each collection to its nearest-neighbour query.
// <=> is pgvector's cosine distance, so lower is closer.
var collectionQueries = map[models.Collection]string{
	models.CollectionQuestion: `
		SELECT chapter_no, verse_no, question_embedding <=> $1::vector AS distance
		FROM questions
		WHERE question_embedding IS NOT NULL
		ORDER BY question_embedding <=> $1::vector
		LIMIT $2`,
	models.CollectionTranslation: `
		SELECT chapter_no, verse_no, translation_embedding <=> $1::vector AS distance
		FROM info
		WHERE translation_embedding IS NOT NULL
		ORDER BY translation_embedding <=> $1::vector
		LIMIT $2`,
	models.CollectionCommentary: `
		SELECT chapter_no, verse_no, commentary_embedding <=> $1::vector AS distance
		FROM info
		WHERE commentary_embedding IS NOT NULL
		ORDER BY commentary_embedding <=> $1::vector
		LIMIT $2`,
}

// VectorSearchRepository implements repository.VectorSearchRepository for PostgreSQL with pgvector
type VectorSearchRepository struct {
	db *sqlx.DB
}

// NewVectorSearchRepository creates a new PostgreSQL vector search repository
func NewVectorSearchRepository(db *sqlx.DB) repository.VectorSearchRepository {
	return &VectorSearchRepository{db: db}
}

// SearchCollection performs vector similarity search on one collection using pgvector
func (r *VectorSearchRepository) SearchCollection(ctx context.Context, collection models.Collection, embedding []float64, limit int) ([]models.SearchHit, error) {
	query, ok := collectionQueries[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %q", repository.ErrUnknownCollection, collection)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	rows, err := r.db.QueryxContext(ctx, query, pgvector.NewVector(float32Slice(embedding)), limit)
	if err != nil {
		return nil, fmt.Errorf("vector search %s: %w", collection, err)
	}
	defer rows.Close()

	results := []models.SearchHit{}
	for rows.Next() {
		hit := models.SearchHit{Source: collection}
		if err := rows.Scan(&hit.ChapterNo, &hit.VerseNo, &hit.Distance); err != nil {
			return nil, fmt.Errorf("scan %s hit: %w", collection, err)
		}
		results = append(results, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s hits: %w", collection, err)
	}
	return results, nil
}

// float32Slice converts []float64 to []float32 for pgvector
func float32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}
