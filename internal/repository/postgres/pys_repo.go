package postgres

import (
	"context"
	"fmt"

	"github.com/gita-search-api/internal/models"
	"github.com/gita-search-api/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
)

// PYSRepository implements repository.PYSRepository for PostgreSQL with pgvector
type PYSRepository struct {
	db *sqlx.DB
}

// NewPYSRepository creates a new PostgreSQL Yoga Sutra repository
func NewPYSRepository(db *sqlx.DB) repository.PYSRepository {
	return &PYSRepository{db: db}
}

// SearchQuestions finds the sutras whose paired question embeddings are nearest the query
func (r *PYSRepository) SearchQuestions(ctx context.Context, embedding []float64, limit int) ([]models.PYSMatch, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results := []models.PYSMatch{}
	err := r.db.SelectContext(ctx, &results, `
		SELECT chapter_no, verse_no,
		       COALESCE(sanskrit, '') AS sanskrit,
		       COALESCE(translation, '') AS translation
		FROM pys_question
		WHERE question_embedding IS NOT NULL
		ORDER BY question_embedding <=> $1::vector
		LIMIT $2
	`, pgvector.NewVector(float32Slice(embedding)), limit)
	if err != nil {
		return nil, fmt.Errorf("vector search pys questions: %w", err)
	}
	return results, nil
}
