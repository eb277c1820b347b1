package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gita-search-api/internal/models"
	"github.com/gita-search-api/internal/repository"
	"github.com/jmoiron/sqlx"
)

// VerseRepository implements repository.VerseRepository for PostgreSQL
type VerseRepository struct {
	db *sqlx.DB
}

// NewVerseRepository creates a new PostgreSQL verse repository
func NewVerseRepository(db *sqlx.DB) repository.VerseRepository {
	return &VerseRepository{db: db}
}

// GetVerse fetches a verse by its (chapter, verse) key
func (r *VerseRepository) GetVerse(ctx context.Context, chapterNo, verseNo int) (*models.Verse, error) {
	var v models.Verse
	err := r.db.GetContext(ctx, &v, `
		SELECT chapter_no, verse_no,
		       COALESCE(sanskrit_verse, '') AS sanskrit_verse,
		       COALESCE(speaker_name, '') AS speaker_name,
		       COALESCE(english_translations, '') AS english_translations,
		       COALESCE(commentary, '') AS commentary
		FROM info
		WHERE chapter_no = $1 AND verse_no = $2
	`, chapterNo, verseNo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get verse %d.%d: %w", chapterNo, verseNo, err)
	}
	return &v, nil
}

// ListChapters returns every chapter ordered by number
func (r *VerseRepository) ListChapters(ctx context.Context) ([]models.Chapter, error) {
	chapters := []models.Chapter{}
	err := r.db.SelectContext(ctx, &chapters, `
		SELECT chapter_no,
		       COALESCE(chapter_heading, '') AS chapter_heading,
		       COALESCE(chapter_desc_heading, '') AS chapter_desc_heading,
		       COALESCE(chapter_intro, '') AS chapter_intro
		FROM chapter
		ORDER BY chapter_no
	`)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	return chapters, nil
}

// GetChapter fetches one chapter header
func (r *VerseRepository) GetChapter(ctx context.Context, chapterNo int) (*models.Chapter, error) {
	var c models.Chapter
	err := r.db.GetContext(ctx, &c, `
		SELECT chapter_no,
		       COALESCE(chapter_heading, '') AS chapter_heading,
		       COALESCE(chapter_desc_heading, '') AS chapter_desc_heading,
		       COALESCE(chapter_intro, '') AS chapter_intro
		FROM chapter
		WHERE chapter_no = $1
	`, chapterNo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chapter %d: %w", chapterNo, err)
	}
	return &c, nil
}
