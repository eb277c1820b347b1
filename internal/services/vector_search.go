package services

import (
	"context"

	"github.com/gita-search-api/internal/models"
	"github.com/gita-search-api/internal/repository"
	pkgservices "github.com/gita-search-api/pkg/schema/services"
	"golang.org/x/sync/errgroup"
)

// VectorSearchService handles semantic search across the Gita and Yoga Sutra collections
type VectorSearchService struct {
	vectorRepo    repository.VectorSearchRepository
	verseRepo     repository.VerseRepository
	pysRepo       repository.PYSRepository
	embeddingsSvc *pkgservices.EmbeddingsService
	summarySvc    *SummaryService
}

// NewVectorSearchService creates a new vector search service
func NewVectorSearchService(
	vectorRepo repository.VectorSearchRepository,
	verseRepo repository.VerseRepository,
	pysRepo repository.PYSRepository,
	embeddingsSvc *pkgservices.EmbeddingsService,
	summarySvc *SummaryService,
) *VectorSearchService {
	return &VectorSearchService{
		vectorRepo:    vectorRepo,
		verseRepo:     verseRepo,
		pysRepo:       pysRepo,
		embeddingsSvc: embeddingsSvc,
		summarySvc:    summarySvc,
	}
}

// SearchAcrossCollections embeds a query and returns up to limit hits per
// collection, merged and sorted by distance.
func (s *VectorSearchService) SearchAcrossCollections(ctx context.Context, query string, limit int) ([]models.SearchHit, error) {
	groups, err := s.searchCollections(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return MergeHits(groups...), nil
}

// BestMatch finds the single closest verse across all collections, loads its
// details and attaches a summary. It returns nil without error when nothing
// matches or the matched verse no longer exists.
func (s *VectorSearchService) BestMatch(ctx context.Context, query string) (*models.VerseMatch, error) {
	groups, err := s.searchCollections(ctx, query, 1)
	if err != nil {
		return nil, err
	}

	best, ok := MergeBest(groups...)
	if !ok {
		return nil, nil
	}

	verse, err := s.verseRepo.GetVerse(ctx, best.ChapterNo, best.VerseNo)
	if err != nil {
		return nil, err
	}
	if verse == nil {
		return nil, nil
	}

	summary := s.summarySvc.Summarize(ctx, verse.Translation, verse.Commentary)

	return &models.VerseMatch{
		Verse:           *verse,
		SimilarityScore: best.Distance,
		MatchSource:     best.Source,
		Summary:         summary.Text,
		SummaryStatus:   summary.Status,
	}, nil
}

// SearchPYSQuestions returns the sutras whose paired questions are nearest the query
func (s *VectorSearchService) SearchPYSQuestions(ctx context.Context, query string, limit int) ([]models.PYSMatch, error) {
	embedding, err := s.embeddingsSvc.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.pysRepo.SearchQuestions(ctx, embedding, limit)
}

// GetVerse looks up a single verse; nil means it does not exist
func (s *VectorSearchService) GetVerse(ctx context.Context, chapterNo, verseNo int) (*models.Verse, error) {
	return s.verseRepo.GetVerse(ctx, chapterNo, verseNo)
}

// ListChapters returns every chapter header
func (s *VectorSearchService) ListChapters(ctx context.Context) ([]models.Chapter, error) {
	return s.verseRepo.ListChapters(ctx)
}

// GetChapter looks up a single chapter; nil means it does not exist
func (s *VectorSearchService) GetChapter(ctx context.Context, chapterNo int) (*models.Chapter, error) {
	return s.verseRepo.GetChapter(ctx, chapterNo)
}

// searchCollections embeds the query once and runs the per-collection searches
// concurrently. Groups come back in models.Collections order regardless of
// which search finishes first.
func (s *VectorSearchService) searchCollections(ctx context.Context, query string, limit int) ([][]models.SearchHit, error) {
	embedding, err := s.embeddingsSvc.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	groups := make([][]models.SearchHit, len(models.Collections))
	g, gctx := errgroup.WithContext(ctx)
	for i, collection := range models.Collections {
		g.Go(func() error {
			hits, err := s.vectorRepo.SearchCollection(gctx, collection, embedding, limit)
			if err != nil {
				return err
			}
			groups[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return groups, nil
}
