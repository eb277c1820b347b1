package services

import (
	"context"
	"sync"

	"github.com/gita-search-api/internal/models"
	pkgservices "github.com/gita-search-api/pkg/schema/services"
	"github.com/tmc/langchaingo/llms"
)

type fakeEmbedder struct {
	vec []float64
	err error
}

func (f *fakeEmbedder) Embed(context.Context, string, pkgservices.TaskType) ([]float64, error) {
	return f.vec, f.err
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string, taskType pkgservices.TaskType) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = f.vec
	}
	return out, f.err
}

type fakeVectorRepo struct {
	mu     sync.Mutex
	hits   map[models.Collection][]models.SearchHit
	errs   map[models.Collection]error
	limits map[models.Collection]int
}

func (f *fakeVectorRepo) SearchCollection(_ context.Context, collection models.Collection, _ []float64, limit int) ([]models.SearchHit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.limits == nil {
		f.limits = map[models.Collection]int{}
	}
	f.limits[collection] = limit
	if err := f.errs[collection]; err != nil {
		return nil, err
	}
	hits := f.hits[collection]
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

type fakeVerseRepo struct {
	verses   map[[2]int]models.Verse
	chapters []models.Chapter
	err      error
	lookups  int
}

func (f *fakeVerseRepo) GetVerse(_ context.Context, chapterNo, verseNo int) (*models.Verse, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.verses[[2]int{chapterNo, verseNo}]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (f *fakeVerseRepo) ListChapters(context.Context) ([]models.Chapter, error) {
	return f.chapters, f.err
}

func (f *fakeVerseRepo) GetChapter(_ context.Context, chapterNo int) (*models.Chapter, error) {
	for _, c := range f.chapters {
		if c.ChapterNo == chapterNo {
			return &c, nil
		}
	}
	return nil, f.err
}

type fakePYSRepo struct {
	matches []models.PYSMatch
	limit   int
}

func (f *fakePYSRepo) SearchQuestions(_ context.Context, _ []float64, limit int) ([]models.PYSMatch, error) {
	f.limit = limit
	if len(f.matches) > limit {
		return f.matches[:limit], nil
	}
	return f.matches, nil
}

// fakeLLM implements llms.Model
type fakeLLM struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeLLM) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	for _, m := range messages {
		for _, part := range m.Parts {
			if tp, ok := part.(llms.TextContent); ok {
				f.prompts = append(f.prompts, tp.Text)
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.text}},
	}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}
