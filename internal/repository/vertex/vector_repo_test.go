package vertex

import (
	"context"
	"testing"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/gita-search-api/internal/models"
	"github.com/gita-search-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatapointID(t *testing.T) {
	tests := []struct {
		id      string
		chapter int
		verse   int
		wantErr bool
	}{
		{id: "2:47", chapter: 2, verse: 47},
		{id: "18:66:1203", chapter: 18, verse: 66},
		{id: "2", wantErr: true},
		{id: "a:1", wantErr: true},
		{id: "1:b", wantErr: true},
		{id: "1:2:3:4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			chapter, verse, err := parseDatapointID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.chapter, chapter)
			assert.Equal(t, tt.verse, verse)
		})
	}
}

func neighbor(id string, distance float64) *aiplatformpb.FindNeighborsResponse_Neighbor {
	return &aiplatformpb.FindNeighborsResponse_Neighbor{
		Datapoint: &aiplatformpb.IndexDatapoint{DatapointId: id},
		Distance:  distance,
	}
}

func TestNeighborsToHits(t *testing.T) {
	resp := &aiplatformpb.FindNeighborsResponse{
		NearestNeighbors: []*aiplatformpb.FindNeighborsResponse_NearestNeighbors{
			{
				Neighbors: []*aiplatformpb.FindNeighborsResponse_Neighbor{
					neighbor("3:8", 0.4),
					neighbor("2:47:12", 0.1),
					neighbor("4:7:2", 0.4),
				},
			},
		},
	}

	hits, err := neighborsToHits(models.CollectionQuestion, resp)
	require.NoError(t, err)
	assert.Equal(t, []models.SearchHit{
		{ChapterNo: 2, VerseNo: 47, Distance: 0.1, Source: models.CollectionQuestion},
		{ChapterNo: 3, VerseNo: 8, Distance: 0.4, Source: models.CollectionQuestion},
		{ChapterNo: 4, VerseNo: 7, Distance: 0.4, Source: models.CollectionQuestion},
	}, hits)
}

func TestNeighborsToHits_Empty(t *testing.T) {
	hits, err := neighborsToHits(models.CollectionTranslation, &aiplatformpb.FindNeighborsResponse{})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestNeighborsToHits_BadID(t *testing.T) {
	resp := &aiplatformpb.FindNeighborsResponse{
		NearestNeighbors: []*aiplatformpb.FindNeighborsResponse_NearestNeighbors{
			{Neighbors: []*aiplatformpb.FindNeighborsResponse_Neighbor{neighbor("verse-1", 0.2)}},
		},
	}
	_, err := neighborsToHits(models.CollectionCommentary, resp)
	assert.Error(t, err)
}

func TestSearchCollection_NoDeployedIndex(t *testing.T) {
	repo := &VectorSearchRepository{config: Config{
		DeployedIndexIDs: map[models.Collection]string{models.CollectionQuestion: "q"},
	}}
	_, err := repo.SearchCollection(context.Background(), models.CollectionCommentary, []float64{1}, 1)
	assert.ErrorIs(t, err, repository.ErrUnknownCollection)
}

func TestIndexEndpoint(t *testing.T) {
	repo := &VectorSearchRepository{config: Config{ProjectID: "p", Location: "us-central1", IndexEndpointID: "123"}}
	assert.Equal(t, "projects/p/locations/us-central1/indexEndpoints/123", repo.indexEndpoint())
}
