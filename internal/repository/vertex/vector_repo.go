package vertex

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/gita-search-api/internal/models"
	"github.com/gita-search-api/internal/repository"
	"google.golang.org/api/option"
)

// Ensure VectorSearchRepository implements repository.VectorSearchRepository
var _ repository.VectorSearchRepository = (*VectorSearchRepository)(nil)

const defaultNeighborCount = 5

// Config holds Vertex AI Vector Search configuration
type Config struct {
	ProjectID            string // GCP project ID
	Location             string // e.g., "us-central1"
	IndexEndpointID      string // Index endpoint that hosts every collection index
	PublicEndpointDomain string // Public endpoint domain for queries (e.g., "123.us-central1-456.vdb.vertexai.goog")

	// DeployedIndexIDs maps each collection to the deployed index holding its vectors.
	// Datapoint IDs are "<chapter>:<verse>", with a trailing ":<question_id>" for questions.
	DeployedIndexIDs map[models.Collection]string
}

// VectorSearchRepository implements repository.VectorSearchRepository using Vertex AI Vector Search
type VectorSearchRepository struct {
	config      Config
	matchClient *aiplatform.MatchClient
}

// NewVectorSearchRepository creates a new Vertex AI vector search repository
func NewVectorSearchRepository(ctx context.Context, config Config) (*VectorSearchRepository, error) {
	// For public endpoints, use the public domain; otherwise use regional endpoint
	var endpoint string
	if config.PublicEndpointDomain != "" {
		endpoint = fmt.Sprintf("%s:443", config.PublicEndpointDomain)
	} else {
		endpoint = fmt.Sprintf("%s-aiplatform.googleapis.com:443", config.Location)
	}

	matchClient, err := aiplatform.NewMatchClient(ctx, option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create match client: %w", err)
	}

	return &VectorSearchRepository{
		config:      config,
		matchClient: matchClient,
	}, nil
}

// Close closes the Vertex AI client
func (r *VectorSearchRepository) Close() error {
	if r.matchClient != nil {
		return r.matchClient.Close()
	}
	return nil
}

// SearchCollection performs vector similarity search against the collection's deployed index
func (r *VectorSearchRepository) SearchCollection(ctx context.Context, collection models.Collection, embedding []float64, limit int) ([]models.SearchHit, error) {
	deployedIndexID := r.config.DeployedIndexIDs[collection]
	if deployedIndexID == "" {
		return nil, fmt.Errorf("%w: %q has no deployed index", repository.ErrUnknownCollection, collection)
	}
	if limit <= 0 {
		limit = defaultNeighborCount
	}

	featureVector := make([]float32, len(embedding))
	for i, v := range embedding {
		featureVector[i] = float32(v)
	}

	resp, err := r.matchClient.FindNeighbors(ctx, &aiplatformpb.FindNeighborsRequest{
		IndexEndpoint:   r.indexEndpoint(),
		DeployedIndexId: deployedIndexID,
		Queries: []*aiplatformpb.FindNeighborsRequest_Query{
			{
				Datapoint: &aiplatformpb.IndexDatapoint{
					FeatureVector: featureVector,
				},
				NeighborCount: int32(limit),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("find neighbors in %s: %w", collection, err)
	}

	return neighborsToHits(collection, resp)
}

func (r *VectorSearchRepository) indexEndpoint() string {
	return fmt.Sprintf(
		"projects/%s/locations/%s/indexEndpoints/%s",
		r.config.ProjectID,
		r.config.Location,
		r.config.IndexEndpointID,
	)
}

// neighborsToHits converts the first query's neighbours into hits ordered by distance.
// The index must be built with COSINE_DISTANCE so scores match pgvector's <=>.
func neighborsToHits(collection models.Collection, resp *aiplatformpb.FindNeighborsResponse) ([]models.SearchHit, error) {
	hits := []models.SearchHit{}
	if len(resp.GetNearestNeighbors()) == 0 {
		return hits, nil
	}

	for _, neighbor := range resp.GetNearestNeighbors()[0].GetNeighbors() {
		chapterNo, verseNo, err := parseDatapointID(neighbor.GetDatapoint().GetDatapointId())
		if err != nil {
			return nil, err
		}
		hits = append(hits, models.SearchHit{
			ChapterNo: chapterNo,
			VerseNo:   verseNo,
			Distance:  neighbor.GetDistance(),
			Source:    collection,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits, nil
}

// parseDatapointID reads "<chapter>:<verse>[:<question_id>]"
func parseDatapointID(id string) (int, int, error) {
	parts := strings.Split(id, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, fmt.Errorf("malformed datapoint id %q", id)
	}
	chapterNo, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed chapter in datapoint id %q: %w", id, err)
	}
	verseNo, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed verse in datapoint id %q: %w", id, err)
	}
	return chapterNo, verseNo, nil
}
