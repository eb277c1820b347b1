package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds configuration for database and embedding operations
type Config struct {
	// PostgreSQL
	PostgresURI string

	// Embeddings
	EmbeddingProvider   string // "custom", "vertex" or "openai"
	EmbeddingServiceURL string // For custom and openai providers
	EmbeddingModel      string
	EmbeddingAPIKey     string
	EmbeddingDimensions int

	// Vertex AI (when EmbeddingProvider = "vertex")
	GCPProjectID string
	GCPLocation  string
	VertexModel  string
}

// Load reads the schema configuration from the environment
func Load() *Config {
	return &Config{
		// PostgreSQL
		PostgresURI: getEnv("DATABASE_URL", getEnv("POSTGRES_URI", "")),

		// Embeddings
		EmbeddingProvider:   getEnv("EMBEDDING_PROVIDER", "custom"),
		EmbeddingServiceURL: getEnv("EMBEDDING_SERVICE_URL", "http://localhost:8001"),
		EmbeddingModel:      getEnv("EMBEDDING_MODEL", "sentence-transformers/all-MiniLM-L6-v2"),
		EmbeddingAPIKey:     getEnv("EMBEDDING_API_KEY", "none"),
		EmbeddingDimensions: getEnvInt("EMBEDDING_DIMENSIONS", 384),

		// Vertex AI
		GCPProjectID: getEnv("GCP_PROJECT_ID", ""),
		GCPLocation:  getEnv("GCP_LOCATION", "us-central1"),
		VertexModel:  getEnv("VERTEX_MODEL", "text-embedding-005"),
	}
}

// Validate reports missing settings that the service cannot start without
func (c *Config) Validate() error {
	if c.PostgresURI == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	switch c.EmbeddingProvider {
	case "custom", "openai":
	case "vertex":
		if c.GCPProjectID == "" {
			return fmt.Errorf("GCP_PROJECT_ID is required for Vertex AI embeddings")
		}
	default:
		return fmt.Errorf("unknown EMBEDDING_PROVIDER %q", c.EmbeddingProvider)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return i
	}
	return defaultValue
}
