package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// API Settings
	APITitle   string
	APIVersion string
	APIPrefix  string
	Port       string

	// CORS
	CORSOrigins []string

	// Search
	PYSSearchLimit int

	// Summary LLM: "mistral" or "openai"
	LLMProvider string
	LLMAPIKey   string
	LLMModel    string
	LLMBaseURL  string

	// Vector Search Backend: "pgvector" or "vertex"
	VectorBackend string

	// Vertex AI Vector Search settings (used when VectorBackend = "vertex")
	VertexProjectID            string
	VertexLocation             string
	VertexIndexEndpointID      string
	VertexPublicEndpointDomain string
	VertexQuestionsIndexID     string
	VertexTranslationsIndexID  string
	VertexCommentariesIndexID  string
}

// Load reads the application configuration from the environment
func Load() *Config {
	return &Config{
		APITitle:    getEnv("API_TITLE", "Gita Search API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api"),
		Port:        getEnv("PORT", "5000"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "*")),

		PYSSearchLimit: getEnvInt("PYS_SEARCH_LIMIT", 5),

		LLMProvider: getEnv("LLM_PROVIDER", "mistral"),
		LLMAPIKey:   getEnv("MISTRAL_API_KEY", getEnv("LLM_API_KEY", "")),
		LLMModel:    getEnv("LLM_MODEL", "mistral-large-latest"),
		LLMBaseURL:  getEnv("LLM_BASE_URL", ""),

		// Vector search backend configuration
		VectorBackend: getEnv("VECTOR_BACKEND", "pgvector"), // "pgvector" or "vertex"

		// Vertex AI settings
		VertexProjectID:            getEnv("VERTEX_PROJECT_ID", ""),
		VertexLocation:             getEnv("VERTEX_LOCATION", "us-central1"),
		VertexIndexEndpointID:      getEnv("VERTEX_INDEX_ENDPOINT_ID", ""),
		VertexPublicEndpointDomain: getEnv("VERTEX_PUBLIC_ENDPOINT_DOMAIN", ""),
		VertexQuestionsIndexID:     getEnv("VERTEX_QUESTIONS_INDEX_ID", ""),
		VertexTranslationsIndexID:  getEnv("VERTEX_TRANSLATIONS_INDEX_ID", ""),
		VertexCommentariesIndexID:  getEnv("VERTEX_COMMENTARIES_INDEX_ID", ""),
	}
}

// Validate reports missing settings that the service cannot start without
func (c *Config) Validate() error {
	if c.LLMAPIKey == "" {
		return fmt.Errorf("MISTRAL_API_KEY is required")
	}
	switch c.LLMProvider {
	case "mistral", "openai":
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}
	if c.PYSSearchLimit <= 0 {
		return fmt.Errorf("PYS_SEARCH_LIMIT must be positive, got %d", c.PYSSearchLimit)
	}

	switch c.VectorBackend {
	case "pgvector":
	case "vertex":
		missing := []string{}
		for name, value := range map[string]string{
			"VERTEX_PROJECT_ID":            c.VertexProjectID,
			"VERTEX_INDEX_ENDPOINT_ID":     c.VertexIndexEndpointID,
			"VERTEX_QUESTIONS_INDEX_ID":    c.VertexQuestionsIndexID,
			"VERTEX_TRANSLATIONS_INDEX_ID": c.VertexTranslationsIndexID,
			"VERTEX_COMMENTARIES_INDEX_ID": c.VertexCommentariesIndexID,
		} {
			if value == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			return fmt.Errorf("vertex backend requires %s", strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("unknown VECTOR_BACKEND %q", c.VectorBackend)
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

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
