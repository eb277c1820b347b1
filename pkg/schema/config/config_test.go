package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_URI", "")
	t.Setenv("EMBEDDING_PROVIDER", "")
	t.Setenv("EMBEDDING_DIMENSIONS", "")

	cfg := Load()
	assert.Equal(t, "", cfg.PostgresURI)
	assert.Equal(t, "custom", cfg.EmbeddingProvider)
	assert.Equal(t, "sentence-transformers/all-MiniLM-L6-v2", cfg.EmbeddingModel)
	assert.Equal(t, 384, cfg.EmbeddingDimensions)
}

func TestLoad_PostgresURIAlias(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_URI", "postgres://alias")
	assert.Equal(t, "postgres://alias", Load().PostgresURI)

	t.Setenv("DATABASE_URL", "postgres://primary")
	assert.Equal(t, "postgres://primary", Load().PostgresURI)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("EMBEDDING_DIMENSIONS", "many")
	assert.Equal(t, 384, Load().EmbeddingDimensions)
}

func TestValidate(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		cfg := &Config{EmbeddingProvider: "custom"}
		require.Error(t, cfg.Validate())
	})

	t.Run("vertex needs project", func(t *testing.T) {
		cfg := &Config{PostgresURI: "postgres://x", EmbeddingProvider: "vertex"}
		assert.ErrorContains(t, cfg.Validate(), "GCP_PROJECT_ID")

		cfg.GCPProjectID = "proj"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &Config{PostgresURI: "postgres://x", EmbeddingProvider: "word2vec"}
		assert.ErrorContains(t, cfg.Validate(), "word2vec")
	})

	t.Run("custom ok", func(t *testing.T) {
		cfg := &Config{PostgresURI: "postgres://x", EmbeddingProvider: "custom"}
		assert.NoError(t, cfg.Validate())
	})
}
