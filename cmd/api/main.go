package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gita-search-api/internal/config"
	"github.com/gita-search-api/internal/handlers"
	"github.com/gita-search-api/internal/middleware"
	"github.com/gita-search-api/internal/models"
	"github.com/gita-search-api/internal/repository"
	"github.com/gita-search-api/internal/repository/postgres"
	"github.com/gita-search-api/internal/repository/vertex"
	"github.com/gita-search-api/internal/services"
	schemaconfig "github.com/gita-search-api/pkg/schema/config"
	"github.com/gita-search-api/pkg/schema/db"
	pkgservices "github.com/gita-search-api/pkg/schema/services"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := config.Load()
	schemaCfg := schemaconfig.Load()
	if err := schemaCfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize PostgreSQL
	pgDB, err := db.OpenPostgres(ctx, schemaCfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	log.Println("Database initialization complete")

	verseRepo := postgres.NewVerseRepository(pgDB)
	pysRepo := postgres.NewPYSRepository(pgDB)

	// Create vector search repository based on configuration
	var vectorRepo repository.VectorSearchRepository
	var vertexRepo *vertex.VectorSearchRepository // For cleanup

	switch cfg.VectorBackend {
	case "vertex":
		log.Println("Using Vertex AI Vector Search backend")
		vertexRepo, err = vertex.NewVectorSearchRepository(ctx, vertex.Config{
			ProjectID:            cfg.VertexProjectID,
			Location:             cfg.VertexLocation,
			IndexEndpointID:      cfg.VertexIndexEndpointID,
			PublicEndpointDomain: cfg.VertexPublicEndpointDomain,
			DeployedIndexIDs: map[models.Collection]string{
				models.CollectionQuestion:    cfg.VertexQuestionsIndexID,
				models.CollectionTranslation: cfg.VertexTranslationsIndexID,
				models.CollectionCommentary:  cfg.VertexCommentariesIndexID,
			},
		})
		if err != nil {
			log.Fatalf("Failed to create Vertex AI vector repository: %v", err)
		}
		vectorRepo = vertexRepo
	default:
		log.Println("Using pgvector backend")
		vectorRepo = postgres.NewVectorSearchRepository(pgDB)
	}

	// Create services
	embedder, err := pkgservices.NewEmbedder(ctx, schemaCfg)
	if err != nil {
		log.Fatalf("Failed to initialize embeddings service: %v", err)
	}
	embeddingsSvc := pkgservices.NewEmbeddingsService(embedder, schemaCfg.EmbeddingDimensions)
	log.Printf("Using %s embeddings (%s)", schemaCfg.EmbeddingProvider, schemaCfg.EmbeddingModel)

	llm, err := services.NewLLM(services.LLMConfig{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.LLMAPIKey,
		Model:    cfg.LLMModel,
		BaseURL:  cfg.LLMBaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize summary model: %v", err)
	}

	vectorSearchSvc := services.NewVectorSearchService(
		vectorRepo,
		verseRepo,
		pysRepo,
		embeddingsSvc,
		services.NewSummaryService(llm),
	)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	handlers.NewHealthHandler(pgDB).RegisterRoutes(api)
	handlers.NewSearchHandler(vectorSearchSvc, cfg.PYSSearchLimit).RegisterRoutes(api)
	handlers.NewVerseHandler(vectorSearchSvc).RegisterRoutes(api)

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting %s v%s on %s", cfg.APITitle, cfg.APIVersion, addr)
		if err := e.Start(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := embeddingsSvc.Close(); err != nil {
		log.Printf("Error closing embeddings client: %v", err)
	}

	// Close Vertex AI client if used
	if vertexRepo != nil {
		if err := vertexRepo.Close(); err != nil {
			log.Printf("Error closing Vertex AI client: %v", err)
		}
	}

	if err := pgDB.Close(); err != nil {
		log.Printf("Error closing PostgreSQL: %v", err)
	}

	log.Println("Server stopped")
}
