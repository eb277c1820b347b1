package handlers

import (
	"net/http"
	"strconv"

	"github.com/gita-search-api/internal/services"
	"github.com/labstack/echo/v4"
)

// VerseHandler serves direct lookups into the Gita corpus
type VerseHandler struct {
	vectorSearch *services.VectorSearchService
}

// NewVerseHandler creates a new verse handler
func NewVerseHandler(vectorSearch *services.VectorSearchService) *VerseHandler {
	return &VerseHandler{vectorSearch: vectorSearch}
}

// ListChapters handles GET /chapters
func (h *VerseHandler) ListChapters(c echo.Context) error {
	chapters, err := h.vectorSearch.ListChapters(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chapters)
}

// GetChapter handles GET /chapters/:chapter_no
func (h *VerseHandler) GetChapter(c echo.Context) error {
	chapterNo, err := pathInt(c, "chapter_no")
	if err != nil {
		return err
	}

	chapter, err := h.vectorSearch.GetChapter(c.Request().Context(), chapterNo)
	if err != nil {
		return err
	}
	if chapter == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
	}
	return c.JSON(http.StatusOK, chapter)
}

// GetVerse handles GET /verses/:chapter_no/:verse_no
func (h *VerseHandler) GetVerse(c echo.Context) error {
	chapterNo, err := pathInt(c, "chapter_no")
	if err != nil {
		return err
	}
	verseNo, err := pathInt(c, "verse_no")
	if err != nil {
		return err
	}

	verse, err := h.vectorSearch.GetVerse(c.Request().Context(), chapterNo, verseNo)
	if err != nil {
		return err
	}
	if verse == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Verse not found")
	}
	return c.JSON(http.StatusOK, verse)
}

func pathInt(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return n, nil
}

// RegisterRoutes registers verse and chapter routes
func (h *VerseHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/chapters", h.ListChapters)
	g.GET("/chapters/:chapter_no", h.GetChapter)
	g.GET("/verses/:chapter_no/:verse_no", h.GetVerse)
}
