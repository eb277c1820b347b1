package handlers

import (
	"net/http"
	"strings"

	"github.com/gita-search-api/internal/models"
	"github.com/gita-search-api/internal/services"
	"github.com/labstack/echo/v4"
)

const noMatchMessage = "No matching verses found"

// SearchHandler handles search endpoints
type SearchHandler struct {
	vectorSearch *services.VectorSearchService
	pysLimit     int
}

// NewSearchHandler creates a new search handler. pysLimit bounds the
// number of sutras returned by /search_pys.
func NewSearchHandler(vectorSearch *services.VectorSearchService, pysLimit int) *SearchHandler {
	return &SearchHandler{
		vectorSearch: vectorSearch,
		pysLimit:     pysLimit,
	}
}

// Search handles POST /search - best Gita verse with summary
func (h *SearchHandler) Search(c echo.Context) error {
	query, err := bindQuery(c)
	if err != nil {
		return err
	}

	match, err := h.vectorSearch.BestMatch(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if match == nil {
		return echo.NewHTTPError(http.StatusNotFound, noMatchMessage)
	}
	if match.SummaryStatus == models.SummaryFallback {
		c.Logger().Warnf("Serving fallback summary for verse %d.%d", match.ChapterNo, match.VerseNo)
	}

	return c.JSON(http.StatusOK, match)
}

// SearchPYS handles POST /search_pys - nearest Yoga Sutras by question pairing
func (h *SearchHandler) SearchPYS(c echo.Context) error {
	query, err := bindQuery(c)
	if err != nil {
		return err
	}

	matches, err := h.vectorSearch.SearchPYSQuestions(c.Request().Context(), query, h.pysLimit)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, noMatchMessage)
	}

	return c.JSON(http.StatusOK, matches)
}

func bindQuery(c echo.Context) (string, error) {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Query is required")
	}
	return query, nil
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/search", h.Search)
	g.POST("/search_pys", h.SearchPYS)
}
