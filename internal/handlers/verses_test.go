package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	verseColumns   = []string{"chapter_no", "verse_no", "sanskrit_verse", "speaker_name", "english_translations", "commentary"}
	chapterColumns = []string{"chapter_no", "chapter_heading", "chapter_desc_heading", "chapter_intro"}
)

func TestGetVerse(t *testing.T) {
	s := newTestServer(t)
	s.mock.ExpectQuery(`FROM info`).
		WithArgs(2, 47).
		WillReturnRows(sqlmock.NewRows(verseColumns).
			AddRow(2, 47, "karmaṇy evādhikāras te", "Sri Krishna", "You have a right to perform your duty", "c"))

	rec := s.do(http.MethodGet, "/api/verses/2/47", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Sri Krishna", body["speaker"])
	assert.NotContains(t, body, "translation_embedding")
}

func TestGetVerse_NotFound(t *testing.T) {
	s := newTestServer(t)
	s.mock.ExpectQuery(`FROM info`).WithArgs(19, 1).WillReturnRows(sqlmock.NewRows(verseColumns))

	rec := s.do(http.MethodGet, "/api/verses/19/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Verse not found", decodeError(t, rec))
}

func TestGetVerse_BadKey(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/verses/two/47", "/api/verses/2/0", "/api/verses/-1/3"} {
		rec := s.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestChapters(t *testing.T) {
	s := newTestServer(t)
	s.mock.ExpectQuery(`FROM chapter\s+ORDER BY`).
		WillReturnRows(sqlmock.NewRows(chapterColumns).
			AddRow(1, "Arjuna Viṣhād Yog", "Lamenting the Consequence of War", "i").
			AddRow(2, "Sānkhya Yog", "The Yoga of Analytical Knowledge", "ii"))
	s.mock.ExpectQuery(`FROM chapter\s+WHERE`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(chapterColumns).AddRow(2, "Sānkhya Yog", "The Yoga of Analytical Knowledge", "ii"))
	s.mock.ExpectQuery(`FROM chapter\s+WHERE`).
		WithArgs(40).
		WillReturnRows(sqlmock.NewRows(chapterColumns))

	rec := s.do(http.MethodGet, "/api/chapters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	rec = s.do(http.MethodGet, "/api/chapters/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var chapter map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chapter))
	assert.Equal(t, "Sānkhya Yog", chapter["chapter_heading"])

	rec = s.do(http.MethodGet, "/api/chapters/40", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Chapter not found", decodeError(t, rec))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestPostgresHealth(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	s := newTestServer(t)
	api := s.echo.Group("/probe")
	NewHealthHandler(mockDB).RegisterRoutes(api)

	mock.ExpectPing()
	rec := s.do(http.MethodGet, "/probe/health/postgres", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"connected","database":"postgres"}`, rec.Body.String())

	mock.ExpectPing().WillReturnError(errors.New("no route to host"))
	rec = s.do(http.MethodGet, "/probe/health/postgres", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "no route to host")
}
