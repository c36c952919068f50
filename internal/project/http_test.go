package project_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"portfolio-api/internal/project"
	"portfolio-api/internal/testdb"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *chi.Mux {
	db := testdb.New(t, (*project.Project)(nil))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := project.NewHandler(project.NewService(project.NewRepository(db)), logger)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProjectEndpoints(t *testing.T) {
	router := setupRouter(t)

	t.Run("CreateReturns201", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
			"title":       "Portfolio Site",
			"description": "Personal portfolio backend",
			"start_data":  "2024-01-01T00:00:00Z",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created project.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Portfolio Site", created.Title)
	})

	t.Run("ValidationFailureReturns400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
			"title": "missing description and start date",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedBodyReturns400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GetMissingReturns404WithID", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/projects/9999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "9999")
	})

	t.Run("NonNumericIDReturns400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/projects/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PartialUpdateViaPut", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
			"title":       "To update",
			"description": "v1",
			"start_data":  "2024-01-01T00:00:00Z",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created project.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(t, router, http.MethodPut, "/projects/"+strconv.Itoa(created.ID), map[string]interface{}{
			"description": "v2",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated project.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "v2", updated.Description)
		assert.Equal(t, "To update", updated.Title)
	})

	t.Run("DeleteReturns204ThenGone", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
			"title":       "To delete",
			"description": "gone soon",
			"start_data":  "2024-06-01T00:00:00Z",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created project.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(t, router, http.MethodDelete, "/projects/"+strconv.Itoa(created.ID), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/projects/"+strconv.Itoa(created.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

