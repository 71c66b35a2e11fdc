package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postcraft/postcraft-gateway/internal/projects/repository"
	"github.com/postcraft/postcraft-gateway/internal/projects/service"
	"github.com/postcraft/postcraft-gateway/internal/storage/docstore"
)

type generationStatus bool

func (g generationStatus) Configured() bool { return bool(g) }

type listResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Count    int    `json:"count"`
	Projects []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		LastUpdated string `json:"last_updated"`
	} `json:"projects"`
}

func newRouter(store docstore.Store, generation bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewProjectService(repository.NewProjectRepository(docstore.NewHolder("projects", store)))
	New(svc, generationStatus(generation)).Register(r)
	return r
}

func get(t *testing.T, r *gin.Engine, path string) (int, []byte) {
	t.Helper()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr.Code, rr.Body.Bytes()
}

func TestGetProjects(t *testing.T) {
	store := docstore.NewMemoryStore("demo")
	store.Add("projects", docstore.Document{ID: "a", Data: map[string]interface{}{"title": "Old", "last_updated": "2024-01-01"}})
	store.Add("projects", docstore.Document{ID: "b", Data: map[string]interface{}{"title": "", "last_updated": "2025-01-01"}})
	store.Add("projects", docstore.Document{ID: "c", Data: map[string]interface{}{"title": "New", "last_updated": "2024-03-01"}})

	code, raw := get(t, newRouter(store, true), "/get_projects")
	require.Equal(t, http.StatusOK, code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, "c", resp.Projects[0].ID)
	assert.Equal(t, "a", resp.Projects[1].ID)
}

func TestGetProjectsWithoutStore(t *testing.T) {
	code, raw := get(t, newRouter(nil, true), "/get_projects")
	assert.Equal(t, http.StatusServiceUnavailable, code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestGetProjectsStoreError(t *testing.T) {
	store := docstore.NewMemoryStore("demo")
	store.FailWith(errors.New("permission denied"))

	code, raw := get(t, newRouter(store, true), "/get_projects")
	assert.Equal(t, http.StatusInternalServerError, code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "permission denied")
}

func TestProjectsHealth(t *testing.T) {
	store := docstore.NewMemoryStore("demo")
	store.Add("projects", docstore.Document{ID: "a", Data: map[string]interface{}{"title": "One"}})

	code, raw := get(t, newRouter(store, true), "/projects_health")
	require.Equal(t, http.StatusOK, code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["firebase_connected"])
	assert.Equal(t, true, resp["gemini_connected"])
	assert.EqualValues(t, 1, resp["projects_count"])
}

func TestProjectsHealthDegraded(t *testing.T) {
	code, raw := get(t, newRouter(nil, false), "/projects_health")
	require.Equal(t, http.StatusOK, code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, false, resp["firebase_connected"])
	assert.Equal(t, false, resp["gemini_connected"])
	assert.EqualValues(t, 0, resp["projects_count"])
}
