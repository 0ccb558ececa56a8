package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedmath/server/internal/logging"
	mathprovider "github.com/unifiedmath/server/internal/providers/math"
	"github.com/unifiedmath/server/internal/service"
	"github.com/unifiedmath/server/internal/types"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(mathprovider.NewProvider()))

	handlers := NewHandlers(registry, logging.NewDefault())

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)
	return router
}

func execute(t *testing.T, router *gin.Engine, body interface{}) (*httptest.ResponseRecorder, types.Result) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/services/execute", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var result types.Result
	if w.Code == http.StatusOK || w.Code == http.StatusNotFound {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	}
	return w, result
}

func TestExecuteHypotenuse(t *testing.T) {
	router := newTestRouter(t)

	w, result := execute(t, router, types.ExecuteRequest{
		ToolID: "math.hypotenuse",
		Params: map[string]interface{}{"a": 3, "b": 4},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, result.Success)
	assert.Equal(t, 5.0, result.Data["result"])
}

func TestExecuteDistance3D(t *testing.T) {
	router := newTestRouter(t)

	w, result := execute(t, router, types.ExecuteRequest{
		ToolID: "math.distance_3d",
		Params: map[string]interface{}{
			"x1": 0, "y1": 0, "z1": 0,
			"x2": 1, "y2": 2, "z2": 2,
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, result.Success)
	assert.InDelta(t, 3.0, result.Data["result"].(float64), 1e-12)
}

func TestExecuteOperationFailureIsData(t *testing.T) {
	router := newTestRouter(t)

	w, result := execute(t, router, types.ExecuteRequest{
		ToolID: "math.mean",
		Params: map[string]interface{}{"data": []interface{}{}},
	})

	// Caller-input errors come back 200 with a structured failure.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, types.ErrEmptyInput, result.Error.Kind)
}

func TestExecuteOverflowingResultIsData(t *testing.T) {
	router := newTestRouter(t)

	w, result := execute(t, router, types.ExecuteRequest{
		ToolID: "math.power",
		Params: map[string]interface{}{"base": 1e300, "exponent": 2},
	})

	// A result that overflows float64 must still produce a well-formed
	// response body, not break JSON encoding.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.Bytes())
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, types.ErrOutOfRange, result.Error.Kind)
}

func TestExecuteUnknownTool(t *testing.T) {
	router := newTestRouter(t)

	w, result := execute(t, router, types.ExecuteRequest{
		ToolID: "math.bogus",
		Params: map[string]interface{}{},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, result.Error)
	assert.Equal(t, types.ErrUnknownTool, result.Error.Kind)
}

func TestExecuteMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/services/execute", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListServices(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services []types.Service `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "math", resp.Services[0].ID)
	assert.NotEmpty(t, resp.Services[0].Tools)
}

func TestDiscoverServices(t *testing.T) {
	router := newTestRouter(t)

	payload, err := json.Marshal(types.DiscoverRequest{Query: "calculate the square root", Limit: 3})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/services/discover", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tools []types.Tool `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Tools)
	assert.LessOrEqual(t, len(resp.Tools), 3)
	assert.Equal(t, "math.sqrt", resp.Tools[0].ID)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
