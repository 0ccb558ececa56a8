package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/unifiedmath/server/internal/api/middleware"
	"github.com/unifiedmath/server/internal/logging"
	"github.com/unifiedmath/server/internal/service"
	"github.com/unifiedmath/server/internal/types"
)

const defaultDiscoverLimit = 5

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	log      *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, log *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		log:      log,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Unified Math Tool Service",
		"version": "1.0.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"registry": h.registry.Stats(),
	})
}

// ListServices advertises the operation catalog
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices finds tools relevant to a query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultDiscoverLimit
	}

	tools := h.registry.Discover(req.Query, limit)

	c.JSON(http.StatusOK, gin.H{
		"query": req.Query,
		"tools": tools,
	})
}

// ExecuteService runs a single tool call and returns its result.
//
// Operation-level failures are data: they come back with HTTP 200 and a
// structured error so the caller can distinguish them from transport misuse.
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reqCtx := &types.Context{}
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		reqCtx.RequestID = &id
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, reqCtx)
	if err != nil {
		h.log.Error("tool execution failed",
			zap.String("tool_id", req.ToolID),
			zap.Error(err),
		)
		middleware.ToolExecutions.WithLabelValues(req.ToolID, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	outcome := "success"
	status := http.StatusOK
	if !result.Success && result.Error != nil {
		outcome = string(result.Error.Kind)
		if result.Error.Kind == types.ErrUnknownTool {
			status = http.StatusNotFound
		}
		h.log.Debug("tool call rejected",
			zap.String("tool_id", req.ToolID),
			zap.String("kind", string(result.Error.Kind)),
			zap.String("message", result.Error.Message),
		)
	}
	middleware.ToolExecutions.WithLabelValues(req.ToolID, outcome).Inc()

	c.JSON(status, result)
}
