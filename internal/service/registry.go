package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/unifiedmath/server/internal/types"
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.services.Store(def.ID, provider)
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns all registered services
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	return services
}

// Discover finds relevant tools for a given query
func (r *Registry) Discover(query string, limit int) []types.Tool {
	type scoredTool struct {
		tool  types.Tool
		score float64
	}

	queryLower := strings.ToLower(query)
	var results []scoredTool

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		for _, tool := range def.Tools {
			score := calculateRelevance(queryLower, tool)
			if score > 0 {
				results = append(results, scoredTool{tool: tool, score: score})
			}
		}
		return true
	})

	// Sort by score descending
	sort.Slice(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	// Return top N
	output := make([]types.Tool, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].tool)
	}

	return output
}

// Execute runs a tool by its namespaced ID
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return &types.Result{
			Success: false,
			Error:   types.NewError(types.ErrInvalidRequest, fmt.Sprintf("invalid tool ID format: %s", toolID)),
		}, nil
	}

	serviceID := parts[0]
	provider, ok := r.Get(serviceID)
	if !ok {
		return &types.Result{
			Success: false,
			Error:   types.NewError(types.ErrUnknownTool, fmt.Sprintf("service not found: %s", serviceID)),
		}, nil
	}

	return provider.Execute(ctx, toolID, params, reqCtx)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func calculateRelevance(query string, tool types.Tool) float64 {
	score := 0.0

	// Bare operation name, e.g. "sqrt" for "math.sqrt"
	name := tool.ID
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	if strings.Contains(query, name) || strings.Contains(query, strings.ToLower(tool.Name)) {
		score += 10.0
	}

	// Description words
	for _, word := range strings.Fields(strings.ToLower(tool.Description)) {
		if len(word) > 3 && strings.Contains(query, word) {
			score += 2.0
		}
	}

	return score
}
