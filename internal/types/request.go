package types

// ExecuteRequest is the invocation payload delivered by the host boundary.
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// DiscoverRequest asks the registry for operations relevant to a query.
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}
