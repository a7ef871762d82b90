package domain

const MCPVersion = "1.0"

// ToolCallRequest é o corpo de POST /v1/tools/:name
type ToolCallRequest struct {
	RequestID string         `json:"request_id,omitempty"`
	Arguments map[string]any `json:"arguments"`
}

type MCPParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// MCPRequest é o corpo de POST /v1/mcp
type MCPRequest struct {
	RequestID string    `json:"request_id,omitempty"`
	Params    MCPParams `json:"params"`
}

type ToolCallError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToolCallResponse é a resposta dos dois transportes; MCPVersion só aparece em /v1/mcp
type ToolCallResponse struct {
	MCPVersion string         `json:"mcp_version,omitempty"`
	RequestID  string         `json:"request_id"`
	Result     *ToolResult    `json:"result,omitempty"`
	Error      *ToolCallError `json:"error,omitempty"`
}
