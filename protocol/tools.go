// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

// --- Tooling Structures and Messages (Schema 2025-03-26) ---

// Tool defines a tool offered by the server.
// InputSchema is a JSON Schema object and is kept untyped.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	InputSchema map[string]interface{} `json:"inputSchema,omitempty"`
}

// ListToolsResult defines the result payload for a successful 'tools/list' response.
type ListToolsResult struct {
	Tools      []Tool `json:"tools"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// CallToolParams defines the parameters for a 'tools/call' request.
type CallToolParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// CallToolResult defines the result payload for a successful 'tools/call' response.
// Content must be present but its shape is not enforced; use Items for the
// typed list form.
type CallToolResult struct {
	Content interface{} `json:"content"`
	IsError bool        `json:"isError,omitempty"`
}

// Items decodes Content as a list of content objects. It reports false when
// the server sent some other shape.
func (r *CallToolResult) Items() ([]Content, bool) {
	var items []Content
	if !decodeList(r.Content, &items) {
		return nil, false
	}
	return items, true
}
