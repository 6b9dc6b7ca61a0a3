// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

// --- Prompt Structures ---

// PromptArgument defines an input parameter for a prompt template.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Prompt represents a prompt template offered by the server.
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
}

// ListPromptsResult defines the result for 'prompts/list'.
type ListPromptsResult struct {
	Prompts    []Prompt `json:"prompts"`
	NextCursor string   `json:"nextCursor,omitempty"`
}

// GetPromptParams defines the parameters for 'prompts/get'.
type GetPromptParams struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments,omitempty"`
}

// PromptMessage represents a single message within a rendered prompt.
// Content is a single content object in 2025-03-26 and a list in older
// servers, so it is left untyped.
type PromptMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

// GetPromptResult defines the result for 'prompts/get'.
// Messages is kept untyped like CallToolResult.Content.
type GetPromptResult struct {
	Description string      `json:"description,omitempty"`
	Messages    interface{} `json:"messages"`
}

// MessageList decodes Messages as a list of prompt messages. It reports false
// when the server sent some other shape.
func (r *GetPromptResult) MessageList() ([]PromptMessage, bool) {
	var msgs []PromptMessage
	if !decodeList(r.Messages, &msgs) {
		return nil, false
	}
	return msgs, true
}
