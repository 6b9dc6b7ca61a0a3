// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

// --- Resource Access Structures ---

// Resource represents a piece of context available from the server.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
	Size        *int   `json:"size,omitempty"`
}

// ListResourcesResult defines the result for 'resources/list'.
type ListResourcesResult struct {
	Resources  []Resource `json:"resources"`
	NextCursor string     `json:"nextCursor,omitempty"`
}

// ReadResourceRequestParams defines parameters for 'resources/read'.
type ReadResourceRequestParams struct {
	URI string `json:"uri"`
}

// ResourceContents is one entry of a 'resources/read' result. Servers tag
// entries with "type": "text" or "blob"; Text or Blob is populated accordingly.
type ResourceContents struct {
	URI      string `json:"uri"`
	Type     string `json:"type,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"`
}

// IsText reports whether the entry carries textual content.
func (c ResourceContents) IsText() bool {
	if c.Type != "" {
		return c.Type == "text"
	}
	return c.Blob == "" && c.Text != ""
}

// ReadResourceResult defines the result for 'resources/read'.
type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
}
