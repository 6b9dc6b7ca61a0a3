// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

// RequiredResultFields lists, per method, the result keys a server must
// return for the response to count as well formed.
var RequiredResultFields = map[string][]string{
	MethodInitialize:    {"protocolVersion", "capabilities", "serverInfo"},
	MethodListResources: {"resources"},
	MethodListTools:     {"tools"},
	MethodListPrompts:   {"prompts"},
	MethodCallTool:      {"content"},
	MethodReadResource:  {"contents"},
	MethodGetPrompt:     {"messages"},
}

// --- Initialization Sequence Structures ---

// Implementation describes the name and version of an MCP implementation (client or server).
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ClientCapabilities describes features the client supports.
type ClientCapabilities struct {
	Experimental map[string]interface{} `json:"experimental,omitempty"`
	Roots        *RootsCapability       `json:"roots,omitempty"`
	Sampling     map[string]interface{} `json:"sampling,omitempty"`
}

// RootsCapability announces client support for filesystem roots.
type RootsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// InitializeRequestParams defines the parameters for the 'initialize' request.
type InitializeRequestParams struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ClientCapabilities `json:"capabilities"`
	ClientInfo      Implementation     `json:"clientInfo"`
}

// InitializeResult defines the result payload for a successful 'initialize' response.
//
// Capabilities stays untyped: the harness only reports which capability
// groups the server announced.
type InitializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ServerInfo      Implementation         `json:"serverInfo"`
	Instructions    string                 `json:"instructions,omitempty"`
}

// --- Content Structures ---

// Content is one item of tool output or prompt message content.
// Only the fields matching Type are populated.
type Content struct {
	Type     string                 `json:"type"`
	Text     string                 `json:"text,omitempty"`
	Data     string                 `json:"data,omitempty"`
	MimeType string                 `json:"mimeType,omitempty"`
	Resource map[string]interface{} `json:"resource,omitempty"`
}

// --- Logging Structures ---

// LoggingLevel defines the possible logging levels.
type LoggingLevel string

const (
	// Syslog levels from RFC 5424, as used by MCP 2025-03-26.
	LogLevelEmergency LoggingLevel = "emergency"
	LogLevelAlert     LoggingLevel = "alert"
	LogLevelCritical  LoggingLevel = "critical"
	LogLevelError     LoggingLevel = "error"
	LogLevelWarn      LoggingLevel = "warning"
	LogLevelNotice    LoggingLevel = "notice"
	LogLevelInfo      LoggingLevel = "info"
	LogLevelDebug     LoggingLevel = "debug"
)
