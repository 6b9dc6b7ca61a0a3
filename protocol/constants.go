// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

const (
	// JSONRPCVersion is the only JSON-RPC version MCP speaks.
	JSONRPCVersion = "2.0"

	// CurrentProtocolVersion is the MCP revision the harness announces during initialize.
	CurrentProtocolVersion = "2025-03-26"
	OldProtocolVersion     = "2024-11-05"

	// --- Method Name Constants ---

	// Initialization
	MethodInitialize = "initialize"

	// Tools
	MethodListTools = "tools/list"
	MethodCallTool  = "tools/call"

	// Resources
	MethodListResources = "resources/list"
	MethodReadResource  = "resources/read"

	// Prompts
	MethodListPrompts = "prompts/list"
	MethodGetPrompt   = "prompts/get"
)

// ErrorCode is the numeric code carried by a JSON-RPC error object.
type ErrorCode int

const (
	// Standard JSON-RPC codes.
	CodeParseError     ErrorCode = -32700
	CodeInvalidRequest ErrorCode = -32600
	CodeMethodNotFound ErrorCode = -32601
	CodeInvalidParams  ErrorCode = -32602
	CodeInternalError  ErrorCode = -32603

	// CodeTransportError marks a response synthesized locally after the
	// request never produced a usable reply (connection refused, timeout,
	// non-2xx status, undecodable body). Taken from the implementation-defined
	// -32000..-32099 range.
	CodeTransportError ErrorCode = -32099
)
