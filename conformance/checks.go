package conformance

import (
	"context"
	"sort"
	"strings"

	"github.com/localrivet/mcptest/protocol"
)

// Fixed inputs of the plan. The target server is expected to expose an
// "echo" tool, a "text://hello" resource and a "greeting" prompt.
const (
	ClientName    = "mcp-test-client"
	ClientVersion = "1.0.0"

	EchoTool       = "echo"
	EchoText       = "Hello from MCP test!"
	HelloURI       = "text://hello"
	GreetingPrompt = "greeting"
	GreetingName   = "MCP Tester"

	textPreviewLen = 50
	noDescription  = "No description"
)

type check struct {
	name   string
	title  string
	method string
	fn     func(*Tester, context.Context) error
}

// plan is the fixed run order.
var plan = []check{
	{"initialize", "Initialize", protocol.MethodInitialize, (*Tester).checkInitialize},
	{"resources list", "Resources list", protocol.MethodListResources, (*Tester).checkResourcesList},
	{"tools list", "Tools list", protocol.MethodListTools, (*Tester).checkToolsList},
	{"prompts list", "Prompts list", protocol.MethodListPrompts, (*Tester).checkPromptsList},
	{"tools call", "Tool call", protocol.MethodCallTool, (*Tester).checkToolsCall},
	{"resources read", "Resource read", protocol.MethodReadResource, (*Tester).checkResourcesRead},
	{"prompts get", "Prompt get", protocol.MethodGetPrompt, (*Tester).checkPromptsGet},
}

// Initialize checks the initialize handshake.
func (t *Tester) Initialize(ctx context.Context) bool { return t.run(ctx, plan[0]).Passed }

// ResourcesList checks resources/list.
func (t *Tester) ResourcesList(ctx context.Context) bool { return t.run(ctx, plan[1]).Passed }

// ToolsList checks tools/list.
func (t *Tester) ToolsList(ctx context.Context) bool { return t.run(ctx, plan[2]).Passed }

// PromptsList checks prompts/list.
func (t *Tester) PromptsList(ctx context.Context) bool { return t.run(ctx, plan[3]).Passed }

// ToolsCall checks tools/call against the echo tool.
func (t *Tester) ToolsCall(ctx context.Context) bool { return t.run(ctx, plan[4]).Passed }

// ResourcesRead checks resources/read of text://hello.
func (t *Tester) ResourcesRead(ctx context.Context) bool { return t.run(ctx, plan[5]).Passed }

// PromptsGet checks prompts/get of the greeting prompt.
func (t *Tester) PromptsGet(ctx context.Context) bool { return t.run(ctx, plan[6]).Passed }

func (t *Tester) checkInitialize(ctx context.Context) error {
	params := protocol.InitializeRequestParams{
		ProtocolVersion: protocol.CurrentProtocolVersion,
		Capabilities: protocol.ClientCapabilities{
			Roots: &protocol.RootsCapability{ListChanged: true},
		},
		ClientInfo: protocol.Implementation{Name: ClientName, Version: ClientVersion},
	}

	var result protocol.InitializeResult
	if err := t.call(ctx, protocol.MethodInitialize, params, &result); err != nil {
		return err
	}

	t.printf("✅ Initialize successful\n")
	t.detail("Server: %s v%s", result.ServerInfo.Name, result.ServerInfo.Version)
	t.detail("Protocol: %s", result.ProtocolVersion)
	if _, ok := protocol.ValidateVersion(result.ProtocolVersion); !ok {
		t.detail("Note: protocol version %q is not one this client knows", result.ProtocolVersion)
		t.logger.Warn("server negotiated unknown protocol version %q", result.ProtocolVersion)
	} else if protocol.NormalizeVersion(result.ProtocolVersion) != protocol.CurrentProtocolVersion {
		t.logger.Info("server downgraded protocol version to %s", result.ProtocolVersion)
	}
	if len(result.Capabilities) > 0 {
		names := make([]string, 0, len(result.Capabilities))
		for name := range result.Capabilities {
			names = append(names, name)
		}
		sort.Strings(names)
		t.detail("Capabilities: %s", strings.Join(names, ", "))
	}
	return nil
}

func (t *Tester) checkResourcesList(ctx context.Context) error {
	var result protocol.ListResourcesResult
	if err := t.call(ctx, protocol.MethodListResources, nil, &result); err != nil {
		return err
	}

	t.printf("✅ Resources list successful: %d resources found\n", len(result.Resources))
	for _, r := range result.Resources {
		t.detail("- %s: %s", r.Name, r.URI)
	}
	return nil
}

func (t *Tester) checkToolsList(ctx context.Context) error {
	var result protocol.ListToolsResult
	if err := t.call(ctx, protocol.MethodListTools, nil, &result); err != nil {
		return err
	}

	t.printf("✅ Tools list successful: %d tools found\n", len(result.Tools))
	for _, tool := range result.Tools {
		t.detail("- %s: %s", tool.Name, orDefault(tool.Description, noDescription))
	}
	return nil
}

func (t *Tester) checkPromptsList(ctx context.Context) error {
	var result protocol.ListPromptsResult
	if err := t.call(ctx, protocol.MethodListPrompts, nil, &result); err != nil {
		return err
	}

	t.printf("✅ Prompts list successful: %d prompts found\n", len(result.Prompts))
	for _, p := range result.Prompts {
		t.detail("- %s: %s", p.Name, orDefault(p.Description, noDescription))
	}
	return nil
}

func (t *Tester) checkToolsCall(ctx context.Context) error {
	params := protocol.CallToolParams{
		Name:      EchoTool,
		Arguments: map[string]interface{}{"text": EchoText},
	}

	var result protocol.CallToolResult
	if err := t.call(ctx, protocol.MethodCallTool, params, &result); err != nil {
		return err
	}

	t.printf("✅ Tool call successful\n")
	if items, ok := result.Items(); ok {
		t.detail("Result: %s", summarizeContent(items))
	} else {
		t.detail("Result: %v", result.Content)
	}
	if result.IsError {
		t.detail("Tool reported isError=true")
	}
	return nil
}

func (t *Tester) checkResourcesRead(ctx context.Context) error {
	params := protocol.ReadResourceRequestParams{URI: HelloURI}

	var result protocol.ReadResourceResult
	if err := t.call(ctx, protocol.MethodReadResource, params, &result); err != nil {
		return err
	}

	t.printf("✅ Resource read successful: %d content items\n", len(result.Contents))
	for _, c := range result.Contents {
		if c.IsText() {
			t.detail("Text: %s...", preview(c.Text, textPreviewLen))
		}
	}
	return nil
}

func (t *Tester) checkPromptsGet(ctx context.Context) error {
	params := protocol.GetPromptParams{
		Name:      GreetingPrompt,
		Arguments: map[string]string{"name": GreetingName},
	}

	var result protocol.GetPromptResult
	if err := t.call(ctx, protocol.MethodGetPrompt, params, &result); err != nil {
		return err
	}

	t.printf("✅ Prompt get successful\n")
	t.detail("Description: %s", orDefault(result.Description, noDescription))
	if msgs, ok := result.MessageList(); ok {
		t.detail("Messages: %d", len(msgs))
	} else {
		t.detail("Messages: %v", result.Messages)
	}
	return nil
}

// summarizeContent renders tool output on one line: text items verbatim,
// other items by type.
func summarizeContent(items []protocol.Content) string {
	if len(items) == 0 {
		return "(no content)"
	}
	parts := make([]string, 0, len(items))
	for _, c := range items {
		if c.Type == "text" || (c.Type == "" && c.Text != "") {
			parts = append(parts, c.Text)
			continue
		}
		parts = append(parts, "["+c.Type+"]")
	}
	return strings.Join(parts, " | ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
