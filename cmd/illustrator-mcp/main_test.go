package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/illustrator-mcp/internal/system"
)

// newTestServer assembles the same server main builds, backed by a scripted
// invoker instead of real osascript/screencapture processes.
func newTestServer(t *testing.T, handler func(ctx context.Context, name string, args ...string) (system.Result, error)) (*server.MCPServer, *scriptedInvoker) {
	t.Helper()
	bridge, invoker := testBridge(handler)
	return newMCPServer("illustrator", "test", bridge, testLogger()), invoker
}

// listTools calls tools/list on the MCPServer and returns the tools.
func listTools(t *testing.T, s *server.MCPServer) []mcp.Tool {
	t.Helper()

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcp.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolsResult mcp.ListToolsResult
	if err := json.Unmarshal(resultJSON, &toolsResult); err != nil {
		t.Fatalf("failed to unmarshal ListToolsResult: %v", err)
	}

	return toolsResult.Tools
}

// callTool calls a tool on the MCPServer and returns the result.
func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":` + string(paramsJSON) + `}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcp.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolResult mcp.CallToolResult
	if err := json.Unmarshal(resultJSON, &toolResult); err != nil {
		t.Fatalf("failed to unmarshal CallToolResult: %v", err)
	}

	return &toolResult
}

// contentFields extracts the wire-level fields of an MCP content block.
func contentFields(t *testing.T, content mcp.Content) map[string]string {
	t.Helper()
	contentJSON, _ := json.Marshal(content)
	var fields struct {
		Type     string `json:"type"`
		Text     string `json:"text"`
		MIMEType string `json:"mimeType"`
		Data     string `json:"data"`
	}
	json.Unmarshal(contentJSON, &fields)
	return map[string]string{
		"type":     fields.Type,
		"text":     fields.Text,
		"mimeType": fields.MIMEType,
		"data":     fields.Data,
	}
}

func TestServer_AdvertisesBothTools(t *testing.T) {
	s, _ := newTestServer(t, nil)

	tools := listTools(t, s)
	if len(tools) != 2 {
		t.Fatalf("expected exactly 2 tools, got %d", len(tools))
	}

	names := map[string]bool{}
	for _, tool := range tools {
		names[tool.Name] = true
	}
	if !names["capture-illustrator"] {
		t.Error("capture-illustrator not advertised")
	}
	if !names["run-illustrator-script"] {
		t.Error("run-illustrator-script not advertised")
	}
}

func TestServer_UnknownToolIsProtocolError(t *testing.T) {
	s, invoker := newTestServer(t, nil)

	params := map[string]interface{}{
		"name":      "does-not-exist",
		"arguments": map[string]interface{}{},
	}
	paramsJSON, _ := json.Marshal(params)
	msg := json.RawMessage(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":` + string(paramsJSON) + `}`)

	result := s.HandleMessage(t.Context(), msg)

	errResp, ok := result.(mcp.JSONRPCError)
	if !ok {
		t.Fatalf("expected JSONRPCError for unknown tool, got %T", result)
	}
	if !strings.Contains(errResp.Error.Message, "does-not-exist") {
		t.Errorf("expected error to name the tool, got %q", errResp.Error.Message)
	}
	if len(invoker.calls) != 0 {
		t.Errorf("no external process should run for an unknown tool, got %v", invoker.calls)
	}
}

func TestServer_RunScriptThroughDispatch(t *testing.T) {
	s, invoker := newTestServer(t, func(ctx context.Context, name string, args ...string) (system.Result, error) {
		return system.Result{Stdout: "ok"}, nil
	})

	result := callTool(t, s, "run-illustrator-script", map[string]interface{}{
		"code": "alert('hi')",
	})

	if result.IsError {
		t.Fatalf("expected success, got error result: %v", result.Content)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected exactly one content block, got %d", len(result.Content))
	}
	fields := contentFields(t, result.Content[0])
	if fields["type"] != "text" {
		t.Errorf("expected text block, got %s", fields["type"])
	}
	if fields["text"] != "Script executed successfully\nOutput: ok" {
		t.Errorf("unexpected text: %q", fields["text"])
	}

	if len(invoker.calls) != 1 || invoker.calls[0].name != "osascript" {
		t.Errorf("expected one osascript invocation, got %v", invoker.calls)
	}
}

func TestServer_CaptureThroughDispatch(t *testing.T) {
	s, _ := newTestServer(t, writesScreenshot(t))

	result := callTool(t, s, "capture-illustrator", map[string]interface{}{})

	if result.IsError {
		t.Fatalf("expected success, got error result: %v", result.Content)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected exactly one content block, got %d", len(result.Content))
	}
	fields := contentFields(t, result.Content[0])
	if fields["type"] != "image" {
		t.Errorf("expected image block, got %s", fields["type"])
	}
	if fields["mimeType"] != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", fields["mimeType"])
	}
	if fields["data"] == "" {
		t.Error("expected non-empty base64 payload")
	}
}
