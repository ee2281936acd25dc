package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/illustrator-mcp/internal/common"
	"github.com/bobmcallan/illustrator-mcp/internal/illustrator"
)

// registerTools registers the two MCP tools on the server, wiring each to a
// handler backed by the bridge.
func registerTools(s *server.MCPServer, b *illustrator.Bridge, logger *common.Logger) {
	s.AddTool(createCaptureTool(), handleCapture(b, logger))
	s.AddTool(createRunScriptTool(), handleRunScript(b, logger))
}

func createCaptureTool() mcp.Tool {
	return mcp.NewTool("capture-illustrator",
		mcp.WithDescription("Capture the adobe illustrator window"),
		mcp.WithString("return_to_app",
			mcp.Description("Application to re-activate after the capture (e.g., 'Terminal'). Focus stays on Illustrator when omitted.")),
	)
}

func createRunScriptTool() mcp.Tool {
	return mcp.NewTool("run-illustrator-script",
		mcp.WithDescription("Run ExtendScript code in Illustrator. Use 'app' to access the Illustrator application object."),
		mcp.WithString("code", mcp.Required(),
			mcp.Description("ExtendScript/JavaScript code to execute in Illustrator. It will run on the current document. you only need to make the document once")),
	)
}
