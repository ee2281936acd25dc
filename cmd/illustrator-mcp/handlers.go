package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/illustrator-mcp/internal/common"
	"github.com/bobmcallan/illustrator-mcp/internal/illustrator"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func imageResult(snap *illustrator.Snapshot) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				MIMEType: snap.MIMEType,
				Data:     snap.Data,
			},
		},
	}
}

// --- Handlers ---

// handleCapture activates the application window, captures its screen
// region, and returns the re-encoded screenshot. Capture problems are
// reported in-band as text so the caller always receives a definite
// outcome for the request.
func handleCapture(b *illustrator.Bridge, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		returnToApp := request.GetString("return_to_app", "")

		snap, err := b.Capture(ctx, returnToApp)
		if err != nil {
			logger.Warn().Err(err).Msg("Capture failed")
			return textResult("Failed to capture screenshot"), nil
		}

		return imageResult(snap), nil
	}
}

// handleRunScript executes caller-supplied ExtendScript and classifies the
// outcome: a non-zero exit becomes an in-band error message carrying the
// captured stderr, a zero exit becomes a success message carrying stdout
// when there is any.
func handleRunScript(b *illustrator.Bridge, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil || code == "" {
			return textResult("No code provided"), nil
		}

		result, err := b.RunScript(ctx, code)
		if err != nil {
			logger.Warn().Err(err).Msg("Script invocation failed")
			return textResult(fmt.Sprintf("Error executing script: %v", err)), nil
		}

		if result.ExitCode != 0 {
			return textResult(fmt.Sprintf("Error executing script: %s", result.Stderr)), nil
		}

		message := "Script executed successfully"
		if result.Stdout != "" {
			message += fmt.Sprintf("\nOutput: %s", result.Stdout)
		}
		return textResult(message), nil
	}
}
