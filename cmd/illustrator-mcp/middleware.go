package main

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/illustrator-mcp/internal/common"
)

// serializeInvocations returns middleware that admits one tool invocation
// at a time. Both tools act on the same application window and OS focus,
// so overlapping executions would interleave activation, capture, and
// script commands against shared state.
func serializeInvocations() server.ToolHandlerMiddleware {
	var mu sync.Mutex
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			mu.Lock()
			defer mu.Unlock()
			return next(ctx, request)
		}
	}
}

// logInvocations returns middleware that assigns each invocation a
// correlation ID and logs its duration and outcome.
func logInvocations(logger *common.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			correlationID := uuid.New().String()
			log := logger.WithCorrelationId(correlationID)

			log.Debug().
				Str("tool", request.Params.Name).
				Msg("Tool invocation started")

			start := time.Now()
			result, err := next(ctx, request)
			duration := time.Since(start)

			if err != nil {
				log.Error().
					Err(err).
					Str("tool", request.Params.Name).
					Dur("duration", duration).
					Msg("Tool invocation failed")
				return result, err
			}

			log.Info().
				Str("tool", request.Params.Name).
				Dur("duration", duration).
				Msg("Tool invocation completed")
			return result, nil
		}
	}
}
