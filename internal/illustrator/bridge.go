// Package illustrator drives Adobe Illustrator through the macOS osascript
// and screencapture utilities.
package illustrator

import (
	"context"

	"github.com/bobmcallan/illustrator-mcp/internal/common"
	"github.com/bobmcallan/illustrator-mcp/internal/config"
	"github.com/bobmcallan/illustrator-mcp/internal/system"
)

// Bridge connects MCP tool calls to the Illustrator application on the
// local machine. Every external command goes through the injected Invoker,
// so the bridge can be exercised without a live application.
type Bridge struct {
	cfg     *config.IllustratorConfig
	logger  *common.Logger
	invoker system.Invoker
}

// NewBridge creates a bridge for the configured application.
func NewBridge(cfg *config.IllustratorConfig, logger *common.Logger, invoker system.Invoker) *Bridge {
	return &Bridge{
		cfg:     cfg,
		logger:  logger,
		invoker: invoker,
	}
}

// run executes one external command, applying the configured command
// timeout when one is set.
func (b *Bridge) run(ctx context.Context, name string, args ...string) (system.Result, error) {
	if timeout := b.cfg.GetCommandTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return b.invoker.Run(ctx, name, args...)
}
