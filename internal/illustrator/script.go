package illustrator

import (
	"context"

	"github.com/bobmcallan/illustrator-mcp/internal/system"
)

// RunScript executes ExtendScript source inside the application's scripting
// engine. The caller code is escaped, wrapped in a do-javascript statement,
// and handed to osascript. A non-zero osascript exit is reported through
// the returned Result, not as an error, so the caller can relay the
// captured stderr.
func (b *Bridge) RunScript(ctx context.Context, code string) (system.Result, error) {
	statement := wrapScript(b.cfg.AppName, code)

	b.logger.Debug().
		Str("app", b.cfg.AppName).
		Int("code_length", len(code)).
		Msg("Running script in application")

	result, err := b.run(ctx, "osascript", "-e", statement)
	if err != nil {
		return result, err
	}

	b.logger.Debug().
		Int("exit_code", result.ExitCode).
		Int("stdout_length", len(result.Stdout)).
		Int("stderr_length", len(result.Stderr)).
		Msg("Script finished")

	return result, nil
}
