package illustrator

import (
	"fmt"
	"strings"
)

// escapeScript prepares caller code for embedding in a double-quoted
// AppleScript string literal. Double quotes are escaped and literal
// newlines are rewritten to \n so the literal stays on one line. Code
// that is already safe passes through unchanged.
func escapeScript(code string) string {
	code = strings.ReplaceAll(code, `"`, `\"`)
	return strings.ReplaceAll(code, "\n", `\n`)
}

// activationScript brings appName to the foreground and waits for the
// window to finish redrawing. When returnToApp is non-empty, focus is
// handed to that application after the delay.
func activationScript(appName, returnToApp string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tell application \"%s\" to activate\ndelay 1", appName)
	if returnToApp != "" {
		fmt.Fprintf(&sb, "\ntell application \"%s\" to activate", returnToApp)
	}
	return sb.String()
}

// wrapScript embeds code in the AppleScript statement that hands it to the
// application's ExtendScript engine.
func wrapScript(appName, code string) string {
	return fmt.Sprintf("tell application \"%s\"\n\tdo javascript \"%s\"\nend tell", appName, escapeScript(code))
}
