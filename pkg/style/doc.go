// Package style holds the fixed terminal escape palette used by pipelog and
// the helpers that apply it to text.
//
// The palette is never adapted to the terminal: every code in Table is
// emitted verbatim, so colored logs stay byte-compatible with consumers that
// already parse them.
//
// Formatting a message:
//
//	line := style.Compose("done", true, style.Green)
//	// "\033[1m\033[92mdone\033[0m"
//
// Measuring what the user actually sees:
//
//	style.VisibleLen(line) // 4
package style
