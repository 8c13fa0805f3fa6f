package style

import (
	"regexp"
	"unicode/utf8"
)

// sgrPattern matches ESC [ params m, the only escapes the palette emits.
var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Strip removes every SGR escape sequence from s.
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// VisibleLen is the number of characters left in s once escapes are
// stripped.
func VisibleLen(s string) int {
	return utf8.RuneCountInString(Strip(s))
}
