package style

import (
	"sort"
	"strings"
)

// Color is a literal SGR escape sequence.
type Color string

// None means "no color"; Compose leaves text uncolored.
const None Color = ""

// Palette. The dark variants use the standard 30-37 range, the bright
// ones 90-97.
const (
	Black      Color = "\033[30m"
	DarkRed    Color = "\033[31m"
	DarkGreen  Color = "\033[32m"
	DarkYellow Color = "\033[33m"
	DarkBlue   Color = "\033[34m"
	Purple     Color = "\033[35m"
	DarkCyan   Color = "\033[36m"
	Gray       Color = "\033[37m"
	DarkGray   Color = "\033[90m"
	Red        Color = "\033[91m"
	Green      Color = "\033[92m"
	Yellow     Color = "\033[93m"
	Blue       Color = "\033[94m"
	Magenta    Color = "\033[95m"
	Cyan       Color = "\033[96m"
	White      Color = "\033[97m"
	Bold       Color = "\033[1m"
	Underline  Color = "\033[4m"
	Reset      Color = "\033[0m"
)

// Table maps symbolic names to their escape sequence.
var Table = map[string]Color{
	"BLACK":      Black,
	"DARKRED":    DarkRed,
	"DARKGREEN":  DarkGreen,
	"DARKYELLOW": DarkYellow,
	"DARKBLUE":   DarkBlue,
	"PURPLE":     Purple,
	"DARKCYAN":   DarkCyan,
	"GRAY":       Gray,
	"DARKGRAY":   DarkGray,
	"RED":        Red,
	"GREEN":      Green,
	"YELLOW":     Yellow,
	"BLUE":       Blue,
	"MAGENTA":    Magenta,
	"CYAN":       Cyan,
	"WHITE":      White,
	"BOLD":       Bold,
	"UNDERLINE":  Underline,
	"RESET":      Reset,
	"END":        Reset,
}

// Lookup resolves a color name case-insensitively. The empty name and
// "none" resolve to None.
func Lookup(name string) (Color, bool) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "" || key == "NONE" {
		return None, true
	}
	c, ok := Table[key]
	return c, ok
}

// Names returns the palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Table))
	for name := range Table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the escape sequence itself.
func (c Color) String() string {
	return string(c)
}
