package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		bold  bool
		color Color
		want  string
	}{
		{"plain text is unchanged", "hello", false, None, "hello"},
		{"bold only", "hello", true, None, "\033[1mhello\033[0m"},
		{"color only", "hello", false, Red, "\033[91mhello\033[0m"},
		{"bold and color", "hello", true, Green, "\033[1m\033[92mhello\033[0m"},
		{"empty text keeps wrapper", "", true, Blue, "\033[1m\033[94m\033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.text, tt.bold, tt.color))
		})
	}
}

func TestComposeSingleReset(t *testing.T) {
	for _, name := range Names() {
		got := Compose("x", true, Table[name])
		assert.Equal(t, 1, strings.Count(got, string(Reset))-strings.Count(string(Table[name]), string(Reset)),
			"color %s", name)
		assert.True(t, strings.HasPrefix(got, string(Bold)), "color %s", name)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", "plain", "plain"},
		{"single color", "\033[91mred\033[0m", "red"},
		{"bold and color", "\033[1m\033[35mhead\033[0m", "head"},
		{"multi parameter", "\033[1;31mx\033[0m", "x"},
		{"escapes in the middle", "a\033[92mb\033[0mc", "abc"},
		{"non sgr escape is kept", "\033[2Kline", "\033[2Kline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}

func TestVisibleLen(t *testing.T) {
	assert.Equal(t, 0, VisibleLen(""))
	assert.Equal(t, 7, VisibleLen("loading"))
	assert.Equal(t, 7, VisibleLen(Compose("loading", true, Cyan)))
	assert.Equal(t, 3, VisibleLen("äöü"))
}

func TestFormattingIsDimensionNeutral(t *testing.T) {
	for _, offset := range []int{0, 1, 4, 10} {
		for _, name := range []string{"RED", "GREEN", "PURPLE", "UNDERLINE"} {
			for _, bold := range []bool{false, true} {
				text := "step " + name
				padded := strings.Repeat(" ", offset) + text
				got := VisibleLen(Compose(padded, bold, Table[name]))
				assert.Equal(t, len(text)+offset, got, "offset=%d color=%s bold=%v", offset, name, bold)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		want   Color
		wantOK bool
	}{
		{"red", Red, true},
		{"  Purple ", Purple, true},
		{"END", Reset, true},
		{"", None, true},
		{"none", None, true},
		{"chartreuse", None, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaletteCodes(t *testing.T) {
	assert.Equal(t, "\033[30m", Black.String())
	assert.Equal(t, "\033[90m", Table["DARKGRAY"].String())
	assert.Equal(t, "\033[4m", Table["UNDERLINE"].String())
	assert.Len(t, Names(), len(Table))
}
