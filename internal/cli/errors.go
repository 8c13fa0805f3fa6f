package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/pipelog/pkg/errors"
	"github.com/arthur-debert/pipelog/pkg/style"
)

// FormatError renders err for stderr: the message in red, any details
// attached to it, and a hint for errors the user can fix.
func FormatError(err error) string {
	var b strings.Builder
	b.WriteString(style.Compose("Error: "+err.Error(), false, style.Red))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s: %v", k, details[k])
	}

	switch {
	case errors.IsErrorCode(err, errors.ErrInvalidInput):
		b.WriteString("\n" + MsgHintUsage)
	default:
		switch errors.GetErrorCode(err) {
		case errors.ErrConfigLoad, errors.ErrConfigParse, errors.ErrConfigValid:
			b.WriteString("\n" + MsgHintConfig)
		}
	}
	return b.String()
}
