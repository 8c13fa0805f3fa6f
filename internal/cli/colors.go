package cli

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/pipelog/pkg/style"
	"github.com/arthur-debert/pipelog/pkg/table"
	"github.com/spf13/cobra"
)

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: MsgColorsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return table.Print(cmd.OutOrStdout(), paletteFrame(), table.Options{})
		},
	}
}

// paletteFrame lists every palette entry with its escape code and a sample.
func paletteFrame() table.Frame {
	f := table.Frame{Columns: []string{"name", "code", "sample"}}
	for _, name := range style.Names() {
		c := style.Table[name]
		code := strings.Trim(strconv.Quote(c.String()), `"`)
		f.Rows = append(f.Rows, []string{name, code, style.Compose(strings.ToLower(name), false, c)})
	}
	return f
}
