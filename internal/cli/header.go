package cli

import (
	"github.com/arthur-debert/pipelog/pkg/status"
	"github.com/spf13/cobra"
)

func newHeaderCmd(flags *rootFlags) *cobra.Command {
	var (
		fill  string
		width int
		color string
		bold  bool
	)

	cmd := &cobra.Command{
		Use:     "header TEXT",
		Short:   MsgHeaderShort,
		Example: `  pipelog header "START PROCESS" --fill "#" --color purple`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("fill") {
				overrides["header.fill"] = fill
			}
			if cmd.Flags().Changed("width") {
				overrides["header.width"] = width
			}
			if cmd.Flags().Changed("color") {
				overrides["renderer.color"] = color
			}
			if cmd.Flags().Changed("bold") {
				overrides["renderer.bold"] = bold
			}

			cfg, err := flags.loadConfig(overrides)
			if err != nil {
				return err
			}

			r := status.New(cmd.OutOrStdout(), cfg.StatusSettings())
			return r.Header(args[0], cfg.HeaderOptions()...)
		},
	}

	cmd.Flags().StringVar(&fill, "fill", status.DefaultFill, "fill character")
	cmd.Flags().IntVar(&width, "width", status.DefaultHeaderWidth, "total banner width")
	cmd.Flags().StringVar(&color, "color", "", "palette color name")
	cmd.Flags().BoolVar(&bold, "bold", false, "bold banner")
	return cmd
}
