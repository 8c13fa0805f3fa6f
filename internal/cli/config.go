package cli

import (
	"fmt"

	"github.com/arthur-debert/pipelog/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Long: `Print the configuration after merging the built-in defaults, the
config file and PIPELOG_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(nil)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	show.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, toml)")

	defaults := &cobra.Command{
		Use:   "defaults",
		Short: MsgDefaultShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
		},
	}

	cmd.AddCommand(show, defaults)
	return cmd
}
