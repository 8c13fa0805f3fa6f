package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pipelog/internal/version"
	"github.com/arthur-debert/pipelog/pkg/config"
	"github.com/arthur-debert/pipelog/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// rootFlags are shared by every command.
type rootFlags struct {
	verbosity  int
	configPath string
}

// loadConfig resolves the configuration with flag overrides applied last.
func (f *rootFlags) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	return config.LoadWithOverrides(f.configPath, overrides)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "pipelog",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbosity := flags.verbosity
			if !cmd.Flags().Changed("verbose") {
				cfg, err := flags.loadConfig(nil)
				if err != nil {
					return err
				}
				verbosity = cfg.Logging.Verbosity
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/pipelog/config.yaml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDemoCmd(flags))
	rootCmd.AddCommand(newHeaderCmd(flags))
	rootCmd.AddCommand(newColorsCmd())
	rootCmd.AddCommand(newETACmd())
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newManCmd(rootCmd))

	if err := installTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create man directory: %w", err)
			}
			header := &doc.GenManHeader{
				Title:   "PIPELOG",
				Section: "1",
				Source:  "pipelog " + version.Version,
				Manual:  "pipelog manual",
			}
			if err := doc.GenManTree(root, header, dir); err != nil {
				return fmt.Errorf("failed to generate man pages: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "man", "output directory")
	return cmd
}
