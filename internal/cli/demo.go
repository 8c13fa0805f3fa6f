package cli

import (
	"time"

	"github.com/arthur-debert/pipelog/internal/pipeline"
	"github.com/arthur-debert/pipelog/pkg/audit"
	"github.com/arthur-debert/pipelog/pkg/status"
	"github.com/spf13/cobra"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	var (
		pause     time.Duration
		batches   int
		auditFile string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Long: `Run a short extract/transform/load job that prints every kind of
status line: banners, numbered steps, nested lines, inline animations,
an in-place ETA and a closing QC table.`,
		Example: `  # Run with a slower animation
  pipelog demo --pause 500ms

  # Record every stage in an audit trail
  pipelog demo --audit-file audit_trail.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("audit-file") {
				overrides["audit.enabled"] = true
				overrides["audit.file"] = auditFile
			}
			cfg, err := flags.loadConfig(overrides)
			if err != nil {
				return err
			}

			var auditor *audit.Auditor
			if cfg.Audit.Enabled {
				auditor, err = audit.New(cfg.Audit.File)
				if err != nil {
					return err
				}
				defer auditor.Close()
			}

			out := cmd.OutOrStdout()
			p := &pipeline.Pipeline{
				Out:           out,
				Renderer:      status.New(out, cfg.StatusSettings()),
				Auditor:       auditor,
				Pause:         pause,
				Batches:       batches,
				HeaderOptions: cfg.HeaderOptions(),
				QCTolerance:   cfg.QC.Tolerance,
				QCMaxRows:     cfg.QC.MaxRows,
			}
			return p.Run(cmd.Context())
		},
	}

	cmd.Flags().DurationVar(&pause, "pause", 300*time.Millisecond, "delay before each step")
	cmd.Flags().IntVar(&batches, "batches", 4, "inline steps per animated stage")
	cmd.Flags().StringVar(&auditFile, "audit-file", "", "append an audit trail to this file")
	return cmd
}
