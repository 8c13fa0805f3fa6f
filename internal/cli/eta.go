package cli

import (
	"fmt"
	"time"

	"github.com/arthur-debert/pipelog/pkg/errors"
	"github.com/arthur-debert/pipelog/pkg/timer"
	"github.com/spf13/cobra"
)

func newETACmd() *cobra.Command {
	var (
		total      int
		done       int
		indexStart int
		elapsed    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "eta",
		Short: MsgETAShort,
		Long: `Estimate the remaining time of a loop from how long the completed
iterations took. The estimate assumes every iteration costs the same.`,
		Example: `  # 25 of 100 items took 30 seconds
  pipelog eta --total 100 --done 25 --elapsed 30s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if total <= 0 {
				return errors.Newf(errors.ErrInvalidInput, "--total must be positive, got %d", total)
			}
			if elapsed < 0 {
				return errors.Newf(errors.ErrInvalidInput, "--elapsed must not be negative, got %s", elapsed)
			}

			start := time.Now().Add(-elapsed)
			calls := 0
			clock := func() time.Time {
				calls++
				if calls == 1 {
					return start
				}
				return start.Add(elapsed)
			}

			t := timer.New(total, timer.WithIndexStart(indexStart), timer.WithClock(clock))
			fmt.Fprintf(cmd.OutOrStdout(), MsgETAFormat, t.Remaining(done), t.Elapsed())
			return nil
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "total number of iterations")
	cmd.Flags().IntVar(&done, "done", 0, "iterations completed so far")
	cmd.Flags().IntVar(&indexStart, "start-index", 0, "index the loop counter starts at")
	cmd.Flags().DurationVar(&elapsed, "elapsed", 0, "time spent so far")
	return cmd
}
