package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newPlanCommand(a *app) *cobra.Command {
	var (
		required int
		elemSize int
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the capacities a vector grows through to hold --required elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if required < 0 {
				return errors.Errorf("--required must not be negative, got %d", required)
			}
			if elemSize <= 0 {
				return errors.Errorf("--elem-size must be positive, got %d", elemSize)
			}

			plan, err := a.opts.Vector.GrowthPlan(required)
			if err != nil {
				return err
			}
			level.Debug(a.logger).Log("msg", "growth plan computed", "required", required, "steps", len(plan), "low_memory", a.opts.Vector.LowMemory)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STEP\tCAPACITY\tSIZE")
			var copied int
			for i, c := range plan {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, humanize.Comma(int64(c)), humanize.IBytes(uint64(c)*uint64(elemSize)))
				if i > 0 {
					copied += plan[i-1]
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d reallocations, %s elements copied\n", len(plan), humanize.Comma(int64(copied)))
			return nil
		},
	}
	cmd.Flags().IntVar(&required, "required", 1000, "Number of elements the vector must hold.")
	cmd.Flags().IntVar(&elemSize, "elem-size", 8, "Element size in bytes, for the size column.")
	return cmd
}
