package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/vector"
)

type poolRun struct {
	workers    int
	iterations int
}

func newPoolCommand(a *app) *cobra.Command {
	var r poolRun
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Create and destroy pool slots from concurrent workers and report usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if r.workers <= 0 || r.iterations <= 0 {
				return errors.Errorf("--workers and --iterations must be positive, got %d and %d", r.workers, r.iterations)
			}
			return r.run(cmd, a)
		},
	}
	cmd.Flags().IntVar(&r.workers, "workers", 4, "Number of concurrent workers.")
	cmd.Flags().IntVar(&r.iterations, "iterations", 1000, "Slots each worker creates and destroys.")
	return cmd
}

func (r poolRun) run(cmd *cobra.Command, a *app) error {
	reg := prometheus.NewRegistry()
	metrics := vector.NewMetrics(reg)
	logger := log.With(a.logger, "component", "pool")

	pool, err := vector.NewSafePool[int](a.opts.Pool.Slots, a.opts.Pool.Width,
		vector.WithPoolLogger(logger), vector.WithPoolMetrics(metrics))
	if err != nil {
		return err
	}

	// Each worker owns its index.
	completed := make([]int, r.workers)
	g, ctx := errgroup.WithContext(cmd.Context())
	for w := 0; w < r.workers; w++ {
		g.Go(func() error {
			for i := 0; i < r.iterations; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				h, err := pool.Create(w)
				if errors.Is(err, vector.ErrPoolExhausted) {
					continue
				}
				if err != nil {
					return err
				}
				err = pool.Do(func(*vector.Pool[int]) error {
					if err := h.Set(0, i); err != nil {
						return err
					}
					return h.Reverse(0, h.Len())
				})
				pool.Destroy(h)
				if err != nil {
					return errors.Wrapf(err, "worker %d", w)
				}
				completed[w]++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for _, c := range completed {
		total += c
	}
	level.Info(logger).Log("msg", "pool exercise finished", "workers", r.workers, "completed", total)
	return report(cmd.OutOrStdout(), pool.Metrics(), total, r.workers*r.iterations, reg)
}

func report(out io.Writer, m vector.PoolMetrics, completed, attempted int, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	var exhausted float64
	for _, mf := range families {
		if mf.GetName() == "vector_pool_exhausted_total" && len(mf.GetMetric()) > 0 {
			exhausted = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}

	fmt.Fprintf(out, "slots: %d x %d elements\n", m.Slots, m.Width)
	fmt.Fprintf(out, "in use: %d\n", m.InUse)
	fmt.Fprintf(out, "completed: %s of %s\n", humanize.Comma(int64(completed)), humanize.Comma(int64(attempted)))
	fmt.Fprintf(out, "exhausted: %s\n", humanize.Comma(int64(exhausted)))
	return nil
}
