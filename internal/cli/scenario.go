package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector"
)

func newScenarioCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Run push, erase, insert, reverse and swap on a vector and print each state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScenario(cmd.OutOrStdout(), a)
		},
	}
}

func runScenario(out io.Writer, a *app) error {
	v, err := vector.New(0, 0, vector.WithConfig[int](a.opts.Vector), vector.WithLogger[int](a.logger))
	if err != nil {
		return err
	}
	defer v.Destroy()

	show := func(step string) {
		fmt.Fprintf(out, "%-12s %v len=%d cap=%d\n", step, v.Data(), v.Len(), v.Cap())
	}

	for i := 1; i <= 5; i++ {
		if err := v.PushBack(i); err != nil {
			return err
		}
	}
	show("push 1..5")

	steps := []struct {
		name string
		run  func() error
	}{
		{"erase(1)", func() error { return v.Erase(1) }},
		{"insert(1,9)", func() error { return v.Insert(1, 9) }},
		{"reverse", func() error { return v.Reverse(0, v.Len()) }},
		{"swap(0,4)", func() error { return v.Swap(0, 4) }},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			return err
		}
		show(s.name)
	}

	fmt.Fprintf(out, "find 9: %d\n", vector.FindFirstOf[int](v, 9))
	return nil
}
