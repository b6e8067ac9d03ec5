// Command vecctl inspects the vector growth engine and exercises slot pools.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pavanmanishd/vector/internal/cli"
)

// Set via ldflags during build.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
