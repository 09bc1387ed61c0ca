// SPDX-License-Identifier: MIT

// Command camarades forms groups from preference ballots.
//
//	camarades run votes.csv --group-size 4 --seed 7
//	camarades config --config camarades.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	_ "go.uber.org/automaxprocs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
