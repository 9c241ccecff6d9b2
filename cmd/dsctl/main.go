// File: cmd/dsctl/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// dsctl drives the containers from the command line: it replays the
// reference scenarios and runs configurable push/pop workloads while
// reporting allocation accounting.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
