// Package main implements scryctl, a developer tool that runs the review
// engine from the command line: evaluate a response, infer a quality,
// compute a schedule, or run the whole review flow for one answer.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root, c := newRootCmd()
	err := root.ExecuteContext(ctx)
	c.cleanup()
	stop()

	if err != nil {
		os.Exit(1)
	}
}
