//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyContext returns a context that is canceled on SIGINT/SIGTERM.
// Cancellation propagates through the engine's cmd.Cancel hook, which
// kills the whole pdflatex process group (internal/process) so mktexfmt
// children do not outlive an interrupted run. Call stop() to release
// resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
