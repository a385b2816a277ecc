package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yildizm/DataPlatform/internal/cli"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// The workspace reads ctrl+c as a key; SIGTERM ends the session
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(version, commit, date)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
