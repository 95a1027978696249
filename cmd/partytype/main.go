package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/tartampluch/go-partytype/internal/cli"
	"github.com/tartampluch/go-partytype/internal/config"
)

// main delegates to runMain so that deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

func runMain() int {
	// Cancel on SIGINT (Ctrl+C) or SIGTERM so `serve` shuts down gracefully.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint(err))
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}
