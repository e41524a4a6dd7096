// Command verto is a daily task tracker for the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaskiratSingh1/Verto/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.Run(ctx, os.Args[1:])
	interrupted := ctx.Err() != nil
	stop()

	if err == nil {
		return
	}
	if interrupted {
		fmt.Fprintln(os.Stderr, "\nInterrupted")
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
