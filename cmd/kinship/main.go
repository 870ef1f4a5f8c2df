package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(newApp(os.Stdout, os.Stderr)).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "kinship: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
