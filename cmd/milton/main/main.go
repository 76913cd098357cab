package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/milton/cmd/milton"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := milton.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		milton.PrintError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
