package main

import (
	"context"
	"fmt"
	"os"

	"avy-dashboard/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(context.Background(), os.Args, version); err != nil {
		fmt.Fprintln(os.Stderr, "avy-dashboard:", err)
		os.Exit(1)
	}
}
