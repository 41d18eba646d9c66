package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	app := &cli.Command{
		Name:    "avy-dashboard",
		Usage:   "Avalanche danger rating dashboard",
		Version: version,
		Commands: []*cli.Command{
			cmdServe(),
			cmdRate(),
		},
	}
	return app.Run(ctx, args)
}
