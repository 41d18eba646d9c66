package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"avy-dashboard/internal/rating"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdRate() *cli.Command {
	def := rating.DefaultSelection()
	return &cli.Command{
		Name:  "rate",
		Usage: "Print the danger rating for one selection",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "sensitivity",
				Usage: "sensitivity half-step position (0=Unreactive .. 6=Touchy)",
				Value: int64(def.Sensitivity),
			},
			&cli.IntFlag{
				Name:  "distribution",
				Usage: "distribution half-step position (0=Isolated .. 4=Widespread)",
				Value: int64(def.Distribution),
			},
			&cli.IntFlag{
				Name:  "size-lo",
				Usage: "lowest destructive size index (0=size 1 .. 8=size 5)",
				Value: int64(def.Size.Lo),
			},
			&cli.IntFlag{
				Name:  "size-hi",
				Usage: "highest destructive size index",
				Value: int64(def.Size.Hi),
			},
			&cli.StringFlag{
				Name:    "grid-file",
				Usage:   "TOML danger grid profile",
				Sources: cli.EnvVars("DANGER_GRID_FILE"),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			grid, err := rating.LoadGridProfile(cmd.String("grid-file"))
			if err != nil {
				return err
			}

			sel := rating.Selection{
				Sensitivity:  int(cmd.Int("sensitivity")),
				Distribution: int(cmd.Int("distribution")),
				Size: rating.IndexRange{
					Lo: int(cmd.Int("size-lo")),
					Hi: int(cmd.Int("size-hi")),
				},
			}
			a, err := rating.Evaluate(sel, grid)
			if err != nil {
				return goerr.Wrap(err, "failed to rate selection")
			}

			w := cmd.Root().Writer
			if w == nil {
				w = os.Stdout
			}
			return printAssessment(w, a)
		},
	}
}

func printAssessment(w io.Writer, a rating.Assessment) error {
	_, err := fmt.Fprintf(w,
		"Sensitivity:  %s\nDistribution: %s\nLikelihood:   %s\nSize:         %s\nMax danger:   %s\n",
		a.SensitivityLabel, a.DistributionLabel, a.LikelihoodLabel, a.SizeLabel, a.MaxDanger)
	return err
}
