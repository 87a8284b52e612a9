package cli

import (
	"context"
	"fmt"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/centra-dev/centra/internal/commands/convert"
	"github.com/centra-dev/centra/internal/config"
	"github.com/centra-dev/centra/internal/printer"
	"github.com/centra-dev/centra/internal/version"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the centra cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "centra",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Centralize package versions across a multi-project solution",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			convert.Run(cfg),
		},
	}
}
