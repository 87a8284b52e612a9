// Package convert implements the "convert" command, the CLI surface over
// the conversion engine.
package convert

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/centra-dev/centra/internal/config"
	"github.com/centra-dev/centra/internal/converter"
	"github.com/centra-dev/centra/internal/core"
	"github.com/centra-dev/centra/internal/manifest"
	"github.com/centra-dev/centra/internal/printer"
)

// Run returns the "convert" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a solution to centralized package management",
		ArgsUsage: "<solution.sln>",
		UsageText: `centra convert <solution.sln> [options]

Collects every package reference declared by the solution's projects,
resolves one version per package (highest wins), writes the centralized
manifest artifacts next to the solution, and strips the per-project
version declarations.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "props",
				Usage: "Output path for the build-property document",
				Value: cfg.BuildProps,
			},
			&cli.StringFlag{
				Name:  "packages",
				Usage: "Output path for the package-version manifest",
				Value: cfg.Packages,
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Manifest entry ordering: name, discovery",
				Value: cfg.Sort,
			},
			&cli.BoolFlag{
				Name:  "backup",
				Usage: "Write a .bak copy of each project before rewriting it",
				Value: cfg.Backup,
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Show what would change without writing anything",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runConvertCmd(ctx, cmd, cfg)
		},
	}
}

// runConvertCmd executes the convert command.
func runConvertCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	solutionPath := cmd.Args().First()
	if solutionPath == "" {
		solutionPath = cfg.Solution
	}
	if solutionPath == "" {
		return fmt.Errorf("solution path is required (argument or %q)", config.ConfigFileName)
	}

	opts := converter.Options{
		SolutionPath:   solutionPath,
		BuildPropsPath: cmd.String("props"),
		PackagesPath:   cmd.String("packages"),
		Sort:           manifest.ParseSortMode(cmd.String("sort")),
		Backup:         cmd.Bool("backup"),
		Preview:        cmd.Bool("dry-run"),
	}

	if !opts.Preview && !cmd.Bool("yes") && isInteractiveFn() {
		ok, err := confirmFn(
			fmt.Sprintf("Convert %s to centralized package management?", solutionPath),
			"Project files are rewritten in place. Use --dry-run to preview or --backup to keep copies.",
		)
		if err != nil {
			return err
		}
		if !ok {
			printer.PrintFaint("Aborted. Nothing was written.")
			return nil
		}
	}

	svc := converter.NewService(core.NewOSFileSystem())
	result, err := svc.Run(ctx, opts)
	if err != nil {
		return err
	}

	printResult(result, opts.Sort)
	return nil
}
