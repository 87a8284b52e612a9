package main

import (
	"context"
	"os"

	"github.com/centra-dev/centra/internal/cli"
	"github.com/centra-dev/centra/internal/config"
	"github.com/centra-dev/centra/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return cli.New(cfg).Run(context.Background(), args)
}
