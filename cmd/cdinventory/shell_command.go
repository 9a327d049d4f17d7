package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"cdinventory/internal/inventory"
	"cdinventory/internal/shell"
	"cdinventory/internal/snapshot"
)

func newShellCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive inventory menu",
		Long: `Start the interactive inventory menu.

The inventory file is loaded on start. Changes stay in memory until you
choose [s] to save. Press Ctrl-C to be asked whether to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, ctx)
		},
	}
}

func runShell(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	out := cmd.OutOrStdout()
	sh, err := shell.New(shell.Options{
		Store:      inventory.NewStore(),
		Gateway:    snapshot.NewGateway(logger),
		DataFile:   cfg.Inventory.DataFile,
		In:         cmd.InOrStdin(),
		Out:        out,
		Interrupts: interrupts,
		Logger:     logger,
		Colorize:   shell.ShouldColorize(out),
		TableStyle: cfg.Display.TableStyle,
	})
	if err != nil {
		return err
	}
	return sh.Run(cmd.Context())
}
