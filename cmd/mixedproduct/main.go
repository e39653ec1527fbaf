package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/adamluzsi/mixedproduct/internal/cli"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

func main() {
	// Bootstrap logging first to log in setup.
	cli.SetLoggingHandler(os.Stderr, slog.LevelInfo, false)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		slog.Error("Fatal error.", "err", err)
		cancel()
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mixedproduct [flags] [SOURCE...]",
		Short: "Print every combination of one element of each sequence",
		Long: dedent.Dedent(`
		mixedproduct prints the Cartesian product of sequences, one combination per line.
		The product is streamed: neither the sequences nor the combinations are held in memory.

		A SOURCE is one of:

		  list:a,b,c        the given values
		  range:1..9        the integers from 1 to 9
		  chars:a..z        the characters from a to z
		  file:PATH         the lines of a file
		  bolt:PATH#BUCKET  the values of a bolt bucket

		Sources can also be listed under the sequences key of the YAML configuration file.
		Every flag can be set with a MIXEDPRODUCT_ prefixed environment variable,
		for example MIXEDPRODUCT_FORMAT=json, and a .env file of the working directory is loaded first.
		`),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cli.Load(cmd.Flags(), args)
			if err != nil {
				return err
			}
			cli.SetLoggingHandler(os.Stderr, c.LogLevel, c.Color)
			return cli.Run(cmd.Context(), c, cmd.OutOrStdout())
		},
	}
	cli.SetupFlags(cmd.Flags())
	return cmd
}
