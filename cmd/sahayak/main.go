// Package main implements the sahayak command-line client. It composes
// classroom prompts locally and calls the content relay with the key stored
// in the user's config file.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configFile string
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	command := &cobra.Command{
		Use:          "sahayak",
		Short:        "Generate classroom content through the Sahayak relay",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	command.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file (default is <user config dir>/sahayak/config.yaml)")
	command.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log request details to stderr")

	command.AddCommand(
		newComposeCommand(),
		newGenerateCommand(opts),
		newImageCommand(opts),
		newKeyCommand(opts),
	)
	return command
}
