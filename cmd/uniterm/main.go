package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/uniterm/internal/app"
)

// cliOptions holds the persistent flags shared by every command.
type cliOptions struct {
	configPath    string
	preview       bool
	compositionID string
	pollSeconds   int
	verbose       bool
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "uniterm: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "uniterm [path...]",
		Short: "Browse Uniform Canvas compositions in the terminal",
		Long: `uniterm fetches compositions from the Uniform Canvas API and renders
them as navigable terminal screens.

Run without arguments to open the last composition viewed, or the root
composition. Path arguments open the composition at that route:

  uniterm about team      opens /about/team
  uniterm --id <id>       opens a composition by id
  uniterm --preview       shows draft instead of published content

Credentials come from ~/.config/uniterm/config.toml or the
UNIFORM_API_KEY, UNIFORM_PROJECT_ID and UNIFORM_API_HOST variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Without this cobra treats a positional on a root with
		// subcommands as an unknown command.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:    opts.configPath,
				PollEvery:     opts.pollSeconds,
				Preview:       opts.preview,
				Path:          args,
				CompositionID: opts.compositionID,
				Verbose:       opts.verbose,
			})
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/uniterm/config.toml)")
	flags.BoolVarP(&opts.preview, "preview", "p", false, "load draft compositions")
	flags.StringVar(&opts.compositionID, "id", "", "open a composition by id")
	flags.IntVar(&opts.pollSeconds, "poll", 0, "route poll interval in seconds (default 15)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newRoutesCmd(opts),
		newListCmd(opts),
		newDumpCmd(opts),
	)
	return rootCmd
}
