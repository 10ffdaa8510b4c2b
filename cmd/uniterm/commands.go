package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/uniterm/internal/app"
	"github.com/five82/uniterm/internal/canvas"
	"github.com/five82/uniterm/internal/config"
	"github.com/five82/uniterm/internal/fetch"
	"github.com/five82/uniterm/internal/logging"
	"github.com/five82/uniterm/internal/nav"
	"github.com/five82/uniterm/internal/render"
	"github.com/five82/uniterm/internal/view"
)

// maxConcurrentDumps bounds parallel fetches in the dump command.
const maxConcurrentDumps = 4

// cliEnv is what the non-interactive commands share.
type cliEnv struct {
	cfg     config.Config
	logger  *zap.Logger
	service *fetch.Service
}

// setup loads config and builds a service that logs to stderr.
func setup(opts *cliOptions) (*cliEnv, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(logging.Options{Verbose: opts.verbose})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	service, err := app.NewService(cfg, logger)
	if err != nil {
		logging.Sync(logger)
		return nil, err
	}
	return &cliEnv{cfg: cfg, logger: logger, service: service}, nil
}

func newRoutesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route of every published composition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer logging.Sync(env.logger)

			routes, err := env.service.Routes(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, route := range routes {
				fmt.Fprintln(out, route)
			}
			return nil
		},
	}
}

func newListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List published compositions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer logging.Sync(env.logger)

			entries, err := env.service.Compositions(cmd.Context())
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), entries)
		},
	}
}

func writeList(out io.Writer, entries []canvas.ListEntry) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tROUTE\tNAME")
	for _, e := range entries {
		route := e.Route()
		if route == "" {
			route = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Composition.ID, e.Composition.Type, route, e.Composition.Name)
	}
	return tw.Flush()
}

// dumpResult is one entry of the dump output.
type dumpResult struct {
	Link        string                    `json:"link"`
	Composition *canvas.ComponentInstance `json:"composition,omitempty"`
	Error       string                    `json:"error,omitempty"`
}

func newDumpCmd(opts *cliOptions) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "dump [path...]",
		Short: "Fetch compositions and print them as JSON",
		Long: `Fetches the composition at each path concurrently and prints the results
in argument order. With --id the composition with that id is printed instead.
With --tree the rendered screen outline is printed instead of JSON.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.compositionID == "" && len(args) == 0 {
				return errors.New("requires at least one path or --id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer logging.Sync(env.logger)

			results := dump(cmd, env, opts, args)
			if tree {
				return writeTrees(cmd.OutOrStdout(), results, env.logger, opts.preview || env.cfg.Preview)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				return fmt.Errorf("encode output: %w", err)
			}
			return dumpError(results)
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "print the rendered view tree instead of JSON")
	return cmd
}

// dump fetches every requested composition. Failures are recorded per entry
// so one bad path does not hide the others.
func dump(cmd *cobra.Command, env *cliEnv, opts *cliOptions, args []string) []dumpResult {
	fetchOpts := fetch.Options{Preview: opts.preview || env.cfg.Preview}

	var routes []nav.Route
	if opts.compositionID != "" {
		routes = append(routes, nav.Route{Kind: nav.KindComposition, CompositionID: opts.compositionID})
	}
	for _, arg := range args {
		routes = append(routes, nav.Route{Kind: nav.KindComposition, Path: nav.Segments(arg)})
	}

	results := make([]dumpResult, len(routes))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxConcurrentDumps)
	for i, route := range routes {
		g.Go(func() error {
			var comp *canvas.ComponentInstance
			var err error
			if route.CompositionID != "" {
				comp, err = env.service.ByID(ctx, route.CompositionID, fetchOpts)
			} else {
				comp, err = env.service.ByRoute(ctx, route.Path, fetchOpts)
			}
			results[i] = dumpResult{Link: route.Link(), Composition: comp}
			if err != nil {
				results[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func dumpError(results []dumpResult) error {
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d compositions failed", failed, len(results))
	}
	return nil
}

func writeTrees(out io.Writer, results []dumpResult, logger *zap.Logger, preview bool) error {
	walker := render.NewWalker(nil, render.WithLogger(logger))
	for _, r := range results {
		fmt.Fprintf(out, "== %s\n", r.Link)
		if r.Error != "" {
			fmt.Fprintf(out, "error: %s\n", r.Error)
			continue
		}
		writeNode(out, walker.Render(r.Composition, render.Context{Preview: preview}), 0)
	}
	return dumpError(results)
}

func writeNode(out io.Writer, n view.Node, depth int) {
	line := strings.Repeat("  ", depth) + n.Kind.String()
	if n.Style != view.StyleDefault {
		line += "[" + string(n.Style) + "]"
	}
	if n.Text != "" {
		line += fmt.Sprintf(" %q", n.Text)
	}
	if n.Action != nil {
		line += " -> " + n.Action.Target
	}
	fmt.Fprintln(out, line)
	for _, child := range n.Children {
		writeNode(out, child, depth+1)
	}
}
