package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/statespace/search"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfg      Config
	flags    Config // flag targets, copied into cfg only when set
	logger   *slog.Logger
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), flags: DefaultConfig(), logger: slog.Default()}
	var configPath string

	root := &cobra.Command{
		Use:           "statespace",
		Short:         "Solve mazes and knight puzzles with classic search algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, configPath)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML run file with defaults for every flag")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "log level: debug, info, warn or error")
	pf.BoolVar(&a.flags.Trace, "trace", false, "write OpenTelemetry spans to stderr")

	root.AddCommand(newMazeCmd(a), newKnightCmd(a), newAlgorithmsCmd())

	return root
}

// setup resolves the configuration and installs logging and tracing.
func (a *app) setup(cmd *cobra.Command, configPath string) error {
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		a.cfg = *loaded
	}
	changed := cmd.Flags().Changed
	if changed("log-level") {
		a.cfg.LogLevel = a.flags.LogLevel
	}
	if changed("trace") {
		a.cfg.Trace = a.flags.Trace
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.cfg.LogLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.cfg.Trace {
		shutdown, err := setupTracing(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to set up tracing: %w", err)
		}
		a.shutdown = shutdown
	}

	a.logger.Debug("configuration resolved",
		slog.String("config", configPath),
		slog.String("command", cmd.Name()),
	)

	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	err := a.shutdown(context.WithoutCancel(ctx))
	a.shutdown = nil

	return err
}

// setupTracing installs a global tracer provider that pretty-prints spans to w.
func setupTracing(w io.Writer) (func(context.Context) error, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// overlaySearch copies the search flags that were set on the command line.
func overlaySearch(changed func(string) bool, dst, src *SearchConfig) {
	if changed("algorithm") {
		dst.Algorithm = src.Algorithm
	}
	if changed("seed") {
		dst.Seed = src.Seed
	}
	if changed("max-expansions") {
		dst.MaxExpansions = src.MaxExpansions
	}
	if changed("timeout") {
		dst.Timeout = src.Timeout
	}
}

// bindSearchFlags registers the flags shared by every puzzle command.
func bindSearchFlags(cmd *cobra.Command, sc *SearchConfig) {
	names := make([]string, 0, len(search.Algorithms()))
	for _, alg := range search.Algorithms() {
		names = append(names, alg.String())
	}

	f := cmd.Flags()
	f.StringVarP(&sc.Algorithm, "algorithm", "a", sc.Algorithm, "search algorithm: "+strings.Join(names, ", "))
	f.Uint64Var(&sc.Seed, "seed", sc.Seed, "seed for the random algorithm (0 picks one)")
	f.IntVar(&sc.MaxExpansions, "max-expansions", sc.MaxExpansions, "abort after this many expanded states (0 = unlimited)")
	f.DurationVar(&sc.Timeout, "timeout", sc.Timeout, "abort the search after this long (0 = no limit)")
}

// searchOptions translates sc into search options. The returned cancel
// function must be called once the search returns.
func (a *app) searchOptions(ctx context.Context, sc SearchConfig) ([]search.Option, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if sc.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, sc.Timeout)
	}

	opts := []search.Option{
		search.WithContext(ctx),
		search.WithLogger(a.logger),
		search.WithMaxExpansions(sc.MaxExpansions),
	}
	if sc.Seed != 0 {
		opts = append(opts, search.WithSeed(sc.Seed))
	}

	return opts, cancel
}

// printSummary writes the one-line result summary.
func printSummary[S comparable](w io.Writer, res *search.Result[S]) {
	fmt.Fprintf(w, "%s: %d steps, cost %g, %d states expanded, frontier peak %d\n",
		res.Algorithm, res.Len(), res.Cost, res.Expanded, res.MaxFrontier)
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available search algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, alg := range search.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), alg)
			}
		},
	}
}
