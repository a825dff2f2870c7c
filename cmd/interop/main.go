// Command interop runs the conversion demos: Result around a JSON parse, IO
// around a random source, and Option around slice searches.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/charmingruby/fgp-interop/internal/config"
	"github.com/charmingruby/fgp-interop/internal/demo"
	"github.com/charmingruby/fgp-interop/seq"
	"github.com/charmingruby/fgp-interop/task"
)

var (
	verbose    bool
	configPath string
	seed       uint64
	timeout    time.Duration

	logger    *zap.Logger
	scenarios config.Scenarios

	newLogger = func() (*zap.Logger, error) {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		return cfg.Build()
	}
)

var rootCmd = &cobra.Command{
	Use:   "interop",
	Short: "Show how error, nil and sentinel returning code maps onto Result, Option and IO",
	Long: `interop prints each demo twice: once with the conventional Go call
(an error return, a nil pointer, a -1 index, a global random source) and once
with the call wrapped in a Result, an Option or an IO.

Run without a subcommand to print every demo.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		scenarios, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			scenarios.Random.Seed = &seed
		}
		logger.Debug("scenarios loaded",
			zap.String("config", configPath),
			zap.Int("inputs", len(scenarios.Exceptions.Inputs)),
			zap.Int("draws", scenarios.Random.Draws),
			zap.Strings("targets", scenarios.Search.Targets),
		)
		return nil
	},
	RunE: runAll,
}

func demoCmd(name demo.Name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(name),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask(cmd, string(name), func(ctx context.Context, w io.Writer) error {
				return demo.Run(ctx, name, w, scenarios)
			})
		},
	}
}

func runAll(cmd *cobra.Command, args []string) error {
	logger.Debug("running demos", zap.Strings("demos", seq.Map(demo.Names, func(n demo.Name) string {
		return string(n)
	})))
	return runTask(cmd, "all", func(ctx context.Context, w io.Writer) error {
		return demo.All(ctx, w, scenarios)
	})
}

// runTask runs fn as a Task bounded by --timeout. Ctrl-C or the deadline
// stops the output midway.
func runTask(cmd *cobra.Command, label string, fn func(context.Context, io.Writer) error) error {
	out := cmd.OutOrStdout()
	run := task.From(func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx, out)
	})
	start := time.Now()
	if _, err := task.Timeout(run, timeout)(cmd.Context()); err != nil {
		logger.Error("demo failed", zap.String("demo", label), zap.Error(err))
		return fmt.Errorf("%s: %w", label, err)
	}
	logger.Debug("demo finished", zap.String("demo", label), zap.Duration("took", time.Since(start)))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file overriding the demo scenarios")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed the random demo for reproducible output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Deadline for the whole run (0 disables)")

	rootCmd.AddCommand(
		demoCmd(demo.Exceptions, "Wrap a JSON parse in a Result"),
		demoCmd(demo.RandomValues, "Model a random source as an IO"),
		demoCmd(demo.Sentinel, "Replace a -1 index with an Option"),
		demoCmd(demo.UndefinedAndNull, "Replace a nil pointer with an Option"),
		&cobra.Command{
			Use:   "all",
			Short: "Run every demo",
			Args:  cobra.NoArgs,
			RunE:  runAll,
		},
	)

	// Finalizers also run when RunE fails, which is when the log matters most.
	cobra.OnFinalize(syncLogger)
}

func syncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
