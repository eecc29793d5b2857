package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"guardgen/internal/config"
	"guardgen/internal/guarderr"
	"guardgen/internal/pipeline"
	"guardgen/internal/source"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "guardgen: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	verbose    bool
	dumpAST    bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "guardgen",
		Short: "Generates the guard registry from the guard module",
		Long: `Generates the generated_guards.go file.

guardgen parses the guard module (guards/guards.ts by default) with Tree-sitter,
removes export qualifiers from its declarations, keeps every function whose
return type narrows its single parameter to a primitive type, and writes the
resulting syntax trees into a Go file as a map of GeneratedTypeGuard values.

The guards are ordinary TypeScript so they can be tested like any other code.
Their source, however, has to be available to the code generator at run time so
it can be placed in the files generated for users. Type information does not
survive compilation, so the trees are captured here, at build time, and embedded
in the generated file instead.

Settings are read from guardgen.yaml when present and can be overridden with the
GUARDGEN_SOURCE, GUARDGEN_OUTPUT, GUARDGEN_PACKAGE and GUARDGEN_DIALECT
environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if opts.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Path to the guardgen configuration file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&opts.dumpAST, "dump-ast", false, "Print the normalized syntax tree as JSON")

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return &guarderr.StageError{Stage: guarderr.StageConfig, Err: err}
	}

	// The store is rooted at the filesystem root so that both relative and
	// absolute paths from the configuration resolve the same way.
	run := *cfg
	if run.Source, err = filepath.Abs(cfg.Source); err != nil {
		return &guarderr.StageError{Stage: guarderr.StageConfig, Err: err}
	}
	if run.Output, err = filepath.Abs(cfg.Output); err != nil {
		return &guarderr.StageError{Stage: guarderr.StageConfig, Err: err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔍 Extracting guards from %s...\n", cfg.Source)

	res, err := pipeline.New(&run, source.NewOSStore(string(filepath.Separator)), opts.logger).Run(ctx)
	if err != nil {
		return err
	}

	if opts.dumpAST {
		if err := pipeline.DumpProgram(out, res.Program); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "✅ Wrote %d guards to %s\n", res.Registry.Len(), cfg.Output)
	return nil
}
