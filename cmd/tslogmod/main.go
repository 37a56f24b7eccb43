package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/tslogmod/pkg/config"
	"github.com/walteh/tslogmod/pkg/log"
	"github.com/walteh/tslogmod/pkg/operation"
)

var (
	// Flags
	configFile string
	dryRun     bool
	debug      bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tslogmod [directories...]",
		Short: "rewrite legacy logger.error call sites to the logError convention",
		Long: `tslogmod scans TypeScript trees for logger.error(message, error) call
sites, rewrites them to logError(error, metadata, message), reconciles the
import declarations, and annotates bare catch (error) clauses.

Positional arguments are the root directories to scan; without any, a
built-in default list is used.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path (.yaml, .yml or .hcl)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	return cmd
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// run executes the migration. Every failure is reported as console text; the
// process always completes with exit code 0.
func run(cmd *cobra.Command, args []string) error {
	setupLogging()
	ctx := cmd.Context()
	fs := afero.NewOsFs()
	userLogger := log.New(ctx, cmd.OutOrStdout())

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(ctx, fs, configFile)
		if err != nil {
			userLogger.ConfigError(err)
			return nil
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Roots = args
		if err := cfg.Validate(); err != nil {
			userLogger.ConfigError(err)
			return nil
		}
	}

	op, err := operation.New(operation.Options{
		Config: cfg,
		FS:     fs,
		Logger: userLogger,
		DryRun: dryRun,
	})
	if err != nil {
		userLogger.ConfigError(err)
		return nil
	}

	modified, err := op.Execute(ctx)
	if err != nil {
		userLogger.ConfigError(err)
		return nil
	}

	userLogger.Summary(modified)
	return nil
}

func main() {
	// Individual file failures never fail the run; exit 0 unconditionally.
	_ = newRootCmd().ExecuteContext(context.Background())
}
