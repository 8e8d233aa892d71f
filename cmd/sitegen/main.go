// Command sitegen builds the metergeist camera site from a directory of
// camera JSON records, previews the output locally, and audits the links of
// a finished build.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	configPath string
	verbose    bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sitegen",
		Short: "Static site builder for the metergeist camera reference",
		// Bare invocation runs the full build.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "site.yaml", "site config file")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newAuditCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the sitegen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sitegen %s\n", version)
		},
	})
	return root
}

// newLogger builds the process logger. Library packages return errors; only
// the command layer logs.
func newLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		// zap's production config only fails on bad user options; ours are fixed.
		panic(err)
	}
	return logger.Sugar()
}
