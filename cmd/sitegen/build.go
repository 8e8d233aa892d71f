package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metergeist/sitegen"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Render every camera page plus the index and sitemap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd)
		},
	}
}

func runBuild(cmd *cobra.Command) error {
	log := newLogger()
	defer log.Sync()

	cfg, err := sitegen.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Debugw("build starting", "input", cfg.InputDir, "output", cfg.OutputDir)

	stats, err := sitegen.Build(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Generated %d camera pages + index\n", stats.CameraPages)
	return nil
}
