package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metergeist/sitegen"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the built site locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sitegen.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			fmt.Printf("Serving %s on %s\n", cfg.OutputDir, addr)
			return sitegen.Serve(addr, cfg.OutputDir)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
