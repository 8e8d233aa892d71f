package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/metergeist/sitegen"
	"github.com/metergeist/sitegen/audit"
)

func newAuditCmd() *cobra.Command {
	var (
		localOnly   bool
		summaryOnly bool
		showBroken  bool
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Scan the built site's links and write link_summary.md",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()

			cfg, err := sitegen.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			store, err := audit.NewStore(filepath.Join(cfg.OutputDir, "link_audit.db"))
			if err != nil {
				return fmt.Errorf("open audit db: %w", err)
			}
			defer store.Close()

			if showBroken {
				broken, err := store.BrokenLinks()
				if err != nil {
					return err
				}
				for _, l := range broken {
					fmt.Printf("[%3d] %s -> %s\n", l.Status, l.Source, l.Target)
				}
				fmt.Printf("%d broken links\n", len(broken))
				return nil
			}

			summaryPath := filepath.Join(cfg.OutputDir, "link_summary.md")
			if summaryOnly {
				return audit.WriteSummary(store, summaryPath, cfg.URL)
			}

			result, err := audit.Scan(store, cfg.OutputDir, cfg.URL)
			if err != nil {
				return err
			}
			log.Infow("scan done", "pages", result.Pages, "links", result.Links)

			if !localOnly {
				checked, err := audit.CheckExternal(cmd.Context(), store, audit.NewChecker(),
					func(target string, status int) {
						if status < 200 || status >= 400 {
							log.Warnw("bad link", "status", status, "url", target)
						}
					})
				if err != nil {
					return err
				}
				log.Infow("external check done", "checked", checked.Checked, "broken", checked.Broken)
			}

			if err := audit.WriteSummary(store, summaryPath, cfg.URL); err != nil {
				return err
			}
			fmt.Printf("Audited %d pages, %d links\n", result.Pages, result.Links)
			return nil
		},
	}
	cmd.Flags().BoolVar(&localOnly, "local-only", false, "skip external URL checks")
	cmd.Flags().BoolVar(&summaryOnly, "summary-only", false, "regenerate the summary from the existing database")
	cmd.Flags().BoolVar(&showBroken, "broken", false, "print broken links from the existing database")
	return cmd
}
