package audit

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// WriteSummary renders link_summary.md from the current database contents.
func WriteSummary(store *Store, path, baseURL string) error {
	md, err := Summary(store, baseURL, time.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(md), 0o644)
}

// Summary builds the audit report markdown.
func Summary(store *Store, baseURL string, now time.Time) (string, error) {
	totals, err := store.Totals()
	if err != nil {
		return "", err
	}
	broken, err := store.BrokenLinks()
	if err != nil {
		return "", err
	}
	warnings, err := store.WarnLinks()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Link Audit\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.UTC().Format("2006-01-02 15:04 UTC"))
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Pages scanned | %d |\n", totals.Pages)
	fmt.Fprintf(&b, "| Total links | %d |\n", totals.Links)
	fmt.Fprintf(&b, "| Internal links | %d |\n", totals.Internal)
	fmt.Fprintf(&b, "| External links | %d |\n", totals.External)
	fmt.Fprintf(&b, "| Broken internal | %d |\n", totals.BrokenInternal)
	fmt.Fprintf(&b, "| Broken external | %d |\n", totals.BrokenExternal)
	if totals.Unchecked > 0 {
		fmt.Fprintf(&b, "| Unchecked external | %d |\n", totals.Unchecked)
	}
	b.WriteString("\n")

	if len(broken) > 0 {
		b.WriteString("## Broken Links\n\n")
		b.WriteString("| Status | Source | Target | Link Text |\n|--------|--------|--------|-----------|\n")
		for _, l := range broken {
			fmt.Fprintf(&b, "| %d | `%s` | `%s` | %s |\n",
				l.Status, shorten(l.Source, baseURL), targetLabel(l, baseURL), truncate(l.Text, 40))
		}
		b.WriteString("\n")
	}

	if len(warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		b.WriteString("These responded but may want a manual look (bot blocking, rate limits, server errors).\n\n")
		b.WriteString("| Status | Source | Target |\n|--------|--------|--------|\n")
		for _, l := range warnings {
			fmt.Fprintf(&b, "| %d | `%s` | `%s` |\n",
				l.Status, shorten(l.Source, baseURL), targetLabel(l, baseURL))
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// shorten strips the base URL prefix so internal URLs read as paths.
func shorten(u, baseURL string) string {
	if s := strings.TrimPrefix(u, baseURL); s != u {
		if s == "" {
			return "/"
		}
		return s
	}
	return u
}

func targetLabel(l Link, baseURL string) string {
	if l.Kind == "internal" {
		return shorten(l.Target, baseURL)
	}
	return l.Target
}

func truncate(s string, n int) string {
	if len(s) <= n+3 {
		return s
	}
	return s[:n] + "..."
}
