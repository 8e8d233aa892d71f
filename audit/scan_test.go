package audit

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestClassifyLink(t *testing.T) {
	base := mustParse(t, "https://metergeist.com")
	page := "https://metergeist.com/leica-m3.html"
	tests := []struct {
		href     string
		kind     string
		resolved string
	}{
		{"#specs", "", ""},
		{"mailto:hi@metergeist.com", "", ""},
		{"tel:+15551234", "", ""},
		{"javascript:void(0)", "", ""},
		{"", "", ""},
		{"index.html", "internal", "https://metergeist.com/index.html"},
		{"/leica-m2.html", "internal", "https://metergeist.com/leica-m2.html"},
		{"https://metergeist.com/rollei-35.html#history", "internal", "https://metergeist.com/rollei-35.html"},
		{"https://www.metergeist.com/about.html", "internal", "https://www.metergeist.com/about.html"},
		{"https://casualphotophile.com/review", "external", "https://casualphotophile.com/review"},
		{"https://www.flickr.com/groups/tlr/", "external", "https://www.flickr.com/groups/tlr/"},
	}
	for _, tt := range tests {
		kind, resolved := classifyLink(tt.href, page, base)
		if kind != tt.kind {
			t.Errorf("classifyLink(%q) kind = %q, want %q", tt.href, kind, tt.kind)
			continue
		}
		if resolved != tt.resolved {
			t.Errorf("classifyLink(%q) resolved = %q, want %q", tt.href, resolved, tt.resolved)
		}
	}
}

func TestFileToURL(t *testing.T) {
	base := mustParse(t, "https://metergeist.com")
	tests := []struct {
		rel  string
		want string
	}{
		{"index.html", "https://metergeist.com/"},
		{"leica-m3.html", "https://metergeist.com/leica-m3.html"},
		{"guides/index.html", "https://metergeist.com/guides/"},
	}
	for _, tt := range tests {
		if got := fileToURL(tt.rel, base); got != tt.want {
			t.Errorf("fileToURL(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestParsePage(t *testing.T) {
	doc := `<!DOCTYPE html><html><head><title>Leica M3 &mdash; Metergeist</title></head>
<body><p>Text <a href="/index.html">Home
  page</a> and <a href="https://example.com/x">an external  link</a>.</p>
<a name="anchor-without-href">skip me</a></body></html>`

	title, links, err := parsePage(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parsePage failed: %v", err)
	}
	if !strings.HasPrefix(title, "Leica M3") {
		t.Errorf("title = %q", title)
	}
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2: %+v", len(links), links)
	}
	if links[0].Href != "/index.html" || links[0].Text != "Home page" {
		t.Errorf("first link = %+v (text should be whitespace-normalized)", links[0])
	}
	if links[1].Href != "https://example.com/x" {
		t.Errorf("second link = %+v", links[1])
	}
}

func TestCheckInternal(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "leica-m3.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		target string
		want   int
	}{
		{"https://metergeist.com/", 200},
		{"https://metergeist.com/leica-m3.html", 200},
		{"https://metergeist.com/nope.html", 404},
	}
	for _, tt := range tests {
		if got := checkInternal(root, tt.target); got != tt.want {
			t.Errorf("checkInternal(%q) = %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestScanAndSummary(t *testing.T) {
	root := t.TempDir()
	pages := map[string]string{
		"index.html": `<html><head><title>Metergeist</title></head><body>
			<a href="leica-m3.html">Leica M3</a>
			<a href="missing.html">Gone</a></body></html>`,
		"leica-m3.html": `<html><head><title>Leica M3</title></head><body>
			<a href="index.html">Home</a>
			<a href="https://casualphotophile.com/review">Review</a>
			<a href="#specs">Specs</a></body></html>`,
	}
	for name, content := range pages {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	store, err := NewStore(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Close()

	result, err := Scan(store, root, "https://metergeist.com")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.Pages != 2 {
		t.Errorf("Pages = %d, want 2", result.Pages)
	}
	// Fragment-only link is skipped: 3 internal + 1 external.
	if result.Links != 4 {
		t.Errorf("Links = %d, want 4", result.Links)
	}

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals failed: %v", err)
	}
	if totals.Internal != 3 || totals.External != 1 {
		t.Errorf("totals = %+v", totals)
	}
	if totals.BrokenInternal != 1 {
		t.Errorf("BrokenInternal = %d, want 1 (missing.html)", totals.BrokenInternal)
	}
	if totals.Unchecked != 1 {
		t.Errorf("Unchecked = %d, want 1", totals.Unchecked)
	}

	md, err := Summary(store, "https://metergeist.com", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	for _, want := range []string{
		"| Pages scanned | 2 |",
		"| Broken internal | 1 |",
		"## Broken Links",
		"`/missing.html`",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q:\n%s", want, md)
		}
	}
}

func TestScanRebuildsFromScratch(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"),
		[]byte(`<html><head><title>T</title></head><body><a href="a.html">A</a></body></html>`), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := NewStore(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := Scan(store, root, "https://metergeist.com"); err != nil {
		t.Fatal(err)
	}
	if _, err := Scan(store, root, "https://metergeist.com"); err != nil {
		t.Fatal(err)
	}
	totals, err := store.Totals()
	if err != nil {
		t.Fatal(err)
	}
	if totals.Links != 1 {
		t.Errorf("rescan should not accumulate links, got %d", totals.Links)
	}
}
