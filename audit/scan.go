package audit

import (
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// rawLink is one anchor as found in the markup.
type rawLink struct {
	Href string
	Text string
}

// ScanResult reports what a scan found.
type ScanResult struct {
	Pages int
	Links int
}

// Scan walks the generated site at root, extracts every anchor, classifies
// it against baseURL, verifies internal targets on disk, and stores it all.
// External links stay unchecked until CheckExternal runs.
func Scan(store *Store, root, baseURL string) (ScanResult, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return ScanResult{}, fmt.Errorf("parse base URL: %w", err)
	}
	files, err := findHTMLFiles(root)
	if err != nil {
		return ScanResult{}, err
	}
	if err := store.ResetScan(); err != nil {
		return ScanResult{}, err
	}

	now := time.Now()
	var result ScanResult
	for _, file := range files {
		rel, err := filepath.Rel(root, file)
		if err != nil {
			return result, err
		}
		f, err := os.Open(file)
		if err != nil {
			return result, err
		}
		title, anchors, err := parsePage(f)
		f.Close()
		if err != nil {
			return result, fmt.Errorf("parse %s: %w", rel, err)
		}

		pageURL := fileToURL(rel, base)
		if err := store.SavePage(Page{
			URL:       pageURL,
			FilePath:  rel,
			Title:     title,
			LinkCount: len(anchors),
		}, now); err != nil {
			return result, err
		}
		result.Pages++

		for _, a := range anchors {
			kind, resolved := classifyLink(a.Href, pageURL, base)
			if kind == "" {
				continue
			}
			link := Link{
				Source: pageURL,
				Target: resolved,
				Text:   a.Text,
				Kind:   kind,
			}
			// Internal targets are cheap to verify right away.
			if kind == "internal" {
				link.Status = checkInternal(root, resolved)
				link.Checked = true
			}
			if err := store.SaveLink(link, now); err != nil {
				return result, err
			}
			result.Links++
		}
	}
	return result, nil
}

// findHTMLFiles lists publishable HTML files under root, sorted. Hidden and
// underscore-prefixed directories are skipped.
func findHTMLFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(name, ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// fileToURL maps a site-relative file path to its canonical URL. index.html
// collapses to its directory URL.
func fileToURL(rel string, base *url.URL) string {
	rel = filepath.ToSlash(rel)
	u := *base
	if rel == "index.html" {
		u.Path = "/"
		return u.String()
	}
	if strings.HasSuffix(rel, "/index.html") {
		u.Path = "/" + strings.TrimSuffix(rel, "index.html")
		return u.String()
	}
	u.Path = "/" + rel
	return u.String()
}

// parsePage extracts the document title and every anchor with an href.
func parsePage(r io.Reader) (string, []rawLink, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", nil, err
	}
	var title string
	var links []rawLink
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if title == "" {
					title = normalizeSpace(nodeText(n))
				}
			case "a":
				for _, attr := range n.Attr {
					if attr.Key == "href" && attr.Val != "" {
						links = append(links, rawLink{
							Href: attr.Val,
							Text: normalizeSpace(nodeText(n)),
						})
						break
					}
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return title, links, nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// classifyLink resolves href against its page and classifies it. Fragments,
// mailto:, tel:, and javascript: links return an empty kind and are skipped.
// Internal links are same-host (or relative) with the fragment stripped.
func classifyLink(href, pageURL string, base *url.URL) (kind, resolved string) {
	href = strings.TrimSpace(href)
	if href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "javascript:") {
		return "", ""
	}
	page, err := url.Parse(pageURL)
	if err != nil {
		return "", ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", ""
	}
	abs := page.ResolveReference(ref)

	host := strings.TrimPrefix(abs.Hostname(), "www.")
	baseHost := strings.TrimPrefix(base.Hostname(), "www.")
	if host == "" || host == baseHost {
		abs.Fragment = ""
		return "internal", abs.String()
	}
	return "external", abs.String()
}

// checkInternal verifies an internal URL against the local file tree:
// 200 when the target file exists, 404 otherwise.
func checkInternal(root, target string) int {
	u, err := url.Parse(target)
	if err != nil {
		return 404
	}
	p := u.Path
	var local string
	if p == "" || strings.HasSuffix(p, "/") {
		local = filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(p, "/")), "index.html")
	} else {
		local = filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(p, "/")))
	}
	if _, err := os.Stat(local); err != nil {
		return 404
	}
	return 200
}
