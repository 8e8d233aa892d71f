package views

import "bytes"

// pageMeta carries per-page head metadata: title, description, canonical URL,
// social preview tags, and the structured-data block.
type pageMeta struct {
	Title       string
	Description string
	Canonical   string
	OGType      string // "website" or "product"
	Image       string // absolute URL, optional
	PageCSS     string // page-specific stylesheet, fixed relative path
	JsonLD      string
}

func writeHead(buf *bytes.Buffer, site Site, m pageMeta) {
	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString(`<html lang="en">` + "\n<head>\n")
	buf.WriteString(`<meta charset="utf-8"/>` + "\n")
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>` + "\n")
	buf.WriteString("<title>" + esc(m.Title) + "</title>\n")
	buf.WriteString(`<meta name="description" content="` + esc(m.Description) + `"/>` + "\n")
	buf.WriteString(`<link rel="canonical" href="` + esc(m.Canonical) + `"/>` + "\n")
	buf.WriteString(`<meta property="og:title" content="` + esc(m.Title) + `"/>` + "\n")
	buf.WriteString(`<meta property="og:description" content="` + esc(m.Description) + `"/>` + "\n")
	buf.WriteString(`<meta property="og:url" content="` + esc(m.Canonical) + `"/>` + "\n")
	buf.WriteString(`<meta property="og:type" content="` + esc(m.OGType) + `"/>` + "\n")
	buf.WriteString(`<meta property="og:site_name" content="` + esc(site.Name) + `"/>` + "\n")
	if m.Image != "" {
		buf.WriteString(`<meta property="og:image" content="` + esc(m.Image) + `"/>` + "\n")
		buf.WriteString(`<meta name="twitter:card" content="summary_large_image"/>` + "\n")
		buf.WriteString(`<meta name="twitter:image" content="` + esc(m.Image) + `"/>` + "\n")
	} else {
		buf.WriteString(`<meta name="twitter:card" content="summary"/>` + "\n")
	}
	buf.WriteString(`<meta name="twitter:title" content="` + esc(m.Title) + `"/>` + "\n")
	buf.WriteString(`<meta name="twitter:description" content="` + esc(m.Description) + `"/>` + "\n")
	buf.WriteString(`<link rel="icon" href="favicon.svg" type="image/svg+xml"/>` + "\n")
	buf.WriteString(`<link rel="stylesheet" href="css/site.css"/>` + "\n")
	if m.PageCSS != "" {
		buf.WriteString(`<link rel="stylesheet" href="` + m.PageCSS + `"/>` + "\n")
	}
	if m.JsonLD != "" {
		buf.WriteString(`<script type="application/ld+json">` + m.JsonLD + "</script>\n")
	}
	buf.WriteString("</head>\n<body>\n")
}

func writeHeader(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<header class="site-header">` + "\n")
	buf.WriteString(`<a class="site-title" href="index.html">` + esc(site.Name) + "</a>\n")
	buf.WriteString("</header>\n")
}

// writePromo emits the fixed promotional block that closes every page.
func writePromo(buf *bytes.Buffer) {
	buf.WriteString(`<aside class="promo">` + "\n")
	buf.WriteString("<h2>Learn the craft, not just the gear</h2>\n")
	buf.WriteString("<p>The Metergeist illustrated film photography course walks you from your first roll to the darkroom: exposure, metering, film choice, and development, one drawing at a time.</p>\n")
	buf.WriteString(`<a class="promo-cta" href="course.html">Start the course</a>` + "\n")
	buf.WriteString("</aside>\n")
}

func writeFooter(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<footer class="site-footer">` + "\n")
	buf.WriteString("<p>" + esc(site.Name) + " &middot; prices are estimates, not offers. Check your shutter speeds before you pay mint money.</p>\n")
	buf.WriteString("</footer>\n</body>\n</html>\n")
}
