package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// IndexPage renders the aggregate index document. brandOrder fixes the
// section sequence; brands with no records are skipped, and brands outside
// the order list do not appear here at all (their cameras still get pages).
func IndexPage(site Site, cameras []Camera, groups map[string][]Camera, brandOrder []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeIndexPage(&buf, site, cameras, groups, brandOrder)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeIndexPage(buf *bytes.Buffer, site Site, cameras []Camera, groups map[string][]Camera, brandOrder []string) {
	writeHead(buf, site, pageMeta{
		Title:       site.Name,
		Description: site.Description,
		Canonical:   BuildURL(site.URL),
		OGType:      "website",
		PageCSS:     "css/index.css",
		JsonLD:      CollectionJsonLD(site, len(cameras)),
	})
	writeHeader(buf, site)

	buf.WriteString(`<main class="catalog">` + "\n")
	buf.WriteString("<h1>" + esc(site.Name) + "</h1>\n")
	if site.Description != "" {
		buf.WriteString(`<p class="intro">` + esc(site.Description) + "</p>\n")
	}

	for _, brand := range brandOrder {
		group := groups[brand]
		if len(group) == 0 {
			continue
		}
		buf.WriteString(`<section class="brand" id="` + esc(brandAnchor(brand)) + `">` + "\n")
		buf.WriteString("<h2>" + esc(brand) + "</h2>\n")
		buf.WriteString(`<div class="cards">` + "\n")
		for _, c := range group {
			writeCard(buf, c)
		}
		buf.WriteString("</div>\n</section>\n")
	}

	buf.WriteString("</main>\n")
	writePromo(buf)
	writeFooter(buf, site)
}

// writeCard emits one camera summary card: image if present, name, years,
// and the average-condition price range if the record prices that condition.
func writeCard(buf *bytes.Buffer, c Camera) {
	buf.WriteString(`<a class="card" href="` + esc(c.ID) + `.html">` + "\n")
	if c.Image != "" {
		buf.WriteString(`<img src="` + esc(ImagePath(c.Image)) + `" alt="` + esc(c.Brand+" "+c.Name) + `" loading="lazy"/>` + "\n")
	}
	buf.WriteString("<h3>" + esc(c.Name) + "</h3>\n")
	buf.WriteString(`<p class="years">` + esc(YearRange(c)) + "</p>\n")
	if r, ok := AveragePrice(c.Pricing); ok {
		buf.WriteString(`<p class="price">` + esc(FormatPrice(r)) + ` <span>avg. condition</span></p>` + "\n")
	}
	buf.WriteString("</a>\n")
}

func brandAnchor(brand string) string {
	return Slugify(brand)
}
