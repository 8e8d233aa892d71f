package views

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// CameraPage renders the full HTML document for one camera. group is the
// camera's brand group from the collection; it feeds the related-cameras
// block. Pure function of its inputs.
func CameraPage(site Site, c Camera, group []Camera) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := writeCameraPage(&buf, site, c, group); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeCameraPage(buf *bytes.Buffer, site Site, c Camera, group []Camera) error {
	img := ""
	if c.Image != "" {
		img = BuildURL(site.URL, ImagePath(c.Image))
	}
	writeHead(buf, site, pageMeta{
		Title:       PageTitle(site, c),
		Description: MetaDescription(c),
		Canonical:   PageURL(site, c),
		OGType:      "product",
		Image:       img,
		PageCSS:     "css/camera.css",
		JsonLD:      ProductJsonLD(site, c),
	})
	writeHeader(buf, site)

	buf.WriteString(`<main class="camera">` + "\n")
	buf.WriteString("<h1>" + esc(c.Brand) + " " + esc(c.Name) + "</h1>\n")

	if c.Tagline != "" {
		buf.WriteString(`<p class="tagline">` + esc(c.Tagline) + "</p>\n")
	}

	writeMetaLine(buf, c)

	if c.Image != "" {
		buf.WriteString(`<figure class="camera-photo">` + "\n")
		buf.WriteString(`<img src="` + esc(ImagePath(c.Image)) + `" alt="` + esc(c.Brand+" "+c.Name) + `"/>` + "\n")
		if c.ImageCredit != "" {
			buf.WriteString("<figcaption>" + esc(c.ImageCredit) + "</figcaption>\n")
		}
		buf.WriteString("</figure>\n")
	}

	writeSpecs(buf, c)

	if len(c.Features) > 0 {
		buf.WriteString(`<section class="features">` + "\n<h2>Features</h2>\n<ul>\n")
		for _, f := range c.Features {
			buf.WriteString("<li>" + esc(f) + "</li>\n")
		}
		buf.WriteString("</ul>\n</section>\n")
	}

	if err := writeNarrativeSection(buf, "history", "History", c.History); err != nil {
		return err
	}
	if err := writeNarrativeSection(buf, "notable-users", "In Famous Hands", c.NotableUsers); err != nil {
		return err
	}
	if err := writeNarrativeSection(buf, "cultural-notes", "Cultural Footprint", c.CulturalNotes); err != nil {
		return err
	}

	if len(c.Innovations) > 0 {
		buf.WriteString(`<section class="innovations">` + "\n<h2>Firsts and Innovations</h2>\n<ul>\n")
		for _, item := range c.Innovations {
			buf.WriteString("<li>" + esc(item) + "</li>\n")
		}
		buf.WriteString("</ul>\n</section>\n")
	}

	if err := writeNarrativeSection(buf, "collector-notes", "Collector Notes", c.CollectorNotes); err != nil {
		return err
	}

	writePricing(buf, c)

	if c.BuyURL != "" {
		buf.WriteString(`<p class="buy"><a href="` + esc(c.BuyURL) + `" rel="` + LinkRel(c.BuyURL, site) + `" target="_blank">Find one on the used market</a></p>` + "\n")
	}

	writeLinkList(buf, site, "articles", "Articles &amp; Reviews", c.Articles)
	writeLinkList(buf, site, "manuals", "Manuals &amp; Documentation", c.Manuals)
	writeLinkList(buf, site, "galleries", "Sample Photos", c.Galleries)

	writeRelated(buf, c, group)

	buf.WriteString("</main>\n")
	writePromo(buf)
	writeFooter(buf, site)
	return nil
}

// writeMetaLine emits the years/format/film/origin line. All four parts are
// optional except the year range; absent parts are skipped, not left blank.
func writeMetaLine(buf *bytes.Buffer, c Camera) {
	parts := []string{YearRange(c)}
	if c.Format != "" {
		parts = append(parts, c.Format)
	}
	if len(c.FilmStocks) > 0 {
		parts = append(parts, strings.Join(c.FilmStocks, ", "))
	}
	if c.Country != "" {
		parts = append(parts, "Made in "+c.Country)
	}
	buf.WriteString(`<p class="meta">`)
	for i, p := range parts {
		if i > 0 {
			buf.WriteString(" &middot; ")
		}
		buf.WriteString(esc(p))
	}
	buf.WriteString("</p>\n")
}

func writeSpecs(buf *bytes.Buffer, c Camera) {
	rows := specRows(c)
	if len(rows) == 0 {
		return
	}
	buf.WriteString(`<section class="specs">` + "\n<h2>Specifications</h2>\n<table>\n<tbody>\n")
	for _, row := range rows {
		buf.WriteString("<tr><th>" + esc(row[0]) + "</th><td>" + esc(row[1]) + "</td></tr>\n")
	}
	buf.WriteString("</tbody>\n</table>\n</section>\n")
}

func writeNarrativeSection(buf *bytes.Buffer, class, heading, content string) error {
	if content == "" {
		return nil
	}
	buf.WriteString(`<section class="` + class + `">` + "\n<h2>" + heading + "</h2>\n")
	if err := renderMarkdown(buf, content); err != nil {
		return err
	}
	buf.WriteString("</section>\n")
	return nil
}

// writePricing emits the condition/price table. Conditions render in fixed
// order; a record with no priced condition gets no table at all.
func writePricing(buf *bytes.Buffer, c Camera) {
	if !HasPricing(c.Pricing) {
		return
	}
	buf.WriteString(`<section class="pricing">` + "\n<h2>What It Costs</h2>\n<table>\n")
	buf.WriteString("<thead><tr><th>Condition</th><th>Price Range</th></tr></thead>\n<tbody>\n")
	for _, cond := range ConditionOrder {
		r, ok := conditionRange(c.Pricing, cond)
		if !ok {
			continue
		}
		buf.WriteString("<tr><td>" + esc(titleCase(cond)) + "</td><td>" + esc(FormatPrice(r)) + "</td></tr>\n")
	}
	buf.WriteString("</tbody>\n</table>\n")
	if c.Pricing.Source != "" {
		buf.WriteString(`<p class="price-source">Source: ` + esc(c.Pricing.Source) + "</p>\n")
	}
	buf.WriteString("</section>\n")
}

func writeLinkList(buf *bytes.Buffer, site Site, class, heading string, links []Link) {
	if len(links) == 0 {
		return
	}
	buf.WriteString(`<section class="` + class + `">` + "\n<h2>" + heading + "</h2>\n<ul>\n")
	for _, l := range links {
		buf.WriteString(`<li><a href="` + esc(l.URL) + `" rel="` + LinkRel(l.URL, site) + `" target="_blank">` + esc(l.Title) + "</a>")
		if l.Source != "" {
			buf.WriteString(` <span class="link-source">(` + esc(l.Source) + ")</span>")
		}
		buf.WriteString("</li>\n")
	}
	buf.WriteString("</ul>\n</section>\n")
}

func writeRelated(buf *bytes.Buffer, c Camera, group []Camera) {
	related := RelatedCameras(c, group)
	if len(related) == 0 {
		return
	}
	buf.WriteString(`<section class="related">` + "\n<h2>More from " + esc(c.Brand) + "</h2>\n<ul>\n")
	for _, r := range related {
		buf.WriteString(`<li><a href="` + esc(r.ID) + `.html">` + esc(r.Brand) + " " + esc(r.Name) + "</a> <span>" + esc(YearRange(r)) + "</span></li>\n")
	}
	buf.WriteString("</ul>\n</section>\n")
}
