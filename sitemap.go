package sitegen

import (
	"bytes"
	"encoding/xml"

	"github.com/metergeist/sitegen/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// renderSitemap builds sitemap.xml: the index URL plus one entry per camera,
// in collection order.
func renderSitemap(site views.Site, cameras []views.Camera) ([]byte, error) {
	urls := []sitemapURL{
		{Loc: views.BuildURL(site.URL)},
	}
	for _, c := range cameras {
		urls = append(urls, sitemapURL{Loc: views.PageURL(site, c)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(sitemap); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
