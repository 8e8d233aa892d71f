package sitegen

import (
	"bytes"
	"context"

	"github.com/a-h/templ"

	"github.com/metergeist/sitegen/views"
)

// Stats summarizes a completed build.
type Stats struct {
	CameraPages int // per-camera pages written, index not counted
}

// Build runs the whole pipeline: load and sort records, render every page in
// memory, then write the output set. Fatal on the first error; writes are not
// transactional, so an output failure can leave a partial set behind.
func Build(ctx context.Context, cfg SiteConfig) (Stats, error) {
	cameras, err := LoadCameras(cfg.InputDir)
	if err != nil {
		return Stats{}, err
	}
	groups := GroupByBrand(cameras)
	site := cfg.site()

	if err := checkOutputDir(cfg.OutputDir); err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, c := range cameras {
		page, err := renderComponent(ctx, views.CameraPage(site, c, groups[c.Brand]))
		if err != nil {
			return stats, err
		}
		if err := writeFile(cfg.OutputDir, c.ID+".html", page); err != nil {
			return stats, err
		}
		stats.CameraPages++
	}

	index, err := renderComponent(ctx, views.IndexPage(site, cameras, groups, cfg.BrandOrder))
	if err != nil {
		return stats, err
	}
	if err := writeFile(cfg.OutputDir, "index.html", index); err != nil {
		return stats, err
	}

	sitemap, err := renderSitemap(site, cameras)
	if err != nil {
		return stats, err
	}
	if err := writeFile(cfg.OutputDir, "sitemap.xml", sitemap); err != nil {
		return stats, err
	}

	return stats, nil
}

// renderComponent renders a templ component to bytes.
func renderComponent(ctx context.Context, cmp templ.Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := cmp.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
