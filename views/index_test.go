package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func renderIndex(t *testing.T, cameras []Camera, brandOrder []string) string {
	t.Helper()
	groups := make(map[string][]Camera)
	for _, c := range cameras {
		groups[c.Brand] = append(groups[c.Brand], c)
	}
	var buf bytes.Buffer
	if err := IndexPage(testSite(), cameras, groups, brandOrder).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestIndexBrandSectionOrder(t *testing.T) {
	cameras := []Camera{
		{ID: "m3", Brand: "Leica", Name: "M3", YearStart: 1954},
		{ID: "rolleiflex-automat", Brand: "Rollei", Name: "Rolleiflex Automat", YearStart: 1937},
		{ID: "f", Brand: "Nikon", Name: "F", YearStart: 1959},
	}
	html := renderIndex(t, cameras, []string{"Nikon", "Leica", "Rollei"})

	nikon := strings.Index(html, `id="nikon"`)
	leica := strings.Index(html, `id="leica"`)
	rollei := strings.Index(html, `id="rollei"`)
	if nikon < 0 || leica < 0 || rollei < 0 {
		t.Fatalf("missing brand sections: %q", html)
	}
	if !(nikon < leica && leica < rollei) {
		t.Error("sections should follow the fixed brand order, not the sort order")
	}
}

func TestIndexYearOrderWithinBrand(t *testing.T) {
	// Collection order is already sorted (loader contract); the index must
	// preserve it: 1937 card before 1954 card within the Rollei section.
	cameras := []Camera{
		{ID: "rolleiflex-automat", Brand: "Rollei", Name: "Rolleiflex Automat", YearStart: 1937},
		{ID: "rolleiflex-2-8", Brand: "Rollei", Name: "Rolleiflex 2.8", YearStart: 1954},
	}
	html := renderIndex(t, cameras, []string{"Rollei"})

	first := strings.Index(html, "rolleiflex-automat.html")
	second := strings.Index(html, "rolleiflex-2-8.html")
	if first < 0 || second < 0 {
		t.Fatalf("missing cards: %q", html)
	}
	if first > second {
		t.Error("1937 card should precede the 1954 card")
	}
}

func TestIndexSkipsBrandsOutsideOrder(t *testing.T) {
	cameras := []Camera{
		{ID: "m3", Brand: "Leica", Name: "M3", YearStart: 1954},
		{ID: "obscura", Brand: "Obscura Works", Name: "One", YearStart: 1980},
	}
	html := renderIndex(t, cameras, []string{"Leica"})

	if strings.Contains(html, "Obscura Works") {
		t.Error("brands outside the fixed order must not appear on the index")
	}
	// Total count still includes every camera.
	if !strings.Contains(html, `"numberOfItems":2`) {
		t.Errorf("structured data should count all cameras: %q", html)
	}
}

func TestIndexSkipsEmptyBrands(t *testing.T) {
	cameras := []Camera{
		{ID: "m3", Brand: "Leica", Name: "M3", YearStart: 1954},
	}
	html := renderIndex(t, cameras, []string{"Hasselblad", "Leica"})
	if strings.Contains(html, `id="hasselblad"`) {
		t.Error("brand with zero records should have no section")
	}
}

func TestIndexCardPrice(t *testing.T) {
	cameras := []Camera{
		{
			ID: "m3", Brand: "Leica", Name: "M3", YearStart: 1954,
			Pricing: &Pricing{Conditions: map[string]PriceRange{"average": {Min: 600, Max: 900}}},
		},
		{ID: "m2", Brand: "Leica", Name: "M2", YearStart: 1957},
	}
	html := renderIndex(t, cameras, []string{"Leica"})

	if !strings.Contains(html, "$600–$900") {
		t.Errorf("average-condition price missing: %q", html)
	}
	// Card without pricing renders no price element.
	m2 := html[strings.Index(html, "m2.html"):]
	if strings.Contains(m2[:strings.Index(m2, "</a>")], `class="price"`) {
		t.Error("card without pricing should omit the price line")
	}
}

func TestIndexCardImage(t *testing.T) {
	cameras := []Camera{
		{ID: "m3", Brand: "Leica", Name: "M3", YearStart: 1954, Image: "rf/leica-m3.jpg"},
		{ID: "m2", Brand: "Leica", Name: "M2", YearStart: 1957},
	}
	html := renderIndex(t, cameras, []string{"Leica"})
	if !strings.Contains(html, `src="/images/leica-m3.jpg"`) {
		t.Error("card image missing")
	}
}
