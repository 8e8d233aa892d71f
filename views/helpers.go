package views

import (
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"path"
	"strings"
)

// esc escapes the five reserved markup characters. Absent values are empty
// strings and escape to empty strings, never errors.
func esc(s string) string {
	return html.EscapeString(s)
}

// BuildURL joins path segments onto a base URL.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// PageURL is the canonical URL for a camera page.
func PageURL(site Site, c Camera) string {
	return BuildURL(site.URL, c.ID+".html")
}

// ImagePath maps an image reference to its published location under /images/.
// Any subdirectory structure in the source reference is discarded.
func ImagePath(ref string) string {
	return "/images/" + path.Base(ref)
}

// YearRange formats a production run. A zero end year renders the start year
// alone.
func YearRange(c Camera) string {
	if c.YearEnd > 0 {
		return fmt.Sprintf("%d–%d", c.YearStart, c.YearEnd)
	}
	return fmt.Sprintf("%d", c.YearStart)
}

// FormatPrice renders a range as "$min–$max".
func FormatPrice(r PriceRange) string {
	return fmt.Sprintf("$%d–$%d", r.Min, r.Max)
}

// conditionRange returns the range for a condition label, if present.
func conditionRange(p *Pricing, cond string) (PriceRange, bool) {
	if p == nil || p.Conditions == nil {
		return PriceRange{}, false
	}
	r, ok := p.Conditions[cond]
	return r, ok
}

// HasPricing reports whether any condition carries a range. An empty pricing
// object renders nothing, same as an absent one.
func HasPricing(p *Pricing) bool {
	if p == nil {
		return false
	}
	for _, cond := range ConditionOrder {
		if _, ok := p.Conditions[cond]; ok {
			return true
		}
	}
	return false
}

// OfferBounds computes the aggregate offer for structured data: the low bound
// walks conditions from poor upward and takes the first present minimum, the
// high bound walks from mint downward and takes the first present maximum.
func OfferBounds(p *Pricing) (low, high int, ok bool) {
	for _, cond := range ConditionOrder {
		if r, present := conditionRange(p, cond); present {
			low = r.Min
			ok = true
			break
		}
	}
	if !ok {
		return 0, 0, false
	}
	for i := len(ConditionOrder) - 1; i >= 0; i-- {
		if r, present := conditionRange(p, ConditionOrder[i]); present {
			high = r.Max
			break
		}
	}
	return low, high, true
}

// AveragePrice returns the "average" condition range for index cards.
func AveragePrice(p *Pricing) (PriceRange, bool) {
	return conditionRange(p, "average")
}

// specRows returns the present specs in fixed display order as label/value
// pairs, ignoring the record's own key order.
func specRows(c Camera) [][2]string {
	var rows [][2]string
	for _, key := range SpecOrder {
		if v, ok := c.Specs[key]; ok && strings.TrimSpace(v) != "" {
			rows = append(rows, [2]string{specLabels[key], v})
		}
	}
	return rows
}

// RelatedCameras returns every other camera in group, preserving order.
func RelatedCameras(current Camera, group []Camera) []Camera {
	var related []Camera
	for _, c := range group {
		if c.ID == current.ID {
			continue
		}
		related = append(related, c)
	}
	return related
}

// LinkRel returns the rel attribute for an outbound link. Editorial and
// source domains on the allowlist keep their link equity; everything else is
// marked nofollow.
func LinkRel(href string, site Site) string {
	u, err := url.Parse(href)
	if err == nil {
		host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
		for _, d := range site.FollowDomains {
			d = strings.ToLower(d)
			if host == d || strings.HasSuffix(host, "."+d) {
				return "noopener"
			}
		}
	}
	return "nofollow noopener"
}

// Slugify converts a display name to a URL-safe anchor.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// titleCase uppercases the first letter of a condition label.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MetaDescription is the page description: tagline when present, otherwise a
// generated sentence so social previews never ship empty text.
func MetaDescription(c Camera) string {
	if c.Tagline != "" {
		return c.Tagline
	}
	desc := fmt.Sprintf("The %s %s", c.Brand, c.Name)
	if c.Format != "" {
		desc += fmt.Sprintf(", a %s camera", c.Format)
	}
	desc += fmt.Sprintf(" introduced in %d. Specs, history, and collector prices.", c.YearStart)
	return desc
}

// PageTitle is the document title for a camera page.
func PageTitle(site Site, c Camera) string {
	return fmt.Sprintf("%s %s — %s", c.Brand, c.Name, site.Name)
}

// ProductJsonLD returns a Schema.org Product block for a camera page. The
// offer property is present only when the record carries pricing.
func ProductJsonLD(site Site, c Camera) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Product",
		"name":     c.Brand + " " + c.Name,
		"brand": map[string]string{
			"@type": "Brand",
			"name":  c.Brand,
		},
		"category":    "Film Camera",
		"url":         PageURL(site, c),
		"description": MetaDescription(c),
	}
	if c.Image != "" {
		data["image"] = BuildURL(site.URL, ImagePath(c.Image))
	}
	if low, high, ok := OfferBounds(c.Pricing); ok {
		data["offers"] = map[string]interface{}{
			"@type":         "AggregateOffer",
			"priceCurrency": "USD",
			"lowPrice":      low,
			"highPrice":     high,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// CollectionJsonLD returns a Schema.org CollectionPage block for the index.
func CollectionJsonLD(site Site, count int) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "CollectionPage",
		"name":        site.Name,
		"url":         BuildURL(site.URL),
		"description": site.Description,
		"mainEntity": map[string]interface{}{
			"@type":         "ItemList",
			"numberOfItems": count,
		},
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
