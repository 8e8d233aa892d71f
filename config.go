// Package sitegen builds the metergeist camera reference site: it reads
// per-camera JSON records from a data directory and writes one HTML page per
// camera, an index page, and a sitemap to the output directory.
package sitegen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/metergeist/sitegen/views"
)

// SiteConfig holds everything a build needs. Zero values are filled by
// setDefaults; a site.yaml overlay is optional.
type SiteConfig struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`

	InputDir  string `yaml:"inputDir"`
	OutputDir string `yaml:"outputDir"`

	// BrandOrder fixes the index page section sequence. Brands not listed
	// never appear on the index, though their cameras still get pages.
	BrandOrder []string `yaml:"brandOrder"`

	// FollowDomains are editorial/source hosts whose outbound links skip the
	// nofollow marker.
	FollowDomains []string `yaml:"followDomains"`
}

// DefaultBrandOrder is the shipped index section sequence.
var DefaultBrandOrder = []string{
	"Leica",
	"Rollei",
	"Hasselblad",
	"Zeiss Ikon",
	"Voigtländer",
	"Nikon",
	"Canon",
	"Pentax",
	"Olympus",
	"Minolta",
	"Contax",
	"Mamiya",
	"Yashica",
	"Fujifilm",
	"Kodak",
	"Polaroid",
}

// DefaultFollowDomains are the editorial sources we cite and are happy to
// pass link equity to.
var DefaultFollowDomains = []string{
	"casualphotophile.com",
	"35mmc.com",
	"emulsive.org",
	"mikeeckman.com",
	"butkus.org",
	"cameraquest.com",
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Metergeist"
	}
	if c.URL == "" {
		c.URL = "https://metergeist.com"
	}
	if c.Description == "" {
		c.Description = "A field guide to the film cameras worth hunting for: specs, history, and what to pay."
	}
	if c.InputDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			c.InputDir = filepath.Join(home, "metergeist", "cameras")
		}
	}
	if c.OutputDir == "" {
		exe, err := os.Executable()
		if err == nil {
			c.OutputDir = filepath.Join(filepath.Dir(exe), "site")
		}
	}
	if c.BrandOrder == nil {
		c.BrandOrder = DefaultBrandOrder
	}
	if c.FollowDomains == nil {
		c.FollowDomains = DefaultFollowDomains
	}
}

// LoadConfig reads a site.yaml overlay if one exists at path and fills
// defaults. A missing file is not an error; a malformed one is.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SiteConfig{}, err
		}
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	default:
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

// site projects the config into the subset templates need.
func (c SiteConfig) site() views.Site {
	return views.Site{
		Name:          c.Name,
		URL:           c.URL,
		Description:   c.Description,
		Author:        c.Author,
		FollowDomains: c.FollowDomains,
	}
}
