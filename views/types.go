package views

// Site holds site-wide settings passed into every page template.
type Site struct {
	Name        string // Site name shown in titles and the footer
	URL         string // Canonical base URL, no trailing slash
	Description string // Fallback meta description
	Author      string // Author name for JSON-LD

	// FollowDomains lists editorial/source hosts whose outbound links are
	// rendered without rel="nofollow".
	FollowDomains []string
}

// Camera is one camera record, decoded from a single JSON file in the data
// directory. Everything beyond ID, Brand, Name and YearStart is optional;
// absent fields drop their page section entirely.
type Camera struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Name      string `json:"name"`
	Tagline   string `json:"tagline,omitempty"`
	YearStart int    `json:"yearStart"`
	YearEnd   int    `json:"yearEnd,omitempty"` // 0 = still in production or unknown
	Format    string `json:"format,omitempty"`
	Country   string `json:"country,omitempty"`

	FilmStocks []string `json:"filmStocks,omitempty"`

	Specs    map[string]string `json:"specs,omitempty"`
	Features []string          `json:"features,omitempty"`

	History        string   `json:"history,omitempty"`
	NotableUsers   string   `json:"notableUsers,omitempty"`
	CulturalNotes  string   `json:"culturalNotes,omitempty"`
	CollectorNotes string   `json:"collectorNotes,omitempty"`
	Innovations    []string `json:"innovations,omitempty"`

	Pricing *Pricing `json:"pricing,omitempty"`

	Articles  []Link `json:"articles,omitempty"`
	Manuals   []Link `json:"manuals,omitempty"`
	Galleries []Link `json:"galleries,omitempty"`

	Image       string `json:"image,omitempty"`
	ImageCredit string `json:"imageCredit,omitempty"`
	BuyURL      string `json:"buyUrl,omitempty"`
}

// Pricing maps condition labels to price ranges, with an optional citation
// for where the numbers came from.
type Pricing struct {
	Conditions map[string]PriceRange `json:"conditions"`
	Source     string                `json:"source,omitempty"`
}

// PriceRange is a min/max price in whole US dollars.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Link is an external resource: article, manual scan, or photo gallery.
type Link struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Source string `json:"source,omitempty"` // publication or host name
}

// ConditionOrder is the fixed display order for pricing rows. Conditions
// absent from a record produce no row.
var ConditionOrder = []string{"poor", "average", "good", "excellent", "mint"}

// SpecOrder is the fixed display order for the specifications table,
// independent of JSON key order. Keys not listed here are not rendered.
var SpecOrder = []string{
	"type",
	"lens",
	"mount",
	"shutter",
	"speeds",
	"aperture",
	"focusing",
	"viewfinder",
	"meter",
	"flash",
	"filmAdvance",
	"batteries",
	"weight",
	"dimensions",
}

// specLabels maps spec keys to their table headings.
var specLabels = map[string]string{
	"type":        "Type",
	"lens":        "Lens",
	"mount":       "Mount",
	"shutter":     "Shutter",
	"speeds":      "Shutter Speeds",
	"aperture":    "Aperture",
	"focusing":    "Focusing",
	"viewfinder":  "Viewfinder",
	"meter":       "Metering",
	"flash":       "Flash",
	"filmAdvance": "Film Advance",
	"batteries":   "Batteries",
	"weight":      "Weight",
	"dimensions":  "Dimensions",
}
