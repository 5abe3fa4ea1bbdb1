// Package theme holds the link palette and the layout constants shared by
// the page and the scroll controllers.
package theme

// ColorPair is the resting and hover color of a link.
type ColorPair struct {
	Default string
	Hover   string
}

const (
	// HeaderHeight is the sticky header height in pixels.
	HeaderHeight = 64
	// ScrollGap is the extra space left above a section scrolled into view.
	ScrollGap = 32
)

// Fallback palette keys per page area.
const (
	FallbackAbout      = "social"
	FallbackNews       = "social"
	FallbackProjects   = "green"
	FallbackExperience = "university"
)

var links = map[string]ColorPair{
	"blue":       {Default: "#2563eb", Hover: "#1d4ed8"},
	"green":      {Default: "#059669", Hover: "#047857"},
	"social":     {Default: "#4b5563", Hover: "#111827"},
	"university": {Default: "#1e40af", Hover: "#1e3a8a"},
	"department": {Default: "#7c3aed", Hover: "#6d28d9"},
	"red":        {Default: "#dc2626", Hover: "#b91c1c"},
	"purple":     {Default: "#9333ea", Hover: "#7e22ce"},
	"gray":       {Default: "#6b7280", Hover: "#374151"},
}

// Has reports whether name is a palette key.
func Has(name string) bool {
	_, ok := links[name]
	return ok
}

// Resolve returns the pair for name, or the pair for fallback when name is
// empty or not a palette key.
func Resolve(name, fallback string) ColorPair {
	if c, ok := links[name]; ok {
		return c
	}
	return links[fallback]
}
