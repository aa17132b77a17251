package core

import "strings"

// Color represents a foreground color for a canvas cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Palette used by the blueprint theme.
const (
	ColorDefault Color = iota
	ColorBlueprint
	ColorChalk
	ColorAccent
	ColorHighlight
	ColorDim
	ColorAlert
)

var colorNames = map[string]Color{
	"default":   ColorDefault,
	"blueprint": ColorBlueprint,
	"chalk":     ColorChalk,
	"accent":    ColorAccent,
	"highlight": ColorHighlight,
	"dim":       ColorDim,
	"alert":     ColorAlert,
}

// ParseColor looks up a palette color by its name (case-insensitive).
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
