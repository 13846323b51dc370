package lowpoly

import (
	"strings"

	"github.com/fogleman/fauxgl"
)

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float64
}

// pastelPalette is applied when no color specification is given, one entry
// per component in order of first appearance. Kept as an array so no caller
// can alias and mutate it; resolve hands out copies.
var pastelPalette = [...]Color{
	{0.60, 0.75, 0.90}, // blue
	{0.60, 0.90, 0.60}, // green
	{0.90, 0.60, 0.60}, // red
	{0.90, 0.90, 0.60}, // yellow
	{0.80, 0.60, 0.90}, // purple
	{0.60, 0.90, 0.90}, // cyan
	{0.90, 0.80, 0.60}, // orange
	{0.70, 0.70, 0.70}, // grey
}

// namedColors is the subset of the host's color names the pipeline resolves
// on its own. Values follow the PyMOL definitions.
var namedColors = map[string]Color{
	"white":     {1, 1, 1},
	"black":     {0, 0, 0},
	"red":       {1, 0, 0},
	"green":     {0, 1, 0},
	"blue":      {0, 0, 1},
	"yellow":    {1, 1, 0},
	"magenta":   {1, 0, 1},
	"cyan":      {0, 1, 1},
	"orange":    {1, 0.5, 0},
	"purple":    {0.75, 0, 0.75},
	"pink":      {1, 0.65, 0.85},
	"salmon":    {1, 0.6, 0.6},
	"grey":      {0.5, 0.5, 0.5},
	"gray":      {0.5, 0.5, 0.5},
	"wheat":     {0.99, 0.82, 0.65},
	"teal":      {0, 0.75, 0.75},
	"slate":     {0.5, 0.5, 1},
	"olive":     {0.77, 0.7, 0},
	"marine":    {0, 0.5, 1},
	"forest":    {0.2, 0.6, 0.2},
	"firebrick": {0.698, 0.13, 0.13},
	"violet":    {1, 0.5, 1},
	"limegreen": {0.5, 1, 0.5},
	"lightblue": {0.75, 0.75, 1},
	"hotpink":   {1, 0, 0.5},
}

// ResolveColor maps a single color token to RGB. A token is either a known
// color name or a hex value such as "#ff8800" or "0xff8800". Unknown tokens
// yield a ConfigError naming the token.
func ResolveColor(tok string) (Color, error) { return resolveToken(tok) }

// resolveToken maps a single color token to RGB. A token is either a known
// color name or a hex value such as "#ff8800" or "0xff8800".
func resolveToken(tok string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(tok)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "#")
	if hex != tok && isHex(hex) && (len(hex) == 3 || len(hex) == 6) {
		c := fauxgl.HexColor(hex)
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}
	return Color{}, configErrf("color", "unknown color %q", tok)
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return len(s) > 0
}

type specMode uint8

const (
	modeDefault specMode = iota // no specification: built-in pastel palette
	modeNone                    // leave colors unset
	modeSingle                  // one color for every vertex
	modePalette                 // cycle a palette across components
)

// Spec selects how the colorizer assigns vertex colors. The zero value
// cycles the built-in pastel palette across components.
type Spec struct {
	mode   specMode
	tokens []string
	rgb    []Color
}

// ParseColorSpec interprets the host's color argument convention: "none"
// disables color baking entirely, a single token names one color for the
// whole mesh, two or more space-separated tokens form a palette cycled
// across components and an empty string selects the built-in pastel
// palette. Token validity is checked when the pipeline runs, so a bad name
// surfaces as a ConfigError from Simplify rather than from here.
func ParseColorSpec(s string) Spec {
	fields := strings.Fields(s)
	switch {
	case len(fields) == 0:
		return Spec{}
	case len(fields) == 1 && strings.EqualFold(fields[0], "none"):
		return Spec{mode: modeNone}
	case len(fields) == 1:
		return Spec{mode: modeSingle, tokens: fields}
	}
	return Spec{mode: modePalette, tokens: fields}
}

// ColorNone leaves every vertex color unset so the host's default material
// applies.
func ColorNone() Spec { return Spec{mode: modeNone} }

// SingleColor applies one named or hex color to every vertex.
func SingleColor(token string) Spec {
	return Spec{mode: modeSingle, tokens: []string{token}}
}

// Palette cycles the given colors across components. An empty palette falls
// back to the built-in pastel default.
func Palette(colors ...Color) Spec {
	if len(colors) == 0 {
		return Spec{}
	}
	return Spec{mode: modePalette, rgb: colors}
}

// PaletteNames is Palette with named or hex color tokens.
func PaletteNames(tokens ...string) Spec {
	if len(tokens) == 0 {
		return Spec{}
	}
	return Spec{mode: modePalette, tokens: tokens}
}

// resolve returns the effective palette. A nil palette with nil error means
// colors stay unset.
func (s Spec) resolve() ([]Color, error) {
	switch s.mode {
	case modeNone:
		return nil, nil
	case modeDefault:
		return append([]Color(nil), pastelPalette[:]...), nil
	}
	if s.rgb != nil {
		return s.rgb, nil
	}
	pal := make([]Color, len(s.tokens))
	for i, tok := range s.tokens {
		c, err := resolveToken(tok)
		if err != nil {
			return nil, err
		}
		pal[i] = c
	}
	return pal, nil
}

// Colorize returns the per-vertex colors for n vertices with the given
// component tags. tags may be nil when every vertex belongs to one
// component. Components are numbered densely in order of first appearance
// and the palette is indexed modulo its length, so the first component seen
// always receives the first palette entry regardless of raw tag values.
// A nil result with nil error means colors are left unset.
func (s Spec) Colorize(tags []Tag, n int) ([]Color, error) {
	pal, err := s.resolve()
	if err != nil || pal == nil {
		return nil, err
	}
	colors := make([]Color, n)
	order := make(map[Tag]int)
	for i := 0; i < n; i++ {
		var t Tag
		if tags != nil {
			t = tags[i]
		}
		k, ok := order[t]
		if !ok {
			k = len(order)
			order[t] = k
		}
		colors[i] = pal[k%len(pal)]
	}
	return colors, nil
}
