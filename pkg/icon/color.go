package icon

import (
	"hash/fnv"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

// DefaultNeutralBackground is used when no color key is known.
const DefaultNeutralBackground = "#8E8E93"

const (
	hashedChroma    = 0.45
	hashedLuminance = 0.55
)

// Palette derives background colors from color keys.
type Palette struct {
	neutral colorful.Color
	brands  map[string]colorful.Color
}

// NewPalette builds a palette with the given neutral color and the catalog's brand colors.
// An empty neutral uses DefaultNeutralBackground.
func NewPalette(neutral string, catalog *Catalog) (*Palette, error) {
	if neutral == "" {
		neutral = DefaultNeutralBackground
	}
	n, err := colorful.Hex(neutral)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrInvalidColor).
			WithCause(err).
			WithContext("color", neutral).
			WithHint("Colors must be written as #RRGGBB").
			WithExitCode(errUtils.ExitCodeConfig).
			Err()
	}

	p := &Palette{neutral: n, brands: make(map[string]colorful.Color)}
	if catalog != nil {
		for _, b := range catalog.Brands() {
			if c, err := colorful.Hex(b.Color); err == nil {
				p.brands[string(b.ID)] = c
			}
		}
	}
	return p, nil
}

// Neutral returns the color used for an empty key.
func (p *Palette) Neutral() color.Color {
	return p.neutral
}

// Background returns the color for key. The result depends on key alone.
func (p *Palette) Background(key string) color.Color {
	if key == "" {
		return p.neutral
	}
	if c, ok := p.brands[key]; ok {
		return c
	}
	return hashedColor(key)
}

// hashedColor spreads keys around the HCL hue circle at fixed chroma and luminance.
func hashedColor(key string) colorful.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	hue := float64(h.Sum32() % 360)
	return colorful.Hcl(hue, hashedChroma, hashedLuminance).Clamped()
}

// Hex formats c as "#RRGGBB", the spelling used by the brand table and config.
func Hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return strings.ToUpper(cf.Hex())
}
