package icon

import (
	"image"
	"image/color"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	defaultGlyphCacheSize = 128
	glyphMargin           = 2
)

type glyphKey struct {
	id   BrandID
	size int
}

// GlyphRenderer draws brand monograms and memoizes them by brand and size.
// Returned images are shared and must not be modified.
type GlyphRenderer struct {
	catalog *Catalog
	fg      color.Color
	cache   *lru.Cache[glyphKey, image.Image]
}

// NewGlyphRenderer creates a renderer for catalog brands.
func NewGlyphRenderer(catalog *Catalog) *GlyphRenderer {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[glyphKey, image.Image](defaultGlyphCacheSize)
	return &GlyphRenderer{
		catalog: catalog,
		fg:      color.White,
		cache:   cache,
	}
}

// Render draws id at size x size. Unknown brands render their id's initial.
func (g *GlyphRenderer) Render(id BrandID, size int) image.Image {
	if size <= 0 {
		size = DefaultSize
	}

	key := glyphKey{id: id, size: size}
	if img, ok := g.cache.Get(key); ok {
		return img
	}

	img := g.draw(g.text(id), size)
	g.cache.Add(key, img)
	return img
}

func (g *GlyphRenderer) text(id BrandID) string {
	if g.catalog != nil {
		if b, ok := g.catalog.Brand(id); ok && b.Glyph != "" {
			return b.Glyph
		}
	}
	if id == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(string(id))[:1]))
}

// draw renders text with the fixed 7x13 face, then scales it up to size.
func (g *GlyphRenderer) draw(text string, size int) image.Image {
	face := basicfont.Face7x13
	advance := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	edge := max(advance, height) + 2*glyphMargin
	small := image.NewRGBA(image.Rect(0, 0, edge, edge))

	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(g.fg),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I((edge - advance) / 2),
			Y: fixed.I((edge-height)/2) + metrics.Ascent,
		},
	}
	d.DrawString(text)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), small, small.Bounds(), xdraw.Over, nil)
	return dst
}
