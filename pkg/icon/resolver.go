package icon

import (
	"context"
	"image"
	"image/color"
	"sync"

	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/schema"
	"github.com/cloudposse/tokenicon/pkg/token"
)

// ResolvedIcon is what the presentation surface shows for a token.
type ResolvedIcon struct {
	// Image is the padded bitmap. Nil means keep the current placeholder.
	Image      image.Image
	Background color.Color
	// SourceName is the color key that produced Background.
	SourceName   string
	Source       SourceKind
	CornerRadius float64
}

// CustomIconLookup finds user-assigned icons.
type CustomIconLookup interface {
	Lookup(ctx context.Context, issuer string, size int) (*CustomIconEntry, bool)
}

// BrandMatcher maps an issuer to a brand.
type BrandMatcher interface {
	Match(issuer string) (BrandID, bool)
}

// GlyphSource renders brand glyphs.
type GlyphSource interface {
	Render(id BrandID, size int) image.Image
}

// ImageFetcher loads remote images asynchronously.
type ImageFetcher interface {
	Fetch(ctx context.Context, uri string, size int, deliver func(image.Image))
}

type ticket struct {
	generation uint64
	identity   token.Identity
}

// Resolver chooses and prepares the icon for a token. One Resolver serves one
// display; each Resolve call supersedes fetches started by earlier calls.
type Resolver struct {
	inset        int
	cornerRadius float64
	defaultPath  string

	defaultImage image.Image
	custom       CustomIconLookup
	brands       BrandMatcher
	glyphs       GlyphSource
	fetcher      ImageFetcher
	palette      *Palette

	mu      sync.Mutex
	current ticket
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDefaultImage sets the bundled default icon.
func WithDefaultImage(img image.Image) ResolverOption {
	return func(r *Resolver) {
		r.defaultImage = img
	}
}

// WithCustomIcons sets the custom icon lookup.
func WithCustomIcons(c CustomIconLookup) ResolverOption {
	return func(r *Resolver) {
		r.custom = c
	}
}

// WithBrandMatcher sets the brand matcher.
func WithBrandMatcher(m BrandMatcher) ResolverOption {
	return func(r *Resolver) {
		r.brands = m
	}
}

// WithGlyphs sets the brand glyph renderer.
func WithGlyphs(g GlyphSource) ResolverOption {
	return func(r *Resolver) {
		r.glyphs = g
	}
}

// WithFetcher sets the remote image fetcher.
func WithFetcher(f ImageFetcher) ResolverOption {
	return func(r *Resolver) {
		r.fetcher = f
	}
}

// WithPalette sets the background palette.
func WithPalette(p *Palette) ResolverOption {
	return func(r *Resolver) {
		r.palette = p
	}
}

// NewResolver creates a Resolver from the icons configuration.
// Without WithDefaultImage the embedded default icon is loaded, and a failure is returned.
func NewResolver(cfg schema.Icons, opts ...ResolverOption) (*Resolver, error) {
	r := &Resolver{
		inset:        cfg.Inset,
		cornerRadius: cfg.CornerRadius,
		defaultPath:  cfg.DefaultPath,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.defaultImage == nil {
		img, err := LoadDefault(EmbeddedLoader{})
		if err != nil {
			return nil, err
		}
		r.defaultImage = img
	}

	if r.brands == nil || r.glyphs == nil || r.palette == nil {
		catalog := NewCatalog()
		if r.brands == nil {
			r.brands = catalog
		}
		if r.glyphs == nil {
			r.glyphs = NewGlyphRenderer(catalog)
		}
		if r.palette == nil {
			p, err := NewPalette(cfg.NeutralBackground, catalog)
			if err != nil {
				return nil, err
			}
			r.palette = p
		}
	}

	return r, nil
}

// Choose walks the waterfall for tok. The first branch that applies wins and
// later branches are not consulted.
func (r *Resolver) Choose(ctx context.Context, tok *token.Token, size int) Source {
	if tok == nil {
		return NoSource{}
	}

	if tok.HasImage() {
		if IsDefaultImage(tok.Image, r.defaultPath) {
			return DefaultSource{}
		}
		return ExplicitSource{URI: tok.Image}
	}

	if r.custom != nil {
		if entry, ok := r.custom.Lookup(ctx, tok.Issuer, size); ok {
			return CustomSource{Entry: entry}
		}
	}

	if r.brands != nil {
		if id, ok := r.brands.Match(tok.Issuer); ok {
			return BrandSource{ID: id}
		}
	}

	return NoSource{}
}

// Resolve returns the icon to show now for tok. When the token names a remote
// image the returned icon is a placeholder, Pending is true, and deliver is
// called on the presentation context once the image arrives, unless a later
// Resolve call has superseded this one.
func (r *Resolver) Resolve(ctx context.Context, tok *token.Token, size int, deliver func(ResolvedIcon)) (ResolvedIcon, bool) {
	if size <= 0 {
		size = DefaultSize
	}

	t := r.issue(tok.Identity())
	src := r.Choose(ctx, tok, size)
	log.Trace("Resolved icon source", "issuer", tok.Identity().Issuer, "source", src.Kind(), "size", size)

	switch s := src.(type) {
	case DefaultSource:
		return r.finish(Fit(r.defaultImage, size), s), false

	case CustomSource:
		return r.finish(s.Entry.Image, s), false

	case BrandSource:
		return r.finish(r.glyphs.Render(s.ID, size), s), false

	case ExplicitSource:
		if r.fetcher == nil {
			log.Debug("No fetcher configured, leaving placeholder", "uri", s.URI)
			return r.finish(nil, s), false
		}
		r.fetcher.Fetch(ctx, s.URI, size, func(img image.Image) {
			if !r.isCurrent(t) {
				log.Debug("Discarding stale icon fetch", "uri", s.URI, "issuer", t.identity.Issuer)
				return
			}
			if deliver != nil {
				deliver(r.finish(img, s))
			}
		})
		return r.finish(nil, s), true

	default:
		return r.finish(nil, src), false
	}
}

// finish applies the uniform post-processing.
func (r *Resolver) finish(img image.Image, src Source) ResolvedIcon {
	key := src.ColorKey()
	return ResolvedIcon{
		Image:        Pad(img, r.inset),
		Background:   r.palette.Background(key),
		SourceName:   key,
		Source:       src.Kind(),
		CornerRadius: r.cornerRadius,
	}
}

func (r *Resolver) issue(id token.Identity) ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = ticket{generation: r.current.generation + 1, identity: id}
	return r.current
}

// isCurrent reports whether t belongs to the latest Resolve call.
func (r *Resolver) isCurrent(t ticket) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current == t
}

// Background exposes the palette for callers that render their own placeholder.
func (r *Resolver) Background(key string) color.Color {
	return r.palette.Background(key)
}

// DefaultConfig returns the icons configuration used when nothing is configured.
func DefaultConfig() schema.Icons {
	return schema.Icons{
		Inset:             DefaultInset,
		CornerRadius:      DefaultCornerRadius,
		NeutralBackground: DefaultNeutralBackground,
		Size:              DefaultSize,
	}
}
