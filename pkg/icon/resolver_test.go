package icon

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/tokenicon/pkg/presentation"
	"github.com/cloudposse/tokenicon/pkg/schema"
	"github.com/cloudposse/tokenicon/pkg/store"
	"github.com/cloudposse/tokenicon/pkg/token"
)

type countingCustom struct {
	entries map[string]*CustomIconEntry
	calls   int
}

func (c *countingCustom) Lookup(_ context.Context, issuer string, _ int) (*CustomIconEntry, bool) {
	c.calls++
	e, ok := c.entries[issuer]
	return e, ok
}

type countingMatcher struct {
	inner *Catalog
	calls int
}

func (m *countingMatcher) Match(issuer string) (BrandID, bool) {
	m.calls++
	return m.inner.Match(issuer)
}

type pendingFetch struct {
	uri     string
	size    int
	deliver func(image.Image)
}

// manualFetcher records fetches; tests complete them through the loop.
type manualFetcher struct {
	loop    *presentation.Loop
	pending []pendingFetch
}

func (f *manualFetcher) Fetch(_ context.Context, uri string, size int, deliver func(image.Image)) {
	f.pending = append(f.pending, pendingFetch{uri: uri, size: size, deliver: deliver})
}

func (f *manualFetcher) complete(i int, img image.Image) {
	p := f.pending[i]
	f.loop.Post(func() { p.deliver(img) })
}

type resolverFixture struct {
	resolver *Resolver
	custom   *countingCustom
	matcher  *countingMatcher
	fetcher  *manualFetcher
	loop     *presentation.Loop
	palette  *Palette
	defImage image.Image
}

func newResolverFixture(t *testing.T) *resolverFixture {
	t.Helper()

	catalog := NewCatalog()
	palette, err := NewPalette("", catalog)
	require.NoError(t, err)

	loop := presentation.NewLoop()
	f := &resolverFixture{
		custom:   &countingCustom{entries: map[string]*CustomIconEntry{}},
		matcher:  &countingMatcher{inner: catalog},
		fetcher:  &manualFetcher{loop: loop},
		loop:     loop,
		palette:  palette,
		defImage: solidImage(64, 64, color.White),
	}

	f.resolver, err = NewResolver(DefaultConfig(),
		WithDefaultImage(f.defImage),
		WithCustomIcons(f.custom),
		WithBrandMatcher(f.matcher),
		WithGlyphs(NewGlyphRenderer(catalog)),
		WithFetcher(f.fetcher),
		WithPalette(palette),
	)
	require.NoError(t, err)
	return f
}

func TestResolver_BundledDefaultIsSynchronous(t *testing.T) {
	for _, issuer := range []string{"GitHub", "Acme", ""} {
		t.Run(issuer, func(t *testing.T) {
			f := newResolverFixture(t)
			f.custom.entries[issuer] = &CustomIconEntry{Name: "custom", Image: solidImage(4, 4, color.Black)}
			tok := &token.Token{Issuer: issuer, Label: "me", Image: "/private/var/Bundle/FreeOTP.app/default.png"}

			got, pending := f.resolver.Resolve(context.Background(), tok, 64, nil)

			assert.False(t, pending)
			assert.Equal(t, SourceDefault, got.Source)
			require.NotNil(t, got.Image)
			assert.Equal(t, 64+2*DefaultInset, got.Image.Bounds().Dx())
			assert.Empty(t, f.fetcher.pending)
			assert.Zero(t, f.custom.calls)
			assert.Zero(t, f.matcher.calls)
		})
	}
}

func TestResolver_ExplicitImageNeverConsultsCacheOrCatalog(t *testing.T) {
	f := newResolverFixture(t)
	f.custom.entries["GitHub"] = &CustomIconEntry{Name: "gh", Image: solidImage(4, 4, color.Black)}
	tok := &token.Token{Issuer: "GitHub", Image: "https://example.com/gh.png"}

	got, pending := f.resolver.Resolve(context.Background(), tok, 48, func(ResolvedIcon) {})

	assert.True(t, pending)
	assert.Equal(t, SourceExplicit, got.Source)
	assert.Nil(t, got.Image)
	assert.Equal(t, Hex(f.palette.Neutral()), Hex(got.Background))
	require.Len(t, f.fetcher.pending, 1)
	assert.Equal(t, "https://example.com/gh.png", f.fetcher.pending[0].uri)
	assert.Equal(t, 48, f.fetcher.pending[0].size)
	assert.Zero(t, f.custom.calls)
	assert.Zero(t, f.matcher.calls)
}

func TestResolver_ExplicitImageDeliveredPadded(t *testing.T) {
	f := newResolverFixture(t)
	tok := &token.Token{Issuer: "Acme", Image: "https://example.com/acme.png"}

	var delivered []ResolvedIcon
	f.resolver.Resolve(context.Background(), tok, 48, func(r ResolvedIcon) { delivered = append(delivered, r) })

	f.fetcher.complete(0, solidImage(48, 48, color.White))
	f.loop.Drain()

	require.Len(t, delivered, 1)
	assert.Equal(t, SourceExplicit, delivered[0].Source)
	assert.Equal(t, 48+2*DefaultInset, delivered[0].Image.Bounds().Dx())
	assert.Equal(t, DefaultCornerRadius, delivered[0].CornerRadius)
}

func TestResolver_CustomHitSuppressesCatalog(t *testing.T) {
	f := newResolverFixture(t)
	f.custom.entries["GitHub"] = &CustomIconEntry{Issuer: "GitHub", Name: "octo", Image: solidImage(10, 10, color.Black)}

	got, pending := f.resolver.Resolve(context.Background(), &token.Token{Issuer: "GitHub"}, 10, nil)

	assert.False(t, pending)
	assert.Equal(t, SourceCustom, got.Source)
	assert.Equal(t, "octo", got.SourceName)
	assert.Equal(t, Hex(f.palette.Background("octo")), Hex(got.Background))
	assert.Equal(t, 1, f.custom.calls)
	assert.Zero(t, f.matcher.calls)
}

func TestResolver_GitHubScenario(t *testing.T) {
	f := newResolverFixture(t)
	tok := &token.Token{Issuer: "GitHub", Label: "me@example.com"}

	first, pending := f.resolver.Resolve(context.Background(), tok, 64, nil)
	second, _ := f.resolver.Resolve(context.Background(), tok, 64, nil)

	assert.False(t, pending)
	assert.Equal(t, SourceBrand, first.Source)
	assert.Equal(t, "github", first.SourceName)
	require.NotNil(t, first.Image)
	assert.Equal(t, 64+2*DefaultInset, first.Image.Bounds().Dx())
	assert.Equal(t, "#181717", Hex(first.Background))
	assert.Equal(t, first.Background, second.Background)
	assert.Equal(t, DefaultCornerRadius, first.CornerRadius)
	assert.Empty(t, f.fetcher.pending)
}

func TestResolver_NoMatchKeepsPlaceholder(t *testing.T) {
	f := newResolverFixture(t)

	got, pending := f.resolver.Resolve(context.Background(), &token.Token{Issuer: "Unknown Bank"}, 64, nil)

	assert.False(t, pending)
	assert.Equal(t, SourceNone, got.Source)
	assert.Nil(t, got.Image)
	assert.Empty(t, got.SourceName)
	assert.Equal(t, Hex(f.palette.Neutral()), Hex(got.Background))
}

func TestResolver_NilToken(t *testing.T) {
	f := newResolverFixture(t)

	got, pending := f.resolver.Resolve(context.Background(), nil, 0, nil)

	assert.False(t, pending)
	assert.Equal(t, SourceNone, got.Source)
}

func TestResolver_StaleFetchIsDiscarded(t *testing.T) {
	f := newResolverFixture(t)
	ctx := context.Background()
	var shown []ResolvedIcon
	show := func(r ResolvedIcon) { shown = append(shown, r) }

	a := &token.Token{Issuer: "Acme", Label: "a", Image: "https://example.com/a.png"}
	b := &token.Token{Issuer: "Beta", Label: "b", Image: "https://example.com/b.png"}

	f.resolver.Resolve(ctx, a, 32, show)
	f.resolver.Resolve(ctx, b, 32, show)
	require.Len(t, f.fetcher.pending, 2)

	f.fetcher.complete(0, solidImage(32, 32, color.Black))
	f.loop.Drain()
	assert.Empty(t, shown)

	f.fetcher.complete(1, solidImage(32, 32, color.White))
	f.loop.Drain()
	require.Len(t, shown, 1)
	r, g, b2, _ := shown[0].Image.At(DefaultInset, DefaultInset).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b2})
}

func TestResolver_ReResolveSameIdentitySupersedesEarlierFetch(t *testing.T) {
	f := newResolverFixture(t)
	ctx := context.Background()
	tok := &token.Token{Issuer: "Acme", Image: "https://example.com/a.png"}

	count := 0
	f.resolver.Resolve(ctx, tok, 32, func(ResolvedIcon) { count++ })
	f.resolver.Resolve(ctx, tok, 32, func(ResolvedIcon) { count++ })

	f.fetcher.complete(0, solidImage(32, 32, color.White))
	f.fetcher.complete(1, solidImage(32, 32, color.White))
	f.loop.Drain()

	assert.Equal(t, 1, count)
}

func TestResolver_StaleWhenSwitchingToSyncBranch(t *testing.T) {
	f := newResolverFixture(t)
	ctx := context.Background()

	called := false
	f.resolver.Resolve(ctx, &token.Token{Issuer: "Acme", Image: "https://example.com/a.png"}, 32, func(ResolvedIcon) { called = true })
	f.resolver.Resolve(ctx, &token.Token{Issuer: "GitHub"}, 32, nil)

	f.fetcher.complete(0, solidImage(32, 32, color.White))
	f.loop.Drain()

	assert.False(t, called)
}

func TestResolver_ExplicitWithoutFetcher(t *testing.T) {
	r, err := NewResolver(DefaultConfig(), WithDefaultImage(solidImage(8, 8, color.White)))
	require.NoError(t, err)

	got, pending := r.Resolve(context.Background(), &token.Token{Image: "https://example.com/a.png"}, 8, nil)
	assert.False(t, pending)
	assert.Equal(t, SourceExplicit, got.Source)
	assert.Nil(t, got.Image)
}

func TestResolver_WithRealCustomIcons(t *testing.T) {
	s, err := store.NewInMemoryStore(nil)
	require.NoError(t, err)
	custom := NewCustomIcons(s)
	require.NoError(t, custom.Assign(context.Background(), "GitHub", "octocat", solidImage(20, 20, color.White)))

	r, err := NewResolver(DefaultConfig(), WithCustomIcons(custom))
	require.NoError(t, err)

	got, _ := r.Resolve(context.Background(), &token.Token{Issuer: "GitHub"}, 40, nil)
	assert.Equal(t, SourceCustom, got.Source)
	assert.Equal(t, "octocat", got.SourceName)
	assert.Equal(t, 40+2*DefaultInset, got.Image.Bounds().Dx())
}

func TestNewResolver_InvalidNeutral(t *testing.T) {
	_, err := NewResolver(schema.Icons{NeutralBackground: "nope"})
	assert.Error(t, err)
}

func TestChoose_Variants(t *testing.T) {
	f := newResolverFixture(t)
	ctx := context.Background()

	assert.Equal(t, DefaultSource{}, f.resolver.Choose(ctx, &token.Token{Image: "bundle://default"}, 8))
	assert.Equal(t, ExplicitSource{URI: "https://x/y.png"}, f.resolver.Choose(ctx, &token.Token{Image: "https://x/y.png"}, 8))
	assert.Equal(t, BrandSource{ID: "slack"}, f.resolver.Choose(ctx, &token.Token{Issuer: "Slack"}, 8))
	assert.Equal(t, NoSource{}, f.resolver.Choose(ctx, &token.Token{Issuer: "Nobody"}, 8))
	assert.Equal(t, "none", SourceNone.String())
	assert.Equal(t, "brand", SourceBrand.String())
}
