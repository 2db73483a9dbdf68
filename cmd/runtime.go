package cmd

import (
	"io"

	"github.com/cloudposse/tokenicon/pkg/icon"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/presentation"
	"github.com/cloudposse/tokenicon/pkg/schema"
	"github.com/cloudposse/tokenicon/pkg/store"
	"github.com/cloudposse/tokenicon/pkg/token"
)

// iconRuntime bundles what a command needs to resolve icons.
type iconRuntime struct {
	loop     *presentation.Loop
	fetcher  *icon.Fetcher
	custom   *icon.CustomIcons
	resolver *icon.Resolver
	store    store.Store
}

func newIconRuntime(cfg schema.Configuration) (*iconRuntime, error) {
	loop := presentation.NewLoop()

	fetcher, err := icon.NewFetcherFromConfig(cfg.Fetch, loop)
	if err != nil {
		return nil, err
	}

	s, err := store.NewStore(cfg.CustomIcons)
	if err != nil {
		return nil, err
	}
	custom := icon.NewCustomIcons(s)

	resolver, err := icon.NewResolver(cfg.Icons,
		icon.WithFetcher(fetcher),
		icon.WithCustomIcons(custom),
	)
	if err != nil {
		closeStore(s)
		return nil, err
	}

	return &iconRuntime{
		loop:     loop,
		fetcher:  fetcher,
		custom:   custom,
		resolver: resolver,
		store:    s,
	}, nil
}

// settle waits for outstanding fetches and runs their deliveries on the calling goroutine.
func (r *iconRuntime) settle() {
	r.fetcher.Wait()
	r.loop.Drain()
}

func (r *iconRuntime) Close() {
	r.fetcher.Wait()
	closeStore(r.store)
}

func closeStore(s store.Store) {
	c, ok := s.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		log.Warn("Failed to close custom icon store", "error", err)
	}
}

func newCustomIcons(cfg schema.Configuration) (*icon.CustomIcons, func(), error) {
	s, err := store.NewStore(cfg.CustomIcons)
	if err != nil {
		return nil, nil, err
	}
	return icon.NewCustomIcons(s), func() { closeStore(s) }, nil
}

func newTokenStore(cfg schema.Configuration) (*token.FileStore, error) {
	return token.NewFileStore(
		token.WithPath(cfg.Tokens.Path),
		token.WithLocking(cfg.Tokens.Locking),
	)
}

// iconSize returns requested when positive, otherwise the configured size.
func iconSize(cfg schema.Configuration, requested int) int {
	if requested > 0 {
		return requested
	}
	if cfg.Icons.Size > 0 {
		return cfg.Icons.Size
	}
	return icon.DefaultSize
}
