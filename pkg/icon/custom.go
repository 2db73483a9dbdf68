package icon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"

	errUtils "github.com/cloudposse/tokenicon/errors"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/store"
)

const customIconKeyPrefix = "custom-icon/"

// CustomIconEntry is an icon a user assigned to an issuer.
type CustomIconEntry struct {
	Issuer string
	Name   string
	Image  image.Image
}

type customIconRecord struct {
	Issuer string `json:"issuer"`
	Name   string `json:"name"`
	PNG    []byte `json:"png"`
}

// CustomIcons maps issuers to user-assigned icons on top of a key/value store.
type CustomIcons struct {
	store store.Store
}

// NewCustomIcons wraps s.
func NewCustomIcons(s store.Store) *CustomIcons {
	return &CustomIcons{store: s}
}

// CustomIconKey is the store key for issuer. Issuers match exactly, case included.
func CustomIconKey(issuer string) string {
	return customIconKeyPrefix + issuer
}

// Lookup returns the entry for issuer with its image fitted to size.
// Missing, unreadable and undecodable entries are all misses.
func (c *CustomIcons) Lookup(ctx context.Context, issuer string, size int) (*CustomIconEntry, bool) {
	if c == nil || c.store == nil || issuer == "" {
		return nil, false
	}

	key := CustomIconKey(issuer)
	ok, err := c.store.Has(ctx, key)
	if err != nil {
		log.Warn("Failed to check custom icon", "issuer", issuer, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	entry, err := c.Get(ctx, issuer)
	if err != nil {
		log.Warn("Ignoring unreadable custom icon", "issuer", issuer, "error", err)
		return nil, false
	}

	entry.Image = Fit(entry.Image, size)
	return entry, true
}

// Get returns the stored entry for issuer at its original size.
func (c *CustomIcons) Get(ctx context.Context, issuer string) (*CustomIconEntry, error) {
	data, err := c.store.Get(ctx, CustomIconKey(issuer))
	if errors.Is(err, errUtils.ErrStoreKeyNotFound) {
		return nil, errUtils.Build(errUtils.ErrCustomIconNotFound).
			WithContext("issuer", issuer).
			WithExitCode(errUtils.ExitCodeNotFound).
			Err()
	}
	if err != nil {
		return nil, err
	}

	var rec customIconRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errUtils.Build(errUtils.ErrCustomIconDecode).WithCause(err).WithContext("issuer", issuer).Err()
	}

	img, err := png.Decode(bytes.NewReader(rec.PNG))
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrCustomIconDecode).WithCause(err).WithContext("issuer", issuer).Err()
	}

	name := rec.Name
	if name == "" {
		name = issuer
	}
	return &CustomIconEntry{Issuer: rec.Issuer, Name: name, Image: img}, nil
}

// Assign stores img as the custom icon for issuer. An empty name defaults to the issuer.
func (c *CustomIcons) Assign(ctx context.Context, issuer, name string, img image.Image) error {
	if issuer == "" {
		return errUtils.ErrEmptyIssuer
	}
	if img == nil {
		return errUtils.Build(errUtils.ErrImageEncode).WithContext("issuer", issuer).Err()
	}
	if name == "" {
		name = issuer
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errUtils.Build(errUtils.ErrImageEncode).WithCause(err).WithContext("issuer", issuer).Err()
	}

	data, err := json.Marshal(customIconRecord{Issuer: issuer, Name: name, PNG: buf.Bytes()})
	if err != nil {
		return errUtils.Build(errUtils.ErrSerializeValue).WithCause(err).Err()
	}

	if err := c.store.Set(ctx, CustomIconKey(issuer), data); err != nil {
		return err
	}
	log.Debug("Assigned custom icon", "issuer", issuer, "name", name)
	return nil
}
