package token

// Token is a user-managed credential record as far as its display identity goes.
type Token struct {
	ID     string `json:"id"`
	Issuer string `json:"issuer"`
	Label  string `json:"label"`
	// Image is a URI or bundled resource path. Empty means unset.
	Image  string `json:"image,omitempty"`
	Locked bool   `json:"locked"`
}

// Identity is the tuple a resolution request is tagged with.
type Identity struct {
	Issuer string
	Label  string
	Image  string
}

// Identity returns the token's current identity tuple. A nil token yields the zero Identity.
func (t *Token) Identity() Identity {
	if t == nil {
		return Identity{}
	}
	return Identity{Issuer: t.Issuer, Label: t.Label, Image: t.Image}
}

// HasImage reports whether an explicit image is set.
func (t *Token) HasImage() bool {
	return t != nil && t.Image != ""
}

// Clone returns an independent copy.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
