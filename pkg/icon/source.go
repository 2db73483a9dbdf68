package icon

import "fmt"

// SourceKind names the branch of the resolution waterfall that produced an icon.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceDefault
	SourceExplicit
	SourceCustom
	SourceBrand
)

func (k SourceKind) String() string {
	switch k {
	case SourceDefault:
		return "default"
	case SourceExplicit:
		return "explicit"
	case SourceCustom:
		return "custom"
	case SourceBrand:
		return "brand"
	default:
		return "none"
	}
}

// Source is the outcome of choosing a branch. Exactly one of the variant
// types below implements it.
type Source interface {
	Kind() SourceKind
	// ColorKey is the name background color is derived from.
	ColorKey() string
}

// DefaultSource selects the bundled default icon.
type DefaultSource struct{}

// ExplicitSource selects a remote image that has to be fetched.
type ExplicitSource struct {
	URI string
}

// CustomSource selects a user-assigned icon.
type CustomSource struct {
	Entry *CustomIconEntry
}

// BrandSource selects a catalog brand glyph.
type BrandSource struct {
	ID BrandID
}

// NoSource leaves the placeholder in place.
type NoSource struct{}

func (DefaultSource) Kind() SourceKind  { return SourceDefault }
func (ExplicitSource) Kind() SourceKind { return SourceExplicit }
func (CustomSource) Kind() SourceKind   { return SourceCustom }
func (BrandSource) Kind() SourceKind    { return SourceBrand }
func (NoSource) Kind() SourceKind       { return SourceNone }

func (DefaultSource) ColorKey() string  { return "" }
func (ExplicitSource) ColorKey() string { return "" }
func (NoSource) ColorKey() string       { return "" }
func (b BrandSource) ColorKey() string  { return string(b.ID) }

func (c CustomSource) ColorKey() string {
	if c.Entry == nil {
		return ""
	}
	return c.Entry.Name
}

func (e ExplicitSource) String() string { return fmt.Sprintf("explicit(%s)", e.URI) }
func (b BrandSource) String() string    { return fmt.Sprintf("brand(%s)", b.ID) }
