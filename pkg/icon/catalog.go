package icon

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// BrandID identifies a catalog brand, e.g. "github".
type BrandID string

const (
	// minPrefixAlias is the shortest alias allowed to match the start of an issuer.
	minPrefixAlias = 3
	// minContainedAlias is the shortest alias allowed to match in the middle of an issuer.
	minContainedAlias = 4
)

// Brand is a catalog entry.
type Brand struct {
	ID BrandID
	// Glyph is the short text drawn for the brand.
	Glyph string
	// Color is the brand's "#RRGGBB" background.
	Color   string
	Aliases []string
}

var defaultBrands = []Brand{
	{ID: "amazon", Glyph: "a", Color: "#FF9900", Aliases: []string{"amazon", "aws", "amazonwebservices"}},
	{ID: "apple", Glyph: "A", Color: "#555555", Aliases: []string{"apple", "icloud", "appleid"}},
	{ID: "atlassian", Glyph: "At", Color: "#0052CC", Aliases: []string{"atlassian", "jira", "confluence"}},
	{ID: "bitbucket", Glyph: "Bb", Color: "#2684FF", Aliases: []string{"bitbucket"}},
	{ID: "bitcoin", Glyph: "B", Color: "#F7931A", Aliases: []string{"bitcoin", "btc"}},
	{ID: "cloudflare", Glyph: "Cf", Color: "#F38020", Aliases: []string{"cloudflare"}},
	{ID: "digital-ocean", Glyph: "DO", Color: "#0080FF", Aliases: []string{"digitalocean"}},
	{ID: "discord", Glyph: "D", Color: "#5865F2", Aliases: []string{"discord", "discordapp"}},
	{ID: "docker", Glyph: "Dk", Color: "#2496ED", Aliases: []string{"docker", "dockerhub"}},
	{ID: "dropbox", Glyph: "Db", Color: "#0061FF", Aliases: []string{"dropbox"}},
	{ID: "facebook", Glyph: "f", Color: "#1877F2", Aliases: []string{"facebook", "fb"}},
	{ID: "gitlab", Glyph: "GL", Color: "#FC6D26", Aliases: []string{"gitlab"}},
	{ID: "github", Glyph: "GH", Color: "#181717", Aliases: []string{"github"}},
	{ID: "google", Glyph: "G", Color: "#4285F4", Aliases: []string{"google", "gmail", "googleworkspace"}},
	{ID: "heroku", Glyph: "H", Color: "#430098", Aliases: []string{"heroku"}},
	{ID: "instagram", Glyph: "Ig", Color: "#E4405F", Aliases: []string{"instagram"}},
	{ID: "linkedin", Glyph: "in", Color: "#0A66C2", Aliases: []string{"linkedin"}},
	{ID: "mailchimp", Glyph: "Mc", Color: "#FFE01B", Aliases: []string{"mailchimp"}},
	{ID: "microsoft", Glyph: "M", Color: "#00A4EF", Aliases: []string{"microsoft", "outlook", "azure", "office365"}},
	{ID: "npm", Glyph: "n", Color: "#CB3837", Aliases: []string{"npm", "npmjs"}},
	{ID: "paypal", Glyph: "P", Color: "#00457C", Aliases: []string{"paypal"}},
	{ID: "reddit", Glyph: "R", Color: "#FF4500", Aliases: []string{"reddit"}},
	{ID: "salesforce", Glyph: "Sf", Color: "#00A1E0", Aliases: []string{"salesforce"}},
	{ID: "slack", Glyph: "S", Color: "#4A154B", Aliases: []string{"slack"}},
	{ID: "steam", Glyph: "St", Color: "#171A21", Aliases: []string{"steam", "steampowered"}},
	{ID: "stripe", Glyph: "S", Color: "#635BFF", Aliases: []string{"stripe"}},
	{ID: "twitch", Glyph: "Tw", Color: "#9146FF", Aliases: []string{"twitch"}},
	{ID: "twitter", Glyph: "X", Color: "#1DA1F2", Aliases: []string{"twitter", "x"}},
	{ID: "wordpress", Glyph: "W", Color: "#21759B", Aliases: []string{"wordpress"}},
}

// Catalog maps issuer names to brands. It is immutable after construction.
type Catalog struct {
	brands  map[BrandID]Brand
	aliases map[string][]BrandID
	// ordered longest alias first, then by alias, for prefix and containment scans.
	ordered []string
}

// NewCatalog builds a catalog from brands. With no arguments the built-in table is used.
func NewCatalog(brands ...Brand) *Catalog {
	if len(brands) == 0 {
		brands = defaultBrands
	}

	c := &Catalog{
		brands:  make(map[BrandID]Brand, len(brands)),
		aliases: make(map[string][]BrandID),
	}

	for _, b := range brands {
		c.brands[b.ID] = b
		for _, alias := range b.Aliases {
			key := normalize(alias)
			if key == "" {
				continue
			}
			c.aliases[key] = append(c.aliases[key], b.ID)
		}
	}

	for key, ids := range c.aliases {
		sorted := lo.Uniq(ids)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		c.aliases[key] = sorted
	}

	c.ordered = lo.Keys(c.aliases)
	sort.Slice(c.ordered, func(i, j int) bool {
		if len(c.ordered[i]) != len(c.ordered[j]) {
			return len(c.ordered[i]) > len(c.ordered[j])
		}
		return c.ordered[i] < c.ordered[j]
	})

	return c
}

// Brand returns the catalog entry for id.
func (c *Catalog) Brand(id BrandID) (Brand, bool) {
	b, ok := c.brands[id]
	return b, ok
}

// Brands returns all entries ordered by id.
func (c *Catalog) Brands() []Brand {
	out := lo.Values(c.brands)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Match finds the brand for issuer: exact alias first, then the longest alias
// the issuer starts with, then the longest alias contained in it.
func (c *Catalog) Match(issuer string) (BrandID, bool) {
	key := normalize(issuer)
	if key == "" {
		return "", false
	}

	if ids, ok := c.aliases[key]; ok {
		return ids[0], true
	}

	for _, alias := range c.ordered {
		if utf8.RuneCountInString(alias) < minPrefixAlias {
			continue
		}
		if strings.HasPrefix(key, alias) {
			return c.aliases[alias][0], true
		}
	}

	for _, alias := range c.ordered {
		if utf8.RuneCountInString(alias) < minContainedAlias {
			continue
		}
		if strings.Contains(key, alias) {
			return c.aliases[alias][0], true
		}
	}

	return "", false
}

// normalize case-folds s and drops everything but letters and digits.
// A Caser keeps state, so one is created per call.
func normalize(s string) string {
	folded := cases.Fold().String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, folded)
}
