package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Match(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		issuer string
		want   BrandID
		found  bool
	}{
		{"GitHub", "github", true},
		{"github", "github", true},
		{"GITHUB", "github", true},
		{"Git-Hub", "github", true},
		{"GitHub Enterprise", "github", true},
		{"AWS", "amazon", true},
		{"aws-prod", "amazon", true},
		{"Acme Corp GitLab", "gitlab", true},
		{"Google Workspace", "google", true},
		{"Jira Cloud", "atlassian", true},
		{"x", "twitter", true},
		{"Xero", "", false},
		{"Boxer", "", false},
		{"", "", false},
		{"   ", "", false},
		{"Unknown Bank", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.issuer, func(t *testing.T) {
			got, ok := c.Match(tt.issuer)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_MatchIsDeterministic(t *testing.T) {
	c := NewCatalog()
	first, _ := c.Match("My GitLab Server")
	for i := 0; i < 20; i++ {
		got, _ := c.Match("My GitLab Server")
		assert.Equal(t, first, got)
	}
}

func TestCatalog_PrefersExactOverPrefix(t *testing.T) {
	c := NewCatalog(
		Brand{ID: "git", Aliases: []string{"git"}},
		Brand{ID: "github", Aliases: []string{"github"}},
	)

	got, ok := c.Match("github")
	assert.True(t, ok)
	assert.Equal(t, BrandID("github"), got)

	got, ok = c.Match("gitea")
	assert.True(t, ok)
	assert.Equal(t, BrandID("git"), got)
}

func TestCatalog_PrefersLongestPrefix(t *testing.T) {
	c := NewCatalog(
		Brand{ID: "google", Aliases: []string{"google"}},
		Brand{ID: "google-cloud", Aliases: []string{"googlecloud"}},
	)

	got, _ := c.Match("Google Cloud Platform")
	assert.Equal(t, BrandID("google-cloud"), got)
}

func TestCatalog_TieBreaksByBrandID(t *testing.T) {
	c := NewCatalog(
		Brand{ID: "zeta", Aliases: []string{"shared"}},
		Brand{ID: "alpha", Aliases: []string{"shared"}},
	)

	got, ok := c.Match("Shared")
	assert.True(t, ok)
	assert.Equal(t, BrandID("alpha"), got)
}

func TestCatalog_CaseFolding(t *testing.T) {
	c := NewCatalog(Brand{ID: "strasse", Aliases: []string{"straße"}})

	got, ok := c.Match("STRASSE")
	assert.True(t, ok)
	assert.Equal(t, BrandID("strasse"), got)
}

func TestCatalog_Brands(t *testing.T) {
	c := NewCatalog()

	b, ok := c.Brand("github")
	assert.True(t, ok)
	assert.Equal(t, "GH", b.Glyph)

	brands := c.Brands()
	assert.Len(t, brands, len(defaultBrands))
	for i := 1; i < len(brands); i++ {
		assert.Less(t, string(brands[i-1].ID), string(brands[i].ID))
	}
}
