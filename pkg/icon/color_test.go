package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

func TestPalette_Background(t *testing.T) {
	p, err := NewPalette("", NewCatalog())
	require.NoError(t, err)

	assert.Equal(t, "#8E8E93", Hex(p.Background("")))
	assert.Equal(t, Hex(p.Neutral()), Hex(p.Background("")))
	assert.Equal(t, "#181717", Hex(p.Background("github")))
	assert.Equal(t, "#FC6D26", Hex(p.Background("gitlab")))
}

func TestPalette_BackgroundIsPure(t *testing.T) {
	p, err := NewPalette("", NewCatalog())
	require.NoError(t, err)
	other, err := NewPalette("", NewCatalog())
	require.NoError(t, err)

	for _, key := range []string{"github", "Acme VPN", "my-custom-icon", "ü"} {
		first := p.Background(key)
		assert.Equal(t, first, p.Background(key), key)
		assert.Equal(t, first, other.Background(key), key)
	}
}

func TestPalette_HashedKeysDiffer(t *testing.T) {
	p, err := NewPalette("", nil)
	require.NoError(t, err)

	assert.NotEqual(t, Hex(p.Background("Acme VPN")), Hex(p.Background("Acme Mail")))
	assert.NotEqual(t, Hex(p.Neutral()), Hex(p.Background("Acme VPN")))
}

func TestNewPalette_CustomNeutral(t *testing.T) {
	p, err := NewPalette("#102030", nil)
	require.NoError(t, err)
	assert.Equal(t, "#102030", Hex(p.Background("")))
}

func TestHex_IsUppercase(t *testing.T) {
	p, err := NewPalette("#aabbcc", nil)
	require.NoError(t, err)
	assert.Equal(t, "#AABBCC", Hex(p.Neutral()))
}

func TestNewPalette_InvalidNeutral(t *testing.T) {
	_, err := NewPalette("grey", nil)
	assert.ErrorIs(t, err, errUtils.ErrInvalidColor)
	assert.Equal(t, errUtils.ExitCodeConfig, errUtils.GetExitCode(err))
}
