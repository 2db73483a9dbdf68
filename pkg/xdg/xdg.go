// Package xdg resolves tokenicon's XDG base directories.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"

	adrg "github.com/adrg/xdg"
)

const appName = "tokenicon"

// GetXDGCacheDir returns (and creates) the tokenicon cache directory for subpath.
// TOKENICON_XDG_CACHE_HOME takes precedence over XDG_CACHE_HOME.
func GetXDGCacheDir(subpath string, perm os.FileMode) (string, error) {
	return getXDGDir("XDG_CACHE_HOME", "TOKENICON_XDG_CACHE_HOME", adrg.CacheHome, subpath, perm)
}

// GetXDGDataDir returns (and creates) the tokenicon data directory for subpath.
func GetXDGDataDir(subpath string, perm os.FileMode) (string, error) {
	return getXDGDir("XDG_DATA_HOME", "TOKENICON_XDG_DATA_HOME", adrg.DataHome, subpath, perm)
}

// GetXDGConfigDir returns (and creates) the tokenicon config directory for subpath.
func GetXDGConfigDir(subpath string, perm os.FileMode) (string, error) {
	return getXDGDir("XDG_CONFIG_HOME", "TOKENICON_XDG_CONFIG_HOME", adrg.ConfigHome, subpath, perm)
}

func getXDGDir(xdgVar, appVar, libraryDefault, subpath string, perm os.FileMode) (string, error) {
	base := os.Getenv(appVar)
	if base == "" {
		base = os.Getenv(xdgVar)
	}
	if base == "" {
		base = libraryDefault
	}

	dir := filepath.Join(base, appName)
	if subpath != "" {
		dir = filepath.Join(dir, subpath)
	}

	if err := os.MkdirAll(dir, perm); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return dir, nil
}
