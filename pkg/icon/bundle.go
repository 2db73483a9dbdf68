package icon

import (
	"bytes"
	"embed"
	"image"
	"image/png"
	"strings"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

const (
	// DefaultResourceName is the bundled default icon.
	DefaultResourceName = "default"
	// BundleScheme addresses bundled resources, e.g. "bundle://default".
	BundleScheme = "bundle://"
	// LegacyDefaultSuffix is the path suffix older tokens use for the bundled default.
	LegacyDefaultSuffix = "/FreeOTP.app/default.png"
)

//go:embed assets/*.png
var assets embed.FS

// ResourceLoader resolves a bundled resource name to a decoded image.
type ResourceLoader interface {
	Load(name string) (image.Image, error)
}

// EmbeddedLoader serves resources compiled into the binary.
type EmbeddedLoader struct{}

var _ ResourceLoader = EmbeddedLoader{}

// Load implements ResourceLoader.
func (EmbeddedLoader) Load(name string) (image.Image, error) {
	data, err := assets.ReadFile("assets/" + name + ".png")
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrBundledResource).
			WithCause(err).
			WithContext("resource", name).
			WithExitCode(errUtils.ExitCodeConfig).
			Err()
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrBundledResource).
			WithCause(err).
			WithContext("resource", name).
			WithExitCode(errUtils.ExitCodeConfig).
			Err()
	}
	return img, nil
}

// LoadDefault loads the bundled default icon through loader.
func LoadDefault(loader ResourceLoader) (image.Image, error) {
	if loader == nil {
		loader = EmbeddedLoader{}
	}
	img, err := loader.Load(DefaultResourceName)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, errUtils.Build(errUtils.ErrBundledResource).
			WithContext("resource", DefaultResourceName).
			WithExitCode(errUtils.ExitCodeConfig).
			Err()
	}
	return img, nil
}

// MustLoadDefault loads the bundled default icon and exits the process on failure.
func MustLoadDefault(loader ResourceLoader) image.Image {
	img, err := LoadDefault(loader)
	errUtils.CheckErrorPrintAndExit(err)
	return img
}

// IsDefaultImage reports whether uri designates the bundled default icon.
// extraSuffix is an additional configured path suffix; empty disables it.
func IsDefaultImage(uri, extraSuffix string) bool {
	switch {
	case uri == "":
		return false
	case uri == BundleScheme+DefaultResourceName:
		return true
	case strings.HasSuffix(uri, LegacyDefaultSuffix):
		return true
	case extraSuffix != "" && strings.HasSuffix(uri, extraSuffix):
		return true
	default:
		return false
	}
}
