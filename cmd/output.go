package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/charmbracelet/lipgloss"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/filesystem"
	"github.com/cloudposse/tokenicon/pkg/icon"
	"github.com/cloudposse/tokenicon/pkg/ui/theme"
)

const outputFilePerm = 0o644

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorGray))
)

// describeIcon prints the source and background of a resolved icon.
func describeIcon(w io.Writer, resolved icon.ResolvedIcon) {
	bg := icon.Hex(resolved.Background)

	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("source:"), resolved.Source)
	if resolved.SourceName != "" {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("color key:"), resolved.SourceName)
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("background:"), theme.Swatch(bg, bg))
	fmt.Fprintf(w, "%s %.0f\n", labelStyle.Render("corner radius:"), resolved.CornerRadius)

	if resolved.Image == nil {
		fmt.Fprintln(w, mutedStyle.Render("no bitmap, the placeholder stays visible"))
		return
	}
	b := resolved.Image.Bounds()
	fmt.Fprintf(w, "%s %dx%d\n", labelStyle.Render("bitmap:"), b.Dx(), b.Dy())
}

// writePNG encodes img to path atomically.
func writePNG(path string, img image.Image) error {
	if img == nil {
		return errUtils.Build(errUtils.ErrImageEncode).
			WithExplanation("There is no bitmap to write").
			WithContext("path", path).
			Err()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errUtils.Build(errUtils.ErrImageEncode).WithCause(err).WithContext("path", path).Err()
	}
	return filesystem.NewOSFileSystem().WriteFileAtomic(path, buf.Bytes(), outputFilePerm)
}
