// Package theme holds the terminal colors shared by the logger and the CLI.
package theme

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
)

// Palette colors.
const (
	ColorBlue   = "#5F87FF"
	ColorGreen  = "#00AF5F"
	ColorYellow = "#FFD75F"
	ColorRed    = "#FF5F5F"
	ColorGray   = "#808080"
	ColorWhite  = "#FFFFFF"
	ColorBlack  = "#000000"

	// ColorBorder outlines tables.
	ColorBorder = ColorBlue
)

const (
	hexColorLength = 6
	hexBase        = 16
	intBitSize     = 64

	// WCAG sRGB gamma correction constants.
	rgbMaxValue          = 255.0
	srgbThreshold        = 0.03928
	srgbGammaDivisor     = 12.92
	srgbGammaOffset      = 0.055
	srgbGammaDenominator = 1.055
	srgbGammaExponent    = 2.4

	wcagLuminanceRedWeight   = 0.2126
	wcagLuminanceGreenWeight = 0.7152
	wcagLuminanceBlueWeight  = 0.0722
	luminanceThreshold       = 0.5
)

// TraceLevel mirrors logger.TraceLevel without importing the logger package.
const TraceLevel = log.DebugLevel - 1

// ContrastTextColor returns black or white text for the given "#RRGGBB" background,
// using the WCAG relative luminance formula. Unparseable input yields white.
func ContrastTextColor(bgColor string) string {
	hexColor := bgColor
	if len(hexColor) > 0 && hexColor[0] == '#' {
		hexColor = hexColor[1:]
	}
	if len(hexColor) != hexColorLength {
		return ColorWhite
	}

	r, err1 := strconv.ParseInt(hexColor[0:2], hexBase, intBitSize)
	g, err2 := strconv.ParseInt(hexColor[2:4], hexBase, intBitSize)
	b, err3 := strconv.ParseInt(hexColor[4:6], hexBase, intBitSize)
	if err1 != nil || err2 != nil || err3 != nil {
		return ColorWhite
	}

	toLinear := func(c int64) float64 {
		v := float64(c) / rgbMaxValue
		if v <= srgbThreshold {
			return v / srgbGammaDivisor
		}
		return math.Pow((v+srgbGammaOffset)/srgbGammaDenominator, srgbGammaExponent)
	}

	luminance := wcagLuminanceRedWeight*toLinear(r) +
		wcagLuminanceGreenWeight*toLinear(g) +
		wcagLuminanceBlueWeight*toLinear(b)

	if luminance > luminanceThreshold {
		return ColorBlack
	}
	return ColorWhite
}

func badge(label, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(ContrastTextColor(bg))).
		Bold(true).
		Padding(0, 1)
}

// GetLogStyles returns charm/log styles with badge-like level labels.
func GetLogStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels = map[log.Level]lipgloss.Style{
		TraceLevel:     badge("TRCE", ColorGray),
		log.DebugLevel: badge("DEBU", ColorBlue),
		log.InfoLevel:  badge("INFO", ColorGreen),
		log.WarnLevel:  badge("WARN", ColorYellow),
		log.ErrorLevel: badge("ERRO", ColorRed),
		log.FatalLevel: badge("FATA", ColorRed),
	}

	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray))
	styles.Value = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)

	return styles
}

// GetLogStylesNoColor returns charm/log styles with plain level labels.
func GetLogStylesNoColor() *log.Styles {
	return &log.Styles{
		Levels: map[log.Level]lipgloss.Style{
			TraceLevel:     lipgloss.NewStyle().SetString("TRCE"),
			log.DebugLevel: lipgloss.NewStyle().SetString("DEBU"),
			log.InfoLevel:  lipgloss.NewStyle().SetString("INFO"),
			log.WarnLevel:  lipgloss.NewStyle().SetString("WARN"),
			log.ErrorLevel: lipgloss.NewStyle().SetString("ERRO"),
			log.FatalLevel: lipgloss.NewStyle().SetString("FATA"),
		},
		Keys:   map[string]lipgloss.Style{},
		Values: map[string]lipgloss.Style{},
	}
}

// Swatch renders text on the given "#RRGGBB" background.
func Swatch(text, bg string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(ContrastTextColor(bg))).
		Padding(0, 2).
		Render(text)
}
