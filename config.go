package inkan

import (
	"math"

	"github.com/gogpu/gg"
)

// Default seal parameters.
const (
	DefaultCanvasSize       = 400
	DefaultDisplaySize      = 200
	DefaultOuterRadius      = 180.0
	DefaultInnerRadius      = 60.0
	DefaultMaxCharacters    = 12
	DefaultStrokeHex        = "#8B4513"
	DefaultOuterStrokeWidth = 6.0
	DefaultInnerStrokeWidth = 4.0
	DefaultFontFamily       = "InkanFont"
	DefaultMaxFontSize      = 80.0
)

// fontSizeRingRatio caps the font size relative to the ring depth.
const fontSizeRingRatio = 0.8

// TruncateMode selects how Limit counts characters.
type TruncateMode int

const (
	// TruncateCodeUnits counts UTF-16 code units.
	TruncateCodeUnits TruncateMode = iota
	// TruncateGraphemes counts user-perceived characters.
	TruncateGraphemes
)

// String returns the string representation of the mode.
func (m TruncateMode) String() string {
	switch m {
	case TruncateCodeUnits:
		return "code-units"
	case TruncateGraphemes:
		return "graphemes"
	default:
		return "unknown"
	}
}

// Config holds the seal geometry and style.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// CanvasSize is the side of the square drawing surface in logical pixels.
	CanvasSize int `env:"CANVAS_SIZE"`

	// DisplaySize is the side of the image returned by Renderer.Image.
	// Zero means CanvasSize.
	DisplaySize int `env:"DISPLAY_SIZE"`

	OuterRadius float64 `env:"OUTER_RADIUS"`
	InnerRadius float64 `env:"INNER_RADIUS"`

	// MaxCharacters bounds the text after normalization.
	MaxCharacters int `env:"MAX_CHARACTERS"`

	StrokeColor      gg.RGBA `env:"STROKE_COLOR"`
	OuterStrokeWidth float64 `env:"OUTER_STROKE_WIDTH"`
	InnerStrokeWidth float64 `env:"INNER_STROKE_WIDTH"`

	// FontFamily names the preferred face. FontPath, when set, is the file
	// it is loaded from; otherwise a system serif face or the embedded
	// fallback is used.
	FontFamily  string  `env:"FONT_FAMILY"`
	FontPath    string  `env:"FONT_PATH"`
	MaxFontSize float64 `env:"MAX_FONT_SIZE"`

	Truncation TruncateMode `env:"TRUNCATION"`
}

// DefaultConfig returns the standard 400px seal, displayed at 200px.
func DefaultConfig() Config {
	return Config{
		CanvasSize:       DefaultCanvasSize,
		DisplaySize:      DefaultDisplaySize,
		OuterRadius:      DefaultOuterRadius,
		InnerRadius:      DefaultInnerRadius,
		MaxCharacters:    DefaultMaxCharacters,
		StrokeColor:      gg.Hex(DefaultStrokeHex),
		OuterStrokeWidth: DefaultOuterStrokeWidth,
		InnerStrokeWidth: DefaultInnerStrokeWidth,
		FontFamily:       DefaultFontFamily,
		MaxFontSize:      DefaultMaxFontSize,
		Truncation:       TruncateCodeUnits,
	}
}

// Validate checks 0 < InnerRadius < OuterRadius < CanvasSize/2 and the
// remaining fields.
func (c Config) Validate() error {
	switch {
	case c.CanvasSize <= 0:
		return &ConfigError{Field: "CanvasSize", Reason: "must be positive"}
	case c.DisplaySize < 0:
		return &ConfigError{Field: "DisplaySize", Reason: "must not be negative"}
	case c.InnerRadius <= 0:
		return &ConfigError{Field: "InnerRadius", Reason: "must be positive"}
	case c.OuterRadius <= c.InnerRadius:
		return &ConfigError{Field: "OuterRadius", Reason: "must exceed InnerRadius"}
	case c.OuterRadius >= float64(c.CanvasSize)/2:
		return &ConfigError{Field: "OuterRadius", Reason: "must be less than half of CanvasSize"}
	case c.MaxCharacters <= 0:
		return &ConfigError{Field: "MaxCharacters", Reason: "must be positive"}
	case c.OuterStrokeWidth < 0 || c.InnerStrokeWidth < 0:
		return &ConfigError{Field: "StrokeWidth", Reason: "must not be negative"}
	case c.MaxFontSize <= 0:
		return &ConfigError{Field: "MaxFontSize", Reason: "must be positive"}
	case c.Truncation != TruncateCodeUnits && c.Truncation != TruncateGraphemes:
		return &ConfigError{Field: "Truncation", Reason: "unknown mode"}
	}
	return nil
}

// FontSize returns the face size used for glyph outlines:
// MaxFontSize, or 80% of the ring depth if that is smaller.
func (c Config) FontSize() float64 {
	return math.Min(c.MaxFontSize, (c.OuterRadius-c.InnerRadius)*fontSizeRingRatio)
}

// Center returns the canvas center.
func (c Config) Center() (x, y float64) {
	half := float64(c.CanvasSize) / 2
	return half, half
}

// TextRadius is the radius of every glyph's visual center.
func (c Config) TextRadius() float64 {
	return (c.OuterRadius + c.InnerRadius) / 2
}

func (c Config) displaySize() int {
	if c.DisplaySize == 0 {
		return c.CanvasSize
	}
	return c.DisplaySize
}
