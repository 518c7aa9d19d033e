package inkan

import "github.com/gogpu/gg/text"

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default font resolution (FontPath, system serif, embedded fallback)
//	r, err := inkan.New(cfg)
//
//	// Shared font source owned by the caller
//	r, err := inkan.New(cfg, inkan.WithFontSource(src))
type Option func(*options)

type options struct {
	source   *text.FontSource
	fontData []byte
}

// WithFontSource makes the Renderer draw with src instead of resolving a
// font from the Config. The caller keeps ownership: Renderer.Close does
// not close src.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithFontData makes the Renderer parse its face from TTF or OTF bytes,
// for example a font embedded with go:embed.
func WithFontData(data []byte) Option {
	return func(o *options) {
		o.fontData = data
	}
}
