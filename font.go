package inkan

import (
	"fmt"
	"os"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// serifCandidates lists system serif faces tried when Config.FontPath is
// empty. Only TTF/OTF files are listed; TTC collections are not supported.
var serifCandidates = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSerif-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
	"/usr/share/fonts/TTF/DejaVuSerif-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSerif-Bold.ttf",
	"/usr/share/fonts/liberation/LiberationSerif-Bold.ttf",
	"/usr/share/fonts/opentype/ipafont-mincho/ipam.ttf",
	// macOS
	"/System/Library/Fonts/Supplemental/Times New Roman Bold.ttf",
	"/Library/Fonts/Times New Roman Bold.ttf",
	// Windows
	"C:\\Windows\\Fonts\\timesbd.ttf",
	"C:\\Windows\\Fonts\\msmincho.ttf",
}

// fontSource is a resolved face and whether the Renderer must close it.
type fontSource struct {
	src    *text.FontSource
	origin string
	owned  bool
}

// resolveFont picks the face for cfg: an injected source, injected bytes,
// cfg.FontPath, a system serif face, and finally the embedded Go Bold face.
func resolveFont(cfg Config, o options) (fontSource, error) {
	if o.source != nil {
		return fontSource{src: o.source, origin: "injected"}, nil
	}
	if len(o.fontData) > 0 {
		src, err := text.NewFontSource(o.fontData)
		if err != nil {
			return fontSource{}, fmt.Errorf("%w: font data: %w", ErrNoFont, err)
		}
		return fontSource{src: src, origin: "data", owned: true}, nil
	}
	if cfg.FontPath != "" {
		src, err := text.NewFontSourceFromFile(cfg.FontPath)
		if err != nil {
			return fontSource{}, fmt.Errorf("%w: %s %q: %w", ErrNoFont, cfg.FontFamily, cfg.FontPath, err)
		}
		return fontSource{src: src, origin: cfg.FontPath, owned: true}, nil
	}

	for _, path := range serifCandidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			Logger().Warn("inkan: skipping unreadable serif face", "path", path, "err", err)
			continue
		}
		Logger().Warn("inkan: font family not configured, using system serif",
			"family", cfg.FontFamily, "path", path)
		return fontSource{src: src, origin: path, owned: true}, nil
	}

	src, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return fontSource{}, fmt.Errorf("%w: embedded face: %w", ErrNoFont, err)
	}
	Logger().Warn("inkan: no serif face found, using embedded Go Bold", "family", cfg.FontFamily)
	return fontSource{src: src, origin: "gobold", owned: true}, nil
}
