package inkan

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/text/width"
)

// glyphCacheLimit bounds cached outlines per Renderer.
const glyphCacheLimit = 512

// glyphSet turns characters into filled outline paths at a fixed size.
// It is not safe for concurrent use: the extractor owns a scratch buffer.
type glyphSet struct {
	parsed    text.ParsedFont
	size      float64
	extractor *text.OutlineExtractor
	cache     *text.Cache[rune, *text.GlyphOutline]

	// baseline moves the em box midpoint onto y=0.
	baseline float64
}

func newGlyphSet(src *text.FontSource, size float64) *glyphSet {
	m := src.Face(size).Metrics()
	return &glyphSet{
		parsed:    src.Parsed(),
		size:      size,
		extractor: text.NewOutlineExtractor(),
		cache:     text.NewCache[rune, *text.GlyphOutline](glyphCacheLimit),
		baseline:  (m.Ascent - m.Descent) / 2,
	}
}

// outline returns the glyph outline for r, or nil if the font cannot
// produce one.
func (g *glyphSet) outline(r rune) *text.GlyphOutline {
	if o, ok := g.cache.Get(r); ok {
		return o
	}

	gid := g.lookup(r)
	if gid == 0 {
		Logger().Warn("inkan: glyph missing from face, drawing .notdef", "rune", string(r))
	}
	o, err := g.extractor.ExtractOutline(g.parsed, text.GlyphID(gid), g.size)
	if err != nil {
		Logger().Warn("inkan: no outline for glyph", "rune", string(r), "err", err)
		return nil
	}
	g.cache.Set(r, o)
	return o
}

// lookup finds the glyph for r. Faces without fullwidth forms fall back
// to the narrow letter, which is stretched to the wedge all the same.
func (g *glyphSet) lookup(r rune) uint16 {
	if gid := g.parsed.GlyphIndex(r); gid != 0 {
		return gid
	}
	if n := width.LookupRune(r).Narrow(); n != 0 {
		return g.parsed.GlyphIndex(n)
	}
	return 0
}

// advance returns the summed advance width of s.
func (g *glyphSet) advance(s string) float64 {
	var w float64
	for _, r := range s {
		if o := g.outline(r); o != nil {
			w += float64(o.Advance)
		}
	}
	return w
}

// appendPath adds the outlines of s to dst's current path, centered
// horizontally on the advance and vertically on the em box around the
// origin. It reports whether any contour was added.
func (g *glyphSet) appendPath(dst Target, s string) bool {
	x := -g.advance(s) / 2
	added := false
	for _, r := range s {
		o := g.outline(r)
		if o == nil {
			continue
		}
		if !o.IsEmpty() {
			addOutline(dst, o, x, g.baseline)
			added = true
		}
		x += float64(o.Advance)
	}
	return added
}

// addOutline replays o as path segments offset by (dx, dy), closing each
// contour before the next one starts.
func addOutline(dst Target, o *text.GlyphOutline, dx, dy float64) {
	open := false
	pt := func(p text.OutlinePoint) (float64, float64) {
		return float64(p.X) + dx, float64(p.Y) + dy
	}
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				dst.ClosePath()
			}
			x, y := pt(seg.Points[0])
			dst.MoveTo(x, y)
			open = true
		case text.OutlineOpLineTo:
			x, y := pt(seg.Points[0])
			dst.LineTo(x, y)
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			x, y := pt(seg.Points[1])
			dst.QuadraticTo(cx, cy, x, y)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			x, y := pt(seg.Points[2])
			dst.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		dst.ClosePath()
	}
}
