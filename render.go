package inkan

import (
	"math"
)

// glyphAdvanceRatio approximates a glyph's advance as a fraction of its
// font size when stretching it across a wedge.
const glyphAdvanceRatio = 0.7

// Renderer draws seals for one Config and font face.
//
// A Renderer keeps no state between Render calls other than its glyph
// outline cache. It is not safe for concurrent use.
type Renderer struct {
	cfg    Config
	font   fontSource
	glyphs *glyphSet
	closed bool
}

// New validates cfg and loads the font face.
func New(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	font, err := resolveFont(cfg, o)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		cfg:    cfg,
		font:   font,
		glyphs: newGlyphSet(font.src, cfg.FontSize()),
	}, nil
}

// Render draws a one-off seal with a temporary Renderer.
// Callers rendering repeatedly should keep a Renderer instead.
func Render(dst Target, s string, cfg Config, opts ...Option) error {
	r, err := New(cfg, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()
	return r.Render(dst, s)
}

// Config returns the configuration the Renderer was built with.
func (r *Renderer) Config() Config {
	return r.cfg
}

// FontName returns the family name of the face in use.
func (r *Renderer) FontName() string {
	return r.font.src.Name()
}

// Close releases the font source if the Renderer loaded it.
// Close is idempotent.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.glyphs.cache.Clear()
	if r.font.owned {
		return r.font.src.Close()
	}
	return nil
}

// Render repaints dst with the seal for s.
//
// dst is always cleared first. Empty text (after normalization) leaves it
// cleared and returns nil. If a drawing primitive fails, dst is cleared
// again and the error is returned as a *RenderError.
func (r *Renderer) Render(dst Target, s string) (err error) {
	if dst == nil {
		return ErrNilTarget
	}
	if r.closed {
		return ErrClosed
	}

	prepared := Prepare(s, r.cfg)
	dst.Clear()
	if prepared == "" {
		Logger().Debug("inkan: render seal", "chars", 0)
		return nil
	}

	defer func() {
		if err != nil {
			dst.Clear()
		}
	}()

	if err := r.drawBorders(dst); err != nil {
		return err
	}

	chars := Characters(prepared, r.cfg.Truncation)
	wedges := BuildWedges(len(chars), r.cfg)
	Logger().Debug("inkan: render seal",
		"chars", len(chars), "input", len(s), "font_size", r.glyphs.size)

	for i, w := range wedges {
		if err := r.drawChar(dst, chars[i], w); err != nil {
			return err
		}
	}
	return nil
}

// drawBorders strokes the outer and inner rings.
func (r *Renderer) drawBorders(dst Target) error {
	cx, cy := r.cfg.Center()
	dst.SetColor(r.cfg.StrokeColor.Color())

	rings := [...]struct {
		op     string
		radius float64
		width  float64
	}{
		{"stroke outer border", r.cfg.OuterRadius, r.cfg.OuterStrokeWidth},
		{"stroke inner border", r.cfg.InnerRadius, r.cfg.InnerStrokeWidth},
	}
	for _, ring := range rings {
		dst.SetLineWidth(ring.width)
		dst.DrawCircle(cx, cy, ring.radius)
		if err := dst.Stroke(); err != nil {
			return &RenderError{Op: ring.op, Index: -1, Err: err}
		}
	}
	return nil
}

// drawChar fills ch into wedge w: clip to the pie slice, move to the
// anchor, stand the glyph up and stretch it over the wedge.
func (r *Renderer) drawChar(dst Target, ch string, w Wedge) error {
	dst.Push()
	defer dst.Pop()

	cx, cy := r.cfg.Center()
	outer := r.cfg.OuterRadius

	dst.MoveTo(cx, cy)
	dst.LineTo(cx+math.Cos(w.StartAngle)*outer, cy+math.Sin(w.StartAngle)*outer)
	dst.DrawArc(cx, cy, outer, w.StartAngle, w.EndAngle)
	dst.ClosePath()
	dst.Clip()

	ax, ay := w.Anchor(cx, cy)
	dst.Translate(ax, ay)
	dst.Rotate(w.Rotation())

	// After the rotation x runs along the ring and y points inward.
	size := r.glyphs.size
	radialScale := (outer - r.cfg.InnerRadius) / size
	angularScale := (w.Width() * w.TextRadius) / (size * glyphAdvanceRatio)
	dst.Scale(angularScale, radialScale)

	if !r.glyphs.appendPath(dst, ch) {
		return nil
	}
	dst.SetColor(r.cfg.StrokeColor.Color())
	if err := dst.Fill(); err != nil {
		return &RenderError{Op: "fill glyph", Index: w.Index, Err: err}
	}
	return nil
}
