package inkan

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Target is the drawing surface a seal is rendered onto.
// It is the subset of the gg.Context API the renderer uses; path
// coordinates pass through the current transform, and Push/Pop save and
// restore both the transform and the clip.
//
// A Target must not be rendered into by two calls at once.
type Target interface {
	Width() int
	Height() int

	// Clear resets every pixel to transparent.
	Clear()

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	DrawArc(x, y, r, angle1, angle2 float64)
	DrawCircle(x, y, r float64)

	// Clip intersects the clip region with the current path and clears it.
	Clip()
	Fill() error
	Stroke() error

	SetColor(c color.Color)
	SetLineWidth(width float64)
}

var _ Target = (*gg.Context)(nil)
