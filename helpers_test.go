package inkan

import (
	"errors"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

// newTestRenderer builds a Renderer on the embedded Go Bold face so tests
// do not depend on system fonts.
func newTestRenderer(t *testing.T, cfg Config) *Renderer {
	t.Helper()

	r, err := New(cfg, WithFontData(gobold.TTF))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// op is one recorded Target call.
type op struct {
	name string
	args []float64
}

// recorder is a Target that records calls instead of drawing.
type recorder struct {
	w, h  int
	ops   []op
	depth int

	// failOp makes the failN-th call (1-based) of that op return errBoom.
	failOp string
	failN  int
	calls  map[string]int
}

var errBoom = errors.New("boom")

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h, calls: map[string]int{}}
}

func (r *recorder) add(name string, args ...float64) {
	r.ops = append(r.ops, op{name: name, args: args})
	r.calls[name]++
}

func (r *recorder) fail(name string) error {
	if r.failOp == name && r.calls[name] == r.failN {
		return errBoom
	}
	return nil
}

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

// Clear drops everything recorded so far, like repainting a surface.
func (r *recorder) Clear() {
	r.ops = r.ops[:0]
	r.add("clear")
}

func (r *recorder) Push() {
	r.depth++
	r.add("push")
}

func (r *recorder) Pop() {
	r.depth--
	r.add("pop")
}

func (r *recorder) Translate(x, y float64) { r.add("translate", x, y) }
func (r *recorder) Rotate(a float64)       { r.add("rotate", a) }
func (r *recorder) Scale(x, y float64)     { r.add("scale", x, y) }

func (r *recorder) MoveTo(x, y float64)              { r.add("moveTo", x, y) }
func (r *recorder) LineTo(x, y float64)              { r.add("lineTo", x, y) }
func (r *recorder) QuadraticTo(cx, cy, x, y float64) { r.add("quadTo", cx, cy, x, y) }
func (r *recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.add("cubicTo", c1x, c1y, c2x, c2y, x, y)
}
func (r *recorder) ClosePath()                        { r.add("closePath") }
func (r *recorder) DrawArc(x, y, rad, a1, a2 float64) { r.add("arc", x, y, rad, a1, a2) }
func (r *recorder) DrawCircle(x, y, rad float64)      { r.add("circle", x, y, rad) }

func (r *recorder) Clip() { r.add("clip") }

func (r *recorder) Fill() error {
	r.add("fill")
	return r.fail("fill")
}

func (r *recorder) Stroke() error {
	r.add("stroke")
	return r.fail("stroke")
}

func (r *recorder) SetColor(color.Color)   { r.add("setColor") }
func (r *recorder) SetLineWidth(w float64) { r.add("lineWidth", w) }

// named returns the recorded ops with the given name, in order.
func (r *recorder) named(name string) []op {
	var out []op
	for _, o := range r.ops {
		if o.name == name {
			out = append(out, o)
		}
	}
	return out
}

// drawn reports whether anything other than clear was recorded.
func (r *recorder) drawn() bool {
	for _, o := range r.ops {
		if o.name != "clear" {
			return true
		}
	}
	return false
}
