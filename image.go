package inkan

import (
	"image"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Image renders s onto a fresh CanvasSize canvas and returns it resampled
// to DisplaySize. Empty text yields a fully transparent image.
func (r *Renderer) Image(s string) (*image.RGBA, error) {
	size := r.cfg.CanvasSize
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	if err := r.Render(dc, s); err != nil {
		return nil, err
	}

	src := dc.Image()
	out := r.cfg.displaySize()
	dst := image.NewRGBA(image.Rect(0, 0, out, out))
	if out == size {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst, nil
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// EncodePNG writes the display-size seal for s as PNG.
func (r *Renderer) EncodePNG(w io.Writer, s string) error {
	img, err := r.Image(s)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
