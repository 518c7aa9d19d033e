package inkan

import "math"

// topAngle is 12 o'clock in y-down screen coordinates.
const topAngle = -math.Pi / 2

// Wedge is one character's angular slice of the ring,
// spanning [StartAngle, EndAngle].
type Wedge struct {
	Index      int
	StartAngle float64
	EndAngle   float64
	MidAngle   float64
	TextRadius float64
}

// Width returns the wedge's angular width in radians.
func (w Wedge) Width() float64 {
	return w.EndAngle - w.StartAngle
}

// Anchor returns the glyph center for a ring centered at (cx, cy).
func (w Wedge) Anchor(cx, cy float64) (x, y float64) {
	return cx + math.Cos(w.MidAngle)*w.TextRadius, cy + math.Sin(w.MidAngle)*w.TextRadius
}

// Rotation returns the angle that stands a glyph up on the ring, with its
// top facing outward.
func (w Wedge) Rotation() float64 {
	return w.MidAngle + math.Pi/2
}

// BuildWedges partitions the circle into n equal wedges starting at the top
// and running clockwise. It returns nil when n <= 0.
func BuildWedges(n int, cfg Config) []Wedge {
	if n <= 0 {
		return nil
	}

	step := 2 * math.Pi / float64(n)
	radius := cfg.TextRadius()

	// Each end is computed the same way as the next start so adjacent
	// wedges share their boundary exactly.
	wedges := make([]Wedge, n)
	for i := range wedges {
		start := topAngle + float64(i)*step
		end := topAngle + float64(i+1)*step
		if i == n-1 {
			end = topAngle + 2*math.Pi
		}
		wedges[i] = Wedge{
			Index:      i,
			StartAngle: start,
			EndAngle:   end,
			MidAngle:   start + step/2,
			TextRadius: radius,
		}
	}
	return wedges
}
