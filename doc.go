// Package inkan renders circular seal (inkan) images from short text.
//
// # Overview
//
// Characters are laid out radially around a ring. The ring is split into
// one equal wedge per character, starting at 12 o'clock and running
// clockwise, and each glyph is rotated to stand on the ring and stretched
// to fill its wedge.
//
// # Quick Start
//
//	r, err := inkan.New(inkan.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	dc := gg.NewContext(400, 400)
//	if err := r.Render(dc, "田中"); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("seal.png")
//
// # Pipeline
//
// A render call runs these steps and keeps no state between calls:
//
//  1. [Normalize] maps halfwidth Latin letters to fullwidth forms.
//  2. [Limit] keeps the first MaxCharacters code units.
//  3. [BuildWedges] partitions the circle into equal wedges.
//  4. The outer and inner borders are stroked.
//  5. Each character is drawn into its wedge under a pie-slice clip.
//
// Empty input leaves the target cleared. A failing drawing primitive
// aborts the render and clears the target, so a caller never observes a
// half-drawn seal.
//
// # Coordinate System
//
// The target uses gg coordinates: origin at top-left, y down, angles in
// radians increasing clockwise on screen. Angle -π/2 is the top of the
// ring.
package inkan
