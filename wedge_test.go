package inkan

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBuildWedgesEmpty(t *testing.T) {
	for _, n := range []int{0, -3} {
		if got := BuildWedges(n, DefaultConfig()); got != nil {
			t.Errorf("BuildWedges(%d) = %v, want nil", n, got)
		}
	}
}

func TestBuildWedgesTwo(t *testing.T) {
	got := BuildWedges(2, DefaultConfig())
	want := []Wedge{
		{Index: 0, StartAngle: -math.Pi / 2, EndAngle: math.Pi / 2, MidAngle: 0, TextRadius: 120},
		{Index: 1, StartAngle: math.Pi / 2, EndAngle: 3 * math.Pi / 2, MidAngle: math.Pi, TextRadius: 120},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("BuildWedges(2) mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildWedgesPartition(t *testing.T) {
	cfg := DefaultConfig()
	for n := 1; n <= 24; n++ {
		wedges := BuildWedges(n, cfg)
		if len(wedges) != n {
			t.Fatalf("BuildWedges(%d) returned %d wedges", n, len(wedges))
		}
		if wedges[0].StartAngle != -math.Pi/2 {
			t.Errorf("n=%d: first wedge starts at %v, want -π/2", n, wedges[0].StartAngle)
		}
		if end := wedges[n-1].EndAngle; end != -math.Pi/2+2*math.Pi {
			t.Errorf("n=%d: last wedge ends at %v, want 3π/2", n, end)
		}
		var total float64
		for i, w := range wedges {
			if w.Index != i {
				t.Errorf("n=%d: wedge %d has Index %d", n, i, w.Index)
			}
			if i > 0 && w.StartAngle != wedges[i-1].EndAngle {
				t.Errorf("n=%d: gap between wedge %d and %d", n, i-1, i)
			}
			if math.Abs(w.Width()-2*math.Pi/float64(n)) > 1e-12 {
				t.Errorf("n=%d: wedge %d width %v", n, i, w.Width())
			}
			if math.Abs(w.MidAngle-(w.StartAngle+w.Width()/2)) > 1e-12 {
				t.Errorf("n=%d: wedge %d mid %v not centered", n, i, w.MidAngle)
			}
			total += w.Width()
		}
		if math.Abs(total-2*math.Pi) > 1e-9 {
			t.Errorf("n=%d: widths sum to %v, want 2π", n, total)
		}
	}
}

func TestBuildWedgesDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := BuildWedges(7, cfg)
	b := BuildWedges(7, cfg)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("BuildWedges not deterministic:\n%s", diff)
	}
}

func TestWedgeAnchorAndRotation(t *testing.T) {
	w := BuildWedges(4, DefaultConfig())[0]
	// First of four wedges is centered at -π/4 (upper right).
	x, y := w.Anchor(200, 200)
	wantX := 200 + math.Cos(-math.Pi/4)*120
	wantY := 200 + math.Sin(-math.Pi/4)*120
	if math.Abs(x-wantX) > 1e-9 || math.Abs(y-wantY) > 1e-9 {
		t.Errorf("Anchor() = (%v, %v), want (%v, %v)", x, y, wantX, wantY)
	}
	if got := w.Rotation(); math.Abs(got-math.Pi/4) > 1e-12 {
		t.Errorf("Rotation() = %v, want π/4", got)
	}
}
