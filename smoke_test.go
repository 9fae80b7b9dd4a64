package landscape

import (
	"math"
	"testing"
)

func TestSmokeLineTerminates(t *testing.T) {
	for _, angle := range []float64{10, 45, 85} {
		n := 0
		var last SmokeDot
		for d := range SmokeLine(angle, 1000, 1000) {
			n++
			last = d
			if n > 10000 {
				t.Fatalf("angle %v: sequence did not terminate", angle)
			}
		}
		if n == 0 {
			t.Fatalf("angle %v: empty plume", angle)
		}
		if last.Distance <= SmokeSize {
			t.Errorf("angle %v: last dot at %v, want past %v", angle, last.Distance, SmokeSize)
		}
	}
}

func TestSmokeLineConnected(t *testing.T) {
	prevX, prevY := 0, 0
	first := true
	for d := range SmokeLine(70, 1000, 1000) {
		if !first {
			if d.X-prevX > 1 || d.Y-prevY > 1 {
				t.Fatalf("gap between (%d,%d) and (%d,%d)", prevX, prevY, d.X, d.Y)
			}
		}
		first = false
		prevX, prevY = d.X, d.Y
		if want := math.Hypot(float64(d.X), float64(d.Y)); d.Distance != want {
			t.Fatalf("distance %v, want %v", d.Distance, want)
		}
	}
}

func TestSmokeLineBounded(t *testing.T) {
	for d := range SmokeLine(85, 5, 3) {
		if d.X >= 5 || d.Y > 3 {
			t.Fatalf("dot (%d,%d) outside bounds", d.X, d.Y)
		}
	}
}

func TestSmokeAngle(t *testing.T) {
	tests := []struct{ speed, want float64 }{
		{0, 85},
		{5, 55},
		{20, 10},
	}
	for _, tt := range tests {
		if got := SmokeAngle(tt.speed); got != tt.want {
			t.Errorf("SmokeAngle(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestDrawSmokeAnimatedLeavesStream(t *testing.T) {
	s := NewSession(11)
	ref := NewRand(11)

	c := NewCanvas(120, 80)
	p := NewPainter(c, &LightPalette, nil)
	p.DrawSmoke(s, AnimationContext{Frame: 2, Total: 10, Animated: true}, 10, 20, 60)

	if s.Rand.Uint64() != ref.Uint64() {
		t.Error("animated smoke consumed the session stream")
	}
	if countColor(c, LightPalette.Color(Gray)) == 0 {
		t.Error("animated smoke drew nothing")
	}
}

func TestDrawSmokeAnimatedRepeatable(t *testing.T) {
	ctx := AnimationContext{Frame: 4, Total: 10, Animated: true}
	a, b := NewCanvas(120, 80), NewCanvas(120, 80)
	NewPainter(a, &LightPalette, nil).DrawSmoke(NewSession(1), ctx, 10, 20, 45)
	NewPainter(b, &LightPalette, nil).DrawSmoke(NewSession(2), ctx, 10, 20, 45)
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatal("the same frame should render identically regardless of session seed")
		}
	}
}

func TestDrawSmokeStatic(t *testing.T) {
	c := NewCanvas(120, 80)
	NewPainter(c, &LightPalette, nil).DrawSmoke(NewSession(5), Still, 10, 20, 60)
	if countColor(c, LightPalette.Color(Gray)) == 0 {
		t.Error("static smoke drew nothing")
	}
}

func TestSmokeFrameDotsStableAcrossFrames(t *testing.T) {
	type key struct{ x, y int }
	first := map[key]smokePixel{}
	for px := range smokeFrame(AnimationContext{Frame: 0, Total: 10, Animated: true}, 60, 200, 200) {
		first[key{px.X, px.Y}] = px
	}
	shared := 0
	for px := range smokeFrame(AnimationContext{Frame: 1, Total: 10, Animated: true}, 60, 200, 200) {
		prev, ok := first[key{px.X, px.Y}]
		if !ok {
			continue
		}
		shared++
		if prev.Visible != px.Visible || prev.DX != px.DX || prev.DY != px.DY {
			t.Errorf("dot (%d,%d) changed between frames: %+v then %+v", px.X, px.Y, prev, px)
		}
	}
	if shared == 0 {
		t.Fatal("frames 0 and 1 share no dots")
	}
}
