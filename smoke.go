package landscape

import (
	"iter"
	"math"
	"math/rand/v2"
)

const (
	SmokeRadius = 30.0 // arc shape radius, px
	SmokeSize   = 60.0 // plume length, px

	smokeWaveDegrees = 5.0
	smokeWaveShift   = 3.0
)

// SmokeDot is one point of a smoke plume relative to the chimney, with y
// measured upward, and its distance from the chimney.
type SmokeDot struct {
	X, Y     int
	Distance float64
}

// SmokeLine enumerates the plume arc y(x) = k*sqrt(x) for a plume leaning
// angleDeg above horizontal, column by column, filling vertical gaps so the
// line is connected. The sequence ends with the first dot farther than
// SmokeSize from the origin, or at column maxX. Heights are capped at maxY.
func SmokeLine(angleDeg float64, maxX, maxY int) iter.Seq[SmokeDot] {
	a := math.Pi * angleDeg / 180
	k := SmokeRadius * math.Sin(a) / math.Sqrt(SmokeRadius*math.Cos(a))
	return func(yield func(SmokeDot) bool) {
		prev := 0
		for x := 0; x < maxX; x++ {
			y := min(int(k*math.Sqrt(float64(x))), maxY)
			for yi := prev; ; {
				d := math.Hypot(float64(x), float64(yi))
				if !yield(SmokeDot{X: x, Y: yi, Distance: d}) || d > SmokeSize {
					return
				}
				yi++
				if yi >= y {
					prev = y
					break
				}
			}
		}
	}
}

// smokeDotVisible decides whether a dot at distance d renders and its jitter.
func smokeDotVisible(r *rand.Rand, d float64) (dx, dy int, ok bool) {
	ratio := d / SmokeSize
	if r.Float64()*1.3 <= ratio {
		return 0, 0, false
	}
	if r.Float64()*1.2 < ratio {
		return randInclusive(r, -1, 1), randInclusive(r, -1, 1), true
	}
	return 0, 0, true
}

// DrawSmoke draws a plume from (x0, y0), where y0 is measured up from the
// bottom of the canvas. Static plumes draw from the session stream.
// Animated plumes sway with the frame and draw every dot from its own
// generator, leaving the session stream untouched.
func (p *Painter) DrawSmoke(s *Session, anim AnimationContext, x0, y0 int, angleDeg float64) {
	c := p.palette.Color(Gray)
	h := p.canvas.height

	if !anim.Animated {
		for d := range SmokeLine(angleDeg, p.canvas.width, h) {
			if dx, dy, ok := smokeDotVisible(s.Rand, d.Distance); ok {
				p.canvas.SetRGB(x0+d.X+dx, h-(y0+d.Y)+dy, c)
			}
		}
		return
	}

	shift := smokeShift(anim)
	for px := range smokeFrame(anim, angleDeg, p.canvas.width, h) {
		if px.Lit && px.Visible {
			p.canvas.SetRGB(x0+px.X+px.DX+shift, h-(y0+px.Y)+px.DY, c)
		}
	}
}

// smokePixel is one dot of an animated plume. Visible and the jitter come
// from a generator keyed by the dot and the unswayed angle, so they hold
// across frames; Lit is the per-frame flicker.
type smokePixel struct {
	SmokeDot
	DX, DY  int
	Visible bool
	Lit     bool
}

func smokeWave(anim AnimationContext) float64 {
	return math.Sin(anim.Phase() * 2 * math.Pi)
}

func smokeShift(anim AnimationContext) int {
	return int(smokeWave(anim) * smokeWaveShift)
}

// smokeFrame enumerates the dots of an animated plume for anim's frame.
func smokeFrame(anim AnimationContext, angleDeg float64, maxX, maxY int) iter.Seq[smokePixel] {
	angle := angleDeg + smokeWave(anim)*smokeWaveDegrees
	total := max(anim.Total, 1)
	return func(yield func(smokePixel) bool) {
		for d := range SmokeLine(angle, maxX, maxY) {
			r := keyedRand(int64(d.X)*1000 + int64(d.Y)*1000 + int64(angleDeg*100))
			dx, dy, ok := smokeDotVisible(r, d.Distance)
			px := smokePixel{
				SmokeDot: d,
				DX:       dx,
				DY:       dy,
				Visible:  ok,
				Lit:      (d.X+d.Y+anim.Frame)%total <= total/2,
			}
			if !yield(px) {
				return
			}
		}
	}
}

// SmokeAngle maps wind speed to a plume angle: calm air sends smoke almost
// straight up, strong wind flattens it.
func SmokeAngle(windSpeed float64) float64 {
	return math.Max(10, math.Min(85, 85-windSpeed*6))
}
