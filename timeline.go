package landscape

import (
	"math"
	"time"
)

// Timeline maps forecast time onto canvas columns: the current time sits at
// XStart and every Period advances XStep pixels.
type Timeline struct {
	XStart int
	XStep  int
	Period time.Duration
}

// DefaultTimeline is used when no WithTimeline option is given.
var DefaultTimeline = Timeline{XStart: 32, XStep: 44, Period: 3 * time.Hour}

// X returns the column of t relative to now.
func (tl Timeline) X(now, t time.Time) int {
	if tl.Period <= 0 {
		return tl.XStart
	}
	perPixel := float64(tl.Period) / float64(tl.XStep)
	return tl.XStart + int(float64(t.Sub(now))/perPixel)
}

// SlotX returns the column of forecast slot i.
func (tl Timeline) SlotX(i int) int {
	return tl.XStart + i*tl.XStep
}

// Slots returns how many forecast slots fit on a canvas of width.
func (tl Timeline) Slots(width int) int {
	if tl.XStep <= 0 || width <= tl.XStart {
		return 0
	}
	return (width - tl.XStart + tl.XStep - 1) / tl.XStep
}

// Terrain builds the per-column ground line for a canvas of width from the
// slot temperatures: each slot column sits at base minus its scaled
// temperature and columns in between are linearly interpolated. The whole
// temperature range spans at most 2*amplitude pixels.
func Terrain(temps []float64, tl Timeline, width, base, amplitude int) []int {
	line := make([]int, width)
	if len(temps) == 0 {
		for i := range line {
			line[i] = base
		}
		return line
	}

	lo, hi := temps[0], temps[0]
	for _, t := range temps {
		lo, hi = math.Min(lo, t), math.Max(hi, t)
	}
	mid := (lo + hi) / 2
	scale := 1.0
	if span := hi - lo; span > 0 {
		scale = math.Min(1, float64(2*amplitude)/span)
	}
	heightOf := func(t float64) float64 {
		return float64(base) - (t-mid)*scale
	}

	for x := range line {
		pos := float64(x-tl.XStart) / float64(max(tl.XStep, 1))
		var y float64
		switch i := int(math.Floor(pos)); {
		case pos <= 0:
			y = heightOf(temps[0])
		case i >= len(temps)-1:
			y = heightOf(temps[len(temps)-1])
		default:
			f := pos - float64(i)
			y = heightOf(temps[i])*(1-f) + heightOf(temps[i+1])*f
		}
		line[x] = int(math.Round(y))
	}
	return line
}
