package landscape

import (
	"time"

	"github.com/tanema/gween/ease"
)

// BackgroundMode selects how the canvas background is chosen.
type BackgroundMode uint8

// Background modes.
const (
	// BackgroundDynamic follows the day/night clock.
	BackgroundDynamic BackgroundMode = iota
	// BackgroundStatic always uses the day sky.
	BackgroundStatic
	// BackgroundBlack and BackgroundWhite bypass the clock entirely.
	BackgroundBlack
	BackgroundWhite
)

// String returns the mode name.
func (m BackgroundMode) String() string {
	switch m {
	case BackgroundDynamic:
		return "dynamic"
	case BackgroundStatic:
		return "static"
	case BackgroundBlack:
		return "black"
	case BackgroundWhite:
		return "white"
	default:
		return "unknown"
	}
}

// ParseBackgroundMode parses a mode name.
func ParseBackgroundMode(s string) (BackgroundMode, bool) {
	for m := BackgroundDynamic; m <= BackgroundWhite; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// Sky colours.
var (
	DaySky   = RGB{135, 206, 250}
	NightSky = RGB{0, 0, 30}
)

// DefaultTransition is the half width of the sunrise and sunset blend windows.
const DefaultTransition = 90 * time.Minute

const day = 24 * 3600

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// ColorAt returns the sky colour at now. Times are compared by time of day:
// a sunset earlier than sunrise belongs to the next day, and a now before
// sunrise is moved past midnight. Around sunrise and sunset the colour
// blends linearly across a window of transition on either side.
func ColorAt(now, sunrise, sunset time.Time, transition time.Duration) RGB {
	t := secondsOfDay(now)
	rise := secondsOfDay(sunrise)
	set := secondsOfDay(sunset)
	if set < rise {
		set += day
	}
	if t < rise {
		t += day
	}

	tr := int(transition / time.Second)
	riseStart, riseEnd := rise-tr, rise+tr
	setStart, setEnd := set-tr, set+tr

	switch {
	case t >= setEnd || t <= riseStart:
		return NightSky
	case t >= riseEnd && t <= setStart:
		return DaySky
	case t > riseStart && t < riseEnd:
		return blendSky(NightSky, DaySky, t-riseStart, 2*tr)
	default:
		return blendSky(DaySky, NightSky, t-setStart, 2*tr)
	}
}

// blendSky interpolates from a to b, elapsed seconds into a window of span.
func blendSky(a, b RGB, elapsed, span int) RGB {
	if span <= 0 {
		return b
	}
	t, d := float32(elapsed), float32(span)
	channel := func(from, to uint8) uint8 {
		v := ease.Linear(t, float32(from), float32(to)-float32(from), d)
		return uint8(clamp255(float64(v)))
	}
	return RGB{R: channel(a.R, b.R), G: channel(a.G, b.G), B: channel(a.B, b.B)}
}

// Background returns the background colour for mode at now.
func Background(mode BackgroundMode, now, sunrise, sunset time.Time, transition time.Duration) RGB {
	switch mode {
	case BackgroundBlack:
		return Black
	case BackgroundWhite:
		return White
	case BackgroundStatic:
		return DaySky
	default:
		return ColorAt(now, sunrise, sunset, transition)
	}
}
