package landscape

import (
	"math"
	"math/rand/v2"

	"github.com/wxscape/landscape/cache"
)

// Stipple constants: a cell is inked with probability (intensity/heavy)/factor.
const (
	HeavyRain  = 5.0
	RainFactor = 20.0
	HeavySnow  = 5.0
	SnowFactor = 10.0
)

// Animated rain constants.
const (
	rainStartSpread = 20
	rainMinLength   = 2
	rainMaxLength   = 4
	rainMinSpeed    = 0.8
	rainMaxSpeed    = 1.2
	rainFall        = 10.0 // pixels per frame at speed 1
)

// RainDrop is a frozen animated raindrop.
type RainDrop struct {
	X          int
	StartY     int
	Length     int
	Speed      float64
	StartFrame int
}

// Y returns the drop's head position at frame of a total-frame loop.
func (d RainDrop) Y(frame, total int) float64 {
	if total <= 0 {
		total = 1
	}
	offset := ((frame-d.StartFrame)%total + total) % total
	return float64(d.StartY) + float64(offset)*d.Speed*rainFall
}

// stipple inks every second row of each column between y+1 and the terrain
// with a two pixel vertical stamp, each cell independently with
// probability (intensity/heavy)/factor.
func (p *Painter) stipple(r *rand.Rand, id ColorID, intensity, heavy, factor float64, x, y, width int, terrain []int) {
	threshold := 1.0 - (intensity/heavy)/factor
	c := p.palette.Color(id)
	for col := max(x, 0); col < x+width && col < len(terrain); col++ {
		if col >= p.canvas.width {
			break
		}
		for row := y + 1; row < terrain[col]; row += 2 {
			if row >= p.canvas.height {
				break
			}
			if r.Float64() > threshold {
				p.canvas.SetRGB(col, row, c)
				p.canvas.SetRGB(col, row-1, c)
			}
		}
	}
}

// DrawRainStatic draws a fresh stochastic rain stipple. Nothing is cached.
func (p *Painter) DrawRainStatic(r *rand.Rand, intensity float64, x, y, width int, terrain []int) {
	p.stipple(r, Blue, intensity, HeavyRain, RainFactor, x, y, width, terrain)
}

// DrawSnow draws a stochastic snow stipple.
func (p *Painter) DrawSnow(r *rand.Rand, intensity float64, x, y, width int, terrain []int) {
	p.stipple(r, Cyan, intensity, HeavySnow, SnowFactor, x, y, width, terrain)
}

// LayoutRainDrops returns the frozen drop list for a rain field, generating
// width*intensity*2 drops from r on first use.
func LayoutRainDrops(store *cache.Store[RainKey, []RainDrop], r *rand.Rand, intensity float64, x, y, width, total int) []RainDrop {
	key := RainKey{X: x, Y: y, Width: width, Intensity: intensity}
	return store.GetOrCreate(key, func() []RainDrop {
		n := int(float64(width) * intensity * 2)
		if n <= 0 || width <= 0 {
			return nil
		}
		drops := make([]RainDrop, n)
		for i := range drops {
			drops[i] = RainDrop{
				X:          randRange(r, x, width),
				StartY:     randRange(r, y+1, rainStartSpread),
				Length:     randInclusive(r, rainMinLength, rainMaxLength),
				Speed:      randUniform(r, rainMinSpeed, rainMaxSpeed),
				StartFrame: randRange(r, 0, max(total, 1)),
			}
		}
		return drops
	})
}

// DrawRainAnimated draws the rain field for the current frame. Drops that
// reached the terrain splash with a 50% chance instead of drawing a body.
func (p *Painter) DrawRainAnimated(s *Session, anim AnimationContext, intensity float64, x, y, width int, terrain []int) {
	c := p.palette.Color(Blue)
	for _, d := range LayoutRainDrops(s.Rain, s.Rand, intensity, x, y, width, anim.Total) {
		if d.X < 0 || d.X >= len(terrain) {
			continue
		}
		ground := terrain[d.X]
		head := d.Y(anim.Frame, anim.Total)
		if head >= float64(ground) {
			if s.Rand.Float64() > 0.5 {
				p.canvas.SetRGB(d.X-1, ground-1, c)
				p.canvas.SetRGB(d.X+1, ground-1, c)
			}
			continue
		}
		for i := range d.Length {
			p.canvas.SetRGB(d.X, int(math.Floor(head))-i, c)
		}
	}
}

// DrawRain dispatches to the animated or the static rain renderer.
func (p *Painter) DrawRain(s *Session, anim AnimationContext, intensity float64, x, y, width int, terrain []int) {
	if anim.Animated {
		p.DrawRainAnimated(s, anim, intensity, x, y, width, terrain)
		return
	}
	p.DrawRainStatic(s.Rand, intensity, x, y, width, terrain)
}
