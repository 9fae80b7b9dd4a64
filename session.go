package landscape

import (
	"math/rand/v2"

	"github.com/wxscape/landscape/cache"
)

// CloudKey identifies a cloud cluster layout.
type CloudKey struct {
	X, Y, Width int
	Percent     float64
}

// WindKey identifies a wind vegetation layout.
type WindKey struct {
	Speed, Direction float64
	X                int
}

// RainKey identifies an animated rain field.
type RainKey struct {
	X, Y, Width int
	Intensity   float64
}

// Session holds the placement stores and the shared random stream of one
// render invocation. A Session must not outlive the scene it was created
// for: a new scene starts a new Session so stale placements never bleed
// across.
type Session struct {
	Rand   *rand.Rand
	Clouds *cache.Store[CloudKey, []Placement]
	Wind   *cache.Store[WindKey, []Placement]
	Rain   *cache.Store[RainKey, []RainDrop]
}

// NewSession creates an empty session whose shared stream starts at seed.
func NewSession(seed uint64) *Session {
	return &Session{
		Rand:   NewRand(seed),
		Clouds: cache.New[CloudKey, []Placement](),
		Wind:   cache.New[WindKey, []Placement](),
		Rain:   cache.New[RainKey, []RainDrop](),
	}
}

// Reset discards every stored placement. The random stream continues.
func (s *Session) Reset() {
	s.Clouds.Reset()
	s.Wind.Reset()
	s.Rain.Reset()
}

// logStats reports cache statistics at debug level.
func (s *Session) logStats() {
	c, w, r := s.Clouds.Stats(), s.Wind.Stats(), s.Rain.Stats()
	Logger().Debug("placement cache",
		"clouds", c.Len, "clouds_hit_rate", c.HitRate,
		"wind", w.Len, "wind_hit_rate", w.HitRate,
		"rain", r.Len, "rain_hit_rate", r.HitRate)
}

// AnimationContext selects the frame being drawn.
type AnimationContext struct {
	Frame    int
	Total    int
	Animated bool
}

// Still is the context of a static render.
var Still = AnimationContext{Frame: 0, Total: 1}

// Phase returns Frame/Total in [0, 1).
func (a AnimationContext) Phase() float64 {
	if a.Total <= 0 {
		return 0
	}
	return float64(a.Frame) / float64(a.Total)
}

// Placement is one glyph positioned by a layout algorithm.
type Placement struct {
	Category Category
	Index    int
	X, Y     int
	Mirror   bool
}

// DrawPlacements draws every placement in order.
func (p *Painter) DrawPlacements(list []Placement) error {
	for _, pl := range list {
		if _, err := p.Draw(pl.Category, pl.Index, pl.X, pl.Y, pl.Mirror); err != nil {
			return err
		}
	}
	return nil
}
