package landscape

import (
	"math/rand/v2"

	"github.com/wxscape/landscape/cache"
)

// cloudBucket maps an upper cloud-cover bound to the glyph indices drawn.
type cloudBucket struct {
	below float64
	set   []int
}

var cloudBuckets = []cloudBucket{
	{2, nil},
	{5, []int{2}},
	{10, []int{3, 2}},
	{20, []int{5, 3, 2}},
	{30, []int{10, 5}},
	{40, []int{10, 10}},
	{50, []int{10, 10, 5}},
	{60, []int{30, 5}},
	{70, []int{30, 10}},
	{80, []int{30, 10, 5, 5}},
	{90, []int{30, 10, 10}},
}

var overcast = []int{50, 30, 10, 10, 5}

// CloudSet returns the cloud glyph indices for a cloud cover percentage.
func CloudSet(percent float64) []int {
	for _, b := range cloudBuckets {
		if percent < b.below {
			return b.set
		}
	}
	return overcast
}

// LayoutClouds places the clouds for percent cover in the span
// [x, x+width) with baselines at y. The first call for a key draws one
// x offset per cloud from r; later calls replay the stored layout.
func LayoutClouds(store *cache.Store[CloudKey, []Placement], r *rand.Rand, percent float64, x, y, width int) []Placement {
	key := CloudKey{X: x, Y: y, Width: width, Percent: percent}
	return store.GetOrCreate(key, func() []Placement {
		set := CloudSet(percent)
		out := make([]Placement, 0, len(set))
		for _, idx := range set {
			out = append(out, Placement{
				Category: CategoryCloud,
				Index:    idx,
				X:        randRange(r, x, width),
				Y:        y,
			})
		}
		return out
	})
}

// DrawClouds lays out and draws a cloud cluster.
func (p *Painter) DrawClouds(s *Session, percent float64, x, y, width int) error {
	return p.DrawPlacements(LayoutClouds(s.Clouds, s.Rand, percent, x, y, width))
}
