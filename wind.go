package landscape

import (
	"math"

	"github.com/wxscape/landscape/cache"
)

const (
	windBandDegrees = 11.25
	treeSpacing     = 9
	treeMirrorShift = 16
	treeRootOffset  = 5
)

// windRepeats is how many candidates a direction contributes, by band of
// angular distance from the wind direction.
var windRepeats = [...]int{4, 3, 3, 2, 2, 1, 1}

// windDirections are the vegetation kinds tied to each cardinal direction.
var windDirections = [...]struct {
	deg float64
	cat Category
}{
	{0, CategoryPine},
	{90, CategoryEast},
	{180, CategoryPalm},
	{270, CategoryTree},
}

// windTemplate maps an upper wind speed bound to tree size indices.
type windTemplate struct {
	upTo  float64
	sizes []int
}

var windTemplates = []windTemplate{
	{0.4, nil},
	{0.7, []int{0}},
	{1.7, []int{1, 0, 0}},
	{3.3, []int{1, 1, 0, 0}},
	{5.2, []int{1, 2, 0, 0}},
	{7.4, []int{1, 2, 2, 0}},
	{9.8, []int{1, 2, 3, 0}},
	{12.4, []int{2, 2, 3, 0}},
}

var gale = []int{3, 3, 3, 3}

// AngularDistance returns the smaller arc between two bearings, in [0, 180].
func AngularDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// WindCandidates returns the unshuffled vegetation candidate list for a
// wind direction: directions closer to the wind contribute more copies.
func WindCandidates(direction float64) []Category {
	var out []Category
	for _, d := range windDirections {
		band := int(AngularDistance(direction, d.deg) / windBandDegrees)
		if band >= len(windRepeats) {
			continue
		}
		for range windRepeats[band] {
			out = append(out, d.cat)
		}
	}
	return out
}

// WindTemplate returns a copy of the tree size template for a wind speed.
func WindTemplate(speed float64) []int {
	sizes := gale
	for _, t := range windTemplates {
		if speed <= t.upTo {
			sizes = t.sizes
			break
		}
	}
	return append([]int(nil), sizes...)
}

// windShuffle shuffles the candidate list and the size template with one
// generator seeded from the wind parameters.
func windShuffle(speed, direction float64) ([]Category, []int) {
	r := keyedRand(int64(speed*1000 + direction))
	kinds := WindCandidates(direction)
	r.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })
	sizes := WindTemplate(speed)
	r.Shuffle(len(sizes), func(i, j int) { sizes[i], sizes[j] = sizes[j], sizes[i] })
	return kinds, sizes
}

// treeJitter returns the horizontal jitter and mirror flag of the ordinal-th
// tree at cursor. It depends only on its arguments, so the same tree shows
// up whenever the same speed and position recur.
func treeJitter(cursor, ordinal int, speed float64) (int, bool) {
	r := keyedRand(int64(cursor)*1000 + int64(ordinal) + int64(speed*100))
	return randInclusive(r, -1, 1), r.Float64() < 0.5
}

// LayoutWind places wind-bent vegetation starting at column x on the terrain
// line. Layouts are stored per (speed, direction, x).
func LayoutWind(store *cache.Store[WindKey, []Placement], speed, direction float64, x int, terrain []int) []Placement {
	key := WindKey{Speed: speed, Direction: direction, X: x}
	return store.GetOrCreate(key, func() []Placement {
		kinds, sizes := windShuffle(speed, direction)
		if len(kinds) == 0 {
			return nil
		}
		out := make([]Placement, 0, len(sizes))
		cursor := x
		for j, size := range sizes {
			dx, mirror := treeJitter(cursor, j, speed)
			xx := cursor + dx
			root := xx + treeRootOffset
			if root < 0 || root >= len(terrain) {
				break
			}
			if mirror {
				xx -= treeMirrorShift
			}
			out = append(out, Placement{
				Category: kinds[j%len(kinds)],
				Index:    size,
				X:        xx,
				Y:        terrain[root] + 1,
				Mirror:   mirror,
			})
			cursor += treeSpacing
		}
		return out
	})
}

// DrawWind lays out and draws wind vegetation.
func (p *Painter) DrawWind(s *Session, speed, direction float64, x int, terrain []int) error {
	return p.DrawPlacements(LayoutWind(s.Wind, speed, direction, x, terrain))
}
