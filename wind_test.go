package landscape

import (
	"slices"
	"testing"

	"github.com/wxscape/landscape/cache"
)

func TestAngularDistance(t *testing.T) {
	tests := []struct{ a, b, want float64 }{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 270, 180},
		{45, 0, 45},
		{720, 90, 90},
	}
	for _, tt := range tests {
		if got := AngularDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("AngularDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestWindCandidates(t *testing.T) {
	count := func(list []Category, c Category) int {
		n := 0
		for _, x := range list {
			if x == c {
				n++
			}
		}
		return n
	}

	north := WindCandidates(0)
	if got := count(north, CategoryPine); got != 4 {
		t.Errorf("pine copies at 0 deg = %d, want 4", got)
	}
	if got := count(north, CategoryPalm); got != 0 {
		t.Errorf("palm copies at 0 deg = %d, want 0", got)
	}

	ne := WindCandidates(45)
	if count(ne, CategoryPine) != 2 || count(ne, CategoryEast) != 2 {
		t.Errorf("45 deg candidates = %v", ne)
	}
	for dir := 0.0; dir < 360; dir += 7.5 {
		if len(WindCandidates(dir)) < 4 {
			t.Errorf("WindCandidates(%v) has fewer than 4 entries", dir)
		}
	}
}

func TestWindTemplate(t *testing.T) {
	tests := []struct {
		speed float64
		want  []int
	}{
		{0, nil},
		{0.5, []int{0}},
		{6, []int{1, 2, 2, 0}},
		{30, []int{3, 3, 3, 3}},
	}
	for _, tt := range tests {
		if got := WindTemplate(tt.speed); !slices.Equal(got, tt.want) {
			t.Errorf("WindTemplate(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}

	got := WindTemplate(30)
	got[0] = 0
	if gale[0] != 3 {
		t.Error("WindTemplate must return a copy")
	}
}

func flatTerrain(width, y int) []int {
	line := make([]int, width)
	for i := range line {
		line[i] = y
	}
	return line
}

func TestLayoutWindDeterministic(t *testing.T) {
	terrain := flatTerrain(296, 70)
	a := LayoutWind(cache.New[WindKey, []Placement](), 6, 45, 76, terrain)
	b := LayoutWind(cache.New[WindKey, []Placement](), 6, 45, 76, terrain)
	if len(a) != 4 {
		t.Fatalf("len = %d, want 4", len(a))
	}
	if !slices.Equal(a, b) {
		t.Error("layout should depend only on its parameters")
	}

	sizes := make([]int, 0, len(a))
	for _, pl := range a {
		sizes = append(sizes, pl.Index)
		if pl.Y != 71 {
			t.Errorf("baseline = %d, want 71", pl.Y)
		}
		if pl.Category != CategoryPine && pl.Category != CategoryEast &&
			pl.Category != CategoryTree && pl.Category != CategoryPalm {
			t.Errorf("unexpected category %v", pl.Category)
		}
	}
	slices.Sort(sizes)
	if !slices.Equal(sizes, []int{0, 1, 2, 2}) {
		t.Errorf("sizes = %v, want a permutation of [1 2 2 0]", sizes)
	}
}

func TestLayoutWindStopsAtEdge(t *testing.T) {
	terrain := flatTerrain(20, 10)
	got := LayoutWind(cache.New[WindKey, []Placement](), 30, 0, 8, terrain)
	if len(got) >= 4 {
		t.Errorf("expected the layout to stop at the canvas edge, got %d trees", len(got))
	}
	for _, pl := range got {
		root := pl.X + treeRootOffset
		if pl.Mirror {
			root += treeMirrorShift
		}
		if root < 0 || root >= len(terrain) {
			t.Errorf("tree root %d outside terrain", root)
		}
	}
}

func TestLayoutWindCalm(t *testing.T) {
	if got := LayoutWind(cache.New[WindKey, []Placement](), 0, 0, 0, flatTerrain(50, 10)); len(got) != 0 {
		t.Errorf("calm wind placed %d trees", len(got))
	}
}

func TestDrawWind(t *testing.T) {
	c := NewCanvas(296, 128)
	p := NewPainter(c, &LightPalette, testAtlas(t))
	s := NewSession(1)
	if err := p.DrawWind(s, 6, 45, 76, flatTerrain(296, 70)); err != nil {
		t.Fatalf("DrawWind: %v", err)
	}
	if s.Wind.Len() != 1 {
		t.Errorf("wind store len = %d, want 1", s.Wind.Len())
	}
}
