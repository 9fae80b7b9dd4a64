// Package spritegen draws the placeholder glyph set used by the renderer's
// tests and by cmd/spritegen. Every glyph is a 4-entry paletted image:
// index 0 primary ink, 1 secondary ink, 2 accent ink, 3 transparent.
package spritegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sort"
)

// Palette indices.
const (
	Primary     = 0
	Secondary   = 1
	Accent      = 2
	Transparent = 3
)

// Palette is the glyph encoding palette.
var Palette = color.Palette{
	color.RGBA{0, 0, 0, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0, 0, 0xff},
	color.RGBA{0, 0, 0, 0},
}

// CloudSizes lists the cloud glyph indices the cloud layout refers to.
var CloudSizes = []int{2, 3, 5, 10, 30, 50}

// digitRows holds the digit font; '#' is primary ink. Index 10 is plus,
// 11 minus, 12 colon. The "1" glyph is one pixel narrower than the rest.
var digitRows = [13][]string{
	{"####", "#..#", "#..#", "#..#", "#..#", "####"},
	{".##", "###", ".##", ".##", ".##", ".##"},
	{"####", "...#", "####", "#...", "#...", "####"},
	{"####", "...#", ".###", "...#", "...#", "####"},
	{"#..#", "#..#", "####", "...#", "...#", "...#"},
	{"####", "#...", "####", "...#", "...#", "####"},
	{"####", "#...", "####", "#..#", "#..#", "####"},
	{"####", "...#", "..#.", ".#..", ".#..", ".#.."},
	{"####", "#..#", "####", "#..#", "#..#", "####"},
	{"####", "#..#", "####", "...#", "...#", "####"},
	{"....", ".#..", "###.", ".#..", "....", "...."},
	{"....", "....", "###.", "....", "....", "...."},
	{".", "#", ".", ".", "#", "."},
}

// Glyphs returns every placeholder glyph keyed by file name
// ("<category>_<NN>.png").
func Glyphs() map[string]*image.Paletted {
	out := make(map[string]*image.Paletted)
	add := func(cat string, index int, img *image.Paletted) {
		out[fmt.Sprintf("%s_%02d.png", cat, index)] = img
	}

	for i, rows := range digitRows {
		add("digit", i, fromRows(rows))
	}
	add("sun", 0, sun(7))
	add("moon", 0, crescent(6))
	for _, n := range CloudSizes {
		add("cloud", n, cloud(n))
	}
	add("house", 0, house())
	for size := 0; size < 4; size++ {
		add("tree", size, tree(size, false))
		add("east", size, tree(size, true))
		add("pine", size, pine(size))
		add("palm", size, palm(size))
	}
	add("flower", 0, flower())
	add("flower", 1, flower())
	add("temp", 0, fromRows([]string{".#.", "#r#", "#r#", "#r#", "rrr"}))
	return out
}

// Files encodes Glyphs as PNG bytes keyed by file name.
func Files() (map[string][]byte, error) {
	files := make(map[string][]byte)
	for name, img := range Glyphs() {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("spritegen: encode %s: %w", name, err)
		}
		files[name] = buf.Bytes()
	}
	return files, nil
}

// WriteDir writes every glyph into dir, creating it if needed, and returns
// the written file names in sorted order.
func WriteDir(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("spritegen: %w", err)
	}
	files, err := Files()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return nil, fmt.Errorf("spritegen: %w", err)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Moon draws a full-moon disc of the given diameter with a few darker
// maria, as an RGBA image with an opaque disc and transparent corners.
func Moon(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy > r*r {
				continue
			}
			c := color.NRGBA{0xe8, 0xe8, 0xd8, 0xff}
			if math.Hypot(dx+r/3, dy-r/4) < r/4 || math.Hypot(dx-r/4, dy+r/3) < r/5 {
				c = color.NRGBA{0xb0, 0xb0, 0xa0, 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func newGlyph(w, h int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), Palette)
	for i := range img.Pix {
		img.Pix[i] = Transparent
	}
	return img
}

// fromRows converts an ASCII picture: '#' primary, 'o' secondary,
// 'r' accent, anything else transparent.
func fromRows(rows []string) *image.Paletted {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	img := newGlyph(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			switch r[x] {
			case '#':
				img.SetColorIndex(x, y, Primary)
			case 'o':
				img.SetColorIndex(x, y, Secondary)
			case 'r':
				img.SetColorIndex(x, y, Accent)
			}
		}
	}
	return img
}

func sun(r int) *image.Paletted {
	size := 2*r + 5
	img := newGlyph(size, size)
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			if d <= float64(r)-1 {
				img.SetColorIndex(x, y, Primary)
			}
		}
	}
	for a := 0; a < 8; a++ {
		ang := float64(a) * math.Pi / 4
		for d := float64(r) + 0.5; d < c; d++ {
			img.SetColorIndex(int(c+math.Cos(ang)*d), int(c+math.Sin(ang)*d), Primary)
		}
	}
	return img
}

func crescent(r int) *image.Paletted {
	size := 2 * r
	img := newGlyph(size, size)
	c := float64(r)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if math.Hypot(px-c, py-c) <= c && math.Hypot(px-c-c/2, py-c) > c*0.8 {
				img.SetColorIndex(x, y, Primary)
			}
		}
	}
	return img
}

// cloud draws an outlined, white-filled blob whose width grows with n.
func cloud(n int) *image.Paletted {
	w := 6 + int(math.Sqrt(float64(n))*4)
	h := 3 + w/4
	img := newGlyph(w, h)
	cx, cy := float64(w)/2, float64(h)
	rx, ry := float64(w)/2, float64(h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			d := dx*dx + dy*dy
			switch {
			case d > 1:
			case d > 0.6 || y == h-1:
				img.SetColorIndex(x, y, Primary)
			default:
				img.SetColorIndex(x, y, Secondary)
			}
		}
	}
	return img
}

func house() *image.Paletted {
	return fromRows([]string{
		"........##..",
		"......##o#..",
		"....##oooo#.",
		"..##oooooo#.",
		".#oooooooo#.",
		"############",
		".#oooooooo#.",
		".#o##ooo#o#.",
		".#o##ooorr#.",
		".#ooooooor#.",
		".##########.",
	})
}

// tree draws a round-crowned tree of the given size class; bent crowns
// lean right.
func tree(size int, bent bool) *image.Paletted {
	h := 8 + 3*size
	w := 7 + 2*size
	img := newGlyph(w+4, h)
	crown := float64(w) / 2
	lean := 0.0
	if bent {
		lean = float64(size+1) * 0.8
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w+4; x++ {
			dx := float64(x) + 0.5 - (crown + lean)
			dy := float64(y) + 0.5 - crown
			if dx*dx+dy*dy <= crown*crown {
				img.SetColorIndex(x, y, Primary)
			}
		}
	}
	trunk := int(crown)
	for y := int(crown); y < h; y++ {
		img.SetColorIndex(trunk, y, Primary)
	}
	return img
}

func pine(size int) *image.Paletted {
	h := 9 + 3*size
	w := 5 + 2*size
	img := newGlyph(w, h)
	mid := w / 2
	for y := 0; y < h-2; y++ {
		half := (y * (w / 2)) / max(h-3, 1)
		for x := mid - half; x <= mid+half; x++ {
			img.SetColorIndex(x, y, Primary)
		}
	}
	img.SetColorIndex(mid, h-2, Primary)
	img.SetColorIndex(mid, h-1, Primary)
	return img
}

func palm(size int) *image.Paletted {
	h := 9 + 3*size
	w := 7 + 2*size
	img := newGlyph(w, h)
	mid := w / 2
	for y := 2; y < h; y++ {
		img.SetColorIndex(mid+(h-y)/(6+size), y, Primary)
	}
	top := mid + h/(6+size)
	for x := 0; x < w; x++ {
		dy := int(math.Abs(float64(x-top))) / 2
		img.SetColorIndex(x, 1+dy, Primary)
	}
	return img
}

func flower() *image.Paletted {
	return fromRows([]string{".#.", "#o#", ".#.", ".#.", ".#."})
}
