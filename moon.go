package landscape

import (
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"math"
	"time"

	xdraw "golang.org/x/image/draw"
)

// MaskMoonPhase clears (alpha 0) the unlit part of a full-moon disc in place.
//
// illum is the lit fraction in [0, 1]; a positive elongation means the moon
// is waxing. The disc radius is half the image height and the disc is
// centred in the image. Every row is measured at its pixel centre: the chord
// of the disc at that height spans the limbs, and the pixels whose centres
// lie within chord*|phase| of the terminator-side limb are cleared, phase
// being 1-illum (negated when waxing). Waxing clears from the left limb,
// waning from the right, so illum 0 clears the whole disc.
//
// phase == 0 is a full moon and leaves img untouched.
func MaskMoonPhase(img *image.NRGBA, illum, elongation float64) {
	illum = math.Max(0, math.Min(1, illum))
	phase := 1 - illum
	if elongation > 0 {
		phase = -phase
	}
	if phase == 0 {
		return
	}

	b := img.Bounds()
	radius := float64(b.Dy()) / 2
	mid := float64(b.Dx()) / 2
	for row := range b.Dy() {
		dy := float64(row) + 0.5 - radius
		h2 := radius*radius - dy*dy
		if h2 < 0 {
			continue
		}
		half := math.Sqrt(h2)
		run := 2 * half * math.Abs(phase)
		for x := range b.Dx() {
			cx := float64(x) + 0.5
			var unlit bool
			if phase < 0 {
				unlit = cx <= mid-half+run
			} else {
				unlit = cx >= mid+half-run
			}
			if unlit {
				img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+row)+3] = 0
			}
		}
	}
}

// PrepareMoon copies src, masks it for phase and scales it to size pixels
// wide, keeping the aspect ratio.
func PrepareMoon(src image.Image, phase MoonPhase, size int) *image.NRGBA {
	b := src.Bounds()
	full := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(full, full.Bounds(), src, b.Min, draw.Src)
	MaskMoonPhase(full, phase.Illumination(), phase.Elongation)

	if size <= 0 || size == b.Dx() || b.Dx() == 0 {
		return full
	}
	h := max(1, int(float64(size)*float64(b.Dy())/float64(b.Dx())))
	out := image.NewNRGBA(image.Rect(0, 0, size, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), full, full.Bounds(), xdraw.Src, nil)
	return out
}

// LoadMoon decodes the full-moon bitmap name from fsys.
func LoadMoon(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("landscape: open moon %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("landscape: decode moon %s: %w", name, err)
	}
	return img, nil
}

// DrawMoonOverlay composites the prepared moon centred on column x with its
// top at y.
func DrawMoonOverlay(dst *Canvas, moon image.Image, x, y int) {
	w := moon.Bounds().Dx()
	at := image.Pt(x-w/2, y)
	draw.Draw(dst, moon.Bounds().Sub(moon.Bounds().Min).Add(at), moon, moon.Bounds().Min, draw.Over)
}

// MoonX returns the canvas column of the next sunset on the timeline,
// clamped to [tl.XStart, width-1].
func MoonX(now, sunset time.Time, tl Timeline, width int) int {
	if sunset.Before(now) {
		sunset = sunset.Add(24 * time.Hour)
	}
	x := tl.X(now, sunset)
	return max(tl.XStart, min(x, width-1))
}
