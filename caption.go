package landscape

import (
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CaptionSize is the caption font size in pixels.
const CaptionSize = 8

var captionFont = sync.OnceValues(func() (*opentype.Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("landscape: parse caption font: %w", err)
	}
	return f, nil
})

// MoonCaption formats the moon illumination and distance for tag,
// e.g. "73% 384,400 km".
func MoonCaption(tag language.Tag, m MoonPhase) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%d%% %d km", int(math.Round(m.IlluminationPercent)), int(math.Round(m.DistanceKm)))
}

// DrawCaption draws text with its baseline at y, right-aligned to right,
// in the palette's primary ink. It returns the text width in pixels.
func (p *Painter) DrawCaption(text string, right, y int) (int, error) {
	f, err := captionFont()
	if err != nil {
		return 0, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    CaptionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return 0, fmt.Errorf("landscape: caption face: %w", err)
	}
	defer func() { _ = face.Close() }()

	d := &font.Drawer{
		Dst:  p.canvas,
		Src:  image.NewUniform(p.palette.Color(Primary)),
		Face: face,
	}
	w := d.MeasureString(text).Ceil()
	d.Dot = fixed.P(right-w, y)
	d.DrawString(text)
	return w, nil
}
