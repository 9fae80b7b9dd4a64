package landscape

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(296, 128)
	if c.Width() != 296 || c.Height() != 128 {
		t.Fatalf("expected 296x128, got %dx%d", c.Width(), c.Height())
	}
	if got := c.RGBAt(10, 10); got != Black {
		t.Errorf("new canvas pixel = %v, want black", got)
	}
	if len(c.Data()) != 296*128*4 {
		t.Errorf("data length = %d, want %d", len(c.Data()), 296*128*4)
	}
}

func TestCanvasSetRGBOutOfBounds(t *testing.T) {
	c := NewCanvas(10, 10)
	original := make([]uint8, len(c.Data()))
	copy(original, c.Data())

	for _, p := range []struct{ x, y int }{{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100}} {
		c.SetRGB(p.x, p.y, White)
	}
	for i, v := range c.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
	if got := c.RGBAt(-1, 0); got != Black {
		t.Errorf("RGBAt out of bounds = %v, want black", got)
	}
}

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Fill(DaySky)
	for _, pt := range [][2]int{{0, 0}, {3, 3}, {1, 2}} {
		if got := c.RGBAt(pt[0], pt[1]); got != DaySky {
			t.Errorf("pixel %v = %v, want sky blue", pt, got)
		}
	}
}

func TestCanvasSetBlendsTranslucent(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Fill(White)
	c.Set(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})
	c.Set(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 128})

	if got := c.RGBAt(0, 0); got != White {
		t.Errorf("transparent Set changed pixel to %v", got)
	}
	got := c.RGBAt(1, 0)
	if got.R < 120 || got.R > 135 {
		t.Errorf("half black over white = %v, want about 127", got)
	}
}

func TestCanvasIsDrawImage(t *testing.T) {
	c := NewCanvas(8, 8)
	var dst draw.Image = c
	draw.Draw(dst, image.Rect(2, 2, 4, 4), image.NewUniform(color.RGBA{255, 0, 0, 255}), image.Point{}, draw.Src)

	red := RGB{255, 0, 0}
	if got := c.RGBAt(3, 3); got != red {
		t.Errorf("pixel after draw.Draw = %v, want red", got)
	}
	if got := c.RGBAt(5, 5); got != Black {
		t.Errorf("pixel outside rect = %v, want black", got)
	}

	img := c.ToImage()
	if got := FromColor(img.At(3, 3)); got != red {
		t.Errorf("ToImage pixel = %v, want red", got)
	}
}
