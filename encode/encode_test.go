package encode

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), uint8(x ^ y), 0xff})
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", FormatPNG},
		{"OUT.GIF", FormatGIF},
		{"a/b/scene.bmp", FormatBMP},
		{"x.jpeg", FormatJPEG},
		{"x.jpg", FormatJPEG},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatFromPath("scene.tiff"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
	if !FormatGIF.Animated() || FormatPNG.Animated() {
		t.Error("only GIF is animated")
	}
}

func TestPalettedExact(t *testing.T) {
	img := solid(8, 8, color.RGBA{10, 20, 30, 0xff})
	img.SetRGBA(3, 3, color.RGBA{200, 0, 0, 0xff})
	p := Paletted(img)
	if len(p.Palette) != 2 {
		t.Fatalf("palette size = %d, want 2", len(p.Palette))
	}
	if got := color.RGBAModel.Convert(p.At(3, 3)).(color.RGBA); got != (color.RGBA{200, 0, 0, 0xff}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestPalettedDithered(t *testing.T) {
	p := Paletted(gradient(64, 64))
	if len(p.Palette) != 256 {
		t.Errorf("palette size = %d, want Plan9", len(p.Palette))
	}
}

func TestGIF(t *testing.T) {
	frames := []image.Image{
		solid(10, 6, color.RGBA{0, 0, 0, 0xff}),
		solid(10, 6, color.RGBA{0xff, 0xff, 0xff, 0xff}),
		solid(10, 6, color.RGBA{0xff, 0, 0, 0xff}),
	}
	var buf bytes.Buffer
	if err := GIF(&buf, frames, Options{Delay: 120 * time.Millisecond, LoopCount: 2}); err != nil {
		t.Fatalf("GIF: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(g.Image) != 3 {
		t.Errorf("frames = %d, want 3", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 12 {
			t.Errorf("delay[%d] = %d, want 12", i, d)
		}
	}
	if g.LoopCount != 2 {
		t.Errorf("loop = %d, want 2", g.LoopCount)
	}
	if g.Disposal[0] != gif.DisposalBackground {
		t.Errorf("disposal = %d", g.Disposal[0])
	}
}

func TestGIFNoFrames(t *testing.T) {
	if err := GIF(&bytes.Buffer{}, nil, Options{}); !errors.Is(err, ErrNoFrames) {
		t.Errorf("err = %v, want ErrNoFrames", err)
	}
}

func TestWriteStillUsesFirstFrame(t *testing.T) {
	first := solid(4, 4, color.RGBA{1, 2, 3, 0xff})
	second := solid(4, 4, color.RGBA{9, 9, 9, 0xff})
	var buf bytes.Buffer
	if err := Write(&buf, FormatBMP, []image.Image{first, second}, Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 1 || g>>8 != 2 || b>>8 != 3 {
		t.Errorf("pixel = %d,%d,%d; want first frame", r>>8, g>>8, b>>8)
	}
}

func TestWriteJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJPEG, []image.Image{gradient(16, 16)}, Options{JPEGQuality: 150}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0xff, 0xd8}) {
		t.Error("missing JPEG SOI marker")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	frames := []image.Image{solid(3, 3, color.RGBA{0, 0, 0xff, 0xff})}
	for _, name := range []string{"a.png", "a.gif", "a.bmp"} {
		path := filepath.Join(dir, name)
		if err := Save(path, frames, Options{Delay: time.Second}); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		if st, err := os.Stat(path); err != nil || st.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if err := Save(filepath.Join(dir, "a.webp"), frames, Options{}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
	if err := Save(filepath.Join(dir, "b.png"), nil, Options{}); !errors.Is(err, ErrNoFrames) {
		t.Errorf("err = %v, want ErrNoFrames", err)
	}
}
