// Package encode writes rendered scenes as PNG, JPEG, BMP or animated GIF.
package encode

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// Encoding errors.
var (
	// ErrNoFrames is returned when there is nothing to encode.
	ErrNoFrames = errors.New("encode: no frames")

	// ErrUnknownFormat is returned for an unrecognised output extension.
	ErrUnknownFormat = errors.New("encode: unknown format")
)

// Format is an output file format.
type Format uint8

// Supported formats.
const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
	FormatGIF
)

// String returns the conventional extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatGIF:
		return "gif"
	default:
		return "unknown"
	}
}

// Animated reports whether the format keeps every frame.
func (f Format) Animated() bool {
	return f == FormatGIF
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".gif":
		return FormatGIF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Options controls animated output.
type Options struct {
	// Delay is shown per frame, rounded to 10ms.
	Delay time.Duration
	// LoopCount is the number of repeats; 0 loops forever.
	LoopCount int
	// JPEGQuality is 1-100; 0 means jpeg.DefaultQuality.
	JPEGQuality int
}

// PNG writes img as PNG.
func PNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode: png: %w", err)
	}
	return nil
}

// JPEG writes img as JPEG at quality (0 for the default).
func JPEG(w io.Writer, img image.Image, quality int) error {
	if quality <= 0 {
		quality = jpeg.DefaultQuality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: min(quality, 100)}); err != nil {
		return fmt.Errorf("encode: jpeg: %w", err)
	}
	return nil
}

// BMP writes img as an uncompressed BMP.
func BMP(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("encode: bmp: %w", err)
	}
	return nil
}

// GIF writes frames as an animated GIF. Each frame gets an exact palette
// when it has at most 256 colours, otherwise it is dithered onto Plan 9.
func GIF(w io.Writer, frames []image.Image, opts Options) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	delay := max(int(opts.Delay/(10*time.Millisecond)), 1)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		Disposal:  make([]byte, 0, len(frames)),
		LoopCount: opts.LoopCount,
	}
	for _, f := range frames {
		anim.Image = append(anim.Image, Paletted(f))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode: gif: %w", err)
	}
	return nil
}

// Paletted converts img to a paletted image, exactly when it has at most
// 256 distinct colours.
func Paletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	if pal, ok := exactPalette(img); ok {
		out := image.NewPaletted(b, pal)
		draw.Draw(out, b, img, b.Min, draw.Src)
		return out
	}
	out := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(out, b, img, b.Min)
	return out
}

// exactPalette collects the distinct opaque colours of img, giving up past 256.
func exactPalette(img image.Image) (color.Palette, bool) {
	b := img.Bounds()
	seen := make(map[color.RGBA]struct{}, 256)
	pal := make(color.Palette, 0, 256)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(pal) == 256 {
				return nil, false
			}
			seen[c] = struct{}{}
			pal = append(pal, c)
		}
	}
	return pal, true
}

// Write encodes frames in format. Still formats keep only the first frame.
func Write(w io.Writer, format Format, frames []image.Image, opts Options) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	switch format {
	case FormatPNG:
		return PNG(w, frames[0])
	case FormatJPEG:
		return JPEG(w, frames[0], opts.JPEGQuality)
	case FormatBMP:
		return BMP(w, frames[0])
	case FormatGIF:
		return GIF(w, frames, opts)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// Save writes frames to path in the format named by its extension.
func Save(path string, frames []image.Image, opts Options) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return ErrNoFrames
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("encode: create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("encode: close file: %w", cerr)
		}
	}()
	return Write(f, format, frames, opts)
}
