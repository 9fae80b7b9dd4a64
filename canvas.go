package landscape

import (
	"image"
	"image/color"
)

// Canvas is a fixed-size opaque RGB pixel buffer. Every drawing operation
// mutates it in place and silently drops pixels outside its bounds.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, alpha always 0xff
}

// NewCanvas creates a black canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	c.Fill(Black)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// In reports whether (x, y) lies inside the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// SetRGB sets the color of a single pixel.
func (c *Canvas) SetRGB(x, y int, col RGB) {
	if !c.In(x, y) {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
	c.data[i+3] = 0xff
}

// RGBAt returns the color of a single pixel, or black outside the canvas.
func (c *Canvas) RGBAt(x, y int) RGB {
	if !c.In(x, y) {
		return Black
	}
	i := (y*c.width + x) * 4
	return RGB{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2]}
}

// Fill paints the entire canvas with a color.
func (c *Canvas) Fill(col RGB) {
	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = col.R
		c.data[i+1] = col.G
		c.data[i+2] = col.B
		c.data[i+3] = 0xff
	}
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.RGBAt(x, y).Color()
}

// Set implements draw.Image. Translucent colors are composited over the
// existing pixel so scalers and font drawers can target the canvas.
func (c *Canvas) Set(x, y int, col color.Color) {
	if !c.In(x, y) {
		return
	}
	r, g, b, a := col.RGBA()
	if a == 0xffff {
		c.SetRGB(x, y, FromColor(col))
		return
	}
	if a == 0 {
		return
	}
	// col is premultiplied: out = src + dst*(1-a)
	dst := c.RGBAt(x, y)
	inv := 0xffff - a
	c.SetRGB(x, y, RGB{
		R: uint8((r + uint32(dst.R)*0x101*inv/0xffff) >> 8),
		G: uint8((g + uint32(dst.G)*0x101*inv/0xffff) >> 8),
		B: uint8((b + uint32(dst.B)*0x101*inv/0xffff) >> 8),
	})
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
