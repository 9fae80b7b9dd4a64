package landscape

// Painter draws glyphs and dots onto one canvas with one palette.
// It is created per frame and owned by a single render pass.
type Painter struct {
	canvas  *Canvas
	palette *Palette
	atlas   *Atlas
}

// NewPainter binds an atlas and a palette to a canvas.
func NewPainter(canvas *Canvas, palette *Palette, atlas *Atlas) *Painter {
	return &Painter{canvas: canvas, palette: palette, atlas: atlas}
}

// Canvas returns the target canvas.
func (p *Painter) Canvas() *Canvas { return p.canvas }

// Palette returns the active palette.
func (p *Painter) Palette() *Palette { return p.palette }

// Dot paints a single palette color pixel, clipped to the canvas.
func (p *Painter) Dot(x, y int, id ColorID) {
	p.canvas.SetRGB(x, y, p.palette.Color(id))
}

// Draw blits glyph (cat, index) with its baseline at y and returns the
// glyph's unmirrored width for layout chaining.
//
// Negative x or y disables the call: nothing is drawn and 0 is returned.
// Pixels falling outside the canvas are dropped.
func (p *Painter) Draw(cat Category, index, x, y int, mirror bool) (int, error) {
	if x < 0 || y < 0 {
		return 0, nil
	}
	g, err := p.atlas.Glyph(cat, index)
	if err != nil {
		return 0, err
	}

	inks := [...]RGB{
		InkPrimary:   p.palette.Color(cat.ColorFor(index)),
		InkSecondary: p.palette.Color(Secondary),
		InkAccent:    p.palette.Color(Accent),
	}

	top := y - g.height
	for gy := 0; gy < g.height; gy++ {
		for gx := 0; gx < g.width; gx++ {
			sx := gx
			if mirror {
				sx = g.width - 1 - gx
			}
			ink := g.InkAt(sx, gy)
			if ink == InkNone {
				continue
			}
			p.canvas.SetRGB(x+gx, top+gy, inks[ink])
		}
	}
	return g.width, nil
}
