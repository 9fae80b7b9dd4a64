package landscape

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG decoder for glyph files
	"io/fs"
	"path"

	_ "golang.org/x/image/bmp" // register BMP decoder for glyph files
)

// Category identifies a family of glyphs sharing a file prefix and a color rule.
type Category uint8

// Glyph categories.
const (
	CategorySun Category = iota
	CategoryMoon
	CategoryCloud
	CategoryFlower
	CategoryHouse
	CategoryTree
	CategoryPine
	CategoryPalm
	CategoryEast
	CategoryTemp
	CategoryDigit

	categoryCount
)

// categoryRule is the color a category's primary ink resolves to.
// When alt differs from base, odd glyph indices use alt.
type categoryRule struct {
	name string
	base ColorID
	alt  ColorID
}

var categoryRules = [categoryCount]categoryRule{
	CategorySun:    {"sun", Yellow, Yellow},
	CategoryMoon:   {"moon", Cyan, Cyan},
	CategoryCloud:  {"cloud", LightGray, LightGray},
	CategoryFlower: {"flower", Pink, Purple},
	CategoryHouse:  {"house", Brown, Brown},
	CategoryTree:   {"tree", Green, Green},
	CategoryPine:   {"pine", Green, Green},
	CategoryPalm:   {"palm", Green, Green},
	CategoryEast:   {"east", Green, Green},
	CategoryTemp:   {"temp", Accent, Accent},
	CategoryDigit:  {"digit", Primary, Primary},
}

// String returns the file prefix of the category.
func (c Category) String() string {
	if c >= categoryCount {
		return "unknown"
	}
	return categoryRules[c].name
}

// ColorFor resolves the primary-ink color of glyph index in this category.
// Unknown categories fall back to Primary.
func (c Category) ColorFor(index int) ColorID {
	if c >= categoryCount {
		return Primary
	}
	r := categoryRules[c]
	if index%2 != 0 {
		return r.alt
	}
	return r.base
}

// Ink is the encoded value of a single glyph pixel.
type Ink uint8

// Glyph inks. InkNone pixels are never copied.
const (
	InkNone Ink = iota
	InkPrimary
	InkSecondary
	InkAccent
)

// Glyph is a decoded 3-color sprite bitmap. It is read-only once loaded.
type Glyph struct {
	width  int
	height int
	ink    []Ink
}

// Width returns the glyph width in pixels.
func (g *Glyph) Width() int { return g.width }

// Height returns the glyph height in pixels.
func (g *Glyph) Height() int { return g.height }

// InkAt returns the ink at (x, y), or InkNone outside the glyph.
func (g *Glyph) InkAt(x, y int) Ink {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return InkNone
	}
	return g.ink[y*g.width+x]
}

// glyphFromImage classifies every pixel of img into an ink. Paletted images
// are read by palette index (0 primary, 1 secondary, 2 accent); other images
// by color (black, white, red).
func glyphFromImage(img image.Image) *Glyph {
	b := img.Bounds()
	g := &Glyph{width: b.Dx(), height: b.Dy(), ink: make([]Ink, b.Dx()*b.Dy())}
	pal, paletted := img.(*image.Paletted)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			var ink Ink
			if paletted {
				ink = inkFromIndex(pal.ColorIndexAt(b.Min.X+x, b.Min.Y+y))
			} else {
				ink = inkFromColor(img.At(b.Min.X+x, b.Min.Y+y))
			}
			g.ink[y*g.width+x] = ink
		}
	}
	return g
}

func inkFromIndex(i uint8) Ink {
	switch i {
	case 0:
		return InkPrimary
	case 1:
		return InkSecondary
	case 2:
		return InkAccent
	default:
		return InkNone
	}
}

func inkFromColor(c color.Color) Ink {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < 0x80 {
		return InkNone
	}
	switch {
	case n.R == 0 && n.G == 0 && n.B == 0:
		return InkPrimary
	case n.R == 0xff && n.G == 0xff && n.B == 0xff:
		return InkSecondary
	case n.R == 0xff && n.G == 0 && n.B == 0:
		return InkAccent
	default:
		return InkNone
	}
}

// glyphKey identifies a glyph inside an atlas.
type glyphKey struct {
	cat   Category
	index int
}

// AtlasOption configures an Atlas.
type AtlasOption func(*Atlas)

// WithExtension sets the glyph file extension, ".png" by default.
func WithExtension(ext string) AtlasOption {
	return func(a *Atlas) {
		a.ext = ext
	}
}

// Atlas loads glyphs named "<category>_<NN><ext>" from a file system and
// keeps them decoded for the lifetime of the atlas.
type Atlas struct {
	fsys   fs.FS
	ext    string
	glyphs map[glyphKey]*Glyph
}

// NewAtlas creates an atlas reading glyph files from the root of fsys.
func NewAtlas(fsys fs.FS, opts ...AtlasOption) *Atlas {
	a := &Atlas{
		fsys:   fsys,
		ext:    ".png",
		glyphs: make(map[glyphKey]*Glyph),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GlyphName returns the file name holding glyph (cat, index).
func (a *Atlas) GlyphName(cat Category, index int) string {
	return fmt.Sprintf("%s_%02d%s", cat, index, a.ext)
}

// Glyph returns the decoded glyph (cat, index), loading it on first use.
// A missing file yields an error wrapping ErrSpriteNotFound.
func (a *Atlas) Glyph(cat Category, index int) (*Glyph, error) {
	key := glyphKey{cat: cat, index: index}
	if g, ok := a.glyphs[key]; ok {
		return g, nil
	}

	name := path.Clean(a.GlyphName(cat, index))
	f, err := a.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("landscape: glyph %s: %w", name, ErrSpriteNotFound)
		}
		return nil, fmt.Errorf("landscape: open glyph %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("landscape: decode glyph %s: %w: %w", name, ErrBadSprite, err)
	}

	g := glyphFromImage(img)
	a.glyphs[key] = g
	Logger().Debug("glyph loaded", "name", name, "width", g.width, "height", g.height)
	return g, nil
}

// Len returns the number of glyphs decoded so far.
func (a *Atlas) Len() int {
	return len(a.glyphs)
}
