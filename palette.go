package landscape

// ColorID names a semantic palette entry.
type ColorID uint8

// Palette entries. Primary, Secondary and Accent are the three inks a glyph
// bitmap is encoded with; the rest are category and effect colours.
const (
	Primary ColorID = iota
	Secondary
	Accent
	Blue
	Green
	Yellow
	Orange
	Purple
	Cyan
	Brown
	Pink
	Gray
	LightGray
	BrightBlue
	BrightGreen

	colorCount
)

var colorNames = [colorCount]string{
	"primary", "secondary", "accent", "blue", "green", "yellow", "orange",
	"purple", "cyan", "brown", "pink", "gray", "light-gray", "bright-blue",
	"bright-green",
}

// String returns the palette name of the id.
func (id ColorID) String() string {
	if id >= colorCount {
		return "unknown"
	}
	return colorNames[id]
}

// Palette maps every ColorID to a concrete color.
type Palette [colorCount]RGB

// Color resolves id. Unknown ids resolve to Primary.
func (p *Palette) Color(id ColorID) RGB {
	if id >= colorCount {
		id = Primary
	}
	return p[id]
}

// LightPalette is used on bright skies.
var LightPalette = Palette{
	Primary:     {0, 0, 0},
	Secondary:   {255, 255, 255},
	Accent:      {255, 0, 0},
	Blue:        {0, 0, 255},
	Green:       {0, 175, 0},
	Yellow:      {255, 255, 0},
	Orange:      {255, 165, 0},
	Purple:      {128, 0, 128},
	Cyan:        {0, 255, 255},
	Brown:       {139, 69, 19},
	Pink:        {255, 192, 203},
	Gray:        {128, 128, 128},
	LightGray:   {211, 211, 211},
	BrightBlue:  {30, 144, 255},
	BrightGreen: {50, 205, 50},
}

// DarkPalette is used on dark skies: ink and paper are swapped and the
// saturated colours lifted so they stay visible against night blue.
var DarkPalette = Palette{
	Primary:     {255, 255, 255},
	Secondary:   {0, 0, 0},
	Accent:      {255, 80, 80},
	Blue:        {100, 149, 237},
	Green:       {50, 205, 50},
	Yellow:      {255, 255, 102},
	Orange:      {255, 180, 60},
	Purple:      {186, 85, 211},
	Cyan:        {0, 255, 255},
	Brown:       {205, 133, 63},
	Pink:        {255, 182, 193},
	Gray:        {169, 169, 169},
	LightGray:   {220, 220, 220},
	BrightBlue:  {135, 206, 250},
	BrightGreen: {124, 252, 0},
}

// SelectPalette returns the palette for a dark or light background.
func SelectPalette(isDark bool) *Palette {
	if isDark {
		return &DarkPalette
	}
	return &LightPalette
}

// PaletteFor picks the palette matching the measured luminance of bg.
func PaletteFor(bg RGB) *Palette {
	return SelectPalette(bg.IsDark())
}
