package landscape

import (
	"fmt"
	"image"
	"math"
	"time"
)

// Scene layout, in pixels.
const (
	celestialY     = 20 // sun and moon glyph baseline
	cloudY         = 26 // cloud baseline, top of precipitation
	terrainBase    = 70
	terrainSwing   = 14
	houseX         = 4
	houseChimneyDX = 8
	slotDigitDrop  = 10 // slot temperature baseline below the terrain
	captionMargin  = 2
)

// Animation is an ordered sequence of same-sized frames.
type Animation struct {
	Frames []*Canvas
	// Delay is how long each frame is shown.
	Delay time.Duration
	// LoopCount is the number of repeats; 0 loops forever.
	LoopCount int
}

// Images returns copies of the frames as *image.RGBA for encoders.
func (a *Animation) Images() []image.Image {
	out := make([]image.Image, len(a.Frames))
	for i, f := range a.Frames {
		out[i] = f.ToImage()
	}
	return out
}

// Scene composites weather scenes from an atlas of glyphs.
type Scene struct {
	opts  sceneOptions
	atlas *Atlas
}

// New creates a scene drawing glyphs from atlas.
func New(atlas *Atlas, opts ...Option) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{opts: o, atlas: atlas}
}

// Size returns the canvas dimensions.
func (s *Scene) Size() (width, height int) {
	return s.opts.width, s.opts.height
}

// frameState is everything derived once per render and shared by all frames.
type frameState struct {
	in       Input
	now      time.Time
	bg       RGB
	palette  *Palette
	terrain  []int
	slots    []Conditions
	moon     image.Image
	session  *Session
	smokeDeg float64
}

// Render draws a single static scene.
func (s *Scene) Render(in Input) (*Canvas, error) {
	st := s.prepare(in)
	c, err := s.drawFrame(st, Still)
	if err != nil {
		return nil, err
	}
	st.session.logStats()
	return c, nil
}

// RenderAnimation draws the configured number of frames. Clouds, trees and
// raindrops keep their placement across frames; stipple noise does not.
func (s *Scene) RenderAnimation(in Input) (*Animation, error) {
	st := s.prepare(in)
	anim := &Animation{
		Frames:    make([]*Canvas, 0, s.opts.frames),
		Delay:     s.opts.frameDuration,
		LoopCount: s.opts.loopCount,
	}
	for i := range s.opts.frames {
		c, err := s.drawFrame(st, AnimationContext{Frame: i, Total: s.opts.frames, Animated: true})
		if err != nil {
			return nil, fmt.Errorf("landscape: frame %d: %w", i, err)
		}
		anim.Frames = append(anim.Frames, c)
	}
	st.session.logStats()
	Logger().Info("animation rendered", "frames", len(anim.Frames), "delay", anim.Delay)
	return anim, nil
}

func (s *Scene) prepare(in Input) *frameState {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	seed := s.opts.seed
	if !s.opts.seeded {
		seed = uint64(now.UnixNano()) // #nosec G115 -- any bit pattern is a valid seed
	}

	st := &frameState{
		in:       in,
		now:      now,
		session:  NewSession(seed),
		smokeDeg: SmokeAngle(in.Weather.Current.WindSpeed),
	}
	st.bg = Background(s.opts.background, now, in.Astronomy.Sunrise, in.Astronomy.Sunset, s.opts.transition)
	st.palette = PaletteFor(st.bg)

	tl := s.opts.timeline
	n := min(tl.Slots(s.opts.width), len(in.Weather.Forecast))
	st.slots = in.Weather.Forecast[:n]
	temps := []float64{in.Weather.Current.Temperature}
	if n > 0 {
		temps = temps[:0]
		for _, c := range st.slots {
			temps = append(temps, c.Temperature)
		}
	}
	st.terrain = Terrain(temps, tl, s.opts.width, terrainBase, terrainSwing)

	st.moon = s.prepareMoon(in.Astronomy.Moon)
	Logger().Debug("scene prepared",
		"background", st.bg, "dark", st.bg.IsDark(), "slots", n, "moon", st.moon != nil)
	return st
}

// prepareMoon loads and masks the overlay, returning nil when it is
// disabled or unusable.
func (s *Scene) prepareMoon(phase MoonPhase) image.Image {
	if s.opts.moonFS == nil {
		return nil
	}
	src, err := LoadMoon(s.opts.moonFS, s.opts.moonPath)
	if err != nil {
		Logger().Warn("moon overlay disabled", "path", s.opts.moonPath, "err", err)
		return nil
	}
	return PrepareMoon(src, phase, s.opts.moonSize)
}

// drawFrame composites one frame: sky, sun and moon, moon overlay, clouds,
// precipitation, terrain and vegetation, then house, smoke and digits.
func (s *Scene) drawFrame(st *frameState, anim AnimationContext) (*Canvas, error) {
	canvas := NewCanvas(s.opts.width, s.opts.height)
	canvas.Fill(st.bg)
	p := NewPainter(canvas, st.palette, s.atlas)
	tl := s.opts.timeline
	astro := st.in.Astronomy

	if err := s.drawCelestial(p, st, tl); err != nil {
		return nil, err
	}
	if st.moon != nil {
		DrawMoonOverlay(canvas, st.moon, MoonX(st.now, astro.Sunset, tl, s.opts.width), s.opts.moonY)
	}

	for i, c := range st.slots {
		if err := p.DrawClouds(st.session, c.CloudCover, tl.SlotX(i), cloudY, tl.XStep); err != nil {
			return nil, err
		}
	}
	for i, c := range st.slots {
		x := tl.SlotX(i)
		switch c.Precipitation.Kind {
		case PrecipRain:
			p.DrawRain(st.session, anim, c.Precipitation.Intensity, x, cloudY, tl.XStep, st.terrain)
		case PrecipSnow:
			p.DrawSnow(st.session.Rand, c.Precipitation.Intensity, x, cloudY, tl.XStep, st.terrain)
		}
	}

	for x, y := range st.terrain {
		p.Dot(x, y, Primary)
	}
	for i, c := range st.slots {
		if err := p.DrawWind(st.session, c.WindSpeed, c.WindDirection, tl.SlotX(i), st.terrain); err != nil {
			return nil, err
		}
	}

	if err := s.drawForeground(p, st, anim); err != nil {
		return nil, err
	}

	if s.opts.caption {
		text := MoonCaption(s.opts.captionTag, astro.Moon)
		if _, err := p.DrawCaption(text, s.opts.width-captionMargin, CaptionSize+captionMargin); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

// drawCelestial places the sun glyph at the next sunrise and, without an
// overlay, the moon glyph at the next sunset. Events beyond the right edge
// are skipped.
func (s *Scene) drawCelestial(p *Painter, st *frameState, tl Timeline) error {
	astro := st.in.Astronomy
	if !astro.Sunrise.IsZero() {
		if err := s.drawEvent(p, CategorySun, st.now, astro.Sunrise, tl); err != nil {
			return err
		}
	}
	if st.moon == nil && !astro.Sunset.IsZero() {
		if err := s.drawEvent(p, CategoryMoon, st.now, astro.Sunset, tl); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) drawEvent(p *Painter, cat Category, now, at time.Time, tl Timeline) error {
	for at.Before(now) {
		at = at.Add(24 * time.Hour)
	}
	x := tl.X(now, at)
	if x >= s.opts.width {
		return nil
	}
	g, err := s.atlas.Glyph(cat, 0)
	if err != nil {
		return err
	}
	_, err = p.Draw(cat, 0, x-g.Width()/2, celestialY, false)
	return err
}

// drawForeground draws the house with its smoke plume, the current
// temperature and clock, and each slot's temperature and time.
func (s *Scene) drawForeground(p *Painter, st *frameState, anim AnimationContext) error {
	house, err := s.atlas.Glyph(CategoryHouse, 0)
	if err != nil {
		return err
	}
	root := min(houseX+house.Width()/2, len(st.terrain)-1)
	base := st.terrain[root] + 1
	if _, err := p.Draw(CategoryHouse, 0, houseX, base, false); err != nil {
		return err
	}
	chimneyTop := base - house.Height()
	p.DrawSmoke(st.session, anim, houseX+houseChimneyDX, s.opts.height-chimneyTop, st.smokeDeg)

	cur := st.in.Weather.Current
	bottom := s.opts.height - 2
	if _, err := p.DrawInt(roundInt(cur.Temperature), houseX, base+slotDigitDrop, true, 1); err != nil {
		return err
	}
	local := st.now.Local()
	if _, err := p.DrawClock(houseX, bottom, local.Hour(), local.Minute()); err != nil {
		return err
	}

	tl := s.opts.timeline
	for i, c := range st.slots {
		if i == 0 {
			continue
		}
		x := tl.SlotX(i)
		col := min(x, len(st.terrain)-1)
		if _, err := p.DrawInt(roundInt(c.Temperature), x, st.terrain[col]+slotDigitDrop, true, 1); err != nil {
			return err
		}
		if !c.Time.IsZero() {
			t := c.Time.Local()
			if _, err := p.DrawClock(x, bottom, t.Hour(), t.Minute()); err != nil {
				return err
			}
		}
	}
	return nil
}

func roundInt(f float64) int {
	return int(math.Round(f))
}
