package landscape

import (
	"io/fs"
	"time"

	"golang.org/x/text/language"
)

// Option configures a Scene during creation.
//
// Example:
//
//	// Defaults: 296x128, dynamic sky, 10 frames of 100ms
//	scene := landscape.New(atlas)
//
//	// Night-mode e-paper panel with a moon overlay
//	scene := landscape.New(atlas,
//	    landscape.WithBackground(landscape.BackgroundBlack),
//	    landscape.WithMoonOverlay(os.DirFS("pic"), "moon.png"),
//	)
type Option func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	width, height int
	frames        int
	frameDuration time.Duration
	loopCount     int
	background    BackgroundMode
	transition    time.Duration
	timeline      Timeline
	seed          uint64
	seeded        bool

	moonFS   fs.FS
	moonPath string
	moonSize int
	moonY    int

	caption    bool
	captionTag language.Tag
}

// Scene defaults.
const (
	DefaultWidth         = 296
	DefaultHeight        = 128
	DefaultFrames        = 10
	DefaultFrameDuration = 100 * time.Millisecond
	DefaultMoonSize      = 25
	DefaultMoonY         = 5
)

// defaultOptions returns the default scene options.
func defaultOptions() sceneOptions {
	return sceneOptions{
		width:         DefaultWidth,
		height:        DefaultHeight,
		frames:        DefaultFrames,
		frameDuration: DefaultFrameDuration,
		background:    BackgroundDynamic,
		transition:    DefaultTransition,
		timeline:      DefaultTimeline,
		moonSize:      DefaultMoonSize,
		moonY:         DefaultMoonY,
		captionTag:    language.English,
	}
}

// WithSize sets the canvas dimensions. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(o *sceneOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithFrames sets the animation frame count (at least 1).
func WithFrames(n int) Option {
	return func(o *sceneOptions) {
		o.frames = max(n, 1)
	}
}

// WithFrameDuration sets how long each animation frame is shown.
func WithFrameDuration(d time.Duration) Option {
	return func(o *sceneOptions) {
		o.frameDuration = d
	}
}

// WithLoopCount sets the animation loop count; 0 loops forever.
func WithLoopCount(n int) Option {
	return func(o *sceneOptions) {
		o.loopCount = n
	}
}

// WithBackground selects the background mode.
func WithBackground(mode BackgroundMode) Option {
	return func(o *sceneOptions) {
		o.background = mode
	}
}

// WithTransition sets the sunrise/sunset blend half-window.
func WithTransition(d time.Duration) Option {
	return func(o *sceneOptions) {
		o.transition = d
	}
}

// WithTimeline overrides the forecast-to-column mapping.
func WithTimeline(tl Timeline) Option {
	return func(o *sceneOptions) {
		o.timeline = tl
	}
}

// WithSeed fixes the session random stream, making renders reproducible.
func WithSeed(seed uint64) Option {
	return func(o *sceneOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithMoonOverlay enables the moon-phase overlay using the full-moon bitmap
// name in fsys. If the bitmap cannot be used the overlay is disabled for
// that render and a warning is logged.
func WithMoonOverlay(fsys fs.FS, name string) Option {
	return func(o *sceneOptions) {
		o.moonFS = fsys
		o.moonPath = name
	}
}

// WithMoonSize sets the overlay width in pixels.
func WithMoonSize(px int) Option {
	return func(o *sceneOptions) {
		if px > 0 {
			o.moonSize = px
		}
	}
}

// WithCaption enables the moon caption formatted for tag.
func WithCaption(tag language.Tag) Option {
	return func(o *sceneOptions) {
		o.caption = true
		o.captionTag = tag
	}
}
