// Package cmdutil holds the flag set and render plumbing shared by the
// landscape commands.
package cmdutil

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"

	"github.com/wxscape/landscape"
)

// Config is the render configuration parsed from flags.
type Config struct {
	Input      string
	Sprites    string
	Moon       string
	MoonSize   int
	Animated   bool
	Frames     int
	Duration   time.Duration
	Loop       int
	Bg         string
	Transition time.Duration
	Seed       int64
	Caption    string
	Width      int
	Height     int
	Verbose    bool
}

// Register adds the shared flags to fs.
func (c *Config) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", "-", "weather JSON file, - for stdin")
	fs.StringVar(&c.Sprites, "sprites", "pic", "glyph directory")
	fs.StringVar(&c.Moon, "moon", "", "full-moon bitmap for the phase overlay")
	fs.IntVar(&c.MoonSize, "moon-size", landscape.DefaultMoonSize, "moon overlay width in pixels")
	fs.BoolVar(&c.Animated, "animated", false, "render an animation")
	fs.IntVar(&c.Frames, "frames", landscape.DefaultFrames, "animation frame count")
	fs.DurationVar(&c.Duration, "duration", landscape.DefaultFrameDuration, "time per animation frame")
	fs.IntVar(&c.Loop, "loop", 0, "animation repeats, 0 loops forever")
	fs.StringVar(&c.Bg, "bg", "dynamic", "background: dynamic, static, black or white")
	fs.DurationVar(&c.Transition, "transition", landscape.DefaultTransition, "half width of the sunrise and sunset blends")
	fs.Int64Var(&c.Seed, "seed", -1, "random seed, negative for time based")
	fs.StringVar(&c.Caption, "caption", "", "BCP 47 tag enabling the moon caption (e.g. en, de)")
	fs.IntVar(&c.Width, "width", landscape.DefaultWidth, "canvas width")
	fs.IntVar(&c.Height, "height", landscape.DefaultHeight, "canvas height")
	fs.BoolVar(&c.Verbose, "v", false, "debug logging to stderr")
}

// SetupLogging installs a text handler on stderr when verbose is set.
func (c *Config) SetupLogging() {
	if !c.Verbose {
		return
	}
	landscape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// Options converts the flags into scene options.
func (c *Config) Options() ([]landscape.Option, error) {
	mode, ok := landscape.ParseBackgroundMode(c.Bg)
	if !ok {
		return nil, fmt.Errorf("unknown background %q", c.Bg)
	}
	opts := []landscape.Option{
		landscape.WithSize(c.Width, c.Height),
		landscape.WithBackground(mode),
		landscape.WithTransition(c.Transition),
		landscape.WithMoonSize(c.MoonSize),
		landscape.WithFrames(c.Frames),
		landscape.WithFrameDuration(c.Duration),
		landscape.WithLoopCount(c.Loop),
	}
	if c.Seed >= 0 {
		opts = append(opts, landscape.WithSeed(uint64(c.Seed)))
	}
	if c.Moon != "" {
		opts = append(opts, landscape.WithMoonOverlay(os.DirFS(filepath.Dir(c.Moon)), filepath.Base(c.Moon)))
	}
	if c.Caption != "" {
		tag, err := language.Parse(c.Caption)
		if err != nil {
			return nil, fmt.Errorf("caption language: %w", err)
		}
		opts = append(opts, landscape.WithCaption(tag))
	}
	return opts, nil
}

// ReadInput reads and decodes the weather document.
func (c *Config) ReadInput(stdin io.Reader) (landscape.Input, error) {
	var (
		data []byte
		err  error
	)
	if c.Input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(c.Input)
	}
	if err != nil {
		return landscape.Input{}, fmt.Errorf("read input: %w", err)
	}
	return landscape.DecodeInput(data)
}

// Render builds the scene and renders it: one frame for a static render,
// the full loop otherwise.
func (c *Config) Render(in landscape.Input) (*landscape.Animation, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	scene := landscape.New(landscape.NewAtlas(os.DirFS(c.Sprites)), opts...)
	if c.Animated {
		return scene.RenderAnimation(in)
	}
	frame, err := scene.Render(in)
	if err != nil {
		return nil, err
	}
	return &landscape.Animation{Frames: []*landscape.Canvas{frame}, Delay: c.Duration}, nil
}
