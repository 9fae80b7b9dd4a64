// Command landscape-view renders a weather landscape and shows it in a
// window, looping the animation frames.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wxscape/landscape"
	"github.com/wxscape/landscape/internal/cmdutil"
)

// viewer is the ebiten game loop over prerendered frames.
type viewer struct {
	frames []*ebiten.Image
	delay  time.Duration
	start  time.Time
	width  int
	height int
}

func newViewer(anim *landscape.Animation) *viewer {
	v := &viewer{delay: anim.Delay, start: time.Now()}
	for _, f := range anim.Frames {
		img := ebiten.NewImage(f.Width(), f.Height())
		img.WritePixels(f.Data())
		v.frames = append(v.frames, img)
	}
	v.width, v.height = anim.Frames[0].Width(), anim.Frames[0].Height()
	return v
}

func (v *viewer) current() int {
	if len(v.frames) < 2 || v.delay <= 0 {
		return 0
	}
	return int(time.Since(v.start)/v.delay) % len(v.frames)
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.frames[v.current()], nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.width, v.height
}

func main() {
	var cfg cmdutil.Config
	cfg.Register(flag.CommandLine)
	scale := flag.Int("scale", 3, "window scale factor")
	flag.Parse()
	cfg.SetupLogging()

	in, err := cfg.ReadInput(os.Stdin)
	if err != nil {
		log.Fatalf("Input: %v", err)
	}
	anim, err := cfg.Render(in)
	if err != nil {
		log.Fatalf("Render: %v", err)
	}

	v := newViewer(anim)
	ebiten.SetWindowTitle("landscape")
	ebiten.SetWindowSize(v.width*max(*scale, 1), v.height*max(*scale, 1))
	if err := ebiten.RunGame(v); err != nil {
		log.Fatalf("Viewer: %v", err)
	}
}
