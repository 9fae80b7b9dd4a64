// Command landscape-term previews a weather landscape in the terminal using
// half-block characters, two pixels per cell.
package main

import (
	"flag"
	"image"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/wxscape/landscape/internal/cmdutil"
)

// fit scales img to the largest size fitting cols x 2*rows pixels while
// keeping its aspect ratio.
func fit(img image.Image, cols, rows int) *image.RGBA {
	b := img.Bounds()
	w, h := cols, cols*b.Dy()/max(b.Dx(), 1)
	if h > 2*rows {
		h = 2 * rows
		w = h * b.Dx() / max(b.Dy(), 1)
	}
	out := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, b, xdraw.Src, nil)
	return out
}

func cellColor(img *image.RGBA, x, y int) tcell.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return tcell.ColorBlack
	}
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func paint(screen tcell.Screen, frame image.Image) {
	cols, rows := screen.Size()
	img := fit(frame, cols, rows)
	screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(img, x, 2*y)).
				Background(cellColor(img, x, 2*y+1))
			screen.SetContent(x, y, '▀', nil, style)
		}
	}
	screen.Show()
}

func main() {
	var cfg cmdutil.Config
	cfg.Register(flag.CommandLine)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Screen init: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	delay := anim.Delay
	if delay <= 0 {
		delay = time.Second
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	frame := 0
	paint(screen, anim.Frames[frame])
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				paint(screen, anim.Frames[frame])
			}
		case <-ticker.C:
			if len(anim.Frames) > 1 {
				frame = (frame + 1) % len(anim.Frames)
				paint(screen, anim.Frames[frame])
			}
		}
	}
}
