// Command landscape renders a weather landscape from a JSON document into a
// PNG, JPEG, BMP or animated GIF file.
//
// Usage:
//
//	landscape -input weather.json -sprites pic -out scene.png
//	landscape -input weather.json -animated -frames 12 -out scene.gif
package main

import (
	"flag"
	"log"
	"os"

	"github.com/wxscape/landscape/encode"
	"github.com/wxscape/landscape/internal/cmdutil"
)

func main() {
	var cfg cmdutil.Config
	cfg.Register(flag.CommandLine)
	output := flag.String("out", "landscape.png", "output file; the extension picks the format")
	quality := flag.Int("quality", 0, "JPEG quality 1-100")
	flag.Parse()
	cfg.SetupLogging()

	format, err := encode.FormatFromPath(*output)
	if err != nil {
		log.Fatalf("Output: %v", err)
	}
	if cfg.Animated && !format.Animated() {
		log.Printf("%s keeps only the first frame", format)
	}

	in, err := cfg.ReadInput(os.Stdin)
	if err != nil {
		log.Fatalf("Input: %v", err)
	}
	anim, err := cfg.Render(in)
	if err != nil {
		log.Fatalf("Render: %v", err)
	}

	opts := encode.Options{Delay: anim.Delay, LoopCount: anim.LoopCount, JPEGQuality: *quality}
	if err := encode.Save(*output, anim.Images(), opts); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Landscape saved to %s (%d frame(s))\n", *output, len(anim.Frames))
}
