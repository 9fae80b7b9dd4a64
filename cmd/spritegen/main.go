// Command spritegen writes the placeholder glyph set and a full-moon bitmap.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/wxscape/landscape/internal/spritegen"
)

func main() {
	var (
		dir      = flag.String("dir", "pic", "output directory")
		moonSize = flag.Int("moon", 100, "full-moon bitmap diameter, 0 to skip")
	)
	flag.Parse()

	names, err := spritegen.WriteDir(*dir)
	if err != nil {
		log.Fatalf("Glyphs: %v", err)
	}
	if *moonSize > 0 {
		path := filepath.Join(*dir, "moon.png")
		f, err := os.Create(filepath.Clean(path))
		if err != nil {
			log.Fatalf("Moon: %v", err)
		}
		if err := png.Encode(f, spritegen.Moon(*moonSize)); err != nil {
			_ = f.Close()
			log.Fatalf("Moon: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Moon: %v", err)
		}
		names = append(names, "moon.png")
	}
	log.Printf("Wrote %d files to %s\n", len(names), *dir)
}
