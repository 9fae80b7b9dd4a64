// Package landscape renders weather forecasts as small pixel-art landscapes.
//
// # Overview
//
// A scene is a fixed-size canvas (296x128 by default, sized for e-paper
// panels) on which the forecast reads left to right as a timeline: the
// current time sits at a fixed column and every forecast slot advances a
// fixed number of pixels. Temperature shapes the terrain line, cloud cover
// becomes clusters of cloud glyphs, rain and snow are stippled between the
// clouds and the ground, wind speed and direction choose the size and kind
// of the trees, and the plume from the house chimney leans with the wind.
//
// # Quick Start
//
//	import "github.com/wxscape/landscape"
//
//	atlas := landscape.NewAtlas(os.DirFS("pic"))
//	scene := landscape.New(atlas, landscape.WithSeed(1))
//
//	in, err := landscape.DecodeInput(data)
//	if err != nil {
//		return err
//	}
//	canvas, err := scene.Render(in)
//
// RenderAnimation produces a frame loop instead. Clouds, trees and raindrops
// keep their places across frames while rain falls and smoke sways.
//
// # Glyphs
//
// Glyphs are three-ink bitmaps named "<category>_<NN>.png": palette index
// (or colour) 0/black is the primary ink, 1/white secondary and 2/red accent.
// Primary ink takes the category colour from the active palette. The
// internal spritegen package and cmd/spritegen produce a placeholder set.
//
// # Randomness
//
// Each render call owns a Session: one seeded stream plus the placement
// stores that freeze layouts for the call. Layouts that must repeat for the
// same parameters draw from generators keyed by those parameters and never
// touch the session stream.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Scene, Atlas, Canvas, Painter, Palette, Input
//   - Layouts: clouds, wind vegetation, precipitation, smoke, moon phase
//   - cache: write-once placement stores
//   - encode: PNG, JPEG, BMP and animated GIF output
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive structured
// log/slog records: glyph loads and cache statistics at debug level, a
// warning when a moon overlay cannot be used.
package landscape
