package landscape

import "errors"

// Rendering errors.
var (
	// ErrSpriteNotFound is returned when a glyph file is missing from the atlas.
	ErrSpriteNotFound = errors.New("landscape: sprite not found")

	// ErrBadSprite is returned when a glyph file cannot be decoded.
	ErrBadSprite = errors.New("landscape: bad sprite")
)
