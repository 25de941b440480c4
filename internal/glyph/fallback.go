package glyph

import (
	_ "embed"
)

//go:embed data/fallback.json
var fallbackJSON []byte

// Fallback returns the bundled pool used when no other source is available.
func Fallback() *Pool {
	p, err := ParsePool(fallbackJSON)
	if err != nil {
		panic(err)
	}
	return p
}
