// Package assets provides embedded character sprites for the renderer.
// A missing sprite is not an error: Get returns nil and the renderer falls
// back to drawing primitive shapes.
package assets

import (
	"embed"
	"path"
	"strings"
)

//go:embed sprites/*.txt
var spriteFS embed.FS

// Sprite is a rectangular block of runes. Rows may have differing lengths;
// Width is the longest row. Spaces are transparent when drawn.
type Sprite struct {
	Rows []string
}

// Width returns the sprite width in cells.
func (s *Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

// Height returns the sprite height in cells.
func (s *Sprite) Height() int {
	return len(s.Rows)
}

// Library holds all loaded sprites, keyed by file basename without extension
// (e.g. "player_run_0", "obstacle_tall", "coin").
type Library struct {
	sprites map[string]*Sprite
}

// Load parses the embedded sprite files. Files that cannot be read are
// skipped; the library is usable even when empty.
func Load() *Library {
	lib := &Library{sprites: make(map[string]*Sprite)}

	entries, err := spriteFS.ReadDir("sprites")
	if err != nil {
		return lib
	}

	for _, entry := range entries {
		data, err := spriteFS.ReadFile(path.Join("sprites", entry.Name()))
		if err != nil {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), ".txt")
		rows := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		lib.sprites[key] = &Sprite{Rows: rows}
	}

	return lib
}

// Get returns the sprite for key, or nil if it does not exist. Callers must
// treat nil as "draw a primitive shape instead", never as an error.
func (l *Library) Get(key string) *Sprite {
	if l == nil {
		return nil
	}
	return l.sprites[key]
}
