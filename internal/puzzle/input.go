package puzzle

import "github.com/vovakirdan/fifteen/internal/core"

// TileAt returns the index of the first tile whose screen rectangle
// contains p, or -1. The empty cell is never hit.
func (b *Board) TileAt(p core.Point) int {
	for i, n := 0, b.TileCount(); i < n; i++ {
		if b.entities[i].Screen.Contains(p) {
			return i
		}
	}
	return -1
}

// Movable reports whether tile i shares a row or column with the empty cell
// and is one cell away from it.
func (b *Board) Movable(i int) bool {
	return b.entities[i].Cell.Adjacent(b.Empty().Cell)
}
