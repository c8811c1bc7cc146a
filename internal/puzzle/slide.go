package puzzle

import "github.com/vovakirdan/fifteen/internal/core"

// Slide animates one tile into the empty cell along a single axis. Each
// Advance performs one step; the logical swap is committed when the motion
// ends.
type Slide struct {
	tile     int
	from     core.Point
	to       core.Point
	dir      core.Point
	distance int
	motion   Motion
	done     bool
}

// newSlide prepares a slide of tile toward the empty cell's screen position.
func newSlide(b *Board, tile int, motion MotionFactory) *Slide {
	from := b.Tile(tile).Screen.Min()
	to := b.Empty().Screen.Min()
	dx, dy := to.X-from.X, to.Y-from.Y

	// Adjacent cells differ on one axis only; a zero gap finishes on the
	// first step.
	var dir core.Point
	if dx == 0 {
		dir = core.Pt(0, core.Sign(dy))
	} else {
		dir = core.Pt(core.Sign(dx), 0)
	}
	distance := core.Abs(dx) + core.Abs(dy)

	return &Slide{
		tile:     tile,
		from:     from,
		to:       to,
		dir:      dir,
		distance: distance,
		motion:   motion(distance),
	}
}

// Tile returns the index of the moving tile.
func (s *Slide) Tile() int {
	return s.tile
}

// Advance performs one step. When the motion reaches or passes the target,
// the tile is snapped and swapped with the empty cell. Returns true once the
// slide is committed.
func (s *Slide) Advance(b *Board) bool {
	if s.done {
		return true
	}

	offset, finished := s.motion.Advance()
	if !finished && offset < s.distance {
		b.setScreenOrigin(s.tile, core.Pt(s.from.X+s.dir.X*offset, s.from.Y+s.dir.Y*offset))
		return false
	}

	// Restore the pre-slide rectangle so Swap hands it to the empty cell.
	b.setScreenOrigin(s.tile, s.from)
	b.Swap(s.tile, b.emptyIndex())
	s.done = true
	return true
}
