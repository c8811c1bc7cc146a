package tui

import (
	"github.com/vovakirdan/fifteen/internal/config"
	"github.com/vovakirdan/fifteen/internal/core"
	"github.com/vovakirdan/fifteen/internal/puzzle"
)

// Viewport maps board pixels to terminal cells and back. One board pitch
// (tile plus border) becomes CellW columns and CellH rows.
type Viewport struct {
	grid    int
	border  int
	pitch   int
	cellW   int
	cellH   int
	originX int
	originY int
}

// NewViewport creates a viewport whose top-left board corner is drawn at
// terminal position (originX, originY).
func NewViewport(layout puzzle.Layout, term config.TerminalConfig, originX, originY int) Viewport {
	return Viewport{
		grid:    layout.Grid,
		border:  layout.Border,
		pitch:   layout.TileSize + layout.Border,
		cellW:   term.CellWidth,
		cellH:   term.CellHeight,
		originX: originX,
		originY: originY,
	}
}

// Width returns the board width in columns.
func (v Viewport) Width() int {
	return v.grid * v.cellW
}

// Height returns the board height in rows.
func (v Viewport) Height() int {
	return v.grid * v.cellH
}

// ToCells converts a tile's pixel rectangle to the terminal box it occupies.
func (v Viewport) ToCells(r core.Rect) core.Rect {
	return core.NewRect(
		v.originX+(r.X-v.border)*v.cellW/v.pitch,
		v.originY+(r.Y-v.border)*v.cellH/v.pitch,
		v.cellW,
		v.cellH,
	)
}

// ToBoard converts a terminal cell to the board pixel at the middle of the
// corresponding pixel span. Cells above or left of the board map to a point
// outside it.
func (v Viewport) ToBoard(col, row int) core.Point {
	if col < v.originX || row < v.originY {
		return core.Pt(-1, -1)
	}
	return core.Pt(
		v.border+((col-v.originX)*v.pitch+v.pitch/2)/v.cellW,
		v.border+((row-v.originY)*v.pitch+v.pitch/2)/v.cellH,
	)
}

// drawable returns the viewport with its origin at the buffer's top-left,
// for drawing into a board-sized screen buffer.
func (v Viewport) drawable() Viewport {
	v.originX, v.originY = 0, 0
	return v
}
