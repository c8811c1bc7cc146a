// Package puzzle implements the sliding-tile board, click handling and slide
// animation. It has no rendering or windowing dependencies; front-ends feed
// it input frames and draw its entities.
package puzzle

import (
	"math/rand"

	"github.com/vovakirdan/fifteen/internal/core"
)

// Layout describes board geometry: Grid cells per side, each TileSize pixels,
// separated and surrounded by Border pixels.
type Layout struct {
	Grid     int
	TileSize int
	Border   int
}

// ClassicLayout is the 4x4 board with 100px tiles and 2px borders.
var ClassicLayout = Layout{Grid: 4, TileSize: 100, Border: 2}

// Size returns the board edge in pixels.
func (l Layout) Size() int {
	return l.Grid*(l.TileSize+l.Border) + l.Border
}

// Cells returns the number of grid cells.
func (l Layout) Cells() int {
	return l.Grid * l.Grid
}

// CellRect returns the pixel rectangle of a grid cell.
func (l Layout) CellRect(c core.Cell) core.Rect {
	pitch := l.TileSize + l.Border
	return core.NewRect(l.Border+c.Col*pitch, l.Border+c.Row*pitch, l.TileSize, l.TileSize)
}

// cellOf returns the grid cell for a raster index.
func (l Layout) cellOf(index int) core.Cell {
	return core.Cell{Col: index % l.Grid, Row: index / l.Grid}
}

// rasterIndex returns the raster index of a grid cell.
func (l Layout) rasterIndex(c core.Cell) int {
	return c.Row*l.Grid + c.Col
}

// Entity is a tile or the empty cell.
type Entity struct {
	Value  int       // 1..n for tiles, 0 for the empty cell
	Source core.Rect // spritesheet region; fixed at creation
	Screen core.Rect // current on-screen rectangle
	Cell   core.Cell // current grid coordinate
}

// IsEmpty reports whether the entity is the empty cell.
func (e Entity) IsEmpty() bool {
	return e.Value == 0
}

// Board holds the tiles and the empty cell. Tiles occupy indices
// 0..TileCount()-1 (tile i has value i+1); the empty cell is the last entity.
type Board struct {
	layout   Layout
	entities []Entity
}

// NewBoard creates a solved board. Source rectangles are laid out in raster
// order and screen rectangles start equal to them. The last raster slot is
// the empty cell.
func NewBoard(layout Layout) *Board {
	b := &Board{
		layout:   layout,
		entities: make([]Entity, layout.Cells()),
	}
	for i := range b.entities {
		cell := layout.cellOf(i)
		rect := layout.CellRect(cell)
		b.entities[i] = Entity{
			Value:  i + 1,
			Source: rect,
			Screen: rect,
			Cell:   cell,
		}
	}
	b.entities[b.emptyIndex()].Value = 0
	return b
}

// Layout returns the board geometry.
func (b *Board) Layout() Layout {
	return b.layout
}

// TileCount returns the number of numbered tiles.
func (b *Board) TileCount() int {
	return len(b.entities) - 1
}

func (b *Board) emptyIndex() int {
	return len(b.entities) - 1
}

// Entities returns a copy of all entities, tiles first, empty cell last.
func (b *Board) Entities() []Entity {
	out := make([]Entity, len(b.entities))
	copy(out, b.entities)
	return out
}

// Tiles returns a copy of the numbered tiles.
func (b *Board) Tiles() []Entity {
	out := make([]Entity, b.TileCount())
	copy(out, b.entities[:b.TileCount()])
	return out
}

// Tile returns tile i.
func (b *Board) Tile(i int) Entity {
	return b.entities[i]
}

// Empty returns the empty cell.
func (b *Board) Empty() Entity {
	return b.entities[b.emptyIndex()]
}

// At returns the index of the entity at the given cell, or -1.
func (b *Board) At(c core.Cell) int {
	for i, e := range b.entities {
		if e.Cell == c {
			return i
		}
	}
	return -1
}

// Swap exchanges the screen rectangles and grid coordinates of entities a
// and b. Values and source rectangles stay put. No adjacency check is made.
func (b *Board) Swap(i, j int) {
	ei, ej := &b.entities[i], &b.entities[j]
	ei.Screen, ej.Screen = ej.Screen, ei.Screen
	ei.Cell, ej.Cell = ej.Cell, ei.Cell
}

// setScreenOrigin moves entity i's screen rectangle without touching its cell.
func (b *Board) setScreenOrigin(i int, p core.Point) {
	b.entities[i].Screen = b.entities[i].Screen.MoveTo(p)
}

// Shuffle performs swaps transpositions between the empty cell and a
// uniformly chosen tile, drawn with replacement. A transposition over an even
// Manhattan distance flips solvability, so if the result is unsolvable one
// more empty/tile swap over an even distance is made.
func (b *Board) Shuffle(rng *rand.Rand, swaps int) {
	n := b.TileCount()
	for i := 0; i < swaps; i++ {
		b.Swap(b.emptyIndex(), rng.Intn(n))
	}
	if !b.Solvable() {
		b.fixParity(rng)
	}
}

func (b *Board) fixParity(rng *rand.Rand) {
	empty := b.Empty().Cell
	candidates := make([]int, 0, b.TileCount())
	for i, n := 0, b.TileCount(); i < n; i++ {
		if d := b.entities[i].Cell.Distance(empty); d%2 == 0 {
			candidates = append(candidates, i)
		}
	}
	// Every grid of size >= 2 has a diagonal neighbour at distance 2.
	b.Swap(b.emptyIndex(), candidates[rng.Intn(len(candidates))])
}

// Solvable reports whether the solved board is reachable by legal slides.
// The parity of the slot permutation (empty cell included) plus the empty
// cell's distance from its home corner is invariant under slides and zero
// when solved.
func (b *Board) Solvable() bool {
	perm := make([]int, len(b.entities))
	for i, e := range b.entities {
		perm[b.layout.rasterIndex(e.Cell)] = i
	}

	cycles := 0
	seen := make([]bool, len(perm))
	for i := range perm {
		if seen[i] {
			continue
		}
		cycles++
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
		}
	}
	parity := (len(perm) - cycles) % 2

	home := b.layout.cellOf(b.emptyIndex())
	return (parity+b.Empty().Cell.Distance(home))%2 == 0
}

// Solved reports whether every entity sits in its home cell.
func (b *Board) Solved() bool {
	for i, e := range b.entities {
		if e.Cell != b.layout.cellOf(i) {
			return false
		}
	}
	return true
}
