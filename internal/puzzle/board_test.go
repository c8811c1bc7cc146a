package puzzle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/fifteen/internal/core"
)

// requireBijection checks that the entities cover every grid cell exactly once.
func requireBijection(t *testing.T, b *Board) {
	t.Helper()
	g := b.Layout().Grid
	seen := make(map[core.Cell]int)
	for i, e := range b.Entities() {
		require.True(t, e.Cell.Col >= 0 && e.Cell.Col < g && e.Cell.Row >= 0 && e.Cell.Row < g,
			"entity %d has out-of-range cell %+v", i, e.Cell)
		prev, dup := seen[e.Cell]
		require.False(t, dup, "entities %d and %d share cell %+v", prev, i, e.Cell)
		seen[e.Cell] = i
	}
	require.Len(t, seen, g*g)
}

// requireScreenMatchesCell checks that resting entities are drawn at their cell.
func requireScreenMatchesCell(t *testing.T, b *Board) {
	t.Helper()
	for i, e := range b.Entities() {
		require.Equal(t, b.Layout().CellRect(e.Cell), e.Screen, "entity %d", i)
	}
}

func TestNewBoardClassicLayout(t *testing.T) {
	b := NewBoard(ClassicLayout)

	assert.Equal(t, 410, ClassicLayout.Size())
	assert.Equal(t, 15, b.TileCount())
	assert.Len(t, b.Entities(), 16)

	empty := b.Empty()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, core.Cell{Col: 3, Row: 3}, empty.Cell)
	assert.Equal(t, core.NewRect(308, 308, 100, 100), empty.Source)
	assert.Equal(t, empty.Source, empty.Screen)

	first := b.Tile(0)
	assert.Equal(t, 1, first.Value)
	assert.Equal(t, core.NewRect(2, 2, 100, 100), first.Source)

	// Tile 6 sits in column 1, row 1.
	assert.Equal(t, core.Cell{Col: 1, Row: 1}, b.Tile(5).Cell)
	assert.Equal(t, core.NewRect(104, 104, 100, 100), b.Tile(5).Source)

	for i, tile := range b.Tiles() {
		assert.Equal(t, i+1, tile.Value)
		assert.False(t, tile.IsEmpty())
	}

	requireBijection(t, b)
	assert.True(t, b.Solved())
	assert.True(t, b.Solvable())
}

func TestSwapExchangesOnlyPositions(t *testing.T) {
	b := NewBoard(ClassicLayout)
	before := b.Entities()

	b.Swap(0, 15)

	after := b.Entities()
	assert.Equal(t, before[15].Screen, after[0].Screen)
	assert.Equal(t, before[15].Cell, after[0].Cell)
	assert.Equal(t, before[0].Screen, after[15].Screen)
	assert.Equal(t, before[0].Cell, after[15].Cell)

	assert.Equal(t, before[0].Value, after[0].Value)
	assert.Equal(t, before[0].Source, after[0].Source)
	assert.Equal(t, before[15].Source, after[15].Source)

	for i := 1; i < 15; i++ {
		assert.Equal(t, before[i], after[i], "entity %d must be untouched", i)
	}
	requireBijection(t, b)
}

func TestAt(t *testing.T) {
	b := NewBoard(ClassicLayout)
	assert.Equal(t, 15, b.At(core.Cell{Col: 3, Row: 3}))
	assert.Equal(t, 4, b.At(core.Cell{Col: 0, Row: 1}))
	assert.Equal(t, -1, b.At(core.Cell{Col: 9, Row: 9}))
}

func TestShufflePreservesInvariants(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		b := NewBoard(ClassicLayout)
		sources := make([]core.Rect, 0, 16)
		for _, e := range b.Entities() {
			sources = append(sources, e.Source)
		}

		b.Shuffle(rand.New(rand.NewSource(seed)), 225)

		requireBijection(t, b)
		requireScreenMatchesCell(t, b)
		for i, e := range b.Entities() {
			require.Equal(t, sources[i], e.Source, "source rect of entity %d changed", i)
		}
		require.True(t, b.Solvable(), "seed %d produced an unsolvable board", seed)
	}
}

func TestShuffleOtherGridSizes(t *testing.T) {
	for _, grid := range []int{2, 3, 5} {
		layout := Layout{Grid: grid, TileSize: 10, Border: 1}
		for seed := int64(1); seed <= 50; seed++ {
			b := NewBoard(layout)
			b.Shuffle(rand.New(rand.NewSource(seed)), b.TileCount()*b.TileCount())
			requireBijection(t, b)
			require.True(t, b.Solvable(), "grid %d seed %d", grid, seed)
		}
	}
}

func TestShuffleZeroSwapsKeepsSolvedBoard(t *testing.T) {
	b := NewBoard(ClassicLayout)
	b.Shuffle(rand.New(rand.NewSource(7)), 0)
	assert.True(t, b.Solved())
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := NewBoard(ClassicLayout)
	b := NewBoard(ClassicLayout)
	a.Shuffle(rand.New(rand.NewSource(42)), 225)
	b.Shuffle(rand.New(rand.NewSource(42)), 225)
	assert.Equal(t, a.Entities(), b.Entities())
}

func TestSolvable(t *testing.T) {
	tests := []struct {
		name     string
		swap     [2]int
		expected bool
	}{
		// Tiles 14 and 15 exchanged: the famous unsolvable position.
		{"two tiles exchanged", [2]int{13, 14}, false},
		// Empty cell with tile 15 (adjacent): one legal slide away.
		{"empty with adjacent tile", [2]int{15, 14}, true},
		// Empty cell with tile 11 (diagonal, distance 2).
		{"empty with diagonal tile", [2]int{15, 10}, false},
		// Empty cell with tile 13 (same row, distance 3).
		{"empty with tile three away", [2]int{15, 12}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(ClassicLayout)
			b.Swap(tc.swap[0], tc.swap[1])
			assert.Equal(t, tc.expected, b.Solvable())
			assert.False(t, b.Solved())
		})
	}
}

func TestTileAtAndMovable(t *testing.T) {
	b := NewBoard(ClassicLayout)

	assert.Equal(t, 0, b.TileAt(core.Pt(2, 2)))
	assert.Equal(t, 0, b.TileAt(core.Pt(101, 101)))
	assert.Equal(t, -1, b.TileAt(core.Pt(102, 50)), "border column between tiles")
	assert.Equal(t, -1, b.TileAt(core.Pt(0, 0)), "outer border")
	assert.Equal(t, -1, b.TileAt(core.Pt(350, 350)), "empty cell is not a tile")
	assert.Equal(t, 14, b.TileAt(core.Pt(250, 350)))

	assert.True(t, b.Movable(14), "tile 15 is left of the empty cell")
	assert.True(t, b.Movable(11), "tile 12 is above the empty cell")
	assert.False(t, b.Movable(10), "tile 11 is diagonal")
	assert.False(t, b.Movable(13), "tile 14 is two cells away")
}
