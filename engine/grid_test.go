package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(DefaultBoard())

	tests := []struct {
		name string
		p    Point
		in   bool
	}{
		{"origin", Point{0, 0}, true},
		{"top right", Point{19, 14}, true},
		{"left of board", Point{-1, 0}, false},
		{"below board", Point{0, -1}, false},
		{"right of board", Point{20, 3}, false},
		{"above board", Point{3, 15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, g.InBounds(tt.p))
			assert.Equal(t, tt.in, g.Set(tt.p, 7))
			if tt.in {
				assert.Equal(t, EntityID(7), g.Occupant(tt.p))
			} else {
				assert.Zero(t, g.Occupant(tt.p))
				assert.NotPanics(t, func() { g.Clear(tt.p) })
				assert.NotPanics(t, func() { g.ClearIf(tt.p, 7) })
			}
		})
	}
}

func TestGridLastWriteWins(t *testing.T) {
	g := NewGrid(DefaultBoard())
	p := Point{4, 4}

	g.Set(p, 1)
	g.Set(p, 2)
	assert.Equal(t, EntityID(2), g.Occupant(p))

	g.ClearIf(p, 1)
	assert.Equal(t, EntityID(2), g.Occupant(p), "ClearIf must not clear another id")

	g.ClearIf(p, 2)
	assert.Zero(t, g.Occupant(p))
}

func TestGridPurgeAndReset(t *testing.T) {
	g := NewGrid(DefaultBoard())
	g.Set(Point{1, 1}, 5)
	g.Set(Point{1, 2}, 5)
	g.Set(Point{2, 2}, 6)

	assert.Equal(t, 2, g.Purge(5))
	assert.Equal(t, 1, g.Count())
	assert.Zero(t, g.Purge(0))

	g.Reset()
	require.Zero(t, g.Count())
}

func TestGridNonZeroOrigin(t *testing.T) {
	b := Board{TileSize: 8, Left: -3, Right: 3, Bottom: 10, Top: 12, Rest: Point{3, 3}}
	require.NoError(t, b.Validate())

	g := NewGrid(b)
	assert.True(t, g.Set(Point{-3, 10}, 1))
	assert.True(t, g.Set(Point{3, 12}, 2))
	assert.False(t, g.Set(Point{0, 0}, 3))
	assert.Equal(t, EntityID(1), g.Occupant(Point{-3, 10}))
	assert.Equal(t, EntityID(2), g.Occupant(Point{3, 12}))
	assert.Equal(t, 2, g.Count())
}
