package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stomp/constant"
)

// ErrInvalidBoard is returned by Board.Validate
var ErrInvalidBoard = errors.New("invalid board")

// Board is the fixed rectangular play area, bounds inclusive, bottom-left origin
type Board struct {
	TileSize int
	Left     int
	Right    int
	Bottom   int
	Top      int

	// Rest is the centered sub-tile offset of a stopped entity
	Rest Point
}

// DefaultBoard returns the 20x15 board of 32px tiles
func DefaultBoard() Board {
	return Board{
		TileSize: constant.TileSize,
		Left:     constant.BoardLeft,
		Right:    constant.BoardRight,
		Bottom:   constant.BoardBottom,
		Top:      constant.BoardTop,
		Rest:     Point{X: constant.TileRest, Y: constant.TileRest},
	}
}

// Width returns the board width in tiles
func (b Board) Width() int { return b.Right - b.Left + 1 }

// Height returns the board height in tiles
func (b Board) Height() int { return b.Top - b.Bottom + 1 }

// Contains reports whether p lies within the inclusive bounds
func (b Board) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

// TopCorners returns the left and right spawn corners
func (b Board) TopCorners() (left, right Point) {
	return Point{X: b.Left, Y: b.Top}, Point{X: b.Right, Y: b.Top}
}

// Pixel returns the bottom-left-origin pixel position of an offset within a tile
func (b Board) Pixel(loc, off Point) (px, py int) {
	return (loc.X-b.Left)*b.TileSize + off.X, (loc.Y-b.Bottom)*b.TileSize + off.Y
}

// ScreenPixel returns the pixel position with the vertical axis flipped for a top-left origin
func (b Board) ScreenPixel(loc, off Point) (px, py int) {
	px = (loc.X-b.Left)*b.TileSize + off.X
	py = (b.Top-loc.Y)*b.TileSize + (b.TileSize - 1 - off.Y)
	return px, py
}

// Validate checks the geometry is usable by the grid and integrator
func (b Board) Validate() error {
	if b.TileSize < 2 {
		return fmt.Errorf("%w: tile size %d below 2", ErrInvalidBoard, b.TileSize)
	}
	if b.Right < b.Left || b.Top < b.Bottom {
		return fmt.Errorf("%w: empty bounds [%d,%d]x[%d,%d]", ErrInvalidBoard, b.Left, b.Right, b.Bottom, b.Top)
	}
	if b.Rest.X < 0 || b.Rest.X >= b.TileSize || b.Rest.Y < 0 || b.Rest.Y >= b.TileSize {
		return fmt.Errorf("%w: rest offset (%d,%d) outside tile", ErrInvalidBoard, b.Rest.X, b.Rest.Y)
	}
	return nil
}
