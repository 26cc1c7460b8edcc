package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stomp/constant"
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/status"
)

// Renderer draws world snapshots onto a terminal screen
// Each tile spans CellsPerTile columns and one row; the board is centered and
// framed, with the status bar under the frame
type Renderer struct {
	screen  tcell.Screen
	board   engine.Board
	status  *status.Registry
	originX int
	originY int
}

// NewRenderer creates a renderer for the board; reg may be nil
func NewRenderer(screen tcell.Screen, b engine.Board, reg *status.Registry) *Renderer {
	r := &Renderer{screen: screen, board: b, status: reg}
	r.Resize()
	return r
}

// Resize recenters the board on the current screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	bw, bh := r.boardCells()
	r.originX = max((w-bw)/2, 1)
	r.originY = max((h-bh-constant.StatusBarRows)/2, 1)
}

// Origin returns the screen cell of the board's top-left tile
func (r *Renderer) Origin() (x, y int) {
	return r.originX, r.originY
}

func (r *Renderer) boardCells() (w, h int) {
	return r.board.Width() * constant.CellsPerTile, r.board.Height()
}

// CellOf maps a tile and sub-tile offset to a board-relative screen cell
// The vertical axis is flipped: higher tiles are drawn nearer the top
func (r *Renderer) CellOf(loc, off engine.Point) (x, y int) {
	px, py := r.board.ScreenPixel(loc, off)
	return px * constant.CellsPerTile / r.board.TileSize, py / r.board.TileSize
}

// Draw renders one snapshot and shows it
func (r *Renderer) Draw(snap engine.Snapshot, muted bool) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)
	r.drawFrame(bg.Foreground(RgbBorder))

	obstacle := bg.Foreground(RgbObstacle)
	for _, p := range snap.Obstacles {
		x, y := r.CellOf(p, engine.Point{})
		for i := 0; i < constant.CellsPerTile; i++ {
			r.set(x+i, y, constant.GlyphObstacle, obstacle)
		}
	}

	for _, h := range snap.Hostiles {
		glyph, style := constant.GlyphHostile, bg.Foreground(RgbHostile).Bold(true)
		if !h.Alive {
			glyph, style = constant.GlyphDeadHostile, bg.Foreground(RgbDeadHostile)
		}
		x, y := r.CellOf(h.Location, h.Offset)
		r.set(x, y, glyph, style)
	}

	c := snap.Controlled
	glyph, style := constant.GlyphPlayer, bg.Foreground(RgbPlayer).Bold(true)
	if !c.Alive {
		glyph, style = constant.GlyphDeadPlayer, bg.Foreground(RgbDeadPlayer)
	}
	x, y := r.CellOf(c.Location, c.Offset)
	r.set(x, y, glyph, style)

	r.drawStatusBar(snap, muted, bg.Foreground(RgbStatusBar))
	r.screen.Show()
}

// set draws at a board-relative cell, clipped to the board area
func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	bw, bh := r.boardCells()
	if x < 0 || x >= bw || y < 0 || y >= bh {
		return
	}
	r.screen.SetContent(r.originX+x, r.originY+y, ch, nil, style)
}

func (r *Renderer) drawFrame(style tcell.Style) {
	bw, bh := r.boardCells()
	left, top := r.originX-1, r.originY-1
	right, bottom := r.originX+bw, r.originY+bh

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

// StatusLine formats the status bar text
func (r *Renderer) StatusLine(snap engine.Snapshot, muted bool) string {
	sound := "on"
	if muted {
		sound = "off"
	}
	line := fmt.Sprintf("tick %d  hostiles %d  sound %s", snap.Tick, snap.HostileCount, sound)
	if r.status != nil {
		line += fmt.Sprintf("  stomped %d", r.status.Int(status.KeyHostileStomped))
	}
	return line
}

func (r *Renderer) drawStatusBar(snap engine.Snapshot, muted bool, style tcell.Style) {
	_, bh := r.boardCells()
	r.drawText(r.originX, r.originY+bh+1, r.StatusLine(snap, muted), style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// DrawOutcome renders the victory or loss screen
func (r *Renderer) DrawOutcome(o engine.Outcome, stomped int64) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	var title string
	var style tcell.Style
	switch o {
	case engine.OutcomeWon:
		title, style = "YOU WIN", bg.Foreground(RgbVictory).Bold(true)
	case engine.OutcomeLost:
		title, style = "GAME OVER", bg.Foreground(RgbLoss).Bold(true)
	default:
		return
	}

	w, h := r.screen.Size()
	lines := []string{title, fmt.Sprintf("hostiles stomped: %d", stomped), "press any key"}
	for i, line := range lines {
		s := style
		if i > 0 {
			s = bg.Foreground(RgbStatusBar)
		}
		r.drawText((w-len(line))/2, h/2-1+i, line, s)
	}
	r.screen.Show()
}
