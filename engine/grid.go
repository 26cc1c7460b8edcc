package engine

// Grid is the authoritative tile occupancy map
// Each slot holds at most one EntityID and the last write wins. IDs are weak
// references resolved through the EntityStore, so a removed entity never dangles
// Every accessor is bounds-checked: out-of-board reads are empty, writes are dropped
type Grid struct {
	board Board
	width int
	slots []EntityID // 1D array: index = (y-Bottom)*width + (x-Left)
}

// NewGrid creates an empty grid covering the board
func NewGrid(b Board) *Grid {
	return &Grid{
		board: b,
		width: b.Width(),
		slots: make([]EntityID, b.Width()*b.Height()),
	}
}

// InBounds reports whether p is a slot of this grid
func (g *Grid) InBounds(p Point) bool {
	return g.board.Contains(p)
}

func (g *Grid) index(p Point) int {
	return (p.Y-g.board.Bottom)*g.width + (p.X - g.board.Left)
}

// Occupant returns the ID stored at p, 0 if empty or out of bounds
func (g *Grid) Occupant(p Point) EntityID {
	if !g.InBounds(p) {
		return 0
	}
	return g.slots[g.index(p)]
}

// Set overwrites the slot at p, returns false if p is out of bounds
func (g *Grid) Set(p Point, id EntityID) bool {
	if !g.InBounds(p) {
		return false
	}
	g.slots[g.index(p)] = id
	return true
}

// Clear empties the slot at p
func (g *Grid) Clear(p Point) {
	if !g.InBounds(p) {
		return
	}
	g.slots[g.index(p)] = 0
}

// ClearIf empties the slot at p only while it still references id
func (g *Grid) ClearIf(p Point, id EntityID) {
	if !g.InBounds(p) {
		return
	}
	if idx := g.index(p); g.slots[idx] == id {
		g.slots[idx] = 0
	}
}

// Purge empties every slot referencing id and returns how many were cleared
func (g *Grid) Purge(id EntityID) int {
	if id == 0 {
		return 0
	}
	n := 0
	for i, v := range g.slots {
		if v == id {
			g.slots[i] = 0
			n++
		}
	}
	return n
}

// Reset empties every slot
func (g *Grid) Reset() {
	clear(g.slots)
}

// Count returns the number of non-empty slots
func (g *Grid) Count() int {
	n := 0
	for _, id := range g.slots {
		if id != 0 {
			n++
		}
	}
	return n
}
