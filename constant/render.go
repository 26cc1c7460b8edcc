package constant

// Terminal cell mapping
const (
	// CellsPerTile is the number of terminal columns a tile spans
	CellsPerTile = 2

	// StatusBarRows is the number of rows reserved under the board
	StatusBarRows = 1
)

// Glyphs
const (
	GlyphObstacle    = '█'
	GlyphHostile     = 'M'
	GlyphDeadHostile = 'x'
	GlyphPlayer      = '@'
	GlyphDeadPlayer  = '%'
	GlyphEmpty       = ' '
)
